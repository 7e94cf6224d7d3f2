package registry

import (
	"errors"
	"testing"

	"github.com/vovakirdan/roadcross/internal/core"
)

type stubGame struct {
	id    string
	ticks int
}

func (g *stubGame) ID() string               { return g.id }
func (g *stubGame) Title() string            { return "Stub " + g.id }
func (g *stubGame) Reset(core.RuntimeConfig) { g.ticks = 0 }
func (g *stubGame) Render(*core.Screen)      {}
func (g *stubGame) State() core.GameState    { return core.GameState{Score: g.ticks} }
func (g *stubGame) Step(core.InputFrame) core.StepResult {
	g.ticks++
	return core.StepResult{State: g.State()}
}

func stubFactory(id string) Factory {
	return func() Game { return &stubGame{id: id} }
}

func TestRegisterAndCreate(t *testing.T) {
	Register("zz_stub", stubFactory("zz_stub"))
	Register("aa_stub", stubFactory("aa_stub"))

	if !Exists("zz_stub") || !Exists("aa_stub") {
		t.Fatal("registered games should exist")
	}
	if got := Title("aa_stub"); got != "Stub aa_stub" {
		t.Errorf("Title() = %q", got)
	}
	if got := Title("missing"); got != "missing" {
		t.Errorf("Title() of unknown id = %q, expected the id", got)
	}

	g, err := Create("zz_stub")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	g.Step(core.NewInputFrame())

	// Each Create returns a fresh instance.
	g2, _ := Create("zz_stub")
	if g2.State().Score != 0 {
		t.Error("Create should not share state between instances")
	}

	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID >= list[i].ID {
			t.Errorf("List() not sorted: %v", list)
		}
	}
}

func TestCreateUnknown(t *testing.T) {
	_, err := Create("no_such_game")
	if !errors.Is(err, ErrUnknownGame) {
		t.Errorf("Create() error = %v, expected ErrUnknownGame", err)
	}
}

func TestRegisterPanics(t *testing.T) {
	tests := []struct {
		name string
		id   string
		f    Factory
	}{
		{"duplicate", "dup_stub", stubFactory("dup_stub")},
		{"mismatched id", "alias_stub", stubFactory("other")},
	}
	Register("dup_stub", stubFactory("dup_stub"))

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("Register should panic")
				}
			}()
			Register(tc.id, tc.f)
		})
	}
}
