package tui

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/roadcross/internal/core"
	"github.com/vovakirdan/roadcross/internal/storage"
)

// scriptedGame ends after a fixed number of steps and records its input.
type scriptedGame struct {
	endAfter int
	steps    int
	resets   int
	seen     []core.Action
	messages []string
}

func (g *scriptedGame) ID() string    { return "scripted" }
func (g *scriptedGame) Title() string { return "Scripted" }

func (g *scriptedGame) Reset(core.RuntimeConfig) {
	g.resets++
	g.steps = 0
	g.seen = nil
}

func (g *scriptedGame) Step(in core.InputFrame) core.StepResult {
	g.seen = append(g.seen, in.Actions...)
	if g.steps < g.endAfter {
		g.steps++
	}
	return core.StepResult{State: g.State(), Messages: g.messages}
}

func (g *scriptedGame) Render(dst *core.Screen) {
	dst.DrawText(0, 0, "scripted")
}

func (g *scriptedGame) State() core.GameState {
	return core.GameState{Score: g.steps * 10, GameOver: g.steps >= g.endAfter}
}

func (g *scriptedGame) Summary() core.RunSummary {
	return core.RunSummary{Score: g.steps * 10, GoalsClaimed: 2, DurationTicks: g.steps}
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return model
}

func testModel(t *testing.T, g *scriptedGame) (Model, *storage.Store) {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	m := NewModel(g, store, nil, core.RuntimeConfig{ScreenW: 40, ScreenH: 10, TickRate: 60, Seed: 1})
	m.Init()
	return m, store
}

func TestModelForwardsKeysInOrder(t *testing.T) {
	g := &scriptedGame{endAfter: 100}
	m, _ := testModel(t, g)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyUp})
	m = update(t, m, runeKey('a'))
	m = update(t, m, tea.KeyMsg{Type: tea.KeyUp})
	m = update(t, m, TickMsg{})

	want := []core.Action{core.ActionUp, core.ActionLeft, core.ActionUp}
	if len(g.seen) != len(want) {
		t.Fatalf("game saw %v, expected %v", g.seen, want)
	}
	for i := range want {
		if g.seen[i] != want[i] {
			t.Errorf("action %d = %v, expected %v", i, g.seen[i], want[i])
		}
	}

	// The frame is cleared after each tick.
	update(t, m, TickMsg{})
	if len(g.seen) != len(want) {
		t.Errorf("input leaked into the next tick: %v", g.seen)
	}
}

func TestModelRecordsRunOnce(t *testing.T) {
	g := &scriptedGame{endAfter: 3}
	m, store := testModel(t, g)

	for range 10 {
		m = update(t, m, TickMsg{})
	}

	runs, err := store.TopRuns("scripted", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected exactly one run, got %d", len(runs))
	}
	if runs[0].Score != 30 || runs[0].GoalsClaimed != 2 || runs[0].DurationTicks != 3 {
		t.Errorf("recorded run = %+v", runs[0])
	}
}

func TestModelRestart(t *testing.T) {
	g := &scriptedGame{endAfter: 2}
	m, store := testModel(t, g)

	// Restart is ignored while playing.
	m = update(t, m, runeKey('r'))
	m = update(t, m, TickMsg{})
	if g.resets != 1 {
		t.Fatalf("restart during play should be ignored, resets = %d", g.resets)
	}

	m = update(t, m, TickMsg{})
	if !m.gameState.GameOver {
		t.Fatal("game should be over")
	}

	m = update(t, m, runeKey('r'))
	m = update(t, m, TickMsg{})
	if g.resets != 2 {
		t.Errorf("restart after game over should reset, resets = %d", g.resets)
	}

	for range 3 {
		m = update(t, m, TickMsg{})
	}
	if runs, _ := store.TopRuns("scripted", 10); len(runs) != 2 {
		t.Errorf("each finished session should be recorded, got %d", len(runs))
	}
}

func TestModelResizeKeepsGame(t *testing.T) {
	g := &scriptedGame{endAfter: 100}
	m, _ := testModel(t, g)

	m = update(t, m, TickMsg{})
	m = update(t, m, tea.WindowSizeMsg{Width: 20, Height: 5})

	if g.resets != 1 || g.steps != 1 {
		t.Errorf("resize should not reset the game, resets=%d steps=%d", g.resets, g.steps)
	}
	if m.screen.Width() != 20 || m.screen.Height() != 5 {
		t.Errorf("screen = %dx%d, expected 20x5", m.screen.Width(), m.screen.Height())
	}
	if !strings.Contains(m.View(), "scripted") {
		t.Error("View should render the game")
	}
}

func TestModelQuit(t *testing.T) {
	g := &scriptedGame{endAfter: 100}
	m, _ := testModel(t, g)

	next, cmd := m.Update(runeKey('q'))
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit should send tea.QuitMsg")
	}
	if next.(Model).View() != "" {
		t.Error("View should be empty after quitting")
	}
}

func TestModelWithoutStore(t *testing.T) {
	g := &scriptedGame{endAfter: 1}
	m := NewModel(g, nil, nil, core.RuntimeConfig{ScreenW: 10, ScreenH: 3})
	m.Init()

	m = update(t, m, TickMsg{})
	if !m.runSaved {
		t.Error("finished run should be marked handled even without a store")
	}
	if m.config.TickRate != 60 {
		t.Errorf("TickRate = %d, expected default 60", m.config.TickRate)
	}
}

func TestModelLogsStepMessages(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})
	g := &scriptedGame{endAfter: 100, messages: []string{"home 1 claimed"}}
	m := NewModel(g, nil, logger, core.RuntimeConfig{ScreenW: 40, ScreenH: 10, TickRate: 60, Seed: 1})

	update(t, m, TickMsg{})
	if !strings.Contains(buf.String(), "home 1 claimed") {
		t.Errorf("step messages should reach the debug log, got %q", buf.String())
	}
}
