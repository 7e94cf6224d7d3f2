// Package registry maps game variant IDs to factories.
// Variants register themselves in init(), so the CLI and the TUI menu
// discover them without importing game packages directly.
package registry

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/vovakirdan/roadcross/internal/core"
)

// ErrUnknownGame is returned by Create for an unregistered ID.
var ErrUnknownGame = errors.New("registry: unknown game")

// Game is what the platform drives: fixed-step input in, screen out.
// Implementations hold no terminal or Bubble Tea state.
type Game interface {
	// ID is the stable key used by the CLI and the score history.
	ID() string

	// Title is shown in the menu and the scoreboard.
	Title() string

	// Reset starts a fresh session. Called once before the first Step
	// and again on restart.
	Reset(cfg core.RuntimeConfig)

	// Step advances one fixed tick with the actions pressed since the
	// previous tick, in press order.
	Step(in core.InputFrame) core.StepResult

	// Render draws into a pre-cleared screen.
	Render(dst *core.Screen)

	State() core.GameState
}

// Summarizer is implemented by games that can describe a finished run in
// more detail than GameState. The platform stores the summary with the score.
type Summarizer interface {
	Summary() core.RunSummary
}

// GameInfo describes one registered variant.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a new, not yet Reset, game instance.
type Factory func() Game

type entry struct {
	title   string
	factory Factory
}

var (
	mu      sync.RWMutex
	entries = make(map[string]entry)
)

// Register adds a variant. Panics on a duplicate ID or a factory whose
// game reports a different ID.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := entries[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	g := f()
	if g.ID() != id {
		panic(fmt.Sprintf("registry: factory for %q builds %q", id, g.ID()))
	}
	entries[id] = entry{title: g.Title(), factory: f}
}

// List returns all registered variants sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(entries))
	for id, e := range entries {
		result = append(result, GameInfo{ID: id, Title: e.title})
	}
	slices.SortFunc(result, func(a, b GameInfo) int { return cmp.Compare(a.ID, b.ID) })
	return result
}

// Create instantiates a variant by ID.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownGame, id)
	}
	return e.factory(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := entries[id]
	return ok
}

// Title returns the display title for id, or id itself if unknown.
func Title(id string) string {
	mu.RLock()
	defer mu.RUnlock()

	if e, ok := entries[id]; ok {
		return e.title
	}
	return id
}
