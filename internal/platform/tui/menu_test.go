package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/roadcross/internal/core"
	"github.com/vovakirdan/roadcross/internal/registry"
	"github.com/vovakirdan/roadcross/internal/storage"
)

func init() {
	registry.Register("scripted", func() registry.Game { return &scriptedGame{endAfter: 1} })
}

func TestMenuSelect(t *testing.T) {
	m := NewMenuModel(nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 24})
	if len(m.items) == 0 {
		t.Fatal("menu should list registered games")
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	res := next.(MenuModel).Result()
	if res.Quit || res.GameID != m.items[0].GameID {
		t.Errorf("Result() = %+v, expected %q selected", res, m.items[0].GameID)
	}
}

func TestMenuScoreboardAndQuit(t *testing.T) {
	m := NewMenuModel(nil, core.DefaultConfig())

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if !next.(MenuModel).Result().WantsScoreboard {
		t.Error("tab should open the scoreboard")
	}

	next, _ = m.Update(runeKey('q'))
	if !next.(MenuModel).Result().Quit {
		t.Error("q should quit")
	}
}

func TestMenuShowsHighScore(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	defer store.Close()
	store.RecordRun("scripted", core.RunSummary{Score: 70})

	m := NewMenuModel(store, core.RuntimeConfig{ScreenW: 80, ScreenH: 24})
	var found bool
	for _, item := range m.items {
		if item.GameID == "scripted" {
			found = item.HighScore == 70
		}
	}
	if !found {
		t.Errorf("scripted item should carry its high score, items = %+v", m.items)
	}
	if !strings.Contains(m.View(), "Scripted") {
		t.Error("View should list game titles")
	}
}

func TestScoreboardLoadsRuns(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	defer store.Close()
	store.RecordRun("scripted", core.RunSummary{Score: 40, GoalsClaimed: 2})
	store.RecordRun("scripted", core.RunSummary{Score: 100, GoalsClaimed: 5, Won: true, LivesLeft: 2})

	m := NewScoreboardModel(store, 100, 30)
	for m.games[m.gameCursor].ID != "scripted" {
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
		m = next.(ScoreboardModel)
	}

	if len(m.runs) != 2 || m.runs[0].Score != 100 {
		t.Fatalf("runs = %+v", m.runs)
	}
	rows := runRows(m.runs)
	if rows[0][1] != "100" || rows[0][2] != "5" || rows[0][4] != "won" {
		t.Errorf("first row = %v", rows[0])
	}
	if m.stats == nil || m.stats.RunsCount != 2 {
		t.Errorf("stats = %+v", m.stats)
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !next.(ScoreboardModel).goingBack {
		t.Error("esc should go back to the menu")
	}
}

func TestScoreboardRecentAndClear(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	defer store.Close()
	store.RecordRun("scripted", core.RunSummary{Score: 100})
	store.RecordRun("scripted", core.RunSummary{Score: 30})

	m := NewScoreboardModel(store, 100, 30)
	for m.games[m.gameCursor].ID != "scripted" {
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
		m = next.(ScoreboardModel)
	}

	next, _ := m.Update(runeKey('r'))
	m = next.(ScoreboardModel)
	if !m.recent || len(m.runs) != 2 || m.runs[0].Score != 30 {
		t.Fatalf("recent view runs = %+v", m.runs)
	}
	if !strings.Contains(m.View(), "RECENT RUNS") {
		t.Error("recent view should change the title")
	}

	// A single x only arms the clear; any other key disarms it.
	next, _ = m.Update(runeKey('x'))
	m = next.(ScoreboardModel)
	if !m.armedClear || len(m.runs) != 2 {
		t.Fatalf("first x should only arm, armed=%v runs=%d", m.armedClear, len(m.runs))
	}
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(ScoreboardModel)
	if m.armedClear {
		t.Error("other keys should disarm the clear")
	}

	for range 2 {
		next, _ = m.Update(runeKey('x'))
		m = next.(ScoreboardModel)
	}
	if len(m.runs) != 0 {
		t.Errorf("runs after clear = %+v", m.runs)
	}
	if high, _ := store.HighScore("scripted"); high != 0 {
		t.Errorf("HighScore() after clear = %d", high)
	}
}
