package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/roadcross/internal/core"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestExpandPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := ExpandPath("~/.arcade/scores.db")
	if err != nil {
		t.Fatalf("ExpandPath() failed: %v", err)
	}
	if want := filepath.Join(home, ".arcade", "scores.db"); got != want {
		t.Errorf("ExpandPath() = %q, expected %q", got, want)
	}

	if got, _ := ExpandPath("/tmp/x.db"); got != "/tmp/x.db" {
		t.Errorf("absolute path should pass through, got %q", got)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("crossing")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	for _, score := range []int{100, 300, 200} {
		if _, err := store.RecordRun("crossing", core.RunSummary{Score: score}); err != nil {
			t.Fatalf("RecordRun() failed: %v", err)
		}
	}
	store.RecordRun("crossing_ramp", core.RunSummary{Score: 900})

	high, err = store.HighScore("crossing")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreRecordRun(t *testing.T) {
	store := openTestStore(t)

	runs := []core.RunSummary{
		{Score: 40, LivesLeft: 0, GoalsClaimed: 2, DurationTicks: 1200},
		{Score: 100, LivesLeft: 3, GoalsClaimed: 5, Won: true, DurationTicks: 3600},
		{Score: 40, LivesLeft: 0, GoalsClaimed: 2, DurationTicks: 900},
		{Score: 0, LivesLeft: 0, GoalsClaimed: 0, DurationTicks: 400},
	}
	for _, r := range runs {
		if _, err := store.RecordRun("crossing", r); err != nil {
			t.Fatalf("RecordRun() failed: %v", err)
		}
	}

	top, err := store.TopRuns("crossing", 3)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(top))
	}
	if !top[0].Won || top[0].Score != 100 || top[0].LivesLeft != 3 || top[0].GoalsClaimed != 5 {
		t.Errorf("best run = %+v", top[0])
	}
	// Equal scores keep insertion order.
	if top[1].DurationTicks != 1200 || top[2].DurationTicks != 900 {
		t.Errorf("tied runs out of order: %+v, %+v", top[1], top[2])
	}
	if top[1].Won {
		t.Error("lost run should not be marked won")
	}

	recent, err := store.RecentRuns("crossing", 2)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(recent) != 2 || recent[0].DurationTicks != 400 || recent[1].DurationTicks != 900 {
		t.Errorf("RecentRuns() = %+v", recent)
	}

	all, _ := store.TopRuns("crossing", 0)
	if len(all) != len(runs) {
		t.Errorf("default limit should return every run here, got %d", len(all))
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	store.RecordRun("crossing", core.RunSummary{Score: 100})
	store.RecordRun("crossing", core.RunSummary{Score: 200})
	store.RecordRun("crossing_ramp", core.RunSummary{Score: 300})

	if err := store.ClearRuns("crossing"); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	if runs, _ := store.TopRuns("crossing", 10); len(runs) != 0 {
		t.Errorf("Expected 0 runs after clear, got %d", len(runs))
	}
	if high, _ := store.HighScore("crossing"); high != 0 {
		t.Errorf("HighScore() after clear = %d, expected 0", high)
	}
	if runs, _ := store.TopRuns("crossing_ramp", 10); len(runs) != 1 {
		t.Error("Other games should not be affected by clearing")
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetGameStats("crossing")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if empty.RunsCount != 0 || empty.HighScore != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", empty)
	}

	store.RecordRun("crossing", core.RunSummary{Score: 100, GoalsClaimed: 5, Won: true})
	store.RecordRun("crossing", core.RunSummary{Score: 20, GoalsClaimed: 1})
	store.RecordRun("crossing_ramp", core.RunSummary{Score: 60, GoalsClaimed: 3})

	stats, err := store.GetGameStats("crossing")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.RunsCount != 2 || stats.Wins != 1 || stats.HighScore != 100 || stats.BestGoals != 5 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.AvgScore != 60 {
		t.Errorf("AvgScore = %v, expected 60", stats.AvgScore)
	}

	all, err := store.GetAllGamesStats()
	if err != nil {
		t.Fatalf("GetAllGamesStats() failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("Expected stats for 2 games, got %d", len(all))
	}
	if all["crossing_ramp"].HighScore != 60 || all["crossing_ramp"].Wins != 0 {
		t.Errorf("crossing_ramp stats = %+v", all["crossing_ramp"])
	}
}
