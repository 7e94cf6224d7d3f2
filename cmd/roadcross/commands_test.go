package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/roadcross/internal/core"
	"github.com/vovakirdan/roadcross/internal/storage"
)

func testCommand() (*cobra.Command, *bytes.Buffer) {
	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)
	return cmd, &buf
}

func useTestDB(t *testing.T) string {
	t.Helper()
	old := flagDBPath
	flagDBPath = filepath.Join(t.TempDir(), "scores.db")
	t.Cleanup(func() { flagDBPath = old })
	return flagDBPath
}

func TestRunPlayUnknownGame(t *testing.T) {
	err := runPlay(nil, []string{"nope"})
	if err == nil || !strings.Contains(err.Error(), `unknown game "nope"`) {
		t.Errorf("runPlay() error = %v", err)
	}
}

func TestRunConfig(t *testing.T) {
	cmd, buf := testCommand()
	if err := runConfig(cmd, nil); err != nil {
		t.Fatalf("runConfig() failed: %v", err)
	}
	if buf.Len() == 0 {
		t.Error("default config should be printed")
	}

	if err := runConfig(cmd, []string{"nope"}); err == nil {
		t.Error("unknown game should return an error")
	}
}

func TestRunScoresSummary(t *testing.T) {
	path := useTestDB(t)
	store, err := storage.Open(path)
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	store.RecordRun("crossing", core.RunSummary{Score: 100, Won: true})
	store.RecordRun("crossing", core.RunSummary{Score: 20})
	store.RecordRun("retired_variant", core.RunSummary{Score: 5})
	store.Close()

	cmd, buf := testCommand()
	if err := runScores(cmd, nil); err != nil {
		t.Fatalf("runScores() failed: %v", err)
	}
	out := buf.String()
	crossingAt := strings.Index(out, "crossing ")
	retiredAt := strings.Index(out, "retired_variant")
	if crossingAt < 0 || retiredAt < 0 || retiredAt < crossingAt {
		t.Errorf("summary should list registered variants first:\n%s", out)
	}
	if strings.Contains(out, "crossing_ramp") {
		t.Errorf("variants without runs should be left out:\n%s", out)
	}
}

func TestRunScoresTopRuns(t *testing.T) {
	path := useTestDB(t)
	store, err := storage.Open(path)
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	store.RecordRun("crossing", core.RunSummary{Score: 70, GoalsClaimed: 3})
	store.Close()

	cmd, buf := testCommand()
	if err := runScores(cmd, []string{"crossing"}); err != nil {
		t.Fatalf("runScores() failed: %v", err)
	}
	if !strings.Contains(buf.String(), "Runs: 1") {
		t.Errorf("output = %q", buf.String())
	}

	if err := runScores(cmd, []string{"nope"}); err == nil {
		t.Error("unknown game should return an error")
	}
}
