package main

import (
	"fmt"
	"io"
	"slices"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/roadcross/internal/registry"
	"github.com/vovakirdan/roadcross/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show the best runs for a variant",
	Long: `Display the top 10 runs for the given variant. Without a variant,
print one summary line per variant that has been played.

Examples:
  roadcross scores
  roadcross scores crossing
  roadcross scores crossing_ramp`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func runScores(cmd *cobra.Command, args []string) error {
	if len(args) == 1 && !registry.Exists(args[0]) {
		return unknownGameError(args[0])
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	out := cmd.OutOrStdout()
	if len(args) == 0 {
		return printSummary(out, store)
	}
	return printTopRuns(out, store, args[0])
}

// printSummary lists every variant in registry order, then any
// recorded ids no longer registered.
func printSummary(out io.Writer, store *storage.Store) error {
	all, err := store.GetAllGamesStats()
	if err != nil {
		return fmt.Errorf("retrieving stats: %w", err)
	}

	fmt.Fprintln(out, "Summary")
	fmt.Fprintln(out)
	if len(all) == 0 {
		fmt.Fprintln(out, "No runs recorded yet.")
		return nil
	}

	ids := make([]string, 0, len(all))
	for _, g := range registry.List() {
		if _, ok := all[g.ID]; ok {
			ids = append(ids, g.ID)
		}
	}
	var stale []string
	for id := range all {
		if !registry.Exists(id) {
			stale = append(stale, id)
		}
	}
	slices.Sort(stale)
	ids = append(ids, stale...)

	fmt.Fprintf(out, "  %-16s  %-4s  %-4s  %-4s  %-7s  %s\n", "Game", "Runs", "Wins", "Best", "Average", "Last played")
	fmt.Fprintf(out, "  %-16s  %-4s  %-4s  %-4s  %-7s  %s\n", "----", "----", "----", "----", "-------", "-----------")
	for _, id := range ids {
		st := all[id]
		last := ""
		if !st.LastPlayed.IsZero() {
			last = st.LastPlayed.Format("2006-01-02 15:04")
		}
		fmt.Fprintf(out, "  %-16s  %-4d  %-4d  %-4d  %-7.1f  %s\n",
			id, st.RunsCount, st.Wins, st.HighScore, st.AvgScore, last)
	}
	return nil
}

func printTopRuns(out io.Writer, store *storage.Store, gameID string) error {
	runs, err := store.TopRuns(gameID, 10)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Fprintf(out, "High Scores - %s\n", registry.Title(gameID))
	fmt.Fprintln(out)

	if len(runs) == 0 {
		fmt.Fprintln(out, "No runs recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Play 'roadcross play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %-6s  %-4s  %-5s  %-6s  %s\n", "Rank", "Score", "Home", "Lives", "Result", "Date")
	fmt.Fprintf(out, "  %-4s  %-6s  %-4s  %-5s  %-6s  %s\n", "----", "-----", "----", "-----", "------", "----")
	for i, r := range runs {
		result := "lost"
		if r.Won {
			result = "won"
		}
		fmt.Fprintf(out, "  %-4d  %-6d  %-4d  %-5d  %-6s  %s\n",
			i+1, r.Score, r.GoalsClaimed, r.LivesLeft, result, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	if stats, err := store.GetGameStats(gameID); err == nil {
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Runs: %d  Wins: %d  Average: %.1f\n", stats.RunsCount, stats.Wins, stats.AvgScore)
	}
	return nil
}
