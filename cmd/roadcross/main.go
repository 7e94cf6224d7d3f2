// roadcross is a terminal road-crossing game.
//
// Usage:
//
//	roadcross list              - List game variants
//	roadcross play [game]       - Play a variant (default: crossing)
//	roadcross menu              - Pick variants interactively
//	roadcross scores [game]     - Show the best runs, or a summary of every variant
//	roadcross config [game]     - Print the default YAML config
//
// Global flags:
//
//	--fps <rate>         - Tick rate (default: 60)
//	--seed <value>       - RNG seed for reproducible traffic
//	--db <path>          - Database path (default: ~/.arcade/scores.db)
//	--log-level <level>  - debug, info, warn or error (default: info)
//	--log-file <path>    - Log destination, "-" for stderr (default: ~/.arcade/roadcross.log)
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/roadcross/internal/games/crossing"
	"github.com/vovakirdan/roadcross/internal/storage"
)

var (
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
	flagLogFile  string
)

var (
	logger    = log.New(io.Discard)
	logCloser io.Closer
)

func main() {
	err := rootCmd.Execute()
	if logCloser != nil {
		logCloser.Close()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "roadcross",
	Short: "Road Crossing - get everyone home across five lanes of traffic",
	Long: `Road Crossing is a terminal arcade game. Walk your runner across five
lanes of traffic and into the five home slots before the timer runs out.

Available commands:
  list     - Show game variants
  play     - Play a variant directly
  menu     - Interactive variant picker
  scores   - View the best runs
  config   - Print the default config

Examples:
  roadcross play
  roadcross play crossing_ramp --ramp steep
  roadcross menu --fps 30
  roadcross scores crossing`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setupLogger,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "~/.arcade/roadcross.log", `Log file ("-" for stderr)`)

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// setupLogger builds the shared logger. The TUI owns the terminal, so
// logs go to a file unless --log-file is "-".
func setupLogger(_ *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	var w io.Writer = os.Stderr
	if flagLogFile != "-" {
		path, err := storage.ExpandPath(flagLogFile)
		if err != nil {
			return err
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return fmt.Errorf("cannot create log directory: %w", err)
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("cannot open log file: %w", err)
		}
		w, logCloser = f, f
	}

	logger = log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "roadcross",
		Level:           level,
	})
	crossing.SetLogger(logger.WithPrefix("crossing"))
	return nil
}

// openStore opens the score database. Play goes on without it.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "err", err)
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil
	}
	return store
}
