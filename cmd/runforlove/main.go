// runforlove is a terminal side-scroller: open the letter, run through
// three levels and reach the finish line.
//
// Usage:
//
//	runforlove play            - Play one game
//	runforlove menu            - Start the menu to play, replay and browse scores
//	runforlove serve           - Start SSH server for remote play
//	runforlove scores          - Show the best runs
//	runforlove config          - Print the default tuning file
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.runforlove/runs.db)
//	--config <path>       - Load tuning from a YAML file
//	--log-level <level>   - debug, info, warn or error (default: info)
//	--log-file <path>     - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "runforlove",
	Short: "Run For Love - a love letter you can play in your terminal",
	Long: `Run For Love is a side-scroller for the terminal. Open the envelope,
read the letter, then jump over obstacles and collect coffee cups through
three levels until you reach the finish line.

Available commands:
  play     - Play one game directly
  menu     - Interactive menu with replays and high scores
  serve    - Start SSH server for remote play
  scores   - View the best runs
  config   - Print the default tuning file

Examples:
  runforlove play
  runforlove play --skip-intro --mute
  runforlove menu
  runforlove serve --ssh :2222
  runforlove scores --recent`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.runforlove/runs.db", "Path to runs database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom runner config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the command logger. Full-screen commands pass
// io.Discard as the fallback since the terminal belongs to the UI; the
// returned close func releases the log file.
func newLogger(fallback io.Writer) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	out := fallback
	closeFn := func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		out = f
		closeFn = func() { f.Close() }
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "runforlove",
		Level:           level,
	})
	log.SetDefault(logger)
	return logger, closeFn, nil
}
