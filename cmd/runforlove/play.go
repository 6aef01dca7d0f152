package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/run-for-love/internal/audio"
	"github.com/vovakirdan/run-for-love/internal/config"
	"github.com/vovakirdan/run-for-love/internal/platform/tui"
	"github.com/vovakirdan/run-for-love/internal/runner"
	"github.com/vovakirdan/run-for-love/internal/storage"
)

var (
	flagSkipIntro bool
	flagMute      bool
	flagVolume    float64
	flagPlayer    string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play one game",
	Long: `Start the game: the envelope, the letter, then the run.

Controls:
  Enter/Click  - Open the envelope, press the start control
  Space/Up/W   - Start, then jump
  Space/R      - Run again after game over or a win
  M            - Toggle music
  Ctrl+S       - Save a text screenshot
  B/Esc        - Leave (not while running)
  Q/Ctrl+C     - Quit

Examples:
  runforlove play
  runforlove play --skip-intro
  runforlove play --mute --seed 42
  runforlove play --config ./my-runner.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagSkipIntro, "skip-intro", false, "Skip the envelope and letter")
	addSessionFlags(playCmd)
}

// addSessionFlags registers the flags shared by local game commands.
func addSessionFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
	cmd.Flags().Float64Var(&flagVolume, "volume", 0.8, "Master volume (0-1)")
	cmd.Flags().StringVar(&flagPlayer, "player", "", "Name stored with your runs (default: $USER)")
}

func runPlay(_ *cobra.Command, _ []string) {
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	opts, err := sessionOptions()
	if err != nil {
		closeLog()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	opts.SkipIntro = flagSkipIntro

	store := openStore(logger)
	player := startAudio(logger)

	runErr := tui.Run(opts, store, notifier(player), logger)

	// Release resources before potential exit
	if player != nil {
		player.Close()
	}
	if store != nil {
		store.Close()
	}
	closeLog()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// sessionOptions builds game options from the global flags and the
// current terminal.
func sessionOptions() (tui.Options, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return tui.Options{}, err
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	name := flagPlayer
	if name == "" {
		name = os.Getenv("USER")
	}

	return tui.Options{
		Config:   cfg,
		Seed:     flagSeed,
		TickRate: flagFPS,
		Player:   name,
		Width:    width,
		Height:   height,
	}, nil
}

// openStore opens the runs database. The game still works without it.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		logger.Warn("running without storage", "error", err)
		return nil
	}
	return store
}

// startAudio opens the speaker unless muted. A machine without a sound
// device plays silently.
func startAudio(logger *log.Logger) *audio.Player {
	if flagMute || flagVolume <= 0 {
		return nil
	}
	player := audio.New(min(flagVolume, 1), logger)
	if err := player.Start(); err != nil {
		logger.Warn("sound disabled", "error", err)
		return nil
	}
	return player
}

func notifier(p *audio.Player) runner.AudioNotifier {
	if p == nil {
		return nil
	}
	return p
}
