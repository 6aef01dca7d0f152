package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/run-for-love/internal/config"
	"github.com/vovakirdan/run-for-love/internal/runner"
	"github.com/vovakirdan/run-for-love/internal/storage"
)

// Options configures one game session.
type Options struct {
	Config     config.RunnerConfig
	Seed       int64 // 0 picks a time-based seed
	TickRate   int
	SkipIntro  bool
	Player     string // Name stored with finished runs
	Width      int
	Height     int
	Standalone bool // Back quits instead of returning to a menu
}

// MusicToggler is implemented by audio notifiers with background music.
type MusicToggler interface {
	ToggleMusic() bool
}

// Model is the Bubble Tea model that hosts a runner.Game.
type Model struct {
	loop     *runner.Loop
	renderer *ScreenRenderer
	keys     *KeyMapper
	audio    runner.AudioNotifier
	store    *storage.Store
	logger   *log.Logger
	opts     Options
	quitting bool
	back     bool
}

// NewModel creates a game model. store and audio may be nil; logger
// defaults to the charm default logger.
func NewModel(opts Options, store *storage.Store, audio runner.AudioNotifier, logger *log.Logger) Model {
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	if opts.TickRate <= 0 {
		opts.TickRate = 60
	}
	if opts.Player == "" {
		opts.Player = "local"
	}
	if audio == nil {
		audio = runner.NopAudio{}
	}
	if logger == nil {
		logger = log.Default()
	}

	game := runner.New(opts.Config, opts.Seed, audio)
	if opts.SkipIntro {
		game.SkipIntro()
	}
	renderer := NewScreenRenderer(opts.Config.World, opts.Width, opts.Height)
	renderer.DrawFrame(game.Snapshot())

	return Model{
		loop:     runner.NewLoop(game, renderer),
		renderer: renderer,
		keys:     NewKeyMapper(),
		audio:    audio,
		store:    store,
		logger:   logger,
		opts:     opts,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.logger.Debug("game started", "seed", m.opts.Seed, "player", m.opts.Player)
	return tickCmd(m.opts.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		game := m.loop.Game()
		if ev, ok := m.keys.MapMouse(msg, game.PrimaryAction(), m.renderer.Viewport()); ok {
			m.loop.Push(ev)
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.opts.Width, m.opts.Height = msg.Width, msg.Height
		m.renderer.Resize(msg.Width, msg.Height)
		m.renderer.DrawFrame(m.loop.Game().Snapshot())
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	game := m.loop.Game()
	cmd, ev := m.keys.MapKey(msg, game.PrimaryAction())

	switch cmd {
	case KeyQuit:
		m.quitting = true
		return m, tea.Quit

	case KeyBack:
		// Back is ignored mid-run.
		if s := game.State(); s == runner.StatePlaying || s == runner.StateWinAnimation {
			return m, nil
		}
		m.back = true
		if m.opts.Standalone {
			m.quitting = true
			return m, tea.Quit
		}

	case KeyToggleMusic:
		if t, ok := m.audio.(MusicToggler); ok {
			on := t.ToggleMusic()
			m.logger.Debug("music toggled", "on", on)
		}

	case KeyScreenshot:
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "error", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}

	case KeyInput:
		m.loop.Push(ev)
	}

	return m, nil
}

func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	res := m.loop.Tick(now)
	for _, ev := range res.Events {
		m.logEvent(ev)
		if ev.Kind == runner.EventStateChanged && (ev.To == runner.StateGameOver || ev.To == runner.StateWin) {
			m.saveOutcome()
		}
	}
	return m, tickCmd(m.opts.TickRate)
}

func (m Model) logEvent(ev runner.Event) {
	switch ev.Kind {
	case runner.EventStateChanged:
		m.logger.Debug("state changed", "from", ev.From, "to", ev.To, "score", ev.Score, "run_time", ev.RunTime)
	case runner.EventModeChanged:
		m.logger.Debug("mode changed", "mode", ev.Mode, "run_time", ev.RunTime)
	case runner.EventFreeHit:
		m.logger.Debug("free hit used", "run_time", ev.RunTime)
	case runner.EventWinStage:
		m.logger.Debug("win stage", "stage", ev.Stage)
	case runner.EventEnvelopeOpened:
		m.logger.Debug("envelope opened")
	}
}

// saveOutcome records the finished run. Storage failures are logged and
// the game keeps running.
func (m Model) saveOutcome() {
	game := m.loop.Game()
	out, ok := game.Outcome()
	if !ok {
		return
	}
	m.logger.Info("run finished", "result", out.Result, "mode", out.Mode, "score", out.Score, "duration", out.Duration)
	if m.store == nil {
		return
	}
	_, err := m.store.SaveRun(storage.RunRecord{
		Player:       m.opts.Player,
		Result:       out.Result,
		Mode:         out.Mode.String(),
		Score:        out.Score,
		Collectibles: out.Collectibles,
		Duration:     out.Duration,
		Seed:         game.Seed(),
	})
	if err != nil {
		m.logger.Warn("could not save run", "error", err)
	}
}

// saveScreenshot writes the current frame as plain text under
// ~/.runforlove/screenshots.
func (m Model) saveScreenshot() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("tui: cannot get home directory: %w", err)
	}
	dir := filepath.Join(home, ".runforlove", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("tui: cannot create %s: %w", dir, err)
	}

	path := filepath.Join(dir, fmt.Sprintf("run_%s.txt", time.Now().Format("20060102_150405")))
	if err := os.WriteFile(path, []byte(m.renderer.Screen().String()), 0o600); err != nil {
		return "", fmt.Errorf("tui: cannot write screenshot: %w", err)
	}
	return path, nil
}

// View renders the last drawn frame.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return RenderScreen(m.renderer.Screen())
}

// Game returns the hosted game.
func (m Model) Game() *runner.Game {
	return m.loop.Game()
}

// IsQuitting returns true if the user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the user asked to leave the game.
func (m Model) BackToMenu() bool {
	return m.back
}

// Run starts a standalone Bubble Tea program hosting one game.
func Run(opts Options, store *storage.Store, audio runner.AudioNotifier, logger *log.Logger) error {
	opts.Standalone = true
	model := NewModel(opts, store, audio, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
