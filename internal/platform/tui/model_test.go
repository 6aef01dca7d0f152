package tui

import (
	"io"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/run-for-love/internal/config"
	"github.com/vovakirdan/run-for-love/internal/runner"
	"github.com/vovakirdan/run-for-love/internal/storage"
)

func testOptions() Options {
	return Options{
		Config:    config.DefaultRunnerConfig(),
		Seed:      7,
		TickRate:  60,
		SkipIntro: true,
		Player:    "tester",
		Width:     80,
		Height:    24,
	}
}

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

func openTestStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func updateModel(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, expected Model", next)
	}
	return model, cmd
}

// ticker produces frame timestamps 50ms apart.
type ticker struct {
	now time.Time
}

func (tk *ticker) next() TickMsg {
	tk.now = tk.now.Add(50 * time.Millisecond)
	return TickMsg(tk.now)
}

type toggleAudio struct {
	runner.NopAudio
	toggles int
}

func (a *toggleAudio) ToggleMusic() bool {
	a.toggles++
	return a.toggles%2 == 0
}

func TestModelStartsRunOnSpace(t *testing.T) {
	m := NewModel(testOptions(), nil, nil, quietLogger())
	tk := &ticker{now: time.Unix(1000, 0)}

	if m.Game().State() != runner.StateStart {
		t.Fatalf("initial state = %v, expected start", m.Game().State())
	}
	if !strings.Contains(m.View(), "RUN FOR LOVE") {
		t.Error("start screen not rendered before the first tick")
	}

	m, _ = updateModel(t, m, tea.KeyMsg{Type: tea.KeySpace})
	if m.Game().State() != runner.StateStart {
		t.Error("input applied before the next tick")
	}

	m, cmd := updateModel(t, m, tk.next())
	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}
	if m.Game().State() != runner.StatePlaying {
		t.Errorf("state after tick = %v, expected playing", m.Game().State())
	}

	m, _ = updateModel(t, m, tea.KeyMsg{Type: tea.KeyEscape})
	if m.BackToMenu() || m.IsQuitting() {
		t.Error("back must be ignored while playing")
	}
}

func TestModelSavesFinishedRun(t *testing.T) {
	store := openTestStore(t)
	m := NewModel(testOptions(), store, nil, quietLogger())
	tk := &ticker{now: time.Unix(1000, 0)}

	m, _ = updateModel(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	for i := 0; i < 20000; i++ {
		m, _ = updateModel(t, m, tk.next())
		if s := m.Game().State(); s == runner.StateGameOver || s == runner.StateWin {
			break
		}
	}

	out, ok := m.Game().Outcome()
	if !ok {
		t.Fatalf("run did not finish, state = %v", m.Game().State())
	}

	runs, err := store.TopRuns(10)
	if err != nil {
		t.Fatalf("TopRuns: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("saved %d runs, expected 1", len(runs))
	}
	r := runs[0]
	if r.Player != "tester" || r.Seed != 7 {
		t.Errorf("record player/seed = %q/%d", r.Player, r.Seed)
	}
	if r.Result != out.Result || r.Score != out.Score || r.Mode != out.Mode.String() {
		t.Errorf("record = %+v, outcome = %+v", r, out)
	}

	// Terminal states are frozen and saved once.
	for range 10 {
		m, _ = updateModel(t, m, tk.next())
	}
	if runs, _ := store.TopRuns(10); len(runs) != 1 {
		t.Errorf("saved %d runs after idle ticks, expected 1", len(runs))
	}

	m, _ = updateModel(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})
	m, _ = updateModel(t, m, tk.next())
	if m.Game().State() != runner.StateStart {
		t.Fatalf("state after reset = %v, expected start", m.Game().State())
	}

	m, _ = updateModel(t, m, tea.KeyMsg{Type: tea.KeyEscape})
	if !m.BackToMenu() {
		t.Error("back should leave the game from the start screen")
	}
	if m.IsQuitting() {
		t.Error("back inside a session must not quit")
	}
}

func TestModelStandaloneBackQuits(t *testing.T) {
	opts := testOptions()
	opts.Standalone = true
	m := NewModel(opts, nil, nil, quietLogger())

	m, cmd := updateModel(t, m, tea.KeyMsg{Type: tea.KeyEscape})
	if !m.IsQuitting() || cmd == nil {
		t.Error("back in a standalone game should quit")
	}
	if m.View() != "" {
		t.Error("quitting model should render nothing")
	}
}

func TestModelQuitAndMusicToggle(t *testing.T) {
	audio := &toggleAudio{}
	m := NewModel(testOptions(), nil, audio, quietLogger())

	m, _ = updateModel(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("m")})
	m, _ = updateModel(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("m")})
	if audio.toggles != 2 {
		t.Errorf("toggles = %d, expected 2", audio.toggles)
	}

	m, cmd := updateModel(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if !m.IsQuitting() || cmd == nil {
		t.Error("q should quit")
	}
}

func TestModelResize(t *testing.T) {
	m := NewModel(testOptions(), nil, nil, quietLogger())

	m, _ = updateModel(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	if w, h := m.renderer.Screen().Width(), m.renderer.Screen().Height(); w != 120 || h != 40 {
		t.Errorf("screen = %dx%d, expected 120x40", w, h)
	}
	if lines := strings.Count(m.View(), "\n"); lines != 39 {
		t.Errorf("view has %d line breaks, expected 39", lines)
	}
}

func TestModelIntroMouseClick(t *testing.T) {
	opts := testOptions()
	opts.SkipIntro = false
	m := NewModel(opts, nil, nil, quietLogger())
	tk := &ticker{now: time.Unix(1000, 0)}

	for range 70 {
		m, _ = updateModel(t, m, tk.next())
	}

	// A click far from the envelope misses.
	m, _ = updateModel(t, m, tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m, _ = updateModel(t, m, tk.next())
	if m.Game().IntroPhase() != runner.IntroEnvelope {
		t.Fatalf("corner click opened the envelope")
	}

	m, _ = updateModel(t, m, tea.MouseMsg{X: 40, Y: 12, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m, _ = updateModel(t, m, tk.next())
	if m.Game().IntroPhase() != runner.IntroOpening {
		t.Errorf("intro phase after center click = %v, expected opening", m.Game().IntroPhase())
	}
}
