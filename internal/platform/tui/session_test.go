package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/run-for-love/internal/runner"
	"github.com/vovakirdan/run-for-love/internal/storage"
)

func updateSession(t *testing.T, m SessionModel, msg tea.Msg) (SessionModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(SessionModel)
	if !ok {
		t.Fatalf("Update returned %T, expected SessionModel", next)
	}
	return model, cmd
}

func TestSessionQuickPlayAndBack(t *testing.T) {
	m := NewSessionModel(testOptions(), nil, nil, quietLogger())
	if m.screen != screenMenu {
		t.Fatalf("session should open on the menu")
	}

	m, _ = updateSession(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, cmd := updateSession(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.screen != screenGame {
		t.Fatalf("screen = %v, expected game", m.screen)
	}
	if cmd == nil {
		t.Error("entering a game should start the tick loop")
	}
	if m.game.Game().State() != runner.StateStart {
		t.Errorf("quick play state = %v, expected start", m.game.Game().State())
	}
	if m.game.opts.Player != "tester" {
		t.Errorf("player = %q, expected session user", m.game.opts.Player)
	}

	m, _ = updateSession(t, m, tea.KeyMsg{Type: tea.KeyEscape})
	if m.screen != screenMenu {
		t.Errorf("screen after back = %v, expected menu", m.screen)
	}
	if m.menu.Selected() != ChoiceNone {
		t.Error("menu should be fresh after returning")
	}

	// Ticks left over from the game are ignored by the menu.
	m, cmd = updateSession(t, m, TickMsg(time.Now()))
	if cmd != nil || m.screen != screenMenu {
		t.Error("menu should swallow stray ticks")
	}
}

func TestSessionPlayStartsWithIntro(t *testing.T) {
	m := NewSessionModel(testOptions(), nil, nil, quietLogger())

	m, _ = updateSession(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.screen != screenGame {
		t.Fatalf("screen = %v, expected game", m.screen)
	}
	if m.game.Game().State() != runner.StateIntro {
		t.Errorf("state = %v, expected intro", m.game.Game().State())
	}
}

func TestSessionScoreboard(t *testing.T) {
	store := openTestStore(t)
	if _, err := store.SaveRun(storage.RunRecord{Player: "robin", Result: "win", Mode: "finale", Score: 321}); err != nil {
		t.Fatalf("SaveRun: %v", err)
	}

	opts := testOptions()
	opts.Width = 110
	m := NewSessionModel(opts, store, nil, quietLogger())
	if !strings.Contains(m.View(), "Best score: 321") {
		t.Error("menu should show the high score")
	}

	m, _ = updateSession(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.screen != screenScores {
		t.Fatalf("screen = %v, expected scores", m.screen)
	}
	view := m.View()
	for _, want := range []string{"HIGH SCORES", "robin", "321", "Runs:"} {
		if !strings.Contains(view, want) {
			t.Errorf("scoreboard missing %q:\n%s", want, view)
		}
	}

	m, _ = updateSession(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if !strings.Contains(m.View(), "RECENT RUNS") {
		t.Error("tab should switch to recent runs")
	}

	m, _ = updateSession(t, m, tea.KeyMsg{Type: tea.KeyEscape})
	if m.screen != screenMenu {
		t.Errorf("screen after back = %v, expected menu", m.screen)
	}
}

func TestSessionQuit(t *testing.T) {
	m := NewSessionModel(testOptions(), nil, nil, quietLogger())

	m, cmd := updateSession(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if !m.quitting || cmd == nil {
		t.Error("q on the menu should end the session")
	}
	if m.View() != "" {
		t.Error("quitting session should render nothing")
	}
}

func TestSessionDefaultsPlayerName(t *testing.T) {
	opts := testOptions()
	opts.Player = "  "
	m := NewSessionModel(opts, nil, nil, nil)
	if m.opts.Player != "guest" {
		t.Errorf("player = %q, expected guest", m.opts.Player)
	}
}

func TestScoreboardEmpty(t *testing.T) {
	m := NewScoreboardModel(nil, 80, 24)
	if !strings.Contains(m.View(), "No runs recorded yet") {
		t.Error("empty scoreboard should say so")
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("b")})
	if !next.(ScoreboardModel).IsGoingBack() {
		t.Error("b should go back")
	}
}
