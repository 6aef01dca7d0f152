package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/run-for-love/internal/config"
	"github.com/vovakirdan/run-for-love/internal/core"
	"github.com/vovakirdan/run-for-love/internal/runner"
)

const testFrame = 50 * time.Millisecond

func stepGame(g *runner.Game, d time.Duration, inputs ...core.InputEvent) {
	g.Step(0, inputs)
	for elapsed := time.Duration(0); elapsed < d; elapsed += testFrame {
		g.Step(testFrame, nil)
	}
}

func drawn(g *runner.Game, cols, rows int) string {
	r := NewScreenRenderer(g.Config().World, cols, rows)
	r.DrawFrame(g.Snapshot())
	return r.Screen().String()
}

func TestDrawStartScreen(t *testing.T) {
	g := runner.New(config.DefaultRunnerConfig(), 1, nil)
	g.SkipIntro()

	out := drawn(g, 80, 24)
	if !strings.Contains(out, "RUN FOR LOVE") {
		t.Errorf("start screen missing title:\n%s", out)
	}
	if !strings.Contains(out, "▀") {
		t.Error("start screen missing ground")
	}
}

func TestDrawIntro(t *testing.T) {
	g := runner.New(config.DefaultRunnerConfig(), 1, nil)

	stepGame(g, runner.EnvelopeGrowDuration+200*time.Millisecond)
	out := drawn(g, 80, 24)
	if !strings.Contains(out, "Click the envelope") {
		t.Errorf("grown envelope missing click hint:\n%s", out)
	}
	if !strings.Contains(out, "♥") {
		t.Error("envelope missing seal")
	}

	stepGame(g, 5*time.Second, core.NewInputEvent(core.ActionEnvelopeClick))
	if g.IntroPhase() != runner.IntroLetter {
		t.Fatalf("intro phase = %v, expected letter", g.IntroPhase())
	}
	out = drawn(g, 80, 24)
	for _, want := range []string{"Start the run", "Ready to run"} {
		if !strings.Contains(out, want) {
			t.Errorf("letter screen missing %q:\n%s", want, out)
		}
	}
}

func TestDrawLetterPromptAboveStartControl(t *testing.T) {
	g := runner.New(config.DefaultRunnerConfig(), 1, nil)
	stepGame(g, runner.EnvelopeGrowDuration+200*time.Millisecond)
	stepGame(g, 5*time.Second, core.NewInputEvent(core.ActionEnvelopeClick))
	if f := g.Snapshot().Intro; !f.ShowPrompt || !f.ShowStart {
		t.Fatalf("letter not ready: prompt=%v start=%v", f.ShowPrompt, f.ShowStart)
	}

	findRow := func(s *core.Screen, text string) int {
		for y := range s.Height() {
			if strings.Contains(s.Row(y), text) {
				return y
			}
		}
		return -1
	}

	for _, size := range [][2]int{{80, 24}, {100, 30}, {120, 40}, {60, 18}} {
		r := NewScreenRenderer(g.Config().World, size[0], size[1])
		r.DrawFrame(g.Snapshot())
		prompt := findRow(r.Screen(), "Ready to run")
		start := findRow(r.Screen(), "Start the run")
		if prompt < 0 || start < 0 {
			t.Errorf("%dx%d: prompt row %d, start row %d", size[0], size[1], prompt, start)
			continue
		}
		if prompt >= start {
			t.Errorf("%dx%d: prompt row %d not above start row %d", size[0], size[1], prompt, start)
		}
	}
}

func TestDrawPlayingHUD(t *testing.T) {
	g := runner.New(config.DefaultRunnerConfig(), 1, nil)
	g.SkipIntro()
	stepGame(g, 500*time.Millisecond, core.NewInputEvent(core.ActionStart))

	r := NewScreenRenderer(g.Config().World, 80, 24)
	r.DrawFrame(g.Snapshot())
	hud := r.Screen().Row(0)
	if !strings.Contains(hud, "Score") || !strings.Contains(hud, "Sunset") {
		t.Errorf("HUD row = %q", hud)
	}
	if !strings.Contains(r.Screen().String(), "█") {
		t.Error("runner not drawn")
	}
}

func TestDrawEveryStateWithoutPanic(t *testing.T) {
	sizes := [][2]int{{0, 0}, {1, 1}, {20, 8}, {80, 24}, {200, 60}}
	g := runner.New(config.DefaultRunnerConfig(), 3, nil)
	renderers := make([]*ScreenRenderer, len(sizes))
	for i, s := range sizes {
		renderers[i] = NewScreenRenderer(g.Config().World, s[0], s[1])
	}

	seen := map[runner.GameState]bool{}
	draw := func() {
		snap := g.Snapshot()
		seen[snap.State] = true
		for _, r := range renderers {
			r.DrawFrame(snap)
		}
	}

	// Intro through the letter, then run without jumping until the run ends.
	for range 200 {
		g.Step(testFrame, []core.InputEvent{core.NewInputEvent(g.PrimaryAction())})
		draw()
		if g.State() != runner.StateIntro {
			break
		}
	}
	for i := 0; i < 20000 && g.State() != runner.StateGameOver && g.State() != runner.StateWin; i++ {
		g.Step(testFrame, nil)
		if i%5 == 0 {
			draw()
		}
	}
	draw()
	g.Step(0, []core.InputEvent{core.NewInputEvent(core.ActionReset)})
	draw()

	for _, s := range []runner.GameState{runner.StateIntro, runner.StateStart, runner.StatePlaying} {
		if !seen[s] {
			t.Errorf("state %v never drawn", s)
		}
	}
	if !seen[runner.StateGameOver] && !seen[runner.StateWin] {
		t.Error("run never finished")
	}
}

func TestRendererResize(t *testing.T) {
	g := runner.New(config.DefaultRunnerConfig(), 1, nil)
	g.SkipIntro()

	r := NewScreenRenderer(g.Config().World, 40, 12)
	r.Resize(100, 30)
	r.DrawFrame(g.Snapshot())

	if r.Screen().Width() != 100 || r.Screen().Height() != 30 {
		t.Errorf("screen = %dx%d, expected 100x30", r.Screen().Width(), r.Screen().Height())
	}
	if vp := r.Viewport(); vp.Cols != 100 || vp.Rows != 30 {
		t.Errorf("viewport = %dx%d, expected 100x30", vp.Cols, vp.Rows)
	}
}
