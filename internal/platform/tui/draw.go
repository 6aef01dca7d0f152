package tui

import (
	"fmt"
	"math"

	"github.com/vovakirdan/run-for-love/internal/config"
	"github.com/vovakirdan/run-for-love/internal/core"
	"github.com/vovakirdan/run-for-love/internal/runner"
)

// Mode palette: runner costume, ground and sky detail.
type modeTheme struct {
	runner core.Color
	ground core.Color
	sky    rune
	label  string
}

var themes = map[runner.PlayMode]modeTheme{
	runner.ModeNormal:     {runner: core.ColorRed, ground: core.ColorGreen, sky: ' ', label: "Sunset"},
	runner.ModeAltCostume: {runner: core.ColorGray, ground: core.ColorBlue, sky: '.', label: "Night city"},
	runner.ModeFinale:     {runner: core.ColorCyan, ground: core.ColorBrown, sky: '/', label: "Seattle"},
}

var obstacleColors = []core.Color{core.ColorOrange, core.ColorBrown, core.ColorRed}

// ScreenRenderer draws snapshots into a character screen. It implements
// runner.Renderer.
type ScreenRenderer struct {
	screen *core.Screen
	view   Viewport
}

// NewScreenRenderer creates a renderer for a cols x rows terminal.
func NewScreenRenderer(world config.WorldConfig, cols, rows int) *ScreenRenderer {
	return &ScreenRenderer{
		screen: core.NewScreen(cols, rows),
		view:   Viewport{World: world, Cols: cols, Rows: rows},
	}
}

// Resize changes the target terminal size.
func (r *ScreenRenderer) Resize(cols, rows int) {
	r.screen.Resize(cols, rows)
	r.view.Cols, r.view.Rows = cols, rows
}

// Screen returns the buffer holding the last drawn frame.
func (r *ScreenRenderer) Screen() *core.Screen {
	return r.screen
}

// Viewport returns the current world-to-cell mapping.
func (r *ScreenRenderer) Viewport() Viewport {
	return r.view
}

// DrawFrame renders one snapshot.
func (r *ScreenRenderer) DrawFrame(snap runner.Snapshot) {
	r.view.World = snap.World
	r.screen.Clear()
	if r.view.Cols <= 0 || r.view.Rows <= 0 {
		return
	}

	switch snap.State {
	case runner.StateIntro:
		r.drawIntro(snap)
	case runner.StateStart:
		r.drawGround(snap, runner.ModeNormal)
		r.drawPanel([]string{
			"RUN FOR LOVE",
			"",
			"Press SPACE or ENTER to start",
			"M toggles music, Q quits",
		}, core.ColorBrightMagenta)
	case runner.StatePlaying:
		r.drawRun(snap)
		r.drawBanner(snap.Banner)
	case runner.StateGameOver:
		r.drawRun(snap)
		r.drawPanel([]string{
			"GAME OVER",
			fmt.Sprintf("Score: %d", snap.Score),
			"",
			"Press SPACE or R to run again",
		}, core.ColorBrightRed)
	case runner.StateWinAnimation:
		r.drawWin(snap)
	case runner.StateWin:
		r.drawGround(snap, snap.Mode)
		r.drawPanel([]string{
			"YOU WIN!",
			fmt.Sprintf("Score: %d", snap.Score),
			"",
			"Press SPACE or R to play again",
		}, core.ColorBrightYellow)
	}
}

func (r *ScreenRenderer) drawGround(snap runner.Snapshot, mode runner.PlayMode) {
	theme := themes[mode]
	_, groundRow := r.view.ToCell(0, snap.World.GroundY)

	if theme.sky != ' ' {
		// Sky detail drifts with run time.
		shift := int(snap.RunTime.Milliseconds() / 120)
		for y := 1; y < groundRow; y++ {
			for x := 0; x < r.view.Cols; x++ {
				if (x+y*7+shift)%23 == 0 {
					r.screen.SetColored(x, y, theme.sky, core.ColorGray)
				}
			}
		}
	}

	r.screen.DrawHLine(0, groundRow, r.view.Cols, '▀', theme.ground)
	for y := groundRow + 1; y < r.view.Rows; y++ {
		r.screen.DrawHLine(0, y, r.view.Cols, '░', theme.ground)
	}
}

func (r *ScreenRenderer) drawRun(snap runner.Snapshot) {
	r.drawGround(snap, snap.Mode)

	for _, o := range snap.Obstacles {
		c := obstacleColors[o.Variant%len(obstacleColors)]
		r.screen.DrawRect(r.view.CellRect(o.Rect()), '█', c)
	}
	for _, c := range snap.Collectibles {
		col, row := r.view.ToCell(c.X+c.R, c.Y+c.R)
		r.screen.SetColored(col, row, '●', core.ColorBrightYellow)
	}
	for _, p := range snap.Particles {
		col, row := r.view.ToCell(p.X, p.Y)
		if p.Life > 0.3 {
			r.screen.SetColored(col, row, '·', core.ColorYellow)
		} else {
			r.screen.SetColored(col, row, '.', core.ColorGray)
		}
	}
	r.drawRunner(snap.Player.Bounds(), snap.Player.Frame, themes[snap.Mode].runner)
	r.drawHUD(snap)
}

func (r *ScreenRenderer) drawRunner(b core.RectF, frame int, c core.Color) {
	cells := r.view.CellRect(b)
	r.screen.DrawRect(cells, '█', c)
	if cells.H < 2 {
		return
	}
	legs := cells.Bottom() - 1
	r.screen.DrawHLine(cells.X, legs, cells.W, ' ', core.ColorDefault)
	if frame%2 == 0 {
		r.screen.SetColored(cells.X, legs, '/', c)
		r.screen.SetColored(cells.Right()-1, legs, '\\', c)
	} else {
		r.screen.SetColored(cells.X+cells.W/2, legs, '|', c)
	}
}

func (r *ScreenRenderer) drawHUD(snap runner.Snapshot) {
	left := fmt.Sprintf(" Score %d  Time %ds  Cups %d", snap.Score, snap.HUDSeconds, snap.Collected)
	if snap.FreeHits > 0 {
		left += fmt.Sprintf("  Shield %d", snap.FreeHits)
	}
	r.screen.DrawTextColored(0, 0, left, core.ColorBrightWhite)

	label := themes[snap.Mode].label + " "
	r.screen.DrawTextColored(r.view.Cols-len([]rune(label)), 0, label, core.ColorGray)
}

func (r *ScreenRenderer) drawBanner(b runner.Banner) {
	if !b.Visible || b.Y < 0 {
		return
	}
	_, row := r.view.ToCell(0, b.Y)
	c := core.ColorBrightWhite
	if b.Alpha < 0.5 {
		c = core.ColorGray
	}
	r.screen.DrawTextCentered(max(row, 1), cellText(b.Text), c)
}

// drawPanel draws a boxed block of centered lines in the middle of the screen.
func (r *ScreenRenderer) drawPanel(lines []string, c core.Color) {
	width := 0
	for _, l := range lines {
		width = max(width, len([]rune(l)))
	}
	box := core.NewRect((r.view.Cols-width-4)/2, (r.view.Rows-len(lines)-2)/2, width+4, len(lines)+2)
	r.screen.DrawRect(box, ' ', core.ColorDefault)
	r.screen.DrawBox(box, c)
	for i, l := range lines {
		color := core.ColorWhite
		if i == 0 {
			color = c
		}
		r.screen.DrawTextCentered(box.Y+1+i, l, color)
	}
}

func (r *ScreenRenderer) drawIntro(snap runner.Snapshot) {
	f := snap.Intro

	if f.Dim > 0 {
		step := max(2, int(6-f.Dim*8))
		for y := 0; y < r.view.Rows; y++ {
			for x := y % 2; x < r.view.Cols; x += step {
				r.screen.SetColored(x, y, '·', core.ColorGray)
			}
		}
	}

	if !f.LetterVisible || f.Phase == runner.IntroOpening {
		r.drawEnvelope(f)
	}

	for _, h := range snap.IntroHearts {
		col, row := r.view.ToCell(h.X, h.Y)
		c := core.ColorPink
		if h.Alpha() < 0.4 {
			c = core.ColorMagenta
		}
		r.screen.SetColored(col, row, '♥', c)
	}

	if f.LetterVisible {
		r.drawLetter(f.LetterBounds)
	}
	_, promptRow := r.view.ToCell(0, f.PromptY)
	if f.ShowStart {
		box := r.view.CellRect(f.StartBounds)
		r.screen.DrawRect(box, ' ', core.ColorDefault)
		r.screen.DrawBox(box, core.ColorBrightRed)
		label := cellText(runner.StartControlLabel)
		r.screen.DrawTextColored(box.X+(box.W-len([]rune(label)))/2, box.Y+box.H/2, label, core.ColorBrightRed)
		// Cell rounding can put the prompt inside the control.
		promptRow = max(0, min(promptRow, box.Y-1))
	}
	if f.ShowPrompt {
		r.screen.DrawTextCentered(promptRow, cellText(runner.IntroPrompt), core.ColorBrightMagenta)
	}

	if f.Phase == runner.IntroEnvelope && f.EnvelopeGrown {
		r.screen.DrawTextCentered(r.view.Rows-1, "Click the envelope or press ENTER", core.ColorGray)
	}
}

func (r *ScreenRenderer) drawEnvelope(f runner.IntroFrame) {
	box := r.view.CellRect(f.EnvelopeBounds)
	r.screen.DrawRect(box, ' ', core.ColorDefault)
	r.screen.DrawBox(box, core.ColorPink)

	half := box.W / 2
	if f.FlapAngle < math.Pi/2 {
		// Closed flap: a V from the top corners toward the middle.
		for i := 1; i < half && i < box.H-1; i++ {
			r.screen.SetColored(box.X+i, box.Y+i, '\\', core.ColorPink)
			r.screen.SetColored(box.Right()-1-i, box.Y+i, '/', core.ColorPink)
		}
	} else {
		for i := 1; i < half && i < box.H; i++ {
			r.screen.SetColored(box.X+i, box.Y-i, '/', core.ColorPink)
			r.screen.SetColored(box.Right()-1-i, box.Y-i, '\\', core.ColorPink)
		}
	}
	r.screen.SetColored(box.X+half, box.Y+box.H/2, '♥', core.ColorRed)
}

func (r *ScreenRenderer) drawLetter(bounds core.RectF) {
	box := r.view.CellRect(bounds)
	r.screen.DrawRect(box, ' ', core.ColorDefault)
	r.screen.DrawBox(box, core.ColorBrightWhite)

	inner := box.W - 4
	y := box.Y + 1
	put := func(text string, c core.Color) {
		if y < box.Bottom()-1 {
			r.screen.DrawTextColored(box.X+2, y, text, c)
		}
		y++
	}

	put(cellText(runner.LetterTitle), core.ColorBrightRed)
	for _, line := range runner.LetterLines {
		if line == "" {
			y++
			continue
		}
		for _, w := range wrapText(cellText(line), inner) {
			put(w, core.ColorWhite)
		}
	}
}

func (r *ScreenRenderer) drawWin(snap runner.Snapshot) {
	w := snap.Win
	world := snap.World
	r.drawGround(snap, snap.Mode)

	body := snap.Player
	body.X = w.RunnerX
	r.drawRunner(body.Bounds(), int(w.Elapsed.Milliseconds()/80), themes[snap.Mode].runner)

	if w.TrophyVisible {
		col, row := r.view.ToCell(w.TrophyX, w.TrophyY)
		r.screen.DrawTextColored(col-1, row-2, "\\_/", core.ColorBrightYellow)
		r.screen.DrawTextColored(col, row-1, "|", core.ColorBrightYellow)
		r.screen.DrawTextColored(col-1, row, "[_]", core.ColorBrightYellow)

		trumpetRow := row
		if w.TrumpetAngle >= 90 {
			trumpetRow = row - 2
		}
		r.screen.DrawTextColored(col-5, trumpetRow, "=<", core.ColorYellow)
		r.screen.DrawTextColored(col+4, trumpetRow, ">=", core.ColorYellow)
	}

	if w.CompanionVisible {
		comp := core.NewRectF(w.CompanionX, world.GroundY-body.H+w.CompanionHop, body.W, body.H)
		r.drawRunner(comp, int(w.Elapsed.Milliseconds()/80), core.ColorMagenta)
	}

	for _, s := range snap.Sparks {
		col, row := r.view.ToCell(s.X, s.Y)
		r.screen.SetColored(col, row, '*', s.Color)
	}
	for _, h := range snap.WinHearts {
		col, row := r.view.ToCell(h.X, h.Y)
		r.screen.SetColored(col, row, '♥', core.ColorPink)
	}

	if w.SignVisible && w.SignScale > 0.2 {
		r.drawSign(w.SignScale)
	}
	if w.ShowReplayHint {
		r.screen.DrawTextCentered(r.view.Rows-1, "Press SPACE to play again", core.ColorBrightWhite)
	}
}

func (r *ScreenRenderer) drawSign(scale float64) {
	width := 0
	lines := make([]string, len(runner.SignLines))
	for i, l := range runner.SignLines {
		lines[i] = cellText(l)
		width = max(width, len([]rune(lines[i])))
	}
	full := width + 4
	w := max(4, int(float64(full)*math.Min(scale, 1.2)))
	h := len(lines) + 2
	box := core.NewRect((r.view.Cols-w)/2, r.view.Rows/4-h/2, w, h)
	r.screen.DrawRect(box, ' ', core.ColorDefault)
	r.screen.DrawBox(box, core.ColorBrightRed)
	if scale < 0.9 {
		return
	}
	for i, l := range lines {
		r.screen.DrawTextCentered(box.Y+1+i, l, core.ColorBrightMagenta)
	}
}

var _ runner.Renderer = (*ScreenRenderer)(nil)
