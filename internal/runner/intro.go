package runner

import (
	"math"
	"math/rand"
	"time"

	"github.com/tanema/gween/ease"

	"github.com/vovakirdan/run-for-love/internal/config"
	"github.com/vovakirdan/run-for-love/internal/core"
)

// IntroPhase is a sub-phase of the intro sequence.
type IntroPhase int

const (
	IntroEnvelope IntroPhase = iota
	IntroOpening
	IntroLetter
)

// String returns a human-readable name for the phase.
func (p IntroPhase) String() string {
	switch p {
	case IntroEnvelope:
		return "envelope"
	case IntroOpening:
		return "opening"
	case IntroLetter:
		return "letter"
	default:
		return "unknown"
	}
}

// Intro timeline. Envelope times are measured from the start of the intro,
// the rest from the envelope click.
const (
	EnvelopeGrowDuration = 2800 * time.Millisecond
	DimDuration          = 700 * time.Millisecond
	FlapOpenDuration     = 1200 * time.Millisecond
	LetterSlideDelay     = 500 * time.Millisecond
	LetterSlideDuration  = 1000 * time.Millisecond
	OpeningToLetter      = 2800 * time.Millisecond
	PromptDelay          = 600 * time.Millisecond  // After OpeningToLetter
	StartControlDelay    = 1100 * time.Millisecond // After OpeningToLetter

	introHeartWindow   = 900 * time.Millisecond
	introHeartInterval = 90 * time.Millisecond
	introHeartsPerWave = 3

	envelopeMinScale   = 0.12
	envelopeFinalScale = 1.32
	envelopeGrowPow    = 1.5
	envelopeHalfSize   = 75.0
	envelopeBobAmp     = 6.0
	envelopeBobRate    = 0.004 // Radians per millisecond

	introDimAlpha  = 0.45
	flapOpenAngle  = 0.85 * math.Pi
	letterEasePow  = 1.4
	letterWidth    = 420.0
	letterHeight   = 340.0
	letterRestFrac = 0.42 // Letter center as a fraction of world height
	letterBelow    = 50.0 // Start offset below the world

	startControlW      = 220.0
	startControlH      = 48.0
	startControlGap    = 60.0
	startControlMargin = 20.0
)

// Intro copy.
const (
	IntroPrompt       = "Ready to run, Batman?"
	StartControlLabel = "👉 Start the run"
	LetterTitle       = "To Vineet ❤️"
)

// LetterLines is the body of the letter. Lines starting with "• " are
// bullets, empty strings are paragraph breaks.
var LetterLines = []string{
	"Welcome to the 🏁 Valentine's Marathon 🏁",
	"",
	"Your mission:",
	"• Run fast",
	"• Jump over obstacles by pressing the SPACE-BAR ⬆️",
	"• Collect cappuccinos to earn points! ☕️",
	"I'm waiting for you at the finish line.",
	"",
	"PS: You already make my heart race.",
	"",
	"xoxo",
	"Nancy💋",
}

// IntroFrame is the visual state of the intro at one instant.
type IntroFrame struct {
	Phase IntroPhase

	EnvelopeScale  float64
	EnvelopeGrown  bool
	EnvelopeBounds core.RectF

	Dim       float64 // Background dim alpha
	FlapAngle float64 // Radians

	LetterVisible bool
	LetterBounds  core.RectF

	ShowPrompt  bool
	PromptY     float64
	ShowStart   bool
	StartBounds core.RectF
}

// ComputeIntroFrame derives the intro frame from the phase, the time since
// the intro began and the time since the envelope was opened.
func ComputeIntroFrame(phase IntroPhase, elapsed, opened time.Duration, w config.WorldConfig) IntroFrame {
	f := IntroFrame{Phase: phase}

	grow := math.Min(1, math.Max(0, float64(elapsed)/float64(EnvelopeGrowDuration)))
	f.EnvelopeScale = envelopeMinScale + (envelopeFinalScale-envelopeMinScale)*(1-math.Pow(1-grow, envelopeGrowPow))
	f.EnvelopeGrown = grow >= 1
	bob := 0.0
	if f.EnvelopeGrown {
		bob = envelopeBobAmp * math.Sin(core.Millis(elapsed)*envelopeBobRate)
	}
	half := envelopeHalfSize * f.EnvelopeScale
	cx, cy := w.Width/2, w.Height/2+bob
	f.EnvelopeBounds = core.NewRectF(cx-half, cy-half, 2*half, 2*half)

	if phase == IntroEnvelope {
		return f
	}

	if opened < 0 {
		opened = 0
	}
	f.Dim = float64(ease.OutQuad(float32(math.Min(1, float64(opened)/float64(DimDuration))), 0, introDimAlpha, 1))
	f.FlapAngle = float64(ease.InOutSine(float32(math.Min(1, float64(opened)/float64(FlapOpenDuration))), 0, flapOpenAngle, 1))

	bottom := w.Height
	slide := math.Min(1, float64(opened-LetterSlideDelay)/float64(LetterSlideDuration))
	if slide > 0 {
		e := 1 - math.Pow(1-slide, letterEasePow)
		restY := w.Height*letterRestFrac - letterHeight/2
		startY := w.Height + letterBelow
		y := restY + (1-e)*(startY-restY)
		f.LetterVisible = true
		f.LetterBounds = core.NewRectF((w.Width-letterWidth)/2, y, letterWidth, letterHeight)
		bottom = f.LetterBounds.Bottom()
	}

	if phase == IntroLetter {
		since := opened - OpeningToLetter
		f.PromptY = bottom + 40
		f.ShowPrompt = since > PromptDelay
		if since > StartControlDelay {
			f.ShowStart = true
			y := math.Min(bottom+startControlGap, w.Height-startControlH-startControlMargin)
			f.StartBounds = core.NewRectF(w.Width/2-startControlW/2, y, startControlW, startControlH)
		}
	}
	return f
}

// introState is the mutable part of the intro: phase, clocks and the
// decorative hearts released while the envelope opens.
type introState struct {
	phase   IntroPhase
	elapsed time.Duration
	opened  time.Duration
	hearts  []Heart
	rng     *rand.Rand
}

func newIntroState(rng *rand.Rand) *introState {
	return &introState{rng: rng}
}

func (s *introState) frame(w config.WorldConfig) IntroFrame {
	return ComputeIntroFrame(s.phase, s.elapsed, s.opened, w)
}

// open starts the opening phase. It reports false if the envelope is not
// clickable yet.
func (s *introState) open(ev core.InputEvent, w config.WorldConfig) bool {
	if s.phase != IntroEnvelope {
		return false
	}
	f := s.frame(w)
	if !f.EnvelopeGrown {
		return false
	}
	if ev.HasPoint && !f.EnvelopeBounds.Contains(ev.X, ev.Y) {
		return false
	}
	s.phase = IntroOpening
	s.opened = 0
	return true
}

// startClicked reports whether ev hits the visible start control.
func (s *introState) startClicked(ev core.InputEvent, w config.WorldConfig) bool {
	if s.phase != IntroLetter {
		return false
	}
	f := s.frame(w)
	if !f.ShowStart {
		return false
	}
	return !ev.HasPoint || f.StartBounds.Contains(ev.X, ev.Y)
}

// advance moves the intro forward by dt.
func (s *introState) advance(dt time.Duration, w config.WorldConfig) {
	s.elapsed += dt
	if s.phase == IntroEnvelope {
		return
	}

	prev := s.opened
	s.opened += dt

	live := s.hearts[:0]
	for _, h := range s.hearts {
		ms := core.Millis(dt)
		h.X += h.VX * ms
		h.Y += h.VY * ms
		h.Age += dt
		if h.Age < h.MaxAge {
			live = append(live, h)
		}
	}
	s.hearts = live

	if s.phase == IntroOpening && s.opened < introHeartWindow {
		if s.opened/introHeartInterval > prev/introHeartInterval {
			s.spawnHearts(w)
		}
	}
	if s.phase == IntroOpening && s.opened >= OpeningToLetter {
		s.phase = IntroLetter
	}
}

func (s *introState) spawnHearts(w config.WorldConfig) {
	cx, cy := w.Width/2, w.Height/2
	for i := 0; i < introHeartsPerWave; i++ {
		s.hearts = append(s.hearts, Heart{
			X:      cx + (s.rng.Float64()-0.5)*50,
			Y:      cy + (s.rng.Float64()-0.5)*20,
			VX:     (s.rng.Float64() - 0.5) * 0.2,
			VY:     -0.2 - s.rng.Float64()*0.2,
			Size:   0.35 + s.rng.Float64()*0.35,
			MaxAge: time.Duration(2500+s.rng.Float64()*1500) * time.Millisecond,
		})
	}
}
