package runner

import (
	"math"
	"math/rand"
	"time"

	"github.com/tanema/gween/ease"

	"github.com/vovakirdan/run-for-love/internal/config"
)

// WinStage is a sub-phase of the win animation.
type WinStage int

const (
	WinStageRun WinStage = iota // Runner crosses the finish line
	WinStagePodium
	WinStageCompanion
	WinStageCelebrate // Companion arrived, fireworks start
	WinStageSign
	WinStageReplayHint
	WinStageDone
)

// String returns a human-readable name for the stage.
func (s WinStage) String() string {
	switch s {
	case WinStageRun:
		return "run"
	case WinStagePodium:
		return "podium"
	case WinStageCompanion:
		return "companion"
	case WinStageCelebrate:
		return "celebrate"
	case WinStageSign:
		return "sign"
	case WinStageReplayHint:
		return "replay_hint"
	case WinStageDone:
		return "done"
	default:
		return "unknown"
	}
}

// Win animation timeline, measured from entering the animation.
const (
	WinRunDuration    = 2500 * time.Millisecond
	PodiumStart       = 2500 * time.Millisecond
	TrophyDuration    = 1200 * time.Millisecond
	CompanionDelay    = 700 * time.Millisecond // After PodiumStart
	CompanionDuration = 2200 * time.Millisecond
	SignPopAt         = 5500 * time.Millisecond
	SignPopDuration   = 600 * time.Millisecond
	ReplayHintAt      = 12000 * time.Millisecond
	WinScreenAt       = 14000 * time.Millisecond

	heartsAfter     = 100 * time.Millisecond // After PodiumStart
	trumpetRaise    = 500 * time.Millisecond
	trumpetMaxAngle = 180.0

	winRunDistance   = 800.0
	trophyOffscreenX = 120.0
	trophyStartY     = -100.0
	trophyRestY      = 340.0
	companionStartX  = -90.0
	companionOffset  = 72.0
	companionSlack   = 3.0
	companionEasePow = 1.2
	companionHopAmp  = 6.0
	companionHopRate = 0.009 // Radians per millisecond

	winHeartCount    = 27
	fireworkChance   = 0.08
	sparksPerBurst   = 12
	maxSparks        = 35
	fireworkMinY     = 60.0
	fireworkBandY    = 180.0
	heartOffscreenY  = -50.0
	heartRowSpacing  = 25.0
	heartBottomInset = 15.0
)

// SignLines is the text shown on the win sign.
var SignLines = [...]string{
	"Happy Valentine's Day Vineet!",
	"You already won my heart.",
	"Love you forever ❤️",
}

// WinFrame is the visual state of the win animation at one instant.
type WinFrame struct {
	Stage   WinStage
	Elapsed time.Duration

	RunnerX float64

	TrophyVisible bool
	TrophyX       float64
	TrophyY       float64
	TrumpetAngle  float64 // Degrees, both trumpets

	CompanionVisible bool
	CompanionX       float64
	CompanionHop     float64 // Vertical offset, negative is up
	CompanionArrived bool

	SignVisible    bool
	SignScale      float64
	ShowReplayHint bool
	Done           bool
}

// companionTargetX is where the companion stops, left of the podium center.
func companionTargetX(w config.WorldConfig) float64 {
	return w.Width*0.5 - companionOffset
}

// companionWalk returns the eased walk progress for a walk fraction in [0, 1].
func companionWalk(frac float64) float64 {
	return 1 - math.Pow(1-math.Min(1, frac), companionEasePow)
}

// CompanionArrivalAt returns the animation time at which the companion is
// within the arrival slack of its target.
func CompanionArrivalAt(w config.WorldConfig) time.Duration {
	span := companionTargetX(w) - companionStartX
	if span <= companionSlack {
		return PodiumStart + CompanionDelay
	}
	// Invert 1-(1-f)^p = (span-slack)/span.
	frac := 1 - math.Pow(companionSlack/span, 1/companionEasePow)
	return PodiumStart + CompanionDelay + time.Duration(math.Ceil(frac*float64(CompanionDuration)))
}

// WinChoreography derives the win animation frame from elapsed time alone.
// Calling it twice with the same arguments yields the same frame.
func WinChoreography(elapsed time.Duration, w config.WorldConfig, runnerStartX float64) WinFrame {
	if elapsed < 0 {
		elapsed = 0
	}
	f := WinFrame{Elapsed: elapsed, Stage: winStageAt(elapsed, w)}

	run := math.Min(1, float64(elapsed)/float64(WinRunDuration))
	f.RunnerX = runnerStartX + winRunDistance*run

	if elapsed < PodiumStart {
		return f
	}
	pod := elapsed - PodiumStart

	f.TrophyVisible = true
	t := float32(math.Min(1, float64(pod)/float64(TrophyDuration)))
	e := float64(ease.OutQuad(t, 0, 1, 1))
	startX := w.Width + trophyOffscreenX
	f.TrophyX = startX - (startX-w.Width*0.5)*e
	f.TrophyY = trophyStartY + (trophyRestY-trophyStartY)*e
	f.TrumpetAngle = math.Min(trumpetMaxAngle, float64(pod)/float64(trumpetRaise)*trumpetMaxAngle)

	if pod >= CompanionDelay {
		f.CompanionVisible = true
		target := companionTargetX(w)
		walk := companionWalk(float64(pod-CompanionDelay) / float64(CompanionDuration))
		f.CompanionX = companionStartX + (target-companionStartX)*walk
		if arrival := CompanionArrivalAt(w); elapsed >= arrival {
			f.CompanionArrived = true
			sinceMs := float64(elapsed-arrival) / float64(time.Millisecond)
			f.CompanionHop = -companionHopAmp * math.Sin(sinceMs*companionHopRate)
		}
	}

	if elapsed >= SignPopAt {
		f.SignVisible = true
		st := float32(math.Min(1, float64(elapsed-SignPopAt)/float64(SignPopDuration)))
		f.SignScale = float64(ease.OutElastic(st, 0, 1, 1))
	}
	f.ShowReplayHint = elapsed >= ReplayHintAt
	f.Done = elapsed >= WinScreenAt
	return f
}

// winStageThresholds lists when each stage begins, in order.
func winStageThresholds(w config.WorldConfig) [7]time.Duration {
	return [7]time.Duration{
		WinStageRun:        0,
		WinStagePodium:     PodiumStart,
		WinStageCompanion:  PodiumStart + CompanionDelay,
		WinStageCelebrate:  CompanionArrivalAt(w),
		WinStageSign:       SignPopAt,
		WinStageReplayHint: ReplayHintAt,
		WinStageDone:       WinScreenAt,
	}
}

func winStageAt(elapsed time.Duration, w config.WorldConfig) WinStage {
	stage := WinStageRun
	for s, at := range winStageThresholds(w) {
		if elapsed >= at {
			stage = WinStage(s)
		}
	}
	return stage
}

// winStagesCrossed returns the stages whose start lies in (prev, now].
func winStagesCrossed(prev, now time.Duration, w config.WorldConfig) []WinStage {
	var out []WinStage
	for s, at := range winStageThresholds(w) {
		if at > prev && at <= now {
			out = append(out, WinStage(s))
		}
	}
	return out
}

// winAnimState holds the parts of the win animation that cannot be derived
// from time: randomly spawned fireworks and the heart batch.
type winAnimState struct {
	elapsed       time.Duration
	runnerStartX  float64
	sparks        []Spark
	hearts        []Heart
	heartsSpawned bool
	rng           *rand.Rand
}

func newWinAnimState(runnerStartX float64, rng *rand.Rand) *winAnimState {
	return &winAnimState{runnerStartX: runnerStartX, rng: rng}
}

// advance moves the animation forward by dt and returns the stages entered.
func (s *winAnimState) advance(dt time.Duration, scale float64, w config.WorldConfig) []WinStage {
	prev := s.elapsed
	s.elapsed += dt
	frame := WinChoreography(s.elapsed, w, s.runnerStartX)

	if s.elapsed >= PodiumStart {
		if !s.heartsSpawned && s.elapsed-PodiumStart > heartsAfter {
			s.heartsSpawned = true
			s.spawnHearts(w)
		}
		if frame.CompanionArrived && len(s.sparks) < maxSparks && s.rng.Float64() < fireworkChance {
			x := s.rng.Float64() * w.Width
			y := fireworkMinY + s.rng.Float64()*fireworkBandY
			s.sparks = spawnFirework(s.sparks, s.rng, sparksPerBurst, x, y)
		}
		s.sparks = updateSparks(s.sparks, dt, scale)
		s.updateHearts(scale)
	}

	return winStagesCrossed(prev, s.elapsed, w)
}

func (s *winAnimState) spawnHearts(w config.WorldConfig) {
	spacing := w.Width / (winHeartCount + 1)
	for i := 0; i < winHeartCount; i++ {
		s.hearts = append(s.hearts, Heart{
			X:    spacing*(float64(i)+0.5) + (s.rng.Float64()-0.5)*20,
			Y:    w.Height + heartBottomInset + float64(i%5)*heartRowSpacing,
			VY:   -0.6 - s.rng.Float64()*0.5,
			VX:   (s.rng.Float64() - 0.5) * 0.3,
			Size: 14 + s.rng.Float64()*10,
		})
	}
}

func (s *winAnimState) updateHearts(scale float64) {
	live := s.hearts[:0]
	for _, h := range s.hearts {
		h.X += h.VX * scale
		h.Y += h.VY * scale
		if h.Y > heartOffscreenY {
			live = append(live, h)
		}
	}
	s.hearts = live
}
