package runner

import (
	"math"
	"math/rand"
	"time"

	"github.com/vovakirdan/run-for-love/internal/config"
	"github.com/vovakirdan/run-for-love/internal/core"
)

// animFrameInterval is how long each running animation frame is shown.
const animFrameInterval = 80 * time.Millisecond

// Game is the simulation aggregate. All mutable state lives here and is
// changed only by Step.
type Game struct {
	cfg   config.RunnerConfig
	audio AudioNotifier
	seed  int64
	runs  int

	state   GameState
	total   time.Duration
	intro   *introState
	run     *runState
	win     *winAnimState
	outcome *Outcome

	events []Event
}

// runState is everything that belongs to one run. A new run replaces it
// wholesale so no timer or flag can leak between runs.
type runState struct {
	mode         PlayMode
	runTime      time.Duration
	modeElapsed  time.Duration
	distance     float64
	collectScore int
	collected    int
	freeHits     int
	player       Player
	spawner      *Spawner
	particles    []Particle
	fx           *rand.Rand
}

// New creates a game in the intro. The seed makes spawns and effects
// reproducible; audio may be nil.
func New(cfg config.RunnerConfig, seed int64, audio AudioNotifier) *Game {
	if audio == nil {
		audio = NopAudio{}
	}
	return &Game{
		cfg:   cfg,
		audio: audio,
		seed:  seed,
		state: StateIntro,
		intro: newIntroState(rand.New(rand.NewSource(seed - 1))),
	}
}

// SkipIntro jumps straight to the start screen. It has no effect after the
// intro is over.
func (g *Game) SkipIntro() {
	if g.state == StateIntro {
		g.setState(StateStart)
	}
}

// Step advances the simulation by dt after applying inputs in order.
// dt is clamped to [0, core.MaxFrameDelta]; GameOver and Win do not update.
// A zero dt applies inputs only.
func (g *Game) Step(dt time.Duration, inputs []core.InputEvent) StepResult {
	dt = core.ClampDelta(dt)
	g.total += dt
	g.events = nil

	for _, in := range inputs {
		g.handleInput(in)
	}

	if dt > 0 {
		switch g.state {
		case StateIntro:
			g.intro.advance(dt, g.cfg.World)
		case StatePlaying:
			g.updatePlaying(dt)
		case StateWinAnimation:
			g.updateWinAnimation(dt)
		}
	}

	return StepResult{
		State:  g.state,
		Mode:   g.Mode(),
		Score:  g.Score(),
		Events: g.events,
	}
}

func (g *Game) handleInput(in core.InputEvent) {
	switch in.Action {
	case core.ActionEnvelopeClick:
		if g.state == StateIntro && g.intro.open(in, g.cfg.World) {
			g.emit(Event{Kind: EventEnvelopeOpened})
			g.audio.OnEnvelopeOpen()
		}
	case core.ActionLetterStartClick:
		if g.state == StateIntro && g.intro.startClicked(in, g.cfg.World) {
			g.setState(StateStart)
			g.startRun()
		}
	case core.ActionStart:
		if g.state == StateStart {
			g.startRun()
		}
	case core.ActionJump:
		if g.state == StatePlaying && g.run.player.Jump(g.cfg) {
			g.emit(Event{Kind: EventJump, RunTime: g.run.runTime})
			g.audio.OnJump()
		}
	case core.ActionReset:
		if g.state == StateGameOver || g.state == StateWin {
			g.run = nil
			g.win = nil
			g.setState(StateStart)
		}
	}
}

// startRun begins a fresh run. Each run gets its own seeds derived from
// the game seed and the run number.
func (g *Game) startRun() {
	g.runs++
	base := g.seed + int64(g.runs)*2
	g.run = &runState{
		mode:     ModeNormal,
		freeHits: g.cfg.Player.FreeHits,
		player:   newPlayer(g.cfg),
		spawner:  NewSpawner(base, &g.cfg),
		fx:       rand.New(rand.NewSource(base + 1)),
	}
	g.win = nil
	g.outcome = nil
	g.setState(StatePlaying)
	g.audio.OnRunStart()
}

func (g *Game) updatePlaying(dt time.Duration) {
	r := g.run
	tl := g.cfg.Timeline
	scale := frameScale(dt, g.cfg.Physics)

	r.runTime += dt
	r.modeElapsed += dt

	if r.mode == ModeNormal && r.runTime >= tl.AltCostumeAt() {
		g.setMode(ModeAltCostume)
	}

	// Scroll speed stays at the base speed; max_speed and
	// speed_increase_per_sec are not applied.
	dx := g.cfg.Physics.BaseSpeed * scale
	r.distance += dx
	r.player.Animate(dt, animFrameInterval)
	r.player.Integrate(dt, g.cfg)

	r.spawner.Scroll(dx)
	if g.collideObstacles() {
		return
	}
	g.collectPickups()
	r.particles = updateParticles(r.particles, scale)
	r.spawner.Spawn(r.runTime, r.mode != ModeNormal)

	if r.mode == ModeAltCostume && r.modeElapsed >= tl.FinaleAfter() {
		g.setMode(ModeFinale)
	}

	switch r.mode {
	case ModeFinale:
		if r.modeElapsed >= tl.FinaleWinAfter() {
			g.enterWinAnimation()
		}
	case ModeNormal:
		if r.runTime >= tl.NormalWinAt() {
			g.finish(StateWin)
			g.emit(Event{Kind: EventWinStage, Stage: WinStageDone})
			g.audio.OnWinStage(WinStageDone)
		}
	}
}

// collideObstacles resolves obstacle hits. It reports true if the run ended.
func (g *Game) collideObstacles() bool {
	r := g.run
	hitbox := r.player.Hitbox(g.cfg.Player.HitboxInset)
	for i := 0; i < len(r.spawner.Obstacles()); i++ {
		if !hitbox.Intersects(r.spawner.Obstacles()[i].Rect()) {
			continue
		}
		if r.freeHits > 0 {
			r.freeHits--
			r.spawner.RemoveObstacle(i)
			i--
			g.emit(Event{Kind: EventFreeHit, RunTime: r.runTime})
			continue
		}
		g.finish(StateGameOver)
		g.audio.OnGameOver()
		return true
	}
	return false
}

func (g *Game) collectPickups() {
	r := g.run
	cc := g.cfg.Collectibles
	cx, cy := r.player.Center()
	for i := 0; i < len(r.spawner.Collectibles()); i++ {
		c := r.spawner.Collectibles()[i]
		if !core.CircleIntersectsRect(cx, cy, g.cfg.Player.PickupRadius, c.Rect()) {
			continue
		}
		r.collectScore += cc.Points
		r.collected++
		r.particles = spawnBurst(r.particles, r.fx, cc.BurstParticles, c.X+c.R, c.Y+c.R)
		r.spawner.RemoveCollectible(i)
		i--
		g.emit(Event{Kind: EventCollect, Score: g.Score(), RunTime: r.runTime})
		g.audio.OnCollect()
	}
}

func (g *Game) enterWinAnimation() {
	g.win = newWinAnimState(g.run.player.X, g.run.fx)
	g.setState(StateWinAnimation)
	g.emit(Event{Kind: EventWinStage, Stage: WinStageRun})
	g.audio.OnWinStage(WinStageRun)
}

func (g *Game) updateWinAnimation(dt time.Duration) {
	scale := frameScale(dt, g.cfg.Physics)
	for _, stage := range g.win.advance(dt, scale, g.cfg.World) {
		g.emit(Event{Kind: EventWinStage, Stage: stage})
		g.audio.OnWinStage(stage)
	}
	if g.win.elapsed >= WinScreenAt {
		g.finish(StateWin)
	}
}

// finish ends the run in a terminal state and records its outcome.
func (g *Game) finish(state GameState) {
	r := g.run
	result := "win"
	if state == StateGameOver {
		result = "gameover"
	}
	g.outcome = &Outcome{
		Result:       result,
		Mode:         r.mode,
		Score:        g.Score(),
		Collectibles: r.collected,
		Duration:     r.runTime,
	}
	g.setState(state)
}

func (g *Game) setState(s GameState) {
	if s == g.state {
		return
	}
	ev := Event{Kind: EventStateChanged, From: g.state, To: s}
	if g.run != nil {
		ev.Mode = g.run.mode
		ev.Score = g.Score()
		ev.RunTime = g.run.runTime
	}
	g.state = s
	g.emit(ev)
}

func (g *Game) setMode(m PlayMode) {
	if m <= g.run.mode {
		return
	}
	g.run.mode = m
	g.run.modeElapsed = 0
	g.emit(Event{Kind: EventModeChanged, Mode: m, RunTime: g.run.runTime})
}

func (g *Game) emit(ev Event) {
	g.events = append(g.events, ev)
}

// State returns the active top-level state.
func (g *Game) State() GameState {
	return g.state
}

// Mode returns the current play mode, Normal when no run exists.
func (g *Game) Mode() PlayMode {
	if g.run == nil {
		return ModeNormal
	}
	return g.run.mode
}

// Score returns floor(distance / divisor) plus collectible points.
func (g *Game) Score() int {
	if g.run == nil {
		return 0
	}
	return int(math.Floor(g.run.distance/g.cfg.Timeline.ScoreDistanceDivisor)) + g.run.collectScore
}

// IntroPhase returns the intro sub-phase.
func (g *Game) IntroPhase() IntroPhase {
	return g.intro.phase
}

// Outcome returns the result of the last finished run, if any.
func (g *Game) Outcome() (Outcome, bool) {
	if g.outcome == nil {
		return Outcome{}, false
	}
	return *g.outcome, true
}

// Seed returns the seed the game was created with.
func (g *Game) Seed() int64 {
	return g.seed
}

// Config returns the tuning the game runs with.
func (g *Game) Config() config.RunnerConfig {
	return g.cfg
}

// PrimaryAction maps the single "do the obvious thing" input (space, enter
// or a click) to the action that makes sense in the current state.
func (g *Game) PrimaryAction() core.Action {
	switch g.state {
	case StateIntro:
		switch g.intro.phase {
		case IntroEnvelope:
			return core.ActionEnvelopeClick
		case IntroLetter:
			return core.ActionLetterStartClick
		}
	case StateStart:
		return core.ActionStart
	case StatePlaying:
		return core.ActionJump
	case StateGameOver, StateWin:
		return core.ActionReset
	}
	return core.ActionNone
}
