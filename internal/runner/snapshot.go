package runner

import (
	"slices"
	"time"

	"github.com/vovakirdan/run-for-love/internal/config"
)

// Snapshot is a read-only copy of everything a renderer needs for one frame.
// Slices are copies; mutating them does not affect the game.
type Snapshot struct {
	State GameState
	Mode  PlayMode
	World config.WorldConfig
	Total time.Duration

	RunTime     time.Duration
	ModeElapsed time.Duration
	Score       int
	Collected   int
	FreeHits    int
	HUDSeconds  int // Whole run seconds, capped at the normal win time

	Player       Player
	Obstacles    []Obstacle
	Collectibles []Collectible
	Particles    []Particle
	Banner       Banner

	Intro       IntroFrame
	IntroHearts []Heart

	Win       WinFrame
	Sparks    []Spark
	WinHearts []Heart
}

// Snapshot captures the current frame.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		State: g.state,
		Mode:  g.Mode(),
		World: g.cfg.World,
		Total: g.total,
		Score: g.Score(),
	}

	if g.state == StateIntro {
		snap.Intro = g.intro.frame(g.cfg.World)
		snap.IntroHearts = slices.Clone(g.intro.hearts)
	}

	if r := g.run; r != nil {
		snap.RunTime = r.runTime
		snap.ModeElapsed = r.modeElapsed
		snap.Collected = r.collected
		snap.FreeHits = r.freeHits
		snap.HUDSeconds = int(min(r.runTime, g.cfg.Timeline.NormalWinAt()) / time.Second)
		snap.Player = r.player
		snap.Obstacles = slices.Clone(r.spawner.Obstacles())
		snap.Collectibles = slices.Clone(r.spawner.Collectibles())
		snap.Particles = slices.Clone(r.particles)
		if g.state == StatePlaying {
			snap.Banner = BannerFor(r.mode, r.modeElapsed)
		}
	}

	if w := g.win; w != nil {
		snap.Win = WinChoreography(w.elapsed, g.cfg.World, w.runnerStartX)
		snap.Sparks = slices.Clone(w.sparks)
		snap.WinHearts = slices.Clone(w.hearts)
	}
	return snap
}
