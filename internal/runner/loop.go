package runner

import (
	"time"

	"github.com/vovakirdan/run-for-love/internal/core"
)

// Loop drives a Game: it turns frame timestamps into clamped deltas, feeds
// queued input to the game once per tick and renders after every tick.
type Loop struct {
	game     *Game
	clock    *core.FrameClock
	queue    *core.InputQueue
	renderer Renderer
}

// NewLoop creates a loop for game. renderer may be nil.
func NewLoop(game *Game, renderer Renderer) *Loop {
	return &Loop{
		game:     game,
		clock:    core.NewFrameClock(),
		queue:    core.NewInputQueue(),
		renderer: renderer,
	}
}

// Push queues an input for the next tick.
func (l *Loop) Push(ev core.InputEvent) {
	l.queue.Push(ev)
}

// Tick runs one frame stamped with now.
func (l *Loop) Tick(now time.Time) StepResult {
	return l.step(l.clock.Tick(now))
}

// Advance runs one frame of a given length instead of a timestamp.
func (l *Loop) Advance(raw time.Duration) StepResult {
	return l.step(l.clock.Advance(raw))
}

func (l *Loop) step(dt time.Duration) StepResult {
	res := l.game.Step(dt, l.queue.Drain())
	if l.renderer != nil {
		l.renderer.DrawFrame(l.game.Snapshot())
	}
	return res
}

// Game returns the driven game.
func (l *Loop) Game() *Game {
	return l.game
}

// Elapsed returns the total simulated time.
func (l *Loop) Elapsed() time.Duration {
	return l.clock.Total()
}
