package runner

import (
	"time"

	"github.com/vovakirdan/run-for-love/internal/config"
	"github.com/vovakirdan/run-for-love/internal/core"
)

// Player is the runner. X is fixed; Y is the top edge in world units and
// grows downwards.
type Player struct {
	X, Y   float64
	VY     float64
	W, H   float64
	Frame  int // Running animation frame
	frameT time.Duration
}

func newPlayer(cfg config.RunnerConfig) Player {
	return Player{
		X: cfg.Player.X,
		Y: cfg.FloorY(),
		W: cfg.Player.Width,
		H: cfg.Player.Height,
	}
}

// frameScale converts dt into multiples of the physics reference frame.
func frameScale(dt time.Duration, p config.PhysicsConfig) float64 {
	return float64(dt) / float64(p.FrameDuration())
}

// Grounded reports whether the player is close enough to the floor to jump.
func (p *Player) Grounded(floorY, epsilon float64) bool {
	return p.Y >= floorY-epsilon
}

// Jump applies the jump impulse if grounded. It reports whether it did.
func (p *Player) Jump(cfg config.RunnerConfig) bool {
	if !p.Grounded(cfg.FloorY(), cfg.Physics.JumpEpsilon) {
		return false
	}
	p.VY = cfg.Physics.JumpImpulse
	return true
}

// Integrate applies gravity, moves the player and clamps it to the floor.
// Landing always zeroes the vertical velocity.
func (p *Player) Integrate(dt time.Duration, cfg config.RunnerConfig) {
	if dt <= 0 {
		return
	}
	scale := frameScale(dt, cfg.Physics)
	p.VY += cfg.Physics.Gravity * scale
	p.Y += p.VY * scale

	if floor := cfg.FloorY(); p.Y >= floor {
		p.Y = floor
		p.VY = 0
	}
}

// Animate advances the running animation one frame every interval.
func (p *Player) Animate(dt, interval time.Duration) {
	p.frameT += dt
	if p.frameT > interval {
		p.frameT = 0
		p.Frame++
	}
}

// Bounds returns the sprite box.
func (p *Player) Bounds() core.RectF {
	return core.NewRectF(p.X, p.Y, p.W, p.H)
}

// Hitbox returns the collision box, inset from the sprite box.
func (p *Player) Hitbox(inset float64) core.RectF {
	return p.Bounds().Inset(inset)
}

// Center returns the middle of the sprite box, used for pickups.
func (p *Player) Center() (float64, float64) {
	return p.X + p.W/2, p.Y + p.H/2
}
