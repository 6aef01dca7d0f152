// Package config provides YAML-based tuning for the runner: world size,
// physics, spawn pacing and the level timeline.
package config

import (
	"errors"
	"fmt"
	"time"
)

// RunnerConfig contains all tunable parameters of the runner.
type RunnerConfig struct {
	World        WorldConfig       `yaml:"world"`
	Physics      PhysicsConfig     `yaml:"physics"`
	Player       PlayerConfig      `yaml:"player"`
	Obstacles    ObstacleConfig    `yaml:"obstacles"`
	Collectibles CollectibleConfig `yaml:"collectibles"`
	Timeline     TimelineConfig    `yaml:"timeline"`
}

// WorldConfig defines the playfield in world units.
type WorldConfig struct {
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	GroundY float64 `yaml:"ground_y"` // Y of the ground surface
}

// PhysicsConfig defines per-frame physics. Values are expressed per
// reference frame of FrameMs milliseconds and scaled by dt.
type PhysicsConfig struct {
	Gravity     float64 `yaml:"gravity"`
	JumpImpulse float64 `yaml:"jump_impulse"`
	BaseSpeed   float64 `yaml:"base_speed"`
	// MaxSpeed and SpeedIncreasePerSec are kept for compatibility with
	// existing tuning files. The scroll speed is never ramped.
	MaxSpeed            float64 `yaml:"max_speed"`
	SpeedIncreasePerSec float64 `yaml:"speed_increase_per_sec"`
	FrameMs             float64 `yaml:"frame_ms"`
	JumpEpsilon         float64 `yaml:"jump_epsilon"` // Distance from floor that still counts as grounded
}

// PlayerConfig defines the runner's body.
type PlayerConfig struct {
	X            float64 `yaml:"x"`
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	HitboxInset  float64 `yaml:"hitbox_inset"`
	PickupRadius float64 `yaml:"pickup_radius"`
	FreeHits     int     `yaml:"free_hits"`
}

// ObstacleConfig defines obstacle size and spawn pacing.
type ObstacleConfig struct {
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	Variants      int     `yaml:"variants"`
	SpawnOffset   float64 `yaml:"spawn_offset"` // Spawn X beyond the right edge
	MinSpacing    float64 `yaml:"min_spacing"`  // Last obstacle must be this far left of the right edge
	MaxIntervalMs int     `yaml:"max_interval_ms"`
	SpawnChance   float64 `yaml:"spawn_chance"` // Per-tick probability once spacing allows
	StartDelayMs  int     `yaml:"start_delay_ms"`
}

// CollectibleConfig defines collectible size, placement and spawn pacing.
type CollectibleConfig struct {
	Radius         float64 `yaml:"radius"`
	SpawnOffset    float64 `yaml:"spawn_offset"`
	MinHeight      float64 `yaml:"min_height"`  // Lowest float height above ground
	HeightBand     float64 `yaml:"height_band"` // Random extra height
	MinSpacing     float64 `yaml:"min_spacing"`
	MaxIntervalMs  int     `yaml:"max_interval_ms"`
	SpawnChance    float64 `yaml:"spawn_chance"`
	Points         int     `yaml:"points"`
	BurstParticles int     `yaml:"burst_particles"`
}

// TimelineConfig defines the level progression of a run.
type TimelineConfig struct {
	AltCostumeAtMs       int     `yaml:"alt_costume_at_ms"`
	FinaleAfterMs        int     `yaml:"finale_after_ms"`
	FinaleWinAfterMs     int     `yaml:"finale_win_after_ms"`
	NormalWinAtMs        int     `yaml:"normal_win_at_ms"`
	ScoreDistanceDivisor float64 `yaml:"score_distance_divisor"`
}

// FloorY returns the player's top Y when standing on the ground.
func (c RunnerConfig) FloorY() float64 {
	return c.World.GroundY - c.Player.Height
}

// FrameDuration returns the physics reference frame.
func (p PhysicsConfig) FrameDuration() time.Duration {
	return time.Duration(p.FrameMs * float64(time.Millisecond))
}

// MaxInterval returns the deterministic upper bound between obstacle spawns.
func (o ObstacleConfig) MaxInterval() time.Duration {
	return ms(o.MaxIntervalMs)
}

// StartDelay returns the obstacle-free period at the start of a run.
func (o ObstacleConfig) StartDelay() time.Duration {
	return ms(o.StartDelayMs)
}

// MaxInterval returns the deterministic upper bound between collectible spawns.
func (c CollectibleConfig) MaxInterval() time.Duration {
	return ms(c.MaxIntervalMs)
}

// AltCostumeAt returns the run time at which the costume changes.
func (t TimelineConfig) AltCostumeAt() time.Duration { return ms(t.AltCostumeAtMs) }

// FinaleAfter returns how long the costume level lasts.
func (t TimelineConfig) FinaleAfter() time.Duration { return ms(t.FinaleAfterMs) }

// FinaleWinAfter returns how long the finale lasts before the win animation.
func (t TimelineConfig) FinaleWinAfter() time.Duration { return ms(t.FinaleWinAfterMs) }

// NormalWinAt returns the run time at which a run that never left the first
// level is won.
func (t TimelineConfig) NormalWinAt() time.Duration { return ms(t.NormalWinAtMs) }

func ms(v int) time.Duration {
	return time.Duration(v) * time.Millisecond
}

// ErrInvalidConfig is returned (wrapped) by Validate.
var ErrInvalidConfig = errors.New("invalid runner config")

// Validate checks values the simulation cannot run without.
func (c RunnerConfig) Validate() error {
	switch {
	case c.World.Width <= 0 || c.World.Height <= 0:
		return fmt.Errorf("%w: world size must be positive, got %vx%v", ErrInvalidConfig, c.World.Width, c.World.Height)
	case c.World.GroundY <= c.Player.Height || c.World.GroundY > c.World.Height:
		return fmt.Errorf("%w: ground_y %v out of range", ErrInvalidConfig, c.World.GroundY)
	case c.Physics.Gravity <= 0:
		return fmt.Errorf("%w: gravity must be positive, got %v", ErrInvalidConfig, c.Physics.Gravity)
	case c.Physics.JumpImpulse >= 0:
		return fmt.Errorf("%w: jump_impulse must be negative, got %v", ErrInvalidConfig, c.Physics.JumpImpulse)
	case c.Physics.FrameMs <= 0:
		return fmt.Errorf("%w: frame_ms must be positive, got %v", ErrInvalidConfig, c.Physics.FrameMs)
	case c.Player.Width <= 2*c.Player.HitboxInset || c.Player.Height <= 2*c.Player.HitboxInset:
		return fmt.Errorf("%w: hitbox_inset %v leaves no hitbox", ErrInvalidConfig, c.Player.HitboxInset)
	case c.Player.FreeHits < 0:
		return fmt.Errorf("%w: free_hits must not be negative", ErrInvalidConfig)
	case c.Obstacles.Variants < 1:
		return fmt.Errorf("%w: obstacles need at least one variant", ErrInvalidConfig)
	case c.Timeline.ScoreDistanceDivisor <= 0:
		return fmt.Errorf("%w: score_distance_divisor must be positive", ErrInvalidConfig)
	}
	return nil
}
