package config

import (
	_ "embed"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultRunnerConfig returns the built-in tuning. It mirrors
// defaults/runner.yaml and is used when the embedded file cannot be parsed.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		World: WorldConfig{
			Width:   800,
			Height:  460,
			GroundY: 380,
		},
		Physics: PhysicsConfig{
			Gravity:             0.6,
			JumpImpulse:         -14,
			BaseSpeed:           4,
			MaxSpeed:            14,
			SpeedIncreasePerSec: 0.15,
			FrameMs:             16,
			JumpEpsilon:         2,
		},
		Player: PlayerConfig{
			X:            120,
			Width:        40,
			Height:       56,
			HitboxInset:  4,
			PickupRadius: 22,
			FreeHits:     1,
		},
		Obstacles: ObstacleConfig{
			Width:         32,
			Height:        42,
			Variants:      2,
			SpawnOffset:   50,
			MinSpacing:    260,
			MaxIntervalMs: 1400,
			SpawnChance:   0.02,
			StartDelayMs:  1000,
		},
		Collectibles: CollectibleConfig{
			Radius:         14,
			SpawnOffset:    60,
			MinHeight:      80,
			HeightBand:     120,
			MinSpacing:     140,
			MaxIntervalMs:  1100,
			SpawnChance:    0.03,
			Points:         10,
			BurstParticles: 18,
		},
		Timeline: TimelineConfig{
			AltCostumeAtMs:       11000,
			FinaleAfterMs:        11000,
			FinaleWinAfterMs:     7000,
			NormalWinAtMs:        40000,
			ScoreDistanceDivisor: 30,
		},
	}
}

// DefaultYAML returns the embedded default tuning file.
func DefaultYAML() []byte {
	return defaultRunnerYAML
}
