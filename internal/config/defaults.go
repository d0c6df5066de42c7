package config

import (
	_ "embed"
)

//go:embed defaults/config.yaml
var defaultYAML []byte

// Default returns the built-in configuration. It mirrors
// defaults/config.yaml and is the last-resort fallback.
func Default() Config {
	return Config{
		Physics: Physics{
			Gravity:      0.6,
			JumpVelocity: -6.0,
			BaseSpeed:    1.2,
			MaxSpeed:     3.0,
			Acceleration: 0.001,
		},
		Player: Player{
			X:                  8,
			DuckTicks:          40,
			InvincibilityTicks: 90,
			RestartCooldown:    20,
			ContinueClearance:  40,
		},
		Spawn: Spawn{
			Tiers: []SpawnTier{
				{After: 0, Probability: 0.005},
				{After: 90, Probability: 0.03},
				{After: 180, Probability: 0.12},
			},
			MinGapSpeedFactor: 55,
			MaxObstacles:      3,
			PteroScoreMin:     400,
			PteroTiers: []SpawnTier{
				{After: 0, Probability: 0},
				{After: 300, Probability: 0.01},
				{After: 600, Probability: 0.04},
			},
			PteroWeight:      0.25,
			CloudProbability: 0.02,
			MaxClouds:        3,
			LogoProbability:  0.002,
			MaxLogos:         1,
		},
	}
}
