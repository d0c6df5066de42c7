// Package config provides YAML-based configuration for the simulation.
// Every empirically tuned constant (physics curve, spawn tiers, timers)
// lives here so parity with recorded runs is a matter of config, not code.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config contains all tunable simulation parameters.
type Config struct {
	Physics Physics `yaml:"physics"`
	Player  Player  `yaml:"player"`
	Spawn   Spawn   `yaml:"spawn"`
}

// Physics defines the per-tick integration constants, in pixels and ticks.
type Physics struct {
	Gravity      float64 `yaml:"gravity"`       // Added to vertical velocity each tick
	JumpVelocity float64 `yaml:"jump_velocity"` // Negative (upward) velocity on jump
	BaseSpeed    float64 `yaml:"base_speed"`    // Horizontal world speed at run start
	MaxSpeed     float64 `yaml:"max_speed"`     // Speed cap
	Acceleration float64 `yaml:"acceleration"`  // Speed gained per tick up to the cap
}

// Player defines player-related parameters and timers (in ticks).
type Player struct {
	X                  float64 `yaml:"x"`                   // Fixed horizontal pixel position
	DuckTicks          float64 `yaml:"duck_ticks"`          // Duck auto-expiry, re-armed per press
	InvincibilityTicks float64 `yaml:"invincibility_ticks"` // Grace window after a collision
	RestartCooldown    float64 `yaml:"restart_cooldown"`    // Min ticks in game over before restart
	ContinueClearance  float64 `yaml:"continue_clearance"`  // Pixels ahead of player cleared on continue
}

// SpawnTier is one step of the spawn probability ramp: once at least After
// ticks have passed since the previous spawn, Probability applies per tick.
type SpawnTier struct {
	After       float64 `yaml:"after"`
	Probability float64 `yaml:"probability"`
}

// Spawn defines the obstacle and decoration spawners. The tier values are
// tuned constants with no deeper invariant; they are preserved as-is.
type Spawn struct {
	Tiers              []SpawnTier `yaml:"tiers"`                 // Ground obstacle ramp
	MinGapSpeedFactor  float64     `yaml:"min_gap_speed_factor"`  // Min gap = speed * factor
	MaxObstacles       int         `yaml:"max_obstacles"`         // Cap on simultaneous obstacles
	PteroScoreMin      float64     `yaml:"ptero_score_min"`       // Score before pterodactyls appear
	PteroTiers         []SpawnTier `yaml:"ptero_tiers"`           // Flying obstacle ramp
	PteroWeight        float64     `yaml:"ptero_weight"`          // Chance a spawn is flying when eligible
	CloudProbability   float64     `yaml:"cloud_probability"`     // Per-tick decoration draw
	MaxClouds          int         `yaml:"max_clouds"`            // Cap on concurrent clouds
	LogoProbability    float64     `yaml:"logo_probability"`      // Per-tick decoration draw
	MaxLogos           int         `yaml:"max_logos"`             // Cap on concurrent logos
}

// Load reads the configuration. Search order: customPath ->
// ~/.dinoterm/config.yaml -> ./config.yaml -> embedded default.
func Load(customPath string) (Config, error) {
	var cfg Config

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if userPath := userConfigPath(); userPath != "" {
		if data, err := os.ReadFile(userPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
		}
	}

	if data, err := os.ReadFile("config.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
	}

	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the per-user config path, or empty if the home
// directory is unavailable.
func userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".dinoterm", "config.yaml")
}
