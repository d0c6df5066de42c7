package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultMatchesBuiltin(t *testing.T) {
	// The embedded YAML and the hardcoded fallback must agree, or the
	// last-resort path would silently change the tuning.
	var cfg Config
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		t.Fatalf("Embedded default does not parse: %v", err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Errorf("Embedded default diverges from Default():\n%+v\n%+v", cfg, Default())
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	custom := `
physics:
  gravity: 0.9
  jump_velocity: -7.5
  base_speed: 2.0
  max_speed: 4.0
  acceleration: 0.002
player:
  x: 12
  duck_ticks: 30
spawn:
  max_obstacles: 5
`
	if err := os.WriteFile(path, []byte(custom), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%s) failed: %v", path, err)
	}
	if cfg.Physics.Gravity != 0.9 {
		t.Errorf("Gravity = %f, want 0.9", cfg.Physics.Gravity)
	}
	if cfg.Physics.JumpVelocity != -7.5 {
		t.Errorf("JumpVelocity = %f, want -7.5", cfg.Physics.JumpVelocity)
	}
	if cfg.Player.X != 12 {
		t.Errorf("Player.X = %f, want 12", cfg.Player.X)
	}
	if cfg.Spawn.MaxObstacles != 5 {
		t.Errorf("MaxObstacles = %d, want 5", cfg.Spawn.MaxObstacles)
	}
}

func TestLoadMissingCustomPathFails(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err == nil {
		t.Error("An explicitly requested config that does not exist must fail loudly")
	}
}

func TestLoadMalformedCustomPathFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	if err := os.WriteFile(path, []byte("physics: ["), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("A malformed explicit config must fail loudly")
	}
}

func TestDefaultTiersAreOrdered(t *testing.T) {
	cfg := Default()
	for name, tiers := range map[string][]SpawnTier{
		"ground": cfg.Spawn.Tiers,
		"flying": cfg.Spawn.PteroTiers,
	} {
		for i := 1; i < len(tiers); i++ {
			if tiers[i].After <= tiers[i-1].After {
				t.Errorf("%s tiers not strictly increasing at %d", name, i)
			}
			if tiers[i].Probability < tiers[i-1].Probability {
				t.Errorf("%s tier probability decreases at %d", name, i)
			}
		}
	}
}
