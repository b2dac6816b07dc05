package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var fromYAML BreakoutConfig
	if err := yaml.Unmarshal(DefaultYAML(), &fromYAML); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}
	if !reflect.DeepEqual(fromYAML, DefaultBreakoutConfig()) {
		t.Errorf("embedded defaults drifted from DefaultBreakoutConfig:\n%+v\n%+v", fromYAML, DefaultBreakoutConfig())
	}
}

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultBreakoutConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*BreakoutConfig)
		field  string
	}{
		{"zero radius", func(c *BreakoutConfig) { c.Ball.Radius = 0 }, "radius"},
		{"negative paddle", func(c *BreakoutConfig) { c.Paddle.Width = -1 }, "paddle"},
		{"zero cell", func(c *BreakoutConfig) { c.World.CellHeight = 0 }, "cell size"},
		{"no lives", func(c *BreakoutConfig) { c.Gameplay.Lives = 0 }, "lives"},
		{"bad chance", func(c *BreakoutConfig) { c.PowerUps.SpawnChance = 101 }, "spawn_chance"},
		{"bad policy", func(c *BreakoutConfig) { c.Collision.Policy = "random" }, "policy"},
		{"negative particles", func(c *BreakoutConfig) { c.Particles.Amount = -4 }, "particles"},
		{"speed bounds", func(c *BreakoutConfig) { c.Ball.MaxSpeed = 10 }, "speed bounds"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultBreakoutConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.field) {
				t.Errorf("error %q does not mention %q", err, tt.field)
			}
		})
	}

	disabled := DefaultBreakoutConfig()
	disabled.Particles.Amount = 0
	disabled.Collision.Policy = "ALL"
	if err := disabled.Validate(); err != nil {
		t.Errorf("disabled pool and upper-case policy should be valid: %v", err)
	}
}

func TestLoadBreakoutCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := "ball:\n  radius: 9\ncollision:\n  policy: all\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadBreakout(path)
	if err != nil {
		t.Fatalf("LoadBreakout: %v", err)
	}
	if cfg.Ball.Radius != 9 || cfg.Collision.Policy != "all" {
		t.Errorf("overrides not applied: radius=%v policy=%q", cfg.Ball.Radius, cfg.Collision.Policy)
	}
	// Untouched keys keep their defaults.
	if cfg.Paddle.Width != DefaultBreakoutConfig().Paddle.Width {
		t.Errorf("paddle width = %v, want default", cfg.Paddle.Width)
	}
}

func TestLoadBreakoutCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadBreakout(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom file should fail")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("ball:\n  radius: -2\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadBreakout(invalid); err == nil {
		t.Error("invalid radius should fail fast")
	}
}

func TestLoadBreakoutFallsBackToDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, err := LoadBreakout("")
	if err != nil {
		t.Fatalf("LoadBreakout: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultBreakoutConfig()) {
		t.Error("expected embedded defaults")
	}
}

func TestLoadBreakoutLocalConfigsDir(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	t.Chdir(dir)

	if err := os.Mkdir("configs", 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join("configs", ConfigFile), []byte("gameplay:\n  lives: 7\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadBreakout("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Gameplay.Lives != 7 {
		t.Errorf("lives = %d, want 7 from ./configs", cfg.Gameplay.Lives)
	}
}

func TestApplyBreakoutPreset(t *testing.T) {
	tests := []struct {
		preset    DifficultyPreset
		enabled   bool
		initial   float64
		wantLives int
	}{
		{DifficultyEasy, true, 0.0, 5},
		{DifficultyNormal, true, 0.3, 3},
		{DifficultyHard, true, 0.7, 2},
		{DifficultyFixed, false, 0.0, 3},
	}

	for _, tt := range tests {
		t.Run(string(tt.preset), func(t *testing.T) {
			cfg := DefaultBreakoutConfig()
			ApplyBreakoutPreset(&cfg, tt.preset)

			if cfg.Difficulty.Enabled != tt.enabled {
				t.Errorf("Enabled = %v", cfg.Difficulty.Enabled)
			}
			if cfg.Difficulty.InitialLevel != tt.initial {
				t.Errorf("InitialLevel = %v", cfg.Difficulty.InitialLevel)
			}
			if cfg.Gameplay.Lives != tt.wantLives {
				t.Errorf("Lives = %d", cfg.Gameplay.Lives)
			}
			if err := cfg.Validate(); err != nil {
				t.Errorf("preset produced invalid config: %v", err)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	if p, err := ParsePreset(""); err != nil || p != DifficultyNormal {
		t.Errorf("empty = %q, %v", p, err)
	}
	if p, err := ParsePreset("HARD"); err != nil || p != DifficultyHard {
		t.Errorf("HARD = %q, %v", p, err)
	}
	if _, err := ParsePreset("nightmare"); err == nil {
		t.Error("unknown preset should fail")
	}
	if !IsFixedPreset(DifficultyFixed) || IsFixedPreset(DifficultyEasy) {
		t.Error("IsFixedPreset mismatch")
	}
}
