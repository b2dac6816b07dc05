package config

import (
	"math"
	"testing"
)

func scoreDifficulty() DifficultyConfig {
	return DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "score", MaxAt: 1000},
		Scaling:     ScalingConfig{SpeedMultiplier: 0.5, PaddleShrink: 0.25},
	}
}

func TestDifficultyLevel(t *testing.T) {
	dm := NewDifficultyManager(scoreDifficulty())

	tests := []struct {
		score int
		want  float64
	}{
		{0, 0},
		{500, 0.5},
		{1000, 1},
		{5000, 1},
	}
	for _, tt := range tests {
		if got := dm.Level(tt.score, 0); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Level(%d) = %v, want %v", tt.score, got, tt.want)
		}
	}

	dm.SetInitialLevel(0.5)
	if got := dm.Level(500, 0); math.Abs(got-0.75) > 1e-9 {
		t.Errorf("Level from 0.5 at half progress = %v, want 0.75", got)
	}
}

func TestDifficultyTimeProgression(t *testing.T) {
	cfg := scoreDifficulty()
	cfg.Progression = ProgressionConfig{Type: "time", MaxAt: 600}
	dm := NewDifficultyManager(cfg)

	if got := dm.Level(99999, 300); math.Abs(got-0.5) > 1e-9 {
		t.Errorf("Level = %v, want 0.5", got)
	}
}

func TestDifficultyDisabled(t *testing.T) {
	cfg := scoreDifficulty()
	cfg.InitialLevel = 0.3
	dm := NewDifficultyManager(cfg)
	dm.SetEnabled(false)

	if dm.IsEnabled() {
		t.Error("IsEnabled should be false")
	}
	if got := dm.Level(1000, 1000); got != 0.3 {
		t.Errorf("disabled Level = %v, want initial 0.3", got)
	}
}

func TestDifficultySpeedAndPaddle(t *testing.T) {
	dm := NewDifficultyManager(scoreDifficulty())

	if got := dm.Speed(300, 0, 0); got != 300 {
		t.Errorf("Speed at start = %v", got)
	}
	if got := dm.Speed(300, 1000, 0); math.Abs(got-450) > 1e-9 {
		t.Errorf("Speed at max = %v, want 450", got)
	}

	if got := dm.PaddleWidth(80, 40, 1000, 0); math.Abs(got-60) > 1e-9 {
		t.Errorf("PaddleWidth at max = %v, want 60", got)
	}
	if got := dm.PaddleWidth(80, 70, 1000, 0); got != 70 {
		t.Errorf("PaddleWidth should respect the minimum, got %v", got)
	}
}
