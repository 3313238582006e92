package config

import (
	"math"
	"testing"
	"time"
)

func TestSpeedFactorScalesLinearly(t *testing.T) {
	d := NewDifficultyManager(DefaultGameConfig().Difficulty)

	tests := []struct {
		round    int
		expected float64
	}{
		{1, 0.6},
		{2, 0.6 + 0.4/9},
		{5, 0.6 + 0.4*4/9},
		{10, 1.0},
		{25, 1.0}, // capped
	}

	for _, tc := range tests {
		got := d.SpeedFactor(tc.round)
		if math.Abs(got-tc.expected) > 1e-9 {
			t.Errorf("SpeedFactor(%d) = %v, expected %v", tc.round, got, tc.expected)
		}
	}
}

func TestSpawnIntervalFloors(t *testing.T) {
	cfg := DefaultGameConfig()
	d := NewDifficultyManager(cfg.Difficulty)

	tests := []struct {
		name     string
		animal   AnimalConfig
		round    int
		expected time.Duration
	}{
		{"squirrel round 1", cfg.Squirrel, 1, 3000 * time.Millisecond},
		{"squirrel round 3", cfg.Squirrel, 3, 2500 * time.Millisecond},
		{"squirrel floor", cfg.Squirrel, 40, 1000 * time.Millisecond},
		{"raccoon round 1", cfg.Raccoon, 1, 8000 * time.Millisecond},
		{"raccoon floor", cfg.Raccoon, 20, 4000 * time.Millisecond},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := d.SpawnInterval(tc.animal, tc.round); got != tc.expected {
				t.Errorf("SpawnInterval() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestTapSeekChance(t *testing.T) {
	d := NewDifficultyManager(DefaultGameConfig().Difficulty)

	if got := d.TapSeekChance(1); got != 0 {
		t.Errorf("TapSeekChance(1) = %v, expected 0", got)
	}
	if got := d.TapSeekChance(3); math.Abs(got-0.004) > 1e-12 {
		t.Errorf("TapSeekChance(3) = %v, expected 0.004", got)
	}
	if got := d.TapSeekChance(50); got != 0.01 {
		t.Errorf("TapSeekChance(50) = %v, expected cap 0.01", got)
	}
}

func TestDisabledScalingPinsRoundOne(t *testing.T) {
	cfg := DefaultGameConfig()
	d := NewDifficultyManager(cfg.Difficulty)
	d.SetEnabled(false)

	if d.IsEnabled() {
		t.Fatal("IsEnabled() should be false after SetEnabled(false)")
	}
	if got := d.SpeedFactor(8); got != 0.6 {
		t.Errorf("SpeedFactor(8) with scaling disabled = %v, expected 0.6", got)
	}
	if got := d.TapSeekChance(8); got != 0 {
		t.Errorf("TapSeekChance(8) with scaling disabled = %v, expected 0", got)
	}
	if got := d.SpawnInterval(cfg.Squirrel, 8); got != 3*time.Second {
		t.Errorf("SpawnInterval(8) with scaling disabled = %v, expected 3s", got)
	}
}
