package config

import (
	"math"
	"time"
)

// DifficultyManager calculates per-round parameters: spawn intervals, speed
// factor and the squirrels' tap-seeking chance.
type DifficultyManager struct {
	cfg DifficultyConfig
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{cfg: cfg}
}

// SetEnabled enables or disables round scaling.
func (d *DifficultyManager) SetEnabled(enabled bool) {
	d.cfg.Enabled = enabled
}

// IsEnabled returns whether round scaling is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled
}

// effectiveRound returns the round used for scaling. Disabled scaling pins round 1.
func (d *DifficultyManager) effectiveRound(round int) int {
	if !d.cfg.Enabled || round < 1 {
		return 1
	}
	return round
}

// Progress returns how far along the difficulty curve a round is (0.0 to 1.0).
func (d *DifficultyManager) Progress(round int) float64 {
	r := d.effectiveRound(round)
	span := float64(d.cfg.MaxRound - 1)
	if span <= 0 {
		span = 1 // Prevent division by zero
	}
	return clampF(float64(r-1)/span, 0.0, 1.0)
}

// SpeedFactor returns the animal speed multiplier for a round.
// It grows linearly from SpeedMin in round 1 to SpeedMax at MaxRound.
func (d *DifficultyManager) SpeedFactor(round int) float64 {
	return d.cfg.SpeedMin + (d.cfg.SpeedMax-d.cfg.SpeedMin)*d.Progress(round)
}

// SpawnInterval returns the time between spawns of one animal kind.
func (d *DifficultyManager) SpawnInterval(a AnimalConfig, round int) time.Duration {
	r := d.effectiveRound(round)
	ms := a.SpawnBaseMs - a.SpawnStepMs*(r-1)
	if ms < a.SpawnFloorMs {
		ms = a.SpawnFloorMs
	}
	return time.Duration(ms) * time.Millisecond
}

// TapSeekChance returns the per-tick probability that a seeking squirrel
// heads for the tap. Always 0 in round 1.
func (d *DifficultyManager) TapSeekChance(round int) float64 {
	r := d.effectiveRound(round)
	return math.Min(d.cfg.TapSeekCap, d.cfg.TapSeekPerRound*float64(r-1))
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
