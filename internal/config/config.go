// Package config provides YAML-based game configuration loading and
// round difficulty scaling for the garden.
package config

import "time"

// GameConfig contains all tunable parameters of a garden session.
type GameConfig struct {
	Field      FieldConfig      `yaml:"field"`
	Gardener   GardenerConfig   `yaml:"gardener"`
	Tap        TapConfig        `yaml:"tap"`
	Vegetables VegetableConfig  `yaml:"vegetables"`
	Squirrel   AnimalConfig     `yaml:"squirrel"`
	Raccoon    AnimalConfig     `yaml:"raccoon"`
	Round      RoundConfig      `yaml:"round"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// FieldConfig defines the play area in world units.
type FieldConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	EscapeMargin float64 `yaml:"escape_margin"` // Distance past the edge at which a carrier escapes
	FleeMargin   float64 `yaml:"flee_margin"`   // Distance past the edge at which a fleeing animal is removed
}

// GardenerConfig defines the player character and the hose.
type GardenerConfig struct {
	StartX          float64 `yaml:"start_x"`
	StartY          float64 `yaml:"start_y"`
	Speed           float64 `yaml:"speed"`             // Units per second
	SprayIntervalMs int     `yaml:"spray_interval_ms"` // Time between bursts while spray is held
	BurstSize       int     `yaml:"burst_size"`        // Droplets per burst
	BurstSpread     float64 `yaml:"burst_spread"`      // Radians between droplets in a burst
	DropletSpeed    float64 `yaml:"droplet_speed"`
	DropletLifeMs   int     `yaml:"droplet_life_ms"`
}

// TapConfig defines the water tap.
type TapConfig struct {
	X             float64 `yaml:"x"`
	Y             float64 `yaml:"y"`
	PlayerReach   float64 `yaml:"player_reach"`   // Gardener must be this close to open it
	ArrivalRadius float64 `yaml:"arrival_radius"` // Squirrel must be this close to close it
}

// VegetableConfig defines the initial garden.
type VegetableConfig struct {
	InitialCount int     `yaml:"initial_count"`
	RingRadius   float64 `yaml:"ring_radius"` // Distance of the radial arrangement from the center
}

// AnimalConfig holds per-kind parameters shared by squirrels and raccoons.
type AnimalConfig struct {
	Capacity         int     `yaml:"capacity"`
	SeekSpeed        float64 `yaml:"seek_speed"` // Units per second at 100% speed factor
	CarrySpeed       float64 `yaml:"carry_speed"`
	FleeSpeed        float64 `yaml:"flee_speed"`
	GrabRadius       float64 `yaml:"grab_radius"`
	HitRadius        float64 `yaml:"hit_radius"`
	SpawnBaseMs      int     `yaml:"spawn_base_ms"`
	SpawnStepMs      int     `yaml:"spawn_step_ms"`  // Interval reduction per round
	SpawnFloorMs     int     `yaml:"spawn_floor_ms"` // Interval never drops below this
	FirstRound       int     `yaml:"first_round"`    // First round in which this kind spawns
	TapCooldownTicks int     `yaml:"tap_cooldown_ticks"`
}

// RoundConfig defines round pacing.
type RoundConfig struct {
	Seconds          int `yaml:"seconds"`
	GraceMs          int `yaml:"grace_ms"`           // Start-of-round period with collisions suppressed
	SettleMs         int `yaml:"settle_ms"`          // Delay after forced drops before scoring
	NextRoundDelayMs int `yaml:"next_round_delay_ms"` // Delay between round end and next round start
	MessageMs        int `yaml:"message_ms"`         // Default banner display time
}

// DifficultyConfig defines how rounds scale.
type DifficultyConfig struct {
	Enabled         bool    `yaml:"enabled"`
	SpeedMin        float64 `yaml:"speed_min"`          // Speed factor in round 1
	SpeedMax        float64 `yaml:"speed_max"`          // Speed factor at MaxRound and beyond
	MaxRound        int     `yaml:"max_round"`          // Round at which speed reaches SpeedMax
	TapSeekPerRound float64 `yaml:"tap_seek_per_round"` // Per-tick tap-seek chance added each round
	TapSeekCap      float64 `yaml:"tap_seek_cap"`
}

// Grace returns the start-of-round grace period.
func (r RoundConfig) Grace() time.Duration {
	return time.Duration(r.GraceMs) * time.Millisecond
}

// Settle returns the forced-drop settle delay.
func (r RoundConfig) Settle() time.Duration {
	return time.Duration(r.SettleMs) * time.Millisecond
}

// NextRoundDelay returns the delay before the following round starts.
func (r RoundConfig) NextRoundDelay() time.Duration {
	return time.Duration(r.NextRoundDelayMs) * time.Millisecond
}

// Message returns the default banner display time.
func (r RoundConfig) Message() time.Duration {
	return time.Duration(r.MessageMs) * time.Millisecond
}

// SprayInterval returns the time between bursts while spraying.
func (g GardenerConfig) SprayInterval() time.Duration {
	return time.Duration(g.SprayIntervalMs) * time.Millisecond
}

// DropletLife returns the lifetime of a droplet.
func (g GardenerConfig) DropletLife() time.Duration {
	return time.Duration(g.DropletLifeMs) * time.Millisecond
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI flag value into a preset. Unknown values map to "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// IsFixedPreset returns true if the preset disables round scaling.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
