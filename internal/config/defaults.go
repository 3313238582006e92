package config

import (
	_ "embed"
)

//go:embed defaults/garden.yaml
var defaultGardenYAML []byte

// DefaultGameConfig returns the hardcoded default configuration.
// It mirrors defaults/garden.yaml and is used when the embedded file cannot be parsed.
func DefaultGameConfig() GameConfig {
	return GameConfig{
		Field: FieldConfig{
			Width:        800,
			Height:       600,
			EscapeMargin: 20,
			FleeMargin:   50,
		},
		Gardener: GardenerConfig{
			StartX:          400,
			StartY:          480,
			Speed:           220,
			SprayIntervalMs: 120,
			BurstSize:       3,
			BurstSpread:     0.15,
			DropletSpeed:    420,
			DropletLifeMs:   700,
		},
		Tap: TapConfig{
			X:             740,
			Y:             60,
			PlayerReach:   50,
			ArrivalRadius: 30,
		},
		Vegetables: VegetableConfig{
			InitialCount: 5,
			RingRadius:   90,
		},
		Squirrel: AnimalConfig{
			Capacity:         1,
			SeekSpeed:        120,
			CarrySpeed:       90,
			FleeSpeed:        170,
			GrabRadius:       25,
			HitRadius:        22,
			SpawnBaseMs:      3000,
			SpawnStepMs:      250,
			SpawnFloorMs:     1000,
			FirstRound:       1,
			TapCooldownTicks: 300,
		},
		Raccoon: AnimalConfig{
			Capacity:     2,
			SeekSpeed:    90,
			CarrySpeed:   70,
			FleeSpeed:    140,
			GrabRadius:   30,
			HitRadius:    28,
			SpawnBaseMs:  8000,
			SpawnStepMs:  500,
			SpawnFloorMs: 4000,
			FirstRound:   2,
		},
		Round: RoundConfig{
			Seconds:          60,
			GraceMs:          2500,
			SettleMs:         100,
			NextRoundDelayMs: 2000,
			MessageMs:        2000,
		},
		Difficulty: DifficultyConfig{
			Enabled:         true,
			SpeedMin:        0.6,
			SpeedMax:        1.0,
			MaxRound:        10,
			TapSeekPerRound: 0.002,
			TapSeekCap:      0.01,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultGardenYAML
}
