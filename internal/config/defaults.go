package config

import (
	_ "embed"
)

//go:embed defaults/leap.yaml
var defaultLeapYAML []byte

// DefaultLeapConfig returns the default configuration.
// It mirrors defaults/leap.yaml and is the fallback when the embed cannot be parsed.
func DefaultLeapConfig() LeapConfig {
	return LeapConfig{
		World: WorldConfig{
			Width:        480,
			Height:       800,
			MinPlatforms: 10,
		},
		Physics: PhysicsConfig{
			Gravity:            0.45,
			JumpImpulse:        -12,
			BoostImpulse:       -20,
			BoostTicks:         180, // 3 seconds at 60fps
			BoostGravityFactor: 0.1,
			SpringBonus:        -6,
			MoveSpeed:          5,
		},
		Cat: CatConfig{
			Size:          40,
			CollisionSize: 32,
			StartOffset:   100,
			AnimCycle:     60,
		},
		Platforms: PlatformConfig{
			Width:            72,
			Height:           18,
			VerticalGap:      100,
			ColumnGapMin:     60,
			ColumnGapMax:     120,
			Amplitude:        50,
			PhaseStep:        0.05,
			FallSpeed:        5,
			LandingTolerance: 5,
			Weights: KindWeights{
				Normal:    70,
				Moving:    15,
				Breakable: 10,
				Boost:     5,
			},
		},
		PowerUps: PowerUpConfig{
			SpawnChance: 0.01,
			Size:        32,
			GapMin:      60,
			GapMax:      120,
			CoinBonus:   100,
		},
		Audio: AudioConfig{
			Enabled:    true,
			Volume:     0.5,
			SampleRate: 44100,
		},
		Input: InputConfig{
			HoldTicks: 8,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultLeapYAML
}
