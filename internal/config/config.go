// Package config provides YAML-based game configuration loading for
// Purr-fect Leap: physics constants, generation policy and spawn rates.
package config

import (
	"errors"
	"fmt"
)

// LeapConfig contains all tunables for the world simulation.
type LeapConfig struct {
	World     WorldConfig    `yaml:"world"`
	Physics   PhysicsConfig  `yaml:"physics"`
	Cat       CatConfig      `yaml:"cat"`
	Platforms PlatformConfig `yaml:"platforms"`
	PowerUps  PowerUpConfig  `yaml:"powerups"`
	Audio     AudioConfig    `yaml:"audio"`
	Input     InputConfig    `yaml:"input"`
}

// WorldConfig defines the logical view the simulation runs in.
// World units are independent of the terminal size.
type WorldConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	MinPlatforms int     `yaml:"min_platforms"` // Recycling floor
}

// PhysicsConfig defines the cat's motion constants (per tick).
type PhysicsConfig struct {
	Gravity            float64 `yaml:"gravity"`
	JumpImpulse        float64 `yaml:"jump_impulse"`  // Negative = up
	BoostImpulse       float64 `yaml:"boost_impulse"` // Rocket power-up impulse
	BoostTicks         int     `yaml:"boost_ticks"`
	BoostGravityFactor float64 `yaml:"boost_gravity_factor"`
	SpringBonus        float64 `yaml:"spring_bonus"` // Added to jump impulse on boost platforms
	MoveSpeed          float64 `yaml:"move_speed"`
}

// CatConfig defines the character's size and animation cycle.
type CatConfig struct {
	Size          float64 `yaml:"size"`           // Wrap margin
	CollisionSize float64 `yaml:"collision_size"` // Square hitbox side
	StartOffset   float64 `yaml:"start_offset"`   // Start center distance above view bottom
	AnimCycle     int     `yaml:"anim_cycle"`
}

// PlatformConfig defines platform geometry and the generation policy.
type PlatformConfig struct {
	Width            float64     `yaml:"width"`
	Height           float64     `yaml:"height"`
	VerticalGap      float64     `yaml:"vertical_gap"` // Recycling spacing
	ColumnGapMin     int         `yaml:"column_gap_min"`
	ColumnGapMax     int         `yaml:"column_gap_max"`
	Amplitude        float64     `yaml:"amplitude"`  // Moving platform swing
	PhaseStep        float64     `yaml:"phase_step"` // Moving platform phase per tick
	FallSpeed        float64     `yaml:"fall_speed"` // Broken platform fall per tick
	LandingTolerance float64     `yaml:"landing_tolerance"`
	Weights          KindWeights `yaml:"weights"`
}

// KindWeights are the relative platform kind weights.
type KindWeights struct {
	Normal    int `yaml:"normal"`
	Moving    int `yaml:"moving"`
	Breakable int `yaml:"breakable"`
	Boost     int `yaml:"boost"`
}

// Total returns the sum of all weights.
func (w KindWeights) Total() int {
	return w.Normal + w.Moving + w.Breakable + w.Boost
}

// PowerUpConfig defines power-up spawning and effects.
type PowerUpConfig struct {
	SpawnChance float64 `yaml:"spawn_chance"` // Probability per tick
	Size        float64 `yaml:"size"`
	GapMin      int     `yaml:"gap_min"` // Distance above topmost platform
	GapMax      int     `yaml:"gap_max"`
	CoinBonus   int     `yaml:"coin_bonus"`
}

// AudioConfig defines sound cue playback.
type AudioConfig struct {
	Enabled    bool    `yaml:"enabled"`
	Volume     float64 `yaml:"volume"` // 0..1, linear
	SampleRate int     `yaml:"sample_rate"`
}

// InputConfig defines terminal input handling.
type InputConfig struct {
	HoldTicks int `yaml:"hold_ticks"` // Ticks a direction stays held after a key press
}

// Validate checks that the configuration can drive a simulation.
func (c LeapConfig) Validate() error {
	var errs []error

	if c.World.Width <= 0 || c.World.Height <= 0 {
		errs = append(errs, fmt.Errorf("world size must be positive, got %gx%g", c.World.Width, c.World.Height))
	}
	if c.World.MinPlatforms < 1 {
		errs = append(errs, fmt.Errorf("world.min_platforms must be at least 1, got %d", c.World.MinPlatforms))
	}
	if c.Platforms.Width <= 0 || c.Platforms.Width > c.World.Width {
		errs = append(errs, fmt.Errorf("platforms.width must be in (0, %g], got %g", c.World.Width, c.Platforms.Width))
	}
	if c.Platforms.Height <= 0 {
		errs = append(errs, fmt.Errorf("platforms.height must be positive, got %g", c.Platforms.Height))
	}
	if c.Platforms.VerticalGap <= 0 {
		errs = append(errs, fmt.Errorf("platforms.vertical_gap must be positive, got %g", c.Platforms.VerticalGap))
	}
	if c.Platforms.ColumnGapMin <= 0 || c.Platforms.ColumnGapMax < c.Platforms.ColumnGapMin {
		errs = append(errs, fmt.Errorf("platforms column gap range [%d, %d] is invalid",
			c.Platforms.ColumnGapMin, c.Platforms.ColumnGapMax))
	}
	w := c.Platforms.Weights
	if w.Normal < 0 || w.Moving < 0 || w.Breakable < 0 || w.Boost < 0 || w.Total() <= 0 {
		errs = append(errs, fmt.Errorf("platforms.weights must be non-negative with a positive sum, got %+v", w))
	}
	if c.Cat.CollisionSize <= 0 || c.Cat.Size < 0 {
		errs = append(errs, errors.New("cat sizes must be positive"))
	}
	if c.Cat.AnimCycle <= 0 {
		errs = append(errs, fmt.Errorf("cat.anim_cycle must be positive, got %d", c.Cat.AnimCycle))
	}
	if c.Physics.BoostTicks < 0 {
		errs = append(errs, fmt.Errorf("physics.boost_ticks must not be negative, got %d", c.Physics.BoostTicks))
	}
	if c.PowerUps.SpawnChance < 0 || c.PowerUps.SpawnChance > 1 {
		errs = append(errs, fmt.Errorf("powerups.spawn_chance must be in [0, 1], got %g", c.PowerUps.SpawnChance))
	}
	if c.PowerUps.Size <= 0 || c.PowerUps.Size > c.World.Width {
		errs = append(errs, fmt.Errorf("powerups.size must be in (0, %g], got %g", c.World.Width, c.PowerUps.Size))
	}
	if c.PowerUps.GapMin <= 0 || c.PowerUps.GapMax < c.PowerUps.GapMin {
		errs = append(errs, fmt.Errorf("powerups gap range [%d, %d] is invalid", c.PowerUps.GapMin, c.PowerUps.GapMax))
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		errs = append(errs, fmt.Errorf("audio.volume must be in [0, 1], got %g", c.Audio.Volume))
	}
	if c.Audio.SampleRate <= 0 {
		errs = append(errs, fmt.Errorf("audio.sample_rate must be positive, got %d", c.Audio.SampleRate))
	}
	if c.Input.HoldTicks < 1 {
		errs = append(errs, fmt.Errorf("input.hold_ticks must be at least 1, got %d", c.Input.HoldTicks))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid leap config: %w", errors.Join(errs...))
	}
	return nil
}
