package leap

import (
	"fmt"
	"math"

	"github.com/vovakirdan/purrfect-leap/internal/config"
	"github.com/vovakirdan/purrfect-leap/internal/core"
)

// PlatformKind selects a platform's per-tick behavior and landing effect.
type PlatformKind int

const (
	PlatformNormal    PlatformKind = iota // Static
	PlatformMoving                        // Oscillates around its origin
	PlatformBreakable                     // Falls away once landed on
	PlatformBoost                         // Spring: stronger landing impulse
	platformKindCount                     // Sentinel for counting kinds
)

// String returns the name of the platform kind.
func (k PlatformKind) String() string {
	switch k {
	case PlatformNormal:
		return "normal"
	case PlatformMoving:
		return "moving"
	case PlatformBreakable:
		return "breakable"
	case PlatformBoost:
		return "boost"
	default:
		return fmt.Sprintf("PlatformKind(%d)", int(k))
	}
}

// Platform is a surface the cat bounces off.
type Platform struct {
	Box     core.Box
	Kind    PlatformKind
	Broken  bool    // Breakable only: landed on, now falling
	Phase   float64 // Moving only: oscillation angle
	OriginX float64 // Moving only: oscillation anchor
}

// NewPlatform creates a platform with its moving anchor at the current x.
func NewPlatform(box core.Box, kind PlatformKind) Platform {
	return Platform{
		Box:     box,
		Kind:    kind,
		OriginX: box.X,
	}
}

// Update advances the platform's own motion by one tick.
func (p *Platform) Update(cfg *config.PlatformConfig) {
	switch p.Kind {
	case PlatformNormal, PlatformBoost:
		// static
	case PlatformMoving:
		p.Phase += cfg.PhaseStep
		p.Box.X = p.OriginX + cfg.Amplitude*math.Sin(p.Phase)
	case PlatformBreakable:
		if p.Broken {
			p.Box.Y += cfg.FallSpeed
		}
	default:
		panic(fmt.Sprintf("leap: invalid platform kind %d", int(p.Kind)))
	}
}

// Sprite returns the sprite used to draw this platform.
func (p *Platform) Sprite() SpriteID {
	switch p.Kind {
	case PlatformNormal:
		return SpritePlatformNormal
	case PlatformMoving:
		return SpritePlatformMoving
	case PlatformBreakable:
		if p.Broken {
			return SpritePlatformBroken
		}
		return SpritePlatformBreakable
	case PlatformBoost:
		return SpritePlatformBoost
	default:
		panic(fmt.Sprintf("leap: invalid platform kind %d", int(p.Kind)))
	}
}
