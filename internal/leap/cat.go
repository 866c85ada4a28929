package leap

import (
	"github.com/vovakirdan/purrfect-leap/internal/config"
	"github.com/vovakirdan/purrfect-leap/internal/core"
)

// Animation buckets over the phase counter.
const (
	walkFrameTicks   = 15
	walkFrames       = 4
	rocketFrameTicks = 30
	rocketFrames     = 2
)

// Cat is the player character. Horizontal motion is direct displacement;
// vertical velocity integrates gravity once the run has started.
type Cat struct {
	Box         core.Box
	VY          float64 // Positive = falling
	RocketTimer int     // Ticks of reduced gravity left
	AnimPhase   int     // Monotonic counter modulo the animation cycle

	phys  config.PhysicsConfig
	size  float64 // Wrap margin
	viewW float64
	cycle int
}

// NewCat creates a cat whose hitbox is centered on (cx, cy).
func NewCat(cx, cy float64, cfg config.LeapConfig) *Cat {
	s := cfg.Cat.CollisionSize
	return &Cat{
		Box:   core.NewBox(cx-s/2, cy-s/2, s, s),
		phys:  cfg.Physics,
		size:  cfg.Cat.Size,
		viewW: cfg.World.Width,
		cycle: cfg.Cat.AnimCycle,
	}
}

// MoveHorizontal displaces the cat by dx without affecting velocity.
func (c *Cat) MoveHorizontal(dx float64) {
	c.Box.X += dx
}

// Jump sets the jump impulse unless the cat is falling.
// Returns whether the jump was applied.
func (c *Cat) Jump() bool {
	if c.VY > 0 {
		return false
	}
	c.VY = c.phys.JumpImpulse
	return true
}

// Bounce sets the vertical velocity to impulse unconditionally.
// Used for platform landings, which happen while falling.
func (c *Cat) Bounce(impulse float64) {
	c.VY = impulse
}

// ApplyBoost starts the rocket effect: strong impulse plus reduced gravity.
func (c *Cat) ApplyBoost() {
	c.RocketTimer = c.phys.BoostTicks
	c.VY = c.phys.BoostImpulse
}

// Boosting reports whether the rocket effect is active.
func (c *Cat) Boosting() bool {
	return c.RocketTimer > 0
}

// Tick integrates one step. Before the run starts the cat is inert vertically.
func (c *Cat) Tick(started bool) {
	if started {
		if c.RocketTimer > 0 {
			c.RocketTimer--
			c.VY += c.phys.Gravity * c.phys.BoostGravityFactor
		} else {
			c.VY += c.phys.Gravity
		}
		c.Box.Y += c.VY
	} else {
		c.VY = 0
	}

	c.wrap()
	c.AnimPhase = (c.AnimPhase + 1) % c.cycle
}

// wrap moves the cat to the opposite side once it leaves the [-size, viewW+size] band.
func (c *Cat) wrap() {
	if c.Box.Left() < -c.size {
		c.Box.X = c.viewW + c.size - c.Box.W
	} else if c.Box.Right() > c.viewW+c.size {
		c.Box.X = -c.size
	}
}

// Frame returns the sprite for the current animation phase.
func (c *Cat) Frame() SpriteID {
	if c.Boosting() {
		return SpriteCatRocket0 + SpriteID((c.AnimPhase/rocketFrameTicks)%rocketFrames)
	}
	return SpriteCatWalk0 + SpriteID((c.AnimPhase/walkFrameTicks)%walkFrames)
}
