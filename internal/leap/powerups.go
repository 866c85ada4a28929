package leap

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/purrfect-leap/internal/config"
	"github.com/vovakirdan/purrfect-leap/internal/core"
)

// PowerUpKind represents the collectible types.
type PowerUpKind int

const (
	PowerUpRocket    PowerUpKind = iota // Boost the cat
	PowerUpBubble                       // Collected with no effect
	PowerUpCoin                         // Score bonus
	powerUpKindCount                    // Sentinel for counting kinds
)

// String returns the name of the power-up kind.
func (k PowerUpKind) String() string {
	switch k {
	case PowerUpRocket:
		return "rocket"
	case PowerUpBubble:
		return "bubble"
	case PowerUpCoin:
		return "coin"
	default:
		return fmt.Sprintf("PowerUpKind(%d)", int(k))
	}
}

// Sprite returns the sprite used to draw this kind.
func (k PowerUpKind) Sprite() SpriteID {
	switch k {
	case PowerUpRocket:
		return SpriteRocket
	case PowerUpBubble:
		return SpriteBubble
	case PowerUpCoin:
		return SpriteCoin
	default:
		panic(fmt.Sprintf("leap: invalid power-up kind %d", int(k)))
	}
}

// PowerUp is a collectible floating in the world.
type PowerUp struct {
	Box  core.Box
	Kind PowerUpKind
}

// ScoreSink receives score bonuses from pickups.
type ScoreSink interface {
	AddBonus(points int)
}

// PowerUpManager spawns power-ups above the platforms and resolves pickups.
type PowerUpManager struct {
	rng   *rand.Rand
	cfg   config.PowerUpConfig
	viewW float64
	items []PowerUp
}

// NewPowerUpManager creates an empty manager drawing from rng.
func NewPowerUpManager(rng *rand.Rand, world config.WorldConfig, cfg config.PowerUpConfig) *PowerUpManager {
	return &PowerUpManager{
		rng:   rng,
		cfg:   cfg,
		viewW: world.Width,
		items: make([]PowerUp, 0, 8),
	}
}

// Tick consumes every power-up touching the cat and applies its effect,
// then spawns a new one with the configured per-tick probability.
// Returns the kinds picked up this tick.
func (m *PowerUpManager) Tick(cat *Cat, platforms []Platform, sink ScoreSink) []PowerUpKind {
	var picked []PowerUpKind

	kept := m.items[:0]
	for _, p := range m.items {
		if !p.Box.Intersects(cat.Box) {
			kept = append(kept, p)
			continue
		}
		m.apply(p.Kind, cat, sink)
		picked = append(picked, p.Kind)
	}
	m.items = kept

	if m.rng.Float64() < m.cfg.SpawnChance {
		m.spawn(platforms)
	}

	return picked
}

func (m *PowerUpManager) apply(kind PowerUpKind, cat *Cat, sink ScoreSink) {
	switch kind {
	case PowerUpRocket:
		cat.ApplyBoost()
	case PowerUpCoin:
		sink.AddBonus(m.cfg.CoinBonus)
	case PowerUpBubble:
		// no effect
	default:
		panic(fmt.Sprintf("leap: invalid power-up kind %d", int(kind)))
	}
}

// spawn places a random power-up above the topmost platform.
func (m *PowerUpManager) spawn(platforms []Platform) {
	anchor := 0.0
	if len(platforms) > 0 {
		anchor = highestTop(platforms)
	}
	y := anchor - float64(randRange(m.rng, m.cfg.GapMin, m.cfg.GapMax))
	x := float64(randRange(m.rng, 0, int(m.viewW-m.cfg.Size)))
	kind := PowerUpKind(m.rng.Intn(int(powerUpKindCount)))

	m.items = append(m.items, PowerUp{
		Box:  core.NewBox(x, y, m.cfg.Size, m.cfg.Size),
		Kind: kind,
	})
}

// OnScroll shifts every power-up down by dy, in lock-step with the platforms.
func (m *PowerUpManager) OnScroll(dy float64) {
	for i := range m.items {
		m.items[i].Box.Y += dy
	}
}

// DropBelow discards power-ups whose top edge is at or below y.
func (m *PowerUpManager) DropBelow(y float64) {
	kept := m.items[:0]
	for _, p := range m.items {
		if p.Box.Top() < y {
			kept = append(kept, p)
		}
	}
	m.items = kept
}

// Items returns the live power-ups.
func (m *PowerUpManager) Items() []PowerUp {
	return m.items
}
