package leap

import (
	"math/rand"

	"github.com/vovakirdan/purrfect-leap/internal/config"
	"github.com/vovakirdan/purrfect-leap/internal/core"
)

// Generator produces platforms at increasing heights with a weighted random kind.
type Generator struct {
	rng     *rand.Rand
	cfg     config.PlatformConfig
	viewW   float64
	viewH   float64
	weights [platformKindCount]int
	total   int
}

// NewGenerator creates a platform generator drawing from rng.
func NewGenerator(rng *rand.Rand, world config.WorldConfig, cfg config.PlatformConfig) *Generator {
	g := &Generator{
		rng:   rng,
		cfg:   cfg,
		viewW: world.Width,
		viewH: world.Height,
	}
	g.weights[PlatformNormal] = cfg.Weights.Normal
	g.weights[PlatformMoving] = cfg.Weights.Moving
	g.weights[PlatformBreakable] = cfg.Weights.Breakable
	g.weights[PlatformBoost] = cfg.Weights.Boost
	g.total = cfg.Weights.Total()
	return g
}

// pickKind draws a platform kind proportionally to the configured weights.
func (g *Generator) pickKind() PlatformKind {
	if g.total <= 0 {
		return PlatformNormal
	}
	n := g.rng.Intn(g.total)
	for kind, w := range g.weights {
		if n < w {
			return PlatformKind(kind)
		}
		n -= w
	}
	return PlatformNormal
}

// SpawnAt creates a randomly placed platform with its top edge at y.
func (g *Generator) SpawnAt(y float64) Platform {
	kind := g.pickKind()
	x := float64(randRange(g.rng, 0, int(g.viewW-g.cfg.Width)))
	return NewPlatform(core.NewBox(x, y, g.cfg.Width, g.cfg.Height), kind)
}

// InitialColumn builds the starting platforms: a full-width base at the bottom of
// the view, then random platforms upward until one extra screen of headroom above
// the view is covered.
func (g *Generator) InitialColumn(viewHeight float64) []Platform {
	base := NewPlatform(core.NewBox(0, viewHeight-g.cfg.Height, g.viewW, g.cfg.Height), PlatformNormal)
	platforms := []Platform{base}

	y := base.Box.Top() - float64(g.columnGap())
	for y > -viewHeight {
		platforms = append(platforms, g.SpawnAt(y))
		y -= float64(g.columnGap())
	}
	return platforms
}

// Replenish appends platforms above the highest one until minCount is reached.
// An empty slice is seeded from the bottom of the view.
func (g *Generator) Replenish(platforms []Platform, minCount int) []Platform {
	for len(platforms) < minCount {
		anchor := g.viewH
		if len(platforms) > 0 {
			anchor = highestTop(platforms)
		}
		platforms = append(platforms, g.SpawnAt(anchor-g.cfg.VerticalGap))
	}
	return platforms
}

func (g *Generator) columnGap() int {
	return randRange(g.rng, g.cfg.ColumnGapMin, g.cfg.ColumnGapMax)
}

// highestTop returns the smallest top edge (highest on screen). Platforms must be non-empty.
func highestTop(platforms []Platform) float64 {
	top := platforms[0].Box.Top()
	for i := 1; i < len(platforms); i++ {
		if t := platforms[i].Box.Top(); t < top {
			top = t
		}
	}
	return top
}

// randRange returns a uniform integer in [lo, hi], both inclusive.
func randRange(rng *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.Intn(hi-lo+1)
}
