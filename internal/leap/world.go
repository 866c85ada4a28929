package leap

import (
	"math/rand"

	"github.com/vovakirdan/purrfect-leap/internal/config"
)

// World owns one run: the cat, the platforms and the power-ups.
// Step runs the per-tick pipeline in a fixed order:
// physics, platform motion, landings, power-ups, scroll, cleanup, fall check.
type World struct {
	cfg       config.LeapConfig
	gen       *Generator
	cat       *Cat
	powerups  *PowerUpManager
	platforms []Platform
	audio     AudioPlayer

	scrollY float64 // Total distance scrolled
	bonus   int     // Points from pickups
	started bool    // First jump performed
	over    bool    // Cat fell below the view
	ticks   int
}

// NewWorld creates a fresh run with an initial platform column.
func NewWorld(cfg config.LeapConfig, rng *rand.Rand, audio AudioPlayer) *World {
	if audio == nil {
		audio = silentAudio{}
	}
	gen := NewGenerator(rng, cfg.World, cfg.Platforms)
	w := &World{
		cfg:       cfg,
		gen:       gen,
		cat:       NewCat(cfg.World.Width/2, cfg.World.Height-cfg.Cat.StartOffset, cfg),
		powerups:  NewPowerUpManager(rng, cfg.World, cfg.PowerUps),
		platforms: gen.InitialColumn(cfg.World.Height),
		audio:     audio,
	}
	return w
}

// Launch performs the first jump and starts gravity. Later calls are ignored.
func (w *World) Launch() bool {
	if w.started {
		return false
	}
	w.started = true
	if w.cat.Jump() {
		w.audio.Play(CueJump)
	}
	return true
}

// Step advances the world by one tick. dir is the held horizontal direction
// (-1, 0 or +1) and is applied before physics.
func (w *World) Step(dir int) {
	if w.over {
		return
	}
	w.ticks++

	if dir != 0 {
		w.cat.MoveHorizontal(float64(dir) * w.cfg.Physics.MoveSpeed)
	}

	// 1. Character physics
	prevBottom := w.cat.Box.Bottom()
	w.cat.Tick(w.started)

	// 2. Platform motion
	for i := range w.platforms {
		w.platforms[i].Update(&w.cfg.Platforms)
	}

	// 3. Landings
	w.resolveLanding(prevBottom)

	// 4. Power-ups
	for range w.powerups.Tick(w.cat, w.platforms, w) {
		w.audio.Play(CuePowerUp)
	}

	// 5. Scroll
	scrolled := w.scroll()

	// 6. Cleanup below the view
	viewH := w.cfg.World.Height
	kept := w.platforms[:0]
	for _, p := range w.platforms {
		if p.Box.Top() < viewH {
			kept = append(kept, p)
		}
	}
	w.platforms = kept
	w.powerups.DropBelow(viewH)
	if scrolled {
		w.platforms = w.gen.Replenish(w.platforms, w.cfg.World.MinPlatforms)
	}

	// 7. Fall check
	if w.cat.Box.Top() > viewH {
		w.over = true
	}
}

// resolveLanding bounces the cat off the first platform it lands on this tick.
// Only evaluated after launch while the cat is falling or at rest. The fall is
// swept from prevBottom, so a fast cat cannot step over a platform top in one tick.
func (w *World) resolveLanding(prevBottom float64) {
	cat := w.cat
	if !w.started || cat.VY < 0 {
		return
	}
	tolerance := w.cfg.Platforms.LandingTolerance
	for i := range w.platforms {
		p := &w.platforms[i]
		top := p.Box.Top()
		if prevBottom <= top+tolerance &&
			cat.Box.Bottom() >= top &&
			cat.Box.Left() < p.Box.Right() && cat.Box.Right() > p.Box.Left() {
			impulse := w.cfg.Physics.JumpImpulse
			switch p.Kind {
			case PlatformBoost:
				impulse += w.cfg.Physics.SpringBonus
			case PlatformBreakable:
				p.Broken = true
			case PlatformNormal, PlatformMoving:
			default:
				panic("leap: invalid platform kind " + p.Kind.String())
			}
			cat.Box.Y = top - cat.Box.H
			cat.Bounce(impulse)
			w.audio.Play(CueJump)
			return
		}
	}
}

// scroll keeps the cat at or below the view midpoint by shifting the world down.
func (w *World) scroll() bool {
	mid := w.cfg.World.Height / 2
	top := w.cat.Box.Top()
	if top >= mid {
		return false
	}

	dy := mid - top
	w.cat.Box.Y = mid
	w.scrollY += dy
	for i := range w.platforms {
		w.platforms[i].Box.Y += dy
	}
	w.powerups.OnScroll(dy)
	w.platforms = w.gen.Replenish(w.platforms, w.cfg.World.MinPlatforms)
	return true
}

// AddBonus implements ScoreSink.
func (w *World) AddBonus(points int) {
	w.bonus += points
}

// Score returns the run score: scrolled distance plus pickup bonuses.
func (w *World) Score() int {
	return int(w.scrollY) + w.bonus
}

// ScrollY returns the total distance scrolled.
func (w *World) ScrollY() float64 { return w.scrollY }

// Started reports whether the first jump has happened.
func (w *World) Started() bool { return w.started }

// Over reports whether the cat has fallen out of the view.
func (w *World) Over() bool { return w.over }

// Cat returns the character.
func (w *World) Cat() *Cat { return w.cat }

// Platforms returns the live platforms.
func (w *World) Platforms() []Platform { return w.platforms }

// PowerUps returns the live power-ups.
func (w *World) PowerUps() []PowerUp { return w.powerups.Items() }

// Draw renders platforms, power-ups and the cat, back to front.
func (w *World) Draw(r Renderer) {
	for i := range w.platforms {
		r.DrawSprite(w.platforms[i].Sprite(), w.platforms[i].Box)
	}
	for _, p := range w.powerups.Items() {
		r.DrawSprite(p.Kind.Sprite(), p.Box)
	}
	r.DrawSprite(w.cat.Frame(), w.cat.Box)
}
