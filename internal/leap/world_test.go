package leap

import (
	"testing"

	"github.com/vovakirdan/purrfect-leap/internal/core"
)

// platformUnder returns a platform whose top is offset below the cat's feet.
func platformUnder(c *Cat, offset float64, kind PlatformKind) Platform {
	return NewPlatform(core.NewBox(c.Box.X-20, c.Box.Bottom()+offset, 72, 18), kind)
}

func TestWorldInitialState(t *testing.T) {
	w, _ := newTestWorld(t, 1)

	if w.Started() || w.Over() || w.Score() != 0 {
		t.Fatalf("fresh world: started=%v over=%v score=%d", w.Started(), w.Over(), w.Score())
	}
	if len(w.Platforms()) == 0 {
		t.Fatal("initial column is empty")
	}
	c := w.Cat()
	if c.Box.CenterX() != 240 || c.Box.Y+c.Box.H/2 != 700 {
		t.Errorf("cat center = (%g, %g), want (240, 700)", c.Box.CenterX(), c.Box.Y+c.Box.H/2)
	}
}

func TestWorldInertBeforeLaunch(t *testing.T) {
	w, _ := newTestWorld(t, 1)
	y := w.Cat().Box.Y

	for i := 0; i < 120; i++ {
		w.Step(0)
	}

	if w.Cat().Box.Y != y || w.Cat().VY != 0 {
		t.Errorf("cat moved vertically before launch: y=%g vy=%g", w.Cat().Box.Y, w.Cat().VY)
	}
	if w.Score() != 0 || w.ScrollY() != 0 || w.Over() {
		t.Errorf("score=%d scroll=%g over=%v, want all zero", w.Score(), w.ScrollY(), w.Over())
	}
}

func TestWorldLaunch(t *testing.T) {
	w, audio := newTestWorld(t, 1)

	if !w.Launch() {
		t.Fatal("first Launch should start the run")
	}
	if w.Cat().VY != -12 {
		t.Errorf("VY = %g, want -12", w.Cat().VY)
	}
	if audio.count(CueJump) != 1 {
		t.Errorf("jump cues = %d, want 1", audio.count(CueJump))
	}
	if w.Launch() {
		t.Error("second Launch should be ignored")
	}
}

func TestWorldLanding(t *testing.T) {
	tests := []struct {
		name       string
		kind       PlatformKind
		vy         float64 // Fall speed before the tick
		offset     float64 // Gap between the cat's feet and the platform top
		wantVY     float64
		wantBroken bool
	}{
		{"normal", PlatformNormal, 3, 2, -12, false},
		{"moving", PlatformMoving, 3, 2, -12, false},
		{"boost", PlatformBoost, 3, 2, -18, false},
		{"breakable", PlatformBreakable, 3, 2, -12, true},
		{"resting on top", PlatformNormal, 0, 0, -12, false},
		// A fall from the jump apex covers about 12 units per tick.
		{"fast fall normal", PlatformNormal, 12, 8, -12, false},
		{"fast fall boost", PlatformBoost, 12, 8, -18, false},
		{"fast fall breakable", PlatformBreakable, 14, 1, -12, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, audio := newTestWorld(t, 1)
			w.started = true
			c := w.Cat()
			c.VY = tt.vy
			w.platforms = []Platform{platformUnder(c, tt.offset, tt.kind)}
			top := w.platforms[0].Box.Top()

			w.Step(0)

			if c.VY != tt.wantVY {
				t.Errorf("VY = %g, want %g", c.VY, tt.wantVY)
			}
			if c.Box.Bottom() != top {
				t.Errorf("cat bottom = %g, want snapped to %g", c.Box.Bottom(), top)
			}
			if w.platforms[0].Broken != tt.wantBroken {
				t.Errorf("broken = %v, want %v", w.platforms[0].Broken, tt.wantBroken)
			}
			if audio.count(CueJump) != 1 {
				t.Errorf("jump cues = %d, want 1", audio.count(CueJump))
			}
		})
	}
}

func TestWorldLaunchLandsBack(t *testing.T) {
	for seed := int64(1); seed <= 50; seed++ {
		w, audio := newTestWorld(t, seed)
		w.Launch()

		for i := 0; i < 300 && audio.count(CueJump) < 2 && !w.Over(); i++ {
			w.Step(0)
		}

		if w.Over() {
			t.Fatalf("seed %d: cat fell out of the view without landing", seed)
		}
		if audio.count(CueJump) < 2 {
			t.Fatalf("seed %d: no landing within 300 ticks", seed)
		}
	}
}

func TestWorldRestingCatInertBeforeLaunch(t *testing.T) {
	w, audio := newTestWorld(t, 1)
	c := w.Cat()
	w.platforms = []Platform{platformUnder(c, 0, PlatformBreakable)}

	w.Step(0)

	if c.VY != 0 || w.platforms[0].Broken || len(audio.cues) != 0 {
		t.Errorf("landing before launch: vy=%g broken=%v cues=%v", c.VY, w.platforms[0].Broken, audio.cues)
	}
}

func TestWorldNoLandingWhileRising(t *testing.T) {
	w, audio := newTestWorld(t, 1)
	w.started = true
	c := w.Cat()
	c.VY = -5
	p := NewPlatform(c.Box, PlatformBreakable)
	w.platforms = []Platform{p}

	w.Step(0)

	if !approxEqual(c.VY, -4.55) {
		t.Errorf("VY = %g, want -4.55", c.VY)
	}
	if w.platforms[0].Broken || len(audio.cues) != 0 {
		t.Error("rising cat must pass through platforms")
	}
}

func TestWorldNoLandingFromBelowTolerance(t *testing.T) {
	w, _ := newTestWorld(t, 1)
	w.started = true
	c := w.Cat()
	c.VY = 1
	// Cat feet already 10 units into the platform.
	w.platforms = []Platform{platformUnder(c, -10, PlatformBreakable)}

	w.Step(0)

	if w.platforms[0].Broken {
		t.Error("cat deep inside a platform should not land on it")
	}
}

func TestWorldFirstLandingWins(t *testing.T) {
	w, audio := newTestWorld(t, 1)
	w.started = true
	c := w.Cat()
	c.VY = 3
	w.platforms = []Platform{
		platformUnder(c, 2, PlatformBreakable),
		platformUnder(c, 2, PlatformBreakable),
	}

	w.Step(0)

	if !w.platforms[0].Broken || w.platforms[1].Broken {
		t.Errorf("broken = %v, %v; want only the first", w.platforms[0].Broken, w.platforms[1].Broken)
	}
	if audio.count(CueJump) != 1 {
		t.Errorf("jump cues = %d, want 1", audio.count(CueJump))
	}
}

func TestWorldHorizontalInput(t *testing.T) {
	w, _ := newTestWorld(t, 1)
	x := w.Cat().Box.X

	w.Step(-1)
	w.Step(-1)
	w.Step(1)

	if w.Cat().Box.X != x-5 {
		t.Errorf("x = %g, want %g", w.Cat().Box.X, x-5)
	}
}

func TestWorldScroll(t *testing.T) {
	w, _ := newTestWorld(t, 1)
	w.started = true
	c := w.Cat()
	c.Box.Y = 300
	c.VY = -5
	w.platforms = []Platform{NewPlatform(core.NewBox(0, 500, 72, 18), PlatformNormal)}

	w.Step(0)

	// The cat rose to 295.45 and was pinned back to the midpoint.
	dy := 400 - (300 - 4.55)
	if c.Box.Y != 400 {
		t.Errorf("cat y = %g, want 400", c.Box.Y)
	}
	if !approxEqual(w.ScrollY(), dy) {
		t.Errorf("scrollY = %g, want %g", w.ScrollY(), dy)
	}
	if w.Score() != int(dy) {
		t.Errorf("score = %d, want %d", w.Score(), int(dy))
	}
	if !approxEqual(w.platforms[0].Box.Y, 500+dy) {
		t.Errorf("platform y = %g, want %g", w.platforms[0].Box.Y, 500+dy)
	}
	if len(w.Platforms()) < 10 {
		t.Errorf("platforms after scroll = %d, want >= 10", len(w.Platforms()))
	}
}

func TestWorldScrollThreshold(t *testing.T) {
	w, _ := newTestWorld(t, 1)
	c := w.Cat()

	c.Box.Y = 400
	if w.scroll() {
		t.Error("cat exactly at the midpoint should not scroll")
	}

	c.Box.Y = 399
	if !w.scroll() {
		t.Fatal("cat above the midpoint should scroll")
	}
	if c.Box.Y != 400 || w.ScrollY() != 1 {
		t.Errorf("after scroll y=%g scrollY=%g, want 400 and 1", c.Box.Y, w.ScrollY())
	}
}

func TestWorldCleanup(t *testing.T) {
	w, _ := newTestWorld(t, 1)
	w.platforms = []Platform{
		NewPlatform(core.NewBox(0, 800, 72, 18), PlatformNormal),
		NewPlatform(core.NewBox(0, 799, 72, 18), PlatformNormal),
	}
	w.powerups.items = []PowerUp{{Box: core.NewBox(0, 850, 32, 32), Kind: PowerUpCoin}}

	w.Step(0)

	if len(w.Platforms()) != 1 || w.Platforms()[0].Box.Y != 799 {
		t.Errorf("platforms = %+v, want only the one above the bottom edge", w.Platforms())
	}
	if len(w.PowerUps()) != 0 {
		t.Errorf("power-ups below the view should be dropped, got %d", len(w.PowerUps()))
	}
}

func TestWorldCoinPickup(t *testing.T) {
	w, audio := newTestWorld(t, 1)
	w.powerups.items = []PowerUp{{Box: w.Cat().Box, Kind: PowerUpCoin}}

	w.Step(0)

	if w.Score() != 100 {
		t.Errorf("score = %d, want 100", w.Score())
	}
	if audio.count(CuePowerUp) != 1 {
		t.Errorf("powerup cues = %d, want 1", audio.count(CuePowerUp))
	}
}

func TestWorldGameOver(t *testing.T) {
	w, _ := newTestWorld(t, 1)
	w.started = true
	c := w.Cat()
	c.Box.Y = 799
	c.VY = 5
	w.platforms = nil

	w.Step(0)

	if !w.Over() {
		t.Fatalf("cat top at %g should end the run", c.Box.Y)
	}

	y := c.Box.Y
	w.Step(0)
	if c.Box.Y != y {
		t.Error("Step after game over should do nothing")
	}
}

func TestWorldLongRunInvariants(t *testing.T) {
	w, _ := newTestWorld(t, 2024)
	w.powerups.cfg.SpawnChance = 0.01
	w.Launch()

	prevScroll, prevScore := 0.0, 0
	for i := 0; i < 5000 && !w.Over(); i++ {
		dir := 0
		switch (i / 40) % 3 {
		case 0:
			dir = -1
		case 2:
			dir = 1
		}
		w.Step(dir)

		if w.ScrollY() < prevScroll {
			t.Fatalf("tick %d: scrollY decreased %g -> %g", i, prevScroll, w.ScrollY())
		}
		if w.Score() < prevScore {
			t.Fatalf("tick %d: score decreased %d -> %d", i, prevScore, w.Score())
		}
		if w.ScrollY() > prevScroll && len(w.Platforms()) < 10 {
			t.Fatalf("tick %d: %d platforms after scrolling", i, len(w.Platforms()))
		}
		if top := w.Cat().Box.Top(); !w.Over() && top < 400 {
			t.Fatalf("tick %d: cat top %g above midpoint after scroll", i, top)
		}
		for _, p := range w.Platforms() {
			if p.Box.Top() >= 800 {
				t.Fatalf("tick %d: platform at %g survived cleanup", i, p.Box.Top())
			}
		}
		prevScroll, prevScore = w.ScrollY(), w.Score()
	}
}

func TestWorldDrawOrder(t *testing.T) {
	w, _ := newTestWorld(t, 1)
	w.powerups.items = []PowerUp{{Box: core.NewBox(0, 0, 32, 32), Kind: PowerUpBubble}}

	rec := &recordingRenderer{}
	w.Draw(rec)

	if len(rec.ids) != len(w.Platforms())+2 {
		t.Fatalf("drew %d sprites, want %d", len(rec.ids), len(w.Platforms())+2)
	}
	if rec.ids[len(rec.ids)-1] != w.Cat().Frame() {
		t.Error("cat should be drawn last")
	}
	if rec.ids[len(rec.ids)-2] != SpriteBubble {
		t.Error("power-ups should be drawn after platforms")
	}
}

type recordingRenderer struct {
	ids []SpriteID
}

func (r *recordingRenderer) DrawSprite(id SpriteID, _ core.Box) {
	r.ids = append(r.ids, id)
}
