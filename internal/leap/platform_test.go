package leap

import (
	"math"
	"testing"

	"github.com/vovakirdan/purrfect-leap/internal/config"
	"github.com/vovakirdan/purrfect-leap/internal/core"
)

func TestPlatformUpdate(t *testing.T) {
	cfg := config.DefaultLeapConfig().Platforms
	box := core.NewBox(100, 200, 72, 18)

	t.Run("normal is static", func(t *testing.T) {
		p := NewPlatform(box, PlatformNormal)
		p.Update(&cfg)
		if p.Box != box {
			t.Errorf("box = %+v, want %+v", p.Box, box)
		}
	})

	t.Run("moving oscillates around origin", func(t *testing.T) {
		p := NewPlatform(box, PlatformMoving)
		for i := 1; i <= 40; i++ {
			p.Update(&cfg)
			want := 100 + 50*math.Sin(0.05*float64(i))
			if !approxEqual(p.Box.X, want) {
				t.Fatalf("tick %d: x = %g, want %g", i, p.Box.X, want)
			}
		}
		if p.Box.Y != 200 {
			t.Errorf("moving platform changed height: %g", p.Box.Y)
		}
	})

	t.Run("breakable falls once broken", func(t *testing.T) {
		p := NewPlatform(box, PlatformBreakable)
		p.Update(&cfg)
		if p.Box.Y != 200 {
			t.Fatalf("intact breakable moved to %g", p.Box.Y)
		}
		p.Broken = true
		p.Update(&cfg)
		p.Update(&cfg)
		if p.Box.Y != 210 {
			t.Errorf("broken y = %g, want 210", p.Box.Y)
		}
	})
}

func TestPlatformSprite(t *testing.T) {
	box := core.NewBox(0, 0, 72, 18)
	tests := []struct {
		kind   PlatformKind
		broken bool
		want   SpriteID
	}{
		{PlatformNormal, false, SpritePlatformNormal},
		{PlatformMoving, false, SpritePlatformMoving},
		{PlatformBreakable, false, SpritePlatformBreakable},
		{PlatformBreakable, true, SpritePlatformBroken},
		{PlatformBoost, false, SpritePlatformBoost},
	}
	for _, tt := range tests {
		p := NewPlatform(box, tt.kind)
		p.Broken = tt.broken
		if got := p.Sprite(); got != tt.want {
			t.Errorf("%v broken=%v: sprite %d, want %d", tt.kind, tt.broken, got, tt.want)
		}
	}
}

func TestPlatformInvalidKindPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for invalid kind")
		}
	}()
	cfg := config.DefaultLeapConfig().Platforms
	p := NewPlatform(core.NewBox(0, 0, 1, 1), PlatformKind(42))
	p.Update(&cfg)
}
