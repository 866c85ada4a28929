package leap

import (
	"math"
	"unicode/utf8"

	"github.com/vovakirdan/purrfect-leap/internal/core"
)

// SpriteID identifies an entry in a SpriteSheet.
type SpriteID int

const (
	SpriteCatWalk0 SpriteID = iota
	SpriteCatWalk1
	SpriteCatWalk2
	SpriteCatWalk3
	SpriteCatRocket0
	SpriteCatRocket1
	SpritePlatformNormal
	SpritePlatformMoving
	SpritePlatformBreakable
	SpritePlatformBroken
	SpritePlatformBoost
	SpriteRocket
	SpriteBubble
	SpriteCoin
)

// Sprite is how one entity looks on a cell screen. Fill covers the whole
// destination box; Label is centered on its middle row.
type Sprite struct {
	Fill  rune
	Label string
	Color core.Color
}

// SpriteSheet maps sprite identifiers to their look.
type SpriteSheet map[SpriteID]Sprite

// DefaultSprites returns the built-in terminal sprite sheet.
func DefaultSprites() SpriteSheet {
	return SpriteSheet{
		SpriteCatWalk0:          {Label: "=^.^=", Color: core.ColorOrange},
		SpriteCatWalk1:          {Label: "=^o^=", Color: core.ColorOrange},
		SpriteCatWalk2:          {Label: "=^.^=", Color: core.ColorOrange},
		SpriteCatWalk3:          {Label: "=^-^=", Color: core.ColorOrange},
		SpriteCatRocket0:        {Label: "^=^=^", Color: core.ColorBrightRed},
		SpriteCatRocket1:        {Label: "*=^=*", Color: core.ColorBrightYellow},
		SpritePlatformNormal:    {Fill: '▀', Color: core.ColorGreen},
		SpritePlatformMoving:    {Fill: '▀', Color: core.ColorCyan},
		SpritePlatformBreakable: {Fill: '▚', Color: core.ColorYellow},
		SpritePlatformBroken:    {Fill: '░', Color: core.ColorGray},
		SpritePlatformBoost:     {Fill: '▀', Label: "≋", Color: core.ColorMagenta},
		SpriteRocket:            {Label: "↑R", Color: core.ColorBrightRed},
		SpriteBubble:            {Label: "()", Color: core.ColorBrightCyan},
		SpriteCoin:              {Label: "$", Color: core.ColorBrightYellow},
	}
}

// ScreenRenderer draws world-unit sprites onto a cell Screen, scaling the
// logical world to the rows below the HUD.
type ScreenRenderer struct {
	dst    *core.Screen
	sheet  SpriteSheet
	scaleX float64 // World units per column
	scaleY float64 // World units per row
	top    int     // First row available to the world
}

// NewScreenRenderer creates a renderer for a world of worldW x worldH units,
// drawn into dst starting at row top.
func NewScreenRenderer(dst *core.Screen, sheet SpriteSheet, worldW, worldH float64, top int) *ScreenRenderer {
	cols := max(dst.Width(), 1)
	rows := max(dst.Height()-top, 1)
	return &ScreenRenderer{
		dst:    dst,
		sheet:  sheet,
		scaleX: worldW / float64(cols),
		scaleY: worldH / float64(rows),
		top:    top,
	}
}

// CellRect maps a world box to the screen cells it covers. Every box covers
// at least one cell.
func (r *ScreenRenderer) CellRect(b core.Box) core.Rect {
	x0 := int(math.Floor(b.X / r.scaleX))
	x1 := int(math.Ceil(b.Right() / r.scaleX))
	y0 := int(math.Floor(b.Y/r.scaleY)) + r.top
	h := int(math.Round(b.H / r.scaleY))
	return core.NewRect(x0, y0, max(x1-x0, 1), max(h, 1))
}

// DrawSprite implements Renderer. Unknown sprites are skipped.
func (r *ScreenRenderer) DrawSprite(id SpriteID, b core.Box) {
	sp, ok := r.sheet[id]
	if !ok {
		return
	}
	cells := r.CellRect(b)

	if sp.Fill != 0 {
		for y := cells.Y; y < cells.Bottom(); y++ {
			for x := cells.X; x < cells.Right(); x++ {
				r.set(x, y, sp.Fill, sp.Color)
			}
		}
	}

	if sp.Label != "" {
		n := utf8.RuneCountInString(sp.Label)
		x := cells.X + (cells.W-n)/2
		y := cells.Y + (cells.H-1)/2
		for _, ch := range sp.Label {
			r.set(x, y, ch, sp.Color)
			x++
		}
	}
}

// set writes a cell unless it falls in the HUD rows.
func (r *ScreenRenderer) set(x, y int, ch rune, c core.Color) {
	if y < r.top {
		return
	}
	r.dst.SetColored(x, y, ch, c)
}
