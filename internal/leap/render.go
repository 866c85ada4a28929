package leap

import (
	"fmt"
	"unicode/utf8"

	"github.com/vovakirdan/purrfect-leap/internal/core"
)

// hudRows is the number of screen rows reserved above the world.
const hudRows = 1

// Render draws the current frame: the HUD, the world and any phase panel.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.world != nil {
		r := NewScreenRenderer(dst, g.sprites, g.cfg.World.Width, g.cfg.World.Height, hudRows)
		g.world.Draw(r)
	}

	g.drawHUD(dst)

	switch g.phase {
	case PhaseStartMenu:
		g.drawPanel(dst, g.Title(), []string{
			fmt.Sprintf("Best: %d", g.best),
			"",
			"SPACE / Enter  start",
			"←/→ or A/D     move",
			"P / Esc        pause",
			"Q              quit",
		}, core.ColorBrightCyan)
	case PhasePlaying:
		if g.world != nil && !g.world.Started() {
			dst.DrawTextCentered(dst.Height()/2, "Press SPACE to jump", core.ColorWhite)
		}
	case PhasePaused:
		g.drawPanel(dst, "PAUSED", []string{"Press P to resume"}, core.ColorYellow)
	case PhaseGameOver:
		lines := []string{
			fmt.Sprintf("Score: %d", g.lastScore),
			fmt.Sprintf("Best:  %d", g.best),
			"",
			"SPACE to play again",
		}
		if g.lastScore > 0 && g.lastScore == g.best {
			lines = append([]string{"New best!"}, lines...)
		}
		g.drawPanel(dst, "GAME OVER", lines, core.ColorBrightRed)
	}
}

func (g *Game) drawHUD(dst *core.Screen) {
	dst.DrawHLine(0, 0, dst.Width(), ' ', core.ColorDefault)
	dst.DrawTextColored(1, 0, fmt.Sprintf("Score: %d", g.Score()), core.ColorBrightYellow)

	best := fmt.Sprintf("Best: %d", g.best)
	dst.DrawTextColored(dst.Width()-utf8.RuneCountInString(best)-1, 0, best, core.ColorWhite)

	if g.world != nil && g.world.Cat().Boosting() {
		dst.DrawTextCentered(0, "ROCKET", core.ColorBrightRed)
	}
}

// drawPanel draws a bordered message box in the middle of the screen.
func (g *Game) drawPanel(dst *core.Screen, title string, lines []string, c core.Color) {
	boxW := utf8.RuneCountInString(title)
	for _, l := range lines {
		boxW = core.Max(boxW, utf8.RuneCountInString(l))
	}
	boxW += 4
	boxH := len(lines) + 4
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, c)

	dst.DrawTextColored(boxX+(boxW-utf8.RuneCountInString(title))/2, boxY+1, title, c)
	for i, l := range lines {
		dst.DrawTextColored(boxX+(boxW-utf8.RuneCountInString(l))/2, boxY+3+i, l, core.ColorWhite)
	}
}
