package leap

import "github.com/vovakirdan/purrfect-leap/internal/core"

// Phase is a state of the game-flow machine.
type Phase int

const (
	PhaseStartMenu Phase = iota
	PhasePlaying
	PhasePaused
	PhaseGameOver
)

// String returns the name of the phase.
func (p Phase) String() string {
	switch p {
	case PhaseStartMenu:
		return core.PhaseStartMenu
	case PhasePlaying:
		return core.PhasePlaying
	case PhasePaused:
		return core.PhasePaused
	case PhaseGameOver:
		return core.PhaseGameOver
	default:
		return "unknown"
	}
}

// enterPlaying discards any previous run and starts a fresh world.
func (g *Game) enterPlaying() {
	g.world = NewWorld(g.cfg, g.rng, g.audio)
	g.lastScore = 0
	g.setPhase(PhasePlaying)
}

// enterPaused remembers the current phase so it can be resumed.
func (g *Game) enterPaused() {
	g.previous = g.phase
	g.setPhase(PhasePaused)
}

// resume returns from pause to the remembered phase.
func (g *Game) resume() {
	g.setPhase(g.previous)
}

// enterGameOver records the finished run and persists a new best score.
func (g *Game) enterGameOver(score int) {
	g.lastScore = score
	if score > g.best {
		g.best = score
		if g.store != nil {
			if err := g.store.SaveBest(score); err != nil {
				g.logger.Warn("could not save best score", "score", score, "error", err)
			}
		}
		g.logger.Info("new best score", "score", score)
	}
	g.audio.Play(CueGameOver)
	g.setPhase(PhaseGameOver)
}

func (g *Game) setPhase(p Phase) {
	g.logger.Debug("phase change", "from", g.phase, "to", p)
	g.phase = p
}
