// Package leap implements Purr-fect Leap, an endless vertical platformer.
// A cat bounces up procedurally generated platforms while the world scrolls
// down beneath it; falling out of the view ends the run.
package leap

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/purrfect-leap/internal/config"
	"github.com/vovakirdan/purrfect-leap/internal/core"
)

// Identity of the game in score records and the UI.
const (
	GameID    = "leap"
	GameTitle = "Purr-fect Leap"
)

// Options are the collaborators injected into a Game.
// Zero values fall back to defaults: embedded config, no persistence,
// silent audio, discarded logs and the built-in sprite sheet.
type Options struct {
	Config  *config.LeapConfig
	Store   ScoreStore
	Audio   AudioPlayer
	Logger  *log.Logger
	Sprites SpriteSheet
}

// Game is the game-flow controller: start menu, playing, paused and game over.
// It owns the active World and the best score.
type Game struct {
	cfg     config.LeapConfig
	runtime core.RuntimeConfig
	rng     *rand.Rand

	phase    Phase
	previous Phase // Phase to resume from pause
	world    *World

	best      int
	lastScore int // Score of the finished run while in game over

	store   ScoreStore
	audio   AudioPlayer
	logger  *log.Logger
	sprites SpriteSheet
}

// New creates a game in the start menu. The best score is loaded from the store;
// a missing or unreadable record counts as 0.
func New(opts Options) *Game {
	g := &Game{
		cfg:     config.DefaultLeapConfig(),
		store:   opts.Store,
		audio:   opts.Audio,
		logger:  opts.Logger,
		sprites: opts.Sprites,
		rng:     rand.New(rand.NewSource(1)),
	}
	if opts.Config != nil {
		g.cfg = *opts.Config
	}
	if g.audio == nil {
		g.audio = silentAudio{}
	}
	if g.logger == nil {
		g.logger = log.New(io.Discard)
	}
	if g.sprites == nil {
		g.sprites = DefaultSprites()
	}

	if g.store != nil {
		best, err := g.store.LoadBest()
		if err != nil {
			g.logger.Warn("could not load best score, starting from 0", "error", err)
			best = 0
		}
		g.best = max(best, 0)
	}
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return GameTitle
}

// Reset returns to the start menu and reseeds the random source.
func (g *Game) Reset(rt core.RuntimeConfig) {
	g.runtime = rt
	g.rng = rand.New(rand.NewSource(rt.Seed))
	g.world = nil
	g.lastScore = 0
	g.previous = PhaseStartMenu
	g.phase = PhaseStartMenu
}

// Step advances the game by one tick. A tick that changes phase does no
// further work, so a single press never both starts and acts.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	switch g.phase {
	case PhaseStartMenu:
		if in.Has(core.ActionConfirm) {
			g.enterPlaying()
		}

	case PhasePlaying:
		if in.Has(core.ActionCancel) {
			g.enterPaused()
			break
		}
		if in.Has(core.ActionConfirm) {
			g.world.Launch()
		}
		g.world.Step(in.Direction())
		if g.world.Over() {
			g.enterGameOver(g.world.Score())
		}

	case PhasePaused:
		if in.Has(core.ActionCancel) {
			g.resume()
		}

	case PhaseGameOver:
		if in.Has(core.ActionConfirm) {
			g.enterPlaying()
		}
	}

	return core.StepResult{State: g.State()}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Phase:     g.phase.String(),
		Score:     g.Score(),
		BestScore: g.best,
		GameOver:  g.phase == PhaseGameOver,
		Paused:    g.phase == PhasePaused,
	}
}

// Score returns the live run score, or the final score in game over.
func (g *Game) Score() int {
	if g.phase == PhaseGameOver {
		return g.lastScore
	}
	if g.world == nil {
		return 0
	}
	return g.world.Score()
}

// Phase returns the active flow state.
func (g *Game) Phase() Phase { return g.phase }

// BestScore returns the best score known to the game.
func (g *Game) BestScore() int { return g.best }

// World returns the active run, or nil before the first run.
func (g *Game) World() *World { return g.world }
