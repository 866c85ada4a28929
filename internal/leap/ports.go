package leap

import "github.com/vovakirdan/purrfect-leap/internal/core"

// Sound cue names understood by AudioPlayer implementations.
const (
	CueJump     = "jump"
	CuePowerUp  = "powerup"
	CueGameOver = "gameover"
)

// AudioPlayer plays a named sound cue. Playback is fire-and-forget:
// implementations must not block the tick and must swallow their own failures.
type AudioPlayer interface {
	Play(cue string)
}

// ScoreStore persists the single best-score record.
// A missing or unreadable record is reported as an error and treated as 0 by the game.
type ScoreStore interface {
	LoadBest() (int, error)
	SaveBest(score int) error
}

// Renderer draws a sprite into a destination box given in world units.
type Renderer interface {
	DrawSprite(id SpriteID, dst core.Box)
}

// silentAudio is used when no AudioPlayer is configured.
type silentAudio struct{}

func (silentAudio) Play(string) {}
