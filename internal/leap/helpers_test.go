package leap

import (
	"math"
	"math/rand"
	"testing"

	"github.com/vovakirdan/purrfect-leap/internal/config"
)

// recordingAudio remembers every cue it was asked to play.
type recordingAudio struct {
	cues []string
}

func (a *recordingAudio) Play(cue string) {
	a.cues = append(a.cues, cue)
}

func (a *recordingAudio) count(cue string) int {
	n := 0
	for _, c := range a.cues {
		if c == cue {
			n++
		}
	}
	return n
}

// newTestWorld creates a world with power-up spawning disabled, so tests
// control every entity.
func newTestWorld(t *testing.T, seed int64) (*World, *recordingAudio) {
	t.Helper()
	audio := &recordingAudio{}
	w := NewWorld(config.DefaultLeapConfig(), rand.New(rand.NewSource(seed)), audio)
	w.powerups.cfg.SpawnChance = 0
	return w, audio
}

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}
