package audio

import (
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/purrfect-leap/internal/leap"
)

// newCue synthesizes the streamer for a named cue.
// Unknown cues return nil.
func newCue(cue string, rate beep.SampleRate, volume float64) beep.Streamer {
	var s beep.Streamer
	switch cue {
	case leap.CueJump:
		// Short upward chirp
		s = note(380, 760, 110*time.Millisecond, WaveSquare, rate)
		volume *= 0.5
	case leap.CuePowerUp:
		// Two-note chime with an octave overtone
		s = beep.Seq(
			beep.Mix(
				note(660, 660, 80*time.Millisecond, WaveSine, rate),
				newVolume(note(1320, 1320, 80*time.Millisecond, WaveSine, rate), 0.3),
			),
			beep.Mix(
				note(990, 990, 140*time.Millisecond, WaveSine, rate),
				newVolume(note(1980, 1980, 140*time.Millisecond, WaveSine, rate), 0.3),
			),
		)
	case leap.CueGameOver:
		// Descending minor arpeggio sliding into a low tail
		s = beep.Seq(
			note(440, 440, 150*time.Millisecond, WaveTriangle, rate),
			note(349, 349, 150*time.Millisecond, WaveTriangle, rate),
			note(294, 294, 150*time.Millisecond, WaveTriangle, rate),
			note(220, 110, 400*time.Millisecond, WaveTriangle, rate),
		)
	default:
		return nil
	}
	return newVolume(s, volume)
}
