// Package audio plays the game's sound cues through the system speaker.
// Cues are synthesized on the fly; there are no sound assets.
package audio

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/purrfect-leap/internal/config"
)

// Player implements the game's AudioPlayer on top of a beep mixer.
// Play never blocks the caller and never fails: problems are logged once.
type Player struct {
	mu          sync.Mutex
	rate        beep.SampleRate
	volume      float64
	mixer       *beep.Mixer
	logger      *log.Logger
	initialized bool
	warned      map[string]bool
}

// New creates a player from the audio config. The speaker is not touched
// until Init is called.
func New(cfg config.AudioConfig, logger *log.Logger) *Player {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Player{
		rate:   beep.SampleRate(cfg.SampleRate),
		volume: cfg.Volume,
		mixer:  &beep.Mixer{},
		logger: logger,
		warned: make(map[string]bool),
	}
}

// Init opens the speaker and starts the mixer. Calling it again is a no-op.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}

	if err := speaker.Init(p.rate, p.rate.N(50*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: cannot open speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.initialized = true
	p.logger.Debug("speaker ready", "rate", int(p.rate))
	return nil
}

// Play starts the named cue. Calls before Init and unknown cues are ignored.
func (p *Player) Play(cue string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	s := newCue(cue, p.rate, p.volume)
	if s == nil {
		if !p.warned[cue] {
			p.warned[cue] = true
			p.logger.Warn("unknown sound cue", "cue", cue)
		}
		return
	}

	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// Close stops all sounds and releases the speaker.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.initialized = false
}

// Silent is an AudioPlayer that plays nothing.
type Silent struct{}

// Play implements the game's AudioPlayer.
func (Silent) Play(string) {}
