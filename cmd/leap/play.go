package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/purrfect-leap/internal/audio"
	"github.com/vovakirdan/purrfect-leap/internal/config"
	"github.com/vovakirdan/purrfect-leap/internal/core"
	"github.com/vovakirdan/purrfect-leap/internal/leap"
	"github.com/vovakirdan/purrfect-leap/internal/platform/tui"
	"github.com/vovakirdan/purrfect-leap/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start Purr-fect Leap.

Controls:
  Space/Enter/click  - Start, first jump, play again
  Left/Right, A/D    - Move
  P/Esc              - Pause / resume
  Ctrl+S             - Save a screenshot
  Q/Ctrl+C           - Quit

Examples:
  leap play
  leap play --seed 42 --mute
  leap play --config ./my-leap.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(flagConfigPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := openLogger(flagLogPath, flagDebug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
	}
	defer closeLog()

	// Open score storage, falling back to a plain file for the best score
	var best leap.ScoreStore
	var recorder tui.RunRecorder
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		best = fallbackStore(logger)
	} else {
		defer store.Close()
		best = store.Best(leap.GameID)
		recorder = store
	}

	player := newAudio(cfg.Audio, logger)
	if p, ok := player.(*audio.Player); ok {
		defer p.Close()
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	game := leap.New(leap.Options{
		Config:  &cfg,
		Store:   best,
		Audio:   player,
		Logger:  logger,
		Sprites: leap.DefaultSprites(),
	})

	logger.Info("starting", "seed", flagSeed, "fps", flagFPS, "size", fmt.Sprintf("%dx%d", width, height))
	err = tui.Run(game, tui.Options{
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
			Seed:     flagSeed,
		},
		HoldTicks: cfg.Input.HoldTicks,
		Recorder:  recorder,
		Logger:    logger,
	})
	if err != nil {
		logger.Error("game loop failed", "error", err)
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}

// fallbackStore keeps the best score in a YAML file next to the database.
func fallbackStore(logger *log.Logger) leap.ScoreStore {
	fs, err := storage.NewFileStore(filepath.Join("~", config.AppDir, "best.yaml"))
	if err != nil {
		logger.Warn("best score will not be saved", "error", err)
		return nil
	}
	return fs
}

// newAudio opens the speaker unless sound is muted or unavailable.
func newAudio(cfg config.AudioConfig, logger *log.Logger) leap.AudioPlayer {
	if flagMute || !cfg.Enabled {
		return audio.Silent{}
	}
	p := audio.New(cfg, logger)
	if err := p.Init(); err != nil {
		logger.Warn("sound disabled", "error", err)
		return audio.Silent{}
	}
	return p
}
