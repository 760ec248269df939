package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/skyburst/internal/audio"
	"github.com/vovakirdan/skyburst/internal/config"
	"github.com/vovakirdan/skyburst/internal/telemetry"
)

// loadConfig resolves the configuration from the global flags.
func loadConfig() (config.ShmupConfig, config.Source, error) {
	cfg, source, err := config.LoadShmup(flagConfig)
	if err != nil {
		return cfg, source, err
	}

	if flagDifficulty != "" {
		preset, ok := config.ParsePreset(flagDifficulty)
		if !ok {
			return cfg, source, fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
		}
		config.ApplyPreset(&cfg, preset)
	}
	if flagFPS > 0 {
		cfg.Arena.TickRate = flagFPS
	}
	if err := cfg.Validate(); err != nil {
		return cfg, source, err
	}
	return cfg, source, nil
}

// selectedPreset returns the --difficulty preset, or normal when unset.
func selectedPreset() config.DifficultyPreset {
	preset, ok := config.ParsePreset(flagDifficulty)
	if !ok {
		return config.DifficultyNormal
	}
	return preset
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// newLogger builds the logger for a command. Commands that own the terminal
// pass quiet, which discards logs unless --log-file is given.
func newLogger(prefix string, quiet bool) (*log.Logger, io.Closer, error) {
	if flagLogFile != "" {
		return telemetry.OpenLogFile(flagLogFile, flagLogLevel, prefix)
	}
	if quiet {
		return telemetry.Discard(), nopCloser{}, nil
	}
	logger, err := telemetry.NewLogger(os.Stderr, flagLogLevel, prefix)
	if err != nil {
		return nil, nil, err
	}
	return logger, nopCloser{}, nil
}

// newSound opens the speaker at --volume unless --mute is set. A missing audio
// device only costs the sound.
func newSound(logger *log.Logger) *audio.SoundManager {
	if flagMute {
		return nil
	}
	sm := audio.NewSoundManager()
	if err := sm.Initialize(); err != nil {
		logger.Warn("sound disabled", "error", err)
		return nil
	}
	sm.SetVolume(flagVolume)
	return sm
}
