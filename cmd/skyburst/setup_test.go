package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/skyburst/internal/config"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "shmup.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func setFlags(t *testing.T, cfgPath, difficulty string, fps int) {
	t.Helper()
	oldCfg, oldDiff, oldFPS := flagConfig, flagDifficulty, flagFPS
	t.Cleanup(func() {
		flagConfig, flagDifficulty, flagFPS = oldCfg, oldDiff, oldFPS
	})
	flagConfig, flagDifficulty, flagFPS = cfgPath, difficulty, fps
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, "arena:\n  tick_rate: 30\n")

	tests := []struct {
		name         string
		difficulty   string
		fps          int
		wantRate     int
		wantEnabled  bool
		wantInterval int64
		wantErr      bool
	}{
		{"file values", "", 0, 30, true, 30000, false},
		{"fps override", "", 120, 120, true, 30000, false},
		{"hard preset", "hard", 0, 30, true, 20000, false},
		{"fixed preset", "fixed", 0, 30, false, 30000, false},
		{"unknown preset", "nightmare", 0, 0, false, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setFlags(t, path, tt.difficulty, tt.fps)
			cfg, source, err := loadConfig()
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("loadConfig: %v", err)
			}
			if source != config.SourceCustom {
				t.Errorf("source = %v, want custom", source)
			}
			if cfg.Arena.TickRate != tt.wantRate {
				t.Errorf("tick rate = %d, want %d", cfg.Arena.TickRate, tt.wantRate)
			}
			if cfg.Difficulty.Enabled != tt.wantEnabled || cfg.Difficulty.IntervalMs != tt.wantInterval {
				t.Errorf("difficulty = %+v", cfg.Difficulty)
			}
		})
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	setFlags(t, filepath.Join(t.TempDir(), "missing.yaml"), "", 0)
	if _, _, err := loadConfig(); err == nil {
		t.Error("expected error for missing config file")
	}
}

func TestSelectedPreset(t *testing.T) {
	tests := []struct {
		flag string
		want config.DifficultyPreset
	}{
		{"", config.DifficultyNormal},
		{"easy", config.DifficultyEasy},
		{"bogus", config.DifficultyNormal},
	}
	for _, tt := range tests {
		setFlags(t, "", tt.flag, 0)
		if got := selectedPreset(); got != tt.want {
			t.Errorf("selectedPreset(%q) = %v, want %v", tt.flag, got, tt.want)
		}
	}
}
