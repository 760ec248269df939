package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEmbeddedYAMLMatchesBuiltin(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) error: %v", err)
	}
	if cfg != DefaultShmupConfig() {
		t.Errorf("embedded YAML diverges from DefaultShmupConfig()\nyaml:    %+v\nbuiltin: %+v", cfg, DefaultShmupConfig())
	}
}

func TestLoadShmupCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	data := "player:\n  hp: 250\nboss:\n  spawn_after_ms: 5000\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, src, err := LoadShmup(path)
	if err != nil {
		t.Fatalf("LoadShmup() error: %v", err)
	}
	if src != SourceCustom {
		t.Errorf("source = %s, expected %s", src, SourceCustom)
	}
	if cfg.Player.HP != 250 || cfg.Boss.SpawnAfterMs != 5000 {
		t.Errorf("overrides not applied: hp=%d spawn=%d", cfg.Player.HP, cfg.Boss.SpawnAfterMs)
	}
	if cfg.Elite.HP != 70 {
		t.Errorf("unspecified field lost its default: elite hp=%d", cfg.Elite.HP)
	}
}

func TestLoadShmupErrors(t *testing.T) {
	dir := t.TempDir()

	if _, _, err := LoadShmup(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("arena: [1, 2"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	_, _, err := LoadShmup(bad)
	if err == nil || !strings.HasPrefix(err.Error(), "config: parse") {
		t.Errorf("expected parse error, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*ShmupConfig)
		wantErr string
	}{
		{"defaults", func(*ShmupConfig) {}, ""},
		{"zero width", func(c *ShmupConfig) { c.Arena.Width = 0 }, "arena.width"},
		{"bad motion", func(c *ShmupConfig) { c.Formation.Motion = "zigzag" }, "formation.motion"},
		{"wave too wide", func(c *ShmupConfig) { c.Formation.WaveSize = 20 }, "wave span"},
		{"cooldown rate above one", func(c *ShmupConfig) { c.Difficulty.CooldownRate = 1.2 }, "cooldown_rate"},
		{"speed rate below one", func(c *ShmupConfig) { c.Difficulty.SpeedRate = 0.5 }, "speed_rate"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultShmupConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.wantErr == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("Validate() = %v, expected mention of %q", err, tc.wantErr)
			}
		})
	}
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		preset   DifficultyPreset
		enabled  bool
		interval int64
	}{
		{DifficultyEasy, true, 45000},
		{DifficultyNormal, true, 30000},
		{DifficultyHard, true, 20000},
		{DifficultyFixed, false, 30000},
	}
	for _, tc := range tests {
		cfg := DefaultShmupConfig()
		ApplyPreset(&cfg, tc.preset)
		if cfg.Difficulty.Enabled != tc.enabled || cfg.Difficulty.IntervalMs != tc.interval {
			t.Errorf("%s: enabled=%v interval=%d, expected %v %d",
				tc.preset, cfg.Difficulty.Enabled, cfg.Difficulty.IntervalMs, tc.enabled, tc.interval)
		}
	}

	if _, ok := ParsePreset("insane"); ok {
		t.Error("ParsePreset accepted unknown name")
	}
	if p, ok := ParsePreset(""); !ok || p != DifficultyNormal {
		t.Errorf("ParsePreset(\"\") = %q, %v", p, ok)
	}
}

func TestMarshalRoundTripsThroughParse(t *testing.T) {
	cfg := DefaultShmupConfig()
	cfg.Player.HP = 42
	out, err := cfg.Marshal()
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	back, err := Parse(out)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if back.Player.HP != 42 {
		t.Errorf("player hp = %d after round trip", back.Player.HP)
	}
}
