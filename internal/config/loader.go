package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Source records where a configuration was loaded from.
type Source string

const (
	SourceCustom   Source = "custom"
	SourceUser     Source = "user"
	SourceLocal    Source = "local"
	SourceEmbedded Source = "embedded"
	SourceBuiltin  Source = "builtin"
)

// LoadShmup loads the simulation configuration.
// Search order: customPath -> ~/.skyburst/configs/shmup.yaml -> ./configs/shmup.yaml -> embedded default.
// Files are decoded on top of the built-in defaults, so partial files only override what they name.
func LoadShmup(customPath string) (ShmupConfig, Source, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return ShmupConfig{}, SourceCustom, fmt.Errorf("config: read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return ShmupConfig{}, SourceCustom, fmt.Errorf("config: parse %s: %w", customPath, err)
		}
		return cfg, SourceCustom, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("shmup.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, SourceUser, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "shmup.yaml")); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, SourceLocal, nil
		}
	}

	cfg, err := Parse(defaultShmupYAML)
	if err != nil {
		return DefaultShmupConfig(), SourceBuiltin, nil
	}
	return cfg, SourceEmbedded, nil
}

// Parse decodes YAML over the built-in defaults and validates the result.
func Parse(data []byte) (ShmupConfig, error) {
	cfg := DefaultShmupConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return ShmupConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return ShmupConfig{}, err
	}
	return cfg, nil
}

// Marshal renders the configuration as YAML.
func (c ShmupConfig) Marshal() ([]byte, error) {
	out, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("config: marshal: %w", err)
	}
	return out, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".skyburst", "configs", filename)
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *ShmupConfig, preset DifficultyPreset) {
	if IsFixedPreset(preset) {
		cfg.Difficulty.Enabled = false
		return
	}
	cfg.Difficulty.Enabled = true
	cfg.Difficulty.IntervalMs = IntervalForPreset(preset)
}

// Validate rejects configurations the simulation cannot run with.
func (c ShmupConfig) Validate() error {
	var errs []error
	positive := func(name string, v float64) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", name, v))
		}
	}

	positive("arena.width", float64(c.Arena.Width))
	positive("arena.height", float64(c.Arena.Height))
	positive("arena.tick_rate", float64(c.Arena.TickRate))
	positive("player.width", float64(c.Player.Width))
	positive("player.height", float64(c.Player.Height))
	positive("player.speed", c.Player.Speed)
	positive("player.hp", float64(c.Player.HP))
	positive("player.fire_cooldown_ms", float64(c.Player.FireCooldownMs))
	positive("player.bullet.speed", c.Player.Bullet.Speed)
	positive("formation.size", float64(c.Formation.Size))
	positive("formation.wave_size", float64(c.Formation.WaveSize))
	positive("formation.interval_ms", float64(c.Formation.IntervalMs))
	positive("elite.size", float64(c.Elite.Size))
	positive("elite.hp", float64(c.Elite.HP))
	positive("elite.shot_cooldown_ms", float64(c.Elite.ShotCooldownMs))
	positive("free_roam.size", float64(c.FreeRoam.Size))
	positive("free_roam.interval_ms", float64(c.FreeRoam.IntervalMs))
	positive("barrage.size", float64(c.Barrage.Size))
	positive("barrage.hp", float64(c.Barrage.HP))
	positive("barrage.orb_cooldown_ms", float64(c.Barrage.OrbCooldownMs))
	positive("orb.size", float64(c.Orb.Size))
	positive("orb.hp", float64(c.Orb.HP))
	positive("orb.burst", float64(c.Orb.Burst))
	positive("boss.size", float64(c.Boss.Size))
	positive("boss.hp", float64(c.Boss.HP))
	positive("boss.shot_cooldown_ms", float64(c.Boss.ShotCooldownMs))
	positive("difficulty.interval_ms", float64(c.Difficulty.IntervalMs))
	positive("difficulty.max_level", float64(c.Difficulty.MaxLevel))

	if c.Formation.Motion != "wave" && c.Formation.Motion != "straight" {
		errs = append(errs, fmt.Errorf("formation.motion must be wave or straight, got %q", c.Formation.Motion))
	}
	if span := (c.Formation.Size + c.Formation.Spacing) * c.Formation.WaveSize; span > c.Arena.Width {
		errs = append(errs, fmt.Errorf("formation wave span %d exceeds arena width %d", span, c.Arena.Width))
	}
	if c.Barrage.Size+2*c.Barrage.SideMargin > c.Arena.Width {
		errs = append(errs, fmt.Errorf("barrage does not fit arena width %d", c.Arena.Width))
	}
	if c.Difficulty.CooldownRate <= 0 || c.Difficulty.CooldownRate > 1 {
		errs = append(errs, fmt.Errorf("difficulty.cooldown_rate must be in (0, 1], got %v", c.Difficulty.CooldownRate))
	}
	if c.Difficulty.SpeedRate < 1 {
		errs = append(errs, fmt.Errorf("difficulty.speed_rate must be >= 1, got %v", c.Difficulty.SpeedRate))
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: invalid: %w", err)
	}
	return nil
}
