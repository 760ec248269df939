// Package config provides YAML-based configuration loading and the
// difficulty controller for the shoot-'em-up simulation.
package config

// ShmupConfig contains all tunables of a session. Distances are arena
// pixels, speeds are pixels per tick and times are milliseconds.
type ShmupConfig struct {
	Arena      ArenaConfig      `yaml:"arena"`
	Player     PlayerConfig     `yaml:"player"`
	Formation  FormationConfig  `yaml:"formation"`
	Elite      EliteConfig      `yaml:"elite"`
	FreeRoam   FreeRoamConfig   `yaml:"free_roam"`
	Barrage    BarrageConfig    `yaml:"barrage"`
	Orb        OrbConfig        `yaml:"orb"`
	Boss       BossConfig       `yaml:"boss"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// ArenaConfig defines the playfield.
type ArenaConfig struct {
	Width    int `yaml:"width"`
	Height   int `yaml:"height"`
	TickRate int `yaml:"tick_rate"`
}

// PlayerConfig defines the player ship and its weapon.
type PlayerConfig struct {
	Width          int           `yaml:"width"`
	Height         int           `yaml:"height"`
	BottomOffset   int           `yaml:"bottom_offset"`
	Speed          float64       `yaml:"speed"`
	HP             int           `yaml:"hp"`
	InvincibleMs   int64         `yaml:"invincible_ms"`
	FlashMs        int64         `yaml:"flash_ms"`
	FireCooldownMs int64         `yaml:"fire_cooldown_ms"`
	Bullet         ProjectileDef `yaml:"bullet"`
}

// ProjectileDef describes a projectile shape, speed and contact damage.
// Player bullets ignore Damage; hit damage is defined per target.
type ProjectileDef struct {
	Width  int     `yaml:"width"`
	Height int     `yaml:"height"`
	Speed  float64 `yaml:"speed"`
	Damage int     `yaml:"damage"`
}

// Scoring groups the points and damage a target exchanges with the player.
type Scoring struct {
	HitDamage     int `yaml:"hit_damage"`     // hp removed per player bullet
	HitScore      int `yaml:"hit_score"`      // points per non-lethal bullet hit
	KillScore     int `yaml:"kill_score"`     // bonus on destruction
	ContactDamage int `yaml:"contact_damage"` // damage dealt to the player on contact
}

// FormationConfig defines wave-spawned trash enemies.
type FormationConfig struct {
	Size        int     `yaml:"size"`
	BaseSpeed   float64 `yaml:"base_speed"`
	SpeedRate   float64 `yaml:"speed_rate"`
	WaveSize    int     `yaml:"wave_size"`
	Spacing     int     `yaml:"spacing"`
	IntervalMs  int64   `yaml:"interval_ms"`
	Motion      string  `yaml:"motion"` // "wave" or "straight"
	Amplitude   float64 `yaml:"amplitude"`
	AngularRate float64 `yaml:"angular_rate"` // radians per 100 ms of lifetime
	Scoring     Scoring `yaml:"scoring"`
}

// EliteConfig defines the aimed-shot mid boss.
type EliteConfig struct {
	Size           int           `yaml:"size"`
	Descent        float64       `yaml:"descent"`
	HoldY          float64       `yaml:"hold_y"`
	HP             int           `yaml:"hp"`
	ShotCooldownMs int64         `yaml:"shot_cooldown_ms"`
	RespawnMs      int64         `yaml:"respawn_ms"`
	Bullet         ProjectileDef `yaml:"bullet"`
	Scoring        Scoring       `yaml:"scoring"`
}

// FreeRoamConfig defines edge-spawned roaming and chasing enemies.
type FreeRoamConfig struct {
	Size       int     `yaml:"size"`
	BaseSpeed  float64 `yaml:"base_speed"`
	SpeedRate  float64 `yaml:"speed_rate"`
	IntervalMs int64   `yaml:"interval_ms"`
	EdgeOffset int     `yaml:"edge_offset"`
	Tolerance  float64 `yaml:"tolerance"`
	RetargetMs int64   `yaml:"retarget_ms"`
	Scoring    Scoring `yaml:"scoring"`
}

// BarrageConfig defines the orb-launching singleton.
type BarrageConfig struct {
	Size          int     `yaml:"size"`
	SideMargin    int     `yaml:"side_margin"`
	Descent       float64 `yaml:"descent"`
	MinHoldY      int     `yaml:"min_hold_y"`
	HP            int     `yaml:"hp"`
	OrbCooldownMs int64   `yaml:"orb_cooldown_ms"`
	IntervalMs    int64   `yaml:"interval_ms"`
	Scoring       Scoring `yaml:"scoring"`
}

// OrbConfig defines barrage orbs and their radial burst.
type OrbConfig struct {
	Size     int           `yaml:"size"`
	Speed    float64       `yaml:"speed"`
	HP       int           `yaml:"hp"`
	FuseMs   int64         `yaml:"fuse_ms"`
	Burst    int           `yaml:"burst"`
	Shrapnel ProjectileDef `yaml:"shrapnel"`
	Scoring  Scoring       `yaml:"scoring"`
}

// BossConfig defines the final boss.
type BossConfig struct {
	Size           int           `yaml:"size"`
	HP             int           `yaml:"hp"`
	SpawnAfterMs   int64         `yaml:"spawn_after_ms"`
	ShotCooldownMs int64         `yaml:"shot_cooldown_ms"`
	Bullet         ProjectileDef `yaml:"bullet"`
	Scoring        Scoring       `yaml:"scoring"`
}

// DifficultyConfig defines the time-based difficulty progression.
type DifficultyConfig struct {
	Enabled      bool    `yaml:"enabled"`
	IntervalMs   int64   `yaml:"interval_ms"`   // elapsed time per level
	MaxLevel     int     `yaml:"max_level"`     // highest reachable level
	CooldownRate float64 `yaml:"cooldown_rate"` // interval multiplier per level
	SpeedRate    float64 `yaml:"speed_rate"`    // default speed multiplier per level
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Presets lists the accepted preset names in display order.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}

// IntervalForPreset returns the level interval for a difficulty preset.
func IntervalForPreset(preset DifficultyPreset) int64 {
	switch preset {
	case DifficultyEasy:
		return 45000
	case DifficultyHard:
		return 20000
	default:
		return 30000
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ParsePreset validates a preset name. An empty name means normal.
func ParsePreset(name string) (DifficultyPreset, bool) {
	if name == "" {
		return DifficultyNormal, true
	}
	for _, p := range Presets {
		if string(p) == name {
			return p, true
		}
	}
	return "", false
}
