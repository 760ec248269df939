package config

import (
	_ "embed"
)

//go:embed defaults/shmup.yaml
var defaultShmupYAML []byte

// DefaultShmupConfig returns the built-in configuration. It mirrors
// defaults/shmup.yaml and is used when the embedded file cannot be parsed.
func DefaultShmupConfig() ShmupConfig {
	return ShmupConfig{
		Arena: ArenaConfig{
			Width:    800,
			Height:   600,
			TickRate: 60,
		},
		Player: PlayerConfig{
			Width:          20,
			Height:         20,
			BottomOffset:   30,
			Speed:          3,
			HP:             100,
			InvincibleMs:   1000,
			FlashMs:        100,
			FireCooldownMs: 100,
			Bullet:         ProjectileDef{Width: 5, Height: 15, Speed: 12},
		},
		Formation: FormationConfig{
			Size:        30,
			BaseSpeed:   1.5,
			SpeedRate:   1.05,
			WaveSize:    4,
			Spacing:     40,
			IntervalMs:  1000,
			Motion:      "wave",
			Amplitude:   70,
			AngularRate: 0.08,
			Scoring:     Scoring{HitDamage: 1, KillScore: 10, ContactDamage: 20},
		},
		Elite: EliteConfig{
			Size:           60,
			Descent:        1.2,
			HoldY:          100,
			HP:             70,
			ShotCooldownMs: 1000,
			RespawnMs:      7000,
			Bullet:         ProjectileDef{Width: 15, Height: 15, Speed: 7, Damage: 20},
			Scoring:        Scoring{HitDamage: 10, HitScore: 5, KillScore: 100, ContactDamage: 30},
		},
		FreeRoam: FreeRoamConfig{
			Size:       25,
			BaseSpeed:  3,
			SpeedRate:  1.07,
			IntervalMs: 2000,
			EdgeOffset: 20,
			Tolerance:  10,
			RetargetMs: 1000,
			Scoring:    Scoring{HitDamage: 1, KillScore: 15, ContactDamage: 20},
		},
		Barrage: BarrageConfig{
			Size:          70,
			SideMargin:    50,
			Descent:       0.8,
			MinHoldY:      50,
			HP:            100,
			OrbCooldownMs: 3000,
			IntervalMs:    25000,
			Scoring:       Scoring{HitDamage: 5, HitScore: 3, KillScore: 150, ContactDamage: 30},
		},
		Orb: OrbConfig{
			Size:     40,
			Speed:    2,
			HP:       3,
			FuseMs:   2000,
			Burst:    16,
			Shrapnel: ProjectileDef{Width: 8, Height: 8, Speed: 5, Damage: 8},
			Scoring:  Scoring{HitDamage: 1, HitScore: 5, KillScore: 20, ContactDamage: 15},
		},
		Boss: BossConfig{
			Size:           150,
			HP:             500,
			SpawnAfterMs:   60000,
			ShotCooldownMs: 700,
			Bullet:         ProjectileDef{Width: 20, Height: 20, Speed: 8, Damage: 25},
			Scoring:        Scoring{HitDamage: 2, HitScore: 1, KillScore: 1000, ContactDamage: 50},
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			IntervalMs:   30000,
			MaxLevel:     10,
			CooldownRate: 0.9,
			SpeedRate:    1.1,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultShmupYAML
}
