package config

import "math"

// Difficulty maps elapsed session time to a discrete level and derives
// scaled cooldowns and speeds from it.
type Difficulty struct {
	cfg DifficultyConfig
}

// NewDifficulty creates a difficulty controller.
func NewDifficulty(cfg DifficultyConfig) *Difficulty {
	if cfg.MaxLevel < 1 {
		cfg.MaxLevel = 1
	}
	if cfg.IntervalMs <= 0 {
		cfg.IntervalMs = 1
	}
	return &Difficulty{cfg: cfg}
}

// IsEnabled returns whether difficulty progression is active.
func (d *Difficulty) IsEnabled() bool {
	return d.cfg.Enabled
}

// Level returns clamp(1 + elapsed/interval, 1, max). Progression disabled
// pins the level to 1.
func (d *Difficulty) Level(elapsedMs int64) int {
	if !d.cfg.Enabled || elapsedMs <= 0 {
		return 1
	}
	level := 1 + elapsedMs/d.cfg.IntervalMs
	if level > int64(d.cfg.MaxLevel) {
		return d.cfg.MaxLevel
	}
	return int(level)
}

// ScaleInterval shrinks a cooldown or spawn interval: floor(base * rate^(level-1)).
func (d *Difficulty) ScaleInterval(base int64, level int) int64 {
	return int64(math.Floor(float64(base) * math.Pow(d.cfg.CooldownRate, float64(level-1))))
}

// ScaleSpeed grows a speed: base * rate^(level-1). A non-positive rate
// falls back to the configured default speed rate.
func (d *Difficulty) ScaleSpeed(base, rate float64, level int) float64 {
	if rate <= 0 {
		rate = d.cfg.SpeedRate
	}
	return base * math.Pow(rate, float64(level-1))
}

// Scale picks the mode from the magnitude of base: values above 100 are
// treated as millisecond intervals, everything else as a speed scaled by
// the default rate.
func (d *Difficulty) Scale(base float64, level int) float64 {
	if base > 100 {
		return float64(d.ScaleInterval(int64(base), level))
	}
	return d.ScaleSpeed(base, 0, level)
}

// Tracker follows the level of one session and reports each transition once.
type Tracker struct {
	d     *Difficulty
	level int
}

// NewTracker creates a tracker starting at level 1.
func NewTracker(d *Difficulty) *Tracker {
	return &Tracker{d: d, level: 1}
}

// Update recomputes the level for the elapsed time. changed is true only
// on the tick the level rises; the level never decreases until Reset.
func (t *Tracker) Update(elapsedMs int64) (level int, changed bool) {
	next := t.d.Level(elapsedMs)
	if next > t.level {
		t.level = next
		return t.level, true
	}
	return t.level, false
}

// Level returns the current level.
func (t *Tracker) Level() int {
	return t.level
}

// Reset returns the tracker to level 1.
func (t *Tracker) Reset() {
	t.level = 1
}
