// Package audio plays short synthesized cues for simulation events.
// Audio is optional: every operation is a no-op until the speaker
// initialized successfully.
package audio

import "github.com/vovakirdan/skyburst/internal/games/shmup"

// Cue identifies one sound effect.
type Cue int

const (
	CueShot Cue = iota
	CueHit
	CueExplosion
	CueDetonation
	CueLevelUp
	CueBoss
	CueGameOver
	CueVictory
	cueCount
)

func (c Cue) String() string {
	switch c {
	case CueShot:
		return "shot"
	case CueHit:
		return "hit"
	case CueExplosion:
		return "explosion"
	case CueDetonation:
		return "detonation"
	case CueLevelUp:
		return "level_up"
	case CueBoss:
		return "boss"
	case CueGameOver:
		return "game_over"
	case CueVictory:
		return "victory"
	default:
		return "unknown"
	}
}

// CueFor maps a simulation event to its cue. Hostile shots and spawns are silent.
func CueFor(ev shmup.Event) (Cue, bool) {
	switch ev.Type {
	case shmup.EventShot:
		if ev.Kind == shmup.KindPlayerBullet {
			return CueShot, true
		}
	case shmup.EventPlayerHit:
		return CueHit, true
	case shmup.EventDestroyed:
		return CueExplosion, true
	case shmup.EventOrbDetonated:
		return CueDetonation, true
	case shmup.EventLevelUp:
		return CueLevelUp, true
	case shmup.EventBossSpawned:
		return CueBoss, true
	case shmup.EventGameOver:
		return CueGameOver, true
	case shmup.EventVictory:
		return CueVictory, true
	}
	return 0, false
}

// cuesFor returns the distinct cues of one step in first-seen order.
func cuesFor(events []shmup.Event) []Cue {
	var seen [cueCount]bool
	var out []Cue
	for _, ev := range events {
		c, ok := CueFor(ev)
		if !ok || seen[c] {
			continue
		}
		seen[c] = true
		out = append(out, c)
	}
	return out
}
