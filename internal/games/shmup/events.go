package shmup

import (
	"fmt"

	"github.com/vovakirdan/skyburst/internal/core"
)

// EventType identifies a notification raised during a tick.
type EventType int

const (
	EventLevelUp EventType = iota
	EventSpawn
	EventShot
	EventDestroyed
	EventPlayerHit
	EventOrbDetonated
	EventBossSpawned
	EventGameOver
	EventVictory
	EventPaused
	EventResumed
	EventRestart
)

func (t EventType) String() string {
	switch t {
	case EventLevelUp:
		return "level_up"
	case EventSpawn:
		return "spawn"
	case EventShot:
		return "shot"
	case EventDestroyed:
		return "destroyed"
	case EventPlayerHit:
		return "player_hit"
	case EventOrbDetonated:
		return "orb_detonated"
	case EventBossSpawned:
		return "boss_spawned"
	case EventGameOver:
		return "game_over"
	case EventVictory:
		return "victory"
	case EventPaused:
		return "paused"
	case EventResumed:
		return "resumed"
	case EventRestart:
		return "restart"
	default:
		return "unknown"
	}
}

// Event is one observable occurrence. Only the fields relevant to Type are set.
type Event struct {
	Type    EventType
	Elapsed int64
	Kind    Kind // actor involved (spawn, shot, destroyed)
	Level   int  // new level (level_up)
	Points  int  // score awarded (destroyed)
	Damage  int  // damage taken (player_hit)
	HP      int  // hp left (player_hit)
	Score   int  // final score (game_over, victory)
}

func (e Event) String() string {
	switch e.Type {
	case EventLevelUp:
		return fmt.Sprintf("%s level=%d", e.Type, e.Level)
	case EventSpawn, EventShot:
		return fmt.Sprintf("%s %s", e.Type, e.Kind)
	case EventDestroyed:
		return fmt.Sprintf("%s %s +%d", e.Type, e.Kind, e.Points)
	case EventPlayerHit:
		return fmt.Sprintf("%s -%d hp=%d", e.Type, e.Damage, e.HP)
	case EventGameOver, EventVictory:
		return fmt.Sprintf("%s score=%d", e.Type, e.Score)
	default:
		return e.Type.String()
	}
}

// StepResult is returned by Step after each tick.
type StepResult struct {
	State  core.GameState
	Events []Event
}
