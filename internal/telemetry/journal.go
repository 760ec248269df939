package telemetry

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/skyburst/internal/core"
	"github.com/vovakirdan/skyburst/internal/games/shmup"
)

// Entry is one recorded simulation event.
type Entry struct {
	Tick  int64
	Event shmup.Event
}

// String formats the entry as a fixed-width log line.
//
//	[T=00420 00:07.000] destroyed     elite +100
func (e Entry) String() string {
	secs := e.Event.Elapsed / 1000
	ms := e.Event.Elapsed % 1000
	return fmt.Sprintf("[T=%05d %02d:%02d.%03d] %-13s %s",
		e.Tick, secs/60, secs%60, ms, e.Event.Type, detail(e.Event))
}

func detail(ev shmup.Event) string {
	switch ev.Type {
	case shmup.EventLevelUp:
		return fmt.Sprintf("level=%d", ev.Level)
	case shmup.EventSpawn, shmup.EventShot, shmup.EventBossSpawned, shmup.EventOrbDetonated:
		return ev.Kind.String()
	case shmup.EventDestroyed:
		return fmt.Sprintf("%s +%d", ev.Kind, ev.Points)
	case shmup.EventPlayerHit:
		return fmt.Sprintf("-%d hp=%d", ev.Damage, ev.HP)
	case shmup.EventGameOver, shmup.EventVictory:
		return fmt.Sprintf("score=%d", ev.Score)
	default:
		return ""
	}
}

// Journal records the events of one run and mirrors the notable ones to a
// logger. Spawn and shot events are only kept when verbose is set.
type Journal struct {
	logger  *log.Logger
	verbose bool
	entries []Entry
	summary RunSummary
}

// NewJournal creates a journal. A nil logger disables log output.
func NewJournal(logger *log.Logger, verbose bool) *Journal {
	j := &Journal{logger: logger, verbose: verbose}
	j.Reset(0)
	return j
}

// Reset clears the journal for a new run with the given seed.
func (j *Journal) Reset(seed int64) {
	j.entries = j.entries[:0]
	j.summary = newRunSummary(seed)
}

// Record consumes the result of one step.
func (j *Journal) Record(tick int64, res shmup.StepResult) {
	s := &j.summary
	s.Ticks = tick
	s.Score = res.State.Score

	for _, ev := range res.Events {
		if ev.Elapsed > s.ElapsedMs {
			s.ElapsedMs = ev.Elapsed
		}
		j.tally(ev)
		if !j.verbose && (ev.Type == shmup.EventSpawn || ev.Type == shmup.EventShot) {
			continue
		}
		j.entries = append(j.entries, Entry{Tick: tick, Event: ev})
		j.log(ev)
	}
}

// Finish stamps the final status of the run. Runs still in progress are
// reported as timed out.
func (j *Journal) Finish(tick, elapsedMs int64, state core.GameState) RunSummary {
	s := &j.summary
	s.Ticks = tick
	s.ElapsedMs = elapsedMs
	s.Score = state.Score
	if s.Outcome == OutcomeRunning {
		s.Outcome = OutcomeTimeout
	}
	return j.Summary()
}

func (j *Journal) tally(ev shmup.Event) {
	s := &j.summary
	switch ev.Type {
	case shmup.EventLevelUp:
		if ev.Level > s.MaxLevel {
			s.MaxLevel = ev.Level
		}
	case shmup.EventShot:
		if ev.Kind == shmup.KindPlayerBullet {
			s.Shots++
		}
	case shmup.EventDestroyed:
		s.Kills[ev.Kind]++
	case shmup.EventPlayerHit:
		s.Hits++
		s.DamageTaken += ev.Damage
	case shmup.EventOrbDetonated:
		s.Detonations++
	case shmup.EventBossSpawned:
		s.BossSpawned = true
	case shmup.EventGameOver:
		s.Outcome = OutcomeGameOver
	case shmup.EventVictory:
		s.Outcome = OutcomeVictory
	case shmup.EventRestart:
		s.Restarts++
		s.Outcome = OutcomeRunning
	}
}

func (j *Journal) log(ev shmup.Event) {
	if j.logger == nil {
		return
	}
	l := j.logger.With("t", ev.Elapsed)
	switch ev.Type {
	case shmup.EventLevelUp:
		l.Info("level up", "level", ev.Level)
	case shmup.EventDestroyed:
		l.Debug("destroyed", "kind", ev.Kind, "points", ev.Points)
	case shmup.EventPlayerHit:
		l.Debug("player hit", "damage", ev.Damage, "hp", ev.HP)
	case shmup.EventOrbDetonated:
		l.Debug("orb detonated")
	case shmup.EventBossSpawned:
		l.Info("final boss appeared")
	case shmup.EventGameOver:
		l.Info("game over", "score", ev.Score)
	case shmup.EventVictory:
		l.Info("victory", "score", ev.Score)
	case shmup.EventPaused, shmup.EventResumed, shmup.EventRestart:
		l.Debug(ev.Type.String())
	default:
		l.Debug(ev.Type.String(), "kind", ev.Kind)
	}
}

// Entries returns all recorded entries.
func (j *Journal) Entries() []Entry {
	return j.entries
}

// Filter returns the entries of the given event type.
func (j *Journal) Filter(typ shmup.EventType) []Entry {
	var out []Entry
	for _, e := range j.entries {
		if e.Event.Type == typ {
			out = append(out, e)
		}
	}
	return out
}

// Count returns how many entries have the given event type.
func (j *Journal) Count(typ shmup.EventType) int {
	return len(j.Filter(typ))
}

// Summary returns a copy of the aggregated run statistics.
func (j *Journal) Summary() RunSummary {
	s := j.summary
	s.Kills = make(map[shmup.Kind]int, len(j.summary.Kills))
	for k, v := range j.summary.Kills {
		s.Kills[k] = v
	}
	return s
}

// Format returns the full journal as text, one entry per line.
func (j *Journal) Format() string {
	var sb strings.Builder
	for _, e := range j.entries {
		sb.WriteString(e.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}
