package telemetry

import (
	"fmt"
	"sort"
	"strings"

	"github.com/vovakirdan/skyburst/internal/games/shmup"
)

// Outcome is how a run ended.
type Outcome string

const (
	OutcomeRunning  Outcome = "running"
	OutcomeGameOver Outcome = "game_over"
	OutcomeVictory  Outcome = "victory"
	OutcomeTimeout  Outcome = "timeout"
)

// RunSummary aggregates one run.
type RunSummary struct {
	Seed        int64
	Ticks       int64
	ElapsedMs   int64
	Score       int
	MaxLevel    int
	Outcome     Outcome
	Kills       map[shmup.Kind]int
	Shots       int
	Hits        int
	DamageTaken int
	Detonations int
	BossSpawned bool
	Restarts    int
}

func newRunSummary(seed int64) RunSummary {
	return RunSummary{
		Seed:     seed,
		MaxLevel: 1,
		Outcome:  OutcomeRunning,
		Kills:    make(map[shmup.Kind]int),
	}
}

// TotalKills returns the number of destroyed hostiles of any kind.
func (s RunSummary) TotalKills() int {
	n := 0
	for _, v := range s.Kills {
		n += v
	}
	return n
}

// KillsLine formats kills by kind in a stable order, e.g. "formation=12 elite=1".
func (s RunSummary) KillsLine() string {
	if len(s.Kills) == 0 {
		return "none"
	}
	kinds := make([]shmup.Kind, 0, len(s.Kills))
	for k := range s.Kills {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })

	parts := make([]string, 0, len(kinds))
	for _, k := range kinds {
		parts = append(parts, fmt.Sprintf("%s=%d", k, s.Kills[k]))
	}
	return strings.Join(parts, " ")
}

func (s RunSummary) String() string {
	return fmt.Sprintf("seed=%d outcome=%s score=%d level=%d time=%.1fs damage=%d hits=%d kills=[%s]",
		s.Seed, s.Outcome, s.Score, s.MaxLevel, float64(s.ElapsedMs)/1000, s.DamageTaken, s.Hits, s.KillsLine())
}

// Report aggregates a batch of headless runs.
type Report struct {
	Ticks int64
	Runs  []RunSummary
}

// Add appends one run to the report.
func (r *Report) Add(s RunSummary) {
	r.Runs = append(r.Runs, s)
}

// Outcomes counts runs per outcome.
func (r *Report) Outcomes() map[Outcome]int {
	out := make(map[Outcome]int)
	for _, s := range r.Runs {
		out[s.Outcome]++
	}
	return out
}

// AvgScore returns the mean score over all runs.
func (r *Report) AvgScore() float64 {
	if len(r.Runs) == 0 {
		return 0
	}
	sum := 0
	for _, s := range r.Runs {
		sum += s.Score
	}
	return float64(sum) / float64(len(r.Runs))
}

// BestRun returns the highest scoring run.
func (r *Report) BestRun() (RunSummary, bool) {
	if len(r.Runs) == 0 {
		return RunSummary{}, false
	}
	best := r.Runs[0]
	for _, s := range r.Runs[1:] {
		if s.Score > best.Score {
			best = s
		}
	}
	return best, true
}

// Format renders the batch as a plain text report.
func (r *Report) Format() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "=== Headless Run Report ===\n")
	fmt.Fprintf(&sb, "runs=%d ticks=%d\n\n", len(r.Runs), r.Ticks)

	for i, s := range r.Runs {
		fmt.Fprintf(&sb, "run %02d  %s\n", i+1, s)
	}
	if len(r.Runs) == 0 {
		return sb.String()
	}

	outcomes := r.Outcomes()
	damage, level := 0, 0
	kills := make(map[shmup.Kind]int)
	for _, s := range r.Runs {
		damage += s.DamageTaken
		level += s.MaxLevel
		for k, v := range s.Kills {
			kills[k] += v
		}
	}
	n := float64(len(r.Runs))

	sb.WriteString("\n=== Aggregate ===\n")
	fmt.Fprintf(&sb, "outcomes: victory=%d game_over=%d timeout=%d\n",
		outcomes[OutcomeVictory], outcomes[OutcomeGameOver], outcomes[OutcomeTimeout])
	fmt.Fprintf(&sb, "avg_score=%.1f avg_level=%.1f avg_damage=%.1f\n",
		r.AvgScore(), float64(level)/n, float64(damage)/n)
	total := RunSummary{Kills: kills}
	fmt.Fprintf(&sb, "kills: %s\n", total.KillsLine())
	if best, ok := r.BestRun(); ok {
		fmt.Fprintf(&sb, "best: seed=%d score=%d\n", best.Seed, best.Score)
	}
	return sb.String()
}
