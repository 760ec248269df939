package telemetry

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/skyburst/internal/config"
	"github.com/vovakirdan/skyburst/internal/games/shmup"
)

// Headless drives a session with the autopilot until it ends or the tick
// budget runs out.
type Headless struct {
	Config  config.ShmupConfig
	Ticks   int64
	Logger  *log.Logger
	Verbose bool
}

// Run plays one run with the given seed and returns its summary together
// with the full journal.
func (h Headless) Run(seed int64) (RunSummary, *Journal) {
	session := shmup.New(h.Config, seed)
	pilot := shmup.NewAutopilot()

	var logger *log.Logger
	if h.Logger != nil {
		logger = h.Logger.With("seed", seed)
	}
	journal := NewJournal(logger, h.Verbose)
	journal.Reset(seed)

	var tick int64
	for tick < h.Ticks && !session.Phase().Terminal() {
		snap := session.Snapshot()
		res := session.Step(pilot.Next(&snap))
		tick++
		journal.Record(tick, res)
	}
	return journal.Finish(tick, session.Elapsed(), session.State()), journal
}

// Batch plays runs consecutive seeds starting at seedBase.
func (h Headless) Batch(runs int, seedBase int64) *Report {
	report := &Report{Ticks: h.Ticks}
	for i := range runs {
		summary, _ := h.Run(seedBase + int64(i))
		report.Add(summary)
	}
	return report
}
