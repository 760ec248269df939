// Package tui runs the simulation in a terminal through Bubble Tea.
// It owns the frame clock, key translation and styled output; the
// simulation itself never sees a terminal.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// tickGen numbers tick loops so a model ignores ticks scheduled by a
// previous game in the same program.
var tickGen atomic.Uint64

// TickMsg is sent to trigger a simulation tick.
type TickMsg struct {
	Gen uint64
	At  time.Time
}

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int, gen uint64) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Gen: gen, At: t}
	})
}
