package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/skyburst/internal/storage"
)

type fakeRuns struct {
	top     []storage.RunRecord
	batches []storage.BatchRecord
	byBatch map[int64][]storage.RunRecord
	err     error
}

func (f fakeRuns) TopRuns(limit int) ([]storage.RunRecord, error) {
	if f.err != nil {
		return nil, f.err
	}
	if len(f.top) > limit {
		return f.top[:limit], nil
	}
	return f.top, nil
}

func (f fakeRuns) BatchRuns(batchID int64) ([]storage.RunRecord, error) {
	return f.byBatch[batchID], f.err
}

func (f fakeRuns) RecentBatches(int) ([]storage.BatchRecord, error) {
	return f.batches, f.err
}

func sampleRuns() fakeRuns {
	a := []storage.RunRecord{
		{BatchID: 2, Seed: 11, Score: 300, MaxLevel: 3, Outcome: "game_over", ElapsedMs: 61000, Kills: "formation=20"},
		{BatchID: 2, Seed: 12, Score: 120, MaxLevel: 2, Outcome: "game_over", ElapsedMs: 35000, Kills: "formation=9"},
	}
	b := []storage.RunRecord{
		{BatchID: 1, Seed: 1, Score: 1500, MaxLevel: 4, Outcome: "victory", ElapsedMs: 95500, Kills: "formation=40 final_boss=1"},
	}
	return fakeRuns{
		top:     []storage.RunRecord{b[0], a[0], a[1]},
		batches: []storage.BatchRecord{{ID: 2, Label: "tuning"}, {ID: 1}},
		byBatch: map[int64][]storage.RunRecord{1: b, 2: a},
	}
}

func updateRuns(t *testing.T, m RunsModel, msg tea.Msg) RunsModel {
	t.Helper()
	next, _ := m.Update(msg)
	rm, ok := next.(RunsModel)
	if !ok {
		t.Fatalf("Update returned %T, want RunsModel", next)
	}
	return rm
}

func TestRunsModelStartsOnTopRuns(t *testing.T) {
	m := NewRunsModel(sampleRuns(), 120, 30)

	if len(m.views) != 3 {
		t.Fatalf("views = %d, want 3", len(m.views))
	}
	rows := m.Rows()
	if len(rows) != 3 {
		t.Fatalf("rows = %d, want 3", len(rows))
	}
	want := []string{"#1", "1", "1500", "4", "victory", "95.5s", "formation=40 final_boss=1"}
	for i, cell := range want {
		if rows[0][i] != cell {
			t.Errorf("row[0][%d] = %q, want %q", i, rows[0][i], cell)
		}
	}
}

func TestRunsModelSwitchesBatches(t *testing.T) {
	m := NewRunsModel(sampleRuns(), 120, 30)

	m = updateRuns(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.views[m.cursor].title != "#2 tuning" {
		t.Errorf("view = %q, want #2 tuning", m.views[m.cursor].title)
	}
	if len(m.Rows()) != 2 {
		t.Errorf("rows = %d, want 2", len(m.Rows()))
	}

	m = updateRuns(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.views[m.cursor].title != "#1" {
		t.Errorf("unlabelled batch title = %q, want #1", m.views[m.cursor].title)
	}

	// Wraps back to the top runs.
	m = updateRuns(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.cursor != 0 {
		t.Errorf("cursor = %d, want 0", m.cursor)
	}

	m = updateRuns(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.cursor != 2 {
		t.Errorf("cursor = %d, want 2 after wrapping backwards", m.cursor)
	}
}

func TestRunsModelViews(t *testing.T) {
	tests := []struct {
		name   string
		source fakeRuns
		width  int
		want   string
	}{
		{"wide layout lists batches", sampleRuns(), 120, "Batches"},
		{"narrow layout shows selector", sampleRuns(), 60, "< Top runs >"},
		{"empty journal", fakeRuns{}, 120, "No runs recorded yet."},
		{"read error", fakeRuns{err: errors.New("disk on fire")}, 120, "disk on fire"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewRunsModel(tt.source, tt.width, 30)
			if view := m.View(); !strings.Contains(view, tt.want) {
				t.Errorf("view missing %q", tt.want)
			}
		})
	}
}

func TestRunsModelQuit(t *testing.T) {
	m := NewRunsModel(sampleRuns(), 120, 30)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEscape})
	m = next.(RunsModel)

	if !m.quitting || cmd == nil {
		t.Error("esc did not quit")
	}
	if m.View() != "" {
		t.Error("view not empty after quit")
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		n    int
		want string
	}{
		{"short", 10, "short"},
		{"exactly", 7, "exactly"},
		{"truncated", 5, "trun."},
	}
	for _, tt := range tests {
		if got := truncate(tt.in, tt.n); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.n, got, tt.want)
		}
	}
}
