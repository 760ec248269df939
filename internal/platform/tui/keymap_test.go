package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/skyburst/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyMapAction(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{"a", runeKey('a'), core.ActionLeft},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{"d", runeKey('d'), core.ActionRight},
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp},
		{"w", runeKey('w'), core.ActionUp},
		{"down arrow", tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown},
		{"s", runeKey('s'), core.ActionDown},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionFire},
		{"p", runeKey('p'), core.ActionPause},
		{"esc", tea.KeyMsg{Type: tea.KeyEscape}, core.ActionPause},
		{"r", runeKey('r'), core.ActionRestart},
		{"q", runeKey('q'), core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"unbound", runeKey('x'), core.ActionNone},
		{"back is not an action", runeKey('b'), core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := keys.Action(tt.msg); got != tt.want {
				t.Errorf("Action(%q) = %v, want %v", tt.msg.String(), got, tt.want)
			}
		})
	}
}

func TestHeldKeysHoldsForConfiguredTicks(t *testing.T) {
	h := NewHeldKeys(3)
	h.Press(core.ActionFire)

	for i := range 3 {
		if !h.Frame().Has(core.ActionFire) {
			t.Fatalf("fire released early at frame %d", i)
		}
	}
	if h.Frame().Has(core.ActionFire) {
		t.Error("fire still held after hold window")
	}
}

func TestHeldKeysRepeatExtendsHold(t *testing.T) {
	h := NewHeldKeys(2)
	h.Press(core.ActionLeft)
	h.Frame()
	h.Press(core.ActionLeft)

	for i := range 2 {
		if !h.Frame().Has(core.ActionLeft) {
			t.Fatalf("left released at frame %d after repeat", i)
		}
	}
}

func TestHeldKeysOneShotActions(t *testing.T) {
	for _, a := range []core.Action{core.ActionPause, core.ActionRestart} {
		t.Run(a.String(), func(t *testing.T) {
			h := NewHeldKeys(8)
			h.Press(a)
			if !h.Frame().Has(a) {
				t.Fatal("action missing from first frame")
			}
			if h.Frame().Has(a) {
				t.Error("action held for more than one frame")
			}
		})
	}
}

func TestHeldKeysOppositeCancels(t *testing.T) {
	h := NewHeldKeys(8)
	h.Press(core.ActionLeft)
	h.Press(core.ActionUp)
	h.Press(core.ActionRight)

	f := h.Frame()
	if f.Has(core.ActionLeft) {
		t.Error("left should be cancelled by right")
	}
	if !f.Has(core.ActionRight) || !f.Has(core.ActionUp) {
		t.Errorf("frame = %v, want right and up held", f.Actions)
	}
}

func TestHeldKeysIgnoresQuitAndRelease(t *testing.T) {
	h := NewHeldKeys(0)
	if h.hold != defaultHoldTicks {
		t.Errorf("hold = %d, want default %d", h.hold, defaultHoldTicks)
	}

	h.Press(core.ActionQuit)
	h.Press(core.ActionNone)
	if f := h.Frame(); len(f.Actions) != 0 {
		t.Errorf("frame = %v, want empty", f.Actions)
	}

	h.Press(core.ActionDown)
	h.Press(core.ActionFire)
	h.Release()
	if f := h.Frame(); len(f.Actions) != 0 {
		t.Errorf("frame after release = %v, want empty", f.Actions)
	}
}

func TestKeyMapHelp(t *testing.T) {
	keys := DefaultKeyMap()
	if len(keys.ShortHelp()) == 0 {
		t.Error("short help is empty")
	}
	total := 0
	for _, col := range keys.FullHelp() {
		total += len(col)
	}
	if total != 11 {
		t.Errorf("full help lists %d bindings, want 11", total)
	}
}
