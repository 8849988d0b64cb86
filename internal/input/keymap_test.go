package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestProcessEventBindings(t *testing.T) {
	p := NewProcessor()

	tests := []struct {
		name string
		ev   *tcell.EventKey
		want Action
	}{
		{"enter", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), ActionInsertNewLine},
		{"tab", tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone), ActionInsertTab},
		{"backspace", tcell.NewEventKey(tcell.KeyBackspace2, 0, tcell.ModNone), ActionDeleteCharBackward},
		{"save", tcell.NewEventKey(tcell.KeyCtrlS, 0, tcell.ModCtrl), ActionSave},
		{"undo", tcell.NewEventKey(tcell.KeyCtrlZ, 0, tcell.ModCtrl), ActionUndo},
		{"redo", tcell.NewEventKey(tcell.KeyCtrlY, 0, tcell.ModCtrl), ActionRedo},
		{"bold", tcell.NewEventKey(tcell.KeyCtrlB, 0, tcell.ModCtrl), ActionToggleBold},
		{"find", tcell.NewEventKey(tcell.KeyCtrlF, 0, tcell.ModCtrl), ActionFind},
		{"find next", tcell.NewEventKey(tcell.KeyF3, 0, tcell.ModNone), ActionFindNext},
		{"arrow", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), ActionMoveLeft},
		{"shift arrow extends", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModShift), ActionSelectLeft},
		{"shift end extends", tcell.NewEventKey(tcell.KeyEnd, 0, tcell.ModShift), ActionSelectEnd},
		{"alt table", tcell.NewEventKey(tcell.KeyRune, 't', tcell.ModAlt), ActionInsertTable},
		{"alt unbound", tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModAlt), ActionUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.ProcessEvent(tt.ev); got.Action != tt.want {
				t.Errorf("ProcessEvent() = %v, want %v", got.Action, tt.want)
			}
		})
	}
}

func TestProcessEventHeadingLevels(t *testing.T) {
	p := NewProcessor()
	for level := 1; level <= 6; level++ {
		ev := tcell.NewEventKey(tcell.KeyRune, rune('0'+level), tcell.ModAlt)
		got := p.ProcessEvent(ev)
		if got.Action != ActionInsertHeading || got.Level != level {
			t.Errorf("Alt+%d = (%v, level %d), want (ActionInsertHeading, %d)", level, got.Action, got.Level, level)
		}
	}
}

func TestProcessEventPlainRune(t *testing.T) {
	p := NewProcessor()

	got := p.ProcessEvent(tcell.NewEventKey(tcell.KeyRune, 'é', tcell.ModNone))
	if got.Action != ActionInsertRune || got.Rune != 'é' {
		t.Errorf("plain rune = (%v, %q), want (ActionInsertRune, 'é')", got.Action, got.Rune)
	}

	// Shifted letters still insert.
	got = p.ProcessEvent(tcell.NewEventKey(tcell.KeyRune, 'A', tcell.ModShift))
	if got.Action != ActionInsertRune || got.Rune != 'A' {
		t.Errorf("shifted rune = (%v, %q), want (ActionInsertRune, 'A')", got.Action, got.Rune)
	}
}
