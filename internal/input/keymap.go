// internal/input/keymap.go
package input

import (
	"github.com/gdamore/tcell/v2"
)

// Keymap maps specific key events to editor actions.
type Keymap map[tcell.Key]Action

// Processor translates tcell events into ActionEvents.
type Processor struct {
	keymap Keymap
}

// NewProcessor creates a processor with the default keybindings.
func NewProcessor() *Processor {
	p := &Processor{keymap: make(Keymap)}
	p.loadDefaultBindings()
	return p
}

// loadDefaultBindings sets up the initial key mappings.
func (p *Processor) loadDefaultBindings() {
	p.keymap[tcell.KeyUp] = ActionMoveUp
	p.keymap[tcell.KeyDown] = ActionMoveDown
	p.keymap[tcell.KeyLeft] = ActionMoveLeft
	p.keymap[tcell.KeyRight] = ActionMoveRight
	p.keymap[tcell.KeyPgUp] = ActionMovePageUp
	p.keymap[tcell.KeyPgDn] = ActionMovePageDown
	p.keymap[tcell.KeyHome] = ActionMoveHome
	p.keymap[tcell.KeyEnd] = ActionMoveEnd
	p.keymap[tcell.KeyBackspace] = ActionDeleteCharBackward
	p.keymap[tcell.KeyBackspace2] = ActionDeleteCharBackward
	p.keymap[tcell.KeyDelete] = ActionDeleteCharForward
	p.keymap[tcell.KeyEnter] = ActionInsertNewLine
	p.keymap[tcell.KeyTab] = ActionInsertTab

	p.keymap[tcell.KeyCtrlQ] = ActionQuit
	p.keymap[tcell.KeyCtrlS] = ActionSave
	p.keymap[tcell.KeyCtrlN] = ActionNewFile
	p.keymap[tcell.KeyCtrlZ] = ActionUndo
	p.keymap[tcell.KeyCtrlY] = ActionRedo
	p.keymap[tcell.KeyCtrlB] = ActionToggleBold
	p.keymap[tcell.KeyCtrlE] = ActionToggleItalic
	p.keymap[tcell.KeyCtrlK] = ActionInsertLink
	p.keymap[tcell.KeyCtrlC] = ActionCopy
	p.keymap[tcell.KeyCtrlX] = ActionCut
	p.keymap[tcell.KeyCtrlV] = ActionPaste
	p.keymap[tcell.KeyCtrlA] = ActionSelectAll
	p.keymap[tcell.KeyCtrlF] = ActionFind
	p.keymap[tcell.KeyF3] = ActionFindNext
	p.keymap[tcell.KeyCtrlR] = ActionReplace
}

// shiftSelectActions maps arrow/home/end keys to selection-extending
// actions when Shift is held.
var shiftSelectActions = map[tcell.Key]Action{
	tcell.KeyUp:    ActionSelectUp,
	tcell.KeyDown:  ActionSelectDown,
	tcell.KeyLeft:  ActionSelectLeft,
	tcell.KeyRight: ActionSelectRight,
	tcell.KeyHome:  ActionSelectHome,
	tcell.KeyEnd:   ActionSelectEnd,
}

// altRuneActions maps Alt+rune chords to markdown template inserts.
var altRuneActions = map[rune]Action{
	'i': ActionInsertImage,
	't': ActionInsertTable,
	'm': ActionInsertMath,
	'c': ActionInsertCodeBlock,
}

// ProcessEvent takes a tcell key event and returns the corresponding
// ActionEvent. Plain runes default to an insertion request.
func (p *Processor) ProcessEvent(ev *tcell.EventKey) ActionEvent {
	key := ev.Key()
	mod := ev.Modifiers()

	// Shift+movement extends the selection.
	if mod&tcell.ModShift != 0 {
		if action, ok := shiftSelectActions[key]; ok {
			return ActionEvent{Action: action}
		}
	}

	// Alt chords insert markdown templates; Alt+1..6 picks a heading level.
	if key == tcell.KeyRune && mod&tcell.ModAlt != 0 {
		r := ev.Rune()
		if r >= '1' && r <= '6' {
			return ActionEvent{Action: ActionInsertHeading, Level: int(r - '0')}
		}
		if action, ok := altRuneActions[r]; ok {
			return ActionEvent{Action: action}
		}
		return ActionEvent{Action: ActionUnknown}
	}

	// Control keys carry their modifier in the key code itself; ignore
	// the redundant ModCtrl bit when looking them up.
	if action, ok := p.keymap[key]; ok {
		return ActionEvent{Action: action}
	}

	if key == tcell.KeyRune && mod&^tcell.ModShift == tcell.ModNone {
		return ActionEvent{Action: ActionInsertRune, Rune: ev.Rune()}
	}

	return ActionEvent{Action: ActionUnknown}
}
