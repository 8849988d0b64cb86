// internal/input/action.go
package input

// Action represents a logical editor operation decoded from raw input.
type Action int

// Define the set of possible editor actions.
const (
	// --- Meta ---
	ActionUnknown Action = iota // Default/invalid action
	ActionQuit
	ActionForceQuit // Quit without checking modified status
	ActionSave
	ActionNewFile

	// --- Cursor movement ---
	ActionMoveUp
	ActionMoveDown
	ActionMoveLeft
	ActionMoveRight
	ActionMovePageUp
	ActionMovePageDown
	ActionMoveHome // Beginning of line
	ActionMoveEnd  // End of line

	// --- Selection ---
	ActionSelectUp
	ActionSelectDown
	ActionSelectLeft
	ActionSelectRight
	ActionSelectHome
	ActionSelectEnd
	ActionSelectAll

	// --- Text manipulation ---
	ActionInsertRune    // Requires Rune argument
	ActionInsertNewLine // Enter, routed through the formatting engine
	ActionInsertTab     // Tab, routed through the formatting engine
	ActionDeleteCharBackward
	ActionDeleteCharForward

	// --- History ---
	ActionUndo
	ActionRedo

	// --- Formatting ---
	ActionToggleBold
	ActionToggleItalic
	ActionInsertLink
	ActionInsertHeading // Requires Level argument
	ActionInsertImage
	ActionInsertTable
	ActionInsertMath
	ActionInsertCodeBlock

	// --- Clipboard ---
	ActionCopy
	ActionCut
	ActionPaste

	// --- Search ---
	ActionFind
	ActionFindNext
	ActionReplace
)

// ActionEvent represents a decoded input event resulting in an action.
// It carries payload data needed for the action (like the rune to insert).
type ActionEvent struct {
	Action Action
	Rune   rune // Used for ActionInsertRune
	Level  int  // Used for ActionInsertHeading
}
