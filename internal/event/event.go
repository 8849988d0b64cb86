// internal/event/event.go
package event

import "github.com/quillmd/quill/internal/types"

// Type identifies the kind of event.
type Type int

// Define specific event types.
const (
	TypeUnknown Type = iota

	// Core buffer events
	TypeBufferChanged // content mutated (insert/delete/undo/redo/load)
	TypeBufferLoaded  // a file was opened into the buffer
	TypeBufferSaved   // buffer content was persisted
	TypeSelectionMoved

	// Application lifecycle
	TypeAppReady
	TypeAppQuit
)

// Event is the structure passed through the event bus.
type Event struct {
	Type Type
	Data interface{}
}

// BufferChangedData is the change notification payload: the new content,
// the dirty state and the identity of the current file ("" when unnamed).
type BufferChangedData struct {
	Content    string
	IsModified bool
	FilePath   string
}

// BufferLoadedData contains info about the loaded buffer.
type BufferLoadedData struct {
	FilePath string
}

// BufferSavedData contains info about the saved buffer.
type BufferSavedData struct {
	FilePath string
}

// SelectionMovedData contains the new selection.
type SelectionMovedData struct {
	Selection types.Selection
}

// AppReadyData is dispatched once wiring is complete.
type AppReadyData struct{}

// AppQuitData is dispatched just before termination.
type AppQuitData struct{}
