// Package buffer owns the document: content, selection, modified state,
// file identity and edit history. Every mutation funnels through one apply
// path so history and change notifications stay consistent.
//
// Buffer operations are synchronous and single-goroutine by contract.
// Change handlers must not re-enter mutating operations.
package buffer

import (
	"github.com/quillmd/quill/internal/event"
	"github.com/quillmd/quill/internal/format"
	"github.com/quillmd/quill/internal/history"
	"github.com/quillmd/quill/internal/logger"
	"github.com/quillmd/quill/internal/storage"
	"github.com/quillmd/quill/internal/types"
	"github.com/quillmd/quill/internal/utils"
)

// Buffer is the single source of truth for document state.
type Buffer struct {
	content      string
	sel          types.Selection
	filePath     string
	savedContent string // content at the last successful save or load
	history      *history.Store
	events       *event.Manager
}

// New creates an empty buffer. The event manager may be nil; notifications
// are then skipped. historyLimit <= 0 selects the default capacity.
func New(events *event.Manager, historyLimit int) *Buffer {
	return &Buffer{
		history: history.NewStore(historyLimit),
		events:  events,
	}
}

// Content returns the current document text.
func (b *Buffer) Content() string {
	return b.content
}

// Len returns the document length in runes.
func (b *Buffer) Len() int {
	return utils.RuneLen(b.content)
}

// CurrentFile returns the identity of the open file, "" when unnamed.
func (b *Buffer) CurrentFile() string {
	return b.filePath
}

// IsModified reports whether content differs from the last saved state.
func (b *Buffer) IsModified() bool {
	return b.content != b.savedContent
}

// Selection returns the current selection.
func (b *Buffer) Selection() types.Selection {
	return b.sel
}

// SetSelection moves the selection, clamping it into the content bounds.
func (b *Buffer) SetSelection(sel types.Selection) {
	b.sel = sel.Clamp(b.Len())
	b.dispatch(event.TypeSelectionMoved, event.SelectionMovedData{Selection: b.sel})
}

// SelectedText returns the substring covered by the selection, "" at a caret.
func (b *Buffer) SelectedText() string {
	return utils.RuneSlice(b.content, b.sel.Start, b.sel.End)
}

// InsertText inserts text at the selection, replacing any selected range.
// The selection collapses to a caret after the inserted text.
func (b *Buffer) InsertText(text string) {
	after := b.sel.Start + utils.RuneLen(text)
	b.apply(format.Edit{
		Start: b.sel.Start,
		End:   b.sel.End,
		Text:  text,
		Sel:   types.Caret(after),
	})
}

// ReplaceSelection inserts text like InsertText but leaves the new text
// selected, so a format toggle shows the user the span it produced.
func (b *Buffer) ReplaceSelection(text string) {
	b.apply(format.Edit{
		Start: b.sel.Start,
		End:   b.sel.End,
		Text:  text,
		Sel:   types.Selection{Start: b.sel.Start, End: b.sel.Start + utils.RuneLen(text)},
	})
}

// DeleteBackward removes the selection, or the rune before the caret.
func (b *Buffer) DeleteBackward() {
	if b.sel.IsCaret() {
		if b.sel.Start == 0 {
			return
		}
		b.apply(format.Edit{Start: b.sel.Start - 1, End: b.sel.Start, Sel: types.Caret(b.sel.Start - 1)})
		return
	}
	b.apply(format.Edit{Start: b.sel.Start, End: b.sel.End, Sel: types.Caret(b.sel.Start)})
}

// DeleteForward removes the selection, or the rune after the caret.
func (b *Buffer) DeleteForward() {
	if b.sel.IsCaret() {
		if b.sel.Start >= b.Len() {
			return
		}
		b.apply(format.Edit{Start: b.sel.Start, End: b.sel.Start + 1, Sel: types.Caret(b.sel.Start)})
		return
	}
	b.apply(format.Edit{Start: b.sel.Start, End: b.sel.End, Sel: types.Caret(b.sel.Start)})
}

// Tab applies smart indentation; always handled by the formatting engine.
func (b *Buffer) Tab() {
	if e, ok := format.Tab(b.content, b.sel); ok {
		b.apply(e)
	}
}

// Enter applies list continuation or indent preservation, falling through
// to a plain newline when the formatting engine declines.
func (b *Buffer) Enter() {
	if e, ok := format.Enter(b.content, b.sel); ok {
		b.apply(e)
		return
	}
	b.InsertText("\n")
}

// ToggleBold toggles the bold marker around the selection.
func (b *Buffer) ToggleBold() {
	b.apply(format.ToggleBold(b.content, b.sel))
}

// ToggleItalic toggles the italic marker around the selection.
func (b *Buffer) ToggleItalic() {
	b.apply(format.ToggleItalic(b.content, b.sel))
}

// InsertHeading inserts or wraps a heading of the given level.
func (b *Buffer) InsertHeading(level int) {
	b.apply(format.Heading(b.content, b.sel, level))
}

// InsertLink inserts a link template around the selection.
func (b *Buffer) InsertLink() {
	b.apply(format.Link(b.content, b.sel))
}

// InsertImage inserts an image template around the selection.
func (b *Buffer) InsertImage() {
	b.apply(format.Image(b.content, b.sel))
}

// InsertTable inserts a table skeleton at the selection.
func (b *Buffer) InsertTable() {
	b.apply(format.Table(b.content, b.sel))
}

// InsertMath wraps the selection in inline math delimiters.
func (b *Buffer) InsertMath() {
	b.apply(format.Math(b.content, b.sel))
}

// InsertCodeBlock wraps the selection in a fenced code block.
func (b *Buffer) InsertCodeBlock() {
	b.apply(format.CodeBlock(b.content, b.sel))
}

// Undo steps back one history snapshot. A no-op at the oldest state.
func (b *Buffer) Undo() bool {
	snap, ok := b.history.Undo()
	if !ok {
		return false
	}
	b.materialize(snap)
	return true
}

// Redo steps forward one history snapshot. A no-op at the newest state.
func (b *Buffer) Redo() bool {
	snap, ok := b.history.Redo()
	if !ok {
		return false
	}
	b.materialize(snap)
	return true
}

// NewFile resets the buffer to an empty, unnamed, unmodified document.
// No baseline snapshot is recorded.
func (b *Buffer) NewFile() {
	b.content = ""
	b.sel = types.Caret(0)
	b.filePath = ""
	b.savedContent = ""
	b.history.Clear()
	b.notifyChanged()
}

// OpenFile replaces the buffer with the given file. History is cleared and
// the loaded state becomes the single baseline snapshot, so it is the
// first undo stop for later edits.
func (b *Buffer) OpenFile(path, content string) {
	b.content = content
	b.sel = types.Caret(0)
	b.filePath = path
	b.savedContent = content
	b.history.Clear()
	b.history.Record(b.content, b.sel)
	b.dispatch(event.TypeBufferLoaded, event.BufferLoadedData{FilePath: path})
	b.notifyChanged()
	logger.Infof("Buffer: opened '%s' (%d runes)", path, b.Len())
}

// SetContent is OpenFile without a file identity; used for initial content.
func (b *Buffer) SetContent(content string) {
	b.OpenFile("", content)
}

// Save persists the buffer through the collaborator using the current file
// identity. On success the modified flag clears and the resolved path is
// adopted; on failure nothing changes and the error surfaces to the caller.
func (b *Buffer) Save(saver storage.Saver) error {
	return b.SaveAs(saver, b.filePath)
}

// SaveAs persists the buffer to an explicit path.
func (b *Buffer) SaveAs(saver storage.Saver, path string) error {
	resolved, err := saver.Save(path, b.content)
	if err != nil {
		return err
	}
	b.filePath = resolved
	b.savedContent = b.content
	b.dispatch(event.TypeBufferSaved, event.BufferSavedData{FilePath: resolved})
	b.notifyChanged()
	logger.Infof("Buffer: saved '%s'", resolved)
	return nil
}

// apply materializes an edit instruction: splice the content, adopt the
// new selection, snapshot the resulting state and notify collaborators.
func (b *Buffer) apply(e format.Edit) {
	b.content = utils.Splice(b.content, e.Start, e.End, e.Text)
	b.sel = e.Sel.Clamp(b.Len())
	b.history.Record(b.content, b.sel)
	b.notifyChanged()
}

// materialize restores a snapshot without recording history.
func (b *Buffer) materialize(snap history.Snapshot) {
	b.content = snap.Content
	b.sel = snap.Selection.Clamp(b.Len())
	b.notifyChanged()
}

func (b *Buffer) notifyChanged() {
	b.dispatch(event.TypeBufferChanged, event.BufferChangedData{
		Content:    b.content,
		IsModified: b.IsModified(),
		FilePath:   b.filePath,
	})
}

func (b *Buffer) dispatch(t event.Type, data interface{}) {
	if b.events != nil {
		b.events.Dispatch(t, data)
	}
}
