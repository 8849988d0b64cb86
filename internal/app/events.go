// internal/app/events.go
package app

import (
	"context"
	"time"

	"github.com/quillmd/quill/internal/event"
	"github.com/quillmd/quill/internal/highlighter"
	"github.com/quillmd/quill/internal/locate"
	"github.com/quillmd/quill/internal/statusbar"
	"github.com/quillmd/quill/internal/tui"
)

// highlightDelay batches rapid edits before re-running the highlighter.
const highlightDelay = 100 * time.Millisecond

func (a *App) handleBufferChanged(e event.Event) bool {
	data, ok := e.Data.(event.BufferChangedData)
	if !ok {
		return false
	}

	a.statusBar.SetFileInfo(data.FilePath, data.IsModified)
	a.statusBar.SetWordCount(statusbar.CountWords(data.Content))

	content := data.Content
	a.hlDebouncer.Debounce(highlightDelay, func() {
		result := a.hl.Highlight(context.Background(), content)
		a.hlMu.Lock()
		a.highlights = result
		a.hlMu.Unlock()
		a.requestRedraw()
	})
	return false
}

func (a *App) handleSelectionMoved(e event.Event) bool {
	if data, ok := e.Data.(event.SelectionMovedData); ok {
		a.statusBar.SetCursorInfo(locate.Locate(a.buf.Content(), data.Selection.End))
	}
	return false
}

func (a *App) handleBufferSaved(e event.Event) bool {
	if data, ok := e.Data.(event.BufferSavedData); ok {
		a.statusBar.SetTemporaryMessage("Saved %s", data.FilePath)
	}
	return false
}

// overlaySearch merges search match spans over the syntax highlights.
// The cached result is never mutated; touched lines are copied.
func (a *App) overlaySearch(content string) highlighter.Result {
	a.hlMu.Lock()
	base := a.highlights
	a.hlMu.Unlock()

	matches := a.searcher.Matches()
	if len(matches) == 0 {
		return base
	}

	merged := make(highlighter.Result, len(base))
	for line, spans := range base {
		merged[line] = spans
	}

	for _, m := range matches {
		start := locate.Locate(content, m.Start)
		end := locate.Locate(content, m.End)
		line := start.Line - 1
		startCol := start.Col - 1
		endCol := end.Col - 1
		if end.Line != start.Line {
			endCol = startCol + (locate.LineEnd(content, m.Start) - m.Start)
		}
		if endCol <= startCol {
			continue
		}
		spans := make([]highlighter.Span, len(merged[line]))
		copy(spans, merged[line])
		spans = append(spans, highlighter.Span{StartCol: startCol, EndCol: endCol, Style: tui.StyleSearch})
		merged[line] = spans
	}
	return merged
}
