// internal/app/actions.go
package app

import (
	"github.com/quillmd/quill/internal/input"
	"github.com/quillmd/quill/internal/locate"
	"github.com/quillmd/quill/internal/logger"
	"github.com/quillmd/quill/internal/types"
)

// handleAction executes a decoded editor action. Returns true when the
// screen needs redrawing.
func (a *App) handleAction(ev input.ActionEvent) bool {
	if ev.Action != input.ActionQuit {
		a.pendingQuit = false
	}

	switch ev.Action {
	case input.ActionUnknown:
		return false

	case input.ActionQuit:
		if a.buf.IsModified() && !a.pendingQuit {
			a.pendingQuit = true
			a.statusBar.SetTemporaryMessage("Unsaved changes - press Ctrl+Q again to quit")
			return true
		}
		close(a.quit)
		return false

	case input.ActionForceQuit:
		close(a.quit)
		return false

	case input.ActionSave:
		a.saveBuffer()

	case input.ActionNewFile:
		a.buf.NewFile()

	case input.ActionMoveUp:
		a.moveVertical(-1, false)
	case input.ActionMoveDown:
		a.moveVertical(1, false)
	case input.ActionMoveLeft:
		a.moveHorizontal(-1, false)
	case input.ActionMoveRight:
		a.moveHorizontal(1, false)
	case input.ActionMovePageUp:
		a.moveVertical(-a.pageSize(), false)
	case input.ActionMovePageDown:
		a.moveVertical(a.pageSize(), false)
	case input.ActionMoveHome:
		a.moveTo(locate.LineStart(a.buf.Content(), a.caret()), false)
	case input.ActionMoveEnd:
		a.moveTo(locate.LineEnd(a.buf.Content(), a.caret()), false)

	case input.ActionSelectUp:
		a.moveVertical(-1, true)
	case input.ActionSelectDown:
		a.moveVertical(1, true)
	case input.ActionSelectLeft:
		a.moveHorizontal(-1, true)
	case input.ActionSelectRight:
		a.moveHorizontal(1, true)
	case input.ActionSelectHome:
		a.moveTo(locate.LineStart(a.buf.Content(), a.caret()), true)
	case input.ActionSelectEnd:
		a.moveTo(locate.LineEnd(a.buf.Content(), a.caret()), true)
	case input.ActionSelectAll:
		a.buf.SetSelection(types.Selection{Start: 0, End: a.buf.Len()})

	case input.ActionInsertRune:
		a.buf.InsertText(string(ev.Rune))
	case input.ActionInsertNewLine:
		a.buf.Enter()
	case input.ActionInsertTab:
		a.buf.Tab()
	case input.ActionDeleteCharBackward:
		a.buf.DeleteBackward()
	case input.ActionDeleteCharForward:
		a.buf.DeleteForward()

	case input.ActionUndo:
		if !a.buf.Undo() {
			a.statusBar.SetTemporaryMessage("Nothing to undo")
		}
	case input.ActionRedo:
		if !a.buf.Redo() {
			a.statusBar.SetTemporaryMessage("Nothing to redo")
		}

	case input.ActionToggleBold:
		a.buf.ToggleBold()
	case input.ActionToggleItalic:
		a.buf.ToggleItalic()
	case input.ActionInsertLink:
		a.buf.InsertLink()
	case input.ActionInsertHeading:
		a.buf.InsertHeading(ev.Level)
	case input.ActionInsertImage:
		a.buf.InsertImage()
	case input.ActionInsertTable:
		a.buf.InsertTable()
	case input.ActionInsertMath:
		a.buf.InsertMath()
	case input.ActionInsertCodeBlock:
		a.buf.InsertCodeBlock()

	case input.ActionCopy:
		if ok, err := a.clip.Copy(); err != nil {
			a.statusBar.SetTemporaryMessage("Copy failed: %v", err)
		} else if ok {
			a.statusBar.SetTemporaryMessage("Copied")
		}
	case input.ActionCut:
		if _, err := a.clip.Cut(); err != nil {
			a.statusBar.SetTemporaryMessage("Cut failed: %v", err)
		}
	case input.ActionPaste:
		if _, err := a.clip.Paste(); err != nil {
			a.statusBar.SetTemporaryMessage("Paste failed: %v", err)
		}

	case input.ActionFind:
		a.openPrompt(promptFind, "Find: ")
	case input.ActionFindNext:
		if _, ok := a.searcher.FindNext(); !ok {
			a.statusBar.SetTemporaryMessage("No match for '%s'", a.searcher.Term())
		}
	case input.ActionReplace:
		a.openPrompt(promptReplace, "Replace: ")

	default:
		logger.Debugf("App: unhandled action %v", ev.Action)
		return false
	}
	return true
}

// caret returns the active end of the selection as a rune offset.
func (a *App) caret() int {
	return a.buf.Selection().End
}

// moveTo places the caret, extending the selection when extend is set.
func (a *App) moveTo(offset int, extend bool) {
	if extend {
		a.buf.SetSelection(types.Selection{Start: a.buf.Selection().Start, End: offset})
		return
	}
	a.buf.SetSelection(types.Caret(offset))
}

// moveHorizontal shifts the caret by delta runes. Without extension, a
// plain move off an active selection collapses to its edge first.
func (a *App) moveHorizontal(delta int, extend bool) {
	sel := a.buf.Selection()
	if !extend && !sel.IsCaret() {
		if delta < 0 {
			a.moveTo(sel.Start, false)
		} else {
			a.moveTo(sel.End, false)
		}
		return
	}
	a.moveTo(a.caret()+delta, extend)
}

// moveVertical shifts the caret by delta lines, preserving the column
// where the target line allows it.
func (a *App) moveVertical(delta int, extend bool) {
	content := a.buf.Content()
	p := locate.Locate(content, a.caret())
	a.moveTo(locate.Offset(content, p.Line+delta, p.Col), extend)
}

// pageSize returns the viewport height for page movement.
func (a *App) pageSize() int {
	_, height := a.tuiManager.Size()
	size := height - a.cfg.Editor.StatusBarHeight
	if size < 1 {
		size = 1
	}
	return size
}

// saveBuffer saves to the current file, or opens a path prompt for an
// unnamed document.
func (a *App) saveBuffer() {
	if a.buf.CurrentFile() == "" {
		a.openPrompt(promptSaveAs, "Save as: ")
		return
	}
	if err := a.buf.Save(a.saver); err != nil {
		logger.Errorf("App: save failed: %v", err)
		a.statusBar.SetTemporaryMessage("Save failed: %v", err)
	}
}
