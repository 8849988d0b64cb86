// internal/app/prompt.go
package app

import (
	"github.com/gdamore/tcell/v2"
	"github.com/quillmd/quill/internal/logger"
)

// promptKind selects what happens when a status bar prompt is accepted.
type promptKind int

const (
	promptSaveAs promptKind = iota
	promptFind
	promptReplace     // first stage: collect the pattern
	promptReplaceWith // second stage: collect the replacement
)

type promptState struct {
	kind    promptKind
	label   string
	input   string
	pattern string // carried from promptReplace into promptReplaceWith
}

// openPrompt switches key handling to the status bar prompt.
func (a *App) openPrompt(kind promptKind, label string) {
	a.prompt = &promptState{kind: kind, label: label}
	a.statusBar.SetPrompt(label, "")
}

func (a *App) closePrompt() {
	a.prompt = nil
	a.statusBar.ClearPrompt()
}

// handlePromptKey edits the prompt line. Enter accepts, Escape cancels.
func (a *App) handlePromptKey(ev *tcell.EventKey) bool {
	p := a.prompt
	switch ev.Key() {
	case tcell.KeyEscape:
		a.closePrompt()
	case tcell.KeyEnter:
		a.acceptPrompt()
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if len(p.input) > 0 {
			runes := []rune(p.input)
			p.input = string(runes[:len(runes)-1])
		}
		a.statusBar.SetPrompt(p.label, p.input)
	case tcell.KeyRune:
		p.input += string(ev.Rune())
		a.statusBar.SetPrompt(p.label, p.input)
	default:
		return false
	}
	return true
}

// acceptPrompt runs the action behind the prompt.
func (a *App) acceptPrompt() {
	p := a.prompt
	a.closePrompt()

	switch p.kind {
	case promptSaveAs:
		if p.input == "" {
			a.statusBar.SetTemporaryMessage("Save cancelled: no path given")
			return
		}
		if err := a.buf.SaveAs(a.saver, p.input); err != nil {
			logger.Errorf("App: save as '%s' failed: %v", p.input, err)
			a.statusBar.SetTemporaryMessage("Save failed: %v", err)
		}

	case promptFind:
		if err := a.searcher.SetTerm(p.input); err != nil {
			a.statusBar.SetTemporaryMessage("%v", err)
			return
		}
		if p.input == "" {
			return
		}
		if _, ok := a.searcher.FindNext(); !ok {
			a.statusBar.SetTemporaryMessage("No match for '%s'", p.input)
		}

	case promptReplace:
		if err := a.searcher.SetTerm(p.input); err != nil {
			a.statusBar.SetTemporaryMessage("%v", err)
			return
		}
		if p.input == "" {
			return
		}
		a.prompt = &promptState{kind: promptReplaceWith, label: "With: ", pattern: p.input}
		a.statusBar.SetPrompt(a.prompt.label, "")

	case promptReplaceWith:
		n := a.searcher.ReplaceAll(p.input)
		a.statusBar.SetTemporaryMessage("Replaced %d occurrence(s)", n)
	}
}
