// Package search provides find, find-next and replace over the buffer.
// Patterns are regular expressions; match positions are rune offsets so
// they plug straight into the buffer's selection model.
package search

import (
	"fmt"
	"regexp"
	"sync"
	"unicode/utf8"

	"github.com/quillmd/quill/internal/buffer"
	"github.com/quillmd/quill/internal/logger"
	"github.com/quillmd/quill/internal/types"
)

// Manager holds the active search state.
type Manager struct {
	buf   *buffer.Buffer
	mutex sync.RWMutex
	term  string
	re    *regexp.Regexp
}

// NewManager creates a search manager bound to a buffer.
func NewManager(buf *buffer.Buffer) *Manager {
	return &Manager{buf: buf}
}

// SetTerm compiles and stores the search pattern. An empty term clears
// the active search.
func (m *Manager) SetTerm(term string) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if term == "" {
		m.term = ""
		m.re = nil
		return nil
	}

	re, err := regexp.Compile(term)
	if err != nil {
		m.term = term
		m.re = nil
		logger.Warnf("SearchManager: invalid pattern '%s': %v", term, err)
		return fmt.Errorf("invalid search pattern: %w", err)
	}

	m.term = term
	m.re = re
	return nil
}

// Term returns the active search term.
func (m *Manager) Term() string {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	return m.term
}

// HasTerm reports whether a valid pattern is active.
func (m *Manager) HasTerm() bool {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	return m.re != nil
}

// FindNext selects the next match after the current selection, wrapping
// to the start of the document when the tail holds no match.
func (m *Manager) FindNext() (types.Selection, bool) {
	m.mutex.RLock()
	re := m.re
	m.mutex.RUnlock()
	if re == nil {
		return types.Selection{}, false
	}

	content := m.buf.Content()
	from := m.buf.Selection().End
	fromByte := runeToByte(content, from)

	loc := re.FindStringIndex(content[fromByte:])
	if loc != nil {
		sel := byteRangeToSelection(content, fromByte+loc[0], fromByte+loc[1])
		m.buf.SetSelection(sel)
		return sel, true
	}

	// Wrap around.
	loc = re.FindStringIndex(content)
	if loc == nil {
		return types.Selection{}, false
	}
	sel := byteRangeToSelection(content, loc[0], loc[1])
	m.buf.SetSelection(sel)
	logger.Debugf("SearchManager: wrapped to start for '%s'", m.Term())
	return sel, true
}

// Matches returns the selections of every match in the document.
func (m *Manager) Matches() []types.Selection {
	m.mutex.RLock()
	re := m.re
	m.mutex.RUnlock()
	if re == nil {
		return nil
	}

	content := m.buf.Content()
	locs := re.FindAllStringIndex(content, -1)
	sels := make([]types.Selection, 0, len(locs))
	for _, loc := range locs {
		sels = append(sels, byteRangeToSelection(content, loc[0], loc[1]))
	}
	return sels
}

// ReplaceNext replaces the current match when the selection covers one,
// otherwise it selects the next match so a second invocation replaces it.
// Returns true when a replacement happened.
func (m *Manager) ReplaceNext(replacement string) bool {
	m.mutex.RLock()
	re := m.re
	m.mutex.RUnlock()
	if re == nil {
		return false
	}

	selected := m.buf.SelectedText()
	if selected != "" {
		if loc := re.FindStringIndex(selected); loc != nil && loc[0] == 0 && loc[1] == len(selected) {
			m.buf.ReplaceSelection(replacement)
			m.FindNext()
			return true
		}
	}
	m.FindNext()
	return false
}

// ReplaceAll replaces every match in one undoable step and returns the
// number of replacements.
func (m *Manager) ReplaceAll(replacement string) int {
	m.mutex.RLock()
	re := m.re
	m.mutex.RUnlock()
	if re == nil {
		return 0
	}

	content := m.buf.Content()
	count := len(re.FindAllStringIndex(content, -1))
	if count == 0 {
		return 0
	}

	replaced := re.ReplaceAllString(content, replacement)
	m.buf.SetSelection(types.Selection{Start: 0, End: m.buf.Len()})
	m.buf.ReplaceSelection(replaced)
	m.buf.SetSelection(types.Caret(0))
	logger.Debugf("SearchManager: replaced %d occurrences", count)
	return count
}

// runeToByte converts a rune offset into a byte offset.
func runeToByte(s string, runeIndex int) int {
	if runeIndex <= 0 {
		return 0
	}
	count := 0
	for i := range s {
		if count == runeIndex {
			return i
		}
		count++
	}
	return len(s)
}

// byteRangeToSelection converts a byte match range into a rune selection.
func byteRangeToSelection(s string, startByte, endByte int) types.Selection {
	start := utf8.RuneCountInString(s[:startByte])
	return types.Selection{
		Start: start,
		End:   start + utf8.RuneCountInString(s[startByte:endByte]),
	}
}
