// internal/clipboard/clipboard.go
package clipboard

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/quillmd/quill/internal/buffer"
	"github.com/quillmd/quill/internal/logger"
)

// Manager handles copy, cut, and paste against an editor buffer.
// When useSystem is set it goes through the OS clipboard; otherwise,
// or when the OS clipboard is unavailable, an internal register is used.
type Manager struct {
	buf       *buffer.Buffer
	useSystem bool
	register  string
}

// NewManager creates a clipboard manager for the given buffer.
func NewManager(buf *buffer.Buffer, useSystem bool) *Manager {
	if useSystem && clipboard.Unsupported {
		logger.Warnf("ClipboardManager: system clipboard unavailable, using internal register")
		useSystem = false
	}
	return &Manager{buf: buf, useSystem: useSystem}
}

// read returns the current clipboard content.
func (m *Manager) read() (string, error) {
	if m.useSystem {
		text, err := clipboard.ReadAll()
		if err != nil {
			return "", fmt.Errorf("system clipboard read failed: %w", err)
		}
		return text, nil
	}
	return m.register, nil
}

// write stores text as the current clipboard content.
func (m *Manager) write(text string) error {
	if m.useSystem {
		if err := clipboard.WriteAll(text); err != nil {
			return fmt.Errorf("system clipboard write failed: %w", err)
		}
		return nil
	}
	m.register = text
	return nil
}

// Copy stores the selected text. Returns false when nothing is selected.
func (m *Manager) Copy() (bool, error) {
	text := m.buf.SelectedText()
	if text == "" {
		return false, nil
	}
	if err := m.write(text); err != nil {
		return false, err
	}
	logger.Debugf("ClipboardManager: copied %d bytes", len(text))
	return true, nil
}

// Cut stores the selected text and removes it from the buffer.
func (m *Manager) Cut() (bool, error) {
	text := m.buf.SelectedText()
	if text == "" {
		return false, nil
	}
	if err := m.write(text); err != nil {
		return false, err
	}
	m.buf.ReplaceSelection("")
	logger.Debugf("ClipboardManager: cut %d bytes", len(text))
	return true, nil
}

// Paste inserts the clipboard content, replacing any active selection.
// Returns false when the clipboard is empty.
func (m *Manager) Paste() (bool, error) {
	text, err := m.read()
	if err != nil {
		return false, err
	}
	if text == "" {
		return false, nil
	}
	m.buf.ReplaceSelection(text)
	logger.Debugf("ClipboardManager: pasted %d bytes", len(text))
	return true, nil
}
