package clipboard

import (
	"testing"

	"github.com/quillmd/quill/internal/buffer"
	"github.com/quillmd/quill/internal/types"
)

func newTestBuffer(t *testing.T, content string) *buffer.Buffer {
	t.Helper()
	buf := buffer.New(nil, 0)
	buf.SetContent(content)
	return buf
}

func TestCopyRequiresSelection(t *testing.T) {
	buf := newTestBuffer(t, "hello world")
	m := NewManager(buf, false)

	ok, err := m.Copy()
	if err != nil {
		t.Fatalf("Copy() error = %v", err)
	}
	if ok {
		t.Errorf("Copy() with caret = true, want false")
	}

	buf.SetSelection(types.Selection{Start: 0, End: 5})
	ok, err = m.Copy()
	if err != nil {
		t.Fatalf("Copy() error = %v", err)
	}
	if !ok {
		t.Fatalf("Copy() with selection = false, want true")
	}
	if m.register != "hello" {
		t.Errorf("register = %q, want %q", m.register, "hello")
	}
	if buf.Content() != "hello world" {
		t.Errorf("Copy() modified buffer: %q", buf.Content())
	}
}

func TestCutRemovesSelection(t *testing.T) {
	buf := newTestBuffer(t, "hello world")
	m := NewManager(buf, false)

	buf.SetSelection(types.Selection{Start: 5, End: 11})
	ok, err := m.Cut()
	if err != nil {
		t.Fatalf("Cut() error = %v", err)
	}
	if !ok {
		t.Fatalf("Cut() = false, want true")
	}
	if m.register != " world" {
		t.Errorf("register = %q, want %q", m.register, " world")
	}
	if buf.Content() != "hello" {
		t.Errorf("content after cut = %q, want %q", buf.Content(), "hello")
	}
}

func TestPasteReplacesSelection(t *testing.T) {
	buf := newTestBuffer(t, "ab")
	m := NewManager(buf, false)
	m.register = "XY"

	buf.SetSelection(types.Selection{Start: 1, End: 2})
	ok, err := m.Paste()
	if err != nil {
		t.Fatalf("Paste() error = %v", err)
	}
	if !ok {
		t.Fatalf("Paste() = false, want true")
	}
	if buf.Content() != "aXY" {
		t.Errorf("content after paste = %q, want %q", buf.Content(), "aXY")
	}
}

func TestPasteEmptyRegister(t *testing.T) {
	buf := newTestBuffer(t, "ab")
	m := NewManager(buf, false)

	ok, err := m.Paste()
	if err != nil {
		t.Fatalf("Paste() error = %v", err)
	}
	if ok {
		t.Errorf("Paste() with empty register = true, want false")
	}
	if buf.Content() != "ab" {
		t.Errorf("content = %q, want unchanged %q", buf.Content(), "ab")
	}
}

func TestCopyPasteRoundTrip(t *testing.T) {
	buf := newTestBuffer(t, "one two")
	m := NewManager(buf, false)

	buf.SetSelection(types.Selection{Start: 0, End: 3})
	if _, err := m.Copy(); err != nil {
		t.Fatalf("Copy() error = %v", err)
	}

	buf.SetSelection(types.Caret(7))
	if _, err := m.Paste(); err != nil {
		t.Fatalf("Paste() error = %v", err)
	}
	if buf.Content() != "one twoone" {
		t.Errorf("content = %q, want %q", buf.Content(), "one twoone")
	}
}
