package search

import (
	"testing"

	"github.com/quillmd/quill/internal/buffer"
	"github.com/quillmd/quill/internal/types"
)

func newTestManager(t *testing.T, content string) (*Manager, *buffer.Buffer) {
	t.Helper()
	buf := buffer.New(nil, 0)
	buf.SetContent(content)
	return NewManager(buf), buf
}

func TestSetTermInvalidPattern(t *testing.T) {
	m, _ := newTestManager(t, "")
	if err := m.SetTerm("[unclosed"); err == nil {
		t.Fatalf("SetTerm(%q) error = nil, want error", "[unclosed")
	}
	if m.HasTerm() {
		t.Errorf("HasTerm() after invalid pattern = true, want false")
	}
}

func TestFindNextAdvances(t *testing.T) {
	m, buf := newTestManager(t, "foo bar foo baz foo")
	if err := m.SetTerm("foo"); err != nil {
		t.Fatalf("SetTerm() error = %v", err)
	}

	want := []types.Selection{
		{Start: 0, End: 3},
		{Start: 8, End: 11},
		{Start: 16, End: 19},
	}
	for i, w := range want {
		sel, ok := m.FindNext()
		if !ok {
			t.Fatalf("FindNext() #%d = false, want true", i)
		}
		if sel != w {
			t.Errorf("FindNext() #%d = %+v, want %+v", i, sel, w)
		}
		if buf.Selection() != w {
			t.Errorf("buffer selection #%d = %+v, want %+v", i, buf.Selection(), w)
		}
	}
}

func TestFindNextWrapsAround(t *testing.T) {
	m, buf := newTestManager(t, "alpha beta")
	if err := m.SetTerm("alpha"); err != nil {
		t.Fatalf("SetTerm() error = %v", err)
	}

	buf.SetSelection(types.Caret(8))
	sel, ok := m.FindNext()
	if !ok {
		t.Fatalf("FindNext() = false, want wrap-around match")
	}
	if (sel != types.Selection{Start: 0, End: 5}) {
		t.Errorf("FindNext() = %+v, want {0 5}", sel)
	}
}

func TestFindNextNoMatch(t *testing.T) {
	m, _ := newTestManager(t, "alpha beta")
	if err := m.SetTerm("gamma"); err != nil {
		t.Fatalf("SetTerm() error = %v", err)
	}
	if _, ok := m.FindNext(); ok {
		t.Errorf("FindNext() = true, want false")
	}
}

func TestFindNextMultibyte(t *testing.T) {
	m, _ := newTestManager(t, "héllo wörld wörld")
	if err := m.SetTerm("wörld"); err != nil {
		t.Fatalf("SetTerm() error = %v", err)
	}

	sel, ok := m.FindNext()
	if !ok {
		t.Fatalf("FindNext() = false, want true")
	}
	if (sel != types.Selection{Start: 6, End: 11}) {
		t.Errorf("FindNext() = %+v, want rune offsets {6 11}", sel)
	}
}

func TestMatches(t *testing.T) {
	m, _ := newTestManager(t, "a-a-a")
	if err := m.SetTerm("a"); err != nil {
		t.Fatalf("SetTerm() error = %v", err)
	}
	got := m.Matches()
	if len(got) != 3 {
		t.Fatalf("Matches() count = %d, want 3", len(got))
	}
	if (got[1] != types.Selection{Start: 2, End: 3}) {
		t.Errorf("Matches()[1] = %+v, want {2 3}", got[1])
	}
}

func TestReplaceNext(t *testing.T) {
	m, buf := newTestManager(t, "cat dog cat")
	if err := m.SetTerm("cat"); err != nil {
		t.Fatalf("SetTerm() error = %v", err)
	}

	// First call only selects the match.
	if m.ReplaceNext("bird") {
		t.Errorf("ReplaceNext() before a match is selected = true, want false")
	}
	// Second call replaces it and advances.
	if !m.ReplaceNext("bird") {
		t.Errorf("ReplaceNext() on selected match = false, want true")
	}
	if buf.Content() != "bird dog cat" {
		t.Errorf("content = %q, want %q", buf.Content(), "bird dog cat")
	}
}

func TestReplaceAll(t *testing.T) {
	m, buf := newTestManager(t, "x1 x2 x3")
	if err := m.SetTerm("x[0-9]"); err != nil {
		t.Fatalf("SetTerm() error = %v", err)
	}

	n := m.ReplaceAll("y")
	if n != 3 {
		t.Errorf("ReplaceAll() = %d, want 3", n)
	}
	if buf.Content() != "y y y" {
		t.Errorf("content = %q, want %q", buf.Content(), "y y y")
	}

	// One undo step restores the original document.
	if !buf.Undo() {
		t.Fatalf("Undo() = false, want true")
	}
	if buf.Content() != "x1 x2 x3" {
		t.Errorf("content after undo = %q, want %q", buf.Content(), "x1 x2 x3")
	}
}
