// internal/types/selection.go
package types

// Selection is a pair of rune offsets into the buffer content.
// Start == End denotes a caret with no text selected.
type Selection struct {
	Start int
	End   int
}

// Caret returns a collapsed selection at the given offset.
func Caret(offset int) Selection {
	return Selection{Start: offset, End: offset}
}

// IsCaret reports whether no text is selected.
func (s Selection) IsCaret() bool {
	return s.Start == s.End
}

// Len returns the number of runes covered by the selection.
func (s Selection) Len() int {
	return s.End - s.Start
}

// Clamp normalizes the selection against a content of the given rune length.
// A reversed pair is swapped and both offsets are clamped into [0, length].
// Out-of-range selections are a caller mistake we correct rather than reject.
func (s Selection) Clamp(length int) Selection {
	if s.Start > s.End {
		s.Start, s.End = s.End, s.Start
	}
	if s.Start < 0 {
		s.Start = 0
	}
	if s.Start > length {
		s.Start = length
	}
	if s.End < 0 {
		s.End = 0
	}
	if s.End > length {
		s.End = length
	}
	return s
}
