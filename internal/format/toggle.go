package format

import (
	"strings"

	"github.com/quillmd/quill/internal/types"
	"github.com/quillmd/quill/internal/utils"
)

const (
	boldMarker = "**"
	emphMarker = "*"
	boldFiller = "bold text"
	emphFiller = "italic text"
)

// ToggleBold wraps or unwraps the selection with the bold marker.
func ToggleBold(content string, sel types.Selection) Edit {
	return toggleMarker(content, sel, boldMarker, boldFiller, "")
}

// ToggleItalic wraps or unwraps the selection with the italic marker.
// The guard keeps a leading bold delimiter from being read as italic.
func ToggleItalic(content string, sel types.Selection) Edit {
	return toggleMarker(content, sel, emphMarker, emphFiller, boldMarker)
}

// toggleMarker is the shared strip-or-wrap instruction builder. It is
// idempotent under double application: wrapping selects the wrapped span,
// so the second application sees the markers and strips them again.
func toggleMarker(content string, sel types.Selection, marker, filler, guard string) Edit {
	selected := utils.RuneSlice(content, sel.Start, sel.End)

	// Empty selection: insert a pre-wrapped placeholder, caret after it.
	if selected == "" {
		text := marker + filler + marker
		return Edit{
			Start: sel.Start,
			End:   sel.End,
			Text:  text,
			Sel:   types.Caret(sel.Start + utils.RuneLen(text)),
		}
	}

	if isWrapped(selected, marker, guard) {
		stripped := selected[len(marker) : len(selected)-len(marker)]
		return Edit{
			Start: sel.Start,
			End:   sel.End,
			Text:  stripped,
			Sel:   types.Selection{Start: sel.Start, End: sel.Start + utils.RuneLen(stripped)},
		}
	}

	text := marker + selected + marker
	return Edit{
		Start: sel.Start,
		End:   sel.End,
		Text:  text,
		Sel:   types.Selection{Start: sel.Start, End: sel.Start + utils.RuneLen(text)},
	}
}

// isWrapped reports whether text is enclosed by marker. The markers must
// enclose at least one character: a selection that is nothing but marker
// characters reads as plain text and gets wrapped, not stripped.
func isWrapped(text, marker, guard string) bool {
	if len(text) < 2*len(marker)+1 {
		return false
	}
	if guard != "" && strings.HasPrefix(text, guard) {
		return false
	}
	return strings.HasPrefix(text, marker) && strings.HasSuffix(text, marker)
}
