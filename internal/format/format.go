// Package format computes text/selection deltas for structure-aware editing
// actions. Every function is pure: it inspects (content, selection) and
// either returns an Edit instruction or reports that no special handling
// applies, in which case the caller falls through to a plain insertion.
package format

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/quillmd/quill/internal/locate"
	"github.com/quillmd/quill/internal/types"
	"github.com/quillmd/quill/internal/utils"
)

// IndentWidth is the number of spaces inserted per indent step.
const IndentWidth = 4

// Edit instructs the buffer to replace the rune range [Start, End) with
// Text and adopt Sel afterwards.
type Edit struct {
	Start int
	End   int
	Text  string
	Sel   types.Selection
}

// listMarker matches optional leading whitespace, then a bullet or a
// decimal ordinal with period, then exactly one space.
var listMarker = regexp.MustCompile(`^([ \t]*)([*+-]|[0-9]+\.) `)

// Tab handles the Tab key. A caret gets a plain indent insertion; a
// selection gets every intersecting line prefixed with one indent step,
// with the new selection spanning the whole re-indented block.
func Tab(content string, sel types.Selection) (Edit, bool) {
	indent := strings.Repeat(" ", IndentWidth)

	if sel.IsCaret() {
		return Edit{
			Start: sel.Start,
			End:   sel.Start,
			Text:  indent,
			Sel:   types.Caret(sel.Start + IndentWidth),
		}, true
	}

	blockStart := locate.LineStart(content, sel.Start)
	blockEnd := locate.LineEnd(content, sel.End)

	lines := strings.Split(utils.RuneSlice(content, blockStart, blockEnd), "\n")
	for i, line := range lines {
		lines[i] = indent + line
	}

	return Edit{
		Start: blockStart,
		End:   blockEnd,
		Text:  strings.Join(lines, "\n"),
		Sel:   types.Selection{Start: blockStart, End: blockEnd + IndentWidth*len(lines)},
	}, true
}

// Enter handles the Enter key at a caret: list continuation, numbered
// renumbering, empty-item termination and indent preservation. Selections
// and plain lines are left to the caller's newline insertion.
func Enter(content string, sel types.Selection) (Edit, bool) {
	if !sel.IsCaret() {
		return Edit{}, false
	}

	caret := sel.Start
	lineStart := locate.LineStart(content, caret)
	lineEnd := locate.LineEnd(content, caret)
	line := utils.RuneSlice(content, lineStart, lineEnd)

	m := listMarker.FindStringSubmatch(line)
	if m != nil {
		indent, marker := m[1], m[2]

		// Enter on an item with no text terminates the list: the whole
		// line through end-of-line collapses into a single newline.
		if strings.TrimSpace(line) == marker {
			start := lineStart
			if start > 0 {
				start-- // consume the newline preceding the line
			}
			return Edit{
				Start: start,
				End:   lineEnd,
				Text:  "\n",
				Sel:   types.Caret(start + 1),
			}, true
		}

		var continuation string
		if strings.HasSuffix(marker, ".") {
			n, _ := strconv.Atoi(strings.TrimSuffix(marker, "."))
			continuation = "\n" + indent + strconv.Itoa(n+1) + ". "
		} else {
			continuation = "\n" + indent + marker + " "
		}
		return Edit{
			Start: caret,
			End:   caret,
			Text:  continuation,
			Sel:   types.Caret(caret + utils.RuneLen(continuation)),
		}, true
	}

	// No marker: preserve plain indentation when the line has any.
	indent := line[:len(line)-len(strings.TrimLeft(line, " \t"))]
	if indent != "" {
		return Edit{
			Start: caret,
			End:   caret,
			Text:  "\n" + indent,
			Sel:   types.Caret(caret + 1 + utils.RuneLen(indent)),
		}, true
	}

	return Edit{}, false
}
