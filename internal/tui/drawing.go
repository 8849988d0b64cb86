// internal/tui/drawing.go
package tui

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/quillmd/quill/internal/highlighter"
	"github.com/rivo/uniseg"
)

// Pos is a zero-based (line, rune-column) coordinate used for drawing.
type Pos struct {
	Line int
	Col  int
}

// View is everything the draw routines need: document lines, viewport
// origin, selection bounds and precomputed styling.
type View struct {
	Lines           []string
	ViewY           int // first visible document line
	ViewX           int // first visible visual column
	Cursor          Pos
	SelStart        Pos
	SelEnd          Pos
	SelectionActive bool
	Highlights      highlighter.Result
	StatusBarHeight int
}

// VisualColumn returns the visual width of the line up to runeIndex.
func VisualColumn(line string, runeIndex int) int {
	if runeIndex <= 0 {
		return 0
	}
	visualWidth := 0
	currentRuneIndex := 0
	gr := uniseg.NewGraphemes(line)
	for gr.Next() {
		if currentRuneIndex >= runeIndex {
			break
		}
		visualWidth += gr.Width()
		currentRuneIndex += len(gr.Runes())
	}
	return visualWidth
}

// isPosWithin checks pos against the half-open range [start, end).
func isPosWithin(pos, start, end Pos) bool {
	if pos.Line < start.Line || pos.Line > end.Line {
		return false
	}
	if pos.Line == start.Line && pos.Col < start.Col {
		return false
	}
	if pos.Line == end.Line && pos.Col >= end.Col {
		return false
	}
	return true
}

// gutterWidth computes the line-number gutter width, 0 when the screen
// is too narrow to afford one.
func gutterWidth(lineCount, screenWidth int) int {
	if lineCount <= 0 {
		lineCount = 1
	}
	maxDigits := int(math.Log10(float64(lineCount))) + 1
	w := maxDigits + 1
	if w >= screenWidth {
		return 0
	}
	return w
}

// DrawBuffer draws the visible portion of the document.
func DrawBuffer(t *TUI, v *View) {
	width, height := t.Size()
	viewHeight := height - v.StatusBarHeight
	if viewHeight <= 0 || width <= 0 {
		return
	}

	gutter := gutterWidth(len(v.Lines), width)
	textAreaWidth := width - gutter

	for screenY := 0; screenY < viewHeight; screenY++ {
		lineIdx := screenY + v.ViewY

		for fillX := 0; fillX < width; fillX++ {
			t.screen.SetContent(fillX, screenY, ' ', nil, styleDefault)
		}

		if gutter > 0 && lineIdx >= 0 && lineIdx < len(v.Lines) {
			numStyle := styleGutter
			if v.Cursor.Line == lineIdx {
				numStyle = numStyle.Bold(true)
			}
			numStr := fmt.Sprintf("%*d", gutter-1, lineIdx+1)
			for i, r := range numStr {
				if i < gutter-1 {
					t.screen.SetContent(i, screenY, r, nil, numStyle)
				}
			}
		}

		if lineIdx < 0 || lineIdx >= len(v.Lines) {
			continue
		}

		line := v.Lines[lineIdx]
		lineSpans := v.Highlights[lineIdx]
		gr := uniseg.NewGraphemes(line)
		currentVisualX := 0
		currentRuneIndex := 0

		for gr.Next() {
			clusterRunes := gr.Runes()
			clusterWidth := gr.Width()
			clusterVisualStart := currentVisualX
			clusterVisualEnd := currentVisualX + clusterWidth
			screenX := (clusterVisualStart - v.ViewX) + gutter

			if clusterVisualEnd > v.ViewX && clusterVisualStart < v.ViewX+textAreaWidth {
				style := styleAt(lineSpans, currentRuneIndex)
				pos := Pos{Line: lineIdx, Col: currentRuneIndex}
				if v.SelectionActive && isPosWithin(pos, v.SelStart, v.SelEnd) {
					style = styleSelection
				}

				if screenX >= gutter && screenX < width {
					mainRune := clusterRunes[0]
					combining := clusterRunes[1:]
					if mainRune == '\t' {
						spacesToDraw := 4 - ((currentVisualX - v.ViewX + gutter) % 4)
						for i := 0; i < spacesToDraw && screenX+i < width; i++ {
							t.screen.SetContent(screenX+i, screenY, ' ', nil, style)
						}
					} else {
						t.screen.SetContent(screenX, screenY, mainRune, combining, style)
						for cw := 1; cw < clusterWidth; cw++ {
							if screenX+cw < width {
								t.screen.SetContent(screenX+cw, screenY, ' ', nil, style)
							}
						}
					}
				}
			}

			currentVisualX += clusterWidth
			currentRuneIndex += len(clusterRunes)
			if currentVisualX >= v.ViewX+textAreaWidth {
				break
			}
		}
	}
}

// styleAt resolves the style for a rune column from the line's spans.
func styleAt(spans []highlighter.Span, runeIndex int) tcell.Style {
	style := styleDefault
	for _, s := range spans {
		if runeIndex >= s.StartCol && runeIndex < s.EndCol {
			style = styleFor(s.Style)
			// Later spans win so search overlays syntax.
		}
	}
	return style
}

// DrawCursor positions the terminal cursor.
func DrawCursor(t *TUI, v *View) {
	width, height := t.Size()
	viewHeight := height - v.StatusBarHeight
	gutter := gutterWidth(len(v.Lines), width)

	cursorVisualCol := 0
	if v.Cursor.Line >= 0 && v.Cursor.Line < len(v.Lines) {
		cursorVisualCol = VisualColumn(v.Lines[v.Cursor.Line], v.Cursor.Col)
	}

	screenX := (cursorVisualCol - v.ViewX) + gutter
	screenY := v.Cursor.Line - v.ViewY

	if screenX < gutter || screenX >= width || screenY < 0 || screenY >= viewHeight || viewHeight <= 0 {
		t.screen.HideCursor()
		return
	}
	t.screen.ShowCursor(screenX, screenY)
}
