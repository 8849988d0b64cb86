// internal/tui/styles.go
package tui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/quillmd/quill/internal/highlighter"
)

// StyleSearch marks search matches; produced by the app, not the highlighter.
const StyleSearch = "search"

var (
	styleDefault   = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	styleSelection = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorSilver)
	styleGutter    = tcell.StyleDefault.Foreground(tcell.ColorGray).Background(tcell.ColorBlack)
)

var styles = map[string]tcell.Style{
	highlighter.StyleHeading: styleDefault.Foreground(tcell.ColorAqua).Bold(true),
	highlighter.StyleQuote:   styleDefault.Foreground(tcell.ColorGreen).Italic(true),
	highlighter.StyleMarker:  styleDefault.Foreground(tcell.ColorYellow),
	highlighter.StyleBold:    styleDefault.Bold(true),
	highlighter.StyleItalic:  styleDefault.Italic(true),
	highlighter.StyleCode:    styleDefault.Foreground(tcell.ColorFuchsia),
	highlighter.StyleFence:   styleDefault.Foreground(tcell.ColorGray),
	highlighter.StyleComment: styleDefault.Foreground(tcell.ColorGray).Italic(true),
	highlighter.StyleString:  styleDefault.Foreground(tcell.ColorGreen),
	highlighter.StyleKeyword: styleDefault.Foreground(tcell.ColorYellow).Bold(true),
	StyleSearch:              tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorYellow),
}

// styleFor resolves a highlighter style name, falling back to the default.
func styleFor(name string) tcell.Style {
	if s, ok := styles[name]; ok {
		return s
	}
	return styleDefault
}
