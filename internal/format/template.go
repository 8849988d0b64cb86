package format

import (
	"strings"

	"github.com/quillmd/quill/internal/types"
	"github.com/quillmd/quill/internal/utils"
)

// Template inserts share one shape: the selected text becomes the editable
// part of the template, or a placeholder stands in when nothing is selected.
// The returned selection spans the whole inserted text.

// Heading prefixes the selection with a heading marker of the given level
// (clamped to 1..6).
func Heading(content string, sel types.Selection, level int) Edit {
	if level < 1 {
		level = 1
	}
	if level > 6 {
		level = 6
	}
	body := selectedOr(content, sel, "Heading")
	return replaceWith(sel, strings.Repeat("#", level)+" "+body)
}

// Link wraps the selection as link text.
func Link(content string, sel types.Selection) Edit {
	return replaceWith(sel, "["+selectedOr(content, sel, "link text")+"](url)")
}

// Image wraps the selection as image alt text.
func Image(content string, sel types.Selection) Edit {
	return replaceWith(sel, "!["+selectedOr(content, sel, "alt text")+"](url)")
}

// Math wraps the selection in inline math delimiters.
func Math(content string, sel types.Selection) Edit {
	return replaceWith(sel, "$"+selectedOr(content, sel, "x^2")+"$")
}

// CodeBlock wraps the selection in a fenced code block.
func CodeBlock(content string, sel types.Selection) Edit {
	return replaceWith(sel, "```\n"+selectedOr(content, sel, "code")+"\n```")
}

// Table inserts a two-column table skeleton, using the selection as the
// first header cell when present.
func Table(content string, sel types.Selection) Edit {
	header := selectedOr(content, sel, "Header")
	text := "| " + header + " | Column 2 |\n| --- | --- |\n|  |  |\n"
	return replaceWith(sel, text)
}

func selectedOr(content string, sel types.Selection, placeholder string) string {
	if selected := utils.RuneSlice(content, sel.Start, sel.End); selected != "" {
		return selected
	}
	return placeholder
}

func replaceWith(sel types.Selection, text string) Edit {
	return Edit{
		Start: sel.Start,
		End:   sel.End,
		Text:  text,
		Sel:   types.Selection{Start: sel.Start, End: sel.Start + utils.RuneLen(text)},
	}
}
