// Package locate derives display coordinates from flat rune offsets.
// All functions are pure; content is never mutated.
package locate

import (
	"github.com/quillmd/quill/internal/types"
	"github.com/quillmd/quill/internal/utils"
)

// Locate converts a rune offset into a 1-based (line, column) point.
// The line number counts newlines strictly before offset; the column is
// measured from the preceding newline.
func Locate(content string, offset int) types.Point {
	length := utils.RuneLen(content)
	if offset < 0 {
		offset = 0
	}
	if offset > length {
		offset = length
	}

	line := 1
	lastNewline := -1 // rune index of the newline preceding offset
	i := 0
	for _, r := range content {
		if i >= offset {
			break
		}
		if r == '\n' {
			line++
			lastNewline = i
		}
		i++
	}

	return types.Point{Line: line, Col: offset - lastNewline}
}

// Offset converts a 1-based (line, column) point back into a rune offset.
// Points past the end of a line clamp to the line end; lines past the end
// of the content clamp to the final offset.
func Offset(content string, line, col int) int {
	if line < 1 {
		line = 1
	}
	if col < 1 {
		col = 1
	}

	currentLine := 1
	lineStart := 0
	i := 0
	for _, r := range content {
		if currentLine == line {
			break
		}
		if r == '\n' {
			currentLine++
			lineStart = i + 1
		}
		i++
	}
	if currentLine < line {
		return utils.RuneLen(content)
	}

	offset := lineStart + col - 1
	if end := LineEnd(content, lineStart); offset > end {
		offset = end
	}
	return offset
}

// LineStart returns the rune offset of the first character of the line
// containing offset.
func LineStart(content string, offset int) int {
	start := 0
	i := 0
	for _, r := range content {
		if i >= offset {
			break
		}
		if r == '\n' {
			start = i + 1
		}
		i++
	}
	return start
}

// LineEnd returns the rune offset of the newline terminating the line
// containing offset, or the content length when the line is the last one.
func LineEnd(content string, offset int) int {
	if offset < 0 {
		offset = 0
	}
	i := 0
	for _, r := range content {
		if i >= offset && r == '\n' {
			return i
		}
		i++
	}
	return i
}
