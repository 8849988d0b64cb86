// internal/highlighter/fence.go
package highlighter

import "strings"

// FenceBlock describes one fenced code block in the document.
// Line numbers are zero-based document lines; FirstCodeLine and
// LastCodeLine bound the code body, excluding the fence lines.
type FenceBlock struct {
	OpenLine      int    // line holding the opening fence
	CloseLine     int    // line holding the closing fence, -1 when unterminated
	Info          string // fence info string, lower-cased ("go", "python", ...)
	FirstCodeLine int
	LastCodeLine  int // inclusive; FirstCodeLine-1 when the block is empty
}

// Code returns the code body of the block given the document lines.
func (b FenceBlock) Code(lines []string) string {
	if b.LastCodeLine < b.FirstCodeLine || b.FirstCodeLine >= len(lines) {
		return ""
	}
	last := b.LastCodeLine
	if last >= len(lines) {
		last = len(lines) - 1
	}
	return strings.Join(lines[b.FirstCodeLine:last+1], "\n")
}

// ScanFences finds fenced code blocks delimited by ``` lines. The info
// string after the opening fence selects the language; an unterminated
// fence runs to the end of the document.
func ScanFences(lines []string) []FenceBlock {
	var blocks []FenceBlock
	open := -1
	info := ""

	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if !strings.HasPrefix(trimmed, "```") {
			continue
		}
		if open < 0 {
			open = i
			info = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(trimmed, "```")))
			continue
		}
		blocks = append(blocks, FenceBlock{
			OpenLine:      open,
			CloseLine:     i,
			Info:          info,
			FirstCodeLine: open + 1,
			LastCodeLine:  i - 1,
		})
		open = -1
	}

	if open >= 0 {
		blocks = append(blocks, FenceBlock{
			OpenLine:      open,
			CloseLine:     -1,
			Info:          info,
			FirstCodeLine: open + 1,
			LastCodeLine:  len(lines) - 1,
		})
	}
	return blocks
}
