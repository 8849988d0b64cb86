// Package highlighter computes styled ranges for the document: markdown
// structure from marker detection on prose lines, and tree-sitter syntax
// highlighting inside fenced code blocks.
package highlighter

import (
	"context"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/quillmd/quill/internal/logger"
	sitter "github.com/smacker/go-tree-sitter"
)

// Span is a styled rune-column range on a single line.
type Span struct {
	StartCol int
	EndCol   int
	Style    string
}

// Result maps zero-based line numbers to their styled ranges.
type Result map[int][]Span

// Highlighter parses fenced code blocks and styles the document.
type Highlighter struct {
	mu     sync.Mutex
	parser *sitter.Parser
}

// NewHighlighter creates a highlighter instance.
func NewHighlighter() *Highlighter {
	return &Highlighter{parser: sitter.NewParser()}
}

// Highlight computes the full styling for the document. Non-incremental;
// callers debounce on their side.
func (h *Highlighter) Highlight(ctx context.Context, content string) Result {
	lines := strings.Split(content, "\n")
	blocks := ScanFences(lines)
	result := make(Result)

	inCode := make(map[int]bool)
	for _, b := range blocks {
		inCode[b.OpenLine] = true
		result[b.OpenLine] = []Span{lineSpan(lines[b.OpenLine], StyleFence)}
		if b.CloseLine >= 0 {
			inCode[b.CloseLine] = true
			result[b.CloseLine] = []Span{lineSpan(lines[b.CloseLine], StyleFence)}
		}
		for i := b.FirstCodeLine; i <= b.LastCodeLine && i < len(lines); i++ {
			inCode[i] = true
			result[i] = []Span{lineSpan(lines[i], StyleCode)}
		}
	}

	for i, line := range lines {
		if inCode[i] {
			continue
		}
		if spans := markdownLineSpans(line); len(spans) > 0 {
			result[i] = spans
		}
	}

	for _, b := range blocks {
		h.highlightBlock(ctx, b, lines, result)
	}
	return result
}

// highlightBlock overlays tree-sitter captures on a fenced block when
// its info string names a registered grammar.
func (h *Highlighter) highlightBlock(ctx context.Context, b FenceBlock, lines []string, result Result) {
	l, ok := languages[b.Info]
	if !ok {
		return
	}
	code := b.Code(lines)
	if code == "" {
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	h.parser.SetLanguage(l.lang)
	tree, err := h.parser.ParseCtx(ctx, nil, []byte(code))
	if err != nil {
		logger.Warnf("Highlighter: parsing %s block failed: %v", l.name, err)
		return
	}
	defer tree.Close()

	query, err := l.compiledQuery()
	if err != nil {
		logger.Warnf("Highlighter: query for %s failed: %v", l.name, err)
		return
	}

	qc := sitter.NewQueryCursor()
	qc.Exec(query, tree.RootNode())

	for {
		match, exists := qc.NextMatch()
		if !exists {
			break
		}
		for _, capture := range match.Captures {
			style := query.CaptureNameForId(capture.Index)
			node := capture.Node
			startPoint := node.StartPoint()
			endPoint := node.EndPoint()

			docLine := b.FirstCodeLine + int(startPoint.Row)
			if docLine >= len(lines) {
				continue
			}
			line := lines[docLine]

			startCol := byteColToRuneCol(line, int(startPoint.Column))
			var endCol int
			if startPoint.Row == endPoint.Row {
				endCol = byteColToRuneCol(line, int(endPoint.Column))
			} else {
				// Multi-line capture: style to end of the start line.
				endCol = utf8.RuneCountInString(line)
			}
			if endCol <= startCol {
				continue
			}
			result[docLine] = append(result[docLine], Span{StartCol: startCol, EndCol: endCol, Style: style})
		}
	}
}

// compiledQuery compiles the language's highlight query once.
func (l *language) compiledQuery() (*sitter.Query, error) {
	l.once.Do(func() {
		l.compiled, l.compileErr = sitter.NewQuery([]byte(l.query), l.lang)
	})
	return l.compiled, l.compileErr
}

func lineSpan(line, style string) Span {
	return Span{StartCol: 0, EndCol: utf8.RuneCountInString(line), Style: style}
}

func byteColToRuneCol(line string, byteCol int) int {
	if byteCol <= 0 {
		return 0
	}
	if byteCol >= len(line) {
		return utf8.RuneCountInString(line)
	}
	return utf8.RuneCountInString(line[:byteCol])
}
