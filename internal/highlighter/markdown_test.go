package highlighter

import (
	"context"
	"strings"
	"testing"
)

func findStyle(spans []Span, style string) (Span, bool) {
	for _, s := range spans {
		if s.Style == style {
			return s, true
		}
	}
	return Span{}, false
}

func TestMarkdownLineSpans(t *testing.T) {
	tests := []struct {
		name      string
		line      string
		wantStyle string
		wantSpan  Span
	}{
		{
			name:      "heading covers whole line",
			line:      "## Notes",
			wantStyle: StyleHeading,
			wantSpan:  Span{StartCol: 0, EndCol: 8, Style: StyleHeading},
		},
		{
			name:      "blockquote",
			line:      "> quoted",
			wantStyle: StyleQuote,
			wantSpan:  Span{StartCol: 0, EndCol: 8, Style: StyleQuote},
		},
		{
			name:      "bullet marker",
			line:      "- item",
			wantStyle: StyleMarker,
			wantSpan:  Span{StartCol: 0, EndCol: 2, Style: StyleMarker},
		},
		{
			name:      "indented numbered marker",
			line:      "    2. item",
			wantStyle: StyleMarker,
			wantSpan:  Span{StartCol: 0, EndCol: 7, Style: StyleMarker},
		},
		{
			name:      "bold span",
			line:      "some **bold** text",
			wantStyle: StyleBold,
			wantSpan:  Span{StartCol: 5, EndCol: 13, Style: StyleBold},
		},
		{
			name:      "italic span",
			line:      "an *em* word",
			wantStyle: StyleItalic,
			wantSpan:  Span{StartCol: 3, EndCol: 7, Style: StyleItalic},
		},
		{
			name:      "inline code",
			line:      "run `go vet` now",
			wantStyle: StyleCode,
			wantSpan:  Span{StartCol: 4, EndCol: 12, Style: StyleCode},
		},
		{
			name:      "multibyte before bold",
			line:      "héé **b**",
			wantStyle: StyleBold,
			wantSpan:  Span{StartCol: 4, EndCol: 9, Style: StyleBold},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spans := markdownLineSpans(tt.line)
			got, ok := findStyle(spans, tt.wantStyle)
			if !ok {
				t.Fatalf("markdownLineSpans(%q) has no %s span: %+v", tt.line, tt.wantStyle, spans)
			}
			if got != tt.wantSpan {
				t.Errorf("markdownLineSpans(%q) %s span = %+v, want %+v", tt.line, tt.wantStyle, got, tt.wantSpan)
			}
		})
	}
}

func TestBoldNotDoubleCountedAsItalic(t *testing.T) {
	spans := markdownLineSpans("**bold** only")
	if _, ok := findStyle(spans, StyleItalic); ok {
		t.Errorf("bold span also matched italic: %+v", spans)
	}
	if _, ok := findStyle(spans, StyleBold); !ok {
		t.Errorf("no bold span found: %+v", spans)
	}
}

func TestHighlightStructure(t *testing.T) {
	doc := strings.Join([]string{
		"# Title",
		"prose with **bold**",
		"```unknownlang",
		"code line",
		"```",
	}, "\n")

	result := NewHighlighter().Highlight(context.Background(), doc)

	if _, ok := findStyle(result[0], StyleHeading); !ok {
		t.Errorf("line 0 missing heading span: %+v", result[0])
	}
	if _, ok := findStyle(result[1], StyleBold); !ok {
		t.Errorf("line 1 missing bold span: %+v", result[1])
	}
	if _, ok := findStyle(result[2], StyleFence); !ok {
		t.Errorf("line 2 missing fence span: %+v", result[2])
	}
	if _, ok := findStyle(result[3], StyleCode); !ok {
		t.Errorf("line 3 missing code span: %+v", result[3])
	}
	if _, ok := findStyle(result[4], StyleFence); !ok {
		t.Errorf("line 4 missing fence span: %+v", result[4])
	}
}
