// internal/highlighter/markdown.go
package highlighter

import (
	"regexp"
	"unicode/utf8"
)

// Style names produced by the highlighter. The TUI maps these to colors.
const (
	StyleHeading = "heading"
	StyleQuote   = "quote"
	StyleMarker  = "marker"
	StyleBold    = "bold"
	StyleItalic  = "italic"
	StyleCode    = "code"
	StyleFence   = "fence"
	StyleComment = "comment"
	StyleString  = "string"
	StyleKeyword = "keyword"
)

var (
	headingRe  = regexp.MustCompile(`^#{1,6} `)
	quoteRe    = regexp.MustCompile(`^[ \t]*> ?`)
	markerRe   = regexp.MustCompile(`^[ \t]*([*+-]|[0-9]+\.) `)
	codeSpanRe = regexp.MustCompile("`[^`\n]+`")
	boldRe     = regexp.MustCompile(`\*\*[^*\n]+\*\*`)
	italicRe   = regexp.MustCompile(`\*[^*\n]+\*`)
)

// markdownLineSpans computes structural styling for one prose line.
// Columns are rune offsets within the line.
func markdownLineSpans(line string) []Span {
	if line == "" {
		return nil
	}
	if headingRe.MatchString(line) {
		return []Span{{StartCol: 0, EndCol: utf8.RuneCountInString(line), Style: StyleHeading}}
	}
	if quoteRe.MatchString(line) {
		return []Span{{StartCol: 0, EndCol: utf8.RuneCountInString(line), Style: StyleQuote}}
	}

	var spans []Span
	if loc := markerRe.FindStringIndex(line); loc != nil {
		spans = append(spans, byteSpan(line, loc[0], loc[1], StyleMarker))
	}

	var taken [][2]int
	for _, loc := range codeSpanRe.FindAllStringIndex(line, -1) {
		spans = append(spans, byteSpan(line, loc[0], loc[1], StyleCode))
		taken = append(taken, [2]int{loc[0], loc[1]})
	}
	for _, loc := range boldRe.FindAllStringIndex(line, -1) {
		if overlapsAny(loc, taken) {
			continue
		}
		spans = append(spans, byteSpan(line, loc[0], loc[1], StyleBold))
		taken = append(taken, [2]int{loc[0], loc[1]})
	}
	for _, loc := range italicRe.FindAllStringIndex(line, -1) {
		if overlapsAny(loc, taken) {
			continue
		}
		spans = append(spans, byteSpan(line, loc[0], loc[1], StyleItalic))
	}
	return spans
}

func overlapsAny(loc []int, taken [][2]int) bool {
	for _, t := range taken {
		if loc[0] < t[1] && loc[1] > t[0] {
			return true
		}
	}
	return false
}

// byteSpan converts a byte range in the line to a rune-column span.
func byteSpan(line string, startByte, endByte int, style string) Span {
	start := utf8.RuneCountInString(line[:startByte])
	return Span{
		StartCol: start,
		EndCol:   start + utf8.RuneCountInString(line[startByte:endByte]),
		Style:    style,
	}
}
