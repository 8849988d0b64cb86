package tui

import "testing"

func TestCalculateVisualColumn(t *testing.T) {
	tests := []struct {
		name      string
		line      string
		runeIndex int
		want      int
	}{
		{"ascii", "hello", 3, 3},
		{"zero", "hello", 0, 0},
		{"past end", "hi", 10, 2},
		{"wide rune", "a世b", 2, 3},
		{"multibyte narrow", "héllo", 2, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := VisualColumn(tt.line, tt.runeIndex); got != tt.want {
				t.Errorf("VisualColumn(%q, %d) = %d, want %d", tt.line, tt.runeIndex, got, tt.want)
			}
		})
	}
}

func TestIsPosWithin(t *testing.T) {
	start := Pos{Line: 1, Col: 2}
	end := Pos{Line: 3, Col: 1}

	tests := []struct {
		name string
		pos  Pos
		want bool
	}{
		{"before start line", Pos{0, 5}, false},
		{"on start before col", Pos{1, 1}, false},
		{"at start", Pos{1, 2}, true},
		{"middle line", Pos{2, 0}, true},
		{"on end line before col", Pos{3, 0}, true},
		{"at end is exclusive", Pos{3, 1}, false},
		{"past end line", Pos{4, 0}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isPosWithin(tt.pos, start, end); got != tt.want {
				t.Errorf("isPosWithin(%+v) = %v, want %v", tt.pos, got, tt.want)
			}
		})
	}
}

func TestGutterWidth(t *testing.T) {
	tests := []struct {
		lineCount   int
		screenWidth int
		want        int
	}{
		{1, 80, 2},
		{9, 80, 2},
		{10, 80, 3},
		{100, 80, 4},
		{50, 3, 0},
		{0, 80, 2},
	}
	for _, tt := range tests {
		if got := gutterWidth(tt.lineCount, tt.screenWidth); got != tt.want {
			t.Errorf("gutterWidth(%d, %d) = %d, want %d", tt.lineCount, tt.screenWidth, got, tt.want)
		}
	}
}
