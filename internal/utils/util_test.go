package utils

import "testing"

func TestByteOffset(t *testing.T) {
	tests := []struct {
		name      string
		s         string
		runeIndex int
		want      int
	}{
		{"ascii start", "hello", 0, 0},
		{"ascii middle", "hello", 3, 3},
		{"ascii end", "hello", 5, 5},
		{"past end clamps", "hello", 9, 5},
		{"negative", "hello", -1, 0},
		{"multibyte", "héllo", 2, 3},
		{"emoji", "a🙂b", 2, 5},
		{"empty", "", 3, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ByteOffset(tt.s, tt.runeIndex); got != tt.want {
				t.Errorf("ByteOffset(%q, %d) = %d, want %d", tt.s, tt.runeIndex, got, tt.want)
			}
		})
	}
}

func TestRuneSlice(t *testing.T) {
	tests := []struct {
		s          string
		start, end int
		want       string
	}{
		{"hello", 1, 4, "ell"},
		{"héllo", 0, 2, "hé"},
		{"a🙂b", 1, 2, "🙂"},
		{"abc", 2, 2, ""},
		{"abc", 3, 1, ""},
	}

	for _, tt := range tests {
		if got := RuneSlice(tt.s, tt.start, tt.end); got != tt.want {
			t.Errorf("RuneSlice(%q, %d, %d) = %q, want %q", tt.s, tt.start, tt.end, got, tt.want)
		}
	}
}

func TestSplice(t *testing.T) {
	tests := []struct {
		s          string
		start, end int
		insert     string
		want       string
	}{
		{"hello", 1, 4, "ipp", "hippo"},
		{"hello", 2, 2, "XY", "heXYllo"},
		{"héllo", 1, 2, "e", "hello"},
		{"", 0, 0, "new", "new"},
	}

	for _, tt := range tests {
		if got := Splice(tt.s, tt.start, tt.end, tt.insert); got != tt.want {
			t.Errorf("Splice(%q, %d, %d, %q) = %q, want %q", tt.s, tt.start, tt.end, tt.insert, got, tt.want)
		}
	}
}
