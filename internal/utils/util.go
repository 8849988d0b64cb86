package utils

import (
	"sync"
	"time"
	"unicode/utf8"
)

// RuneLen returns the number of runes in s.
func RuneLen(s string) int {
	return utf8.RuneCountInString(s)
}

// ByteOffset converts a rune index into a byte offset in s.
// Indexes past the end clamp to len(s).
func ByteOffset(s string, runeIndex int) int {
	if runeIndex <= 0 {
		return 0
	}
	currentRune := 0
	for byteOffset := range s {
		if currentRune == runeIndex {
			return byteOffset
		}
		currentRune++
	}
	return len(s)
}

// RuneSlice returns the substring of s covering rune indexes [start, end).
func RuneSlice(s string, start, end int) string {
	if start >= end {
		return ""
	}
	return s[ByteOffset(s, start):ByteOffset(s, end)]
}

// Splice replaces the rune range [start, end) of s with insert.
func Splice(s string, start, end int, insert string) string {
	return s[:ByteOffset(s, start)] + insert + s[ByteOffset(s, end):]
}

// Debouncer provides a way to debounce function calls.
type Debouncer struct {
	mutex      sync.Mutex
	timer      *time.Timer
	lastCalled time.Time
}

// Debounce calls the provided function after the specified duration,
// canceling any previous pending calls.
func (d *Debouncer) Debounce(duration time.Duration, fn func()) {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}

	d.timer = time.AfterFunc(duration, func() {
		d.mutex.Lock()
		d.lastCalled = time.Now()
		d.timer = nil
		d.mutex.Unlock()
		fn()
	})
}
