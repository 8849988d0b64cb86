// internal/types/position.go
package types

// Point is a 1-based display coordinate (line, column) derived from a
// flat rune offset into the buffer content.
type Point struct {
	Line int
	Col  int
}
