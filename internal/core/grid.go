package core

import "image"

// Grid stores a 2D field of cells addressed as (x, y). Cells are laid out
// column by column: all rows of column 0 first, then column 1, matching the
// transposed layout used for rendered frames.
type Grid[T any] struct {
	W, H int
	data []T
}

// NewGrid allocates a grid with the given dimensions. Non-positive
// dimensions produce an empty grid.
func NewGrid[T any](w, h int) Grid[T] {
	if w <= 0 || h <= 0 {
		return Grid[T]{}
	}
	return Grid[T]{W: w, H: h, data: make([]T, w*h)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g Grid[T]) Cells() []T { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g Grid[T]) Index(x, y int) int { return x*g.H + y }

// In reports whether (x, y) lies inside the grid.
func (g Grid[T]) In(x, y int) bool { return x >= 0 && x < g.W && y >= 0 && y < g.H }

// At returns the cell at (x, y). Out-of-range coordinates yield the zero value.
func (g Grid[T]) At(x, y int) T {
	if !g.In(x, y) {
		var zero T
		return zero
	}
	return g.data[g.Index(x, y)]
}

// Set stores v at (x, y). Out-of-range coordinates are ignored.
func (g Grid[T]) Set(x, y int, v T) {
	if g.In(x, y) {
		g.data[g.Index(x, y)] = v
	}
}

// Size returns the grid dimensions.
func (g Grid[T]) Size() Size { return Size{W: g.W, H: g.H} }

// Neighbors4 lists the up/down/left/right neighbours of p.
func Neighbors4(p image.Point) [4]image.Point {
	return [4]image.Point{
		{X: p.X - 1, Y: p.Y},
		{X: p.X + 1, Y: p.Y},
		{X: p.X, Y: p.Y - 1},
		{X: p.X, Y: p.Y + 1},
	}
}
