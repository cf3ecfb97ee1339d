package core

import "reso/internal/render"

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Sim defines the contract the viewer drives: a board that advances in
// ticks and renders itself as a frame.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step()
	Frame() *render.Frame
}

// Toggler is implemented by sims whose cells can be flipped by the user.
type Toggler interface {
	Toggle(x, y int) bool
}

// Inspector is implemented by sims that can describe the cell at (x, y).
type Inspector interface {
	Describe(x, y int) string
}
