// Package particles simulates the drifting particle field and draws the
// proximity lines between particles and the pointer.
package particles

// Viewport is the current drawing surface size in surface pixels and the
// device pixel ratio it was sized with.
type Viewport struct {
	Width  int
	Height int
	DPR    float64
}

// Pointer is the last known pointer position in surface pixels. Active is
// true while the pointer is over the surface.
type Pointer struct {
	X, Y   float64
	Active bool
}
