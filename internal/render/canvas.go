// Package render defines the drawing surface the particle field paints on
// and a recorded form of one frame's drawing.
package render

// Canvas is a 2D raster surface addressed in surface pixels.
type Canvas interface {
	FillRect(x, y, width, height float64, c Color)
	FillCircle(cx, cy, radius float64, c Color)
	StrokeLine(x0, y0, x1, y1, width float64, c Color)
}
