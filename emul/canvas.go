package emul

// Canvas receives pen movements.
type Canvas interface {
	// MoveTo lifts the pen and places it at (x, y).
	MoveTo(x, y float64)

	// LineTo draws a straight line from the pen position to (x, y).
	LineTo(x, y float64)
}

// Marker receives one call per marker position.
type Marker interface {
	MarkAt(x, y float64, mtype int)
}

// MarkerFunc adapts a function to the Marker interface.
type MarkerFunc func(x, y float64, mtype int)

// MarkAt implements Marker.
func (f MarkerFunc) MarkAt(x, y float64, mtype int) { f(x, y, mtype) }

// Point is a 2D coordinate.
type Point struct {
	X, Y float64
}

// transformCanvas maps points through fn before forwarding them.
type transformCanvas struct {
	c  Canvas
	fn func(x, y float64) (float64, float64)
}

func (t transformCanvas) MoveTo(x, y float64) { t.c.MoveTo(t.fn(x, y)) }
func (t transformCanvas) LineTo(x, y float64) { t.c.LineTo(t.fn(x, y)) }
