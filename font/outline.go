// Package font supplies stroke outlines for the kernel's text emulation.
//
// The kernel does not parse font files. It asks a Source for one glyph at a
// time and receives a StrokeOutline: a handful of metrics plus an ordered
// list of pen coordinates on a fixed integer grid. TTFSource produces such
// outlines from TrueType fonts by flattening their contours.
package font

import "errors"

// MaxCoords is the largest number of pen coordinates in one outline.
const MaxCoords = 124

// Sentinel errors for the font package.
var (
	// ErrGlyphNotFound is returned when neither the character nor the
	// replacement glyph exists in the font.
	ErrGlyphNotFound = errors.New("font: glyph not found")

	// ErrNoFonts is returned when a TTFSource is created without font data.
	ErrNoFonts = errors.New("font: no font data")
)

// Coord is one pen position. Up marks a pen lift: the pen moves to the
// point without drawing. Otherwise a line is drawn from the previous point.
type Coord struct {
	X, Y int
	Up   bool
}

// StrokeOutline is one glyph at the font's nominal size.
//
// The horizontal extent is [Left, Right]. Vertical metrics are ordered
// Bottom <= Base <= Cap <= Top, with Base the baseline and Size the nominal
// cap height (Cap - Base) that callers scale to the requested character
// height.
type StrokeOutline struct {
	Left, Right int
	Size        int
	Bottom      int
	Base        int
	Cap         int
	Top         int
	Coords      []Coord
}

// Width returns the advance width of the glyph.
func (o *StrokeOutline) Width() int {
	return o.Right - o.Left
}

// Strokes calls fn once per pen-down span with the span's points.
// A span starts at a pen-up coordinate and runs until the next one.
func (o *StrokeOutline) Strokes(fn func(pts []Coord)) {
	start := 0
	for i := 1; i <= len(o.Coords); i++ {
		if i == len(o.Coords) || o.Coords[i].Up {
			if i-start > 1 {
				fn(o.Coords[start:i])
			}
			start = i
		}
	}
}

// Source returns stroke outlines for (font, character) pairs. chr is a
// Latin-1 character code.
type Source interface {
	Lookup(font, chr int) (*StrokeOutline, error)
}

// SourceFunc adapts a function to the Source interface.
type SourceFunc func(font, chr int) (*StrokeOutline, error)

// Lookup implements Source.
func (f SourceFunc) Lookup(font, chr int) (*StrokeOutline, error) {
	return f(font, chr)
}
