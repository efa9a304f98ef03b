package gks

import (
	"github.com/gogpu/gks/displaylist"
	"github.com/gogpu/gks/emul"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

// latin1 encodes s as ISO 8859-1, the character set of TEXT records.
// Characters outside it become '?'.
func latin1(s string) []byte {
	enc := encoding.ReplaceUnsupported(charmap.ISO8859_1.NewEncoder())
	b, err := enc.Bytes([]byte(s))
	if err != nil {
		return []byte(s)
	}
	return b
}

// Polyline draws connected lines through the points, given in world
// coordinates. At least two points are required.
func (k *Kernel) Polyline(xs, ys []float64) error {
	if len(xs) < 2 || len(xs) != len(ys) {
		return k.report(newError(OpPolyline, CodeInvalidPointCount))
	}
	return k.report(k.dispatch(OpPolyline, pointsRecord(xs, ys)))
}

// Polymarker draws a marker at every point.
func (k *Kernel) Polymarker(xs, ys []float64) error {
	if len(xs) < 1 || len(xs) != len(ys) {
		return k.report(newError(OpPolymarker, CodeInvalidPointCount))
	}
	return k.report(k.dispatch(OpPolymarker, pointsRecord(xs, ys)))
}

// Text draws s at (x, y). s is sent as Latin-1.
func (k *Kernel) Text(x, y float64, s string) error {
	rec := &displaylist.Record{F1: []float64{x}, F2: []float64{y}, Chars: latin1(s)}
	return k.report(k.dispatch(OpText, rec))
}

// FillArea fills the polygon through the points. At least three points
// are required.
func (k *Kernel) FillArea(xs, ys []float64) error {
	if len(xs) < 3 || len(xs) != len(ys) {
		return k.report(newError(OpFillArea, CodeInvalidPointCount))
	}
	return k.report(k.dispatch(OpFillArea, pointsRecord(xs, ys)))
}

// CellArray draws a grid of color indices into r. colors holds dy rows
// of dimx entries; the first dx entries of each row are used.
func (k *Kernel) CellArray(r Rect, dx, dy, dimx int, colors []int) error {
	rec := &displaylist.Record{DX: dx, DY: dy, DimX: dimx, Ints: colors, F1: r.xs(), F2: r.ys()}
	return k.report(k.dispatch(OpCellArray, rec))
}

// DrawImage draws a width x height image of packed 0xAARRGGBB pixels,
// row by row from the top, into r.
func (k *Kernel) DrawImage(r Rect, width, height int, pixels []int) error {
	rec := &displaylist.Record{DX: width, DY: height, DimX: width, Ints: pixels, F1: r.xs(), F2: r.ys()}
	return k.report(k.dispatch(OpDrawImage, rec))
}

// InqTextExtent returns where a following string would continue and the
// corners of the box s would occupy at (x, y), both in world coordinates.
// Nothing is drawn.
func (k *Kernel) InqTextExtent(x, y float64, s string) (emul.Extent, error) {
	if k.opState < StateOpen {
		return emul.Extent{}, k.report(newError(OpText, CodeGKSNotOpen))
	}
	fonts := k.state.Fonts()
	if fonts == nil {
		return emul.Extent{}, k.report(newError(OpText, CodeZeroFont))
	}
	return emul.TextExtent(fonts, k.state.TextStyle(), x, y, latin1(s))
}

// Escape sends implementation-defined data to every active workstation.
func (k *Kernel) Escape(ints []int, chars []byte) error {
	return k.report(k.dispatch(OpEscape, &displaylist.Record{Ints: ints, Chars: chars}))
}
