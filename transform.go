package gks

import (
	"fmt"
	"math"
)

// MaxTransforms is the number of normalization transformation slots.
// Slot 0 is the fixed identity mapping of the NDC unit square.
const MaxTransforms = 10

// Point is a 2D coordinate.
type Point struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle.
type Rect struct {
	XMin, XMax, YMin, YMax float64
}

// UnitSquare is the NDC unit square.
var UnitSquare = Rect{XMin: 0, XMax: 1, YMin: 0, YMax: 1}

// Valid reports whether the rectangle is non-degenerate in both axes.
func (r Rect) Valid() bool {
	return r.XMin < r.XMax && r.YMin < r.YMax
}

// Width returns XMax - XMin.
func (r Rect) Width() float64 { return r.XMax - r.XMin }

// Height returns YMax - YMin.
func (r Rect) Height() float64 { return r.YMax - r.YMin }

// Contains reports whether (x, y) lies inside r, boundary included.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.XMin && x <= r.XMax && y >= r.YMin && y <= r.YMax
}

// Within reports whether r lies inside outer.
func (r Rect) Within(outer Rect) bool {
	return r.XMin >= outer.XMin && r.XMax <= outer.XMax &&
		r.YMin >= outer.YMin && r.YMax <= outer.YMax
}

func (r Rect) String() string {
	return fmt.Sprintf("[%g, %g]x[%g, %g]", r.XMin, r.XMax, r.YMin, r.YMax)
}

// xs and ys return the rectangle in record layout: F1 holds the x range,
// F2 the y range.
func (r Rect) xs() []float64 { return []float64{r.XMin, r.XMax} }
func (r Rect) ys() []float64 { return []float64{r.YMin, r.YMax} }

func rectFromArrays(xs, ys []float64) (Rect, bool) {
	if len(xs) < 2 || len(ys) < 2 {
		return Rect{}, false
	}
	return Rect{XMin: xs[0], XMax: xs[1], YMin: ys[0], YMax: ys[1]}, true
}

// normTransform is one normalization slot: window, viewport and the
// derived linear coefficients x' = a*x + b, y' = c*y + d.
type normTransform struct {
	window, viewport       Rect
	windowSet, viewportSet bool
	a, b, c, d             float64
}

func (t *normTransform) ready() bool {
	return t.windowSet && t.viewportSet
}

func (t *normTransform) update() {
	if !t.ready() {
		return
	}
	w, v := t.window, t.viewport
	t.a = v.Width() / w.Width()
	t.b = v.XMin - w.XMin*t.a
	t.c = v.Height() / w.Height()
	t.d = v.YMin - w.YMin*t.c
}

func checkSlot(slot int) {
	if slot < 0 || slot >= MaxTransforms {
		panic(fmt.Sprintf("gks: transformation slot %d out of range [0, %d]", slot, MaxTransforms-1))
	}
}

// SetWindow sets the window of slot. The viewport may be set before or
// after; the slot is usable once both are set.
func (s *State) SetWindow(slot int, r Rect) error {
	if slot < 1 || slot >= MaxTransforms {
		return newError(OpSetWindow, CodeInvalidTransform)
	}
	if !r.Valid() {
		return newError(OpSetWindow, CodeInvalidRect)
	}
	t := &s.transforms[slot]
	t.window, t.windowSet = r, true
	t.update()
	return nil
}

// SetViewport sets the viewport of slot. It must lie inside the NDC unit
// square.
func (s *State) SetViewport(slot int, r Rect) error {
	if slot < 1 || slot >= MaxTransforms {
		return newError(OpSetViewport, CodeInvalidTransform)
	}
	if !r.Valid() {
		return newError(OpSetViewport, CodeInvalidRect)
	}
	if !r.Within(UnitSquare) {
		return newError(OpSetViewport, CodeViewportNotInNDC)
	}
	t := &s.transforms[slot]
	t.viewport, t.viewportSet = r, true
	t.update()
	return nil
}

// SelectTransform makes slot the current normalization transformation.
func (s *State) SelectTransform(slot int) error {
	if slot < 0 || slot >= MaxTransforms {
		return newError(OpSelectTransform, CodeInvalidTransform)
	}
	s.CurrentTransform = slot
	return nil
}

// Window returns the window of slot and whether it has been set.
// It panics if slot is out of range.
func (s *State) Window(slot int) (Rect, bool) {
	checkSlot(slot)
	t := &s.transforms[slot]
	return t.window, t.windowSet
}

// Viewport returns the viewport of slot and whether it has been set.
// It panics if slot is out of range.
func (s *State) Viewport(slot int) (Rect, bool) {
	checkSlot(slot)
	t := &s.transforms[slot]
	return t.viewport, t.viewportSet
}

// Coefficients returns the linear mapping of slot:
// ndcX = a*wcX + b, ndcY = c*wcY + d.
func (s *State) Coefficients(slot int) (a, b, c, d float64, err error) {
	checkSlot(slot)
	t := &s.transforms[slot]
	if !t.ready() {
		return 0, 0, 0, 0, ErrUninitializedTransform
	}
	return t.a, t.b, t.c, t.d, nil
}

// WCToNDC maps a world coordinate to NDC through slot. It panics if slot
// is out of range.
func (s *State) WCToNDC(slot int, x, y float64) (float64, float64, error) {
	checkSlot(slot)
	t := &s.transforms[slot]
	if !t.ready() {
		return x, y, ErrUninitializedTransform
	}
	return t.a*x + t.b, t.c*y + t.d, nil
}

// NDCToWC is the exact inverse of WCToNDC for the same slot.
func (s *State) NDCToWC(slot int, x, y float64) (float64, float64, error) {
	checkSlot(slot)
	t := &s.transforms[slot]
	if !t.ready() {
		return x, y, ErrUninitializedTransform
	}
	return (x - t.b) / t.a, (y - t.d) / t.c, nil
}

// SegmentTransform applies the segment transformation to an NDC point.
func (s *State) SegmentTransform(x, y float64) (float64, float64) {
	return s.SegmentMatrix.TransformPoint(x, y)
}

// ToNDC maps a world coordinate through the current normalization
// transformation and the segment transformation. Drivers use it for
// every coordinate of an output primitive.
func (s *State) ToNDC(x, y float64) (float64, float64, error) {
	nx, ny, err := s.WCToNDC(s.CurrentTransform, x, y)
	if err != nil {
		return x, y, err
	}
	nx, ny = s.SegmentTransform(nx, ny)
	return nx, ny, nil
}

// ClipRect returns the clipping rectangle in NDC and whether clipping is
// on. With clipping on it is the viewport of the current transformation.
func (s *State) ClipRect() (Rect, bool) {
	t := &s.transforms[s.CurrentTransform]
	if !s.Clip || !t.viewportSet {
		return UnitSquare, false
	}
	return t.viewport, true
}

// locatorTransform returns the highest numbered slot whose viewport
// contains the NDC point. Slot 0 always matches inside the unit square.
func (s *State) locatorTransform(x, y float64) (int, bool) {
	for slot := MaxTransforms - 1; slot >= 0; slot-- {
		t := &s.transforms[slot]
		if t.ready() && t.viewport.Contains(x, y) {
			return slot, true
		}
	}
	return 0, false
}

// DeviceTransform maps NDC to device coordinates:
// dcX = A*x + B, dcY = C*y + D.
type DeviceTransform struct {
	A, B, C, D float64
}

// NewDeviceTransform maps the workstation window onto the workstation
// viewport. Both axes use the smaller of the two scales, so content is
// never distorted; the window's lower-left corner lands on the viewport's
// lower-left corner. A window with the viewport's aspect maps exactly.
func NewDeviceTransform(window, viewport Rect) DeviceTransform {
	sx := viewport.Width() / window.Width()
	sy := viewport.Height() / window.Height()
	s := math.Min(sx, sy)
	return DeviceTransform{
		A: s,
		B: viewport.XMin - window.XMin*s,
		C: s,
		D: viewport.YMin - window.YMin*s,
	}
}

// Apply maps an NDC point to device coordinates.
func (t DeviceTransform) Apply(x, y float64) (float64, float64) {
	return t.A*x + t.B, t.C*y + t.D
}

// Inverse maps a device point back to NDC.
func (t DeviceTransform) Inverse(x, y float64) (float64, float64) {
	return (x - t.B) / t.A, (y - t.D) / t.C
}

// FitViewport returns the largest rectangle with the aspect ratio of
// request that fits the display area [0, xmax] x [0, ymax] shrunk by
// margin on every side, centered in the display area. A margin that leaves
// no room, or is negative, is treated as zero.
func FitViewport(request Rect, xmax, ymax, margin float64) Rect {
	aspect := request.Width() / request.Height()
	availW := xmax - 2*margin
	availH := ymax - 2*margin
	if !(margin >= 0) || availW <= 0 || availH <= 0 {
		availW, availH = xmax, ymax
	}
	w, h := availW, availW/aspect
	if h > availH {
		h = availH
		w = h * aspect
	}
	x0 := (xmax - w) / 2
	y0 := (ymax - h) / 2
	return Rect{XMin: x0, XMax: x0 + w, YMin: y0, YMax: y0 + h}
}

// CoordSwitch selects the coordinate system of EvalTransformMatrix inputs.
type CoordSwitch int

const (
	CoordWC  CoordSwitch = 0
	CoordNDC CoordSwitch = 1
)

// EvalTransformMatrix builds a segment transformation that scales by scale
// and rotates by phi radians about fixed, then shifts by shift. With
// CoordWC the fixed point and shift are world coordinates of the current
// transformation and are converted to NDC first.
func (s *State) EvalTransformMatrix(fixed, shift Point, phi float64, scale Point, coords CoordSwitch) (Matrix, error) {
	x0, y0 := fixed.X, fixed.Y
	tx, ty := shift.X, shift.Y
	if coords == CoordWC {
		a, b, c, d, err := s.Coefficients(s.CurrentTransform)
		if err != nil {
			return Identity(), err
		}
		x0, y0 = a*x0+b, c*y0+d
		tx, ty = a*tx, c*ty
	}
	m := Translate(x0+tx, y0+ty).
		Multiply(Rotate(phi)).
		Multiply(Scale(scale.X, scale.Y)).
		Multiply(Translate(-x0, -y0))
	return m, nil
}
