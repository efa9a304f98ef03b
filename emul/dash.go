package emul

import "math"

// Line types with a dash pattern. Types 1-4 are the standard ones, the
// negative types are extensions.
const (
	LineSolid       = 1
	LineDashed      = 2
	LineDotted      = 3
	LineDashDotted  = 4
	LineDash2Dot    = -1
	LineDash3Dot    = -2
	LineLongDash    = -3
	LineLongShort   = -4
	LineSpacedDash  = -5
	LineSpacedDot   = -6
	LineDoubleDot   = -7
	LineTripleDot   = -8
	minLineType     = LineTripleDot
	maxLineType     = LineDashDotted
	dashUnitDefault = 1.0
)

// dashTable holds alternating on/off lengths per line type, in units of
// the line width. Solid lines have no entry.
var dashTable = map[int][]float64{
	LineDashed:     {8, 6},
	LineDotted:     {1, 4},
	LineDashDotted: {8, 4, 1, 4},
	LineDash2Dot:   {8, 4, 1, 4, 1, 4},
	LineDash3Dot:   {8, 4, 1, 4, 1, 4, 1, 4},
	LineLongDash:   {16, 8},
	LineLongShort:  {16, 4, 8, 4},
	LineSpacedDash: {8, 12},
	LineSpacedDot:  {1, 8},
	LineDoubleDot:  {1, 3, 1, 8},
	LineTripleDot:  {1, 3, 1, 3, 1, 8},
}

// ValidLineType reports whether ltype names a known line type.
func ValidLineType(ltype int) bool {
	return ltype != 0 && ltype >= minLineType && ltype <= maxLineType
}

// Pattern returns the on/off lengths for a line type multiplied by scale.
// Solid and unknown line types return nil. Non-positive scales use 1.
func Pattern(ltype int, scale float64) []float64 {
	base, ok := dashTable[ltype]
	if !ok {
		return nil
	}
	if scale <= 0 {
		scale = dashUnitDefault
	}
	out := make([]float64, len(base))
	for i, l := range base {
		out[i] = l * scale
	}
	return out
}

// DashState carries a dash pattern and the current phase within it.
//
// The zero value draws solid lines. A DashState must not be shared between
// polylines that are drawn concurrently.
type DashState struct {
	pattern []float64
	index   int
	remain  float64
	x, y    float64
	atPen   bool
}

// NewDashState creates a state for the given on/off lengths. An odd-length
// pattern is repeated once so that on and off alternate. Negative lengths
// are taken as absolute values; a pattern without any positive length
// draws solid lines.
func NewDashState(pattern []float64) *DashState {
	d := &DashState{}
	d.SetPattern(pattern)
	return d
}

// SetPattern replaces the pattern and restarts it.
func (d *DashState) SetPattern(pattern []float64) {
	d.pattern = nil
	total := 0.0
	for _, l := range pattern {
		total += math.Abs(l)
	}
	if total > 0 {
		p := make([]float64, 0, 2*len(pattern))
		for _, l := range pattern {
			p = append(p, math.Abs(l))
		}
		if len(p)%2 != 0 {
			p = append(p, p...)
		}
		d.pattern = p
	}
	d.Restart()
}

// Restart resets the phase to the beginning of the first dash.
func (d *DashState) Restart() {
	d.index = 0
	if len(d.pattern) > 0 {
		d.remain = d.pattern[0]
	}
}

// Solid reports whether the state draws solid lines.
func (d *DashState) Solid() bool {
	return len(d.pattern) == 0
}

// Move starts a new polyline at (x, y) and restarts the pattern.
func (d *DashState) Move(x, y float64, c Canvas) {
	d.Restart()
	d.x, d.y = x, y
	d.atPen = true
	c.MoveTo(x, y)
}

// Dash draws from the current position to (x, y), emitting only the "on"
// parts of the pattern. The phase carries over to the next call.
func (d *DashState) Dash(x, y float64, c Canvas) {
	if d.Solid() {
		c.LineTo(x, y)
		d.x, d.y = x, y
		d.atPen = true
		return
	}

	x0, y0 := d.x, d.y
	dx, dy := x-x0, y-y0
	length := math.Hypot(dx, dy)
	pos := 0.0

	for pos < length {
		step := math.Min(d.remain, length-pos)
		on := d.index%2 == 0
		if on {
			if !d.atPen {
				c.MoveTo(x0+dx*pos/length, y0+dy*pos/length)
			}
			c.LineTo(x0+dx*(pos+step)/length, y0+dy*(pos+step)/length)
			d.atPen = true
		} else {
			d.atPen = false
		}
		pos += step
		d.remain -= step
		if d.remain <= 0 {
			d.index = (d.index + 1) % len(d.pattern)
			d.remain = d.pattern[d.index]
		}
	}
	d.x, d.y = x, y
}

// Polyline draws a connected line through the points using the pattern.
// Fewer than two points draw nothing.
func Polyline(xs, ys []float64, pattern []float64, c Canvas) {
	n := min(len(xs), len(ys))
	if n < 2 {
		return
	}
	d := NewDashState(pattern)
	d.Move(xs[0], ys[0], c)
	for i := 1; i < n; i++ {
		d.Dash(xs[i], ys[i], c)
	}
}
