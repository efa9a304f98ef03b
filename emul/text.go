package emul

import (
	"fmt"
	"math"

	"github.com/gogpu/gks/font"
)

// Text paths.
const (
	PathRight = 0
	PathLeft  = 1
	PathUp    = 2
	PathDown  = 3
)

// Horizontal alignments.
const (
	HAlignNormal = 0
	HAlignLeft   = 1
	HAlignCenter = 2
	HAlignRight  = 3
)

// Vertical alignments.
const (
	VAlignNormal = 0
	VAlignTop    = 1
	VAlignCap    = 2
	VAlignHalf   = 3
	VAlignBase   = 4
	VAlignBottom = 5
)

// TextStyle carries the text attributes that shape stroke text.
type TextStyle struct {
	Font int

	// Height is the cap height of one character.
	Height float64

	// UpX, UpY point from the baseline towards the cap line. Only the
	// direction is used.
	UpX, UpY float64

	// Expansion scales character widths. Spacing adds Spacing*Height
	// between characters.
	Expansion float64
	Spacing   float64

	Path           int
	HAlign, VAlign int

	// Slant shears glyphs by the given angle in degrees.
	Slant float64

	// Fill fills glyph contours instead of tracing them.
	Fill bool
}

// DefaultTextStyle returns unit-height, upright, left-to-right text.
func DefaultTextStyle() TextStyle {
	return TextStyle{Font: font.FontDefault, Height: 1, UpY: 1, Expansion: 1}
}

// Extent is the result of a text extent query. Corners run counter
// clockwise starting at the lower left of the text box. Concat is where a
// following string continues.
type Extent struct {
	Concat  Point
	Corners [4]Point
}

// placed is one glyph at its local text position.
type placed struct {
	o      *font.StrokeOutline
	ox, oy float64
}

// layout is the text in local coordinates: x along the baseline, y along
// the up vector, alignment already applied.
type layout struct {
	glyphs  []placed
	sx, sy  float64
	shear   float64
	x0, y0  float64
	x1, y1  float64
	cx, cy  float64
	ux, uy  float64
	originX float64
	originY float64
}

// Text draws chars as stroke text anchored at (x, y).
func Text(src font.Source, st TextStyle, x, y float64, chars []byte, c Canvas) error {
	l, err := newLayout(src, st, x, y, chars)
	if err != nil {
		return err
	}
	for _, g := range l.glyphs {
		if st.Fill {
			var polys [][]Point
			g.o.Strokes(func(pts []font.Coord) {
				poly := make([]Point, len(pts))
				for i, p := range pts {
					poly[i] = l.point(g, p)
				}
				polys = append(polys, poly)
			})
			FillPolygons(polys, l.sy*float64(g.o.Size)/32, NonZero, c)
			continue
		}
		g.o.Strokes(func(pts []font.Coord) {
			p := l.point(g, pts[0])
			c.MoveTo(p.X, p.Y)
			for _, q := range pts[1:] {
				p = l.point(g, q)
				c.LineTo(p.X, p.Y)
			}
		})
	}
	return nil
}

// TextExtent computes the box chars would occupy if drawn at (x, y),
// without drawing.
func TextExtent(src font.Source, st TextStyle, x, y float64, chars []byte) (Extent, error) {
	l, err := newLayout(src, st, x, y, chars)
	if err != nil {
		return Extent{}, err
	}
	var e Extent
	e.Corners[0] = l.toWorld(l.x0, l.y0)
	e.Corners[1] = l.toWorld(l.x1, l.y0)
	e.Corners[2] = l.toWorld(l.x1, l.y1)
	e.Corners[3] = l.toWorld(l.x0, l.y1)
	e.Concat = l.toWorld(l.cx, l.cy)
	return e, nil
}

func newLayout(src font.Source, st TextStyle, x, y float64, chars []byte) (*layout, error) {
	if st.Height <= 0 {
		return nil, fmt.Errorf("emul: text height %g must be positive", st.Height)
	}
	ulen := math.Hypot(st.UpX, st.UpY)
	if ulen == 0 {
		return nil, fmt.Errorf("emul: text up vector is zero")
	}
	exp := st.Expansion
	if exp <= 0 {
		exp = 1
	}
	l := &layout{
		ux:      st.UpX / ulen,
		uy:      st.UpY / ulen,
		originX: x,
		originY: y,
		shear:   math.Tan(st.Slant * math.Pi / 180),
	}

	outlines := make([]*font.StrokeOutline, len(chars))
	for i, ch := range chars {
		o, err := src.Lookup(st.Font, int(ch))
		if err != nil {
			return nil, fmt.Errorf("emul: character %q: %w", ch, err)
		}
		outlines[i] = o
	}

	// All glyphs of one font share metrics; the first one sets the scale.
	size, top, bottom := 1.0, 1.0, 0.0
	if len(outlines) > 0 {
		o := outlines[0]
		size = float64(o.Size)
		if size <= 0 {
			size = float64(o.Cap - o.Base)
		}
		if size <= 0 {
			size = 1
		}
		top = float64(o.Top - o.Base)
		bottom = float64(o.Bottom - o.Base)
	}
	l.sy = st.Height / size
	l.sx = l.sy * exp
	top *= l.sy
	bottom *= l.sy
	gap := st.Spacing * st.Height

	n := len(outlines)
	switch st.Path {
	case PathUp, PathDown:
		step := top - bottom + gap
		maxW := 0.0
		for _, o := range outlines {
			maxW = math.Max(maxW, float64(o.Width())*l.sx)
		}
		for i, o := range outlines {
			k := i // position from the bottom
			if st.Path == PathDown {
				k = n - 1 - i
			}
			l.glyphs = append(l.glyphs, placed{o: o, ox: -float64(o.Width()) * l.sx / 2, oy: float64(k) * step})
		}
		l.x0, l.x1 = -maxW/2, maxW/2
		l.y0 = bottom
		l.y1 = math.Max(float64(n-1), 0)*step + top
		if st.Path == PathUp {
			l.cx, l.cy = 0, float64(n)*step
		} else {
			l.cx, l.cy = 0, -step
		}
	default:
		w := 0.0
		order := make([]int, n)
		for i := range order {
			order[i] = i
			if st.Path == PathLeft {
				order[i] = n - 1 - i
			}
		}
		for j, i := range order {
			o := outlines[i]
			if j > 0 {
				w += gap
			}
			l.glyphs = append(l.glyphs, placed{o: o, ox: w})
			w += float64(o.Width()) * l.sx
		}
		l.x0, l.x1 = 0, w
		l.y0, l.y1 = bottom, top
		if st.Path == PathLeft {
			l.cx = -gap
		} else {
			l.cx = w + gap
		}
	}

	dx, dy := l.alignment(st, top, bottom)
	for i := range l.glyphs {
		l.glyphs[i].ox += dx
		l.glyphs[i].oy += dy
	}
	l.x0 += dx
	l.x1 += dx
	l.y0 += dy
	l.y1 += dy
	l.cx += dx
	l.cy += dy
	return l, nil
}

// alignment returns the offset that moves the alignment point of the
// unaligned box to the local origin.
func (l *layout) alignment(st TextStyle, top, bottom float64) (dx, dy float64) {
	vertical := st.Path == PathUp || st.Path == PathDown

	h := st.HAlign
	if h == HAlignNormal {
		switch st.Path {
		case PathLeft:
			h = HAlignRight
		case PathUp, PathDown:
			h = HAlignCenter
		default:
			h = HAlignLeft
		}
	}
	switch h {
	case HAlignLeft:
		dx = -l.x0
	case HAlignCenter:
		dx = -(l.x0 + l.x1) / 2
	case HAlignRight:
		dx = -l.x1
	}

	v := st.VAlign
	if v == VAlignNormal {
		v = VAlignBase
		if st.Path == PathDown {
			v = VAlignTop
		}
	}
	// Cap and half lines of a vertical string refer to its top glyph.
	capY := st.Height
	if vertical {
		capY = l.y1 - top + st.Height
	}
	switch v {
	case VAlignTop:
		dy = -l.y1
	case VAlignCap:
		dy = -capY
	case VAlignHalf:
		dy = -capY / 2
	case VAlignBase:
		dy = 0
	case VAlignBottom:
		dy = -l.y0
	}
	return dx, dy
}

// point maps a glyph coordinate to output space.
func (l *layout) point(g placed, c font.Coord) Point {
	gy := float64(c.Y-g.o.Base) * l.sy
	lx := g.ox + float64(c.X-g.o.Left)*l.sx + gy*l.shear
	return l.toWorld(lx, g.oy+gy)
}

// toWorld rotates local coordinates by the up vector and moves them to the
// anchor point.
func (l *layout) toWorld(lx, ly float64) Point {
	// The baseline direction is the up vector turned clockwise.
	bx, by := l.uy, -l.ux
	return Point{
		X: l.originX + lx*bx + ly*l.ux,
		Y: l.originY + lx*by + ly*l.uy,
	}
}
