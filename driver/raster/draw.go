package raster

import (
	"errors"
	"image"
	"image/color"
	"math"

	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/gks"
	"github.com/gogpu/gks/displaylist"
	"github.com/gogpu/gks/emul"
)

const (
	// markerUnit is the marker size in pixels at marker size scale 1.
	markerUnit = 6

	// hatchSpacing is the distance between hatch lines in pixels.
	hatchSpacing = 8
)

var errNoFonts = errors.New("raster: no stroke fonts available")

// pen is an emul.Canvas that strokes lines of a fixed width into the
// rasterizer. Points pass through fn, which maps them to device units.
type pen struct {
	d     *Driver
	fn    func(x, y float64) (float64, float64)
	width float64
	x, y  float64
}

func (p *pen) MoveTo(x, y float64) {
	p.x, p.y = p.d.pixel(p.fn(x, y))
}

func (p *pen) LineTo(x, y float64) {
	x1, y1 := p.d.pixel(p.fn(x, y))
	p.d.stroke(p.x, p.y, x1, y1, p.width)
	p.x, p.y = x1, y1
}

func identity(x, y float64) (float64, float64) { return x, y }

func (d *Driver) newPen(width float64) *pen {
	return &pen{d: d, fn: identity, width: max(width, 1)}
}

// stroke adds the rectangle covered by a line of the given width from
// (x0, y0) to (x1, y1), extended by half the width at both ends. Every
// rectangle has the same winding, so overlaps do not cancel.
func (d *Driver) stroke(x0, y0, x1, y1, width float64) {
	hw := width / 2
	ux, uy := 1.0, 0.0
	if l := math.Hypot(x1-x0, y1-y0); l > 0 {
		ux, uy = (x1-x0)/l, (y1-y0)/l
	}
	ax, ay := x0-ux*hw, y0-uy*hw
	bx, by := x1+ux*hw, y1+uy*hw
	nx, ny := -uy*hw, ux*hw

	d.z.MoveTo(float32(ax+nx), float32(ay+ny))
	d.z.LineTo(float32(bx+nx), float32(by+ny))
	d.z.LineTo(float32(bx-nx), float32(by-ny))
	d.z.LineTo(float32(ax-nx), float32(ay-ny))
	d.z.ClosePath()
}

func (d *Driver) polyline(rec *displaylist.Record, st *gks.State) error {
	xs, ys, err := d.toDeviceAll(rec, st)
	if err != nil {
		return err
	}
	width := st.EffectiveLineWidth()
	emul.Polyline(xs, ys, emul.Pattern(st.EffectiveLineType(), width), d.newPen(width))
	d.paint(d.color(st.EffectiveLineColor(), st), d.clipBounds(st))
	return nil
}

func (d *Driver) polymarker(rec *displaylist.Record, st *gks.State) error {
	xs, ys, err := d.toDeviceAll(rec, st)
	if err != nil {
		return err
	}
	p := d.newPen(1)
	size := st.EffectiveMarkerSize() * markerUnit
	emul.Polymarker(xs, ys, st.EffectiveMarkerType(), emul.MarkerFunc(func(x, y float64, mtype int) {
		emul.DrawMarker(p, x, y, size, mtype)
	}))
	d.paint(d.color(st.EffectiveMarkerColor(), st), d.clipBounds(st))
	return nil
}

// text lays the string out in NDC and maps the strokes through the
// segment and device transformations.
func (d *Driver) text(rec *displaylist.Record, st *gks.State) error {
	src := st.Fonts()
	if src == nil {
		return errNoFonts
	}
	style, err := st.NDCTextStyle()
	if err != nil {
		return err
	}
	x, y, err := st.WCToNDC(st.CurrentTransform, rec.F1[0], rec.F2[0])
	if err != nil {
		return err
	}
	p := d.newPen(1)
	p.fn = func(x, y float64) (float64, float64) {
		return d.xform.Apply(st.SegmentTransform(x, y))
	}
	if err := emul.Text(src, style, x, y, rec.Chars, p); err != nil {
		return err
	}
	d.paint(d.color(st.EffectiveTextColor(), st), d.clipBounds(st))
	return nil
}

func (d *Driver) fillArea(rec *displaylist.Record, st *gks.State) error {
	xs, ys, err := d.toDeviceAll(rec, st)
	if err != nil {
		return err
	}
	c := d.color(st.EffectiveFillColor(), st)
	clip := d.clipBounds(st)

	switch st.EffectiveInteriorStyle() {
	case gks.StyleHollow:
		p := d.newPen(1)
		p.MoveTo(xs[0], ys[0])
		for i := 1; i < len(xs); i++ {
			p.LineTo(xs[i], ys[i])
		}
		p.LineTo(xs[0], ys[0])
	case gks.StyleSolid:
		x, y := d.pixel(xs[0], ys[0])
		d.z.MoveTo(float32(x), float32(y))
		for i := 1; i < len(xs); i++ {
			x, y = d.pixel(xs[i], ys[i])
			d.z.LineTo(float32(x), float32(y))
		}
		d.z.ClosePath()
	case gks.StylePattern:
		pa, ok := gks.DefaultPattern(st.EffectiveStyleIndex())
		if !ok {
			pa, _ = gks.DefaultPattern(1)
		}
		clear(d.mask.Pix)
		emul.FillArea(xs, ys, 1, emul.EvenOdd, &patternCanvas{d: d, pattern: pa})
		d.composite(c, clip)
		return nil
	case gks.StyleHatch:
		emul.Hatch(xs, ys, st.EffectiveStyleIndex(), hatchSpacing, d.newPen(1))
	}
	d.paint(c, clip)
	return nil
}

// patternCanvas sets the mask pixels of fill spans where the pattern has
// a bit set. The pattern is anchored at the image origin.
type patternCanvas struct {
	d       *Driver
	pattern []int
	x, y    float64
}

func (p *patternCanvas) MoveTo(x, y float64) { p.x, p.y = x, y }

func (p *patternCanvas) LineTo(x, y float64) {
	px0, py := p.d.pixel(p.x, p.y)
	px1, _ := p.d.pixel(x, y)
	if px0 > px1 {
		px0, px1 = px1, px0
	}
	row := int(math.Floor(py))
	if row < 0 || row >= p.d.height {
		return
	}
	bits := p.pattern[1+row%p.pattern[0]]
	for col := max(round(px0), 0); col < min(round(px1), p.d.width); col++ {
		if bits&(0x80>>(col%8)) != 0 {
			p.d.mask.SetAlpha(col, row, color.Alpha{A: 0xff})
		}
	}
	p.x, p.y = x, y
}

// cellArray scales a grid of color indices, or of packed 0xAARRGGBB
// pixels for images, onto the rectangle given by the two corners of rec.
// The first row is drawn at the top.
func (d *Driver) cellArray(rec *displaylist.Record, st *gks.State, direct bool) error {
	x0, y0, err := d.toDevice(st, rec.F1[0], rec.F2[1])
	if err != nil {
		return err
	}
	x1, y1, err := d.toDevice(st, rec.F1[1], rec.F2[0])
	if err != nil {
		return err
	}
	px0, py0 := d.pixel(x0, y0)
	px1, py1 := d.pixel(x1, y1)
	dst := image.Rect(round(px0), round(py0), round(px1), round(py1))

	cells := image.NewNRGBA(image.Rect(0, 0, rec.DX, rec.DY))
	for j := range rec.DY {
		for i := range rec.DX {
			v := rec.Ints[j*rec.DimX+i]
			if direct {
				cells.SetNRGBA(i, j, color.NRGBA{
					R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: uint8(v >> 24),
				})
				continue
			}
			cells.SetNRGBA(i, j, d.color(v, st))
		}
	}
	clip := d.clipBounds(st)
	if clip.Empty() {
		return nil
	}
	target := d.img.SubImage(clip).(*image.RGBA)
	xdraw.NearestNeighbor.Scale(target, dst, cells, cells.Bounds(), xdraw.Over, nil)
	return nil
}

func round(v float64) int {
	return int(math.Round(v))
}
