package raster

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"

	"golang.org/x/image/vector"

	"github.com/gogpu/gks"
	"github.com/gogpu/gks/displaylist"
)

// Driver draws output primitives into an RGBA image. One device unit is
// one pixel; device y grows upwards.
type Driver struct {
	width, height int

	img  *image.RGBA
	mask *image.Alpha
	z    *vector.Rasterizer

	window, viewport gks.Rect
	xform            gks.DeviceTransform

	// colors holds representations set on this workstation.
	colors map[int]gks.RGB
	path   string
}

// New returns a driver for a width x height image.
func New(width, height int) *Driver {
	d := &Driver{
		width:  width,
		height: height,
		img:    image.NewRGBA(image.Rect(0, 0, width, height)),
		mask:   image.NewAlpha(image.Rect(0, 0, width, height)),
		z:      vector.NewRasterizer(width, height),
		window: gks.UnitSquare,
		colors: make(map[int]gks.RGB),
	}
	d.viewport = gks.Rect{XMax: float64(width), YMax: float64(height)}
	d.xform = gks.NewDeviceTransform(d.window, d.viewport)
	d.clear()
	return d
}

// DisplaySize implements gks.DisplaySizer.
func (d *Driver) DisplaySize() (width, height float64) {
	return float64(d.width), float64(d.height)
}

// Image returns the image drawn so far.
func (d *Driver) Image() *image.RGBA {
	return d.img
}

// Call implements gks.Driver.
func (d *Driver) Call(op gks.Opcode, rec *displaylist.Record, st *gks.State) error {
	switch op {
	case gks.OpOpenWS:
		d.path = string(rec.Chars)
		d.clear()
	case gks.OpClearWS, gks.OpRedrawSegOnWS:
		d.clear()
	case gks.OpUpdateWS, gks.OpCloseWS:
		return d.save()
	case gks.OpSetColorRep:
		d.colors[rec.Ints[1]] = gks.RGB{R: rec.F1[0], G: rec.F1[1], B: rec.F1[2]}
	case gks.OpSetWSWindow:
		if r, ok := gks.RecordRect(rec); ok {
			d.window = r
			d.xform = gks.NewDeviceTransform(d.window, d.viewport)
		}
	case gks.OpSetWSViewport:
		if r, ok := gks.RecordRect(rec); ok {
			d.viewport = r
			d.xform = gks.NewDeviceTransform(d.window, d.viewport)
		}
	case gks.OpPolyline:
		return d.polyline(rec, st)
	case gks.OpPolymarker:
		return d.polymarker(rec, st)
	case gks.OpText:
		return d.text(rec, st)
	case gks.OpFillArea:
		return d.fillArea(rec, st)
	case gks.OpCellArray:
		return d.cellArray(rec, st, false)
	case gks.OpDrawImage:
		return d.cellArray(rec, st, true)
	}
	return nil
}

func (d *Driver) clear() {
	draw.Draw(d.img, d.img.Bounds(), image.White, image.Point{}, draw.Src)
}

func (d *Driver) save() error {
	if d.path == "" {
		return nil
	}
	f, err := os.Create(d.path) //nolint:gosec // path comes from the caller
	if err != nil {
		return fmt.Errorf("raster: %w", err)
	}
	if err := png.Encode(f, d.img); err != nil {
		_ = f.Close()
		return fmt.Errorf("raster: encoding %s: %w", d.path, err)
	}
	gks.Logger().Debug("raster: image written", "path", d.path)
	return f.Close()
}

// color returns index ci as an image color with the state's opacity.
// Indices without a representation draw black.
func (d *Driver) color(ci int, st *gks.State) color.NRGBA {
	c, ok := d.colors[ci]
	if !ok {
		c, ok = gks.DefaultColorRep(ci)
	}
	if !ok {
		c = gks.RGB{}
	}
	nc := color.NRGBAModel.Convert(c).(color.NRGBA)
	nc.A = uint8(max(0, min(1, st.Alpha))*255 + 0.5)
	return nc
}

// toDevice maps a world coordinate to device units, applying the
// coordinate transformation first.
func (d *Driver) toDevice(st *gks.State, x, y float64) (float64, float64, error) {
	nx, ny, err := st.ToNDC(st.CoordMatrix.TransformPoint(x, y))
	if err != nil {
		return 0, 0, err
	}
	dx, dy := d.xform.Apply(nx, ny)
	return dx, dy, nil
}

// toDeviceAll maps the point arrays of rec to device units.
func (d *Driver) toDeviceAll(rec *displaylist.Record, st *gks.State) (xs, ys []float64, err error) {
	n := min(len(rec.F1), len(rec.F2))
	xs, ys = make([]float64, n), make([]float64, n)
	for i := range n {
		if xs[i], ys[i], err = d.toDevice(st, rec.F1[i], rec.F2[i]); err != nil {
			return nil, nil, err
		}
	}
	return xs, ys, nil
}

// pixel converts device units to image coordinates.
func (d *Driver) pixel(x, y float64) (float64, float64) {
	return x, float64(d.height) - y
}

// clipBounds returns the pixel rectangle output is limited to: the
// workstation window, narrowed to the clipping rectangle when clipping
// is on.
func (d *Driver) clipBounds(st *gks.State) image.Rectangle {
	r := d.window
	if clip, on := st.ClipRect(); on {
		r = gks.Rect{
			XMin: max(r.XMin, clip.XMin), XMax: min(r.XMax, clip.XMax),
			YMin: max(r.YMin, clip.YMin), YMax: min(r.YMax, clip.YMax),
		}
		if !r.Valid() {
			return image.Rectangle{}
		}
	}
	return d.deviceRect(r).Intersect(d.img.Bounds())
}

// deviceRect converts an NDC rectangle to the pixels it covers.
func (d *Driver) deviceRect(r gks.Rect) image.Rectangle {
	x0, y0 := d.pixel(d.xform.Apply(r.XMin, r.YMin))
	x1, y1 := d.pixel(d.xform.Apply(r.XMax, r.YMax))
	return image.Rect(round(x0), round(y0), round(x1), round(y1))
}

// paint composites the shapes accumulated in the rasterizer onto the image
// and resets the rasterizer.
func (d *Driver) paint(c color.NRGBA, clip image.Rectangle) {
	clear(d.mask.Pix)
	d.z.Draw(d.mask, d.mask.Bounds(), image.Opaque, image.Point{})
	d.z.Reset(d.width, d.height)
	d.composite(c, clip)
}

// composite draws c through the mask.
func (d *Driver) composite(c color.NRGBA, clip image.Rectangle) {
	if clip.Empty() {
		return
	}
	draw.DrawMask(d.img, clip, image.NewUniform(c), image.Point{}, d.mask, clip.Min, draw.Over)
}
