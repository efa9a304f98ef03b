package raster_test

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/gogpu/gks"
	"github.com/gogpu/gks/driver/raster"
	"github.com/gogpu/gks/emul"
)

var (
	white = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	black = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	red   = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	green = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	blue  = color.RGBA{R: 0, G: 0, B: 255, A: 255}
	cyan  = color.RGBA{R: 0, G: 255, B: 255, A: 255}
)

func must(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatal(err)
	}
}

// openPNG opens and activates a 500x500 PNG workstation. NDC maps onto
// the whole image, so NDC 0.5 is pixel 250.
func openPNG(t *testing.T, path string) (*gks.Kernel, *raster.Driver) {
	t.Helper()
	k := gks.New()
	must(t, k.Open())
	must(t, k.OpenWorkstation(1, path, raster.TypePNG))
	must(t, k.ActivateWorkstation(1))
	ws, ok := k.Workstation(1)
	if !ok {
		t.Fatal("workstation 1 not open")
	}
	d, ok := ws.Driver.(*raster.Driver)
	if !ok {
		t.Fatalf("driver is %T", ws.Driver)
	}
	return k, d
}

func square(x0, y0, x1, y1 float64) (xs, ys []float64) {
	return []float64{x0, x1, x1, x0}, []float64{y0, y0, y1, y1}
}

type pixel struct {
	x, y int
	want color.RGBA
}

func checkPixels(t *testing.T, img *image.RGBA, pixels ...pixel) {
	t.Helper()
	for _, p := range pixels {
		if got := img.RGBAAt(p.x, p.y); got != p.want {
			t.Errorf("pixel (%d, %d) = %v, want %v", p.x, p.y, got, p.want)
		}
	}
}

func near(a, b uint8, delta int) bool {
	d := int(a) - int(b)
	return d >= -delta && d <= delta
}

func TestRegistered(t *testing.T) {
	wtype, err := gks.ParseWorkstationType("png")
	must(t, err)
	if wtype != raster.TypePNG {
		t.Errorf("ParseWorkstationType(\"png\") = %d, want %d", wtype, raster.TypePNG)
	}

	_, d := openPNG(t, "")
	if w, h := d.DisplaySize(); w != raster.DefaultSize || h != raster.DefaultSize {
		t.Errorf("DisplaySize() = %g, %g", w, h)
	}
	checkPixels(t, d.Image(), pixel{10, 10, white})
}

func TestPolyline(t *testing.T) {
	k, d := openPNG(t, "")
	must(t, k.SetLineWidth(4))
	must(t, k.SetLineColorIndex(2))
	must(t, k.Polyline([]float64{0.1, 0.9}, []float64{0.5, 0.5}))

	checkPixels(t, d.Image(),
		pixel{250, 250, red},
		pixel{100, 249, red},
		pixel{250, 240, white},
		pixel{20, 250, white}, // outside the end points
	)
}

func TestDashedPolyline(t *testing.T) {
	k, d := openPNG(t, "")
	must(t, k.SetLineType(emul.LineDashed))
	must(t, k.SetLineWidth(4))
	must(t, k.Polyline([]float64{0, 1}, []float64{0.5, 0.5}))

	// Dashes are 32 pixels on and 24 off at width 4.
	checkPixels(t, d.Image(),
		pixel{16, 250, black},
		pixel{44, 250, white},
		pixel{70, 250, black},
	)
}

func TestSolidFill(t *testing.T) {
	k, d := openPNG(t, "")
	must(t, k.SetFillInteriorStyle(gks.StyleSolid))
	must(t, k.SetFillColorIndex(3))
	must(t, k.FillArea(square(0.2, 0.2, 0.4, 0.4)))

	// Pixel rows grow downwards.
	checkPixels(t, d.Image(),
		pixel{150, 350, green},
		pixel{150, 150, white},
		pixel{50, 50, white},
	)
}

func TestHollowAndHatchFill(t *testing.T) {
	k, d := openPNG(t, "")
	must(t, k.FillArea(square(0.2, 0.2, 0.8, 0.8)))
	img := d.Image()
	checkPixels(t, img, pixel{250, 250, white})
	if img.RGBAAt(100, 250) == white {
		t.Error("hollow fill drew no outline")
	}

	must(t, k.ClearWorkstation(1, 0))
	must(t, k.SetFillInteriorStyle(gks.StyleHatch))
	must(t, k.SetFillStyleIndex(emul.HatchVertical))
	must(t, k.FillArea(square(0.2, 0.2, 0.8, 0.8)))
	if n := inked(img, image.Rect(100, 250, 400, 251)); n <= 20 || n >= 200 {
		t.Errorf("hatch inked %d of 300 pixels", n)
	}
}

func TestPatternFill(t *testing.T) {
	k, d := openPNG(t, "")
	must(t, k.SetFillInteriorStyle(gks.StylePattern))
	must(t, k.SetFillStyleIndex(4)) // vertical stripes, 0xaa
	must(t, k.FillArea(square(0.2, 0.2, 0.8, 0.8)))

	checkPixels(t, d.Image(),
		pixel{240, 250, black},
		pixel{241, 250, white},
		pixel{40, 250, white},
	)
}

func TestClipping(t *testing.T) {
	k, d := openPNG(t, "")
	r := gks.Rect{XMin: 0.25, XMax: 0.75, YMin: 0.25, YMax: 0.75}
	must(t, k.SetWindow(1, r))
	must(t, k.SetViewport(1, r))
	must(t, k.SelectTransform(1))
	must(t, k.SetFillInteriorStyle(gks.StyleSolid))
	must(t, k.FillArea(square(0, 0, 1, 1)))

	img := d.Image()
	checkPixels(t, img, pixel{250, 250, black}, pixel{50, 250, white})

	must(t, k.SetClipping(false))
	must(t, k.FillArea(square(0, 0, 1, 1)))
	checkPixels(t, img, pixel{50, 250, black})
}

func TestWorkstationWindowZoom(t *testing.T) {
	k, d := openPNG(t, "")
	must(t, k.SetWorkstationWindow(1, gks.Rect{XMax: 0.5, YMax: 0.5}))
	must(t, k.SetFillInteriorStyle(gks.StyleSolid))
	must(t, k.FillArea(square(0.4, 0.4, 0.6, 0.6)))

	checkPixels(t, d.Image(), pixel{450, 50, black}, pixel{100, 450, white})
}

func TestColorRepresentationAndTransparency(t *testing.T) {
	k, d := openPNG(t, "")
	must(t, k.SetColorRep(1, 20, gks.RGB{B: 1}))
	must(t, k.SetFillInteriorStyle(gks.StyleSolid))
	must(t, k.SetFillColorIndex(20))
	must(t, k.FillArea(square(0, 0, 0.5, 0.5)))
	img := d.Image()
	checkPixels(t, img, pixel{100, 400, blue})

	must(t, k.SetTransparency(0.5))
	must(t, k.SetFillColorIndex(2))
	must(t, k.FillArea(square(0.5, 0.5, 1, 1)))
	if c := img.RGBAAt(400, 100); c.R != 255 || !near(c.G, 127, 2) || !near(c.B, 127, 2) {
		t.Errorf("half transparent red over white = %v", c)
	}
}

func TestCellArray(t *testing.T) {
	k, d := openPNG(t, "")
	must(t, k.CellArray(gks.UnitSquare, 2, 2, 2, []int{2, 3, 4, 5}))

	checkPixels(t, d.Image(),
		pixel{125, 125, red},
		pixel{375, 125, green},
		pixel{125, 375, blue},
		pixel{375, 375, cyan},
	)
}

func TestDrawImage(t *testing.T) {
	k, d := openPNG(t, "")
	pixels := []int{0x7f00ff00, 0x000000ff}
	must(t, k.DrawImage(gks.Rect{XMax: 1, YMin: 0.5, YMax: 1}, 2, 1, pixels))

	img := d.Image()
	if c := img.RGBAAt(125, 125); !near(c.R, 128, 2) || c.G != 255 {
		t.Errorf("half transparent green over white = %v", c)
	}
	// The second pixel is fully transparent.
	checkPixels(t, img, pixel{375, 125, white}, pixel{125, 375, white})
}

func TestMarkersAndText(t *testing.T) {
	k, d := openPNG(t, "")
	must(t, k.SetMarkerType(emul.MarkerSolidSquare))
	must(t, k.SetMarkerSize(4))
	must(t, k.Polymarker([]float64{0.5}, []float64{0.5}))
	img := d.Image()
	checkPixels(t, img, pixel{250, 250, black}, pixel{250, 280, white})

	must(t, k.SetCharHeight(0.1))
	must(t, k.Text(0.1, 0.1, "H"))
	if inked(img, image.Rect(50, 350, 120, 450)) == 0 {
		t.Error("text drew nothing")
	}
}

func TestSegmentRedraw(t *testing.T) {
	k, d := openPNG(t, "")
	must(t, k.CreateSegment(1))
	must(t, k.SetLineWidth(4))
	must(t, k.Polyline([]float64{0.1, 0.9}, []float64{0.5, 0.5}))
	must(t, k.CloseSegment())
	img := d.Image()
	if img.RGBAAt(250, 250) != black {
		t.Fatal("segment not drawn while captured")
	}

	must(t, k.ClearWorkstation(1, 0))
	checkPixels(t, img, pixel{250, 250, white})

	must(t, k.SetSegmentTransform(1, gks.Translate(0, 0.2)))
	must(t, k.RedrawSegments(1))
	checkPixels(t, img, pixel{250, 250, white}, pixel{250, 150, black})
}

func TestWritesPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.png")
	k, _ := openPNG(t, path)
	must(t, k.SetFillInteriorStyle(gks.StyleSolid))
	must(t, k.SetFillColorIndex(2))
	must(t, k.FillArea(square(0, 0, 1, 1)))
	must(t, k.CloseWorkstation(1))

	f, err := os.Open(path)
	must(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	must(t, err)
	if want := image.Rect(0, 0, raster.DefaultSize, raster.DefaultSize); img.Bounds() != want {
		t.Errorf("Bounds() = %v, want %v", img.Bounds(), want)
	}
	if r, g, b, _ := img.At(250, 250).RGBA(); r != 0xffff || g != 0 || b != 0 {
		t.Errorf("center = %#x %#x %#x, want red", r, g, b)
	}
}

func TestUnwritablePathLogsAndContinues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "out.png")
	k, _ := openPNG(t, path)
	if err := k.UpdateWorkstation(1, 0); err == nil {
		t.Error("UpdateWorkstation to a missing directory succeeded")
	}
	if err := k.Polyline([]float64{0, 1}, []float64{0, 1}); err != nil {
		t.Errorf("Polyline after failed update: %v", err)
	}
}

func inked(img *image.RGBA, r image.Rectangle) int {
	n := 0
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if img.RGBAAt(x, y) != white {
				n++
			}
		}
	}
	return n
}
