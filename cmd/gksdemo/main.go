// Command gksdemo draws a test picture to a PNG image and a metafile.
//
// Settings come from an optional TOML file and GKS_* environment
// variables:
//
//	gksdemo -config gks.toml -output demo.png -metafile demo.gkdl
package main

import (
	"flag"
	"log"
	"log/slog"
	"math"
	"os"
	"strconv"

	"github.com/gogpu/gks"
	"github.com/gogpu/gks/driver/metafile"
	"github.com/gogpu/gks/driver/raster"
	"github.com/gogpu/gks/emul"
)

func main() {
	var (
		config  = flag.String("config", "", "TOML configuration file")
		output  = flag.String("output", "demo.png", "PNG output file")
		mf      = flag.String("metafile", "demo.gkdl", "metafile output file, empty to skip")
		verbose = flag.Bool("v", false, "log kernel activity to stderr")
	)
	flag.Parse()

	if *verbose {
		gks.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	cfg := &gks.Config{}
	if *config != "" {
		var err error
		if cfg, err = gks.LoadConfigFile(*config); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}
	if cfg.WorkstationType == "" {
		cfg.WorkstationType = strconv.Itoa(raster.TypePNG)
	}
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		log.Fatalf("Invalid environment: %v", err)
	}

	k := gks.New(gks.WithConfig(cfg), gks.WithErrorHandler(func(e *gks.Error) {
		log.Printf("gks error: %v", e)
	}))
	if err := run(k, *output, *mf); err != nil {
		log.Fatalf("Demo failed: %v", err)
	}
	log.Printf("Demo saved to %s", *output)
}

func run(k *gks.Kernel, output, mf string) error {
	if err := k.Open(); err != nil {
		return err
	}
	if err := k.OpenWorkstation(1, output, 0); err != nil {
		return err
	}
	if err := k.ActivateWorkstation(1); err != nil {
		return err
	}
	if mf != "" {
		if err := k.OpenWorkstation(2, mf, metafile.TypeMO); err != nil {
			return err
		}
		if err := k.ActivateWorkstation(2); err != nil {
			return err
		}
	}

	if err := k.SetWindow(1, gks.Rect{XMin: 0, XMax: 100, YMin: 0, YMax: 100}); err != nil {
		return err
	}
	if err := k.SetViewport(1, gks.Rect{XMin: 0.05, XMax: 0.95, YMin: 0.05, YMax: 0.95}); err != nil {
		return err
	}
	if err := k.SelectTransform(1); err != nil {
		return err
	}

	drawLines(k)
	drawMarkers(k)
	drawFills(k)
	drawText(k)
	drawCells(k)
	if err := drawSegment(k); err != nil {
		return err
	}

	for _, id := range k.Workstations() {
		if err := k.CloseWorkstation(id); err != nil {
			return err
		}
	}
	return k.Close()
}

// drawLines draws one polyline per line type with growing width.
func drawLines(k *gks.Kernel) {
	types := []int{
		emul.LineSolid, emul.LineDashed, emul.LineDotted, emul.LineDashDotted,
		emul.LineLongDash, emul.LineSpacedDot, emul.LineTripleDot,
	}
	for i, lt := range types {
		y := 95 - float64(i)*4
		_ = k.SetLineType(lt)
		_ = k.SetLineWidth(1 + float64(i)/2)
		_ = k.SetLineColorIndex(1 + i%7)
		_ = k.Polyline([]float64{5, 25, 35, 45}, []float64{y, y, y - 2, y})
	}
	_ = k.SetLineType(emul.LineSolid)
	_ = k.SetLineWidth(1)
}

// drawMarkers draws a row of every standard and a few extended markers.
func drawMarkers(k *gks.Kernel) {
	types := []int{
		emul.MarkerDot, emul.MarkerPlus, emul.MarkerAsterisk, emul.MarkerCircle,
		emul.MarkerDiagonalCross, emul.MarkerSolidCircle, emul.MarkerTriangleUp,
		emul.MarkerSolidSquare, emul.MarkerSolidDiamond, emul.MarkerSolidStar,
	}
	_ = k.SetMarkerSize(2)
	_ = k.SetMarkerColorIndex(4)
	for i, mt := range types {
		_ = k.SetMarkerType(mt)
		_ = k.Polymarker([]float64{55 + float64(i)*4.5}, []float64{92})
	}
}

// drawFills draws a star in each interior style.
func drawFills(k *gks.Kernel) {
	styles := []struct{ interior, index, color int }{
		{gks.StyleHollow, 1, 1},
		{gks.StyleSolid, 1, 2},
		{gks.StylePattern, 2, 3},
		{gks.StyleHatch, emul.HatchCross, 4},
	}
	for i, s := range styles {
		_ = k.SetFillInteriorStyle(s.interior)
		_ = k.SetFillStyleIndex(s.index)
		_ = k.SetFillColorIndex(s.color)
		xs, ys := star(15+float64(i)*23, 55, 10, 5)
		_ = k.FillArea(xs, ys)
	}
}

func star(cx, cy, outer, inner float64) (xs, ys []float64) {
	const points = 5
	for i := range points * 2 {
		r := outer
		if i%2 == 1 {
			r = inner
		}
		a := float64(i)*math.Pi/points + math.Pi/2
		xs = append(xs, cx+r*math.Cos(a))
		ys = append(ys, cy+r*math.Sin(a))
	}
	return xs, ys
}

// drawText shows alignment, rotation and expansion.
func drawText(k *gks.Kernel) {
	_ = k.SetCharHeight(3)
	_ = k.SetTextColorIndex(1)
	_ = k.SetTextAlign(emul.HAlignCenter, emul.VAlignHalf)
	_ = k.Text(50, 38, "Graphical Kernel System")

	_ = k.SetCharHeight(2)
	_ = k.SetTextAlign(emul.HAlignLeft, emul.VAlignBase)
	_ = k.SetCharUp(-1, 1)
	_ = k.Text(5, 5, "rotated")
	_ = k.SetCharUp(0, 1)
	_ = k.SetCharExpansion(1.5)
	_ = k.Text(60, 5, "wide")
	_ = k.SetCharExpansion(1)
}

// drawCells draws an 8x8 cell array of the basic colors.
func drawCells(k *gks.Kernel) {
	const n = 8
	colors := make([]int, n*n)
	for i := range colors {
		colors[i] = (i/n + i%n) % 8
	}
	_ = k.CellArray(gks.Rect{XMin: 70, XMax: 95, YMin: 12, YMax: 30}, n, n, n, colors)
}

// drawSegment records a triangle in a segment and copies it, rotated about
// its center and shifted right, onto the image.
func drawSegment(k *gks.Kernel) error {
	if err := k.CreateSegment(1); err != nil {
		return err
	}
	_ = k.SetFillInteriorStyle(gks.StyleSolid)
	_ = k.SetFillColorIndex(6)
	_ = k.FillArea([]float64{10, 30, 20}, []float64{12, 12, 30})
	if err := k.CloseSegment(); err != nil {
		return err
	}

	// The triangle's center, (20, 18) in world coordinates, in NDC.
	m, err := k.EvalTransformMatrix(gks.Point{X: 20, Y: 18}, gks.Point{X: 25}, math.Pi/6, gks.Point{X: 1, Y: 1}, gks.CoordWC)
	if err != nil {
		return err
	}
	if err := k.SetSegmentTransform(1, m); err != nil {
		return err
	}
	return k.CopySegment(1, 1)
}
