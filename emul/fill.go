package emul

import (
	"math"
	"slices"
)

// FillRule decides which scanline spans lie inside a polygon.
type FillRule uint8

const (
	// EvenOdd fills spans between odd and even crossings.
	EvenOdd FillRule = iota

	// NonZero fills spans where the winding number is not zero.
	NonZero
)

// Hatch styles.
const (
	HatchHorizontal    = 1
	HatchVertical      = 2
	HatchDiagonalUp    = 3
	HatchDiagonalDown  = 4
	HatchCross         = 5
	HatchDiagonalCross = 6
)

// hatchAngles lists the line directions, in degrees, per hatch style.
var hatchAngles = map[int][]float64{
	HatchHorizontal:    {0},
	HatchVertical:      {90},
	HatchDiagonalUp:    {45},
	HatchDiagonalDown:  {-45},
	HatchCross:         {0, 90},
	HatchDiagonalCross: {45, -45},
}

// defaultScanlines is the scanline count used when yres is not positive.
const defaultScanlines = 256

// maxScanlines bounds the scanlines of one scan; finer steps are widened.
const maxScanlines = 1 << 16

type edge struct {
	x0, y0, x1, y1 float64
	dir            int
}

// crossing is where a scanline meets an edge.
type crossing struct {
	x   float64
	dir int
}

// FillArea fills a polygon by emitting one horizontal line per scanline
// span. Scanlines are yres apart, starting half a step above the lowest
// vertex. The polygon is closed implicitly.
func FillArea(xs, ys []float64, yres float64, rule FillRule, c Canvas) {
	n := min(len(xs), len(ys))
	pts := make([]Point, n)
	for i := range pts {
		pts[i] = Point{xs[i], ys[i]}
	}
	FillPolygons([][]Point{pts}, yres, rule, c)
}

// FillPolygons fills the union of several closed contours, for example the
// outer and inner contours of a glyph.
func FillPolygons(polys [][]Point, yres float64, rule FillRule, c Canvas) {
	edges, ymin, ymax := buildEdges(polys)
	if len(edges) == 0 || ymax <= ymin {
		return
	}
	if yres <= 0 {
		yres = (ymax - ymin) / defaultScanlines
	}
	scan(edges, ymin+yres/2, ymax, yres, rule, c)
}

// Hatch fills a polygon with parallel lines spacing apart, in the
// directions of the given hatch style. Lines of all polygons hatched with
// the same spacing line up, since they are anchored at the origin.
func Hatch(xs, ys []float64, style int, spacing float64, c Canvas) {
	angles, ok := hatchAngles[style]
	if !ok || spacing <= 0 {
		return
	}
	n := min(len(xs), len(ys))
	for _, deg := range angles {
		sin, cos := math.Sincos(deg * math.Pi / 180)
		// Rotate the polygon so the hatch lines become horizontal.
		pts := make([]Point, n)
		for i := 0; i < n; i++ {
			pts[i] = Point{xs[i]*cos + ys[i]*sin, -xs[i]*sin + ys[i]*cos}
		}
		edges, ymin, ymax := buildEdges([][]Point{pts})
		if len(edges) == 0 {
			continue
		}
		back := transformCanvas{c: c, fn: func(x, y float64) (float64, float64) {
			return x*cos - y*sin, x*sin + y*cos
		}}
		start := math.Ceil(ymin/spacing) * spacing
		scan(edges, start, ymax, spacing, EvenOdd, back)
	}
}

func buildEdges(polys [][]Point) (edges []edge, ymin, ymax float64) {
	ymin, ymax = math.Inf(1), math.Inf(-1)
	for _, pts := range polys {
		n := len(pts)
		if n < 3 {
			continue
		}
		for i := 0; i < n; i++ {
			a, b := pts[i], pts[(i+1)%n]
			ymin = math.Min(ymin, a.Y)
			ymax = math.Max(ymax, a.Y)
			if a.Y == b.Y {
				continue
			}
			dir := 1
			if b.Y < a.Y {
				dir = -1
			}
			edges = append(edges, edge{a.X, a.Y, b.X, b.Y, dir})
		}
	}
	return edges, ymin, ymax
}

// scan walks scanlines from y0 while y < ymax, emitting inside spans.
// Empty spans, where a scanline touches a vertex, are dropped.
func scan(edges []edge, y0, ymax, step float64, rule FillRule, c Canvas) {
	height := ymax - y0
	if !(step > 0) || !(height > 0) || math.IsInf(height, 0) {
		return
	}
	n := math.Ceil(height / step)
	if n > maxScanlines {
		n = maxScanlines
		step = height / maxScanlines
	}
	xs := make([]crossing, 0, 16)
	for i := 0; i < int(n); i++ {
		y := y0 + float64(i)*step
		if y >= ymax {
			break
		}
		xs = xs[:0]
		for _, e := range edges {
			lo, hi := e.y0, e.y1
			if lo > hi {
				lo, hi = hi, lo
			}
			if y < lo || y >= hi {
				continue
			}
			t := (y - e.y0) / (e.y1 - e.y0)
			xs = append(xs, crossing{x: e.x0 + t*(e.x1-e.x0), dir: e.dir})
		}
		slices.SortFunc(xs, func(a, b crossing) int {
			switch {
			case a.x < b.x:
				return -1
			case a.x > b.x:
				return 1
			}
			return 0
		})
		emitSpans(xs, y, rule, c)
	}
}

func emitSpans(xs []crossing, y float64, rule FillRule, c Canvas) {
	switch rule {
	case NonZero:
		winding := 0
		var start float64
		for _, cr := range xs {
			prev := winding
			winding += cr.dir
			if prev == 0 && winding != 0 {
				start = cr.x
			} else if prev != 0 && winding == 0 && cr.x > start {
				c.MoveTo(start, y)
				c.LineTo(cr.x, y)
			}
		}
	default:
		for i := 0; i+1 < len(xs); i += 2 {
			if xs[i+1].x <= xs[i].x {
				continue
			}
			c.MoveTo(xs[i].x, y)
			c.LineTo(xs[i+1].x, y)
		}
	}
}
