package emul

import "math"

// Marker types. 1-5 are the standard ones, the negative types extensions.
const (
	MarkerDot           = 1
	MarkerPlus          = 2
	MarkerAsterisk      = 3
	MarkerCircle        = 4
	MarkerDiagonalCross = 5
	MarkerSolidCircle   = -1
	MarkerTriangleUp    = -2
	MarkerSolidTriUp    = -3
	MarkerTriangleDown  = -4
	MarkerSolidTriDown  = -5
	MarkerSquare        = -6
	MarkerSolidSquare   = -7
	MarkerBowtie        = -8
	MarkerSolidBowtie   = -9
	MarkerHourglass     = -10
	MarkerSolidHglass   = -11
	MarkerDiamond       = -12
	MarkerSolidDiamond  = -13
	MarkerStar          = -14
	MarkerSolidStar     = -15
	MarkerTriUpDown     = -16
	MarkerSolidTriRight = -17
	MarkerSolidTriLeft  = -18
	MarkerHollowPlus    = -19
	MarkerOMark         = -20
)

// ValidMarkerType reports whether mtype names a known marker type.
func ValidMarkerType(mtype int) bool {
	return mtype != 0 && mtype >= MarkerOMark && mtype <= MarkerDiagonalCross
}

type shapeKind uint8

const (
	shapeLine   shapeKind = iota // open polyline
	shapeHollow                  // closed outline
	shapeSolid                   // filled and outlined polygon
)

// shape is one part of a marker on a [-1, 1] grid.
type shape struct {
	kind shapeKind
	pts  []Point
}

var (
	circlePts   = regularPolygon(24, 1, 0)
	smallCircle = regularPolygon(16, 0.5, 0)
	starPts     = star()
	triUp       = []Point{{-1, -0.6}, {1, -0.6}, {0, 1}}
	triDown     = []Point{{-1, 0.6}, {0, -1}, {1, 0.6}}
	triRight    = []Point{{-0.6, -1}, {1, 0}, {-0.6, 1}}
	triLeft     = []Point{{0.6, -1}, {0.6, 1}, {-1, 0}}
	square      = []Point{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}}
	bowtie      = []Point{{-1, -1}, {1, 1}, {1, -1}, {-1, 1}}
	hourglass   = []Point{{-1, -1}, {1, -1}, {-1, 1}, {1, 1}}
	diamond     = []Point{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	hollowPlus  = []Point{
		{-0.3, -1}, {0.3, -1}, {0.3, -0.3}, {1, -0.3}, {1, 0.3}, {0.3, 0.3},
		{0.3, 1}, {-0.3, 1}, {-0.3, 0.3}, {-1, 0.3}, {-1, -0.3}, {-0.3, -0.3},
	}
)

// markerShapes is the fixed glyph table per marker type.
var markerShapes = map[int][]shape{
	MarkerDot:  {{shapeSolid, regularPolygon(8, 0.15, 0)}},
	MarkerPlus: {{shapeLine, []Point{{-1, 0}, {1, 0}}}, {shapeLine, []Point{{0, -1}, {0, 1}}}},
	MarkerAsterisk: {
		{shapeLine, []Point{{-1, 0}, {1, 0}}},
		{shapeLine, []Point{{-0.5, -0.866}, {0.5, 0.866}}},
		{shapeLine, []Point{{-0.5, 0.866}, {0.5, -0.866}}},
	},
	MarkerCircle:        {{shapeHollow, circlePts}},
	MarkerDiagonalCross: {{shapeLine, []Point{{-1, -1}, {1, 1}}}, {shapeLine, []Point{{-1, 1}, {1, -1}}}},
	MarkerSolidCircle:   {{shapeSolid, circlePts}},
	MarkerTriangleUp:    {{shapeHollow, triUp}},
	MarkerSolidTriUp:    {{shapeSolid, triUp}},
	MarkerTriangleDown:  {{shapeHollow, triDown}},
	MarkerSolidTriDown:  {{shapeSolid, triDown}},
	MarkerSquare:        {{shapeHollow, square}},
	MarkerSolidSquare:   {{shapeSolid, square}},
	MarkerBowtie:        {{shapeHollow, bowtie}},
	MarkerSolidBowtie:   {{shapeSolid, bowtie}},
	MarkerHourglass:     {{shapeHollow, hourglass}},
	MarkerSolidHglass:   {{shapeSolid, hourglass}},
	MarkerDiamond:       {{shapeHollow, diamond}},
	MarkerSolidDiamond:  {{shapeSolid, diamond}},
	MarkerStar:          {{shapeHollow, starPts}},
	MarkerSolidStar:     {{shapeSolid, starPts}},
	MarkerTriUpDown:     {{shapeHollow, triUp}, {shapeHollow, triDown}},
	MarkerSolidTriRight: {{shapeSolid, triRight}},
	MarkerSolidTriLeft:  {{shapeSolid, triLeft}},
	MarkerHollowPlus:    {{shapeHollow, hollowPlus}},
	MarkerOMark:         {{shapeHollow, circlePts}, {shapeHollow, smallCircle}},
}

func regularPolygon(n int, r, phase float64) []Point {
	pts := make([]Point, n)
	for i := range pts {
		a := phase + 2*math.Pi*float64(i)/float64(n)
		pts[i] = Point{r * math.Cos(a), r * math.Sin(a)}
	}
	return pts
}

func star() []Point {
	pts := make([]Point, 10)
	for i := range pts {
		r := 1.0
		if i%2 == 1 {
			r = 0.4
		}
		a := math.Pi/2 + math.Pi*float64(i)/5
		pts[i] = Point{r * math.Cos(a), r * math.Sin(a)}
	}
	return pts
}

// Polymarker calls m once per point, in order.
func Polymarker(xs, ys []float64, mtype int, m Marker) {
	n := min(len(xs), len(ys))
	for i := 0; i < n; i++ {
		m.MarkAt(xs[i], ys[i], mtype)
	}
}

// DrawMarker draws the glyph for mtype centered at (x, y) with the given
// overall size. Solid glyphs are filled with horizontal spans. Unknown
// types draw the dot marker.
func DrawMarker(c Canvas, x, y, size float64, mtype int) {
	shapes, ok := markerShapes[mtype]
	if !ok {
		shapes = markerShapes[MarkerDot]
	}
	r := size / 2
	for _, s := range shapes {
		pts := make([]Point, len(s.pts))
		for i, p := range s.pts {
			pts[i] = Point{x + p.X*r, y + p.Y*r}
		}
		if s.kind == shapeSolid {
			FillPolygons([][]Point{pts}, size/32, NonZero, c)
		}
		c.MoveTo(pts[0].X, pts[0].Y)
		for _, p := range pts[1:] {
			c.LineTo(p.X, p.Y)
		}
		if s.kind != shapeLine {
			c.LineTo(pts[0].X, pts[0].Y)
		}
	}
}
