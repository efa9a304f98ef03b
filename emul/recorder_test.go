package emul

import (
	"fmt"
	"math"
)

// recorder records pen movements as "M x y" and "L x y" strings.
type recorder struct {
	ops []string
	n   int
}

func (r *recorder) MoveTo(x, y float64) {
	r.ops = append(r.ops, fmt.Sprintf("M %g %g", round(x), round(y)))
}

func (r *recorder) LineTo(x, y float64) {
	r.ops = append(r.ops, fmt.Sprintf("L %g %g", round(x), round(y)))
	r.n++
}

func round(v float64) float64 {
	r := math.Round(v*1e6) / 1e6
	if r == 0 {
		return 0
	}
	return r
}

// spans collects horizontal segments emitted as MoveTo/LineTo pairs.
type spans struct {
	last  Point
	spans [][2]Point
}

func (s *spans) MoveTo(x, y float64) { s.last = Point{x, y} }

func (s *spans) LineTo(x, y float64) {
	s.spans = append(s.spans, [2]Point{s.last, {x, y}})
	s.last = Point{x, y}
}

func (s *spans) length() float64 {
	total := 0.0
	for _, sp := range s.spans {
		total += math.Hypot(sp[1].X-sp[0].X, sp[1].Y-sp[0].Y)
	}
	return total
}
