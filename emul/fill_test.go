package emul

import (
	"math"
	"testing"
	"time"
)

func TestFillAreaSquare(t *testing.T) {
	for _, rule := range []FillRule{EvenOdd, NonZero} {
		var s spans
		FillArea([]float64{0, 10, 10, 0}, []float64{0, 0, 10, 10}, 2, rule, &s)
		if len(s.spans) != 5 {
			t.Fatalf("rule %d: got %d spans, want 5", rule, len(s.spans))
		}
		for i, sp := range s.spans {
			wantY := 1 + 2*float64(i)
			if sp[0].Y != wantY || sp[1].Y != wantY {
				t.Errorf("rule %d: span %d at y %g..%g, want %g", rule, i, sp[0].Y, sp[1].Y, wantY)
			}
			if sp[0].X != 0 || sp[1].X != 10 {
				t.Errorf("rule %d: span %d covers [%g, %g], want [0, 10]", rule, i, sp[0].X, sp[1].X)
			}
		}
	}
}

func TestFillPolygonsWindingRules(t *testing.T) {
	a := []Point{{0, 0}, {10, 0}, {10, 10}, {0, 10}}
	b := []Point{{5, 0}, {15, 0}, {15, 10}, {5, 10}}

	tests := []struct {
		rule FillRule
		want [][2]float64
	}{
		{EvenOdd, [][2]float64{{0, 5}, {10, 15}}},
		{NonZero, [][2]float64{{0, 15}}},
	}
	for _, tt := range tests {
		var s spans
		FillPolygons([][]Point{a, b}, 10, tt.rule, &s)
		if len(s.spans) != len(tt.want) {
			t.Fatalf("rule %d: got %d spans, want %d", tt.rule, len(s.spans), len(tt.want))
		}
		for i, w := range tt.want {
			if got := [2]float64{s.spans[i][0].X, s.spans[i][1].X}; got != w {
				t.Errorf("rule %d: span %d = %v, want %v", tt.rule, i, got, w)
			}
		}
	}
}

func TestFillAreaDegenerate(t *testing.T) {
	tests := []struct {
		name   string
		xs, ys []float64
	}{
		{"empty", nil, nil},
		{"two points", []float64{0, 1}, []float64{0, 1}},
		{"flat", []float64{0, 1, 2}, []float64{3, 3, 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s spans
			FillArea(tt.xs, tt.ys, 0, EvenOdd, &s)
			if len(s.spans) != 0 {
				t.Errorf("got %d spans, want none", len(s.spans))
			}
		})
	}
}

func TestHatchHorizontal(t *testing.T) {
	var s spans
	Hatch([]float64{0, 10, 10, 0}, []float64{0, 0, 10, 10}, HatchHorizontal, 2, &s)
	if len(s.spans) != 5 {
		t.Fatalf("got %d hatch lines, want 5", len(s.spans))
	}
	for i, sp := range s.spans {
		if sp[0].Y != sp[1].Y || sp[0].Y != 2*float64(i) {
			t.Errorf("line %d not horizontal at y=%g: %v", i, 2*float64(i), sp)
		}
	}
}

func TestHatchDirections(t *testing.T) {
	tests := []struct {
		style  int
		angles []float64
	}{
		{HatchVertical, []float64{90}},
		{HatchDiagonalUp, []float64{45}},
		{HatchDiagonalDown, []float64{-45}},
		{HatchCross, []float64{0, 90}},
		{HatchDiagonalCross, []float64{45, -45}},
	}
	for _, tt := range tests {
		var s spans
		Hatch([]float64{0, 10, 10, 0}, []float64{0, 0, 10, 10}, tt.style, 1, &s)
		if len(s.spans) == 0 {
			t.Errorf("style %d: no hatch lines", tt.style)
			continue
		}
		seen := map[float64]bool{}
		for _, sp := range s.spans {
			if math.Hypot(sp[1].X-sp[0].X, sp[1].Y-sp[0].Y) < 1e-9 {
				continue
			}
			deg := math.Atan2(sp[1].Y-sp[0].Y, sp[1].X-sp[0].X) * 180 / math.Pi
			deg = math.Round(deg)
			// Lines may run either way along their direction.
			if deg <= -90 {
				deg += 180
			} else if deg > 90 {
				deg -= 180
			}
			seen[deg] = true
			for _, p := range sp {
				if p.X < -1e-9 || p.X > 10+1e-9 || p.Y < -1e-9 || p.Y > 10+1e-9 {
					t.Fatalf("style %d: point %v outside the polygon", tt.style, p)
				}
			}
		}
		for _, a := range tt.angles {
			if a == -90 {
				a = 90
			}
			if !seen[a] {
				t.Errorf("style %d: no lines at %g degrees, saw %v", tt.style, a, seen)
			}
		}
		if len(seen) != len(tt.angles) {
			t.Errorf("style %d: saw directions %v, want %v", tt.style, seen, tt.angles)
		}
	}
}

func TestHatchUnknownStyle(t *testing.T) {
	var s spans
	Hatch([]float64{0, 10, 10, 0}, []float64{0, 0, 10, 10}, 9, 1, &s)
	Hatch([]float64{0, 10, 10, 0}, []float64{0, 0, 10, 10}, HatchCross, 0, &s)
	if len(s.spans) != 0 {
		t.Errorf("got %d lines, want none", len(s.spans))
	}
}

func TestFillAreaFarFromOrigin(t *testing.T) {
	var s spans
	done := make(chan struct{})
	go func() {
		defer close(done)
		FillArea([]float64{0, 10, 10, 0}, []float64{1e17, 1e17, 1e17 + 64, 1e17 + 64}, 0, EvenOdd, &s)
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("FillArea did not return")
	}
	if len(s.spans) == 0 || len(s.spans) > defaultScanlines {
		t.Errorf("got %d spans, want 1..%d", len(s.spans), defaultScanlines)
	}
}

func TestFillAreaScanlineLimit(t *testing.T) {
	var s spans
	FillArea([]float64{0, 10, 10, 0}, []float64{0, 0, 10, 10}, 1e-9, EvenOdd, &s)
	if len(s.spans) != maxScanlines {
		t.Errorf("got %d spans, want %d", len(s.spans), maxScanlines)
	}

	s = spans{}
	Hatch([]float64{0, 10, 10, 0}, []float64{0, 0, 10, 10}, HatchHorizontal, 1e-12, &s)
	if len(s.spans) > maxScanlines {
		t.Errorf("hatch emitted %d lines, want at most %d", len(s.spans), maxScanlines)
	}
}
