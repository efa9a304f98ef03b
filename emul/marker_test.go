package emul

import (
	"slices"
	"testing"
)

func TestDrawMarkerPlus(t *testing.T) {
	var r recorder
	DrawMarker(&r, 5, 5, 2, MarkerPlus)
	want := []string{"M 4 5", "L 6 5", "M 5 4", "L 5 6"}
	if !slices.Equal(r.ops, want) {
		t.Errorf("ops = %v, want %v", r.ops, want)
	}
}

func TestDrawMarkerClosedShapes(t *testing.T) {
	tests := []struct {
		mtype int
		lines int
	}{
		{MarkerCircle, 24},
		{MarkerSquare, 4},
		{MarkerDiamond, 4},
		{MarkerTriangleUp, 3},
		{MarkerStar, 10},
	}
	for _, tt := range tests {
		var r recorder
		DrawMarker(&r, 0, 0, 2, tt.mtype)
		if r.n != tt.lines {
			t.Errorf("marker %d: %d lines, want %d", tt.mtype, r.n, tt.lines)
		}
		if r.ops[0][2:] != r.ops[len(r.ops)-1][2:] {
			t.Errorf("marker %d: outline not closed: %s ... %s", tt.mtype, r.ops[0], r.ops[len(r.ops)-1])
		}
	}
}

func TestDrawMarkerSolidFills(t *testing.T) {
	var hollow, solid recorder
	DrawMarker(&hollow, 0, 0, 4, MarkerSquare)
	DrawMarker(&solid, 0, 0, 4, MarkerSolidSquare)
	if solid.n <= hollow.n {
		t.Errorf("solid square drew %d lines, hollow %d; want more for solid", solid.n, hollow.n)
	}
}

func TestDrawMarkerUnknownIsDot(t *testing.T) {
	var dot, unknown recorder
	DrawMarker(&dot, 1, 1, 3, MarkerDot)
	DrawMarker(&unknown, 1, 1, 3, 99)
	if !slices.Equal(dot.ops, unknown.ops) {
		t.Error("unknown marker type did not draw a dot")
	}
}

func TestPolymarker(t *testing.T) {
	type mark struct {
		x, y  float64
		mtype int
	}
	var got []mark
	Polymarker([]float64{1, 2, 3}, []float64{4, 5}, MarkerAsterisk, MarkerFunc(func(x, y float64, mtype int) {
		got = append(got, mark{x, y, mtype})
	}))
	want := []mark{{1, 4, MarkerAsterisk}, {2, 5, MarkerAsterisk}}
	if !slices.Equal(got, want) {
		t.Errorf("marks = %v, want %v", got, want)
	}
}

func TestValidMarkerType(t *testing.T) {
	for mt := MarkerOMark; mt <= MarkerDiagonalCross; mt++ {
		if mt == 0 {
			continue
		}
		if !ValidMarkerType(mt) {
			t.Errorf("ValidMarkerType(%d) = false", mt)
		}
		if _, ok := markerShapes[mt]; !ok {
			t.Errorf("marker %d has no shape", mt)
		}
	}
	for _, mt := range []int{0, 6, -21} {
		if ValidMarkerType(mt) {
			t.Errorf("ValidMarkerType(%d) = true", mt)
		}
	}
}
