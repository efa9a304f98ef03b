package emul

import (
	"slices"
	"testing"
)

func TestPolylineDashPattern(t *testing.T) {
	tests := []struct {
		name    string
		xs, ys  []float64
		pattern []float64
		want    []string
	}{
		{
			name:    "on 4 off 2 over 10",
			xs:      []float64{0, 10},
			ys:      []float64{0, 0},
			pattern: []float64{4, 2},
			want:    []string{"M 0 0", "L 4 0", "M 6 0", "L 10 0"},
		},
		{
			name:    "solid",
			xs:      []float64{0, 10},
			ys:      []float64{0, 0},
			pattern: nil,
			want:    []string{"M 0 0", "L 10 0"},
		},
		{
			name:    "phase carries across vertices",
			xs:      []float64{0, 3, 3},
			ys:      []float64{0, 0, 5},
			pattern: []float64{4, 2},
			want:    []string{"M 0 0", "L 3 0", "L 3 1", "M 3 3", "L 3 5"},
		},
		{
			name:    "odd pattern repeats",
			xs:      []float64{0, 6},
			ys:      []float64{0, 0},
			pattern: []float64{2},
			want:    []string{"M 0 0", "L 2 0", "M 4 0", "L 6 0"},
		},
		{
			name:    "single point draws nothing",
			xs:      []float64{1},
			ys:      []float64{1},
			pattern: []float64{4, 2},
			want:    nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var r recorder
			Polyline(tt.xs, tt.ys, tt.pattern, &r)
			if !slices.Equal(r.ops, tt.want) {
				t.Errorf("ops = %v, want %v", r.ops, tt.want)
			}
		})
	}
}

func TestDashStatePhaseAcrossCalls(t *testing.T) {
	var r recorder
	d := NewDashState([]float64{4, 2})
	d.Move(0, 0, &r)
	d.Dash(5, 0, &r)
	d.Dash(10, 0, &r)

	want := []string{"M 0 0", "L 4 0", "M 6 0", "L 10 0"}
	if !slices.Equal(r.ops, want) {
		t.Errorf("ops = %v, want %v", r.ops, want)
	}

	r.ops = nil
	d.Move(0, 1, &r)
	d.Dash(2, 1, &r)
	if want := []string{"M 0 1", "L 2 1"}; !slices.Equal(r.ops, want) {
		t.Errorf("after Move ops = %v, want %v", r.ops, want)
	}
}

func TestPattern(t *testing.T) {
	tests := []struct {
		ltype int
		scale float64
		want  []float64
	}{
		{LineSolid, 1, nil},
		{LineDashed, 1, []float64{8, 6}},
		{LineDashed, 0.5, []float64{4, 3}},
		{LineDotted, -1, []float64{1, 4}},
		{LineTripleDot, 2, []float64{2, 6, 2, 6, 2, 16}},
		{42, 1, nil},
	}
	for _, tt := range tests {
		if got := Pattern(tt.ltype, tt.scale); !slices.Equal(got, tt.want) {
			t.Errorf("Pattern(%d, %g) = %v, want %v", tt.ltype, tt.scale, got, tt.want)
		}
	}
}

func TestValidLineType(t *testing.T) {
	for _, lt := range []int{1, 2, 3, 4, -1, -8} {
		if !ValidLineType(lt) {
			t.Errorf("ValidLineType(%d) = false", lt)
		}
	}
	for _, lt := range []int{0, 5, -9} {
		if ValidLineType(lt) {
			t.Errorf("ValidLineType(%d) = true", lt)
		}
	}
}
