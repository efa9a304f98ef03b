package gks

import (
	"bytes"
	"log/slog"
	"math"
	"slices"
	"strings"
	"testing"

	"github.com/gogpu/gks/displaylist"
)

func TestFanOutToActiveWorkstations(t *testing.T) {
	k, d1 := openKernel(t)
	k.OpenWorkstation(2, "", typeFake)
	k.OpenWorkstation(3, "", typeFake)
	k.ActivateWorkstation(3)
	d2, d3 := driverOf(t, k, 2), driverOf(t, k, 3)

	if err := k.Polyline([]float64{0, 1}, []float64{0, 1}); err != nil {
		t.Fatal(err)
	}
	if n := len(d1.output()); n != 1 {
		t.Errorf("ws 1 got %d primitives, want 1", n)
	}
	if n := len(d2.output()); n != 0 {
		t.Errorf("inactive ws 2 got %d primitives, want 0", n)
	}
	if n := len(d3.output()); n != 1 {
		t.Errorf("ws 3 got %d primitives, want 1", n)
	}
}

func TestFanOutToleratesDriverErrors(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn}))
	k, d1 := openKernel(t, WithLogger(logger))
	k.OpenWorkstation(2, "", typeFake)
	k.ActivateWorkstation(2)
	d1.fail = map[Opcode]bool{OpPolyline: true}
	d2 := driverOf(t, k, 2)

	if err := k.Polyline([]float64{0, 1}, []float64{0, 1}); err != nil {
		t.Fatalf("Polyline = %v, want nil", err)
	}
	if n := len(d2.output()); n != 1 {
		t.Errorf("ws 2 got %d primitives after ws 1 failed, want 1", n)
	}
	if !strings.Contains(buf.String(), "driver error") {
		t.Errorf("log = %q, want a driver error warning", buf.String())
	}
}

func TestAttributesReachWorkstations(t *testing.T) {
	k, d := openKernel(t)
	k.SetLineType(-3)
	k.SetLineColorIndex(4)
	k.Polyline([]float64{0, 1}, []float64{0, 1})

	attrs := d.ops(ClassAttribute)
	if !slices.Equal(attrs, []Opcode{OpSetLineType, OpSetPolylineColorIndex}) {
		t.Errorf("attribute calls = %v", attrs)
	}
	out := d.output()
	if out[0].lineType != -3 || out[0].color != 4 {
		t.Errorf("driver state: line type %d, color %d; want -3, 4", out[0].lineType, out[0].color)
	}
}

func TestRejectedAttributeIsNotForwarded(t *testing.T) {
	k, d := openKernel(t)
	before := len(d.calls)
	if err := k.SetLineType(99); ErrorCode(err) != CodeInvalidLineType {
		t.Fatalf("SetLineType(99) = %v", err)
	}
	if len(d.calls) != before {
		t.Error("rejected attribute reached the driver")
	}
}

func TestOutputValidation(t *testing.T) {
	k, d := openKernel(t)
	tests := []struct {
		name string
		err  error
		code int
	}{
		{"polyline 1 point", k.Polyline([]float64{0}, []float64{0}), CodeInvalidPointCount},
		{"polyline mismatch", k.Polyline([]float64{0, 1}, []float64{0}), CodeInvalidPointCount},
		{"polymarker empty", k.Polymarker(nil, nil), CodeInvalidPointCount},
		{"fill 2 points", k.FillArea([]float64{0, 1}, []float64{0, 1}), CodeInvalidPointCount},
		{"cell array dims", k.CellArray(UnitSquare, 2, 2, 1, []int{1, 2, 3, 4}), CodeInvalidColorArray},
		{"cell array short", k.CellArray(UnitSquare, 2, 2, 2, []int{1, 2, 3}), CodeInvalidColorArray},
		{"cell array empty rect", k.CellArray(Rect{}, 1, 1, 1, []int{1}), CodeInvalidRect},
	}
	for _, tt := range tests {
		if got := ErrorCode(tt.err); got != tt.code {
			t.Errorf("%s: code = %d (%v), want %d", tt.name, got, tt.err, tt.code)
		}
	}
	if n := len(d.output()); n != 0 {
		t.Errorf("invalid primitives reached the driver: %d", n)
	}
}

func TestOutputPrimitives(t *testing.T) {
	k, d := openKernel(t)
	k.Polymarker([]float64{0.5}, []float64{0.5})
	k.Text(0.1, 0.2, "Grüße")
	k.FillArea([]float64{0, 1, 1}, []float64{0, 0, 1})
	k.CellArray(UnitSquare, 2, 1, 2, []int{1, 2})
	k.DrawImage(UnitSquare, 1, 1, []int{0x7f00ff00})

	want := []Opcode{OpPolymarker, OpText, OpFillArea, OpCellArray, OpDrawImage}
	if got := d.ops(ClassOutput); !slices.Equal(got, want) {
		t.Fatalf("output = %v, want %v", got, want)
	}
	text := d.output()[1].rec
	if !bytes.Equal(text.Chars, []byte("Gr\xfc\xdfe")) {
		t.Errorf("text chars = %q, want Latin-1", text.Chars)
	}
	if cells := d.output()[3].rec; cells.DX != 2 || cells.DY != 1 || cells.DimX != 2 {
		t.Errorf("cell array dims = %d %d %d", cells.DX, cells.DY, cells.DimX)
	}
}

func TestTextReplacesUnsupportedCharacters(t *testing.T) {
	if got := latin1("a€b"); !bytes.Equal(got, []byte("a?b")) {
		t.Errorf("latin1(a€b) = %q, want a?b", got)
	}
}

func TestOutputIsMappedToNDC(t *testing.T) {
	k, d := openKernel(t)
	k.SetWindow(1, Rect{XMin: 0, XMax: 100, YMin: 0, YMax: 100})
	k.SetViewport(1, Rect{XMin: 0, XMax: 0.5, YMin: 0.5, YMax: 1})
	k.SelectTransform(1)
	k.Polyline([]float64{0, 100}, []float64{0, 100})

	got := d.output()[0].ndc
	want := []Point{{0, 0.5}, {0.5, 1}}
	if !pointsNear(got, want) {
		t.Errorf("NDC points = %v, want %v", got, want)
	}
}

func TestEscapeIsForwardedNotRecorded(t *testing.T) {
	k, d := openKernel(t)
	k.CreateSegment(1)
	if err := k.Escape([]int{7}, []byte("x")); err != nil {
		t.Fatal(err)
	}
	seg, _ := k.Segment(1)
	if seg.Len() != 0 {
		t.Errorf("segment recorded %d calls, want 0", seg.Len())
	}
	if got := d.ops(ClassExtension); !slices.Equal(got, []Opcode{OpEscape}) {
		t.Errorf("extension calls = %v", got)
	}
}

func TestControlFunctions(t *testing.T) {
	k, d := openKernel(t)
	k.ClearWorkstation(1, ClearAlways)
	k.UpdateWorkstation(1, UpdatePerform)
	k.SetDeferralState(1, 0, 0)
	k.Message(1, "hi")
	want := []Opcode{OpClearWS, OpUpdateWS, OpSetDeferralState, OpMessage}
	if got := d.ops(ClassControl); !slices.Equal(got, want) {
		t.Errorf("control calls = %v, want %v", got, want)
	}
	if got := ErrorCode(k.ClearWorkstation(5, ClearAlways)); got != CodeWorkstationNotOpen {
		t.Errorf("ClearWorkstation(5) code = %d, want %d", got, CodeWorkstationNotOpen)
	}
	k.OpenWorkstation(2, "", typeMI)
	if got := ErrorCode(k.UpdateWorkstation(2, UpdatePerform)); got != CodeCategoryMI {
		t.Errorf("UpdateWorkstation(MI) code = %d, want %d", got, CodeCategoryMI)
	}
	k.OpenWorkstation(3, "", typeInput)
	if got := ErrorCode(k.ClearWorkstation(3, ClearAlways)); got != CodeCategoryInput {
		t.Errorf("ClearWorkstation(INPUT) code = %d, want %d", got, CodeCategoryInput)
	}
}

func TestDispatchRejectsShortRecords(t *testing.T) {
	k, _ := openKernel(t)
	if got := ErrorCode(k.dispatch(OpSetWindow, intsRecord(1))); got != CodeInvalidItem {
		t.Errorf("short SET_WINDOW code = %d, want %d", got, CodeInvalidItem)
	}
	if got := ErrorCode(k.dispatch(OpPolyline, &displaylist.Record{F1: []float64{0}})); got != CodeInvalidPointCount {
		t.Errorf("short POLYLINE code = %d, want %d", got, CodeInvalidPointCount)
	}
}

func pointsNear(a, b []Point) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if math.Abs(a[i].X-b[i].X) > 1e-9 || math.Abs(a[i].Y-b[i].Y) > 1e-9 {
			return false
		}
	}
	return true
}
