package gks

import (
	"math"
	"testing"
)

func openInput(t *testing.T) (*Kernel, *inputDriver) {
	t.Helper()
	k := New()
	k.Open()
	if err := k.OpenWorkstation(1, "", typeOutIn); err != nil {
		t.Fatal(err)
	}
	ws, _ := k.Workstation(1)
	return k, ws.Driver.(*inputDriver)
}

func TestRequestLocatorPicksHighestTransform(t *testing.T) {
	k, _ := openInput(t)

	loc, err := k.RequestLocator(1, 1)
	if err != nil {
		t.Fatal(err)
	}
	if loc.Status != StatusOK || loc.Transform != 0 || loc.Point != (Point{0.75, 0.75}) {
		t.Errorf("locator = %+v, want slot 0 at (0.75, 0.75)", loc)
	}

	k.SetWindow(1, Rect{XMax: 10, YMax: 10})
	k.SetViewport(1, Rect{XMin: 0.5, XMax: 1, YMin: 0.5, YMax: 1})
	k.SetWindow(2, UnitSquare)
	k.SetViewport(2, Rect{XMax: 0.5, YMax: 0.5})

	loc, err = k.RequestLocator(1, 1)
	if err != nil {
		t.Fatal(err)
	}
	if loc.Transform != 1 || math.Abs(loc.Point.X-5) > 1e-9 || math.Abs(loc.Point.Y-5) > 1e-9 {
		t.Errorf("locator = %+v, want slot 1 at (5, 5)", loc)
	}
}

func TestRequestLocatorCancelled(t *testing.T) {
	k, d := openInput(t)
	d.status = StatusNone
	loc, err := k.RequestLocator(1, 1)
	if err != nil || loc.Status != StatusNone {
		t.Errorf("locator = %+v, %v; want status none", loc, err)
	}
}

func TestRequestStroke(t *testing.T) {
	k, d := openInput(t)
	d.points = []Point{{0.6, 0.6}, {0.9, 0.7}, {0.2, 0.2}}
	k.SetWindow(1, Rect{XMax: 10, YMax: 10})
	k.SetViewport(1, Rect{XMin: 0.5, XMax: 1, YMin: 0.5, YMax: 1})

	s, err := k.RequestStroke(1, 1, 2)
	if err != nil {
		t.Fatal(err)
	}
	if s.Transform != 1 || len(s.Points) != 2 {
		t.Fatalf("stroke = %+v, want 2 points in slot 1", s)
	}
	if math.Abs(s.Points[1].X-8) > 1e-9 || math.Abs(s.Points[1].Y-4) > 1e-9 {
		t.Errorf("point 1 = %v, want (8, 4)", s.Points[1])
	}

	// The third point lies outside viewport 1, so slot 0 is used.
	s, _ = k.RequestStroke(1, 1, 3)
	if s.Transform != 0 || s.Points[2] != (Point{0.2, 0.2}) {
		t.Errorf("stroke = %+v, want slot 0", s)
	}
}

func TestRequestChoiceAndString(t *testing.T) {
	k, _ := openInput(t)
	status, choice, err := k.RequestChoice(1, 1)
	if err != nil || status != StatusOK || choice != 3 {
		t.Errorf("RequestChoice = %v, %d, %v", status, choice, err)
	}
	status, text, err := k.RequestString(1, 1)
	if err != nil || status != StatusOK || text != "café" {
		t.Errorf("RequestString = %v, %q, %v", status, text, err)
	}
}

func TestInitializeLocatorSendsNDC(t *testing.T) {
	k, d := openInput(t)
	k.SetWindow(1, Rect{XMax: 10, YMax: 10})
	k.SetViewport(1, Rect{XMin: 0.5, XMax: 1, YMin: 0.5, YMax: 1})
	if err := k.InitializeLocator(1, 1, 1, Point{5, 5}); err != nil {
		t.Fatal(err)
	}
	rec := d.calls[len(d.calls)-1].rec
	if math.Abs(rec.F1[0]-0.75) > 1e-12 || math.Abs(rec.F2[0]-0.75) > 1e-12 {
		t.Errorf("driver got (%g, %g), want (0.75, 0.75)", rec.F1[0], rec.F2[0])
	}
	if got := ErrorCode(k.InitializeLocator(1, 1, 3, Point{})); got != CodeTransformNotSet {
		t.Errorf("unset slot code = %d, want %d", got, CodeTransformNotSet)
	}
}

func TestInputErrors(t *testing.T) {
	k, _ := openInput(t)
	k.OpenWorkstation(2, "", typeFake)

	_, err := k.RequestLocator(2, 1)
	if got := ErrorCode(err); got != CodeNotInputCategory {
		t.Errorf("output workstation code = %d, want %d", got, CodeNotInputCategory)
	}
	_, err = k.RequestLocator(1, 0)
	if got := ErrorCode(err); got != CodeNoInputDevice {
		t.Errorf("device 0 code = %d, want %d", got, CodeNoInputDevice)
	}
	_, _, err = k.RequestChoice(7, 1)
	if got := ErrorCode(err); got != CodeWorkstationNotOpen {
		t.Errorf("closed workstation code = %d, want %d", got, CodeWorkstationNotOpen)
	}
	_, err = k.RequestStroke(1, 1, -1)
	if got := ErrorCode(err); got != CodeInvalidPointCount {
		t.Errorf("negative stroke size code = %d, want %d", got, CodeInvalidPointCount)
	}
}
