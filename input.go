package gks

import (
	"github.com/gogpu/gks/displaylist"
	"golang.org/x/text/encoding/charmap"
)

// Status is the outcome of an input request.
type Status int

const (
	StatusNone Status = 0 // the operator broke off the request
	StatusOK   Status = 1
)

// Locator is the result of a locator request.
type Locator struct {
	Status    Status
	Transform int
	Point     Point
}

// Stroke is the result of a stroke request.
type Stroke struct {
	Status    Status
	Transform int
	Points    []Point
}

// inputWorkstation returns an open workstation of category INPUT or OUTIN.
func (k *Kernel) inputWorkstation(op Opcode, id, dev int) (*Workstation, error) {
	ws, ok := k.workstation(id)
	if !ok {
		return nil, newError(op, CodeWorkstationNotOpen)
	}
	if !ws.Category.Input() {
		return nil, newError(op, CodeNotInputCategory)
	}
	if dev < 1 {
		return nil, newError(op, CodeNoInputDevice)
	}
	return ws, nil
}

// inputOp passes a request to the driver, which writes the answer into
// rec: the status into Ints[2] and the payload into the remaining fields.
func (k *Kernel) inputOp(op Opcode, rec *displaylist.Record) error {
	ws, err := k.inputWorkstation(op, rec.Ints[0], rec.Ints[1])
	if err != nil {
		return err
	}
	if op == OpInitializeLocator {
		slot := rec.Ints[2]
		if slot < 0 || slot >= MaxTransforms {
			return newError(op, CodeInvalidTransform)
		}
		x, y, err := k.state.WCToNDC(slot, rec.F1[0], rec.F2[0])
		if err != nil {
			return newError(op, CodeTransformNotSet)
		}
		rec.F1[0], rec.F2[0] = x, y
	}
	return ws.Driver.Call(op, rec, k.state)
}

// InitializeLocator sets the initial position of locator device dev, given
// in world coordinates of slot.
func (k *Kernel) InitializeLocator(id, dev, slot int, p Point) error {
	rec := &displaylist.Record{Ints: []int{id, dev, slot}, F1: []float64{p.X}, F2: []float64{p.Y}}
	return k.report(k.dispatch(OpInitializeLocator, rec))
}

// RequestLocator asks locator device dev of workstation id for a position.
// The NDC position reported by the driver is mapped back to world
// coordinates through the highest numbered transformation whose viewport
// contains it.
func (k *Kernel) RequestLocator(id, dev int) (Locator, error) {
	rec := &displaylist.Record{Ints: []int{id, dev, 0}, F1: []float64{0}, F2: []float64{0}}
	if err := k.dispatch(OpRequestLocator, rec); err != nil {
		return Locator{}, k.report(err)
	}
	loc := Locator{Status: Status(rec.Ints[2])}
	if loc.Status != StatusOK {
		return loc, nil
	}
	x, y := rec.F1[0], rec.F2[0]
	slot, _ := k.state.locatorTransform(x, y)
	wx, wy, _ := k.state.NDCToWC(slot, x, y)
	loc.Transform, loc.Point = slot, Point{wx, wy}
	return loc, nil
}

// RequestStroke asks stroke device dev for up to max positions. All points
// are mapped through the highest numbered transformation whose viewport
// contains every one of them.
func (k *Kernel) RequestStroke(id, dev, max int) (Stroke, error) {
	if max < 0 {
		return Stroke{}, k.report(newError(OpRequestStroke, CodeInvalidPointCount))
	}
	rec := &displaylist.Record{
		Ints: []int{id, dev, 0, 0},
		F1:   make([]float64, max),
		F2:   make([]float64, max),
	}
	if err := k.dispatch(OpRequestStroke, rec); err != nil {
		return Stroke{}, k.report(err)
	}
	s := Stroke{Status: Status(rec.Ints[2])}
	if s.Status != StatusOK {
		return s, nil
	}
	n := min(rec.Ints[3], len(rec.F1), len(rec.F2))
	slot := 0
	for cand := MaxTransforms - 1; cand > 0; cand-- {
		t := &k.state.transforms[cand]
		if !t.ready() {
			continue
		}
		all := true
		for i := 0; i < n && all; i++ {
			all = t.viewport.Contains(rec.F1[i], rec.F2[i])
		}
		if all {
			slot = cand
			break
		}
	}
	s.Transform = slot
	s.Points = make([]Point, n)
	for i := range s.Points {
		x, y, _ := k.state.NDCToWC(slot, rec.F1[i], rec.F2[i])
		s.Points[i] = Point{x, y}
	}
	return s, nil
}

// RequestChoice asks choice device dev for a choice number.
func (k *Kernel) RequestChoice(id, dev int) (Status, int, error) {
	rec := intsRecord(id, dev, 0, 0)
	if err := k.dispatch(OpRequestChoice, rec); err != nil {
		return StatusNone, 0, k.report(err)
	}
	return Status(rec.Ints[2]), rec.Ints[3], nil
}

// RequestString asks string device dev for a line of text.
func (k *Kernel) RequestString(id, dev int) (Status, string, error) {
	rec := intsRecord(id, dev, 0)
	if err := k.dispatch(OpRequestString, rec); err != nil {
		return StatusNone, "", k.report(err)
	}
	text, err := charmap.ISO8859_1.NewDecoder().Bytes(rec.Chars)
	if err != nil {
		return StatusNone, "", err
	}
	return Status(rec.Ints[2]), string(text), nil
}
