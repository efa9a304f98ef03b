package gks

import (
	"fmt"

	"github.com/gogpu/gks/displaylist"
)

// MaxWorkstations is the number of workstations that may be open at once.
const MaxWorkstations = 16

// Workstation is an open output or input destination.
type Workstation struct {
	ID     int
	Path   string
	ConnID int
	Type   int
	Driver Driver

	Category Category
	Active   bool

	// Window is the part of NDC space shown; Viewport is where it appears,
	// in device units. Transform maps one onto the other.
	Window    Rect
	Viewport  Rect
	Transform DeviceTransform

	// Display is the device's addressable area when the driver reports
	// one.
	Display    Rect
	hasDisplay bool
}

// workstation finds an open workstation by id.
func (k *Kernel) workstation(id int) (*Workstation, bool) {
	return k.ws.Find(id)
}

// Workstation returns the open workstation with the given id.
func (k *Kernel) Workstation(id int) (*Workstation, bool) {
	return k.workstation(id)
}

// Workstations returns the ids of the open workstations in the order they
// were opened.
func (k *Kernel) Workstations() []int {
	return k.ws.Keys()
}

// OpenWorkstation opens workstation id of type wtype, connected to path.
// Type 0 selects the configured default type.
func (k *Kernel) OpenWorkstation(id int, path string, wtype int) error {
	rec := &displaylist.Record{Ints: []int{id, 0, wtype}, Chars: []byte(path)}
	return k.report(k.dispatch(OpOpenWS, rec))
}

// CloseWorkstation deactivates and closes workstation id, removing it from
// every segment.
func (k *Kernel) CloseWorkstation(id int) error {
	return k.report(k.dispatch(OpCloseWS, intsRecord(id)))
}

// ActivateWorkstation makes workstation id receive output.
func (k *Kernel) ActivateWorkstation(id int) error {
	return k.report(k.dispatch(OpActivateWS, intsRecord(id)))
}

// DeactivateWorkstation stops output to workstation id.
func (k *Kernel) DeactivateWorkstation(id int) error {
	return k.report(k.dispatch(OpDeactivateWS, intsRecord(id)))
}

func (k *Kernel) openWS(op Opcode, rec *displaylist.Record) error {
	id, wtype := rec.Ints[0], rec.Ints[2]
	if id < 1 {
		return newError(op, CodeInvalidWorkstationID)
	}
	if k.ws.Contains(id) {
		return newError(op, CodeWorkstationOpen)
	}
	if k.ws.Len() >= MaxWorkstations {
		return newError(op, CodeTooManyWorkstations)
	}
	if wtype == 0 {
		wtype = k.opts.wstype
		rec.Ints[2] = wtype
	}
	if wtype < 0 {
		return newError(op, CodeInvalidWorkstationType)
	}
	dt, ok := LookupDriver(wtype)
	if !ok {
		return newError(op, CodeNoSuchWorkstationType)
	}

	ws := &Workstation{
		ID:       id,
		Path:     string(rec.Chars),
		ConnID:   rec.Ints[1],
		Type:     wtype,
		Category: dt.Category,
		Driver:   dt.New(),
		Window:   UnitSquare,
		Viewport: UnitSquare,
	}
	if err := ws.Driver.Call(op, rec, k.state); err != nil {
		k.logger().Warn("gks: driver refused to open", "ws", id, "type", wtype, "err", err)
		return fmt.Errorf("%w: %w", newError(op, CodeCannotOpen), err)
	}
	if ds, ok := ws.Driver.(DisplaySizer); ok {
		w, h := ds.DisplaySize()
		ws.Display = Rect{XMax: w, YMax: h}
		ws.hasDisplay = true
		ws.Viewport = FitViewport(ws.Window, w, h, k.opts.margin)
	}
	ws.Transform = NewDeviceTransform(ws.Window, ws.Viewport)
	if ws.hasDisplay {
		k.call(ws, OpSetWSViewport, rectRecord(id, ws.Viewport), k.state)
	}

	k.ws.Add(id, ws)
	if k.opState == StateOpen {
		k.opState = StateWorkstationOpen
	}
	k.logger().Info("gks: workstation opened", "ws", id, "type", wtype, "driver", dt.Name, "path", ws.Path)
	return nil
}

func (k *Kernel) closeWS(op Opcode, rec *displaylist.Record) error {
	id := rec.Ints[0]
	ws, ok := k.workstation(id)
	if !ok {
		return newError(op, CodeWorkstationNotOpen)
	}
	if ws.Active {
		k.deactivate(ws)
	}
	if err := ws.Driver.Call(op, rec, k.state); err != nil {
		k.logger().Warn("gks: driver close failed", "ws", id, "err", err)
	}
	for _, seg := range k.segs.All() {
		seg.dissociate(id)
	}
	k.ws.Delete(id)
	if k.ws.Len() == 0 {
		k.openSeg = nil
		k.opState = StateOpen
	}
	k.logger().Info("gks: workstation closed", "ws", id)
	return nil
}

func (k *Kernel) activateWS(op Opcode, rec *displaylist.Record) error {
	ws, ok := k.workstation(rec.Ints[0])
	if !ok {
		return newError(op, CodeWorkstationNotOpen)
	}
	if ws.Active {
		return newError(op, CodeWorkstationActive)
	}
	switch ws.Category {
	case CategoryMI:
		return newError(op, CodeCategoryMI)
	case CategoryInput:
		return newError(op, CodeCategoryInput)
	}
	ws.Active = true
	k.call(ws, op, rec, k.state)
	if k.opState == StateWorkstationOpen {
		k.opState = StateWorkstationActive
	}
	return nil
}

func (k *Kernel) deactivateWS(op Opcode, rec *displaylist.Record) error {
	ws, ok := k.workstation(rec.Ints[0])
	if !ok {
		return newError(op, CodeWorkstationNotOpen)
	}
	if !ws.Active {
		return newError(op, CodeWorkstationNotActive)
	}
	k.deactivate(ws)
	return nil
}

func (k *Kernel) deactivate(ws *Workstation) {
	ws.Active = false
	k.call(ws, OpDeactivateWS, intsRecord(ws.ID), k.state)
	if k.anyActive() {
		return
	}
	if k.openSeg != nil {
		k.logger().Warn("gks: last active workstation deactivated, closing segment", "segment", k.openSeg.Name)
		k.openSeg = nil
	}
	if k.opState >= StateWorkstationActive {
		k.opState = StateWorkstationOpen
	}
}

func (k *Kernel) anyActive() bool {
	for _, ws := range k.ws.All() {
		if ws.Active {
			return true
		}
	}
	return false
}

// setWSWindow sets the part of NDC space a workstation shows.
func (k *Kernel) setWSWindow(ws *Workstation, op Opcode, rec *displaylist.Record) error {
	r, ok := rectFromArrays(rec.F1, rec.F2)
	if !ok || !r.Valid() {
		return newError(op, CodeInvalidRect)
	}
	if !r.Within(UnitSquare) {
		return newError(op, CodeWSWindowNotInNDC)
	}
	ws.Window = r
	ws.Transform = NewDeviceTransform(ws.Window, ws.Viewport)
	return nil
}

// setWSViewport sets where the workstation window appears on the device.
func (k *Kernel) setWSViewport(ws *Workstation, op Opcode, rec *displaylist.Record) error {
	r, ok := rectFromArrays(rec.F1, rec.F2)
	if !ok || !r.Valid() {
		return newError(op, CodeInvalidRect)
	}
	if ws.hasDisplay && !r.Within(ws.Display) {
		return newError(op, CodeWSViewportNotInDisplay)
	}
	ws.Viewport = r
	ws.Transform = NewDeviceTransform(ws.Window, ws.Viewport)
	return nil
}
