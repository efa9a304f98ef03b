package gks

import (
	"fmt"

	"github.com/gogpu/gks/displaylist"
)

// handler runs one class of functions.
type handler func(k *Kernel, op Opcode, rec *displaylist.Record) error

// handlers is indexed by Class. It is filled in init because the handlers
// reach dispatch again through segment replay and metafile interpretation.
var handlers [ClassExtension + 1]handler

func init() {
	handlers = [...]handler{
		ClassLifecycle: (*Kernel).lifecycleOp,
		ClassControl:   (*Kernel).controlOp,
		ClassOutput:    (*Kernel).outputOp,
		ClassAttribute: (*Kernel).attributeOp,
		ClassTransform: (*Kernel).attributeOp,
		ClassSegment:   (*Kernel).segmentOp,
		ClassInput:     (*Kernel).inputOp,
		ClassMetafile:  (*Kernel).metafileOp,
		ClassLocal:     (*Kernel).localOp,
		ClassExtension: (*Kernel).extensionOp,
	}
}

// dispatch validates and routes one function call. It panics for opcodes
// outside the registry.
func (k *Kernel) dispatch(op Opcode, rec *displaylist.Record) error {
	class := op.Class()
	rec.Fctid = int(op)
	if err := k.checkState(op); err != nil {
		return err
	}
	if err := checkOperands(op, rec); err != nil {
		return err
	}
	return handlers[class](k, op, rec)
}

// call sends one record to one workstation. Driver errors are logged.
func (k *Kernel) call(ws *Workstation, op Opcode, rec *displaylist.Record, st *State) {
	if err := ws.Driver.Call(op, rec, st); err != nil {
		k.logger().Warn("gks: driver error", "function", op.String(), "ws", ws.ID, "err", err)
	}
}

// fanOut sends a record to every active output workstation in the order
// they were opened.
func (k *Kernel) fanOut(op Opcode, rec *displaylist.Record) {
	for _, ws := range k.ws.All() {
		if ws.Active && ws.Category.Output() {
			k.call(ws, op, rec, k.state)
		}
	}
}

// record appends a call to the open segment.
func (k *Kernel) record(rec *displaylist.Record) error {
	if k.openSeg == nil {
		return nil
	}
	return k.openSeg.buf.Append(rec)
}

func (k *Kernel) lifecycleOp(op Opcode, rec *displaylist.Record) error {
	switch op {
	case OpOpenGKS:
		k.openGKS()
	case OpCloseGKS:
		k.closeGKS()
	case OpOpenWS:
		return k.openWS(op, rec)
	case OpCloseWS:
		return k.closeWS(op, rec)
	case OpActivateWS:
		return k.activateWS(op, rec)
	case OpDeactivateWS:
		return k.deactivateWS(op, rec)
	}
	return nil
}

func (k *Kernel) outputOp(op Opcode, rec *displaylist.Record) error {
	if err := checkOutput(op, rec); err != nil {
		return err
	}
	if k.openSeg != nil {
		if err := k.record(rec); err != nil {
			return fmt.Errorf("gks: %s: recording segment %d: %w", op, k.openSeg.Name, err)
		}
		if k.opts.capture == CaptureOnly {
			return nil
		}
	}
	k.fanOut(op, rec)
	return nil
}

// attributeOp changes the live state, records the change into an open
// segment and forwards it to the active workstations.
func (k *Kernel) attributeOp(op Opcode, rec *displaylist.Record) error {
	if err := k.state.apply(op, rec); err != nil {
		return err
	}
	if err := k.record(rec); err != nil {
		return fmt.Errorf("gks: %s: recording segment %d: %w", op, k.openSeg.Name, err)
	}
	k.fanOut(op, rec)
	return nil
}

// controlOp runs a function addressed to one workstation.
func (k *Kernel) controlOp(op Opcode, rec *displaylist.Record) error {
	ws, ok := k.workstation(rec.Ints[0])
	if !ok {
		return newError(op, CodeWorkstationNotOpen)
	}
	if ws.Category == CategoryMI {
		return newError(op, CodeCategoryMI)
	}
	switch op {
	case OpClearWS, OpUpdateWS, OpSetDeferralState, OpMessage:
		if ws.Category == CategoryInput {
			return newError(op, CodeCategoryInput)
		}
	case OpSetColorRep:
		index := rec.Ints[1]
		c := RGB{rec.F1[0], rec.F1[1], rec.F1[2]}
		if index < 0 {
			return newError(op, CodeNegativeColorIndex)
		}
		if !c.Valid() {
			return newError(op, CodeColorOutOfRange)
		}
		k.tables.setColor(index, c)
	case OpSetWSWindow:
		if err := k.setWSWindow(ws, op, rec); err != nil {
			return err
		}
	case OpSetWSViewport:
		if err := k.setWSViewport(ws, op, rec); err != nil {
			return err
		}
	}
	if err := ws.Driver.Call(op, rec, k.state); err != nil {
		return fmt.Errorf("gks: %s on workstation %d: %w", op, ws.ID, err)
	}
	return nil
}

// extensionOp forwards a call to the active workstations without
// recording it.
func (k *Kernel) extensionOp(op Opcode, rec *displaylist.Record) error {
	k.fanOut(op, rec)
	return nil
}

// localOp computes functions that never reach a driver.
func (k *Kernel) localOp(op Opcode, rec *displaylist.Record) error {
	switch op {
	case OpEvalTransformMatrix:
		f := rec.F1
		m, err := k.state.EvalTransformMatrix(
			Point{f[0], f[1]}, Point{f[2], f[3]}, f[4], Point{f[5], f[6]},
			CoordSwitch(rec.Ints[0]))
		if err != nil {
			return newError(op, CodeTransformNotSet)
		}
		rec.F2 = m.Array()
	}
	return nil
}
