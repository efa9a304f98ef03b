package gks

import (
	"errors"
	"log/slog"

	"github.com/gogpu/gks/displaylist"
	"github.com/gogpu/gks/internal/alist"
)

// OperatingState is the kernel's position in its lifecycle.
type OperatingState int

const (
	StateClosed            OperatingState = iota // GKCL
	StateOpen                                    // GKOP
	StateWorkstationOpen                         // WSOP
	StateWorkstationActive                       // WSAC
	StateSegmentOpen                             // SGOP
)

var operatingStateNames = [...]string{"GKCL", "GKOP", "WSOP", "WSAC", "SGOP"}

func (s OperatingState) String() string {
	if s >= 0 && int(s) < len(operatingStateNames) {
		return operatingStateNames[s]
	}
	return "GK??"
}

// Kernel is one independent graphics kernel: its state, workstations,
// segments and resource tables. A Kernel is not safe for concurrent use;
// callers serialize access.
//
// A new Kernel is closed. Open it, open and activate at least one
// workstation, then draw:
//
//	k := gks.New()
//	k.Open()
//	k.OpenWorkstation(1, "out.png", raster.TypePNG)
//	k.ActivateWorkstation(1)
//	k.Polyline([]float64{0, 1}, []float64{0, 1})
//	k.Close()
type Kernel struct {
	opts    options
	opState OperatingState
	state   *State

	ws      *alist.List[*Workstation]
	segs    *alist.List[*Segment]
	openSeg *Segment
	tables  *tables
}

// New creates a closed kernel.
func New(opts ...Option) *Kernel {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	k := &Kernel{
		opts:   o,
		state:  NewState(),
		ws:     alist.New[*Workstation](MaxWorkstations),
		segs:   alist.New[*Segment](8),
		tables: newTables(),
	}
	k.state.fonts = o.fonts
	return k
}

// logger returns the kernel's own logger or the package logger.
func (k *Kernel) logger() *slog.Logger {
	if k.opts.logger != nil {
		return k.opts.logger
	}
	return Logger()
}

// report logs a kernel error and hands it to the error handler. Errors
// other than *Error pass through unchanged.
func (k *Kernel) report(err error) error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		k.logger().Error("gks error", "function", e.Fctid.String(), "code", e.Code, "err", err)
		if k.opts.onError != nil {
			k.opts.onError(e)
		}
	}
	return err
}

// OperatingState returns the current operating state.
func (k *Kernel) OperatingState() OperatingState {
	return k.opState
}

// State returns the live state. Callers may read it; changes must go
// through the kernel's setters so workstations and segments see them.
func (k *Kernel) State() *State {
	return k.state
}

// Open opens the kernel and resets its state.
func (k *Kernel) Open() error {
	return k.report(k.dispatch(OpOpenGKS, &displaylist.Record{}))
}

// Close closes the kernel. All workstations must be closed first.
func (k *Kernel) Close() error {
	return k.report(k.dispatch(OpCloseGKS, &displaylist.Record{}))
}

func (k *Kernel) openGKS() {
	k.state.Init()
	k.state.fonts = k.opts.fonts
	k.state.TextFont = k.opts.textFont
	k.tables.free()
	k.opState = StateOpen
	k.logger().Info("gks opened", "capture", k.opts.capture.String())
}

func (k *Kernel) closeGKS() {
	k.segs.Free(nil)
	k.openSeg = nil
	k.tables.free()
	k.opState = StateClosed
	k.logger().Info("gks closed")
}

// checkState returns the operating state error for op, if any.
func (k *Kernel) checkState(op Opcode) error {
	s := k.opState
	fail := func(code int) error { return newError(op, code) }
	switch op {
	case OpOpenGKS:
		if s != StateClosed {
			return fail(CodeNotClosed)
		}
		return nil
	case OpCloseGKS:
		if s != StateOpen {
			return fail(CodeNotOpen)
		}
		return nil
	case OpActivateWS:
		if s != StateWorkstationOpen && s != StateWorkstationActive {
			return fail(CodeNotWSOpenOrActive)
		}
		return nil
	case OpDeactivateWS, OpCreateSegment:
		if s != StateWorkstationActive {
			return fail(CodeNotActive)
		}
		return nil
	case OpCloseSegment:
		if s != StateSegmentOpen {
			return fail(CodeNoSegmentOpen)
		}
		return nil
	case OpOpenWS, OpEvalTransformMatrix:
		if s < StateOpen {
			return fail(CodeGKSNotOpen)
		}
		return nil
	}
	switch op.Class() {
	case ClassOutput:
		if s != StateWorkstationActive && s != StateSegmentOpen {
			return fail(CodeNotActiveOrSegment)
		}
	case ClassAttribute, ClassTransform, ClassExtension, ClassLocal:
		if s < StateOpen {
			return fail(CodeGKSNotOpen)
		}
	default:
		if s < StateWorkstationOpen {
			return fail(CodeNoWorkstationOpen)
		}
	}
	return nil
}
