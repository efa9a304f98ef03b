package gks

import (
	"slices"

	"github.com/gogpu/gks/displaylist"
)

// Segment is a named recording of output and attribute calls that can be
// replayed on any workstation.
type Segment struct {
	Name       int
	Matrix     Matrix
	Visible    bool
	Detectable bool

	buf   *displaylist.Buffer
	state *State
	ws    []int
}

func newSegment(name int, st *State) *Segment {
	return &Segment{
		Name:    name,
		Matrix:  Identity(),
		Visible: true,
		buf:     displaylist.NewBuffer(0),
		state:   st.Clone(),
	}
}

// Len returns the number of recorded calls.
func (s *Segment) Len() int {
	return s.buf.Count()
}

// Buffer returns the segment's display list.
func (s *Segment) Buffer() *displaylist.Buffer {
	return s.buf
}

// Workstations returns the ids of the associated workstations.
func (s *Segment) Workstations() []int {
	return slices.Clone(s.ws)
}

// AssociatedWith reports whether the segment is stored on workstation id.
func (s *Segment) AssociatedWith(id int) bool {
	return slices.Contains(s.ws, id)
}

func (s *Segment) associate(id int) {
	if !s.AssociatedWith(id) {
		s.ws = append(s.ws, id)
	}
}

func (s *Segment) dissociate(id int) {
	s.ws = slices.DeleteFunc(s.ws, func(w int) bool { return w == id })
}

// Segment returns the segment with the given name.
func (k *Kernel) Segment(name int) (*Segment, bool) {
	return k.segs.Find(name)
}

// Segments returns the segment names in creation order.
func (k *Kernel) Segments() []int {
	return k.segs.Keys()
}

// CreateSegment opens a new segment. Until CloseSegment, output and
// attribute calls are recorded into it. The segment is associated with
// every active workstation.
func (k *Kernel) CreateSegment(name int) error {
	return k.report(k.dispatch(OpCreateSegment, intsRecord(name)))
}

// CloseSegment ends recording into the open segment.
func (k *Kernel) CloseSegment() error {
	return k.report(k.dispatch(OpCloseSegment, &displaylist.Record{}))
}

// DeleteSegment removes a closed segment.
func (k *Kernel) DeleteSegment(name int) error {
	return k.report(k.dispatch(OpDeleteSegment, intsRecord(name)))
}

// AssociateSegment stores a segment on workstation ws and draws it there.
func (k *Kernel) AssociateSegment(name, ws int) error {
	return k.report(k.dispatch(OpAssociateSegment, intsRecord(ws, name)))
}

// CopySegment draws a segment on workstation ws without storing it there.
func (k *Kernel) CopySegment(name, ws int) error {
	return k.report(k.dispatch(OpCopySegment, intsRecord(ws, name)))
}

// RedrawSegments lets workstation ws clear its surface and then replays
// every visible segment associated with it, in creation order.
func (k *Kernel) RedrawSegments(ws int) error {
	return k.report(k.dispatch(OpRedrawSegOnWS, intsRecord(ws)))
}

// SetSegmentTransform sets the transformation applied when the segment is
// replayed. It takes effect on the next replay.
func (k *Kernel) SetSegmentTransform(name int, m Matrix) error {
	rec := &displaylist.Record{Ints: []int{name}, F1: m.Array()}
	return k.report(k.dispatch(OpSetSegmentTransform, rec))
}

// SetSegmentVisibility shows or hides a segment on redraw.
func (k *Kernel) SetSegmentVisibility(name int, visible bool) error {
	seg, ok := k.segs.Find(name)
	if !ok {
		return k.report(newError(OpSetSegmentTransform, CodeNoSuchSegment))
	}
	seg.Visible = visible
	return nil
}

// SetSegmentDetectability marks a segment as detectable by pick input.
func (k *Kernel) SetSegmentDetectability(name int, detectable bool) error {
	seg, ok := k.segs.Find(name)
	if !ok {
		return k.report(newError(OpSetSegmentTransform, CodeNoSuchSegment))
	}
	seg.Detectable = detectable
	return nil
}

// segmentOp runs the segment class of functions.
func (k *Kernel) segmentOp(op Opcode, rec *displaylist.Record) error {
	switch op {
	case OpCreateSegment:
		name := rec.Ints[0]
		if name < 1 {
			return newError(op, CodeInvalidSegmentName)
		}
		if k.segs.Contains(name) {
			return newError(op, CodeSegmentInUse)
		}
		seg := newSegment(name, k.state)
		for _, ws := range k.ws.All() {
			if ws.Active {
				seg.associate(ws.ID)
			}
		}
		k.segs.Add(name, seg)
		k.openSeg = seg
		k.opState = StateSegmentOpen
		k.logger().Debug("gks: segment created", "segment", name, "workstations", seg.ws)
		return nil

	case OpCloseSegment:
		k.logger().Debug("gks: segment closed", "segment", k.openSeg.Name, "records", k.openSeg.Len())
		k.openSeg = nil
		k.opState = StateWorkstationActive
		return nil

	case OpDeleteSegment:
		name := rec.Ints[0]
		seg, ok := k.segs.Find(name)
		if !ok {
			return newError(op, CodeNoSuchSegment)
		}
		if seg == k.openSeg {
			return newError(op, CodeSegmentOpen)
		}
		k.segs.Delete(name)
		return nil

	case OpSetSegmentTransform:
		seg, ok := k.segs.Find(rec.Ints[0])
		if !ok {
			return newError(op, CodeNoSuchSegment)
		}
		seg.Matrix = matrixFromArray(rec.F1)
		return nil

	case OpRedrawSegOnWS:
		ws, ok := k.workstation(rec.Ints[0])
		if !ok {
			return newError(op, CodeWorkstationNotOpen)
		}
		if err := k.outputCategory(op, ws); err != nil {
			return err
		}
		k.call(ws, op, rec, k.state)
		for _, seg := range k.segs.All() {
			if seg.Visible && seg.AssociatedWith(ws.ID) && seg != k.openSeg {
				k.replay(seg, ws)
			}
		}
		return nil
	}

	// Associate and copy.
	ws, ok := k.workstation(rec.Ints[0])
	if !ok {
		return newError(op, CodeWorkstationNotOpen)
	}
	if err := k.outputCategory(op, ws); err != nil {
		return err
	}
	seg, ok := k.segs.Find(rec.Ints[1])
	if !ok {
		return newError(op, CodeNoSuchSegment)
	}
	if seg == k.openSeg {
		return newError(op, CodeSegmentOpen)
	}
	if op == OpAssociateSegment {
		if seg.AssociatedWith(ws.ID) {
			return nil
		}
		seg.associate(ws.ID)
	}
	k.replay(seg, ws)
	return nil
}

// outputCategory checks that ws can display output.
func (k *Kernel) outputCategory(op Opcode, ws *Workstation) error {
	switch ws.Category {
	case CategoryMI:
		return newError(op, CodeCategoryMI)
	case CategoryInput:
		return newError(op, CodeCategoryInput)
	}
	return nil
}

// replay decodes a segment and sends every record to one workstation. The
// records run against a copy of the state captured at segment creation,
// with the segment's matrix composed onto the live segment matrix.
func (k *Kernel) replay(seg *Segment, ws *Workstation) {
	st := seg.state.Clone()
	st.fonts = k.state.fonts
	st.SegmentMatrix = seg.Matrix.Multiply(k.state.SegmentMatrix)

	n := 0
	for rec, err := range seg.buf.Records() {
		if err != nil {
			k.logger().Error("gks: corrupt segment", "segment", seg.Name, "err", err)
			return
		}
		op := Opcode(rec.Fctid)
		if !op.Valid() {
			k.logger().Error("gks: unknown function in segment", "segment", seg.Name, "fctid", rec.Fctid)
			return
		}
		switch op.Class() {
		case ClassAttribute, ClassTransform:
			if err := st.apply(op, rec); err != nil {
				k.logger().Warn("gks: segment attribute rejected", "segment", seg.Name, "err", err)
				continue
			}
		}
		k.call(ws, op, rec, st)
		n++
	}
	k.logger().Debug("gks: segment replayed", "segment", seg.Name, "ws", ws.ID, "records", n)
}
