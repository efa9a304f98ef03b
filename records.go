package gks

import "github.com/gogpu/gks/displaylist"

// operands is the minimum shape of a record: integers, F1 and F2 values.
type operands struct {
	ints, f1, f2 int
}

// minOperands lists the operands each state-changing function reads.
var minOperands = map[Opcode]operands{
	OpOpenWS:                  {3, 0, 0},
	OpCloseWS:                 {1, 0, 0},
	OpActivateWS:              {1, 0, 0},
	OpDeactivateWS:            {1, 0, 0},
	OpClearWS:                 {2, 0, 0},
	OpUpdateWS:                {2, 0, 0},
	OpSetDeferralState:        {3, 0, 0},
	OpMessage:                 {1, 0, 0},
	OpSetColorRep:             {2, 3, 0},
	OpSetWSWindow:             {1, 2, 2},
	OpSetWSViewport:           {1, 2, 2},
	OpCreateSegment:           {1, 0, 0},
	OpDeleteSegment:           {1, 0, 0},
	OpAssociateSegment:        {2, 0, 0},
	OpCopySegment:             {2, 0, 0},
	OpRedrawSegOnWS:           {1, 0, 0},
	OpSetSegmentTransform:     {1, 6, 0},
	OpInitializeLocator:       {3, 1, 1},
	OpRequestLocator:          {3, 1, 1},
	OpRequestStroke:           {4, 0, 0},
	OpRequestChoice:           {4, 0, 0},
	OpRequestString:           {3, 0, 0},
	OpGetItem:                 {3, 0, 0},
	OpReadItem:                {2, 0, 0},
	OpEvalTransformMatrix:     {1, 7, 0},
	OpSetPolylineIndex:        {1, 0, 0},
	OpSetLineType:             {1, 0, 0},
	OpSetLineWidth:            {0, 1, 0},
	OpSetPolylineColorIndex:   {1, 0, 0},
	OpSetPolymarkerIndex:      {1, 0, 0},
	OpSetMarkerType:           {1, 0, 0},
	OpSetMarkerSize:           {0, 1, 0},
	OpSetPolymarkerColorIndex: {1, 0, 0},
	OpSetTextIndex:            {1, 0, 0},
	OpSetTextFontPrec:         {2, 0, 0},
	OpSetCharExpansion:        {0, 1, 0},
	OpSetCharSpacing:          {0, 1, 0},
	OpSetTextColorIndex:       {1, 0, 0},
	OpSetCharHeight:           {0, 1, 0},
	OpSetCharUp:               {0, 1, 1},
	OpSetTextPath:             {1, 0, 0},
	OpSetTextAlign:            {2, 0, 0},
	OpSetFillIndex:            {1, 0, 0},
	OpSetFillInteriorStyle:    {1, 0, 0},
	OpSetFillStyleIndex:       {1, 0, 0},
	OpSetFillColorIndex:       {1, 0, 0},
	OpSetASF:                  {NumASF, 0, 0},
	OpSetWindow:               {1, 2, 2},
	OpSetViewport:             {1, 2, 2},
	OpSelectTransform:         {1, 0, 0},
	OpSetClipping:             {1, 0, 0},
	OpSetTextSlant:            {0, 1, 0},
	OpSetShadow:               {0, 3, 0},
	OpSetTransparency:         {0, 1, 0},
	OpSetCoordTransform:       {0, 6, 0},
	OpPolyline:                {0, 2, 2},
	OpPolymarker:              {0, 1, 1},
	OpText:                    {0, 1, 1},
	OpFillArea:                {0, 3, 3},
	OpCellArray:               {0, 2, 2},
	OpDrawImage:               {0, 2, 2},
}

func checkOperands(op Opcode, r *displaylist.Record) error {
	want, ok := minOperands[op]
	if !ok {
		return nil
	}
	if len(r.Ints) < want.ints || len(r.F1) < want.f1 || len(r.F2) < want.f2 {
		switch op.Class() {
		case ClassOutput:
			return newError(op, CodeInvalidPointCount)
		default:
			return newError(op, CodeInvalidItem)
		}
	}
	return nil
}

// apply performs a state-changing function encoded in r. The state is
// left untouched when the function fails validation.
func (s *State) apply(op Opcode, r *displaylist.Record) error {
	if err := checkOperands(op, r); err != nil {
		return err
	}
	switch op {
	case OpSetPolylineIndex:
		return s.SetPolylineIndex(r.Ints[0])
	case OpSetLineType:
		return s.SetLineType(r.Ints[0])
	case OpSetLineWidth:
		return s.SetLineWidth(r.F1[0])
	case OpSetPolylineColorIndex:
		return s.SetLineColor(r.Ints[0])
	case OpSetPolymarkerIndex:
		return s.SetPolymarkerIndex(r.Ints[0])
	case OpSetMarkerType:
		return s.SetMarkerType(r.Ints[0])
	case OpSetMarkerSize:
		return s.SetMarkerSize(r.F1[0])
	case OpSetPolymarkerColorIndex:
		return s.SetMarkerColor(r.Ints[0])
	case OpSetTextIndex:
		return s.SetTextIndex(r.Ints[0])
	case OpSetTextFontPrec:
		return s.SetTextFontPrec(r.Ints[0], r.Ints[1])
	case OpSetCharExpansion:
		return s.SetCharExpansion(r.F1[0])
	case OpSetCharSpacing:
		return s.SetCharSpacing(r.F1[0])
	case OpSetTextColorIndex:
		return s.SetTextColor(r.Ints[0])
	case OpSetCharHeight:
		return s.SetCharHeight(r.F1[0])
	case OpSetCharUp:
		return s.SetCharUp(r.F1[0], r.F2[0])
	case OpSetTextPath:
		return s.SetTextPath(r.Ints[0])
	case OpSetTextAlign:
		return s.SetTextAlign(r.Ints[0], r.Ints[1])
	case OpSetFillIndex:
		return s.SetFillIndex(r.Ints[0])
	case OpSetFillInteriorStyle:
		return s.SetFillInteriorStyle(r.Ints[0])
	case OpSetFillStyleIndex:
		return s.SetFillStyleIndex(r.Ints[0])
	case OpSetFillColorIndex:
		return s.SetFillColor(r.Ints[0])
	case OpSetASF:
		var flags [NumASF]int
		copy(flags[:], r.Ints)
		return s.SetASF(flags)
	case OpSetWindow:
		rect, _ := rectFromArrays(r.F1, r.F2)
		return s.SetWindow(r.Ints[0], rect)
	case OpSetViewport:
		rect, _ := rectFromArrays(r.F1, r.F2)
		return s.SetViewport(r.Ints[0], rect)
	case OpSelectTransform:
		return s.SelectTransform(r.Ints[0])
	case OpSetClipping:
		s.SetClipping(r.Ints[0] != 0)
	case OpSetTextSlant:
		return s.SetTextSlant(r.F1[0])
	case OpSetShadow:
		return s.SetShadow(r.F1[0], r.F1[1], r.F1[2])
	case OpSetTransparency:
		return s.SetTransparency(r.F1[0])
	case OpSetCoordTransform:
		s.CoordMatrix = matrixFromArray(r.F1)
	}
	return nil
}

// checkOutput validates the geometry of an output primitive.
func checkOutput(op Opcode, r *displaylist.Record) error {
	if err := checkOperands(op, r); err != nil {
		return err
	}
	if len(r.F1) != len(r.F2) && (op == OpPolyline || op == OpPolymarker || op == OpFillArea) {
		return newError(op, CodeInvalidPointCount)
	}
	switch op {
	case OpCellArray, OpDrawImage:
		if r.DX < 1 || r.DY < 1 || r.DimX < r.DX || len(r.Ints) < r.DimX*(r.DY-1)+r.DX {
			return newError(op, CodeInvalidColorArray)
		}
		if rect, _ := rectFromArrays(r.F1, r.F2); rect.XMin == rect.XMax || rect.YMin == rect.YMax {
			return newError(op, CodeInvalidRect)
		}
	}
	return nil
}

func pointsRecord(xs, ys []float64) *displaylist.Record {
	return &displaylist.Record{F1: xs, F2: ys}
}

func intsRecord(v ...int) *displaylist.Record {
	return &displaylist.Record{Ints: v}
}

func floatRecord(v ...float64) *displaylist.Record {
	return &displaylist.Record{F1: v}
}

func rectRecord(id int, r Rect) *displaylist.Record {
	return &displaylist.Record{Ints: []int{id}, F1: r.xs(), F2: r.ys()}
}

// RecordRect returns the rectangle carried by a SET_WS_WINDOW or
// SET_WS_VIEWPORT record.
func RecordRect(rec *displaylist.Record) (Rect, bool) {
	return rectFromArrays(rec.F1, rec.F2)
}
