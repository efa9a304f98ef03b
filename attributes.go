package gks

import "github.com/gogpu/gks/displaylist"

func (k *Kernel) setInt(op Opcode, v ...int) error {
	return k.report(k.dispatch(op, intsRecord(v...)))
}

func (k *Kernel) setFloat(op Opcode, v ...float64) error {
	return k.report(k.dispatch(op, floatRecord(v...)))
}

// SetPolylineIndex selects the polyline bundle.
func (k *Kernel) SetPolylineIndex(i int) error { return k.setInt(OpSetPolylineIndex, i) }

// SetLineType sets the line type.
func (k *Kernel) SetLineType(lt int) error { return k.setInt(OpSetLineType, lt) }

// SetLineWidth sets the linewidth scale factor.
func (k *Kernel) SetLineWidth(w float64) error { return k.setFloat(OpSetLineWidth, w) }

// SetLineColorIndex sets the polyline color index.
func (k *Kernel) SetLineColorIndex(ci int) error { return k.setInt(OpSetPolylineColorIndex, ci) }

// SetPolymarkerIndex selects the polymarker bundle.
func (k *Kernel) SetPolymarkerIndex(i int) error { return k.setInt(OpSetPolymarkerIndex, i) }

// SetMarkerType sets the marker type.
func (k *Kernel) SetMarkerType(mt int) error { return k.setInt(OpSetMarkerType, mt) }

// SetMarkerSize sets the marker size scale factor.
func (k *Kernel) SetMarkerSize(s float64) error { return k.setFloat(OpSetMarkerSize, s) }

// SetMarkerColorIndex sets the polymarker color index.
func (k *Kernel) SetMarkerColorIndex(ci int) error { return k.setInt(OpSetPolymarkerColorIndex, ci) }

// SetTextIndex selects the text bundle.
func (k *Kernel) SetTextIndex(i int) error { return k.setInt(OpSetTextIndex, i) }

// SetTextFontPrec sets the text font and precision.
func (k *Kernel) SetTextFontPrec(fnt, prec int) error { return k.setInt(OpSetTextFontPrec, fnt, prec) }

// SetCharExpansion sets the character expansion factor.
func (k *Kernel) SetCharExpansion(f float64) error { return k.setFloat(OpSetCharExpansion, f) }

// SetCharSpacing sets the character spacing.
func (k *Kernel) SetCharSpacing(f float64) error { return k.setFloat(OpSetCharSpacing, f) }

// SetTextColorIndex sets the text color index.
func (k *Kernel) SetTextColorIndex(ci int) error { return k.setInt(OpSetTextColorIndex, ci) }

// SetCharHeight sets the character height in world coordinates.
func (k *Kernel) SetCharHeight(h float64) error { return k.setFloat(OpSetCharHeight, h) }

// SetCharUp sets the character up vector.
func (k *Kernel) SetCharUp(ux, uy float64) error {
	return k.report(k.dispatch(OpSetCharUp, &displaylist.Record{F1: []float64{ux}, F2: []float64{uy}}))
}

// SetTextPath sets the writing direction.
func (k *Kernel) SetTextPath(path int) error { return k.setInt(OpSetTextPath, path) }

// SetTextAlign sets the horizontal and vertical text alignment.
func (k *Kernel) SetTextAlign(h, v int) error { return k.setInt(OpSetTextAlign, h, v) }

// SetTextSlant sets the character slant in degrees.
func (k *Kernel) SetTextSlant(deg float64) error { return k.setFloat(OpSetTextSlant, deg) }

// SetFillIndex selects the fill area bundle.
func (k *Kernel) SetFillIndex(i int) error { return k.setInt(OpSetFillIndex, i) }

// SetFillInteriorStyle sets hollow, solid, pattern or hatch fill.
func (k *Kernel) SetFillInteriorStyle(style int) error {
	return k.setInt(OpSetFillInteriorStyle, style)
}

// SetFillStyleIndex selects the pattern or hatch style.
func (k *Kernel) SetFillStyleIndex(i int) error { return k.setInt(OpSetFillStyleIndex, i) }

// SetFillColorIndex sets the fill color index.
func (k *Kernel) SetFillColorIndex(ci int) error { return k.setInt(OpSetFillColorIndex, ci) }

// SetASF sets the 13 aspect source flags, in the order of the ASF
// constants.
func (k *Kernel) SetASF(flags [NumASF]int) error { return k.setInt(OpSetASF, flags[:]...) }

// SetShadow sets the shadow offset and blur.
func (k *Kernel) SetShadow(dx, dy, blur float64) error { return k.setFloat(OpSetShadow, dx, dy, blur) }

// SetTransparency sets the alpha value.
func (k *Kernel) SetTransparency(alpha float64) error { return k.setFloat(OpSetTransparency, alpha) }

// SetCoordTransform sets the transformation applied to world coordinates
// by drivers that support it.
func (k *Kernel) SetCoordTransform(m Matrix) error {
	return k.setFloat(OpSetCoordTransform, m.Array()...)
}

// SetWindow sets the window of normalization transformation slot.
func (k *Kernel) SetWindow(slot int, r Rect) error {
	return k.report(k.dispatch(OpSetWindow, rectRecord(slot, r)))
}

// SetViewport sets the viewport of normalization transformation slot.
func (k *Kernel) SetViewport(slot int, r Rect) error {
	return k.report(k.dispatch(OpSetViewport, rectRecord(slot, r)))
}

// SelectTransform selects the normalization transformation for output.
func (k *Kernel) SelectTransform(slot int) error { return k.setInt(OpSelectTransform, slot) }

// SetClipping turns clipping at the viewport on or off.
func (k *Kernel) SetClipping(on bool) error {
	v := 0
	if on {
		v = 1
	}
	return k.setInt(OpSetClipping, v)
}

// EvalTransformMatrix builds a segment transformation; see
// State.EvalTransformMatrix.
func (k *Kernel) EvalTransformMatrix(fixed, shift Point, phi float64, scale Point, coords CoordSwitch) (Matrix, error) {
	rec := &displaylist.Record{
		Ints: []int{int(coords)},
		F1:   []float64{fixed.X, fixed.Y, shift.X, shift.Y, phi, scale.X, scale.Y},
	}
	if err := k.dispatch(OpEvalTransformMatrix, rec); err != nil {
		return Identity(), k.report(err)
	}
	return matrixFromArray(rec.F2), nil
}
