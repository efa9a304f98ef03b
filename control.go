package gks

import "github.com/gogpu/gks/displaylist"

// Clear control flags.
const (
	ClearConditionally = 0
	ClearAlways        = 1
)

// Update regeneration flags.
const (
	UpdatePostpone = 0
	UpdatePerform  = 1
)

// ClearWorkstation clears the display surface of workstation id.
func (k *Kernel) ClearWorkstation(id, flag int) error {
	return k.report(k.dispatch(OpClearWS, intsRecord(id, flag)))
}

// UpdateWorkstation flushes deferred output of workstation id.
func (k *Kernel) UpdateWorkstation(id, flag int) error {
	return k.report(k.dispatch(OpUpdateWS, intsRecord(id, flag)))
}

// SetDeferralState sets how workstation id may defer output.
func (k *Kernel) SetDeferralState(id, deferral, regeneration int) error {
	return k.report(k.dispatch(OpSetDeferralState, intsRecord(id, deferral, regeneration)))
}

// Message sends a text message to workstation id.
func (k *Kernel) Message(id int, msg string) error {
	rec := &displaylist.Record{Ints: []int{id}, Chars: latin1(msg)}
	return k.report(k.dispatch(OpMessage, rec))
}

// SetWorkstationWindow sets the part of NDC space workstation id shows.
func (k *Kernel) SetWorkstationWindow(id int, r Rect) error {
	return k.report(k.dispatch(OpSetWSWindow, rectRecord(id, r)))
}

// SetWorkstationViewport sets where the workstation window appears, in
// device units.
func (k *Kernel) SetWorkstationViewport(id int, r Rect) error {
	return k.report(k.dispatch(OpSetWSViewport, rectRecord(id, r)))
}

// SetColorRep sets the color of index on workstation id and in the
// kernel's color table.
func (k *Kernel) SetColorRep(id, index int, c RGB) error {
	rec := &displaylist.Record{Ints: []int{id, index}, F1: []float64{c.R, c.G, c.B}}
	return k.report(k.dispatch(OpSetColorRep, rec))
}

// InqColorRep returns the color of index.
func (k *Kernel) InqColorRep(index int) (RGB, error) {
	if index < 0 {
		return RGB{}, k.report(newError(OpSetColorRep, CodeNegativeColorIndex))
	}
	c, ok := k.tables.color(index)
	if !ok {
		return RGB{}, k.report(newError(OpSetColorRep, CodeInvalidColorIndex))
	}
	return c, nil
}

// SetPatternArray sets a fill pattern: the row count (4, 8, 16 or 32)
// followed by that many 8-bit rows.
func (k *Kernel) SetPatternArray(index int, pa []int) error {
	if index < 1 {
		return k.report(newError(OpSetFillStyleIndex, CodeZeroStyleIndex))
	}
	if !validPattern(pa) {
		return k.report(newError(OpSetFillStyleIndex, CodeInvalidPattern))
	}
	k.tables.setPattern(index, pa)
	return nil
}

// InqPatternArray returns the pattern of index.
func (k *Kernel) InqPatternArray(index int) ([]int, error) {
	pa, ok := k.tables.pattern(index)
	if !ok {
		return nil, k.report(newError(OpSetFillStyleIndex, CodeInvalidPattern))
	}
	return append([]int(nil), pa...), nil
}

// SetPixel maps a color index to a device pixel value.
func (k *Kernel) SetPixel(index, pixel int) error {
	if index < 0 {
		return k.report(newError(OpSetColorRep, CodeNegativeColorIndex))
	}
	k.tables.setPixel(index, pixel)
	return nil
}

// InqPixel returns the pixel value of a color index, by default its packed
// RGB color.
func (k *Kernel) InqPixel(index int) (int, error) {
	p, ok := k.tables.pixel(index)
	if !ok {
		return 0, k.report(newError(OpSetColorRep, CodeInvalidColorIndex))
	}
	return p, nil
}
