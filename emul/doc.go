// Package emul synthesizes primitives that an output driver cannot render
// natively from the two it always can: moving the pen and drawing a
// straight line.
//
// Dashed polylines, markers, stroke text and area fills are all reduced to
// sequences of Canvas.MoveTo and Canvas.LineTo calls. Every function is a
// pure transformation of its arguments. The only state that outlives a
// single call is the dash phase, which lives in a caller-owned DashState so
// consecutive segments of one polyline continue the same pattern.
//
// Coordinates are whatever space the caller works in, usually normalized
// device coordinates or device units; lengths such as dash lengths, marker
// sizes and character heights are in that same space.
package emul
