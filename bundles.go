package gks

import (
	"github.com/gogpu/gks/emul"
	"github.com/gogpu/gks/font"
)

type lineBundle struct {
	ltype int
	width float64
	color int
}

type markerBundle struct {
	mtype int
	size  float64
	color int
}

type textBundle struct {
	font, prec int
	expansion  float64
	spacing    float64
	color      int
}

type fillBundle struct {
	style, index, color int
}

// Predefined bundle tables. An index past the end selects bundle 1.
var (
	lineBundles = [...]lineBundle{
		{emul.LineSolid, 1, 1},
		{emul.LineDashed, 1, 1},
		{emul.LineDotted, 1, 1},
		{emul.LineDashDotted, 1, 1},
		{emul.LineSolid, 2, 1},
	}
	markerBundles = [...]markerBundle{
		{emul.MarkerDot, 1, 1},
		{emul.MarkerPlus, 1, 1},
		{emul.MarkerAsterisk, 1, 1},
		{emul.MarkerCircle, 1, 1},
		{emul.MarkerDiagonalCross, 1, 1},
	}
	textBundles = [...]textBundle{
		{font.FontDefault, PrecString, 1, 0, 1},
		{font.FontDefault, PrecChar, 1, 0, 1},
		{font.FontDefault, PrecStroke, 1, 0, 1},
		{font.FontHelvetica, PrecString, 1, 0, 1},
		{font.FontHelvetica, PrecStroke, 1, 0, 1},
		{font.FontCourier, PrecStroke, 1, 0, 1},
	}
	fillBundles = [...]fillBundle{
		{StyleHollow, 1, 1},
		{StyleSolid, 1, 1},
		{StylePattern, 1, 1},
		{StyleHatch, emul.HatchDiagonalUp, 1},
		{StyleHatch, emul.HatchDiagonalCross, 1},
	}
)

func bundle[T any](table []T, index int) T {
	if index < 1 || index > len(table) {
		index = 1
	}
	return table[index-1]
}

func (s *State) individual(flag int) bool {
	return s.ASF[flag] == ASFIndividual
}

// EffectiveLineType resolves the line type through its aspect source flag.
func (s *State) EffectiveLineType() int {
	if s.individual(ASFLineType) {
		return s.LineType
	}
	return bundle(lineBundles[:], s.LineIndex).ltype
}

// EffectiveLineWidth resolves the linewidth scale factor.
func (s *State) EffectiveLineWidth() float64 {
	if s.individual(ASFLineWidth) {
		return s.LineWidth
	}
	return bundle(lineBundles[:], s.LineIndex).width
}

// EffectiveLineColor resolves the polyline color index.
func (s *State) EffectiveLineColor() int {
	if s.individual(ASFLineColor) {
		return s.LineColor
	}
	return bundle(lineBundles[:], s.LineIndex).color
}

// EffectiveMarkerType resolves the marker type.
func (s *State) EffectiveMarkerType() int {
	if s.individual(ASFMarkerType) {
		return s.MarkerType
	}
	return bundle(markerBundles[:], s.MarkerIndex).mtype
}

// EffectiveMarkerSize resolves the marker size scale factor.
func (s *State) EffectiveMarkerSize() float64 {
	if s.individual(ASFMarkerSize) {
		return s.MarkerSize
	}
	return bundle(markerBundles[:], s.MarkerIndex).size
}

// EffectiveMarkerColor resolves the polymarker color index.
func (s *State) EffectiveMarkerColor() int {
	if s.individual(ASFMarkerColor) {
		return s.MarkerColor
	}
	return bundle(markerBundles[:], s.MarkerIndex).color
}

// EffectiveTextFontPrec resolves the text font and precision.
func (s *State) EffectiveTextFontPrec() (fnt, prec int) {
	if s.individual(ASFTextFontPrec) {
		return s.TextFont, s.TextPrec
	}
	b := bundle(textBundles[:], s.TextIndex)
	return b.font, b.prec
}

// EffectiveCharExpansion resolves the character expansion factor.
func (s *State) EffectiveCharExpansion() float64 {
	if s.individual(ASFCharExpansion) {
		return s.CharExpansion
	}
	return bundle(textBundles[:], s.TextIndex).expansion
}

// EffectiveCharSpacing resolves the character spacing.
func (s *State) EffectiveCharSpacing() float64 {
	if s.individual(ASFCharSpacing) {
		return s.CharSpacing
	}
	return bundle(textBundles[:], s.TextIndex).spacing
}

// EffectiveTextColor resolves the text color index.
func (s *State) EffectiveTextColor() int {
	if s.individual(ASFTextColor) {
		return s.TextColor
	}
	return bundle(textBundles[:], s.TextIndex).color
}

// EffectiveInteriorStyle resolves the fill interior style.
func (s *State) EffectiveInteriorStyle() int {
	if s.individual(ASFInteriorStyle) {
		return s.FillInteriorStyle
	}
	return bundle(fillBundles[:], s.FillIndex).style
}

// EffectiveStyleIndex resolves the fill style index.
func (s *State) EffectiveStyleIndex() int {
	if s.individual(ASFStyleIndex) {
		return s.FillStyleIndex
	}
	return bundle(fillBundles[:], s.FillIndex).index
}

// EffectiveFillColor resolves the fill color index.
func (s *State) EffectiveFillColor() int {
	if s.individual(ASFFillColor) {
		return s.FillColor
	}
	return bundle(fillBundles[:], s.FillIndex).color
}
