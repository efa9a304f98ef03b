package gks

import (
	"math"

	"github.com/gogpu/gks/emul"
	"github.com/gogpu/gks/font"
)

// Text precisions.
const (
	PrecString = 0
	PrecChar   = 1
	PrecStroke = 2
)

// Fill interior styles.
const (
	StyleHollow  = 0
	StyleSolid   = 1
	StylePattern = 2
	StyleHatch   = 3
)

// Aspect source flag values.
const (
	ASFBundled    = 0
	ASFIndividual = 1
)

// Aspect source flag positions in State.ASF.
const (
	ASFLineType = iota
	ASFLineWidth
	ASFLineColor
	ASFMarkerType
	ASFMarkerSize
	ASFMarkerColor
	ASFTextFontPrec
	ASFCharExpansion
	ASFCharSpacing
	ASFTextColor
	ASFInteriorStyle
	ASFStyleIndex
	ASFFillColor
	NumASF
)

// State holds every current attribute of a kernel. Workstation drivers
// receive it with each call and read whatever they need; segment replay
// runs against a copy.
type State struct {
	LineIndex int
	LineType  int
	LineWidth float64
	LineColor int

	MarkerIndex int
	MarkerType  int
	MarkerSize  float64
	MarkerColor int

	TextIndex     int
	TextFont      int
	TextPrec      int
	CharExpansion float64
	CharSpacing   float64
	TextColor     int
	CharHeight    float64
	CharUpX       float64
	CharUpY       float64
	TextPath      int
	TextHAlign    int
	TextVAlign    int
	TextSlant     float64

	FillIndex         int
	FillInteriorStyle int
	FillStyleIndex    int
	FillColor         int

	transforms       [MaxTransforms]normTransform
	CurrentTransform int
	Clip             bool

	// SegmentMatrix is applied to NDC coordinates of output primitives.
	SegmentMatrix Matrix

	ASF [NumASF]int

	ShadowOffsetX, ShadowOffsetY float64
	ShadowBlur                   float64
	Alpha                        float64

	// CoordMatrix is applied to world coordinates before normalization by
	// drivers that support coordinate transformations.
	CoordMatrix Matrix

	fonts font.Source
}

// NewState returns a state reset to defaults.
func NewState() *State {
	s := &State{}
	s.Init()
	return s
}

// Init resets every attribute to its default. Slot 0 maps the NDC unit
// square onto itself; slots 1-9 have neither window nor viewport.
func (s *State) Init() {
	fonts := s.fonts
	*s = State{
		LineIndex:      1,
		LineType:       emul.LineSolid,
		LineWidth:      1,
		LineColor:      1,
		MarkerIndex:    1,
		MarkerType:     emul.MarkerAsterisk,
		MarkerSize:     1,
		MarkerColor:    1,
		TextIndex:      1,
		TextFont:       font.FontDefault,
		TextPrec:       PrecString,
		CharExpansion:  1,
		TextColor:      1,
		CharHeight:     0.01,
		CharUpY:        1,
		TextPath:       emul.PathRight,
		FillIndex:      1,
		FillStyleIndex: 1,
		FillColor:      1,
		Clip:           true,
		SegmentMatrix:  Identity(),
		CoordMatrix:    Identity(),
		Alpha:          1,
		fonts:          fonts,
	}
	t := &s.transforms[0]
	t.window, t.viewport = UnitSquare, UnitSquare
	t.windowSet, t.viewportSet = true, true
	t.update()
	for i := range s.ASF {
		s.ASF[i] = ASFIndividual
	}
}

// Clone returns an independent copy of s.
func (s *State) Clone() *State {
	c := *s
	return &c
}

// Fonts returns the stroke font source shared by the kernel and drivers.
func (s *State) Fonts() font.Source {
	if s.fonts == nil {
		if src, err := font.Default(); err == nil {
			s.fonts = src
		}
	}
	return s.fonts
}

func (s *State) validColor(op Opcode, ci int) error {
	if ci < 0 {
		return newError(op, CodeNegativeColorIndex)
	}
	return nil
}

// SetPolylineIndex selects the polyline bundle.
func (s *State) SetPolylineIndex(i int) error {
	if i < 1 {
		return newError(OpSetPolylineIndex, CodeInvalidPolylineIndex)
	}
	s.LineIndex = i
	return nil
}

// SetLineType sets the line type: 1-4 or an extended type -1..-8.
func (s *State) SetLineType(lt int) error {
	if !emul.ValidLineType(lt) {
		return newError(OpSetLineType, CodeInvalidLineType)
	}
	s.LineType = lt
	return nil
}

// SetLineWidth sets the linewidth scale factor.
func (s *State) SetLineWidth(w float64) error {
	if !(w > 0) {
		return newError(OpSetLineWidth, CodeNegativeLineWidth)
	}
	s.LineWidth = w
	return nil
}

// SetLineColor sets the polyline color index.
func (s *State) SetLineColor(ci int) error {
	if err := s.validColor(OpSetPolylineColorIndex, ci); err != nil {
		return err
	}
	s.LineColor = ci
	return nil
}

// SetPolymarkerIndex selects the polymarker bundle.
func (s *State) SetPolymarkerIndex(i int) error {
	if i < 1 {
		return newError(OpSetPolymarkerIndex, CodeInvalidMarkerIndex)
	}
	s.MarkerIndex = i
	return nil
}

// SetMarkerType sets the marker type: 1-5 or an extended type -1..-20.
func (s *State) SetMarkerType(mt int) error {
	if !emul.ValidMarkerType(mt) {
		return newError(OpSetMarkerType, CodeInvalidMarkerType)
	}
	s.MarkerType = mt
	return nil
}

// SetMarkerSize sets the marker size scale factor.
func (s *State) SetMarkerSize(size float64) error {
	if !(size > 0) {
		return newError(OpSetMarkerSize, CodeNegativeMarkerSize)
	}
	s.MarkerSize = size
	return nil
}

// SetMarkerColor sets the polymarker color index.
func (s *State) SetMarkerColor(ci int) error {
	if err := s.validColor(OpSetPolymarkerColorIndex, ci); err != nil {
		return err
	}
	s.MarkerColor = ci
	return nil
}

// SetTextIndex selects the text bundle.
func (s *State) SetTextIndex(i int) error {
	if i < 1 {
		return newError(OpSetTextIndex, CodeInvalidTextIndex)
	}
	s.TextIndex = i
	return nil
}

// SetTextFontPrec sets the text font and precision.
func (s *State) SetTextFontPrec(fnt, prec int) error {
	if fnt == 0 {
		return newError(OpSetTextFontPrec, CodeZeroFont)
	}
	if prec < PrecString || prec > PrecStroke {
		return newError(OpSetTextFontPrec, CodeEnumOutOfRange)
	}
	s.TextFont, s.TextPrec = fnt, prec
	return nil
}

// SetCharExpansion sets the character expansion factor.
func (s *State) SetCharExpansion(f float64) error {
	if !(f > 0) {
		return newError(OpSetCharExpansion, CodeInvalidExpansion)
	}
	s.CharExpansion = f
	return nil
}

// SetCharSpacing sets the spacing between characters, as a fraction of
// the character height. Any finite value is valid.
func (s *State) SetCharSpacing(f float64) error {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return newError(OpSetCharSpacing, CodeEnumOutOfRange)
	}
	s.CharSpacing = f
	return nil
}

// SetTextColor sets the text color index.
func (s *State) SetTextColor(ci int) error {
	if err := s.validColor(OpSetTextColorIndex, ci); err != nil {
		return err
	}
	s.TextColor = ci
	return nil
}

// SetCharHeight sets the character height in world coordinates.
func (s *State) SetCharHeight(h float64) error {
	if !(h > 0) {
		return newError(OpSetCharHeight, CodeInvalidCharHeight)
	}
	s.CharHeight = h
	return nil
}

// SetCharUp sets the character up vector.
func (s *State) SetCharUp(ux, uy float64) error {
	if ux == 0 && uy == 0 {
		return newError(OpSetCharUp, CodeZeroUpVector)
	}
	s.CharUpX, s.CharUpY = ux, uy
	return nil
}

// SetTextPath sets the text path: right, left, up or down.
func (s *State) SetTextPath(path int) error {
	if path < emul.PathRight || path > emul.PathDown {
		return newError(OpSetTextPath, CodeEnumOutOfRange)
	}
	s.TextPath = path
	return nil
}

// SetTextAlign sets the horizontal and vertical text alignment.
func (s *State) SetTextAlign(h, v int) error {
	if h < emul.HAlignNormal || h > emul.HAlignRight ||
		v < emul.VAlignNormal || v > emul.VAlignBottom {
		return newError(OpSetTextAlign, CodeEnumOutOfRange)
	}
	s.TextHAlign, s.TextVAlign = h, v
	return nil
}

// SetTextSlant sets the character slant in degrees.
func (s *State) SetTextSlant(deg float64) error {
	if !(deg > -90 && deg < 90) {
		return newError(OpSetTextSlant, CodeEnumOutOfRange)
	}
	s.TextSlant = deg
	return nil
}

// SetFillIndex selects the fill area bundle.
func (s *State) SetFillIndex(i int) error {
	if i < 1 {
		return newError(OpSetFillIndex, CodeInvalidFillIndex)
	}
	s.FillIndex = i
	return nil
}

// SetFillInteriorStyle sets hollow, solid, pattern or hatch fill.
func (s *State) SetFillInteriorStyle(style int) error {
	if style < StyleHollow || style > StyleHatch {
		return newError(OpSetFillInteriorStyle, CodeEnumOutOfRange)
	}
	s.FillInteriorStyle = style
	return nil
}

// SetFillStyleIndex selects the pattern or hatch style.
func (s *State) SetFillStyleIndex(i int) error {
	if i == 0 {
		return newError(OpSetFillStyleIndex, CodeZeroStyleIndex)
	}
	s.FillStyleIndex = i
	return nil
}

// SetFillColor sets the fill area color index.
func (s *State) SetFillColor(ci int) error {
	if err := s.validColor(OpSetFillColorIndex, ci); err != nil {
		return err
	}
	s.FillColor = ci
	return nil
}

// SetASF sets all 13 aspect source flags.
func (s *State) SetASF(flags [NumASF]int) error {
	for _, f := range flags {
		if f != ASFBundled && f != ASFIndividual {
			return newError(OpSetASF, CodeEnumOutOfRange)
		}
	}
	s.ASF = flags
	return nil
}

// SetClipping turns clipping to the current viewport on or off.
func (s *State) SetClipping(on bool) {
	s.Clip = on
}

// SetShadow sets the shadow offset and blur.
func (s *State) SetShadow(dx, dy, blur float64) error {
	if blur < 0 {
		return newError(OpSetShadow, CodeEnumOutOfRange)
	}
	s.ShadowOffsetX, s.ShadowOffsetY, s.ShadowBlur = dx, dy, blur
	return nil
}

// SetTransparency sets the alpha value in [0, 1].
func (s *State) SetTransparency(alpha float64) error {
	if !(alpha >= 0 && alpha <= 1) {
		return newError(OpSetTransparency, CodeColorOutOfRange)
	}
	s.Alpha = alpha
	return nil
}

// TextStyle returns the text attributes for stroke text emulation in world
// coordinates.
func (s *State) TextStyle() emul.TextStyle {
	fnt, prec := s.EffectiveTextFontPrec()
	return emul.TextStyle{
		Font:      fnt,
		Height:    s.CharHeight,
		UpX:       s.CharUpX,
		UpY:       s.CharUpY,
		Expansion: s.EffectiveCharExpansion(),
		Spacing:   s.EffectiveCharSpacing(),
		Path:      s.TextPath,
		HAlign:    s.TextHAlign,
		VAlign:    s.TextVAlign,
		Slant:     s.TextSlant,
		Fill:      prec != PrecStroke,
	}
}

// NDCTextStyle returns TextStyle with height and up vector mapped through
// the current normalization transformation.
func (s *State) NDCTextStyle() (emul.TextStyle, error) {
	st := s.TextStyle()
	a, _, c, _, err := s.Coefficients(s.CurrentTransform)
	if err != nil {
		return st, err
	}
	st.Height *= math.Abs(c)
	st.UpX *= a
	st.UpY *= c
	return st, nil
}
