package gks

import "strconv"

// Opcode identifies a kernel function. The numbers are part of the
// display-list and metafile format and never change; new functions are
// appended at the end of their range.
type Opcode int32

// Lifecycle and workstation control.
const (
	OpOpenGKS          Opcode = 0
	OpCloseGKS         Opcode = 1
	OpOpenWS           Opcode = 2
	OpCloseWS          Opcode = 3
	OpActivateWS       Opcode = 4
	OpDeactivateWS     Opcode = 5
	OpClearWS          Opcode = 6
	OpRedrawSegOnWS    Opcode = 7
	OpUpdateWS         Opcode = 8
	OpSetDeferralState Opcode = 9
	OpMessage          Opcode = 10
	OpEscape           Opcode = 11
)

// Output primitives.
const (
	OpPolyline   Opcode = 12
	OpPolymarker Opcode = 13
	OpText       Opcode = 14
	OpFillArea   Opcode = 15
	OpCellArray  Opcode = 16
)

// Primitive attributes.
const (
	OpSetPolylineIndex        Opcode = 18
	OpSetLineType             Opcode = 19
	OpSetLineWidth            Opcode = 20
	OpSetPolylineColorIndex   Opcode = 21
	OpSetPolymarkerIndex      Opcode = 22
	OpSetMarkerType           Opcode = 23
	OpSetMarkerSize           Opcode = 24
	OpSetPolymarkerColorIndex Opcode = 25
	OpSetTextIndex            Opcode = 26
	OpSetTextFontPrec         Opcode = 27
	OpSetCharExpansion        Opcode = 28
	OpSetCharSpacing          Opcode = 29
	OpSetTextColorIndex       Opcode = 30
	OpSetCharHeight           Opcode = 31
	OpSetCharUp               Opcode = 32
	OpSetTextPath             Opcode = 33
	OpSetTextAlign            Opcode = 34
	OpSetFillIndex            Opcode = 35
	OpSetFillInteriorStyle    Opcode = 36
	OpSetFillStyleIndex       Opcode = 37
	OpSetFillColorIndex       Opcode = 38
	OpSetASF                  Opcode = 41
	OpSetColorRep             Opcode = 48
	OpSetWindow               Opcode = 49
	OpSetViewport             Opcode = 50
	OpSelectTransform         Opcode = 52
	OpSetClipping             Opcode = 53
	OpSetWSWindow             Opcode = 54
	OpSetWSViewport           Opcode = 55
	OpCreateSegment           Opcode = 56
	OpCloseSegment            Opcode = 57
	OpDeleteSegment           Opcode = 58
	OpAssociateSegment        Opcode = 61
	OpCopySegment             Opcode = 62
	OpSetSegmentTransform     Opcode = 64
	OpInitializeLocator       Opcode = 69
	OpRequestLocator          Opcode = 81
	OpRequestStroke           Opcode = 82
	OpRequestChoice           Opcode = 84
	OpRequestString           Opcode = 86
	OpGetItem                 Opcode = 102
	OpReadItem                Opcode = 103
	OpInterpretItem           Opcode = 104
	OpEvalTransformMatrix     Opcode = 105
)

// Extensions.
const (
	OpSetTextSlant       Opcode = 200
	OpDrawImage          Opcode = 201
	OpSetShadow          Opcode = 202
	OpSetTransparency    Opcode = 203
	OpSetCoordTransform  Opcode = 204
	OpBeginSelection     Opcode = 250
	OpEndSelection       Opcode = 251
	OpMoveSelection      Opcode = 252
	OpResizeSelection    Opcode = 253
	OpInquireBoundingBox Opcode = 254
)

// Class groups opcodes by how the kernel routes them.
type Class uint8

const (
	ClassLifecycle Class = iota // kernel and workstation lifecycle
	ClassControl                // addressed to one workstation
	ClassOutput                 // drawn on every active workstation
	ClassAttribute              // state change, forwarded to active workstations
	ClassTransform              // transformation and clipping state
	ClassSegment                // segment storage
	ClassInput                  // request input from one workstation
	ClassMetafile               // metafile items
	ClassLocal                  // computed by the kernel, never dispatched
	ClassExtension              // forwarded to active workstations, not recorded
)

var classNames = [...]string{
	ClassLifecycle: "lifecycle",
	ClassControl:   "control",
	ClassOutput:    "output",
	ClassAttribute: "attribute",
	ClassTransform: "transform",
	ClassSegment:   "segment",
	ClassInput:     "input",
	ClassMetafile:  "metafile",
	ClassLocal:     "local",
	ClassExtension: "extension",
}

// String returns the class name.
func (c Class) String() string {
	if int(c) < len(classNames) {
		return classNames[c]
	}
	return "Class(" + strconv.Itoa(int(c)) + ")"
}

type opcodeInfo struct {
	name  string
	class Class
}

// opcodes is the closed registry of kernel functions.
var opcodes = map[Opcode]opcodeInfo{
	OpOpenGKS:          {"OPEN_GKS", ClassLifecycle},
	OpCloseGKS:         {"CLOSE_GKS", ClassLifecycle},
	OpOpenWS:           {"OPEN_WS", ClassLifecycle},
	OpCloseWS:          {"CLOSE_WS", ClassLifecycle},
	OpActivateWS:       {"ACTIVATE_WS", ClassLifecycle},
	OpDeactivateWS:     {"DEACTIVATE_WS", ClassLifecycle},
	OpClearWS:          {"CLEAR_WS", ClassControl},
	OpRedrawSegOnWS:    {"REDRAW_SEG_ON_WS", ClassSegment},
	OpUpdateWS:         {"UPDATE_WS", ClassControl},
	OpSetDeferralState: {"SET_DEFERRAL_STATE", ClassControl},
	OpMessage:          {"MESSAGE", ClassControl},
	OpEscape:           {"ESCAPE", ClassExtension},

	OpPolyline:   {"POLYLINE", ClassOutput},
	OpPolymarker: {"POLYMARKER", ClassOutput},
	OpText:       {"TEXT", ClassOutput},
	OpFillArea:   {"FILLAREA", ClassOutput},
	OpCellArray:  {"CELLARRAY", ClassOutput},

	OpSetPolylineIndex:        {"SET_PLINE_INDEX", ClassAttribute},
	OpSetLineType:             {"SET_PLINE_LINETYPE", ClassAttribute},
	OpSetLineWidth:            {"SET_PLINE_LINEWIDTH", ClassAttribute},
	OpSetPolylineColorIndex:   {"SET_PLINE_COLOR_INDEX", ClassAttribute},
	OpSetPolymarkerIndex:      {"SET_PMARK_INDEX", ClassAttribute},
	OpSetMarkerType:           {"SET_PMARK_TYPE", ClassAttribute},
	OpSetMarkerSize:           {"SET_PMARK_SIZE", ClassAttribute},
	OpSetPolymarkerColorIndex: {"SET_PMARK_COLOR_INDEX", ClassAttribute},
	OpSetTextIndex:            {"SET_TEXT_INDEX", ClassAttribute},
	OpSetTextFontPrec:         {"SET_TEXT_FONTPREC", ClassAttribute},
	OpSetCharExpansion:        {"SET_TEXT_EXPFAC", ClassAttribute},
	OpSetCharSpacing:          {"SET_TEXT_SPACING", ClassAttribute},
	OpSetTextColorIndex:       {"SET_TEXT_COLOR_INDEX", ClassAttribute},
	OpSetCharHeight:           {"SET_TEXT_HEIGHT", ClassAttribute},
	OpSetCharUp:               {"SET_TEXT_UPVEC", ClassAttribute},
	OpSetTextPath:             {"SET_TEXT_PATH", ClassAttribute},
	OpSetTextAlign:            {"SET_TEXT_ALIGN", ClassAttribute},
	OpSetFillIndex:            {"SET_FILL_INDEX", ClassAttribute},
	OpSetFillInteriorStyle:    {"SET_FILL_INT_STYLE", ClassAttribute},
	OpSetFillStyleIndex:       {"SET_FILL_STYLE_INDEX", ClassAttribute},
	OpSetFillColorIndex:       {"SET_FILL_COLOR_INDEX", ClassAttribute},
	OpSetASF:                  {"SET_ASF", ClassAttribute},
	OpSetColorRep:             {"SET_COLOR_REP", ClassControl},

	OpSetWindow:       {"SET_WINDOW", ClassTransform},
	OpSetViewport:     {"SET_VIEWPORT", ClassTransform},
	OpSelectTransform: {"SELECT_XFORM", ClassTransform},
	OpSetClipping:     {"SET_CLIPPING", ClassTransform},
	OpSetWSWindow:     {"SET_WS_WINDOW", ClassControl},
	OpSetWSViewport:   {"SET_WS_VIEWPORT", ClassControl},

	OpCreateSegment:       {"CREATE_SEG", ClassSegment},
	OpCloseSegment:        {"CLOSE_SEG", ClassSegment},
	OpDeleteSegment:       {"DELETE_SEG", ClassSegment},
	OpAssociateSegment:    {"ASSOC_SEG_WITH_WS", ClassSegment},
	OpCopySegment:         {"COPY_SEG_TO_WS", ClassSegment},
	OpSetSegmentTransform: {"SET_SEG_XFORM", ClassSegment},

	OpInitializeLocator: {"INITIALIZE_LOCATOR", ClassInput},
	OpRequestLocator:    {"REQUEST_LOCATOR", ClassInput},
	OpRequestStroke:     {"REQUEST_STROKE", ClassInput},
	OpRequestChoice:     {"REQUEST_CHOICE", ClassInput},
	OpRequestString:     {"REQUEST_STRING", ClassInput},

	OpGetItem:             {"GET_ITEM", ClassMetafile},
	OpReadItem:            {"READ_ITEM", ClassMetafile},
	OpInterpretItem:       {"INTERPRET_ITEM", ClassMetafile},
	OpEvalTransformMatrix: {"EVAL_XFORM_MATRIX", ClassLocal},

	OpSetTextSlant:       {"SET_TEXT_SLANT", ClassAttribute},
	OpDrawImage:          {"DRAW_IMAGE", ClassOutput},
	OpSetShadow:          {"SET_SHADOW", ClassAttribute},
	OpSetTransparency:    {"SET_TRANSPARENCY", ClassAttribute},
	OpSetCoordTransform:  {"SET_COORD_XFORM", ClassAttribute},
	OpBeginSelection:     {"BEGIN_SELECTION", ClassExtension},
	OpEndSelection:       {"END_SELECTION", ClassExtension},
	OpMoveSelection:      {"MOVE_SELECTION", ClassExtension},
	OpResizeSelection:    {"RESIZE_SELECTION", ClassExtension},
	OpInquireBoundingBox: {"INQ_BBOX", ClassExtension},
}

// Valid reports whether op is a registered opcode.
func (op Opcode) Valid() bool {
	_, ok := opcodes[op]
	return ok
}

// String returns the function name, for example "POLYLINE".
func (op Opcode) String() string {
	if info, ok := opcodes[op]; ok {
		return info.name
	}
	return "Opcode(" + strconv.Itoa(int(op)) + ")"
}

// Class returns the routing class of op. It panics for unregistered
// opcodes since the registry is closed.
func (op Opcode) Class() Class {
	info, ok := opcodes[op]
	if !ok {
		panic("gks: unknown opcode " + strconv.Itoa(int(op)))
	}
	return info.class
}
