package gks

import (
	"errors"
	"fmt"
)

// Sentinel errors. Every *Error unwraps to exactly one of them.
var (
	// ErrState is returned when a function is called in the wrong
	// operating state, for example drawing without an active workstation.
	ErrState = errors.New("gks: not in proper state")

	// ErrInvalidWorkstation is returned for non-positive workstation ids.
	ErrInvalidWorkstation = errors.New("gks: invalid workstation identifier")

	// ErrInvalidType is returned for unknown workstation types.
	ErrInvalidType = errors.New("gks: invalid workstation type")

	// ErrAlreadyOpen is returned when opening a workstation id twice.
	ErrAlreadyOpen = errors.New("gks: workstation is open")

	// ErrNotOpen is returned when addressing a workstation that is not open.
	ErrNotOpen = errors.New("gks: workstation is not open")

	// ErrOpenFailed is returned when a driver refuses to open.
	ErrOpenFailed = errors.New("gks: workstation cannot be opened")

	// ErrAlreadyActive is returned when activating an active workstation.
	ErrAlreadyActive = errors.New("gks: workstation is active")

	// ErrNotActive is returned when deactivating an inactive workstation.
	ErrNotActive = errors.New("gks: workstation is not active")

	// ErrCategory is returned when a workstation cannot perform a
	// function because of its category.
	ErrCategory = errors.New("gks: workstation category mismatch")

	// ErrCapacityExceeded is returned when the workstation table is full.
	ErrCapacityExceeded = errors.New("gks: too many open workstations")

	// ErrInvalidTransform is returned for transformation numbers out of
	// range or not user modifiable.
	ErrInvalidTransform = errors.New("gks: invalid transformation number")

	// ErrInvalidRect is returned for degenerate or out-of-range rectangles.
	ErrInvalidRect = errors.New("gks: invalid rectangle")

	// ErrUninitializedTransform is returned when a transformation is used
	// before both its window and viewport have been set.
	ErrUninitializedTransform = errors.New("gks: transformation not initialized")

	// ErrInvalidValue is returned for attribute values out of range.
	ErrInvalidValue = errors.New("gks: invalid value")

	// ErrSegment is returned for invalid segment names and operations on
	// segments that do not exist or are still open.
	ErrSegment = errors.New("gks: segment error")

	// ErrInput is returned for unknown input devices.
	ErrInput = errors.New("gks: input device error")

	// ErrMetafile is returned for invalid or exhausted metafile input.
	ErrMetafile = errors.New("gks: metafile error")
)

// Error codes reported by the kernel.
const (
	CodeNotClosed              = 1
	CodeNotOpen                = 2
	CodeNotActive              = 3
	CodeNoSegmentOpen          = 4
	CodeNotActiveOrSegment     = 5
	CodeNotWSOpenOrActive      = 6
	CodeNoWorkstationOpen      = 7
	CodeGKSNotOpen             = 8
	CodeInvalidWorkstationID   = 20
	CodeInvalidWorkstationType = 22
	CodeNoSuchWorkstationType  = 23
	CodeWorkstationOpen        = 24
	CodeWorkstationNotOpen     = 25
	CodeCannotOpen             = 26
	CodeWorkstationActive      = 29
	CodeWorkstationNotActive   = 30
	CodeCategoryMI             = 33
	CodeNotMI                  = 34
	CodeCategoryInput          = 35
	CodeNotInputCategory       = 38
	CodeTooManyWorkstations    = 42
	CodeInvalidTransform       = 50
	CodeInvalidRect            = 51
	CodeViewportNotInNDC       = 52
	CodeWSWindowNotInNDC       = 53
	CodeWSViewportNotInDisplay = 54
	CodeTransformNotSet        = 55
	CodeInvalidPolylineIndex   = 60
	CodeInvalidLineType        = 62
	CodeNegativeLineWidth      = 65
	CodeInvalidMarkerIndex     = 66
	CodeInvalidMarkerType      = 69
	CodeNegativeMarkerSize     = 71
	CodeInvalidTextIndex       = 72
	CodeZeroFont               = 74
	CodeInvalidExpansion       = 76
	CodeInvalidCharHeight      = 77
	CodeZeroUpVector           = 78
	CodeInvalidFillIndex       = 80
	CodeZeroStyleIndex         = 83
	CodeInvalidPattern         = 85
	CodeInvalidColorArray      = 91
	CodeNegativeColorIndex     = 92
	CodeInvalidColorIndex      = 93
	CodeColorOutOfRange        = 96
	CodeInvalidPointCount      = 100
	CodeInvalidSegmentName     = 120
	CodeSegmentInUse           = 121
	CodeNoSuchSegment          = 122
	CodeSegmentNotOnWS         = 124
	CodeSegmentOpen            = 125
	CodeNoInputDevice          = 140
	CodeNoItemLeft             = 162
	CodeInvalidItem            = 163
	CodeItemNotAllowed         = 164
	CodeEnumOutOfRange         = 2000
)

type codeInfo struct {
	msg string
	err error
}

var codes = map[int]codeInfo{
	CodeNotClosed:              {"GKS not in proper state. GKS must be in the state GKCL", ErrState},
	CodeNotOpen:                {"GKS not in proper state. GKS must be in the state GKOP", ErrState},
	CodeNotActive:              {"GKS not in proper state. GKS must be in the state WSAC", ErrState},
	CodeNoSegmentOpen:          {"GKS not in proper state. GKS must be in the state SGOP", ErrState},
	CodeNotActiveOrSegment:     {"GKS not in proper state. GKS must be either in the state WSAC or SGOP", ErrState},
	CodeNotWSOpenOrActive:      {"GKS not in proper state. GKS must be either in the state WSOP or WSAC", ErrState},
	CodeNoWorkstationOpen:      {"GKS not in proper state. GKS must be in one of the states WSOP, WSAC or SGOP", ErrState},
	CodeGKSNotOpen:             {"GKS not in proper state. GKS must be in one of the states GKOP, WSOP, WSAC or SGOP", ErrState},
	CodeInvalidWorkstationID:   {"specified workstation identifier is invalid", ErrInvalidWorkstation},
	CodeInvalidWorkstationType: {"specified workstation type is invalid", ErrInvalidType},
	CodeNoSuchWorkstationType:  {"specified workstation type does not exist", ErrInvalidType},
	CodeWorkstationOpen:        {"specified workstation is open", ErrAlreadyOpen},
	CodeWorkstationNotOpen:     {"specified workstation is not open", ErrNotOpen},
	CodeCannotOpen:             {"specified workstation cannot be opened", ErrOpenFailed},
	CodeWorkstationActive:      {"specified workstation is active", ErrAlreadyActive},
	CodeWorkstationNotActive:   {"specified workstation is not active", ErrNotActive},
	CodeCategoryMI:             {"specified workstation is of category MI", ErrCategory},
	CodeNotMI:                  {"specified workstation is not of category MI", ErrCategory},
	CodeCategoryInput:          {"specified workstation is of category INPUT", ErrCategory},
	CodeNotInputCategory:       {"specified workstation is neither of category INPUT nor of category OUTIN", ErrCategory},
	CodeTooManyWorkstations:    {"maximum number of simultaneously open workstations would be exceeded", ErrCapacityExceeded},
	CodeInvalidTransform:       {"transformation number is invalid", ErrInvalidTransform},
	CodeInvalidRect:            {"rectangle definition is invalid", ErrInvalidRect},
	CodeViewportNotInNDC:       {"viewport is not within the NDC unit square", ErrInvalidRect},
	CodeWSWindowNotInNDC:       {"workstation window is not within the NDC unit square", ErrInvalidRect},
	CodeWSViewportNotInDisplay: {"workstation viewport is not within the display space", ErrInvalidRect},
	CodeTransformNotSet:        {"window or viewport of the transformation is not set", ErrUninitializedTransform},
	CodeInvalidPolylineIndex:   {"polyline index is invalid", ErrInvalidValue},
	CodeInvalidLineType:        {"linetype is invalid", ErrInvalidValue},
	CodeNegativeLineWidth:      {"linewidth scale factor is not positive", ErrInvalidValue},
	CodeInvalidMarkerIndex:     {"polymarker index is invalid", ErrInvalidValue},
	CodeInvalidMarkerType:      {"marker type is invalid", ErrInvalidValue},
	CodeNegativeMarkerSize:     {"marker size scale factor is not positive", ErrInvalidValue},
	CodeInvalidTextIndex:       {"text index is invalid", ErrInvalidValue},
	CodeZeroFont:               {"text font is equal to zero", ErrInvalidValue},
	CodeInvalidExpansion:       {"character expansion factor is not positive", ErrInvalidValue},
	CodeInvalidCharHeight:      {"character height is not positive", ErrInvalidValue},
	CodeZeroUpVector:           {"length of character up vector is zero", ErrInvalidValue},
	CodeInvalidFillIndex:       {"fill area index is invalid", ErrInvalidValue},
	CodeZeroStyleIndex:         {"style index is equal to zero", ErrInvalidValue},
	CodeInvalidPattern:         {"pattern array is invalid", ErrInvalidValue},
	CodeInvalidColorArray:      {"dimensions of color index array are invalid", ErrInvalidValue},
	CodeNegativeColorIndex:     {"color index is less than zero", ErrInvalidValue},
	CodeInvalidColorIndex:      {"color index is invalid", ErrInvalidValue},
	CodeColorOutOfRange:        {"color component is outside [0, 1]", ErrInvalidValue},
	CodeInvalidPointCount:      {"number of points is invalid", ErrInvalidValue},
	CodeInvalidSegmentName:     {"specified segment name is invalid", ErrSegment},
	CodeSegmentInUse:           {"specified segment name is already in use", ErrSegment},
	CodeNoSuchSegment:          {"specified segment does not exist", ErrSegment},
	CodeSegmentNotOnWS:         {"specified segment does not exist on specified workstation", ErrSegment},
	CodeSegmentOpen:            {"specified segment is open", ErrSegment},
	CodeNoInputDevice:          {"specified input device is not present on workstation", ErrInput},
	CodeNoItemLeft:             {"no item is left in metafile input", ErrMetafile},
	CodeInvalidItem:            {"metafile item is invalid", ErrMetafile},
	CodeItemNotAllowed:         {"item type is not allowed for interpretation", ErrMetafile},
	CodeEnumOutOfRange:         {"enumeration value is out of range", ErrInvalidValue},
}

// Error is a kernel error: the function that failed and a numeric code.
type Error struct {
	Fctid Opcode
	Code  int
}

func newError(fctid Opcode, code int) *Error {
	return &Error{Fctid: fctid, Code: code}
}

// Error renders the function name, the message and the code, for example
// "gks: OPEN_WS: specified workstation is open (error 24)".
func (e *Error) Error() string {
	msg := "unknown error"
	if info, ok := codes[e.Code]; ok {
		msg = info.msg
	}
	return fmt.Sprintf("gks: %s: %s (error %d)", e.Fctid, msg, e.Code)
}

// Unwrap returns the sentinel error for the code.
func (e *Error) Unwrap() error {
	if info, ok := codes[e.Code]; ok {
		return info.err
	}
	return nil
}

// ErrorCode returns the code of the first *Error in err's chain, or 0.
func ErrorCode(err error) int {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return 0
}
