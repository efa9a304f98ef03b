package displaylist

import (
	"errors"
	"fmt"
)

// Sentinel errors for the displaylist package.
var (
	// ErrShortRecord is returned when the data ends inside a record.
	ErrShortRecord = errors.New("displaylist: short record")

	// ErrCorruptRecord is returned when a record's counts disagree with its length.
	ErrCorruptRecord = errors.New("displaylist: corrupt record")

	// ErrRecordTooLarge is returned when a record cannot be length-prefixed.
	ErrRecordTooLarge = errors.New("displaylist: record too large")

	// ErrBadMagic is returned when a stream does not start with the metafile header.
	ErrBadMagic = errors.New("displaylist: bad stream header")
)

// RangeError is returned when an integer operand does not fit in 32 bits.
type RangeError struct {
	Value int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("displaylist: value %d out of int32 range", e.Value)
}

// VersionError is returned when a stream was written by an unknown format version.
type VersionError struct {
	Got uint16
}

func (e *VersionError) Error() string {
	return fmt.Sprintf("displaylist: unsupported stream version %d (want %d)", e.Got, Version)
}
