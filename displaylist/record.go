package displaylist

import (
	"bytes"
	"fmt"
	"math"
	"slices"
)

// Record is one encoded function invocation.
//
// Zero-length arrays decode as nil. Equal treats nil and empty arrays as
// the same value.
type Record struct {
	Fctid int
	DX    int
	DY    int
	DimX  int
	Ints  []int
	F1    []float64
	F2    []float64
	Chars []byte
}

const (
	// headerSize covers the length prefix, function id and dimensions.
	headerSize = 5 * 4

	// minRecordSize is a record with all four arrays empty.
	minRecordSize = headerSize + 4*4
)

// EncodedLen returns the number of bytes the record occupies when encoded.
func (r *Record) EncodedLen() int {
	return minRecordSize + 4*len(r.Ints) + 8*len(r.F1) + 8*len(r.F2) + len(r.Chars)
}

// Equal reports whether two records carry the same call.
func (r *Record) Equal(o *Record) bool {
	if r == nil || o == nil {
		return r == o
	}
	return r.Fctid == o.Fctid &&
		r.DX == o.DX && r.DY == o.DY && r.DimX == o.DimX &&
		slices.Equal(r.Ints, o.Ints) &&
		floatsEqual(r.F1, o.F1) &&
		floatsEqual(r.F2, o.F2) &&
		bytes.Equal(r.Chars, o.Chars)
}

// floatsEqual compares bit patterns so NaN payloads round-trip as equal.
func floatsEqual(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if math.Float64bits(a[i]) != math.Float64bits(b[i]) {
			return false
		}
	}
	return true
}

// Clone returns a deep copy of the record.
func (r *Record) Clone() *Record {
	if r == nil {
		return nil
	}
	return &Record{
		Fctid: r.Fctid,
		DX:    r.DX,
		DY:    r.DY,
		DimX:  r.DimX,
		Ints:  slices.Clone(r.Ints),
		F1:    slices.Clone(r.F1),
		F2:    slices.Clone(r.F2),
		Chars: slices.Clone(r.Chars),
	}
}

// String returns a short description used in logs and dumps.
func (r *Record) String() string {
	return fmt.Sprintf("fctid=%d dx=%d dy=%d dimx=%d ints=%d f1=%d f2=%d chars=%d",
		r.Fctid, r.DX, r.DY, r.DimX, len(r.Ints), len(r.F1), len(r.F2), len(r.Chars))
}

// validate checks that every integer fits the 32-bit wire representation.
func (r *Record) validate() error {
	for _, v := range [...]int{r.Fctid, r.DX, r.DY, r.DimX} {
		if v < math.MinInt32 || v > math.MaxInt32 {
			return &RangeError{Value: v}
		}
	}
	for _, v := range r.Ints {
		if v < math.MinInt32 || v > math.MaxInt32 {
			return &RangeError{Value: v}
		}
	}
	if r.EncodedLen() > math.MaxUint32 {
		return ErrRecordTooLarge
	}
	return nil
}
