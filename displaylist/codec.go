package displaylist

import (
	"encoding/binary"
	"math"
)

var le = binary.LittleEndian

// AppendRecord appends the encoding of rec to dst and returns the extended slice.
func AppendRecord(dst []byte, rec *Record) ([]byte, error) {
	if err := rec.validate(); err != nil {
		return dst, err
	}
	n := rec.EncodedLen()
	dst = grow(dst, n)

	dst = le.AppendUint32(dst, uint32(n))
	dst = appendInt32(dst, rec.Fctid)
	dst = appendInt32(dst, rec.DX)
	dst = appendInt32(dst, rec.DY)
	dst = appendInt32(dst, rec.DimX)

	dst = appendInt32(dst, len(rec.Ints))
	for _, v := range rec.Ints {
		dst = appendInt32(dst, v)
	}
	dst = appendFloats(dst, rec.F1)
	dst = appendFloats(dst, rec.F2)
	dst = appendInt32(dst, len(rec.Chars))
	dst = append(dst, rec.Chars...)
	return dst, nil
}

// MarshalRecord returns the encoding of rec.
func MarshalRecord(rec *Record) ([]byte, error) {
	return AppendRecord(make([]byte, 0, rec.EncodedLen()), rec)
}

// UnmarshalRecord decodes the record at the start of data and returns it
// together with the number of bytes consumed.
func UnmarshalRecord(data []byte) (*Record, int, error) {
	n, err := recordLen(data)
	if err != nil {
		return nil, 0, err
	}
	d := reader{buf: data[4:n]}
	rec := &Record{
		Fctid: d.int32(),
		DX:    d.int32(),
		DY:    d.int32(),
		DimX:  d.int32(),
	}
	rec.Ints = d.ints()
	rec.F1 = d.floats()
	rec.F2 = d.floats()
	rec.Chars = d.bytes()
	if d.err != nil || len(d.buf) != 0 {
		return nil, 0, ErrCorruptRecord
	}
	return rec, n, nil
}

// PeekRecord returns the function id and encoded length of the record at the
// start of data without decoding its arrays.
func PeekRecord(data []byte) (fctid, length int, err error) {
	n, err := recordLen(data)
	if err != nil {
		return 0, 0, err
	}
	return int(int32(le.Uint32(data[4:8]))), n, nil
}

// recordLen validates the length prefix against the available data.
func recordLen(data []byte) (int, error) {
	if len(data) < 4 {
		return 0, ErrShortRecord
	}
	n := int(le.Uint32(data))
	if n < minRecordSize {
		return 0, ErrCorruptRecord
	}
	if n > len(data) {
		return 0, ErrShortRecord
	}
	return n, nil
}

// grow makes room for n more bytes, doubling capacity as needed.
func grow(buf []byte, n int) []byte {
	need := len(buf) + n
	if need <= cap(buf) {
		return buf
	}
	newCap := cap(buf) * 2
	if newCap < need {
		newCap = need
	}
	tmp := make([]byte, len(buf), newCap)
	copy(tmp, buf)
	return tmp
}

func appendInt32(dst []byte, v int) []byte {
	return le.AppendUint32(dst, uint32(int32(v))) //nolint:gosec // range checked in validate
}

func appendFloats(dst []byte, fs []float64) []byte {
	dst = appendInt32(dst, len(fs))
	for _, f := range fs {
		dst = le.AppendUint64(dst, math.Float64bits(f))
	}
	return dst
}

// reader consumes a record body. The first failure sticks in err.
type reader struct {
	buf []byte
	err error
}

func (r *reader) take(n int) []byte {
	if r.err != nil {
		return nil
	}
	if n < 0 || n > len(r.buf) {
		r.err = ErrCorruptRecord
		return nil
	}
	b := r.buf[:n]
	r.buf = r.buf[n:]
	return b
}

func (r *reader) int32() int {
	b := r.take(4)
	if b == nil {
		return 0
	}
	return int(int32(le.Uint32(b)))
}

// count reads an element count and checks that size×count bytes remain.
func (r *reader) count(size int) int {
	n := r.int32()
	if r.err != nil {
		return 0
	}
	if n < 0 || n > len(r.buf)/size {
		r.err = ErrCorruptRecord
		return 0
	}
	return n
}

func (r *reader) ints() []int {
	n := r.count(4)
	if n == 0 {
		return nil
	}
	out := make([]int, n)
	for i := range out {
		out[i] = r.int32()
	}
	return out
}

func (r *reader) floats() []float64 {
	n := r.count(8)
	if n == 0 {
		return nil
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = math.Float64frombits(le.Uint64(r.take(8)))
	}
	return out
}

func (r *reader) bytes() []byte {
	n := r.count(1)
	if n == 0 {
		return nil
	}
	b := r.take(n)
	out := make([]byte, n)
	copy(out, b)
	return out
}
