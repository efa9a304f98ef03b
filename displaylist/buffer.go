package displaylist

import (
	"io"
	"iter"
)

// State is the append state of a Buffer.
type State uint8

const (
	// Empty means no record has been written since creation or Reset.
	Empty State = iota

	// Appending means the buffer holds at least one record.
	Appending
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case Empty:
		return "Empty"
	case Appending:
		return "Appending"
	default:
		return "Unknown"
	}
}

// defaultCapacity is the initial size of a buffer created with capacity 0.
const defaultCapacity = 1024

// Buffer is a growable sequence of encoded records.
//
// The backing storage grows geometrically and is never shrunk, not even by
// Reset. A failed Append leaves the buffer unchanged, so a record is either
// fully present or absent.
//
// Buffer is not safe for concurrent use.
type Buffer struct {
	data  []byte
	count int
	state State
}

// NewBuffer creates an empty buffer with the given initial capacity.
func NewBuffer(capacity int) *Buffer {
	if capacity <= 0 {
		capacity = defaultCapacity
	}
	return &Buffer{data: make([]byte, 0, capacity)}
}

// Append encodes rec at the end of the buffer.
func (b *Buffer) Append(rec *Record) error {
	out, err := AppendRecord(b.data, rec)
	if err != nil {
		return err
	}
	b.data = out
	b.count++
	b.state = Appending
	return nil
}

// Reset discards all records but keeps the allocated storage.
func (b *Buffer) Reset() {
	b.data = b.data[:0]
	b.count = 0
	b.state = Empty
}

// State returns the append state.
func (b *Buffer) State() State { return b.state }

// Len returns the number of encoded bytes.
func (b *Buffer) Len() int { return len(b.data) }

// Cap returns the allocated capacity in bytes.
func (b *Buffer) Cap() int { return cap(b.data) }

// Count returns the number of records.
func (b *Buffer) Count() int { return b.count }

// Bytes returns the encoded records. The slice aliases the buffer and is
// only valid until the next Append or Reset.
func (b *Buffer) Bytes() []byte { return b.data }

// Records iterates over the decoded records in append order. Iteration
// stops at the first decoding error, which is yielded with a nil record.
func (b *Buffer) Records() iter.Seq2[*Record, error] {
	return func(yield func(*Record, error) bool) {
		d := NewDecoder(b.data)
		for {
			rec, err := d.Next()
			if err == io.EOF {
				return
			}
			if !yield(rec, err) || err != nil {
				return
			}
		}
	}
}

// Decoder reads records sequentially from an in-memory byte slice.
type Decoder struct {
	data []byte
	pos  int
}

// NewDecoder creates a decoder over data. The decoder never reads past
// len(data).
func NewDecoder(data []byte) *Decoder {
	return &Decoder{data: data}
}

// Next decodes the next record. It returns io.EOF when all data has been
// consumed.
func (d *Decoder) Next() (*Record, error) {
	if d.pos >= len(d.data) {
		return nil, io.EOF
	}
	rec, n, err := UnmarshalRecord(d.data[d.pos:])
	if err != nil {
		return nil, err
	}
	d.pos += n
	return rec, nil
}

// Peek returns the function id and length of the next record without
// consuming it.
func (d *Decoder) Peek() (fctid, length int, err error) {
	if d.pos >= len(d.data) {
		return 0, 0, io.EOF
	}
	return PeekRecord(d.data[d.pos:])
}

// Skip discards the next record.
func (d *Decoder) Skip() error {
	_, n, err := d.Peek()
	if err != nil {
		return err
	}
	d.pos += n
	return nil
}

// Offset returns the read position in bytes.
func (d *Decoder) Offset() int { return d.pos }
