package displaylist

import (
	"bufio"
	"encoding/binary"
	"errors"
	"io"
	"slices"
)

// Version is the metafile stream format version.
const Version uint16 = 1

// readChunk is the largest single read of a record body.
const readChunk = 64 << 10

// magic starts every metafile stream.
var magic = [4]byte{'G', 'K', 'D', 'L'}

// Writer streams records to an io.Writer behind a metafile header.
type Writer struct {
	w       *bufio.Writer
	scratch []byte
	started bool
	err     error
}

// NewWriter creates a Writer. The header is written with the first record,
// or by Flush if no record is ever written.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriter(w), scratch: make([]byte, 0, 256)}
}

func (w *Writer) header() {
	if w.started || w.err != nil {
		return
	}
	w.started = true
	var hdr [6]byte
	copy(hdr[:], magic[:])
	binary.LittleEndian.PutUint16(hdr[4:], Version)
	_, w.err = w.w.Write(hdr[:])
}

// Write encodes rec onto the stream.
func (w *Writer) Write(rec *Record) error {
	w.header()
	if w.err != nil {
		return w.err
	}
	out, err := AppendRecord(w.scratch[:0], rec)
	if err != nil {
		return err
	}
	w.scratch = out
	_, w.err = w.w.Write(out)
	return w.err
}

// Flush writes any buffered data to the underlying writer.
func (w *Writer) Flush() error {
	w.header()
	if w.err != nil {
		return w.err
	}
	return w.w.Flush()
}

// Reader decodes records from a metafile stream.
type Reader struct {
	r       *bufio.Reader
	started bool
	buf     []byte
}

// NewReader creates a Reader. The header is checked on the first Next.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: bufio.NewReader(r)}
}

func (r *Reader) header() error {
	if r.started {
		return nil
	}
	var hdr [6]byte
	if _, err := io.ReadFull(r.r, hdr[:]); err != nil {
		if errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF) {
			return ErrBadMagic
		}
		return err
	}
	if [4]byte(hdr[:4]) != magic {
		return ErrBadMagic
	}
	if v := binary.LittleEndian.Uint16(hdr[4:]); v != Version {
		return &VersionError{Got: v}
	}
	r.started = true
	return nil
}

// Next decodes the next record. It returns io.EOF at a clean end of stream
// and ErrShortRecord if the stream ends inside a record.
func (r *Reader) Next() (*Record, error) {
	if err := r.header(); err != nil {
		return nil, err
	}
	var lenBuf [4]byte
	if _, err := io.ReadFull(r.r, lenBuf[:]); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.EOF
		}
		if errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, ErrShortRecord
		}
		return nil, err
	}
	n := int(binary.LittleEndian.Uint32(lenBuf[:]))
	if n < minRecordSize {
		return nil, ErrCorruptRecord
	}
	// The body is read in chunks so a bogus length costs no more memory
	// than the bytes actually present.
	body := append(r.buf[:0], lenBuf[:]...)
	for len(body) < n {
		want := min(n-len(body), readChunk)
		body = slices.Grow(body, want)
		got, err := io.ReadFull(r.r, body[len(body):len(body)+want])
		body = body[:len(body)+got]
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				return nil, ErrShortRecord
			}
			return nil, err
		}
	}
	r.buf = body
	rec, _, err := UnmarshalRecord(r.buf)
	return rec, err
}
