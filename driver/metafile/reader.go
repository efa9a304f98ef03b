package metafile

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/gogpu/gks"
	"github.com/gogpu/gks/displaylist"
)

// Reader is the metafile input driver. It keeps one decoded item of
// lookahead so GET_ITEM can report the next item without consuming it.
type Reader struct {
	f    io.Closer
	r    *displaylist.Reader
	next []byte
	done bool
}

// NewReader returns a driver that opens its file on OPEN_WS.
func NewReader() *Reader {
	return &Reader{}
}

// Call implements gks.Driver. GET_ITEM writes the item type into Ints[1]
// and its length into Ints[2], or zeros at the end of the metafile.
// READ_ITEM consumes the item and returns at most Ints[1] bytes of it in
// Chars.
func (r *Reader) Call(op gks.Opcode, rec *displaylist.Record, _ *gks.State) error {
	switch op {
	case gks.OpOpenWS:
		return r.open(string(rec.Chars))
	case gks.OpCloseWS:
		if r.f == nil {
			return ErrNotOpen
		}
		err := r.f.Close()
		r.f, r.r, r.next = nil, nil, nil
		return err
	case gks.OpGetItem:
		if err := r.peek(); err != nil {
			return err
		}
		if r.next == nil {
			rec.Ints[1], rec.Ints[2] = 0, 0
			return nil
		}
		fctid, length, err := displaylist.PeekRecord(r.next)
		if err != nil {
			return err
		}
		rec.Ints[1], rec.Ints[2] = fctid, length
	case gks.OpReadItem:
		if err := r.peek(); err != nil {
			return err
		}
		if r.next == nil {
			return &gks.Error{Fctid: op, Code: gks.CodeNoItemLeft}
		}
		item := r.next
		r.next = nil
		if n := rec.Ints[1]; n < len(item) {
			item = item[:max(n, 0)]
		}
		rec.Chars = item
	}
	return nil
}

func (r *Reader) open(path string) error {
	f, err := os.Open(path) //nolint:gosec // path comes from the caller
	if err != nil {
		return err
	}
	r.f = f
	r.r = displaylist.NewReader(f)
	r.next, r.done = nil, false
	gks.Logger().Debug("metafile: input opened", "path", path)
	return nil
}

// peek decodes the next item unless one is already waiting.
func (r *Reader) peek() error {
	if r.r == nil {
		return ErrNotOpen
	}
	if r.next != nil || r.done {
		return nil
	}
	rec, err := r.r.Next()
	if errors.Is(err, io.EOF) {
		r.done = true
		return nil
	}
	if err != nil {
		return fmt.Errorf("metafile: %w", err)
	}
	data, err := displaylist.MarshalRecord(rec)
	if err != nil {
		return fmt.Errorf("metafile: %w", err)
	}
	r.next = data
	return nil
}
