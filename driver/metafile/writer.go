package metafile

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/gogpu/gks"
	"github.com/gogpu/gks/displaylist"
)

// ErrNotOpen is returned for calls before OPEN_WS or after CLOSE_WS.
var ErrNotOpen = errors.New("metafile: workstation not open")

// Writer is the metafile output driver.
type Writer struct {
	f     io.WriteCloser
	w     *displaylist.Writer
	count int
}

// NewWriter returns a driver that opens its file on OPEN_WS.
func NewWriter() *Writer {
	return &Writer{}
}

// Count returns the number of records written.
func (w *Writer) Count() int {
	return w.count
}

// Recorded reports whether calls of op are stored in a metafile. These are
// exactly the calls InterpretItem accepts.
func Recorded(op gks.Opcode) bool {
	switch op.Class() {
	case gks.ClassOutput, gks.ClassAttribute, gks.ClassTransform, gks.ClassExtension:
		return true
	}
	return false
}

// Call implements gks.Driver.
func (w *Writer) Call(op gks.Opcode, rec *displaylist.Record, _ *gks.State) error {
	switch op {
	case gks.OpOpenWS:
		return w.open(string(rec.Chars))
	case gks.OpCloseWS:
		return w.close()
	case gks.OpUpdateWS:
		if w.w == nil {
			return ErrNotOpen
		}
		return w.w.Flush()
	}
	if !Recorded(op) {
		return nil
	}
	if w.w == nil {
		return ErrNotOpen
	}
	if err := w.w.Write(rec); err != nil {
		return fmt.Errorf("metafile: writing %s: %w", op, err)
	}
	w.count++
	return nil
}

func (w *Writer) open(path string) error {
	if path == "" || path == "-" {
		w.f = nopCloser{os.Stdout}
	} else {
		f, err := os.Create(path) //nolint:gosec // path comes from the caller
		if err != nil {
			return err
		}
		w.f = f
	}
	w.w = displaylist.NewWriter(w.f)
	gks.Logger().Debug("metafile: output opened", "path", path)
	return nil
}

func (w *Writer) close() error {
	if w.w == nil {
		return ErrNotOpen
	}
	err := w.w.Flush()
	if cerr := w.f.Close(); err == nil {
		err = cerr
	}
	gks.Logger().Debug("metafile: output closed", "records", w.count)
	w.w, w.f = nil, nil
	return err
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }
