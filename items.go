package gks

import (
	"errors"

	"github.com/gogpu/gks/displaylist"
)

// Item describes the next item of a metafile input workstation.
type Item struct {
	Type   int
	Length int
}

// metafileWorkstation returns an open workstation of category MI.
func (k *Kernel) metafileWorkstation(op Opcode, id int) (*Workstation, error) {
	ws, ok := k.workstation(id)
	if !ok {
		return nil, newError(op, CodeWorkstationNotOpen)
	}
	if ws.Category != CategoryMI {
		return nil, newError(op, CodeNotMI)
	}
	return ws, nil
}

func (k *Kernel) metafileOp(op Opcode, rec *displaylist.Record) error {
	if op == OpInterpretItem {
		return k.interpret(rec.Chars)
	}
	ws, err := k.metafileWorkstation(op, rec.Ints[0])
	if err != nil {
		return err
	}
	if err := ws.Driver.Call(op, rec, k.state); err != nil {
		if errors.Is(err, ErrMetafile) {
			return err
		}
		return newError(op, CodeInvalidItem)
	}
	if op == OpGetItem && rec.Ints[2] == 0 {
		return newError(op, CodeNoItemLeft)
	}
	return nil
}

// GetItem returns the type and length of the next item on metafile input
// workstation id without consuming it. The type is the item's opcode.
func (k *Kernel) GetItem(id int) (Item, error) {
	rec := intsRecord(id, 0, 0)
	if err := k.dispatch(OpGetItem, rec); err != nil {
		return Item{}, k.report(err)
	}
	return Item{Type: rec.Ints[1], Length: rec.Ints[2]}, nil
}

// ReadItem consumes the next item and returns at most maxLength bytes of
// its data. A maxLength of 0 skips the item.
func (k *Kernel) ReadItem(id, maxLength int) ([]byte, error) {
	rec := intsRecord(id, maxLength)
	if err := k.dispatch(OpReadItem, rec); err != nil {
		return nil, k.report(err)
	}
	return rec.Chars, nil
}

// InterpretItem executes an item read from a metafile as if the encoded
// function had been called directly. Only output, attribute, transform and
// extension functions can be interpreted.
func (k *Kernel) InterpretItem(typ int, data []byte) error {
	rec, _, err := displaylist.UnmarshalRecord(data)
	if err != nil {
		return k.report(newError(OpInterpretItem, CodeInvalidItem))
	}
	if rec.Fctid != typ {
		return k.report(newError(OpInterpretItem, CodeInvalidItem))
	}
	return k.report(k.dispatch(OpInterpretItem, &displaylist.Record{Chars: data}))
}

// interpret decodes one item and dispatches it.
func (k *Kernel) interpret(data []byte) error {
	rec, _, err := displaylist.UnmarshalRecord(data)
	if err != nil {
		return newError(OpInterpretItem, CodeInvalidItem)
	}
	op := Opcode(rec.Fctid)
	if !op.Valid() {
		return newError(OpInterpretItem, CodeInvalidItem)
	}
	switch op.Class() {
	case ClassOutput, ClassAttribute, ClassTransform, ClassExtension:
	default:
		return newError(OpInterpretItem, CodeItemNotAllowed)
	}
	k.logger().Debug("gks: interpreting item", "function", op.String())
	return k.dispatch(op, rec)
}
