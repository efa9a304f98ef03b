package gks

import (
	"testing"

	"github.com/gogpu/gks/displaylist"
)

func marshal(t *testing.T, op Opcode, rec *displaylist.Record) []byte {
	t.Helper()
	rec.Fctid = int(op)
	data, err := displaylist.MarshalRecord(rec)
	if err != nil {
		t.Fatal(err)
	}
	return data
}

func TestMetafileItems(t *testing.T) {
	k, d := openKernel(t)
	if err := k.OpenWorkstation(2, "", typeMI); err != nil {
		t.Fatal(err)
	}
	ws, _ := k.Workstation(2)
	mi := ws.Driver.(*itemDriver)
	mi.items = [][]byte{
		marshal(t, OpSetLineType, intsRecord(-2)),
		marshal(t, OpPolyline, pointsRecord([]float64{0, 1}, []float64{0, 1})),
		marshal(t, OpOpenWS, &displaylist.Record{Ints: []int{3, 0, typeFake}}),
	}

	var interpreted int
	for {
		item, err := k.GetItem(2)
		if ErrorCode(err) == CodeNoItemLeft {
			break
		}
		if err != nil {
			t.Fatal(err)
		}
		data, err := k.ReadItem(2, item.Length)
		if err != nil {
			t.Fatal(err)
		}
		if len(data) != item.Length {
			t.Fatalf("ReadItem returned %d bytes, want %d", len(data), item.Length)
		}
		err = k.InterpretItem(item.Type, data)
		if Opcode(item.Type) == OpOpenWS {
			if got := ErrorCode(err); got != CodeItemNotAllowed {
				t.Errorf("interpret OPEN_WS code = %d, want %d", got, CodeItemNotAllowed)
			}
			continue
		}
		if err != nil {
			t.Fatalf("InterpretItem(%d): %v", item.Type, err)
		}
		interpreted++
	}
	if interpreted != 2 {
		t.Errorf("interpreted %d items, want 2", interpreted)
	}
	if k.State().LineType != -2 {
		t.Errorf("LineType = %d, want -2", k.State().LineType)
	}
	out := d.output()
	if len(out) != 1 || out[0].lineType != -2 {
		t.Errorf("output = %+v, want one dashed polyline", out)
	}
	if _, ok := k.Workstation(3); ok {
		t.Error("interpreting OPEN_WS opened a workstation")
	}
}

func TestInterpretItemErrors(t *testing.T) {
	k, _ := openKernel(t)
	data := marshal(t, OpSetLineType, intsRecord(2))

	if got := ErrorCode(k.InterpretItem(int(OpPolyline), data)); got != CodeInvalidItem {
		t.Errorf("type mismatch code = %d, want %d", got, CodeInvalidItem)
	}
	if got := ErrorCode(k.InterpretItem(0, []byte{1, 2, 3})); got != CodeInvalidItem {
		t.Errorf("garbage code = %d, want %d", got, CodeInvalidItem)
	}
	bad := marshal(t, OpSetLineType, intsRecord(42))
	if got := ErrorCode(k.InterpretItem(int(OpSetLineType), bad)); got != CodeInvalidLineType {
		t.Errorf("invalid value code = %d, want %d", got, CodeInvalidLineType)
	}
	if _, err := k.GetItem(1); ErrorCode(err) != CodeNotMI {
		t.Errorf("GetItem on output workstation = %v, want error %d", err, CodeNotMI)
	}
}
