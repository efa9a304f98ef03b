package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/gogpu/gks"
	"github.com/gogpu/gks/displaylist"
)

func writeStream(t *testing.T, recs ...*displaylist.Record) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	mw := displaylist.NewWriter(&buf)
	for _, rec := range recs {
		if err := mw.Write(rec); err != nil {
			t.Fatalf("Write(%v): %v", rec, err)
		}
	}
	if err := mw.Flush(); err != nil {
		t.Fatal(err)
	}
	return &buf
}

func TestDump(t *testing.T) {
	buf := writeStream(t,
		&displaylist.Record{Fctid: int(gks.OpSetLineType), Ints: []int{2}},
		&displaylist.Record{Fctid: int(gks.OpText), F1: []float64{0.5}, F2: []float64{0.25}, Chars: []byte{'c', 'a', 'f', 0xe9}},
		&displaylist.Record{Fctid: 9999},
	)

	var out strings.Builder
	n, err := dump(&out, buf, true)
	if err != nil {
		t.Fatal(err)
	}
	if n != 3 {
		t.Errorf("dumped %d records, want 3", n)
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 7 {
		t.Fatalf("got %d lines, want 7:\n%s", len(lines), out.String())
	}
	tests := []struct {
		line int
		want string
	}{
		{0, "SET_PLINE_LINETYPE"},
		{1, "ints  [2]"},
		{2, "TEXT"},
		{5, `chars "café"`},
		{6, "?9999"},
	}
	for _, tt := range tests {
		if !strings.Contains(lines[tt.line], tt.want) {
			t.Errorf("line %d = %q, want it to contain %q", tt.line, lines[tt.line], tt.want)
		}
	}
}

func TestDumpTruncated(t *testing.T) {
	line := &displaylist.Record{Fctid: int(gks.OpPolyline), F1: []float64{0, 1}, F2: []float64{0, 1}}
	buf := writeStream(t, line, line)
	data := buf.Bytes()[:buf.Len()-3]

	var out strings.Builder
	n, err := dump(&out, bytes.NewReader(data), false)
	if err == nil {
		t.Error("truncated stream dumped without error")
	}
	if n != 1 {
		t.Errorf("dumped %d records, want 1", n)
	}
}
