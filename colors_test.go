package gks

import (
	"slices"
	"testing"
)

func TestDefaultColorRep(t *testing.T) {
	tests := []struct {
		index int
		want  RGB
		ok    bool
	}{
		{0, RGB{1, 1, 1}, true},
		{1, RGB{0, 0, 0}, true},
		{4, RGB{0, 0, 1}, true},
		{8, RGB{0, 0, 0}, true},
		{MaxColorIndex, RGB{1, 1, 1}, true},
		{MaxColorIndex + 1, RGB{}, false},
		{-1, RGB{}, false},
	}
	for _, tt := range tests {
		got, ok := DefaultColorRep(tt.index)
		if got != tt.want || ok != tt.ok {
			t.Errorf("DefaultColorRep(%d) = %v, %v; want %v, %v", tt.index, got, ok, tt.want, tt.ok)
		}
	}
}

func TestRGBPixel(t *testing.T) {
	if got := (RGB{1, 0.5, 0}).Pixel(); got != 0xff8000 {
		t.Errorf("Pixel() = %#x, want 0xff8000", got)
	}
	if (RGB{1.2, 0, 0}).Valid() {
		t.Error("RGB{1.2, 0, 0}.Valid() = true")
	}
}

func TestSetColorRep(t *testing.T) {
	k, d := openKernel(t)
	if err := k.SetColorRep(1, 2, RGB{0.5, 0.25, 0}); err != nil {
		t.Fatal(err)
	}
	if got, _ := k.InqColorRep(2); got != (RGB{0.5, 0.25, 0}) {
		t.Errorf("InqColorRep(2) = %v", got)
	}
	k.SetColorRep(1, 2, RGB{0, 1, 0})
	if got, _ := k.InqColorRep(2); got != (RGB{0, 1, 0}) {
		t.Errorf("InqColorRep(2) after second set = %v", got)
	}
	if got := d.ops(ClassControl); !slices.Equal(got, []Opcode{OpSetColorRep, OpSetColorRep}) {
		t.Errorf("control calls = %v", got)
	}

	if got := ErrorCode(k.SetColorRep(1, -1, RGB{})); got != CodeNegativeColorIndex {
		t.Errorf("negative index code = %d", got)
	}
	if got := ErrorCode(k.SetColorRep(1, 3, RGB{2, 0, 0})); got != CodeColorOutOfRange {
		t.Errorf("out of range code = %d", got)
	}
	if _, err := k.InqColorRep(1000); ErrorCode(err) != CodeInvalidColorIndex {
		t.Errorf("InqColorRep(1000) = %v", err)
	}

	k.SetColorRep(1, 1000, RGB{1, 0, 0})
	if got, err := k.InqColorRep(1000); err != nil || got != (RGB{1, 0, 0}) {
		t.Errorf("InqColorRep(1000) after set = %v, %v", got, err)
	}
}

func TestColorTableResetOnOpen(t *testing.T) {
	k, _ := openKernel(t)
	k.SetColorRep(1, 2, RGB{0.5, 0.5, 0.5})
	k.CloseWorkstation(1)
	k.Close()
	k.Open()
	if got, _ := k.InqColorRep(2); got != (RGB{1, 0, 0}) {
		t.Errorf("InqColorRep(2) after reopen = %v, want red", got)
	}
}

func TestPatterns(t *testing.T) {
	k, _ := openKernel(t)
	pa, err := k.InqPatternArray(2)
	if err != nil || pa[0] != 8 || len(pa) != 9 {
		t.Fatalf("InqPatternArray(2) = %v, %v", pa, err)
	}
	custom := []int{4, 0x1, 0x2, 0x4, 0x8}
	if err := k.SetPatternArray(2, custom); err != nil {
		t.Fatal(err)
	}
	custom[1] = 0xff
	if pa, _ := k.InqPatternArray(2); !slices.Equal(pa, []int{4, 0x1, 0x2, 0x4, 0x8}) {
		t.Errorf("InqPatternArray(2) = %v", pa)
	}
	if got := ErrorCode(k.SetPatternArray(3, []int{5, 1, 2, 3, 4, 5})); got != CodeInvalidPattern {
		t.Errorf("invalid size code = %d", got)
	}
	if got := ErrorCode(k.SetPatternArray(3, []int{4, 1, 2})); got != CodeInvalidPattern {
		t.Errorf("short pattern code = %d", got)
	}
	if got := ErrorCode(k.SetPatternArray(0, custom)); got != CodeZeroStyleIndex {
		t.Errorf("index 0 code = %d", got)
	}
	if _, err := k.InqPatternArray(50); ErrorCode(err) != CodeInvalidPattern {
		t.Errorf("InqPatternArray(50) = %v", err)
	}
}

func TestPixels(t *testing.T) {
	k, _ := openKernel(t)
	if p, _ := k.InqPixel(2); p != 0xff0000 {
		t.Errorf("default pixel of red = %#x", p)
	}
	k.SetPixel(2, 42)
	if p, _ := k.InqPixel(2); p != 42 {
		t.Errorf("InqPixel(2) = %d, want 42", p)
	}
	if got := ErrorCode(k.SetPixel(-1, 0)); got != CodeNegativeColorIndex {
		t.Errorf("negative index code = %d", got)
	}
}
