package gks

import (
	"image/color"
	"math"

	"github.com/gogpu/gks/internal/alist"
)

// RGB is a color representation with components in [0, 1].
type RGB struct {
	R, G, B float64
}

// Valid reports whether every component lies in [0, 1].
func (c RGB) Valid() bool {
	in := func(v float64) bool { return v >= 0 && v <= 1 }
	return in(c.R) && in(c.G) && in(c.B)
}

// RGBA implements color.Color.
func (c RGB) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: to8(c.R), G: to8(c.G), B: to8(c.B), A: 0xff}.RGBA()
}

// Pixel packs the color as 0xRRGGBB.
func (c RGB) Pixel() int {
	return int(to8(c.R))<<16 | int(to8(c.G))<<8 | int(to8(c.B))
}

func to8(v float64) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(1, v)) * 255))
}

// MaxColorIndex is the largest color index with a default representation.
const MaxColorIndex = 255

// basicColors are the first eight color indices.
var basicColors = [...]RGB{
	{1, 1, 1}, // white
	{0, 0, 0}, // black
	{1, 0, 0}, // red
	{0, 1, 0}, // green
	{0, 0, 1}, // blue
	{0, 1, 1}, // cyan
	{1, 1, 0}, // yellow
	{1, 0, 1}, // magenta
}

// DefaultColorRep returns the predefined color of index. Indices past the
// basic colors form a gray ramp up to MaxColorIndex. ok is false for
// indices without a default.
func DefaultColorRep(index int) (c RGB, ok bool) {
	switch {
	case index < 0 || index > MaxColorIndex:
		return RGB{}, false
	case index < len(basicColors):
		return basicColors[index], true
	}
	g := float64(index-len(basicColors)) / float64(MaxColorIndex-len(basicColors))
	return RGB{g, g, g}, true
}

// Pattern rows are 8 bits wide; a pattern array is the row count followed
// by the rows.
var patternSizes = []int{4, 8, 16, 32}

// defaultPatterns are the predefined 8x8 patterns, indexed from 1.
var defaultPatterns = [...][]int{
	{8, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}, // solid
	{8, 0xaa, 0x55, 0xaa, 0x55, 0xaa, 0x55, 0xaa, 0x55}, // checker
	{8, 0xff, 0x00, 0xff, 0x00, 0xff, 0x00, 0xff, 0x00}, // horizontal
	{8, 0xaa, 0xaa, 0xaa, 0xaa, 0xaa, 0xaa, 0xaa, 0xaa}, // vertical
	{8, 0x80, 0x40, 0x20, 0x10, 0x08, 0x04, 0x02, 0x01}, // diagonal
	{8, 0x01, 0x02, 0x04, 0x08, 0x10, 0x20, 0x40, 0x80}, // antidiagonal
	{8, 0x88, 0x00, 0x22, 0x00, 0x88, 0x00, 0x22, 0x00}, // sparse dots
	{8, 0xff, 0x88, 0x88, 0x88, 0xff, 0x88, 0x88, 0x88}, // grid
}

// DefaultPattern returns the predefined pattern array of index.
func DefaultPattern(index int) ([]int, bool) {
	if index < 1 || index > len(defaultPatterns) {
		return nil, false
	}
	return defaultPatterns[index-1], true
}

func validPattern(pa []int) bool {
	if len(pa) == 0 {
		return false
	}
	for _, n := range patternSizes {
		if pa[0] == n && len(pa) == n+1 {
			return true
		}
	}
	return false
}

// tables holds the kernel's indexed resources. User settings replace
// earlier ones; unset indices fall back to the predefined values.
type tables struct {
	colors   *alist.List[RGB]
	patterns *alist.List[[]int]
	pixels   *alist.List[int]
}

func newTables() *tables {
	return &tables{
		colors:   alist.New[RGB](16),
		patterns: alist.New[[]int](8),
		pixels:   alist.New[int](16),
	}
}

func (t *tables) free() {
	t.colors.Free(nil)
	t.patterns.Free(nil)
	t.pixels.Free(nil)
}

func (t *tables) setColor(index int, c RGB) {
	t.colors.Delete(index)
	t.colors.Add(index, c)
}

func (t *tables) color(index int) (RGB, bool) {
	if c, ok := t.colors.Find(index); ok {
		return c, true
	}
	return DefaultColorRep(index)
}

func (t *tables) setPattern(index int, pa []int) {
	t.patterns.Delete(index)
	t.patterns.Add(index, append([]int(nil), pa...))
}

func (t *tables) pattern(index int) ([]int, bool) {
	if pa, ok := t.patterns.Find(index); ok {
		return pa, true
	}
	return DefaultPattern(index)
}

func (t *tables) setPixel(index, pixel int) {
	t.pixels.Delete(index)
	t.pixels.Add(index, pixel)
}

// pixel falls back to the packed color of index.
func (t *tables) pixel(index int) (int, bool) {
	if p, ok := t.pixels.Find(index); ok {
		return p, true
	}
	c, ok := t.color(index)
	return c.Pixel(), ok
}
