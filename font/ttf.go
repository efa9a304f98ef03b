package font

import (
	"bytes"
	"fmt"
	"math"
	"sync"

	gotext "github.com/go-text/typesetting/font"
	ot "github.com/go-text/typesetting/font/opentype"
	"golang.org/x/text/encoding/charmap"
)

// Grid is the nominal cap height of outlines produced by TTFSource.
const Grid = 100

// curveSteps are the subdivision counts tried, finest first, until an
// outline fits in MaxCoords.
var curveSteps = [...]int{4, 2, 1}

type glyphKey struct {
	font, chr int
}

// TTFSource converts TrueType glyphs to stroke outlines.
//
// Fonts are registered by kernel font number. Unknown font numbers and
// negative numbers fall back through their absolute value to the fallback
// font. Parsed faces and converted outlines are cached; TTFSource is safe
// for concurrent use.
type TTFSource struct {
	data     map[int][]byte
	fallback int

	mu       sync.Mutex
	faces    map[int]*gotext.Face
	outlines *outlineCache
}

// NewTTFSource creates a source over the given font files. fallback names
// the entry used for unregistered font numbers and must be present.
func NewTTFSource(fonts map[int][]byte, fallback int) (*TTFSource, error) {
	if len(fonts) == 0 {
		return nil, ErrNoFonts
	}
	if _, ok := fonts[fallback]; !ok {
		return nil, fmt.Errorf("font: fallback font %d not registered", fallback)
	}
	data := make(map[int][]byte, len(fonts))
	for k, v := range fonts {
		data[k] = v
	}
	return &TTFSource{
		data:     data,
		fallback: fallback,
		faces:    make(map[int]*gotext.Face),
		outlines: newOutlineCache(outlineCacheLimit),
	}, nil
}

// resolve maps a kernel font number to a registered one.
func (s *TTFSource) resolve(font int) int {
	if font < 0 {
		font = -font
	}
	if _, ok := s.data[font]; ok {
		return font
	}
	return s.fallback
}

// Lookup implements Source.
func (s *TTFSource) Lookup(font, chr int) (*StrokeOutline, error) {
	key := glyphKey{font: s.resolve(font), chr: chr}

	if o, ok := s.outlines.get(key); ok {
		return o, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if o, ok := s.outlines.get(key); ok {
		return o, nil
	}
	face, err := s.face(key.font)
	if err != nil {
		return nil, err
	}
	o, err := convert(face, chr)
	if err != nil {
		return nil, err
	}
	s.outlines.put(key, o)
	return o, nil
}

// face returns the parsed face for a resolved font number. Callers hold mu.
func (s *TTFSource) face(font int) (*gotext.Face, error) {
	if f, ok := s.faces[font]; ok {
		return f, nil
	}
	f, err := gotext.ParseTTF(bytes.NewReader(s.data[font]))
	if err != nil {
		return nil, fmt.Errorf("font: parse font %d: %w", font, err)
	}
	s.faces[font] = f
	return f, nil
}

// convert flattens one glyph onto the Grid.
func convert(face *gotext.Face, chr int) (*StrokeOutline, error) {
	r := charmap.ISO8859_1.DecodeByte(byte(chr))
	gid, ok := face.NominalGlyph(r)
	if !ok {
		if gid, ok = face.NominalGlyph('?'); !ok {
			return nil, fmt.Errorf("%w: %q", ErrGlyphNotFound, r)
		}
	}

	capHeight := face.LineMetric(gotext.CapHeight)
	if capHeight <= 0 {
		capHeight = 0.7 * float32(face.Upem())
	}
	scale := Grid / float64(capHeight)

	o := &StrokeOutline{
		Left:  0,
		Right: round(float64(face.HorizontalAdvance(gid)) * scale),
		Size:  Grid,
		Base:  0,
		Cap:   Grid,
	}
	if ext, ok := face.FontHExtents(); ok {
		o.Top = round(float64(ext.Ascender) * scale)
		o.Bottom = round(float64(ext.Descender) * scale)
	} else {
		o.Top = Grid * 5 / 4
		o.Bottom = -Grid / 4
	}

	outline, ok := face.GlyphData(gid).(gotext.GlyphOutline)
	if !ok || len(outline.Segments) == 0 {
		return o, nil
	}
	for _, steps := range curveSteps {
		o.Coords = flatten(outline.Segments, scale, steps)
		if len(o.Coords) <= MaxCoords {
			return o, nil
		}
	}
	// Still too detailed: keep whole contours while they fit.
	o.Coords = truncate(o.Coords)
	return o, nil
}

// flatten converts outline segments to pen coordinates, approximating
// curves with steps line segments and closing every contour.
func flatten(segs []gotext.Segment, scale float64, steps int) []Coord {
	coords := make([]Coord, 0, len(segs)+8)
	var cur, start ot.SegmentPoint
	open := false

	closeContour := func() {
		if open && cur != start {
			coords = append(coords, point(start, scale, false))
		}
	}
	for _, s := range segs {
		switch s.Op {
		case ot.SegmentOpMoveTo:
			closeContour()
			cur, start = s.Args[0], s.Args[0]
			open = true
			coords = append(coords, point(cur, scale, true))
		case ot.SegmentOpLineTo:
			cur = s.Args[0]
			coords = append(coords, point(cur, scale, false))
		case ot.SegmentOpQuadTo:
			p0, p1, p2 := cur, s.Args[0], s.Args[1]
			for i := 1; i <= steps; i++ {
				t := float32(i) / float32(steps)
				u := 1 - t
				coords = append(coords, point(ot.SegmentPoint{
					X: u*u*p0.X + 2*u*t*p1.X + t*t*p2.X,
					Y: u*u*p0.Y + 2*u*t*p1.Y + t*t*p2.Y,
				}, scale, false))
			}
			cur = p2
		case ot.SegmentOpCubeTo:
			p0, p1, p2, p3 := cur, s.Args[0], s.Args[1], s.Args[2]
			for i := 1; i <= steps; i++ {
				t := float32(i) / float32(steps)
				u := 1 - t
				coords = append(coords, point(ot.SegmentPoint{
					X: u*u*u*p0.X + 3*u*u*t*p1.X + 3*u*t*t*p2.X + t*t*t*p3.X,
					Y: u*u*u*p0.Y + 3*u*u*t*p1.Y + 3*u*t*t*p2.Y + t*t*t*p3.Y,
				}, scale, false))
			}
			cur = p3
		}
	}
	closeContour()
	return coords
}

// truncate drops trailing contours until the outline fits in MaxCoords.
func truncate(coords []Coord) []Coord {
	end := 0
	for i := 0; i <= len(coords) && i <= MaxCoords; i++ {
		if i == len(coords) || coords[i].Up {
			end = i
		}
	}
	return coords[:end]
}

func point(p ot.SegmentPoint, scale float64, up bool) Coord {
	return Coord{X: round(float64(p.X) * scale), Y: round(float64(p.Y) * scale), Up: up}
}

func round(v float64) int {
	return int(math.Round(v))
}
