package gks

import (
	"log/slog"
	"math"

	"github.com/gogpu/gks/font"
)

// CaptureMode controls what happens to output while a segment is open.
type CaptureMode int

const (
	// CaptureDraw records output into the open segment and draws it on the
	// active workstations.
	CaptureDraw CaptureMode = iota

	// CaptureOnly records output without drawing it. Segments become visible
	// through AssociateSegment, CopySegment or RedrawSegments.
	CaptureOnly
)

func (m CaptureMode) String() string {
	if m == CaptureOnly {
		return "capture-only"
	}
	return "capture+draw"
}

// Option configures a Kernel during creation.
//
// Example:
//
//	k := gks.New(
//	    gks.WithLogger(slog.Default()),
//	    gks.WithErrorHandler(func(err *gks.Error) { log.Print(err) }),
//	)
type Option func(*options)

type options struct {
	logger   *slog.Logger
	onError  func(*Error)
	capture  CaptureMode
	fonts    font.Source
	margin   float64
	wstype   int
	textFont int
}

func defaultOptions() options {
	return options{
		capture:  CaptureDraw,
		textFont: font.FontDefault,
	}
}

// WithLogger sets a logger for this kernel instead of the package logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithErrorHandler installs a function called with every error the kernel
// reports, in addition to the error being returned.
func WithErrorHandler(fn func(*Error)) Option {
	return func(o *options) {
		o.onError = fn
	}
}

// WithCapture sets the segment capture mode.
func WithCapture(m CaptureMode) Option {
	return func(o *options) {
		o.capture = m
	}
}

// WithFontSource sets the stroke font source for text extents and text
// emulation. The default is font.Default.
func WithFontSource(src font.Source) Option {
	return func(o *options) {
		o.fonts = src
	}
}

// WithMargin sets the margin, in device units, kept free around the
// default viewport of workstations with a bounded display. Negative or
// non-finite margins are ignored.
func WithMargin(m float64) Option {
	return func(o *options) {
		if m >= 0 && !math.IsInf(m, 1) {
			o.margin = m
		}
	}
}

// WithDefaultWorkstationType sets the type used when OpenWorkstation is
// called with type 0.
func WithDefaultWorkstationType(wtype int) Option {
	return func(o *options) {
		o.wstype = wtype
	}
}

// WithConfig applies a loaded configuration. Options given after it
// override its values.
func WithConfig(c *Config) Option {
	return func(o *options) {
		if c == nil {
			return
		}
		o.capture = c.captureMode()
		if c.Margin >= 0 && !math.IsInf(c.Margin, 1) {
			o.margin = c.Margin
		}
		if c.Font != 0 {
			o.textFont = c.Font
		}
		if c.WorkstationType != "" {
			t, err := ParseWorkstationType(c.WorkstationType)
			if err != nil {
				Logger().Warn("gks: default workstation type ignored", "wstype", c.WorkstationType, "err", err)
			} else {
				o.wstype = t
			}
		}
		if src := c.fontSource(); src != nil {
			o.fonts = src
		}
	}
}
