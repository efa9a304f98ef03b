package gks

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"

	"github.com/gogpu/gks/font"
)

// Config is the file and environment configuration of a kernel.
//
//	wstype = "png"      # default workstation type, name or number
//	capture = "draw"    # "draw" or "only"
//	margin = 10         # device units kept free around default viewports
//	font = 105          # initial text font
//
//	[fonts]             # stroke fonts loaded from TrueType files
//	1 = "fonts/regular.ttf"
//	105 = "fonts/sans.ttf"
type Config struct {
	WorkstationType string            `toml:"wstype"`
	Capture         string            `toml:"capture"`
	Margin          float64           `toml:"margin"`
	Font            int               `toml:"font"`
	Fonts           map[string]string `toml:"fonts"`

	// FallbackFont is used for font numbers without an entry in Fonts.
	// It defaults to the smallest registered number.
	FallbackFont int `toml:"fallback_font"`

	dir    string
	source font.Source
}

// Environment variables read by ApplyEnv.
const (
	EnvWorkstationType = "GKS_WSTYPE"
	EnvCapture         = "GKS_CAPTURE"
	EnvMargin          = "GKS_MARGIN"
	EnvFont            = "GKS_FONT"
)

// LoadConfigFile reads a TOML configuration file. Relative font paths are
// resolved against the file's directory. Unknown keys are an error.
func LoadConfigFile(path string) (*Config, error) {
	var c Config
	md, err := toml.DecodeFile(path, &c)
	if err != nil {
		return nil, fmt.Errorf("gks: config %s: %w", path, err)
	}
	if len(md.Undecoded()) > 0 {
		return nil, fmt.Errorf("gks: config %s: undecoded fields %v", path, md.Undecoded())
	}
	c.dir = filepath.Dir(path)
	if err := c.finish(); err != nil {
		return nil, fmt.Errorf("gks: config %s: %w", path, err)
	}
	return &c, nil
}

// LoadConfig parses a TOML configuration. Relative font paths are resolved
// against the working directory.
func LoadConfig(text string) (*Config, error) {
	var c Config
	md, err := toml.Decode(text, &c)
	if err != nil {
		return nil, fmt.Errorf("gks: config: %w", err)
	}
	if len(md.Undecoded()) > 0 {
		return nil, fmt.Errorf("gks: config: undecoded fields %v", md.Undecoded())
	}
	if err := c.finish(); err != nil {
		return nil, fmt.Errorf("gks: config: %w", err)
	}
	return &c, nil
}

// ApplyEnv overrides settings from the GKS_* environment variables, read
// through lookup (usually os.LookupEnv).
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvWorkstationType); ok && v != "" {
		c.WorkstationType = v
	}
	if v, ok := lookup(EnvCapture); ok && v != "" {
		c.Capture = v
	}
	if v, ok := lookup(EnvMargin); ok && v != "" {
		m, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("gks: %s: %w", EnvMargin, err)
		}
		c.Margin = m
	}
	if v, ok := lookup(EnvFont); ok && v != "" {
		f, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("gks: %s: %w", EnvFont, err)
		}
		c.Font = f
	}
	return c.validate()
}

func (c *Config) validate() error {
	if _, err := parseCapture(c.Capture); err != nil {
		return err
	}
	if !(c.Margin >= 0) || math.IsInf(c.Margin, 1) {
		return fmt.Errorf("margin %g is invalid", c.Margin)
	}
	if c.WorkstationType != "" {
		if _, err := ParseWorkstationType(c.WorkstationType); err != nil {
			return err
		}
	}
	return nil
}

func (c *Config) finish() error {
	if err := c.validate(); err != nil {
		return err
	}
	if len(c.Fonts) == 0 {
		return nil
	}
	data := make(map[int][]byte, len(c.Fonts))
	fallback := c.FallbackFont
	for key, path := range c.Fonts {
		n, err := strconv.Atoi(key)
		if err != nil || n == 0 {
			return fmt.Errorf("font number %q is invalid", key)
		}
		if !filepath.IsAbs(path) && c.dir != "" {
			path = filepath.Join(c.dir, path)
		}
		b, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("font %d: %w", n, err)
		}
		data[n] = b
		if c.FallbackFont == 0 && (fallback == 0 || n < fallback) {
			fallback = n
		}
	}
	src, err := font.NewTTFSource(data, fallback)
	if err != nil {
		return err
	}
	c.source = src
	return nil
}

func parseCapture(s string) (CaptureMode, error) {
	switch s {
	case "", "draw", "capture+draw":
		return CaptureDraw, nil
	case "only", "capture-only":
		return CaptureOnly, nil
	}
	return CaptureDraw, fmt.Errorf("capture mode %q is invalid", s)
}

func (c *Config) captureMode() CaptureMode {
	m, _ := parseCapture(c.Capture)
	return m
}

// fontSource returns the configured fonts, or nil to use the defaults.
func (c *Config) fontSource() font.Source {
	return c.source
}
