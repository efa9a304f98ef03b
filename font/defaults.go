package font

import (
	"sync"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/gomonobolditalic"
	"golang.org/x/image/font/gofont/gomonoitalic"
	"golang.org/x/image/font/gofont/goregular"
)

// Kernel font numbers served by Default. 101-104 and 105-108 are the
// proportional families (regular, italic, bold, bold italic), 109-112 the
// monospaced family. Font 1 is the default text font.
const (
	FontDefault        = 1
	FontTimesRoman     = 101
	FontHelvetica      = 105
	FontCourier        = 109
	FontCourierBoldObl = 112
)

var (
	defaultOnce   sync.Once
	defaultSource *TTFSource
	defaultErr    error
)

// Default returns a shared TTFSource over the Go font family.
func Default() (*TTFSource, error) {
	defaultOnce.Do(func() {
		fonts := map[int][]byte{
			FontDefault: goregular.TTF,
			101:         goregular.TTF,
			102:         goitalic.TTF,
			103:         gobold.TTF,
			104:         gobolditalic.TTF,
			105:         goregular.TTF,
			106:         goitalic.TTF,
			107:         gobold.TTF,
			108:         gobolditalic.TTF,
			109:         gomono.TTF,
			110:         gomonoitalic.TTF,
			111:         gomonobold.TTF,
			112:         gomonobolditalic.TTF,
		}
		defaultSource, defaultErr = NewTTFSource(fonts, FontDefault)
	})
	return defaultSource, defaultErr
}
