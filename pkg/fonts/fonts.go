// Package fonts provides the font faces used for chart titles and labels.
//
// The Go fonts ship inside golang.org/x/image, so charts render the same on
// every machine without a system font lookup.
package fonts

import (
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	parsed    *truetype.Font
	parseErr  error
	parseOnce sync.Once
)

func regular() (*truetype.Font, error) {
	parseOnce.Do(func() {
		parsed, parseErr = truetype.Parse(goregular.TTF)
	})
	return parsed, parseErr
}

// Face returns a new regular face at size (in pixels). The parsed font is
// shared, but every call returns its own face: faces keep a glyph cache and
// must not be used from several goroutines at once.
func Face(size float64) (font.Face, error) {
	f, err := regular()
	if err != nil {
		return nil, err
	}
	return truetype.NewFace(f, &truetype.Options{
		Size:    size,
		Hinting: font.HintingFull,
	}), nil
}
