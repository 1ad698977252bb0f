// Package fonts provides the embedded font used for tick labels and titles.
//
// The Go Regular TrueType font ships with golang.org/x/image, so every
// backend renders identical glyph metrics without system fonts.
package fonts

import (
	"encoding/base64"
	"math"
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/matzehuels/framechart/pkg/errors"
)

// FontFamily is the CSS font-family name used by the SVG backend.
const FontFamily = "Go"

// FallbackFontFamily lists fallbacks for SVG viewers that ignore @font-face.
const FallbackFontFamily = `'Go', 'Helvetica Neue', Arial, sans-serif`

// minSize keeps degenerate figures from requesting zero-point faces.
const minSize = 1.0

var (
	regular     *truetype.Font
	regularErr  error
	regularOnce sync.Once

	ttfBase64     string
	ttfBase64Once sync.Once
)

// TTF returns the raw TrueType font data.
func TTF() []byte {
	return goregular.TTF
}

// TTFBase64 returns the font data as a base64 string for embedding in SVG.
// The result is cached after first computation.
func TTFBase64() string {
	ttfBase64Once.Do(func() {
		ttfBase64 = base64.StdEncoding.EncodeToString(goregular.TTF)
	})
	return ttfBase64
}

// Regular returns the parsed font. Parsing happens once.
func Regular() (*truetype.Font, error) {
	regularOnce.Do(func() {
		regular, regularErr = truetype.Parse(goregular.TTF)
		if regularErr != nil {
			regularErr = errors.Wrap(errors.ErrCodeInternal, regularErr, "parse embedded font")
		}
	})
	return regular, regularErr
}

// Face returns a new face of the given pixel size. Faces are not safe for
// concurrent use, so callers keep one per goroutine (see [Cache]).
func Face(size float64) (font.Face, error) {
	f, err := Regular()
	if err != nil {
		return nil, err
	}
	return truetype.NewFace(f, &truetype.Options{
		Size:    math.Max(size, minSize),
		Hinting: font.HintingFull,
	}), nil
}

// Cache hands out faces by size, creating each at most once. The zero value
// is ready to use; a Cache must not be shared between goroutines.
type Cache struct {
	faces map[float64]font.Face
}

// Face returns the cached face for size, rounded to a quarter pixel.
func (c *Cache) Face(size float64) (font.Face, error) {
	key := math.Round(size*4) / 4
	if f, ok := c.faces[key]; ok {
		return f, nil
	}
	f, err := Face(key)
	if err != nil {
		return nil, err
	}
	if c.faces == nil {
		c.faces = make(map[float64]font.Face)
	}
	c.faces[key] = f
	return f, nil
}

// Advance returns the width in pixels of s set in face.
func Advance(face font.Face, s string) float64 {
	return float64(font.MeasureString(face, s)) / 64
}
