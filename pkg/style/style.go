// Package style defines the visual vocabulary shared by charts, axes and
// frames: colours, palettes, dash patterns and scatter point shapes.
//
// Sizes in this package (line widths, dash lengths, marker sizes) are
// fractions of the figure's size-correction factor; the fit pass multiplies
// them by the figure diagonal to obtain pixels.
package style

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/matzehuels/framechart/pkg/errors"
)

// Common colours.
var (
	Black       = color.RGBA{0, 0, 0, 255}
	White       = color.RGBA{255, 255, 255, 255}
	Transparent = color.RGBA{}
)

// ParseColor parses "#rgb", "#rrggbb" or "#rrggbbaa".
func ParseColor(s string) (color.RGBA, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	alpha := uint8(255)
	if len(s) == 9 {
		a, err := strconv.ParseUint(s[7:], 16, 8)
		if err != nil {
			return color.RGBA{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "invalid colour alpha %q", s)
		}
		alpha = uint8(a)
		s = s[:7]
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return color.RGBA{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "invalid colour %q", s)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: alpha}, nil
}

// MustColor is ParseColor for constants; it panics on malformed input.
func MustColor(s string) color.RGBA {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Hex formats c as "#rrggbb", ignoring alpha.
func Hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Blend mixes a towards b in CIE-Lab space; t=0 yields a, t=1 yields b.
// Alpha is taken from a.
func Blend(a, b color.RGBA, t float64) color.RGBA {
	ca, _ := colorful.MakeColor(opaque(a))
	cb, _ := colorful.MakeColor(opaque(b))
	r, g, bl := ca.BlendLab(cb, t).Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: bl, A: a.A}
}

func opaque(c color.RGBA) color.RGBA {
	c.A = 255
	return c
}

// Palette is an ordered list of series colours addressed by an explicit
// index. Indices wrap around.
type Palette []color.RGBA

// DefaultPalette returns the ten-colour qualitative palette used when a
// figure does not declare its own.
func DefaultPalette() Palette {
	return Palette{
		MustColor("#1f77b4"),
		MustColor("#ff7f0e"),
		MustColor("#2ca02c"),
		MustColor("#d62728"),
		MustColor("#9467bd"),
		MustColor("#8c564b"),
		MustColor("#e377c2"),
		MustColor("#7f7f7f"),
		MustColor("#bcbd22"),
		MustColor("#17becf"),
	}
}

// At returns the colour for series i. An empty palette yields black.
func (p Palette) At(i int) color.RGBA {
	if len(p) == 0 {
		return Black
	}
	i %= len(p)
	if i < 0 {
		i += len(p)
	}
	return p[i]
}

// ParsePalette parses a list of colour strings.
func ParsePalette(hexes []string) (Palette, error) {
	p := make(Palette, 0, len(hexes))
	for _, h := range hexes {
		c, err := ParseColor(h)
		if err != nil {
			return nil, err
		}
		p = append(p, c)
	}
	return p, nil
}
