// Package svg implements [render.Painter] by writing SVG elements into a
// byte buffer.
package svg

import (
	"bytes"
	"fmt"
	"html"
	"image/color"
	"math"
	"strings"

	"github.com/matzehuels/framechart/pkg/fonts"
	"github.com/matzehuels/framechart/pkg/geom"
	"github.com/matzehuels/framechart/pkg/render"
	"github.com/matzehuels/framechart/pkg/style"
)

// Option configures a Painter.
type Option func(*Painter)

// WithEmbeddedFont inlines the label font as a base64 @font-face rule so the
// document renders identically without the font installed.
func WithEmbeddedFont() Option { return func(p *Painter) { p.embedFont = true } }

// Painter accumulates an SVG document.
type Painter struct {
	buf       bytes.Buffer
	w, h      float64
	embedFont bool
}

var _ render.Painter = (*Painter)(nil)

// New starts a document of the given pixel size.
func New(width, height float64, opts ...Option) *Painter {
	p := &Painter{w: width, h: height}
	for _, opt := range opts {
		opt(p)
	}
	fmt.Fprintf(&p.buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		width, height, width, height)
	p.renderDefs()
	return p
}

func (p *Painter) renderDefs() {
	if !p.embedFont {
		return
	}
	fmt.Fprintf(&p.buf, "  <defs><style>@font-face { font-family: '%s'; src: url(data:font/ttf;base64,%s) format('truetype'); }</style></defs>\n",
		fonts.FontFamily, fonts.TTFBase64())
}

// Bytes returns the finished document. The painter stays usable; each call
// returns the content drawn so far followed by the closing tag.
func (p *Painter) Bytes() []byte {
	out := make([]byte, 0, p.buf.Len()+8)
	out = append(out, p.buf.Bytes()...)
	return append(out, "</svg>\n"...)
}

func (p *Painter) Size() (float64, float64) { return p.w, p.h }

func (p *Painter) Fill(c color.RGBA) {
	fmt.Fprintf(&p.buf, `  <rect x="0" y="0" width="%.2f" height="%.2f"%s/>`+"\n", p.w, p.h, fillAttr(c))
}

func (p *Painter) Polyline(pts []geom.Coord, s render.Stroke) {
	if len(pts) < 2 || !s.Visible() {
		return
	}
	fmt.Fprintf(&p.buf, `  <polyline points="%s" fill="none"%s/>`+"\n", p.points(pts), strokeAttr(s))
}

func (p *Painter) Polygon(pts []geom.Coord, fill color.RGBA, s render.Stroke) {
	if len(pts) < 2 {
		return
	}
	fmt.Fprintf(&p.buf, `  <polygon points="%s"%s%s/>`+"\n", p.points(pts), fillAttr(fill), strokeAttr(s))
}

func (p *Painter) Circle(center geom.Coord, r float64, fill color.RGBA, s render.Stroke) {
	if r <= 0 {
		return
	}
	fmt.Fprintf(&p.buf, `  <circle cx="%.2f" cy="%.2f" r="%.2f"%s%s/>`+"\n",
		center.X, p.flip(center.Y), r, fillAttr(fill), strokeAttr(s))
}

func (p *Painter) Text(at geom.Coord, s string, ts render.TextStyle) {
	if s == "" {
		return
	}
	x, y := at.X, p.flip(at.Y)
	var transform string
	if ts.Rotate != 0 {
		transform = fmt.Sprintf(` transform="rotate(%.2f %.2f %.2f)"`, -ts.Rotate*180/math.Pi, x, y)
	}
	fmt.Fprintf(&p.buf, `  <text x="%.2f" y="%.2f" font-family="%s" font-size="%.2f" text-anchor="%s" dominant-baseline="%s"%s%s>%s</text>`+"\n",
		x, y, html.EscapeString(fonts.FallbackFontFamily), ts.Size, textAnchor(ts.AlignX), baseline(ts.AlignY),
		fillAttr(ts.Color), transform, html.EscapeString(s))
}

func (p *Painter) flip(y float64) float64 { return p.h - y }

func (p *Painter) points(pts []geom.Coord) string {
	var sb strings.Builder
	for i, c := range pts {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%.2f,%.2f", c.X, p.flip(c.Y))
	}
	return sb.String()
}

func fillAttr(c color.RGBA) string {
	if c.A == 0 {
		return ` fill="none"`
	}
	if c.A == 255 {
		return fmt.Sprintf(` fill="%s"`, style.Hex(c))
	}
	return fmt.Sprintf(` fill="%s" fill-opacity="%.3f"`, style.Hex(c), float64(c.A)/255)
}

func strokeAttr(s render.Stroke) string {
	if !s.Visible() {
		return ""
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, ` stroke="%s" stroke-width="%.2f" stroke-linecap="round" stroke-linejoin="round"`, style.Hex(s.Color), s.Width)
	if s.Color.A < 255 {
		fmt.Fprintf(&sb, ` stroke-opacity="%.3f"`, float64(s.Color.A)/255)
	}
	if len(s.Dash) > 0 {
		parts := make([]string, len(s.Dash))
		for i, d := range s.Dash {
			parts[i] = fmt.Sprintf("%.2f", d)
		}
		fmt.Fprintf(&sb, ` stroke-dasharray="%s"`, strings.Join(parts, " "))
	}
	return sb.String()
}

func textAnchor(ax float64) string {
	switch {
	case ax < 0.25:
		return "start"
	case ax > 0.75:
		return "end"
	default:
		return "middle"
	}
}

func baseline(ay float64) string {
	switch {
	case ay < 0.25:
		return "alphabetic"
	case ay > 0.75:
		return "hanging"
	default:
		return "central"
	}
}
