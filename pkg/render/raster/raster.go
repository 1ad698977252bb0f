// Package raster implements [render.Painter] on top of fogleman/gg and
// encodes the result as PNG.
package raster

import (
	"image"
	"image/color"
	"io"
	"os"

	"github.com/fogleman/gg"

	"github.com/matzehuels/framechart/pkg/errors"
	"github.com/matzehuels/framechart/pkg/fonts"
	"github.com/matzehuels/framechart/pkg/geom"
	"github.com/matzehuels/framechart/pkg/render"
)

// Painter draws into an in-memory RGBA image.
type Painter struct {
	dc    *gg.Context
	w, h  float64
	faces fonts.Cache
}

var _ render.Painter = (*Painter)(nil)

// MaxPixels bounds the area of a surface; 4 bytes are allocated per pixel.
const MaxPixels = 1 << 26

// New allocates a width×height surface. Non-positive sizes and surfaces
// larger than MaxPixels fail with INVALID_INPUT.
func New(width, height int) (*Painter, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "surface size must be positive, got %dx%d", width, height)
	}
	if width > MaxPixels/height {
		return nil, errors.New(errors.ErrCodeInvalidInput, "surface %dx%d exceeds %d pixels", width, height, MaxPixels)
	}
	return &Painter{
		dc: gg.NewContext(width, height),
		w:  float64(width),
		h:  float64(height),
	}, nil
}

func (p *Painter) Size() (float64, float64) { return p.w, p.h }

func (p *Painter) Fill(c color.RGBA) {
	p.dc.SetColor(c)
	p.dc.Clear()
}

func (p *Painter) Polyline(pts []geom.Coord, s render.Stroke) {
	if len(pts) < 2 || !s.Visible() {
		return
	}
	p.path(pts)
	p.stroke(s)
	p.dc.Stroke()
}

func (p *Painter) Polygon(pts []geom.Coord, fill color.RGBA, s render.Stroke) {
	if len(pts) < 2 {
		return
	}
	p.path(pts)
	p.dc.ClosePath()
	p.finish(fill, s)
}

func (p *Painter) Circle(center geom.Coord, r float64, fill color.RGBA, s render.Stroke) {
	if r <= 0 {
		return
	}
	p.dc.DrawCircle(center.X, p.flip(center.Y), r)
	p.finish(fill, s)
}

func (p *Painter) Text(at geom.Coord, s string, ts render.TextStyle) {
	if s == "" {
		return
	}
	face, err := p.faces.Face(ts.Size)
	if err != nil {
		return
	}
	x, y := at.X, p.flip(at.Y)
	p.dc.Push()
	defer p.dc.Pop()
	if ts.Rotate != 0 {
		p.dc.RotateAbout(-ts.Rotate, x, y)
	}
	p.dc.SetFontFace(face)
	p.dc.SetColor(ts.Color)
	p.dc.DrawStringAnchored(s, x, y, ts.AlignX, ts.AlignY)
}

// Image returns the backing image.
func (p *Painter) Image() image.Image { return p.dc.Image() }

// EncodePNG writes the surface as PNG.
func (p *Painter) EncodePNG(w io.Writer) error {
	if err := p.dc.EncodePNG(w); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "encode png")
	}
	return nil
}

// SavePNG writes the surface to path as PNG.
func (p *Painter) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "create %s", path)
	}
	if err := p.EncodePNG(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "close %s", path)
	}
	return nil
}

func (p *Painter) flip(y float64) float64 { return p.h - y }

func (p *Painter) path(pts []geom.Coord) {
	p.dc.NewSubPath()
	p.dc.MoveTo(pts[0].X, p.flip(pts[0].Y))
	for _, c := range pts[1:] {
		p.dc.LineTo(c.X, p.flip(c.Y))
	}
}

func (p *Painter) stroke(s render.Stroke) {
	p.dc.SetColor(s.Color)
	p.dc.SetLineWidth(s.Width)
	p.dc.SetDash(s.Dash...)
	p.dc.SetLineCap(gg.LineCapRound)
	p.dc.SetLineJoin(gg.LineJoinRound)
}

func (p *Painter) finish(fill color.RGBA, s render.Stroke) {
	if fill.A > 0 {
		p.dc.SetColor(fill)
		p.dc.FillPreserve()
	}
	if s.Visible() {
		p.stroke(s)
		p.dc.StrokePreserve()
	}
	p.dc.ClearPath()
}
