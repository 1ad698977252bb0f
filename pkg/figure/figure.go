package figure

import (
	"fmt"
	"image/color"
	"math"

	"github.com/matzehuels/framechart/pkg/canvas"
	"github.com/matzehuels/framechart/pkg/errors"
	"github.com/matzehuels/framechart/pkg/geom"
	"github.com/matzehuels/framechart/pkg/render"
	"github.com/matzehuels/framechart/pkg/render/raster"
	"github.com/matzehuels/framechart/pkg/render/svg"
	"github.com/matzehuels/framechart/pkg/style"
)

// DefaultTitleSize is the plot title font size, as a fraction of the
// size-correction factor.
const DefaultTitleSize = 0.02

// MaxDimension bounds the figure width and height in pixels.
const MaxDimension = 16384

// Plot holds one canvas, its title and its frame within the figure.
type Plot struct {
	Canvas *canvas.Canvas
	Frame  geom.Rect

	Title      string
	TitleSize  float64
	TitleColor color.RGBA
}

// NewPlot returns a plot covering the whole figure.
func NewPlot() *Plot {
	return &Plot{
		Canvas:     canvas.New(),
		Frame:      geom.Unit(),
		TitleSize:  DefaultTitleSize,
		TitleColor: style.Black,
	}
}

// Fit resolves the plot and its canvas against parent.
func (p Plot) Fit(parent geom.Rect, scale float64) (PlotLayout, error) {
	global := p.Frame.RelativeTo(parent)
	c := p.Canvas
	if c == nil {
		c = canvas.New()
	}
	cl, err := c.Fit(global, scale)
	if err != nil {
		return PlotLayout{}, err
	}
	return PlotLayout{
		Global:     global,
		Title:      p.Title,
		TitleSize:  p.TitleSize * scale,
		TitleColor: p.TitleColor,
		Canvas:     cl,
		Scale:      scale,
	}, nil
}

// Figure is the root of the layout tree.
type Figure struct {
	Plots      []*Plot
	Width      int
	Height     int
	Background color.RGBA
	Palette    style.Palette
}

// New returns an empty white figure with the default palette.
func New(width, height int) *Figure {
	return &Figure{
		Width:      width,
		Height:     height,
		Background: style.White,
		Palette:    style.DefaultPalette(),
	}
}

// Add appends plots.
func (f *Figure) Add(plots ...*Plot) { f.Plots = append(f.Plots, plots...) }

// AddPlot appends and returns a new full-size plot.
func (f *Figure) AddPlot() *Plot {
	p := NewPlot()
	f.Add(p)
	return p
}

// Grid appends rows×cols plots tiling the figure, row-major from the top.
func (f *Figure) Grid(rows, cols int) []*Plot {
	if rows <= 0 || cols <= 0 {
		return nil
	}
	plots := make([]*Plot, 0, rows*cols)
	for r := range rows {
		for c := range cols {
			p := NewPlot()
			p.Frame = geom.NewRect(
				float64(c)/float64(cols),
				float64(c+1)/float64(cols),
				1-float64(r+1)/float64(rows),
				1-float64(r)/float64(rows),
			)
			plots = append(plots, p)
		}
	}
	f.Add(plots...)
	return plots
}

// Resized returns a copy of f with a different pixel size. Plots are shared
// with f.
func (f Figure) Resized(width, height int) *Figure {
	f.Width, f.Height = width, height
	return &f
}

// Validate checks the figure size and every plot and canvas frame.
func (f Figure) Validate() error {
	if f.Width <= 0 || f.Height <= 0 {
		return errors.New(errors.ErrCodeInvalidInput, "figure size must be positive, got %dx%d", f.Width, f.Height)
	}
	if f.Width > MaxDimension || f.Height > MaxDimension {
		return errors.New(errors.ErrCodeInvalidInput, "figure size %dx%d exceeds %d pixels per side", f.Width, f.Height, MaxDimension)
	}
	for i, p := range f.Plots {
		if p == nil {
			return errors.New(errors.ErrCodeInvalidInput, "plot %d is nil", i)
		}
		r := p.Frame
		if err := errors.ValidateFrame(plotName(i), r.Left, r.Right, r.Bottom, r.Top); err != nil {
			return err
		}
		if p.Canvas != nil {
			r := p.Canvas.Frame
			if err := errors.ValidateFrame(plotName(i)+".canvas", r.Left, r.Right, r.Bottom, r.Top); err != nil {
				return err
			}
		}
	}
	return nil
}

func plotName(i int) string { return fmt.Sprintf("plot[%d]", i) }

// Fit resolves the whole tree. The figure is not modified.
func (f Figure) Fit() (Layout, error) {
	if err := f.Validate(); err != nil {
		return Layout{}, err
	}
	global := geom.NewRect(0, float64(f.Width), 0, float64(f.Height))
	scale := global.DiagLen()

	plots := make([]PlotLayout, len(f.Plots))
	for i, p := range f.Plots {
		pl, err := p.Fit(global, scale)
		if err != nil {
			return Layout{}, fmt.Errorf("fit %s: %w", plotName(i), err)
		}
		plots[i] = pl
	}

	palette := f.Palette
	if len(palette) == 0 {
		palette = style.DefaultPalette()
	}
	return Layout{
		Width:      float64(f.Width),
		Height:     float64(f.Height),
		Scale:      scale,
		Background: f.Background,
		Palette:    palette,
		Plots:      plots,
	}, nil
}

// Save fits the figure and writes it to path as PNG.
func (f Figure) Save(path string) error {
	if err := errors.ValidateOutputPath(path); err != nil {
		return err
	}
	l, err := f.Fit()
	if err != nil {
		return err
	}
	p, err := l.Raster()
	if err != nil {
		return err
	}
	return p.SavePNG(path)
}

// Raster draws the layout onto a new raster surface of the layout's size.
func (l Layout) Raster() (*raster.Painter, error) { return l.RasterScaled(1) }

// RasterScaled draws the layout onto a raster surface k times the layout's
// size.
func (l Layout) RasterScaled(k float64) (*raster.Painter, error) {
	if k <= 0 || math.IsNaN(k) || math.IsInf(k, 0) {
		return nil, errors.New(errors.ErrCodeInvalidInput, "raster scale must be positive, got %v", k)
	}
	p, err := raster.New(int(math.Round(l.Width*k)), int(math.Round(l.Height*k)))
	if err != nil {
		return nil, err
	}
	l.Draw(render.Scaled(p, k))
	return p, nil
}

// SVG draws the layout as an SVG document.
func (l Layout) SVG(opts ...svg.Option) []byte {
	p := svg.New(l.Width, l.Height, opts...)
	l.Draw(p)
	return p.Bytes()
}
