package figfile

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/matzehuels/framechart/pkg/canvas"
	"github.com/matzehuels/framechart/pkg/chart"
	"github.com/matzehuels/framechart/pkg/errors"
	"github.com/matzehuels/framechart/pkg/figure"
	"github.com/matzehuels/framechart/pkg/geom"
	"github.com/matzehuels/framechart/pkg/style"
)

// Default figure size when a document leaves it out.
const (
	DefaultWidth  = 800
	DefaultHeight = 600
)

// Figure builds the figure the document describes. CSV references are
// read on the fly; call Inline first to read them only once.
func (d *Document) Figure() (*figure.Figure, error) {
	w, h := d.Width, d.Height
	if w == 0 {
		w = DefaultWidth
	}
	if h == 0 {
		h = DefaultHeight
	}
	f := figure.New(w, h)

	if d.Background != "" {
		bg, err := style.ParseColor(d.Background)
		if err != nil {
			return nil, fmt.Errorf("background: %w", err)
		}
		f.Background = bg
	}
	if len(d.Palette) > 0 {
		p, err := style.ParsePalette(d.Palette)
		if err != nil {
			return nil, fmt.Errorf("palette: %w", err)
		}
		f.Palette = p
	}

	for i, pd := range d.Plots {
		p, err := d.buildPlot(pd)
		if err != nil {
			return nil, fmt.Errorf("plot %d: %w", i, err)
		}
		f.Add(p)
	}
	return f, nil
}

func (d *Document) buildPlot(pd Plot) (*figure.Plot, error) {
	p := figure.NewPlot()
	p.Title = pd.Title
	if pd.Frame != nil {
		p.Frame = pd.Frame.rect()
	}
	b, err := pd.Border.border()
	if err != nil {
		return nil, err
	}
	p.Frame.Border = b

	if err := applyCanvas(p.Canvas, pd.Canvas); err != nil {
		return nil, err
	}
	for j, cd := range pd.Charts {
		ch, err := d.buildChart(cd)
		if err != nil {
			return nil, fmt.Errorf("chart %d: %w", j, err)
		}
		p.Canvas.Add(ch)
	}
	return p, nil
}

func applyCanvas(c *canvas.Canvas, cd Canvas) error {
	if cd.Frame != nil {
		c.Frame = cd.Frame.rect()
	}
	b, err := cd.Border.border()
	if err != nil {
		return err
	}
	c.Frame.Border = b
	c.SetXLabel(cd.XLabel)
	c.SetYLabel(cd.YLabel)
	if cd.XMin != nil {
		c.SetXMin(*cd.XMin)
	}
	if cd.XMax != nil {
		c.SetXMax(*cd.XMax)
	}
	if cd.YMin != nil {
		c.SetYMin(*cd.YMin)
	}
	if cd.YMax != nil {
		c.SetYMax(*cd.YMax)
	}
	c.XMarks, c.YMarks = cd.XMarks, cd.YMarks
	if cd.Grid != nil {
		c.Grid.Hidden = !*cd.Grid
	}
	return nil
}

func (d *Document) buildChart(cd Chart) (chart.Chart, error) {
	xs, ys, err := d.columns(cd)
	if err != nil {
		return nil, err
	}
	pts, err := chart.Points(xs, ys)
	if err != nil {
		return nil, err
	}

	switch strings.ToLower(cd.Kind) {
	case "", string(chart.KindLine):
		l, err := chart.NewLine(pts)
		if err != nil {
			return nil, err
		}
		l.Label = cd.Label
		if l.Color, err = optionalColor(cd.Color); err != nil {
			return nil, err
		}
		if cd.Width > 0 {
			l.Width = cd.Width
		}
		if l.Dash, err = style.ParseDash(cd.Dash); err != nil {
			return nil, err
		}
		return l, nil

	case string(chart.KindScatter):
		s, err := chart.NewScatter(pts)
		if err != nil {
			return nil, err
		}
		s.Label = cd.Label
		if s.Color, err = optionalColor(cd.Color); err != nil {
			return nil, err
		}
		if cd.Size > 0 {
			s.Size = cd.Size
		}
		if s.Shape, err = style.ParseShape(cd.Shape); err != nil {
			return nil, err
		}
		return s, nil

	default:
		return nil, errors.New(errors.ErrCodeInvalidConfig, "unknown chart kind %q", cd.Kind)
	}
}

func (f Frame) rect() geom.Rect {
	return geom.NewRect(f.Left, f.Right, f.Bottom, f.Top)
}

func (b *Border) border() (*geom.Border, error) {
	if b == nil {
		return nil, nil
	}
	c := style.Black
	if b.Color != "" {
		var err error
		if c, err = style.ParseColor(b.Color); err != nil {
			return nil, err
		}
	}
	w := b.Width
	if w == 0 {
		w = 0.001
	}
	return &geom.Border{Color: c, Width: w}, nil
}

func optionalColor(s string) (*color.RGBA, error) {
	if s == "" {
		return nil, nil
	}
	c, err := style.ParseColor(s)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
