package canvas

import (
	"image/color"

	"github.com/matzehuels/framechart/pkg/axis"
	"github.com/matzehuels/framechart/pkg/chart"
	"github.com/matzehuels/framechart/pkg/geom"
	"github.com/matzehuels/framechart/pkg/render"
	"github.com/matzehuels/framechart/pkg/style"
)

// Gridline is a resolved gridline segment.
type Gridline [2]geom.Coord

// Layout is a canvas resolved into figure pixels.
type Layout struct {
	Global geom.Rect      `json:"global" bson:"global"`
	Data   geom.Rect      `json:"data" bson:"data"`
	XAxis  axis.Axis      `json:"x_axis" bson:"x_axis"`
	YAxis  axis.Axis      `json:"y_axis" bson:"y_axis"`
	Grid   []Gridline     `json:"grid" bson:"grid"`
	Charts []chart.Fitted `json:"charts" bson:"charts"`

	GridStyle GridStyle `json:"grid_style" bson:"grid_style"`
	Scale     float64   `json:"scale" bson:"scale"`
}

// Fit resolves the canvas against parent, the global frame of the owning
// plot. scale is the figure's size-correction factor.
//
// The data frame comes from [Canvas.ComputeDataFrame]; zero spans are
// widened, both axes compute nice marks, and the data frame is then
// replaced by the axes' niced ranges before axes and charts are resolved.
func (c Canvas) Fit(parent geom.Rect, scale float64) (Layout, error) {
	global := c.Frame.RelativeTo(parent)
	data := c.ComputeDataFrame()

	xlo, xhi := expand(data.Left, data.Right)
	ylo, yhi := expand(data.Bottom, data.Top)

	x := axis.Horizontal(xlo, xhi)
	x.Style = c.XAxis
	x.TargetMarks = c.XMarks
	if err := x.ComputeMarks(); err != nil {
		return Layout{}, err
	}

	y := axis.Vertical(ylo, yhi)
	y.Style = c.YAxis
	y.TargetMarks = c.YMarks
	if err := y.ComputeMarks(); err != nil {
		return Layout{}, err
	}

	data = geom.NewRect(x.Range[0], x.Range[1], y.Range[0], y.Range[1])

	x.Fit(global, scale)
	y.Fit(global, scale)

	charts := make([]chart.Fitted, len(c.Charts))
	for i, ch := range c.Charts {
		charts[i] = ch.Fit(global, data, scale)
	}

	return Layout{
		Global:    global,
		Data:      data,
		XAxis:     x,
		YAxis:     y,
		Grid:      gridlines(global, x, y),
		Charts:    charts,
		GridStyle: c.Grid,
		Scale:     scale,
	}, nil
}

func gridlines(global geom.Rect, x, y axis.Axis) []Gridline {
	lines := make([]Gridline, 0, len(x.Marks)+len(y.Marks))
	for _, m := range x.Marks {
		lines = append(lines, Gridline{geom.C(m.Global.X, global.Bottom), geom.C(m.Global.X, global.Top)})
	}
	for _, m := range y.Marks {
		lines = append(lines, Gridline{geom.C(global.Left, m.Global.Y), geom.C(global.Right, m.Global.Y)})
	}
	return lines
}

// Draw paints gridlines, charts, axes and the canvas border. Chart i takes
// palette entry start+i; the returned value is the next free index.
func (l Layout) Draw(p render.Painter, palette style.Palette, start int) int {
	if !l.GridStyle.Hidden {
		s := render.Stroke{
			Color: l.GridStyle.Color,
			Width: l.GridStyle.Width * l.Scale,
			Dash:  l.GridStyle.Dash.Scaled(l.Scale),
		}
		for _, g := range l.Grid {
			p.Polyline(g[:], s)
		}
	}

	for i, ch := range l.Charts {
		ch.Draw(p, palette, start+i)
	}

	l.XAxis.Draw(p)
	l.YAxis.Draw(p)

	if b := l.Global.Border; b != nil {
		p.Polygon(l.Global.Corners(), color.RGBA{}, render.Stroke{Color: b.Color, Width: b.Width * l.Scale})
	}
	return start + len(l.Charts)
}
