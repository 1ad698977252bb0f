// Package canvas places charts and axes inside a plot.
//
// A [Canvas] is configuration: its charts, a local frame in the plot's unit
// square, optional user overrides of the data range, and axis and grid
// styles. [Canvas.Fit] resolves it against a parent frame into a [Layout]
// without modifying the canvas, so the same canvas can be fit any number of
// times with identical results.
package canvas

import (
	"image/color"
	"math"

	"github.com/matzehuels/framechart/pkg/axis"
	"github.com/matzehuels/framechart/pkg/chart"
	"github.com/matzehuels/framechart/pkg/geom"
	"github.com/matzehuels/framechart/pkg/style"
)

// GridStyle controls the gridlines derived from axis marks. Width is a
// fraction of the size-correction factor.
type GridStyle struct {
	Hidden bool       `json:"hidden,omitempty" bson:"hidden,omitempty"`
	Color  color.RGBA `json:"color" bson:"color"`
	Width  float64    `json:"width" bson:"width"`
	Dash   style.Dash `json:"dash,omitempty" bson:"dash,omitempty"`
}

// DefaultGridStyle returns thin light-grey gridlines.
func DefaultGridStyle() GridStyle {
	return GridStyle{
		Color: style.Blend(style.Black, style.White, 0.85),
		Width: 0.001,
	}
}

// Canvas holds charts and the settings of its two axes.
type Canvas struct {
	Charts []chart.Chart

	// Frame is the canvas position in the plot's unit square.
	Frame geom.Rect

	// Data carries user overrides of the data range. Only sides marked as
	// set are applied.
	Data geom.Rect

	// Cached supplies the data range for sides neither a chart nor the user
	// constrains, such as on an empty canvas.
	Cached geom.Rect

	XAxis axis.Style
	YAxis axis.Style

	// XMarks and YMarks are the target tick counts; zero selects
	// axis.DefaultTargetMarks.
	XMarks int
	YMarks int

	Grid GridStyle
}

// New returns a canvas with margins for tick labels and default styles.
func New() *Canvas {
	y := axis.DefaultStyle()
	y.Side = axis.SideLeft
	return &Canvas{
		Frame:  geom.NewRect(0.12, 0.95, 0.12, 0.9),
		Cached: geom.Unit(),
		XAxis:  axis.DefaultStyle(),
		YAxis:  y,
		Grid:   DefaultGridStyle(),
	}
}

// Add appends charts to the canvas.
func (c *Canvas) Add(charts ...chart.Chart) { c.Charts = append(c.Charts, charts...) }

// SetXMin fixes the lower bound of the x data range.
func (c *Canvas) SetXMin(v float64) { c.Data.SetLeft(v) }

// SetXMax fixes the upper bound of the x data range.
func (c *Canvas) SetXMax(v float64) { c.Data.SetRight(v) }

// SetYMin fixes the lower bound of the y data range.
func (c *Canvas) SetYMin(v float64) { c.Data.SetBottom(v) }

// SetYMax fixes the upper bound of the y data range.
func (c *Canvas) SetYMax(v float64) { c.Data.SetTop(v) }

// SetXLabel sets the horizontal axis title.
func (c *Canvas) SetXLabel(s string) { c.XAxis.Title = s }

// SetYLabel sets the vertical axis title.
func (c *Canvas) SetYLabel(s string) { c.YAxis.Title = s }

// ComputeDataFrame returns the union of all chart data frames with user
// overrides applied per side. Sides that no chart and no override constrain
// keep the value from Cached.
func (c Canvas) ComputeDataFrame() geom.Rect {
	u := geom.Unbounded()
	for _, ch := range c.Charts {
		u = u.Union(ch.DataFrame())
	}
	u = u.Override(c.Data)

	sentinel := geom.Unbounded()
	if u.Left == sentinel.Left {
		u.Left = c.Cached.Left
	}
	if u.Right == sentinel.Right {
		u.Right = c.Cached.Right
	}
	if u.Bottom == sentinel.Bottom {
		u.Bottom = c.Cached.Bottom
	}
	if u.Top == sentinel.Top {
		u.Top = c.Cached.Top
	}
	return u
}

// expand widens a zero-span range so tick computation has something to
// divide. The pad is 5% of the value, at least 0.5.
func expand(lo, hi float64) (float64, float64) {
	if hi != lo {
		return lo, hi
	}
	pad := math.Max(math.Abs(lo)*0.05, 0.5)
	return lo - pad, hi + pad
}
