package figure

import (
	"image/color"

	"github.com/matzehuels/framechart/pkg/canvas"
	"github.com/matzehuels/framechart/pkg/geom"
	"github.com/matzehuels/framechart/pkg/render"
	"github.com/matzehuels/framechart/pkg/style"
)

// titleGap separates a plot title from the top of its canvas, as a fraction
// of the size-correction factor.
const titleGap = 0.01

// PlotLayout is a resolved plot.
type PlotLayout struct {
	Global     geom.Rect     `json:"global" bson:"global"`
	Title      string        `json:"title,omitempty" bson:"title,omitempty"`
	TitleSize  float64       `json:"title_size" bson:"title_size"`
	TitleColor color.RGBA    `json:"title_color" bson:"title_color"`
	Canvas     canvas.Layout `json:"canvas" bson:"canvas"`
	Scale      float64       `json:"scale" bson:"scale"`
}

// Draw paints the plot border, canvas and title. It returns the next free
// palette index.
func (pl PlotLayout) Draw(p render.Painter, palette style.Palette, start int) int {
	if b := pl.Global.Border; b != nil {
		p.Polygon(pl.Global.Corners(), color.RGBA{}, render.Stroke{Color: b.Color, Width: b.Width * pl.Scale})
	}
	next := pl.Canvas.Draw(p, palette, start)
	if pl.Title != "" {
		at := geom.C(pl.Canvas.Global.CenterX(), pl.Canvas.Global.Top+titleGap*pl.Scale)
		p.Text(at, pl.Title, render.TextStyle{
			Color:  pl.TitleColor,
			Size:   pl.TitleSize,
			AlignX: 0.5,
			AlignY: 0,
		})
	}
	return next
}

// Layout is the immutable result of fitting a figure.
type Layout struct {
	Width      float64       `json:"width" bson:"width"`
	Height     float64       `json:"height" bson:"height"`
	Scale      float64       `json:"scale" bson:"scale"`
	Background color.RGBA    `json:"background" bson:"background"`
	Palette    style.Palette `json:"palette" bson:"palette"`
	Plots      []PlotLayout  `json:"plots" bson:"plots"`
}

// Draw paints the background and every plot. Palette indices run across
// plots in order, so no two charts in a figure share a colour until the
// palette wraps.
func (l Layout) Draw(p render.Painter) {
	p.Fill(l.Background)
	idx := 0
	for _, pl := range l.Plots {
		idx = pl.Draw(p, l.Palette, idx)
	}
}

// Charts returns the number of charts across all plots.
func (l Layout) Charts() int {
	n := 0
	for _, pl := range l.Plots {
		n += len(pl.Canvas.Charts)
	}
	return n
}
