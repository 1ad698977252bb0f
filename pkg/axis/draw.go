package axis

import (
	"math"
	"unicode/utf8"

	"github.com/matzehuels/framechart/pkg/geom"
	"github.com/matzehuels/framechart/pkg/render"
)

// labelAspect approximates glyph advance as a fraction of font size.
const labelAspect = 0.6

// Draw paints the axis line, ticks, labels and title. The axis must have
// been fit.
func (a Axis) Draw(p render.Painter) {
	s := a.Style
	stroke := render.Stroke{Color: s.Color, Width: s.LineWidth * a.Scale}
	p.Polyline([]geom.Coord{a.GlobalStart, a.GlobalEnd}, stroke)

	n := a.Normal()
	tick := s.TickLength * a.Scale
	gap := s.LabelGap * a.Scale
	font := s.FontSize * a.Scale
	label := render.TextStyle{
		Color:  s.Color,
		Size:   font,
		AlignX: 0.5 - 0.5*n.X,
		AlignY: 0.5 - 0.5*n.Y,
	}

	widest := 0
	for _, m := range a.Marks {
		p.Polyline([]geom.Coord{m.Global, m.Global.Add(n.Scale(tick))}, stroke)
		p.Text(m.Global.Add(n.Scale(tick+gap)), m.Label, label)
		widest = max(widest, utf8.RuneCountInString(m.Label))
	}

	if s.Title == "" {
		return
	}
	// Labels extend along the normal by their height on horizontal axes and
	// by their width on vertical ones.
	extent := font
	if math.Abs(n.X) > math.Abs(n.Y) {
		extent = float64(widest) * font * labelAspect
	}
	mid := a.GlobalStart.Add(a.GlobalEnd).Scale(0.5)
	rot := math.Atan2(a.Direction.Y, a.Direction.X)
	up := geom.C(-math.Sin(rot), math.Cos(rot))
	p.Text(mid.Add(n.Scale(tick+gap+extent+s.TitleGap*a.Scale)), s.Title, render.TextStyle{
		Color:  s.Color,
		Size:   font,
		AlignX: 0.5,
		AlignY: 0.5 - 0.5*(n.X*up.X+n.Y*up.Y),
		Rotate: rot,
	})
}
