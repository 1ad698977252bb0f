package chart

import (
	"image/color"
	"math"

	"github.com/matzehuels/framechart/pkg/geom"
	"github.com/matzehuels/framechart/pkg/render"
	"github.com/matzehuels/framechart/pkg/style"
)

// Fitted is a chart resolved into figure pixels. Fields that do not apply to
// Kind are zero.
type Fitted struct {
	Kind  Kind   `json:"kind" bson:"kind"`
	Label string `json:"label,omitempty" bson:"label,omitempty"`

	Points []geom.Coord `json:"points" bson:"points"`
	Frame  geom.Rect    `json:"frame" bson:"frame"`
	Clip   geom.Rect    `json:"clip" bson:"clip"`

	Color *color.RGBA `json:"color,omitempty" bson:"color,omitempty"`

	// line
	Width float64   `json:"width,omitempty" bson:"width,omitempty"`
	Dash  []float64 `json:"dash,omitempty" bson:"dash,omitempty"`

	// scatter
	Size  float64     `json:"size,omitempty" bson:"size,omitempty"`
	Shape style.Shape `json:"shape,omitempty" bson:"shape,omitempty"`
}

// Resolve picks the chart's own colour, or palette entry index when it has
// none.
func (f Fitted) Resolve(palette style.Palette, index int) color.RGBA {
	if f.Color != nil {
		return *f.Color
	}
	return palette.At(index)
}

// Draw paints the chart. Geometry outside Clip is not drawn.
func (f Fitted) Draw(p render.Painter, palette style.Palette, index int) {
	c := f.Resolve(palette, index)
	switch f.Kind {
	case KindLine:
		s := render.Stroke{Color: c, Width: f.Width, Dash: f.Dash}
		for _, run := range clipPolyline(f.Points, f.Clip) {
			p.Polyline(run, s)
		}
	case KindScatter:
		for _, pt := range f.Points {
			if f.Clip.Contains(pt) {
				drawMarker(p, pt, f.Size, f.Shape, c)
			}
		}
	}
}

func drawMarker(p render.Painter, at geom.Coord, r float64, shape style.Shape, c color.RGBA) {
	outline := render.Stroke{Color: c, Width: math.Max(r/3, 1)}
	switch shape {
	case style.Square:
		p.Polygon(offsets(at, r, [][2]float64{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}}), c, render.Stroke{})
	case style.Triangle:
		p.Polygon(offsets(at, r, [][2]float64{{-1, -0.8}, {1, -0.8}, {0, 1}}), c, render.Stroke{})
	case style.Diamond:
		p.Polygon(offsets(at, r, [][2]float64{{0, -1.2}, {1.2, 0}, {0, 1.2}, {-1.2, 0}}), c, render.Stroke{})
	case style.Plus:
		p.Polyline(offsets(at, r, [][2]float64{{-1.2, 0}, {1.2, 0}}), outline)
		p.Polyline(offsets(at, r, [][2]float64{{0, -1.2}, {0, 1.2}}), outline)
	case style.Cross:
		p.Polyline(offsets(at, r, [][2]float64{{-1, -1}, {1, 1}}), outline)
		p.Polyline(offsets(at, r, [][2]float64{{-1, 1}, {1, -1}}), outline)
	default:
		p.Circle(at, r, c, render.Stroke{})
	}
}

func offsets(at geom.Coord, r float64, unit [][2]float64) []geom.Coord {
	out := make([]geom.Coord, len(unit))
	for i, u := range unit {
		out[i] = geom.C(at.X+u[0]*r, at.Y+u[1]*r)
	}
	return out
}

// clipPolyline splits pts into the runs that lie inside clip.
func clipPolyline(pts []geom.Coord, clip geom.Rect) [][]geom.Coord {
	var runs [][]geom.Coord
	var cur []geom.Coord
	flush := func() {
		if len(cur) >= 2 {
			runs = append(runs, cur)
		}
		cur = nil
	}
	for i := 1; i < len(pts); i++ {
		a, b, ok := clipSegment(pts[i-1], pts[i], clip)
		if !ok {
			flush()
			continue
		}
		if len(cur) == 0 || cur[len(cur)-1] != a {
			flush()
			cur = append(cur, a)
		}
		cur = append(cur, b)
	}
	flush()
	return runs
}

// clipSegment is Liang-Barsky clipping of a→b against r.
func clipSegment(a, b geom.Coord, r geom.Rect) (geom.Coord, geom.Coord, bool) {
	dx, dy := b.X-a.X, b.Y-a.Y
	t0, t1 := 0.0, 1.0
	edges := [4][2]float64{
		{-dx, a.X - r.Left},
		{dx, r.Right - a.X},
		{-dy, a.Y - r.Bottom},
		{dy, r.Top - a.Y},
	}
	for _, e := range edges {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return a, b, false
			}
			continue
		}
		t := q / p
		if p < 0 {
			if t > t1 {
				return a, b, false
			}
			t0 = math.Max(t0, t)
		} else {
			if t < t0 {
				return a, b, false
			}
			t1 = math.Min(t1, t)
		}
	}
	ca, cb := a, b
	if t0 > 0 {
		ca = geom.C(a.X+t0*dx, a.Y+t0*dy)
	}
	if t1 < 1 {
		cb = geom.C(a.X+t1*dx, a.Y+t1*dy)
	}
	return ca, cb, true
}
