package render

import (
	"image/color"

	"github.com/matzehuels/framechart/pkg/geom"
)

// Scaled wraps p so that a drawing made for a surface k times smaller fills
// it. Coordinates, stroke widths, dash lengths, radii and text sizes are
// multiplied by k. A factor of 1 returns p unchanged.
func Scaled(p Painter, k float64) Painter {
	if k == 1 {
		return p
	}
	return &scaled{inner: p, k: k}
}

type scaled struct {
	inner Painter
	k     float64
}

func (s *scaled) Size() (float64, float64) {
	w, h := s.inner.Size()
	return w / s.k, h / s.k
}

func (s *scaled) Fill(c color.RGBA) { s.inner.Fill(c) }

func (s *scaled) Polyline(pts []geom.Coord, st Stroke) {
	s.inner.Polyline(s.points(pts), s.stroke(st))
}

func (s *scaled) Polygon(pts []geom.Coord, fill color.RGBA, st Stroke) {
	s.inner.Polygon(s.points(pts), fill, s.stroke(st))
}

func (s *scaled) Circle(center geom.Coord, r float64, fill color.RGBA, st Stroke) {
	s.inner.Circle(center.Scale(s.k), r*s.k, fill, s.stroke(st))
}

func (s *scaled) Text(at geom.Coord, str string, ts TextStyle) {
	ts.Size *= s.k
	s.inner.Text(at.Scale(s.k), str, ts)
}

func (s *scaled) points(pts []geom.Coord) []geom.Coord {
	out := make([]geom.Coord, len(pts))
	for i, p := range pts {
		out[i] = p.Scale(s.k)
	}
	return out
}

func (s *scaled) stroke(st Stroke) Stroke {
	st.Width *= s.k
	if len(st.Dash) > 0 {
		dash := make([]float64, len(st.Dash))
		for i, d := range st.Dash {
			dash[i] = d * s.k
		}
		st.Dash = dash
	}
	return st
}
