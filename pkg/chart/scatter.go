package chart

import (
	"image/color"
	"slices"

	"github.com/matzehuels/framechart/pkg/geom"
	"github.com/matzehuels/framechart/pkg/style"
)

// DefaultPointSize is the marker radius of a scatter chart, as a fraction of
// the size-correction factor.
const DefaultPointSize = 0.004

// Scatter draws one marker per point.
type Scatter struct {
	Points []geom.Coord
	Frame  geom.Rect

	Color *color.RGBA
	Size  float64
	Shape style.Shape
	Label string
}

var _ Chart = (*Scatter)(nil)

// NewScatter validates pts and computes the tight data frame.
func NewScatter(pts []geom.Coord) (*Scatter, error) {
	frame, err := Bounds(pts)
	if err != nil {
		return nil, err
	}
	return &Scatter{
		Points: slices.Clone(pts),
		Frame:  frame,
		Size:   DefaultPointSize,
		Shape:  style.Circle,
	}, nil
}

// Kind returns KindScatter.
func (s *Scatter) Kind() Kind { return KindScatter }

// DataFrame returns the tight bounds of the points, or the frame set with
// SetFrame.
func (s *Scatter) DataFrame() geom.Rect { return s.Frame }

// SetFrame replaces the data frame computed at construction.
func (s *Scatter) SetFrame(r geom.Rect) { s.Frame = r }

// Fit projects the points from data into global and resolves the style
// into one marker per point; sizes are multiplied by scale.
func (s *Scatter) Fit(global, data geom.Rect, scale float64) Fitted {
	return Fitted{
		Kind:   KindScatter,
		Label:  s.Label,
		Points: projectAll(s.Points, global, data),
		Frame:  projectRect(s.Frame, global, data),
		Clip:   global,
		Color:  copyColor(s.Color),
		Size:   s.Size * scale,
		Shape:  s.Shape,
	}
}
