package chart

import (
	"image/color"
	"slices"

	"github.com/matzehuels/framechart/pkg/geom"
	"github.com/matzehuels/framechart/pkg/style"
)

// DefaultLineWidth is the stroke width of a line chart, as a fraction of the
// size-correction factor.
const DefaultLineWidth = 0.002

// Line connects its points in order.
type Line struct {
	Points []geom.Coord
	Frame  geom.Rect

	// Color overrides the palette colour when set.
	Color *color.RGBA
	Width float64
	Dash  style.Dash
	Label string
}

var _ Chart = (*Line)(nil)

// NewLine validates pts and computes the tight data frame.
func NewLine(pts []geom.Coord) (*Line, error) {
	frame, err := Bounds(pts)
	if err != nil {
		return nil, err
	}
	return &Line{
		Points: slices.Clone(pts),
		Frame:  frame,
		Width:  DefaultLineWidth,
	}, nil
}

// Kind returns KindLine.
func (l *Line) Kind() Kind { return KindLine }

// DataFrame returns the tight bounds of the points, or the frame set with
// SetFrame.
func (l *Line) DataFrame() geom.Rect { return l.Frame }

// SetFrame replaces the data frame computed at construction.
func (l *Line) SetFrame(r geom.Rect) { l.Frame = r }

// Fit projects the points from data into global and resolves the style
// into a stroked polyline; sizes are multiplied by scale.
func (l *Line) Fit(global, data geom.Rect, scale float64) Fitted {
	return Fitted{
		Kind:   KindLine,
		Label:  l.Label,
		Points: projectAll(l.Points, global, data),
		Frame:  projectRect(l.Frame, global, data),
		Clip:   global,
		Color:  copyColor(l.Color),
		Width:  l.Width * scale,
		Dash:   l.Dash.Scaled(scale),
	}
}
