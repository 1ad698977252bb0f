package render

import (
	"image/color"

	"github.com/matzehuels/framechart/pkg/geom"
)

// Stroke describes how an outline is drawn. A zero Width or a fully
// transparent Color disables the stroke.
type Stroke struct {
	Color color.RGBA
	Width float64
	Dash  []float64
}

// Visible reports whether the stroke paints anything.
func (s Stroke) Visible() bool { return s.Width > 0 && s.Color.A > 0 }

// TextStyle positions and colours a text run.
//
// AlignX and AlignY place the anchor inside the text's bounding box: AlignX
// 0 is the left edge and 1 the right edge; AlignY 0 is the baseline side
// (text sits above the anchor) and 1 the top (text hangs below it).
// Rotate is a counter-clockwise angle in radians around the anchor.
type TextStyle struct {
	Color  color.RGBA
	Size   float64
	AlignX float64
	AlignY float64
	Rotate float64
}

// Painter is the drawing capability consumed by the layout engine.
type Painter interface {
	// Size returns the surface size in pixels.
	Size() (width, height float64)

	// Fill paints the whole surface with c.
	Fill(c color.RGBA)

	// Polyline strokes the open path through pts. Fewer than two points
	// draw nothing.
	Polyline(pts []geom.Coord, s Stroke)

	// Polygon fills the closed path through pts with fill (skipped when
	// transparent) and then strokes it.
	Polygon(pts []geom.Coord, fill color.RGBA, s Stroke)

	// Circle fills and strokes a circle of radius r around center.
	Circle(center geom.Coord, r float64, fill color.RGBA, s Stroke)

	// Text draws s anchored at the given point.
	Text(at geom.Coord, s string, ts TextStyle)
}
