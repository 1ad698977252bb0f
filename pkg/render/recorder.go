package render

import (
	"image/color"
	"slices"

	"github.com/matzehuels/framechart/pkg/geom"
)

// OpKind identifies a recorded painter call.
type OpKind string

const (
	OpFill     OpKind = "fill"
	OpPolyline OpKind = "polyline"
	OpPolygon  OpKind = "polygon"
	OpCircle   OpKind = "circle"
	OpText     OpKind = "text"
)

// Op is one recorded painter call.
type Op struct {
	Kind   OpKind
	Points []geom.Coord
	Radius float64
	Fill   color.RGBA
	Stroke Stroke
	Text   string
	Style  TextStyle
}

// Recorder is a [Painter] that keeps every call in order.
type Recorder struct {
	Width, Height float64
	Ops           []Op
}

// NewRecorder returns an empty recorder of the given size.
func NewRecorder(width, height float64) *Recorder {
	return &Recorder{Width: width, Height: height}
}

func (r *Recorder) Size() (float64, float64) { return r.Width, r.Height }

func (r *Recorder) Fill(c color.RGBA) {
	r.Ops = append(r.Ops, Op{Kind: OpFill, Fill: c})
}

func (r *Recorder) Polyline(pts []geom.Coord, s Stroke) {
	r.Ops = append(r.Ops, Op{Kind: OpPolyline, Points: slices.Clone(pts), Stroke: s})
}

func (r *Recorder) Polygon(pts []geom.Coord, fill color.RGBA, s Stroke) {
	r.Ops = append(r.Ops, Op{Kind: OpPolygon, Points: slices.Clone(pts), Fill: fill, Stroke: s})
}

func (r *Recorder) Circle(center geom.Coord, radius float64, fill color.RGBA, s Stroke) {
	r.Ops = append(r.Ops, Op{Kind: OpCircle, Points: []geom.Coord{center}, Radius: radius, Fill: fill, Stroke: s})
}

func (r *Recorder) Text(at geom.Coord, s string, ts TextStyle) {
	r.Ops = append(r.Ops, Op{Kind: OpText, Points: []geom.Coord{at}, Text: s, Style: ts})
}

// Count returns the number of recorded ops of the given kind.
func (r *Recorder) Count(kind OpKind) int {
	n := 0
	for _, op := range r.Ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}

// Texts returns the strings of all recorded text ops, in order.
func (r *Recorder) Texts() []string {
	var out []string
	for _, op := range r.Ops {
		if op.Kind == OpText {
			out = append(out, op.Text)
		}
	}
	return out
}
