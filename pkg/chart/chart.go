// Package chart defines the data series a canvas can hold.
//
// A [Chart] knows its tight data bounds and how to resolve itself into a
// [Fitted] value for a given pair of frames: the canvas's global pixel
// frame and the data frame it represents. Fitted values are plain data and
// are drawn with an explicit palette index, so no colour state is shared
// between charts or canvases.
//
// New chart kinds are added as new [Kind] values and a matching branch in
// [Fitted.Draw].
package chart

import (
	"image/color"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/matzehuels/framechart/pkg/errors"
	"github.com/matzehuels/framechart/pkg/geom"
	"github.com/matzehuels/framechart/pkg/numeric"
)

// Kind identifies a chart variant.
type Kind string

const (
	// KindLine is a polyline through the points in order.
	KindLine Kind = "line"
	// KindScatter is one marker per point.
	KindScatter Kind = "scatter"
)

// Chart is a data series that can be placed on a canvas.
type Chart interface {
	// Kind reports the variant, which selects how a Fitted value is drawn.
	Kind() Kind

	// DataFrame returns the bounds of the series in data units.
	DataFrame() geom.Rect

	// Fit maps the series from data into global, the canvas's pixel frame.
	// Sizes are multiplied by scale.
	Fit(global, data geom.Rect, scale float64) Fitted
}

// Points builds a point slice from parallel coordinate slices.
func Points(xs, ys []float64) ([]geom.Coord, error) {
	if len(xs) != len(ys) {
		return nil, errors.New(errors.ErrCodeInvalidInput, "x and y lengths differ: %d vs %d", len(xs), len(ys))
	}
	pts := make([]geom.Coord, len(xs))
	for i := range xs {
		pts[i] = geom.C(xs[i], ys[i])
	}
	return pts, nil
}

// Bounds returns the tight bounding frame of pts. Empty input fails with
// EMPTY_DATA, NaN or infinite values with INVALID_DATA.
func Bounds(pts []geom.Coord) (geom.Rect, error) {
	if len(pts) == 0 {
		return geom.Rect{}, errors.New(errors.ErrCodeEmptyData, "series has no points")
	}
	xs := make([]float64, len(pts))
	ys := make([]float64, len(pts))
	for i, p := range pts {
		xs[i], ys[i] = p.X, p.Y
	}
	if floats.HasNaN(xs) || floats.HasNaN(ys) {
		return geom.Rect{}, errors.New(errors.ErrCodeInvalidData, "NaN at index %d", indexOf(pts, math.IsNaN))
	}
	if i := indexOf(pts, isInf); i >= 0 {
		return geom.Rect{}, errors.New(errors.ErrCodeInvalidData, "infinite value at index %d", i)
	}
	return geom.NewRect(floats.Min(xs), floats.Max(xs), floats.Min(ys), floats.Max(ys)), nil
}

func indexOf(pts []geom.Coord, bad func(float64) bool) int {
	for i, p := range pts {
		if bad(p.X) || bad(p.Y) {
			return i
		}
	}
	return -1
}

func isInf(v float64) bool { return math.IsInf(v, 0) }

// project maps a data point into the global frame.
func project(c geom.Coord, global, data geom.Rect) geom.Coord {
	return geom.C(
		numeric.MapRange(c.X, data.Left, data.Right, global.Left, global.Right),
		numeric.MapRange(c.Y, data.Bottom, data.Top, global.Bottom, global.Top),
	)
}

func projectAll(pts []geom.Coord, global, data geom.Rect) []geom.Coord {
	out := make([]geom.Coord, len(pts))
	for i, c := range pts {
		out[i] = project(c, global, data)
	}
	return out
}

func projectRect(r, global, data geom.Rect) geom.Rect {
	lb := project(geom.C(r.Left, r.Bottom), global, data)
	rt := project(geom.C(r.Right, r.Top), global, data)
	return geom.NewRect(lb.X, rt.X, lb.Y, rt.Y)
}

func copyColor(c *color.RGBA) *color.RGBA {
	if c == nil {
		return nil
	}
	v := *c
	return &v
}
