package geom

import (
	"image/color"
	"math"
)

// Border is the optional outline a frame draws around itself. Width is a
// fraction of the figure's size-correction factor, not pixels.
type Border struct {
	Color color.RGBA `json:"color" bson:"color"`
	Width float64    `json:"width" bson:"width"`
}

// Rect is an axis-aligned frame with per-side "explicitly set" flags.
//
// Right >= Left and Top >= Bottom are expected but not enforced: a chart
// with a single data point has a valid zero-width, zero-height frame.
type Rect struct {
	Left   float64 `json:"left" bson:"left"`
	Right  float64 `json:"right" bson:"right"`
	Bottom float64 `json:"bottom" bson:"bottom"`
	Top    float64 `json:"top" bson:"top"`

	LeftSet   bool `json:"-" bson:"-"`
	RightSet  bool `json:"-" bson:"-"`
	BottomSet bool `json:"-" bson:"-"`
	TopSet    bool `json:"-" bson:"-"`

	Border *Border `json:"border,omitempty" bson:"border,omitempty"`
}

// NewRect returns a frame with the given bounds. No side is marked as set.
func NewRect(left, right, bottom, top float64) Rect {
	return Rect{Left: left, Right: right, Bottom: bottom, Top: top}
}

// Unit returns the unit square [0,1]×[0,1].
func Unit() Rect { return NewRect(0, 1, 0, 1) }

// Unbounded returns the inverted sentinel used as the neutral element of
// [Rect.Union]: every side sits at the opposite float extreme, so any real
// frame unioned into it replaces all four sides.
func Unbounded() Rect {
	return NewRect(math.MaxFloat64, -math.MaxFloat64, math.MaxFloat64, -math.MaxFloat64)
}

// SetLeft sets the left bound and marks it as explicitly set.
func (r *Rect) SetLeft(v float64) { r.Left, r.LeftSet = v, true }

// SetRight sets the right bound and marks it as explicitly set.
func (r *Rect) SetRight(v float64) { r.Right, r.RightSet = v, true }

// SetBottom sets the bottom bound and marks it as explicitly set.
func (r *Rect) SetBottom(v float64) { r.Bottom, r.BottomSet = v, true }

// SetTop sets the top bound and marks it as explicitly set.
func (r *Rect) SetTop(v float64) { r.Top, r.TopSet = v, true }

// AnySet reports whether at least one side was explicitly set.
func (r Rect) AnySet() bool { return r.LeftSet || r.RightSet || r.BottomSet || r.TopSet }

// Width returns the horizontal span of the frame.
func (r Rect) Width() float64 { return r.Right - r.Left }

// Height returns the vertical span of the frame.
func (r Rect) Height() float64 { return r.Top - r.Bottom }

// CenterX returns the horizontal center of the frame.
func (r Rect) CenterX() float64 { return (r.Left + r.Right) / 2 }

// CenterY returns the vertical center of the frame.
func (r Rect) CenterY() float64 { return (r.Bottom + r.Top) / 2 }

// Center returns the center point of the frame.
func (r Rect) Center() Coord { return Coord{r.CenterX(), r.CenterY()} }

// DiagLen returns the Euclidean length of the frame's diagonal.
func (r Rect) DiagLen() float64 { return math.Hypot(r.Width(), r.Height()) }

// Corners returns the four corners counter-clockwise from bottom-left.
func (r Rect) Corners() []Coord {
	return []Coord{
		{r.Left, r.Bottom},
		{r.Right, r.Bottom},
		{r.Right, r.Top},
		{r.Left, r.Top},
	}
}

// RelativeTo maps r, whose bounds are expressed in ref's unit square, into
// ref's coordinate system. Set flags and border are preserved.
func (r Rect) RelativeTo(ref Rect) Rect {
	out := r
	out.Left = ref.Left + ref.Width()*r.Left
	out.Right = ref.Left + ref.Width()*r.Right
	out.Bottom = ref.Bottom + ref.Height()*r.Bottom
	out.Top = ref.Bottom + ref.Height()*r.Top
	return out
}

// Union returns the smallest frame containing both r and o.
// The result carries no set flags.
func (r Rect) Union(o Rect) Rect {
	return NewRect(
		math.Min(r.Left, o.Left),
		math.Max(r.Right, o.Right),
		math.Min(r.Bottom, o.Bottom),
		math.Max(r.Top, o.Top),
	)
}

// Override replaces each side of r with the corresponding side of user when
// that side is marked as set. Sides are independent: a user-set Left does
// not affect Top.
func (r Rect) Override(user Rect) Rect {
	out := r
	if user.LeftSet {
		out.Left = user.Left
	}
	if user.RightSet {
		out.Right = user.Right
	}
	if user.BottomSet {
		out.Bottom = user.Bottom
	}
	if user.TopSet {
		out.Top = user.Top
	}
	return out
}

// Contains reports whether c lies inside r, boundaries included.
func (r Rect) Contains(c Coord) bool {
	return c.X >= r.Left && c.X <= r.Right && c.Y >= r.Bottom && c.Y <= r.Top
}
