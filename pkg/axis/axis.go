package axis

import (
	"image/color"
	"math"

	"github.com/matzehuels/framechart/pkg/errors"
	"github.com/matzehuels/framechart/pkg/geom"
	"github.com/matzehuels/framechart/pkg/numeric"
	"github.com/matzehuels/framechart/pkg/style"
)

// DefaultTargetMarks is the tick count aimed for when none is configured.
const DefaultTargetMarks = 6

// maxMarks caps emission for pathological ranges.
const maxMarks = 1000

var multipliers = [...]int{1, 2, 5}

// Mark is a single tick position.
type Mark struct {
	Value  float64    `json:"value" bson:"value"`
	Local  geom.Coord `json:"local" bson:"local"`
	Global geom.Coord `json:"global" bson:"global"`
	Label  string     `json:"label" bson:"label"`
}

// Side selects where ticks and labels go, relative to the direction of
// travel from start to end.
type Side int

const (
	// SideRight puts ticks on the right-hand side: below a left-to-right axis.
	SideRight Side = iota
	// SideLeft puts ticks on the left-hand side: left of a bottom-to-top axis.
	SideLeft
)

// Style holds the visual settings of an axis. Sizes are fractions of the
// size-correction factor.
type Style struct {
	Color      color.RGBA `json:"color" bson:"color"`
	LineWidth  float64    `json:"line_width" bson:"line_width"`
	TickLength float64    `json:"tick_length" bson:"tick_length"`
	LabelGap   float64    `json:"label_gap" bson:"label_gap"`
	FontSize   float64    `json:"font_size" bson:"font_size"`
	Title      string     `json:"title,omitempty" bson:"title,omitempty"`
	TitleGap   float64    `json:"title_gap" bson:"title_gap"`
	Side       Side       `json:"side" bson:"side"`
}

// DefaultStyle returns the style used by canvas default axes.
func DefaultStyle() Style {
	return Style{
		Color:      style.Black,
		LineWidth:  0.0015,
		TickLength: 0.008,
		LabelGap:   0.005,
		FontSize:   0.014,
		TitleGap:   0.012,
	}
}

// Axis owns a data range and the marks computed from it.
type Axis struct {
	LocalStart  geom.Coord `json:"local_start" bson:"local_start"`
	LocalEnd    geom.Coord `json:"local_end" bson:"local_end"`
	GlobalStart geom.Coord `json:"global_start" bson:"global_start"`
	GlobalEnd   geom.Coord `json:"global_end" bson:"global_end"`
	Direction   geom.Coord `json:"direction" bson:"direction"`

	Range       [2]float64 `json:"range" bson:"range"`
	Marks       []Mark     `json:"marks" bson:"marks"`
	TargetMarks int        `json:"target_marks" bson:"target_marks"`

	Style Style `json:"style" bson:"style"`

	// Scale is the size-correction factor recorded by Fit.
	Scale float64 `json:"scale" bson:"scale"`
}

// New returns an axis from start to end (parent unit space) over [min, max].
func New(start, end geom.Coord, min, max float64) Axis {
	return Axis{
		LocalStart:  start,
		LocalEnd:    end,
		Direction:   start.UnitTowards(end),
		Range:       [2]float64{min, max},
		TargetMarks: DefaultTargetMarks,
		Style:       DefaultStyle(),
	}
}

// Horizontal returns the default bottom axis, (0,0) to (1,0), ticks below.
func Horizontal(min, max float64) Axis {
	a := New(geom.C(0, 0), geom.C(1, 0), min, max)
	a.Style.Side = SideRight
	return a
}

// Vertical returns the default left axis, (0,0) to (0,1), ticks to the left.
func Vertical(min, max float64) Axis {
	a := New(geom.C(0, 0), geom.C(0, 1), min, max)
	a.Style.Side = SideLeft
	return a
}

// NiceMarks returns evenly spaced tick values covering [min, max], aiming
// for about target values.
//
// The step is a multiple of k·10^p with k in {1, 2, 5}, where p is the order
// of magnitude of the raw step (max-min)/(target-1) and k is the multiplier
// whose k·10^p lies closest to the raw step (ties go to the smaller k).
// Values start at min rounded down to that multiple and run until the first
// value greater than max, which is included.
//
// A zero-width range yields the single value min. Ranges whose width, or
// whose tick span, does not fit in a float64 are rejected with INVALID_DATA.
func NiceMarks(min, max float64, target int) ([]float64, error) {
	if target < 2 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "target mark count must be at least 2, got %d", target)
	}
	if err := numeric.CheckFinite("axis range", min, max); err != nil {
		return nil, err
	}
	if min > max {
		min, max = max, min
	}

	width := max - min
	if math.IsInf(width, 0) {
		return nil, errors.New(errors.ErrCodeInvalidData, "axis range [%g, %g] is too wide", min, max)
	}
	raw := width / float64(target-1)
	p := numeric.OrderOfMagnitude(raw)
	k := niceMultiplier(raw, p)

	step := numeric.RoundNearest(raw, p, k)
	if step == 0 {
		return []float64{min}, nil
	}
	start := numeric.RoundDown(min, p, k)

	values := make([]float64, 0, target+2)
	for i := 0; i < maxMarks; i++ {
		v := start + float64(i)*step
		values = append(values, v)
		if v > max {
			break
		}
	}
	if span := values[len(values)-1] - values[0]; math.IsInf(span, 0) || math.IsNaN(span) {
		return nil, errors.New(errors.ErrCodeInvalidData, "ticks for axis range [%g, %g] overflow", min, max)
	}
	return values, nil
}

func niceMultiplier(raw float64, p int) int {
	best, bestDist := multipliers[0], math.Inf(1)
	for _, k := range multipliers {
		d := math.Abs(raw - float64(k)*math.Pow10(p))
		if d < bestDist {
			best, bestDist = k, d
		}
	}
	return best
}

// ComputeMarks replaces the marks with nice ticks for the current range and
// overwrites the range with the first and last tick. A zero TargetMarks
// means [DefaultTargetMarks].
func (a *Axis) ComputeMarks() error {
	target := a.TargetMarks
	if target == 0 {
		target = DefaultTargetMarks
	}
	values, err := NiceMarks(a.Range[0], a.Range[1], target)
	if err != nil {
		return err
	}

	lo, hi := values[0], values[len(values)-1]
	a.Range = [2]float64{lo, hi}
	a.Marks = make([]Mark, len(values))
	for i, v := range values {
		a.Marks[i] = Mark{
			Value: v,
			Local: geom.C(
				numeric.MapRange(v, lo, hi, a.LocalStart.X, a.LocalEnd.X),
				numeric.MapRange(v, lo, hi, a.LocalStart.Y, a.LocalEnd.Y),
			),
			Label: numeric.Prettify(v),
		}
	}
	return nil
}

// Fit resolves the axis segment and every mark against parent and records
// the size-correction factor.
func (a *Axis) Fit(parent geom.Rect, scale float64) {
	a.GlobalStart = a.LocalStart.RelativeTo(parent)
	a.GlobalEnd = a.LocalEnd.RelativeTo(parent)
	a.Direction = a.GlobalStart.UnitTowards(a.GlobalEnd)
	a.Scale = scale
	for i := range a.Marks {
		a.Marks[i].Global = a.Marks[i].Local.RelativeTo(parent)
	}
}

// Normal returns the unit vector pointing from the axis line towards its
// ticks and labels.
func (a Axis) Normal() geom.Coord {
	left := a.LocalStart.Perpendicular(a.LocalEnd)
	if a.Style.Side == SideLeft {
		return left
	}
	return left.Scale(-1)
}

// Project maps a data value onto the resolved axis segment.
func (a Axis) Project(v float64) geom.Coord {
	return geom.C(
		numeric.MapRange(v, a.Range[0], a.Range[1], a.GlobalStart.X, a.GlobalEnd.X),
		numeric.MapRange(v, a.Range[0], a.Range[1], a.GlobalStart.Y, a.GlobalEnd.Y),
	)
}
