package style

import (
	"strings"

	"github.com/matzehuels/framechart/pkg/errors"
)

// Dash is an on/off pattern of segment lengths. An empty Dash is solid.
type Dash []float64

// Named dash patterns, in size-correction units.
var (
	Solid   = Dash(nil)
	Dashed  = Dash{0.012, 0.006}
	Dotted  = Dash{0.002, 0.004}
	DashDot = Dash{0.012, 0.004, 0.002, 0.004}
)

// ParseDash resolves a pattern name: solid, dashed, dotted or dashdot.
func ParseDash(name string) (Dash, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "solid":
		return Solid, nil
	case "dashed":
		return Dashed, nil
	case "dotted":
		return Dotted, nil
	case "dashdot", "dash-dot":
		return DashDot, nil
	default:
		return nil, errors.New(errors.ErrCodeInvalidConfig, "unknown dash pattern %q", name)
	}
}

// Scaled returns the pattern multiplied by s (usually the figure diagonal).
func (d Dash) Scaled(s float64) []float64 {
	if len(d) == 0 {
		return nil
	}
	out := make([]float64, len(d))
	for i, v := range d {
		out[i] = v * s
	}
	return out
}
