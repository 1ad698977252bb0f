package style

import (
	"strings"

	"github.com/matzehuels/framechart/pkg/errors"
)

// Shape is a scatter point marker.
type Shape int

const (
	Circle Shape = iota
	Square
	Triangle
	Diamond
	Plus
	Cross
)

var shapeNames = map[Shape]string{
	Circle:   "circle",
	Square:   "square",
	Triangle: "triangle",
	Diamond:  "diamond",
	Plus:     "plus",
	Cross:    "cross",
}

func (s Shape) String() string {
	if n, ok := shapeNames[s]; ok {
		return n
	}
	return "unknown"
}

// Filled reports whether the marker is drawn as a filled area rather than
// stroked segments.
func (s Shape) Filled() bool { return s != Plus && s != Cross }

// ParseShape resolves a marker name. The empty string selects Circle.
func ParseShape(name string) (Shape, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	if n == "" {
		return Circle, nil
	}
	for s, sn := range shapeNames {
		if sn == n {
			return s, nil
		}
	}
	return 0, errors.New(errors.ErrCodeInvalidConfig, "unknown point shape %q", name)
}
