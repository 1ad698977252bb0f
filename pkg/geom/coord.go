package geom

import "math"

// Coord is an (x, y) pair in some reference frame.
type Coord struct {
	X float64 `json:"x" bson:"x"`
	Y float64 `json:"y" bson:"y"`
}

// C is shorthand for Coord{X: x, Y: y}.
func C(x, y float64) Coord { return Coord{X: x, Y: y} }

// Add returns c + o.
func (c Coord) Add(o Coord) Coord { return Coord{c.X + o.X, c.Y + o.Y} }

// Sub returns c - o.
func (c Coord) Sub(o Coord) Coord { return Coord{c.X - o.X, c.Y - o.Y} }

// Scale multiplies both components by s.
func (c Coord) Scale(s float64) Coord { return Coord{c.X * s, c.Y * s} }

// Len returns the Euclidean length of c seen as a vector.
func (c Coord) Len() float64 { return math.Hypot(c.X, c.Y) }

// Distance returns the Euclidean distance between c and o.
func (c Coord) Distance(o Coord) float64 { return o.Sub(c).Len() }

// UnitTowards returns the unit vector pointing from c to o.
// Coincident points yield the zero vector.
func (c Coord) UnitTowards(o Coord) Coord {
	d := o.Sub(c)
	l := d.Len()
	if l == 0 {
		return Coord{}
	}
	return d.Scale(1 / l)
}

// Perpendicular returns the unit normal of the direction from c to o,
// rotated counter-clockwise (the left-hand side when walking from c to o).
func (c Coord) Perpendicular(o Coord) Coord {
	u := c.UnitTowards(o)
	return Coord{-u.Y, u.X}
}

// RelativeTo maps c, expressed in the unit square of r, into r's own
// coordinate system.
func (c Coord) RelativeTo(r Rect) Coord {
	return Coord{
		X: r.Left + r.Width()*c.X,
		Y: r.Bottom + r.Height()*c.Y,
	}
}
