// Package axis computes tick marks for a data range and resolves an axis
// segment against its parent frame.
//
// # Nice Ticks
//
// [NiceMarks] turns an arbitrary [min, max] range into evenly spaced values
// that are multiples of 1, 2 or 5 times a power of ten. The last value is
// always the first one past max, so the ticks fully cover the data:
//
//	values, _ := axis.NiceMarks(-5.2345, 8.41234, 6)
//	// [-6 -4 -2 0 2 4 6 8 10]
//
// [Axis.ComputeMarks] runs the same algorithm and then overwrites the axis
// range with the first and last tick. A range configured by the user is
// therefore only a starting point: the rendered bounds are always the
// niced ones.
//
// # Geometry
//
// An axis lives in its parent's unit square, from LocalStart to LocalEnd.
// [Axis.Fit] resolves both ends and every mark into the parent's global
// frame and records the figure's size-correction factor, which turns the
// fractional sizes in [Style] into pixels when the axis is drawn.
package axis
