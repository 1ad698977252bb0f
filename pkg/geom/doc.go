// Package geom provides the coordinate and frame primitives of the layout
// engine.
//
// Every frame in a figure is described relative to its parent in the unit
// square (0,1)×(0,1). [Rect.RelativeTo] maps such a frame into the concrete
// coordinate system of its parent, and applying it level by level resolves a
// leaf frame into figure pixels:
//
//	plot := geom.NewRect(0.1, 0.9, 0.1, 0.9)
//	global := plot.RelativeTo(geom.NewRect(0, 800, 0, 600))
//	// global == [80,720]×[60,540]
//
// Coordinates use a y-up convention throughout: Bottom < Top. Backends that
// draw into y-down devices flip at the last moment.
//
// # Set flags
//
// Each side of a [Rect] carries a flag recording whether the value was set
// explicitly ([Rect.SetLeft] and friends) rather than defaulted. Canvases use
// these flags to let a user pin individual data bounds while the remaining
// sides are computed from the charts, see [Rect.Override].
package geom
