// Package figure composes plots into a fixed-size figure and renders it.
//
// # Frames
//
// Every element is positioned in its parent's unit square: a [Plot] frame
// is a fraction of the figure, a canvas frame a fraction of its plot. The
// figure is the only element with a pixel size. Fitting resolves each frame
// top-down with [geom.Rect.RelativeTo].
//
// # Size Correction
//
// Line widths, tick lengths, label gaps and font sizes are configured as
// fractions of the figure's diagonal. The diagonal is computed once, at the
// root, and broadcast unchanged to every descendant, so a 1600x1200 figure
// renders identical proportions to an 800x600 one and nested plots keep
// the same stroke weight as top-level ones.
//
// # Fit and Draw
//
// [Figure.Fit] is a pure function of the figure: it returns a [Layout]
// snapshot and never modifies the configuration. Drawing consumes only the
// snapshot, so the same figure can be saved, shown and exported repeatedly:
//
//	f := figure.New(800, 600)
//	p := f.AddPlot()
//	line, _ := chart.NewLine(points)
//	p.Canvas.Add(line)
//	if err := f.Save("out.png"); err != nil { ... }
package figure
