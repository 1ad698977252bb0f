// Package render defines the drawing capability the layout engine paints
// through, plus format conversion helpers.
//
// # Painter
//
// Every backend implements [Painter]. The layout engine only ever calls it
// with fully resolved values: figure pixel coordinates with the origin at the
// bottom-left and y pointing up, stroke widths in pixels and font sizes in
// pixels. Backends flip to their own device space.
//
// Three backends ship with framechart:
//
//   - [raster]: anti-aliased PNG via fogleman/gg
//   - [svg]: vector output written into a byte buffer
//   - [term]: braille micro-pixels for terminal display
//
// [Recorder] is a fourth, in-memory painter that records every call and is
// used by tests across the module.
//
// # Format Conversion
//
// [ToPDF] converts SVG bytes using the external rsvg-convert tool (from
// librsvg). PNG output comes from the raster backend instead.
//
//	svg := svgPainter.Bytes()
//	pdf, err := render.ToPDF(ctx, svg)
//
// [raster]: github.com/matzehuels/framechart/pkg/render/raster
// [svg]: github.com/matzehuels/framechart/pkg/render/svg
// [term]: github.com/matzehuels/framechart/pkg/render/term
package render
