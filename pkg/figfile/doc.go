// Package figfile reads and writes figure documents.
//
// A figure document is a TOML file describing a [figure.Figure]: its pixel
// size, palette, plots, canvases and charts. Chart data is either inline
// (x and y arrays) or read from a CSV file with a header row:
//
//	width = 800
//	height = 600
//
//	[[plot]]
//	title = "Signal"
//
//	  [plot.canvas]
//	  x_label = "time"
//	  y_min = 0
//
//	  [[plot.chart]]
//	  kind = "line"
//	  csv = "signal.csv"
//	  x_column = "t"
//	  y_column = "v"
//	  dash = "dashed"
//
// CSV paths are relative to the document's directory. [Document.Inline]
// replaces CSV references with the data they hold, producing a
// self-contained document suitable for hashing and transport.
package figfile
