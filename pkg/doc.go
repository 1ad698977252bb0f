// Package pkg provides the core libraries for framechart, a layout engine for
// line and scatter charts.
//
// # Overview
//
// A figure is a tree of nested rectangles: a Figure holds Plots, each Plot
// holds a Canvas, and the Canvas holds Axes and Charts. Every node positions
// itself as a fraction of its parent, so fitting the tree to a pixel size is a
// single top-down pass. The pkg directory is organized into four areas:
//
//  1. Layout - [geom], [numeric], [axis], [canvas], [chart], [figure]
//  2. Drawing - [render] and its raster, svg and term backends, [style], [fonts]
//  3. Documents - [figfile] (TOML figure documents with optional CSV data)
//  4. Infrastructure - [pipeline], [cache], [store], [observability], [errors]
//
// # Architecture
//
// The typical data flow through framechart:
//
//	TOML document (+ CSV files)
//	         ↓
//	    [figfile] package (parse, inline data, build figure)
//	         ↓
//	    [figure] package (fit → immutable Layout)
//	         ↓
//	    [render] package (paint through a Painter)
//	         ↓
//	    SVG/PNG/PDF/JSON output
//
// # Quick Start
//
//	f := figure.New(800, 600)
//	p := f.AddPlot()
//	line, _ := chart.NewLine([]geom.Coord{{X: 0, Y: 0}, {X: 1, Y: 2}, {X: 2, Y: 1}})
//	p.Canvas.Add(line)
//	if err := f.Save("out.png"); err != nil {
//	    log.Fatal(err)
//	}
//
// [geom]: github.com/matzehuels/framechart/pkg/geom
// [numeric]: github.com/matzehuels/framechart/pkg/numeric
// [axis]: github.com/matzehuels/framechart/pkg/axis
// [canvas]: github.com/matzehuels/framechart/pkg/canvas
// [chart]: github.com/matzehuels/framechart/pkg/chart
// [figure]: github.com/matzehuels/framechart/pkg/figure
// [render]: github.com/matzehuels/framechart/pkg/render
// [style]: github.com/matzehuels/framechart/pkg/style
// [fonts]: github.com/matzehuels/framechart/pkg/fonts
// [figfile]: github.com/matzehuels/framechart/pkg/figfile
// [pipeline]: github.com/matzehuels/framechart/pkg/pipeline
// [cache]: github.com/matzehuels/framechart/pkg/cache
// [store]: github.com/matzehuels/framechart/pkg/store
// [observability]: github.com/matzehuels/framechart/pkg/observability
// [errors]: github.com/matzehuels/framechart/pkg/errors
package pkg
