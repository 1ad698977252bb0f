package figfile

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/framechart/pkg/errors"
)

// Document is the TOML representation of a figure.
type Document struct {
	Width      int      `toml:"width" json:"width"`
	Height     int      `toml:"height" json:"height"`
	Background string   `toml:"background,omitempty" json:"background,omitempty"`
	Palette    []string `toml:"palette,omitempty" json:"palette,omitempty"`
	Plots      []Plot   `toml:"plot" json:"plots"`

	// BaseDir resolves relative CSV paths. It is set by Load.
	BaseDir string `toml:"-" json:"-"`
}

// Frame is a rectangle in the parent's unit square.
type Frame struct {
	Left   float64 `toml:"left" json:"left"`
	Right  float64 `toml:"right" json:"right"`
	Bottom float64 `toml:"bottom" json:"bottom"`
	Top    float64 `toml:"top" json:"top"`
}

// Plot describes one plot and its canvas.
type Plot struct {
	Title  string  `toml:"title,omitempty" json:"title,omitempty"`
	Frame  *Frame  `toml:"frame,omitempty" json:"frame,omitempty"`
	Border *Border `toml:"border,omitempty" json:"border,omitempty"`
	Canvas Canvas  `toml:"canvas" json:"canvas"`
	Charts []Chart `toml:"chart" json:"charts"`
}

// Border is a frame outline; Width is a fraction of the figure diagonal.
type Border struct {
	Color string  `toml:"color,omitempty" json:"color,omitempty"`
	Width float64 `toml:"width,omitempty" json:"width,omitempty"`
}

// Canvas holds data-range overrides and axis settings. Unset pointers keep
// the defaults.
type Canvas struct {
	Frame  *Frame   `toml:"frame,omitempty" json:"frame,omitempty"`
	Border *Border  `toml:"border,omitempty" json:"border,omitempty"`
	XLabel string   `toml:"x_label,omitempty" json:"x_label,omitempty"`
	YLabel string   `toml:"y_label,omitempty" json:"y_label,omitempty"`
	XMin   *float64 `toml:"x_min,omitempty" json:"x_min,omitempty"`
	XMax   *float64 `toml:"x_max,omitempty" json:"x_max,omitempty"`
	YMin   *float64 `toml:"y_min,omitempty" json:"y_min,omitempty"`
	YMax   *float64 `toml:"y_max,omitempty" json:"y_max,omitempty"`
	XMarks int      `toml:"x_marks,omitempty" json:"x_marks,omitempty"`
	YMarks int      `toml:"y_marks,omitempty" json:"y_marks,omitempty"`
	Grid   *bool    `toml:"grid,omitempty" json:"grid,omitempty"`
}

// Chart describes one data series.
type Chart struct {
	Kind  string `toml:"kind" json:"kind"`
	Label string `toml:"label,omitempty" json:"label,omitempty"`

	X []float64 `toml:"x,omitempty" json:"x,omitempty"`
	Y []float64 `toml:"y,omitempty" json:"y,omitempty"`

	CSV     string `toml:"csv,omitempty" json:"csv,omitempty"`
	XColumn string `toml:"x_column,omitempty" json:"x_column,omitempty"`
	YColumn string `toml:"y_column,omitempty" json:"y_column,omitempty"`

	Color string  `toml:"color,omitempty" json:"color,omitempty"`
	Width float64 `toml:"width,omitempty" json:"width,omitempty"`
	Dash  string  `toml:"dash,omitempty" json:"dash,omitempty"`
	Shape string  `toml:"shape,omitempty" json:"shape,omitempty"`
	Size  float64 `toml:"size,omitempty" json:"size,omitempty"`
}

// Parse decodes a TOML document. Unknown keys are rejected.
func Parse(data []byte) (*Document, error) {
	var doc Document
	md, err := toml.Decode(string(data), &doc)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode figure document")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, errors.New(errors.ErrCodeInvalidConfig, "unknown keys: %s", strings.Join(keys, ", "))
	}
	return &doc, nil
}

// Load reads and parses the document at path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeIO, err, "read %s", path)
	}
	doc, err := Parse(data)
	if err != nil {
		return nil, err
	}
	doc.BaseDir = filepath.Dir(path)
	return doc, nil
}

// Encode writes the document as TOML.
func (d *Document) Encode() ([]byte, error) {
	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	enc.Indent = "  "
	if err := enc.Encode(d); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode figure document")
	}
	return buf.Bytes(), nil
}

// Inline replaces every CSV reference with the columns it names.
func (d *Document) Inline() error {
	for i := range d.Plots {
		for j := range d.Plots[i].Charts {
			c := &d.Plots[i].Charts[j]
			if c.CSV == "" {
				continue
			}
			xs, ys, err := d.columns(*c)
			if err != nil {
				return err
			}
			c.X, c.Y = xs, ys
			c.CSV, c.XColumn, c.YColumn = "", "", ""
		}
	}
	return nil
}

// columns returns the chart's data, reading its CSV file when it has one.
func (d *Document) columns(c Chart) ([]float64, []float64, error) {
	if c.CSV == "" {
		return c.X, c.Y, nil
	}
	path := c.CSV
	if !filepath.IsAbs(path) && d.BaseDir != "" {
		path = filepath.Join(d.BaseDir, path)
	}
	return ReadColumns(path, c.XColumn, c.YColumn)
}

// Sample returns a small self-contained document used by `framechart new`.
func Sample() *Document {
	ymin := 0.0
	return &Document{
		Width:  800,
		Height: 600,
		Plots: []Plot{{
			Title: "Sample",
			Canvas: Canvas{
				XLabel: "x",
				YLabel: "y",
				YMin:   &ymin,
			},
			Charts: []Chart{
				{Kind: "line", Label: "growth", X: []float64{0, 1, 2, 3, 4, 5}, Y: []float64{0, 1, 4, 9, 16, 25}},
				{Kind: "scatter", Label: "samples", X: []float64{0.5, 1.5, 2.5, 3.5, 4.5}, Y: []float64{2, 3, 7, 11, 19}, Shape: "diamond"},
			},
		}},
	}
}
