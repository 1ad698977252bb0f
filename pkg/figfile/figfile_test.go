package figfile

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/framechart/pkg/chart"
	"github.com/matzehuels/framechart/pkg/errors"
	"github.com/matzehuels/framechart/pkg/geom"
	"github.com/matzehuels/framechart/pkg/style"
)

const doc = `
width = 640
height = 480
background = "#fafafa"

[[plot]]
title = "Signal"
frame = { left = 0, right = 0.5, bottom = 0, top = 1 }

  [plot.canvas]
  x_label = "time"
  y_min = -1
  x_marks = 4
  grid = false

  [[plot.chart]]
  kind = "line"
  x = [0, 1, 2]
  y = [0, 1, 0]
  dash = "dotted"
  color = "#ff0000"

  [[plot.chart]]
  kind = "scatter"
  x = [0.5, 1.5]
  y = [0.5, 0.5]
  shape = "cross"
  size = 0.01
`

func TestParseAndBuild(t *testing.T) {
	d, err := Parse([]byte(doc))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	f, err := d.Figure()
	if err != nil {
		t.Fatalf("Figure() error: %v", err)
	}

	if f.Width != 640 || f.Height != 480 {
		t.Errorf("size = %dx%d", f.Width, f.Height)
	}
	if f.Background != style.MustColor("#fafafa") {
		t.Errorf("background = %v", f.Background)
	}
	if len(f.Plots) != 1 {
		t.Fatalf("plots = %d", len(f.Plots))
	}

	p := f.Plots[0]
	if p.Title != "Signal" || p.Frame != geom.NewRect(0, 0.5, 0, 1) {
		t.Errorf("plot = %q %+v", p.Title, p.Frame)
	}
	c := p.Canvas
	if c.XAxis.Title != "time" || c.XMarks != 4 || !c.Grid.Hidden {
		t.Errorf("canvas settings not applied: %+v", c)
	}
	if !c.Data.BottomSet || c.Data.Bottom != -1 || c.Data.LeftSet {
		t.Errorf("overrides = %+v", c.Data)
	}

	line, ok := c.Charts[0].(*chart.Line)
	if !ok {
		t.Fatalf("chart 0 is %T", c.Charts[0])
	}
	if line.Color == nil || *line.Color != style.MustColor("#ff0000") || len(line.Dash) != 2 {
		t.Errorf("line style = %+v", line)
	}
	sc, ok := c.Charts[1].(*chart.Scatter)
	if !ok {
		t.Fatalf("chart 1 is %T", c.Charts[1])
	}
	if sc.Shape != style.Cross || sc.Size != 0.01 || sc.Color != nil {
		t.Errorf("scatter style = %+v", sc)
	}

	if _, err := f.Fit(); err != nil {
		t.Errorf("Fit() error: %v", err)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"syntax", "width = "},
		{"unknown key", "widht = 10"},
		{"wrong type", `width = "wide"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.in))
			if !errors.Is(err, errors.ErrCodeInvalidConfig) {
				t.Errorf("Parse() error = %v", err)
			}
		})
	}
}

func TestBuildErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		code errors.Code
	}{
		{"bad kind", "[[plot]]\n[[plot.chart]]\nkind = \"bar\"\nx = [1]\ny = [1]", errors.ErrCodeInvalidConfig},
		{"empty chart", "[[plot]]\n[[plot.chart]]\nkind = \"line\"", errors.ErrCodeEmptyData},
		{"length mismatch", "[[plot]]\n[[plot.chart]]\nx = [1, 2]\ny = [1]", errors.ErrCodeInvalidInput},
		{"bad colour", "background = \"#nothex\"", errors.ErrCodeInvalidConfig},
		{"bad shape", "[[plot]]\n[[plot.chart]]\nkind = \"scatter\"\nx = [1]\ny = [1]\nshape = \"star\"", errors.ErrCodeInvalidConfig},
		{"missing csv", "[[plot]]\n[[plot.chart]]\ncsv = \"nope.csv\"", errors.ErrCodeIO},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := Parse([]byte(tt.in))
			if err != nil {
				t.Fatalf("Parse() error: %v", err)
			}
			d.BaseDir = t.TempDir()
			if _, err := d.Figure(); !errors.Is(err, tt.code) {
				t.Errorf("Figure() error = %v, want %s", err, tt.code)
			}
		})
	}
}

func TestDefaults(t *testing.T) {
	d, err := Parse([]byte("[[plot]]"))
	if err != nil {
		t.Fatal(err)
	}
	f, err := d.Figure()
	if err != nil {
		t.Fatal(err)
	}
	if f.Width != DefaultWidth || f.Height != DefaultHeight {
		t.Errorf("size = %dx%d", f.Width, f.Height)
	}
	if len(f.Palette) != len(style.DefaultPalette()) {
		t.Error("default palette not applied")
	}
}

func TestLoadWithCSV(t *testing.T) {
	dir := t.TempDir()
	csvData := "# sensor dump\nt, v, other\n0, 1.5, x\n1, 2.5, y\n2, 0.5, z\n"
	if err := os.WriteFile(filepath.Join(dir, "signal.csv"), []byte(csvData), 0o644); err != nil {
		t.Fatal(err)
	}
	docData := "[[plot]]\n[[plot.chart]]\ncsv = \"signal.csv\"\nx_column = \"t\"\ny_column = \"V\"\n"
	path := filepath.Join(dir, "fig.toml")
	if err := os.WriteFile(path, []byte(docData), 0o644); err != nil {
		t.Fatal(err)
	}

	d, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if d.BaseDir != dir {
		t.Errorf("BaseDir = %q", d.BaseDir)
	}
	f, err := d.Figure()
	if err != nil {
		t.Fatalf("Figure() error: %v", err)
	}
	if got := f.Plots[0].Canvas.Charts[0].DataFrame(); got != geom.NewRect(0, 2, 0.5, 2.5) {
		t.Errorf("DataFrame() = %+v", got)
	}

	if err := d.Inline(); err != nil {
		t.Fatalf("Inline() error: %v", err)
	}
	c := d.Plots[0].Charts[0]
	if c.CSV != "" || len(c.X) != 3 || c.Y[1] != 2.5 {
		t.Errorf("inlined chart = %+v", c)
	}
}

func TestDecodeColumns(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		x, y    string
		wantLen int
		code    errors.Code
	}{
		{"positional", "a,b\n1,2\n3,4\n", "", "", 2, ""},
		{"by name", "b,a\n1,2\n", "a", "b", 1, ""},
		{"empty", "", "", "", 0, errors.ErrCodeEmptyData},
		{"missing column", "a,b\n1,2\n", "c", "", 0, errors.ErrCodeInvalidFormat},
		{"single column", "a\n1\n", "", "", 0, errors.ErrCodeInvalidFormat},
		{"not a number", "a,b\n1,two\n", "", "", 0, errors.ErrCodeInvalidData},
		{"ragged", "a,b\n1,2,3\n", "", "", 0, errors.ErrCodeInvalidFormat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			xs, ys, err := DecodeColumns(strings.NewReader(tt.in), tt.x, tt.y)
			if tt.code != "" {
				if !errors.Is(err, tt.code) {
					t.Fatalf("DecodeColumns() error = %v, want %s", err, tt.code)
				}
				return
			}
			if err != nil {
				t.Fatalf("DecodeColumns() error: %v", err)
			}
			if len(xs) != tt.wantLen || len(ys) != tt.wantLen {
				t.Errorf("got %v, %v", xs, ys)
			}
		})
	}
}

func TestByNameSwapsColumns(t *testing.T) {
	xs, ys, err := DecodeColumns(strings.NewReader("b,a\n1,2\n"), "a", "b")
	if err != nil {
		t.Fatal(err)
	}
	if xs[0] != 2 || ys[0] != 1 {
		t.Errorf("xs=%v ys=%v", xs, ys)
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	data, err := Sample().Encode()
	if err != nil {
		t.Fatalf("Encode() error: %v", err)
	}
	d, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse(Encode()) error: %v\n%s", err, data)
	}
	f, err := d.Figure()
	if err != nil {
		t.Fatal(err)
	}
	if len(f.Plots) != 1 || len(f.Plots[0].Canvas.Charts) != 2 {
		t.Errorf("sample figure has %d plots", len(f.Plots))
	}
	if _, err := f.Fit(); err != nil {
		t.Errorf("sample does not fit: %v", err)
	}
}
