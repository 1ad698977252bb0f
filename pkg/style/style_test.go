package style

import (
	"image/color"
	"testing"

	"github.com/matzehuels/framechart/pkg/errors"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    color.RGBA
		wantErr bool
	}{
		{"long form", "#1f77b4", color.RGBA{0x1f, 0x77, 0xb4, 255}, false},
		{"short form", "#fff", White, false},
		{"no hash", "000000", Black, false},
		{"with alpha", "#ff000080", color.RGBA{255, 0, 0, 0x80}, false},
		{"garbage", "#zzzzzz", color.RGBA{}, true},
		{"bad alpha", "#ff0000zz", color.RGBA{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseColor(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if err != nil {
				if !errors.Is(err, errors.ErrCodeInvalidConfig) {
					t.Errorf("error code = %v", errors.GetCode(err))
				}
				return
			}
			if got != tt.want {
				t.Errorf("ParseColor(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestHex(t *testing.T) {
	if got := Hex(color.RGBA{0x1f, 0x77, 0xb4, 10}); got != "#1f77b4" {
		t.Errorf("Hex() = %q", got)
	}
}

func TestBlendEndpoints(t *testing.T) {
	a := MustColor("#1f77b4")
	if got := Blend(a, White, 0); got != a {
		t.Errorf("Blend(t=0) = %v, want %v", got, a)
	}
	if got := Blend(a, White, 1); got != White {
		t.Errorf("Blend(t=1) = %v, want %v", got, White)
	}
}

func TestPaletteAt(t *testing.T) {
	p := DefaultPalette()
	if len(p) != 10 {
		t.Fatalf("DefaultPalette() length = %d", len(p))
	}
	if p.At(0) != p.At(10) {
		t.Error("At() should wrap around")
	}
	if p.At(-1) != p[9] {
		t.Error("At(-1) should wrap to the last colour")
	}
	if (Palette{}).At(3) != Black {
		t.Error("empty palette should yield black")
	}
}

func TestParseDash(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"", 0, false},
		{"solid", 0, false},
		{"Dashed", 2, false},
		{"dotted", 2, false},
		{"dash-dot", 4, false},
		{"wavy", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseDash(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseDash(%q) error = %v", tt.in, err)
			continue
		}
		if len(got) != tt.want {
			t.Errorf("ParseDash(%q) = %v", tt.in, got)
		}
	}
	if got := Dashed.Scaled(1000); got[0] != 12 || got[1] != 6 {
		t.Errorf("Scaled() = %v", got)
	}
	if Solid.Scaled(1000) != nil {
		t.Error("solid pattern should scale to nil")
	}
}

func TestParseShape(t *testing.T) {
	for s, name := range shapeNames {
		got, err := ParseShape(name)
		if err != nil || got != s {
			t.Errorf("ParseShape(%q) = %v, %v", name, got, err)
		}
	}
	if got, _ := ParseShape(""); got != Circle {
		t.Errorf("default shape = %v", got)
	}
	if _, err := ParseShape("star"); err == nil {
		t.Error("unknown shape should fail")
	}
	if Plus.Filled() || !Square.Filled() {
		t.Error("Filled() mismatch")
	}
}
