package errors

import (
	"math"
	"strings"
	"testing"
)

func TestValidateFraction(t *testing.T) {
	tests := []struct {
		name    string
		v       float64
		wantErr bool
	}{
		{"zero", 0, false},
		{"one", 1, false},
		{"middle", 0.42, false},
		{"negative", -0.01, true},
		{"above one", 1.5, true},
		{"nan", math.NaN(), true},
		{"inf", math.Inf(1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFraction("plot.left", tt.v)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateFraction(%v) error = %v, wantErr %v", tt.v, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidFrame) {
				t.Errorf("error code = %v, want %v", GetCode(err), ErrCodeInvalidFrame)
			}
		})
	}
}

func TestValidateFrame(t *testing.T) {
	tests := []struct {
		name                     string
		left, right, bottom, top float64
		wantErr                  bool
	}{
		{"unit", 0, 1, 0, 1, false},
		{"inner", 0.1, 0.9, 0.2, 0.8, false},
		{"degenerate allowed", 0.5, 0.5, 0.5, 0.5, false},
		{"inverted horizontally", 0.9, 0.1, 0, 1, true},
		{"inverted vertically", 0, 1, 0.8, 0.2, true},
		{"out of range", 0, 1.2, 0, 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFrame("canvas", tt.left, tt.right, tt.bottom, tt.top)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateFrame() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateOutputPath(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{"simple file", "chart.png", false},
		{"nested", "out/figures/chart.svg", false},
		{"empty", "", true},
		{"directory", "out/", true},
		{"null byte", "chart\x00.png", true},
		{"newline", "chart\n.png", true},
		{"too long", strings.Repeat("a", 5000), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOutputPath(tt.path)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateOutputPath(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
		})
	}
}
