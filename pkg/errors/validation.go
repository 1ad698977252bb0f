package errors

import (
	"math"
	"path/filepath"
	"strings"
	"unicode"
)

// ValidateFraction checks that v is a finite unit-square fraction in [0,1].
// name identifies the value in the error message (e.g. "plot.left").
func ValidateFraction(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return New(ErrCodeInvalidFrame, "%s must be finite, got %v", name, v)
	}
	if v < 0 || v > 1 {
		return New(ErrCodeInvalidFrame, "%s must be within [0,1], got %v", name, v)
	}
	return nil
}

// ValidateFrame checks the four bounds of a layout frame: each must be a
// unit fraction and the frame must not be inverted.
func ValidateFrame(name string, left, right, bottom, top float64) error {
	for _, side := range []struct {
		label string
		v     float64
	}{
		{"left", left}, {"right", right}, {"bottom", bottom}, {"top", top},
	} {
		if err := ValidateFraction(name+"."+side.label, side.v); err != nil {
			return err
		}
	}
	if right < left {
		return New(ErrCodeInvalidFrame, "%s: right (%v) is left of left (%v)", name, right, left)
	}
	if top < bottom {
		return New(ErrCodeInvalidFrame, "%s: top (%v) is below bottom (%v)", name, top, bottom)
	}
	return nil
}

// ValidateOutputPath validates a path an artifact is written to.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 4096 characters
//   - No null bytes or control characters
//   - Must name a file, not a directory
func ValidateOutputPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "output path cannot be empty")
	}

	const maxPathLength = 4096
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "output path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "output path contains invalid control characters")
		}
	}

	if strings.HasSuffix(path, "/") || strings.HasSuffix(path, string(filepath.Separator)) {
		return New(ErrCodeInvalidPath, "output path must name a file: %s", path)
	}
	return nil
}
