// Package numeric holds the scalar helpers behind axis ranging: linear
// range mapping, order-of-magnitude arithmetic, rounding to "nice" decade
// multiples and tick-label formatting.
//
// All functions are total: degenerate inputs have defined results instead of
// errors or panics.
package numeric

import (
	"fmt"
	"math"

	"github.com/matzehuels/framechart/pkg/errors"
)

// zeroThreshold is the magnitude below which a value counts as exactly zero
// for order-of-magnitude purposes.
const zeroThreshold = 1e-10

// epsilon is the float64 machine epsilon.
const epsilon = 2.220446049250313e-16

// MapRange maps v from [oldMin, oldMax] onto [newMin, newMax] linearly.
// A degenerate source range (oldMin == oldMax within epsilon) maps every
// value to the midpoint of the target range.
func MapRange(v, oldMin, oldMax, newMin, newMax float64) float64 {
	span := oldMax - oldMin
	if math.Abs(span) < epsilon {
		return (newMin + newMax) / 2
	}
	return newMin + (v-oldMin)*(newMax-newMin)/span
}

// OrderOfMagnitude returns floor(log10(|n|)), or 0 when |n| < 1e-10.
// The result satisfies 10^p <= |n| < 10^(p+1) exactly, including at powers
// of ten where math.Log10 rounds below the integer.
func OrderOfMagnitude(n float64) int {
	a := math.Abs(n)
	if a < zeroThreshold || math.IsInf(a, 0) || math.IsNaN(a) {
		return 0
	}
	p := int(math.Floor(math.Log10(a)))
	if math.Pow10(p+1) <= a {
		p++
	} else if math.Pow10(p) > a {
		p--
	}
	return p
}

// unit returns k·10^omagn, the granularity the rounding helpers snap to.
func unit(omagn, k int) float64 {
	return float64(k) * math.Pow10(omagn)
}

// RoundDown rounds n down to a multiple of k·10^omagn. Negative values move
// away from zero so a rounded range always contains the original one. The
// result never exceeds n, even where the product lands an ulp above it.
func RoundDown(n float64, omagn, k int) float64 {
	u := unit(omagn, k)
	r := math.Floor(n/u) * u
	if r > n {
		r -= u
	}
	return r
}

// RoundUp rounds n up to a multiple of k·10^omagn. The result is never
// below n.
func RoundUp(n float64, omagn, k int) float64 {
	u := unit(omagn, k)
	r := math.Ceil(n/u) * u
	if r < n {
		r += u
	}
	return r
}

// RoundNearest rounds n to the nearest multiple of k·10^omagn, halves away
// from zero.
func RoundNearest(n float64, omagn, k int) float64 {
	u := unit(omagn, k)
	return math.Round(n/u) * u
}

// Prettify formats n for a tick label. The precision follows n's order of
// magnitude: exponent notation outside [-2, 2], otherwise 0, 1, 2 or 3
// decimals for magnitudes 2, 1, {0,-1} and -2.
func Prettify(n float64) string {
	switch p := OrderOfMagnitude(n); {
	case p > 2 || p < -2:
		return fmt.Sprintf("%.2e", n)
	case p == 2:
		return fmt.Sprintf("%.0f", n)
	case p == 1:
		return fmt.Sprintf("%.1f", n)
	case p == -2:
		return fmt.Sprintf("%.3f", n)
	default:
		return fmt.Sprintf("%.2f", n)
	}
}

// CheckFinite returns an INVALID_DATA error naming the first NaN or
// infinite value in vs. what labels the series in the message.
func CheckFinite(what string, vs ...float64) error {
	for i, v := range vs {
		if math.IsNaN(v) {
			return errors.New(errors.ErrCodeInvalidData, "%s: NaN at index %d", what, i)
		}
		if math.IsInf(v, 0) {
			return errors.New(errors.ErrCodeInvalidData, "%s: infinite value at index %d", what, i)
		}
	}
	return nil
}
