// Package window provides tapering functions applied to finite signal
// blocks before spectral analysis to reduce leakage at block edges.
package window

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// Type identifies a window function.
type Type int

const (
	TypeRectangular Type = iota
	TypeHann
	TypeHamming
)

// String returns the window name.
func (t Type) String() string {
	switch t {
	case TypeRectangular:
		return "rectangular"
	case TypeHann:
		return "hann"
	case TypeHamming:
		return "hamming"
	default:
		return "unknown"
	}
}

// Generate returns symmetric window coefficients of the given length.
// A size of 1 yields a single unity coefficient; non-positive sizes
// yield nil.
func Generate(t Type, size int) []float64 {
	if size <= 0 {
		return nil
	}

	coeffs := make([]float64, size)

	if size == 1 {
		coeffs[0] = 1
		return coeffs
	}

	denom := float64(size - 1)

	for i := range coeffs {
		x := 2 * math.Pi * float64(i) / denom

		switch t {
		case TypeHann:
			coeffs[i] = 0.5 - 0.5*math.Cos(x)
		case TypeHamming:
			coeffs[i] = 0.54 - 0.46*math.Cos(x)
		default:
			coeffs[i] = 1
		}
	}

	return coeffs
}

// Apply writes signal[i]*coeffs[i] into dst. All slices must have equal
// length.
func Apply(dst, signal, coeffs []float64) error {
	if len(dst) != len(signal) || len(signal) != len(coeffs) {
		return fmt.Errorf("window: length mismatch: dst=%d signal=%d coeffs=%d",
			len(dst), len(signal), len(coeffs))
	}

	vecmath.MulBlock(dst, signal, coeffs)

	return nil
}

// ApplyInPlace multiplies signal by coeffs element-wise.
func ApplyInPlace(signal, coeffs []float64) error {
	if len(signal) != len(coeffs) {
		return fmt.Errorf("window: signal length (%d) does not match coefficients (%d)",
			len(signal), len(coeffs))
	}

	vecmath.MulBlockInPlace(signal, coeffs)

	return nil
}
