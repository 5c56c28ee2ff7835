// Package math provides float32 math utilities for the generators.
package math

import "math"

// OneBelow is the largest float32 strictly less than 1.
var OneBelow = math.Nextafter32(1, 0)

// Sqrt32 computes the square root of a float32.
func Sqrt32(x float32) float32 {
	return float32(math.Sqrt(float64(x)))
}

// Log32 computes natural log of x for float32.
// Log32(0) is -Inf.
func Log32(x float32) float32 {
	return float32(math.Log(float64(x)))
}

// ToFloat64 widens a float32 slice into a new float64 slice.
func ToFloat64(src []float32) []float64 {
	dst := make([]float64, len(src))
	for i, v := range src {
		dst[i] = float64(v)
	}
	return dst
}
