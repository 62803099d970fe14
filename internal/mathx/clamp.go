package mathx

import "math"

// Clamp clamps value to >= lo and <= hi.
func Clamp(value, lo, hi float64) float64 {
	return math.Min(math.Max(value, lo), hi)
}

// Clamp01 clamps value to the unit interval.
func Clamp01(value float64) float64 {
	return Clamp(value, 0, 1)
}

// Round rounds to the nearest integer, halves away from zero.
func Round(value float64) float64 {
	return math.Round(value)
}

// RoundPrecision rounds value to the given number of decimal places.
// Halves round away from zero.
func RoundPrecision(value float64, precision int) float64 {
	factor := math.Pow(10, float64(precision))
	return math.Round(value*factor) / factor
}
