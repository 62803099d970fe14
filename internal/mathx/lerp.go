package mathx

// Lerp linearly interpolates between a and b.
// t is usually in [0, 1] but is not restricted to it.
func Lerp(t, a, b float64) float64 {
	return a*(1-t) + b*t
}

// ClampedLerp interpolates between a and b with t clamped to [0, 1].
func ClampedLerp(t, a, b float64) float64 {
	return Lerp(Clamp01(t), a, b)
}

// InvLerp returns where value sits between a and b, as a fraction.
// A degenerate range (a == b) yields NaN or ±Inf.
func InvLerp(value, a, b float64) float64 {
	return (value - a) / (b - a)
}

// ClampedInvLerp is InvLerp clamped to [0, 1].
func ClampedInvLerp(value, a, b float64) float64 {
	return Clamp01(InvLerp(value, a, b))
}

// Remap maps value from the range [srcA, srcB] onto [dstA, dstB].
func Remap(value, srcA, srcB, dstA, dstB float64) float64 {
	return Lerp(InvLerp(value, srcA, srcB), dstA, dstB)
}

// ClampedRemap is Remap with the result kept inside [dstA, dstB].
func ClampedRemap(value, srcA, srcB, dstA, dstB float64) float64 {
	return Lerp(ClampedInvLerp(value, srcA, srcB), dstA, dstB)
}
