// Package mathx provides small numeric helpers used by animation and layout
// code: clamping, rounding and linear interpolation between ranges.
//
// Subpackages:
//   - vec2: 2D vectors
//   - rect: axis-aligned rectangles
package mathx
