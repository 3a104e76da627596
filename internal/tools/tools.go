// Package tools holds small numeric helpers shared across the search
// engine's packages.
package tools

import "math"

// Lne returns ln(e + x), the smoothed logarithm used throughout the engine
// to turn a visit count into a never-zero, never-negative scale factor
// (x == 0 still yields 1, avoiding a log(0) singularity at the root of the
// search tree).
func Lne(x float64) float64 {
	return math.Log(math.E + x)
}
