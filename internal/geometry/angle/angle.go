// Package angle converts scalar angles between degrees and radians.
package angle

import (
	"math"

	"github.com/golang/geo/s1"
)

// DegreesToRadians converts a value in degrees to radians.
func DegreesToRadians(deg float64) float64 {
	return deg * math.Pi / 180
}

// RadiansToDegrees converts a value in radians to degrees.
func RadiansToDegrees(rad float64) float64 {
	return rad * 180 / math.Pi
}

// Normalize wraps an angle in radians into [0, 2π).
func Normalize(rad float64) float64 {
	a := float64(s1.Angle(rad).Normalized())
	if a < 0 {
		a += 2 * math.Pi
	}
	if a >= 2*math.Pi {
		// -tiny + 2π rounds up to 2π
		a = 0
	}
	return a
}
