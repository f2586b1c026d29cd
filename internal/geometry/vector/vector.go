// Package vector provides the displacement vectors exchanged between points
package vector

import (
	"math"

	"github.com/twpayne/go-geom"
)

// Vector is an ordered list of per-axis deltas. Points produce and accept
// vectors of two (x, y) or three (x, y, z) components.
type Vector []float64

// New creates a vector holding a copy of the given components
func New(components ...float64) Vector {
	v := make(Vector, len(components))
	copy(v, components)
	return v
}

// Dim returns the number of components
func (v Vector) Dim() int { return len(v) }

// At returns component i, or 0 when the vector has fewer components.
func (v Vector) At(i int) float64 {
	if i < 0 || i >= len(v) {
		return 0
	}
	return v[i]
}

// Pad returns a copy of v zero-extended to n components.
// A vector already longer than n is copied unchanged.
func (v Vector) Pad(n int) Vector {
	if n < len(v) {
		n = len(v)
	}
	out := make(Vector, n)
	copy(out, v)
	return out
}

// Sub returns the component-wise difference v - o, zero-extending the shorter operand
func (v Vector) Sub(o Vector) Vector {
	n := max(len(v), len(o))
	out := make(Vector, n)
	for i := range out {
		out[i] = v.At(i) - o.At(i)
	}
	return out
}

// Dot returns the dot product of two vectors
func (v Vector) Dot(o Vector) float64 {
	var sum float64
	for i := 0; i < max(len(v), len(o)); i++ {
		sum += v.At(i) * o.At(i)
	}
	return sum
}

// minUnscaledSum is the smallest sum of squares that still holds every
// significant component without underflow.
const minUnscaledSum = 0x1p-968

// Norm returns the vector's magnitude (Euclidean norm). Components whose
// squares overflow or underflow are rescaled by the largest magnitude, so
// the result is +Inf only when the magnitude itself exceeds MaxFloat64.
func (v Vector) Norm() float64 {
	sum := v.Dot(v)
	if math.IsNaN(sum) {
		return math.NaN()
	}
	if !math.IsInf(sum, 0) && sum >= minUnscaledSum {
		return math.Sqrt(sum)
	}

	var largest float64
	for _, c := range v {
		largest = math.Max(largest, math.Abs(c))
	}
	if largest == 0 || math.IsInf(largest, 0) {
		return largest
	}
	sum = 0
	for _, c := range v {
		r := c / largest
		sum += r * r
	}
	return largest * math.Sqrt(sum)
}

// ApproxEqual reports whether both vectors have the same dimension and
// every component differs by at most tolerance.
func (v Vector) ApproxEqual(o Vector, tolerance float64) bool {
	if len(v) != len(o) {
		return false
	}
	for i := range v {
		if math.Abs(v[i]-o[i]) > tolerance {
			return false
		}
	}
	return true
}

// Coord returns the vector as a go-geom coordinate
func (v Vector) Coord() geom.Coord {
	return geom.Coord(New(v...))
}
