// Package coordinate holds points in Cartesian and spherical coordinate
// systems and the conversions between them.
package coordinate

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"

	"coordinates/internal/geometry/angle"
	"coordinates/internal/geometry/vector"
)

// Axes is implemented by anything exposing Cartesian axis accessors.
// Z reports false when the value has no z axis.
type Axes interface {
	X() float64
	Y() float64
	Z() (float64, bool)
}

var _ Axes = CartesianPoint{}

// CartesianPoint is a point in two or three dimensional space.
// The zero value is the two dimensional origin.
type CartesianPoint struct {
	x, y, z float64
	hasZ    bool
}

// NewCartesian creates a point from numeric arguments of any Go numeric
// type or json.Number. x and y are mandatory; a single optional z makes
// the point three dimensional.
func NewCartesian(x, y any, z ...any) (CartesianPoint, error) {
	fx, err := toFloat("x", x)
	if err != nil {
		return CartesianPoint{}, err
	}
	fy, err := toFloat("y", y)
	if err != nil {
		return CartesianPoint{}, err
	}
	fz, hasZ, err := optionalFloat("z", z)
	if err != nil {
		return CartesianPoint{}, err
	}
	return CartesianPoint{x: fx, y: fy, z: fz, hasZ: hasZ}, nil
}

// Cartesian2D creates a two dimensional point
func Cartesian2D(x, y float64) CartesianPoint {
	return CartesianPoint{x: x, y: y}
}

// Cartesian3D creates a three dimensional point
func Cartesian3D(x, y, z float64) CartesianPoint {
	return CartesianPoint{x: x, y: y, z: z, hasZ: true}
}

func (p CartesianPoint) X() float64 { return p.x }
func (p CartesianPoint) Y() float64 { return p.y }

// Z returns the z position and whether the point has one.
func (p CartesianPoint) Z() (float64, bool) { return p.z, p.hasZ }

// IsTwoDimensional reports whether the point has no z axis.
func (p CartesianPoint) IsTwoDimensional() bool { return !p.hasZ }

// ToVector returns [x, y] for a two dimensional point and [x, y, z] otherwise.
func (p CartesianPoint) ToVector() vector.Vector {
	if p.IsTwoDimensional() {
		return vector.New(p.x, p.y)
	}
	return vector.New(p.x, p.y, p.z)
}

// VectorTo returns the vector which, applied to p, moves it to other.
// The result always has three components: a missing z on either side
// counts as 0 for this calculation only.
func (p CartesianPoint) VectorTo(other CartesianPoint) vector.Vector {
	return other.ToVector().Pad(3).Sub(p.ToVector().Pad(3))
}

// DistanceTo returns the Euclidean distance to other.
func (p CartesianPoint) DistanceTo(other CartesianPoint) float64 {
	return p.VectorTo(other).Norm()
}

// ApplyVector returns a new point moved by v. v must have two or three
// components. A two dimensional point ignores the third component and a
// three dimensional point treats a missing one as 0.
func (p CartesianPoint) ApplyVector(v vector.Vector) (CartesianPoint, error) {
	if err := checkDisplacement(v); err != nil {
		return CartesianPoint{}, err
	}
	p.x += v.At(0)
	p.y += v.At(1)
	if p.hasZ {
		p.z += v.At(2)
	}
	return p, nil
}

// ApplyVectorInPlace moves p by v and returns p itself.
func (p *CartesianPoint) ApplyVectorInPlace(v vector.Vector) (*CartesianPoint, error) {
	moved, err := p.ApplyVector(v)
	if err != nil {
		return nil, err
	}
	*p = moved
	return p, nil
}

func checkDisplacement(v vector.Vector) error {
	if v == nil {
		return fmt.Errorf("%w: vector is required", ErrInvalidArgument)
	}
	if d := v.Dim(); d < 2 || d > 3 {
		return fmt.Errorf("%w: vector must have 2 or 3 components, got %d", ErrInvalidArgument, d)
	}
	return nil
}

// Equals compares p with any value implementing Axes. Values without
// those accessors, and nil pointers, are never equal.
func (p CartesianPoint) Equals(other any) bool {
	if other == nil {
		return false
	}
	if rv := reflect.ValueOf(other); rv.Kind() == reflect.Pointer && rv.IsNil() {
		return false
	}
	o, ok := other.(Axes)
	if !ok {
		return false
	}
	oz, oHasZ := o.Z()
	if oHasZ != p.hasZ || (p.hasZ && oz != p.z) {
		return false
	}
	return o.X() == p.x && o.Y() == p.y
}

// ApproxEqual reports whether other has the same dimensionality and every
// axis is within tolerance.
func (p CartesianPoint) ApproxEqual(other CartesianPoint, tolerance float64) bool {
	return p.hasZ == other.hasZ && p.ToVector().ApproxEqual(other.ToVector(), tolerance)
}

// ToSpherical converts p into spherical coordinates, treating a missing z
// as 0. The polar angle is normalized into [0, 2π). The origin maps to a
// zero radial distance on the reference plane (polar 0, azimuth π/2).
func (p CartesianPoint) ToSpherical() SphericalPoint {
	r := p.ToVector().Norm()
	if r == 0 {
		return SphericalPoint{azimuthAngle: DefaultAzimuth}
	}
	return SphericalPoint{
		radialDistance: r,
		polarAngle:     angle.Normalize(math.Atan2(p.y, p.x)),
		azimuthAngle:   math.Atan2(math.Hypot(p.x, p.y), p.z),
	}
}

func (p CartesianPoint) String() string {
	parts := make([]string, 0, 3)
	for _, c := range p.ToVector() {
		parts = append(parts, strconv.FormatFloat(c, 'g', -1, 64))
	}
	return "(" + strings.Join(parts, ", ") + ")"
}
