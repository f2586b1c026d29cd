package coordinate

import (
	"fmt"
	"math"

	"github.com/paulmach/orb"

	"coordinates/internal/geometry/angle"
	"coordinates/internal/geometry/vector"
)

// DefaultAzimuth places a spherical point on the reference (x-y) plane.
const DefaultAzimuth = math.Pi / 2

// SphericalPoint is a point described by its distance from the origin and
// two angles in radians, using the mathematical convention: the polar angle
// lies on the reference plane measured from the x axis and the azimuth
// angle is measured from the z axis.
//
// Use the constructors; the zero value has an azimuth of 0, not DefaultAzimuth.
type SphericalPoint struct {
	radialDistance float64
	polarAngle     float64
	azimuthAngle   float64
}

// NewSpherical creates a point from numeric arguments of any Go numeric
// type or json.Number. radialDistance and polarAngle are mandatory; the
// azimuth defaults to DefaultAzimuth when omitted or nil.
func NewSpherical(radialDistance, polarAngle any, azimuthAngle ...any) (SphericalPoint, error) {
	r, err := toFloat("radial_distance", radialDistance)
	if err != nil {
		return SphericalPoint{}, err
	}
	polar, err := toFloat("polar_angle", polarAngle)
	if err != nil {
		return SphericalPoint{}, err
	}
	az, ok, err := optionalFloat("azimuth_angle", azimuthAngle)
	if err != nil {
		return SphericalPoint{}, err
	}
	if !ok {
		az = DefaultAzimuth
	}
	return SphericalPoint{radialDistance: r, polarAngle: polar, azimuthAngle: az}, nil
}

// Spherical creates a point on the reference plane.
func Spherical(radialDistance, polarAngle float64) SphericalPoint {
	return SphericalWithAzimuth(radialDistance, polarAngle, DefaultAzimuth)
}

func SphericalWithAzimuth(radialDistance, polarAngle, azimuthAngle float64) SphericalPoint {
	return SphericalPoint{radialDistance: radialDistance, polarAngle: polarAngle, azimuthAngle: azimuthAngle}
}

func (s SphericalPoint) RadialDistance() float64 { return s.radialDistance }
func (s SphericalPoint) PolarAngle() float64     { return s.polarAngle }
func (s SphericalPoint) AzimuthAngle() float64   { return s.azimuthAngle }

// ToCartesian returns the same position as a three dimensional Cartesian point.
func (s SphericalPoint) ToCartesian() CartesianPoint {
	sinAz := math.Sin(s.azimuthAngle)
	return Cartesian3D(
		s.radialDistance*sinAz*math.Cos(s.polarAngle),
		s.radialDistance*sinAz*math.Sin(s.polarAngle),
		s.radialDistance*math.Cos(s.azimuthAngle),
	)
}

// VectorTo returns the Cartesian displacement from s to other.
func (s SphericalPoint) VectorTo(other SphericalPoint) vector.Vector {
	return s.ToCartesian().VectorTo(other.ToCartesian())
}

// DistanceTo returns the Euclidean distance between s and other.
func (s SphericalPoint) DistanceTo(other SphericalPoint) float64 {
	return s.VectorTo(other).Norm()
}

// LonLat projects the direction of s onto a unit sphere as degrees:
// the polar angle becomes the longitude and the elevation above the
// reference plane becomes the latitude.
func (s SphericalPoint) LonLat() orb.Point {
	return orb.Point{
		angle.RadiansToDegrees(s.polarAngle),
		90 - angle.RadiansToDegrees(s.azimuthAngle),
	}
}

func (s SphericalPoint) String() string {
	return fmt.Sprintf("(r=%g, polar=%g, azimuth=%g)", s.radialDistance, s.polarAngle, s.azimuthAngle)
}
