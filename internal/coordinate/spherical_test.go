package coordinate

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSpherical(t *testing.T) {
	s, err := NewSpherical(1, math.Pi/2, math.Pi/4)
	require.NoError(t, err)
	assert.Equal(t, 1.0, s.RadialDistance())
	assert.Equal(t, math.Pi/2, s.PolarAngle())
	assert.Equal(t, math.Pi/4, s.AzimuthAngle())
}

func TestNewSphericalDefaultsAzimuth(t *testing.T) {
	s, err := NewSpherical(int32(2), 0)
	require.NoError(t, err)
	assert.Equal(t, 2.0, s.RadialDistance())
	assert.Equal(t, DefaultAzimuth, s.AzimuthAngle())

	s, err = NewSpherical(2, 0, nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultAzimuth, s.AzimuthAngle())

	assert.Equal(t, DefaultAzimuth, Spherical(1, 0).AzimuthAngle())
}

func TestNewSphericalMissingArguments(t *testing.T) {
	_, err := NewSpherical(nil, 0)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = NewSpherical(1, nil)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = NewSpherical(1, 0, "north")
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = NewSpherical(1, 0, 1, 2)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestToCartesian(t *testing.T) {
	c := SphericalWithAzimuth(1.0, math.Pi/4, math.Pi/2).ToCartesian()

	require.False(t, c.IsTwoDimensional())
	assert.InDelta(t, 0.7071067811865476, c.X(), 1e-15)
	assert.InDelta(t, 0.7071067811865475, c.Y(), 1e-15)
	z, _ := c.Z()
	assert.InDelta(t, 6.123233995736766e-17, z, 1e-18)
}

func TestToCartesianAxes(t *testing.T) {
	tests := []struct {
		name string
		in   SphericalPoint
		want CartesianPoint
	}{
		{"x axis", Spherical(2, 0), Cartesian3D(2, 0, 0)},
		{"y axis", Spherical(3, math.Pi/2), Cartesian3D(0, 3, 0)},
		{"z axis", SphericalWithAzimuth(4, 1.234, 0), Cartesian3D(0, 0, 4)},
		{"negative z", SphericalWithAzimuth(5, 0, math.Pi), Cartesian3D(0, 0, -5)},
		{"origin", SphericalWithAzimuth(0, 1, 1), Cartesian3D(0, 0, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.ToCartesian()
			assert.True(t, got.ApproxEqual(tt.want, 1e-12), "got %v want %v", got, tt.want)
		})
	}
}

func TestSphericalDistanceAndVector(t *testing.T) {
	a := Spherical(1, 0)
	b := Spherical(1, math.Pi)

	assert.InDelta(t, 2.0, a.DistanceTo(b), 1e-12)
	v := a.VectorTo(b)
	require.Equal(t, 3, v.Dim())
	assert.InDelta(t, -2.0, v[0], 1e-12)
}

func TestSphericalRoundTrip(t *testing.T) {
	for _, s := range []SphericalPoint{
		SphericalWithAzimuth(2, 0.3, 1.1),
		SphericalWithAzimuth(7.5, 4, 2.5),
		Spherical(1, 5.5),
	} {
		back := s.ToCartesian().ToSpherical()
		assert.InDelta(t, s.RadialDistance(), back.RadialDistance(), 1e-9)
		assert.InDelta(t, s.PolarAngle(), back.PolarAngle(), 1e-9)
		assert.InDelta(t, s.AzimuthAngle(), back.AzimuthAngle(), 1e-9)
	}
}

func TestLonLat(t *testing.T) {
	ll := SphericalWithAzimuth(1, math.Pi/4, math.Pi/2).LonLat()
	assert.InDelta(t, 45.0, ll.Lon(), 1e-12)
	assert.InDelta(t, 0.0, ll.Lat(), 1e-12)

	ll = SphericalWithAzimuth(1, 0, 0).LonLat()
	assert.InDelta(t, 90.0, ll.Lat(), 1e-12)
}

func TestSphericalString(t *testing.T) {
	assert.Equal(t, "(r=1, polar=0, azimuth=0.5)", SphericalWithAzimuth(1, 0, 0.5).String())
}
