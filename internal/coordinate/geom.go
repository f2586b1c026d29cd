package coordinate

import (
	"fmt"

	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/wkt"
)

// Layout returns geom.XY for two dimensional points and geom.XYZ otherwise.
func (p CartesianPoint) Layout() geom.Layout {
	if p.IsTwoDimensional() {
		return geom.XY
	}
	return geom.XYZ
}

// Coord returns the point as a go-geom coordinate in Layout order.
func (p CartesianPoint) Coord() geom.Coord {
	return p.ToVector().Coord()
}

func (p CartesianPoint) Geom() *geom.Point {
	return geom.NewPoint(p.Layout()).MustSetCoords(p.Coord())
}

// WKT encodes the point as well-known text, e.g. "POINT Z (1 2 3)".
func (p CartesianPoint) WKT() (string, error) {
	return wkt.Marshal(p.Geom())
}

// ParseWKT decodes a well-known text POINT, e.g. "POINT (1 2)".
func ParseWKT(text string) (CartesianPoint, error) {
	g, err := wkt.Unmarshal(text)
	if err != nil {
		return CartesianPoint{}, fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}
	pt, ok := g.(*geom.Point)
	if !ok {
		return CartesianPoint{}, fmt.Errorf("%w: wkt must be a POINT, got %T", ErrInvalidArgument, g)
	}
	return FromGeom(pt)
}

// FromGeom converts a go-geom point with an XY or XYZ layout.
func FromGeom(g *geom.Point) (CartesianPoint, error) {
	if g == nil {
		return CartesianPoint{}, fmt.Errorf("%w: point is required", ErrInvalidArgument)
	}
	flat := g.FlatCoords()
	if len(flat) < g.Layout().Stride() {
		return CartesianPoint{}, fmt.Errorf("%w: empty point", ErrInvalidArgument)
	}
	switch g.Layout() {
	case geom.XY:
		return Cartesian2D(flat[0], flat[1]), nil
	case geom.XYZ:
		return Cartesian3D(flat[0], flat[1], flat[2]), nil
	default:
		return CartesianPoint{}, fmt.Errorf("%w: unsupported layout %v", ErrInvalidArgument, g.Layout())
	}
}
