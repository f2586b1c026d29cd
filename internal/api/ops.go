package api

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/paulmach/orb/geojson"

	"coordinates/internal/coordinate"
	"coordinates/internal/geometry/angle"
)

const (
	opDistance    = "distance"
	opVector      = "vector"
	opApply       = "apply"
	opToSpherical = "to-spherical"
	opToCartesian = "to-cartesian"
	opToRadians   = "to-radians"
	opToDegrees   = "to-degrees"
)

// cartesianBody carries raw JSON numbers so that missing axes can be told
// apart from zero. WKT is an alternative to the axes, not a supplement.
type cartesianBody struct {
	X   any    `json:"x"`
	Y   any    `json:"y"`
	Z   any    `json:"z,omitempty"`
	WKT string `json:"wkt,omitempty"`
}

type sphericalBody struct {
	RadialDistance any `json:"radialDistance"`
	PolarAngle     any `json:"polarAngle"`
	AzimuthAngle   any `json:"azimuthAngle,omitempty"`
}

// request is shared by every operation; each one reads only its own fields.
type request struct {
	From      *cartesianBody `json:"from,omitempty"`
	To        *cartesianBody `json:"to,omitempty"`
	Point     *cartesianBody `json:"point,omitempty"`
	Vector    []float64      `json:"vector,omitempty"`
	Spherical *sphericalBody `json:"spherical,omitempty"`
	Value     *float64       `json:"value,omitempty"`
}

type cartesianJSON struct {
	X   float64  `json:"x"`
	Y   float64  `json:"y"`
	Z   *float64 `json:"z,omitempty"`
	WKT string   `json:"wkt,omitempty"`
}

type sphericalJSON struct {
	RadialDistance float64 `json:"radialDistance"`
	PolarAngle     float64 `json:"polarAngle"`
	AzimuthAngle   float64 `json:"azimuthAngle"`
}

func required(name string) error {
	return fmt.Errorf("%w: %s is required", coordinate.ErrInvalidArgument, name)
}

func (b *cartesianBody) point(name string) (coordinate.CartesianPoint, error) {
	if b == nil {
		return coordinate.CartesianPoint{}, required(name)
	}
	var p coordinate.CartesianPoint
	var err error
	switch {
	case b.WKT != "" && (b.X != nil || b.Y != nil || b.Z != nil):
		err = fmt.Errorf("%w: wkt and axes are mutually exclusive", coordinate.ErrInvalidArgument)
	case b.WKT != "":
		p, err = coordinate.ParseWKT(b.WKT)
	default:
		p, err = coordinate.NewCartesian(b.X, b.Y, b.Z)
	}
	if err != nil {
		return coordinate.CartesianPoint{}, fmt.Errorf("%s: %w", name, err)
	}
	return p, nil
}

func (b *sphericalBody) point() (coordinate.SphericalPoint, error) {
	if b == nil {
		return coordinate.SphericalPoint{}, required("spherical")
	}
	return coordinate.NewSpherical(b.RadialDistance, b.PolarAngle, b.AzimuthAngle)
}

func toCartesianJSON(p coordinate.CartesianPoint) cartesianJSON {
	out := cartesianJSON{X: p.X(), Y: p.Y()}
	if z, ok := p.Z(); ok {
		out.Z = &z
	}
	return out
}

func toSphericalJSON(s coordinate.SphericalPoint) sphericalJSON {
	return sphericalJSON{
		RadialDistance: s.RadialDistance(),
		PolarAngle:     s.PolarAngle(),
		AzimuthAngle:   s.AzimuthAngle(),
	}
}

func (s *Server) dispatch(op string, req request) (any, error) {
	switch op {
	case opDistance, opVector:
		from, err := req.From.point("from")
		if err != nil {
			return nil, err
		}
		to, err := req.To.point("to")
		if err != nil {
			return nil, err
		}
		if op == opDistance {
			return map[string]any{"distance": from.DistanceTo(to)}, nil
		}
		return map[string]any{"vector": from.VectorTo(to)}, nil

	case opApply:
		p, err := req.Point.point("point")
		if err != nil {
			return nil, err
		}
		moved, err := p.ApplyVector(req.Vector)
		if err != nil {
			return nil, err
		}
		return map[string]any{"point": toCartesianJSON(moved)}, nil

	case opToSpherical:
		p, err := req.Point.point("point")
		if err != nil {
			return nil, err
		}
		sp := p.ToSpherical()
		feature := geojson.NewFeature(sp.LonLat())
		feature.Properties["radialDistance"] = sp.RadialDistance()
		return map[string]any{"spherical": toSphericalJSON(sp), "feature": feature}, nil

	case opToCartesian:
		sp, err := req.Spherical.point()
		if err != nil {
			return nil, err
		}
		c := s.toCartesian(sp)
		out := toCartesianJSON(c)
		if out.WKT, err = c.WKT(); err != nil {
			return nil, fmt.Errorf("encode wkt: %w", err)
		}
		return map[string]any{"cartesian": out}, nil

	case opToRadians, opToDegrees:
		if req.Value == nil {
			return nil, required("value")
		}
		if op == opToRadians {
			return map[string]any{"value": angle.DegreesToRadians(*req.Value)}, nil
		}
		return map[string]any{"value": angle.RadiansToDegrees(*req.Value)}, nil
	}
	return nil, fmt.Errorf("%w: unknown operation %q", coordinate.ErrInvalidArgument, op)
}

func (s *Server) toCartesian(sp coordinate.SphericalPoint) coordinate.CartesianPoint {
	if s.conversions == nil {
		return sp.ToCartesian()
	}
	return s.conversions.GetOrCompute(sphericalKey(sp), sp.ToCartesian)
}

func sphericalKey(sp coordinate.SphericalPoint) string {
	parts := []string{
		strconv.FormatFloat(sp.RadialDistance(), 'g', -1, 64),
		strconv.FormatFloat(sp.PolarAngle(), 'g', -1, 64),
		strconv.FormatFloat(sp.AzimuthAngle(), 'g', -1, 64),
	}
	return strings.Join(parts, "|")
}
