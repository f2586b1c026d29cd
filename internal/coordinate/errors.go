package coordinate

import (
	"encoding/json"
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is returned when a mandatory argument is missing or
	// cannot be used as a number.
	ErrInvalidArgument = errors.New("invalid argument")
)

// toFloat coerces a numeric value into float64. A nil value means the
// caller omitted the argument.
func toFloat(name string, v any) (float64, error) {
	switch n := v.(type) {
	case nil:
		return 0, fmt.Errorf("%w: %s is required", ErrInvalidArgument, name)
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int8:
		return float64(n), nil
	case int16:
		return float64(n), nil
	case int32:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case uint:
		return float64(n), nil
	case uint8:
		return float64(n), nil
	case uint16:
		return float64(n), nil
	case uint32:
		return float64(n), nil
	case uint64:
		return float64(n), nil
	case *float64:
		if n == nil {
			return 0, fmt.Errorf("%w: %s is required", ErrInvalidArgument, name)
		}
		return *n, nil
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0, fmt.Errorf("%w: %s: %v", ErrInvalidArgument, name, err)
		}
		return f, nil
	default:
		return 0, fmt.Errorf("%w: %s must be numeric, got %T", ErrInvalidArgument, name, v)
	}
}

// optionalFloat coerces at most one trailing optional argument.
func optionalFloat(name string, vs []any) (float64, bool, error) {
	if len(vs) > 1 {
		return 0, false, fmt.Errorf("%w: at most one %s expected, got %d", ErrInvalidArgument, name, len(vs))
	}
	if len(vs) == 0 || vs[0] == nil {
		return 0, false, nil
	}
	if p, ok := vs[0].(*float64); ok && p == nil {
		return 0, false, nil
	}
	f, err := toFloat(name, vs[0])
	if err != nil {
		return 0, false, err
	}
	return f, true, nil
}
