package service

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// CoercePages converts a driver-decoded page count into an integer the way a
// plain int() conversion would: integers pass through, floats truncate toward
// zero, and text must be a base-10 integer literal.
func CoercePages(v any) (int64, error) {
	switch t := v.(type) {
	case nil:
		return 0, fmt.Errorf("%w: null", ErrInvalidPages)
	case int64:
		return t, nil
	case int:
		return int64(t), nil
	case int32:
		return int64(t), nil
	case int16:
		return int64(t), nil
	case int8:
		return int64(t), nil
	case uint64:
		if t > math.MaxInt64 {
			return 0, fmt.Errorf("%w: %d overflows int64", ErrInvalidPages, t)
		}
		return int64(t), nil
	case uint:
		if uint64(t) > math.MaxInt64 {
			return 0, fmt.Errorf("%w: %d overflows int64", ErrInvalidPages, t)
		}
		return int64(t), nil
	case uint32:
		return int64(t), nil
	case uint16:
		return int64(t), nil
	case uint8:
		return int64(t), nil
	case bool:
		if t {
			return 1, nil
		}
		return 0, nil
	case float64:
		return truncate(t)
	case float32:
		return truncate(float64(t))
	case []byte:
		return parseIntLiteral(string(t))
	case string:
		return parseIntLiteral(t)
	default:
		return 0, fmt.Errorf("%w: unsupported type %T", ErrInvalidPages, v)
	}
}

func truncate(f float64) (int64, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%w: %v", ErrInvalidPages, f)
	}
	f = math.Trunc(f)
	if f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, fmt.Errorf("%w: %v overflows int64", ErrInvalidPages, f)
	}
	return int64(f), nil
}

// parseIntLiteral accepts surrounding whitespace, an optional sign and single
// underscores between digits.
func parseIntLiteral(s string) (int64, error) {
	lit := strings.TrimSpace(s)
	body := strings.TrimLeft(lit, "+-")
	if len(lit)-len(body) > 1 || body == "" || body[0] == '_' || body[len(body)-1] == '_' || strings.Contains(body, "__") {
		return 0, fmt.Errorf("%w: %q", ErrInvalidPages, s)
	}
	n, err := strconv.ParseInt(strings.ReplaceAll(lit, "_", ""), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidPages, s)
	}
	return n, nil
}
