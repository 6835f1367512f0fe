package schema

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var errMissing = errors.New("value is missing")

// toInt64 accepts the numeric shapes produced by the YAML, JSON and TOML
// decoders, plus integer strings with an optional base prefix.
func toInt64(v any) (int64, error) {
	switch n := v.(type) {
	case nil:
		return 0, errMissing
	case int:
		return int64(n), nil
	case int64:
		return n, nil
	case uint64:
		if n > math.MaxInt64 {
			return 0, fmt.Errorf("%d is out of range", n)
		}
		return int64(n), nil
	case float64:
		if n != math.Trunc(n) || math.Abs(n) > 1<<53 {
			return 0, fmt.Errorf("%v is not an integer", n)
		}
		return int64(n), nil
	case string:
		s := strings.TrimSpace(n)
		i, err := strconv.ParseInt(s, 0, 64)
		if err != nil {
			return 0, fmt.Errorf("%q is not an integer", n)
		}
		return i, nil
	default:
		return 0, fmt.Errorf("expected an integer, got %T", v)
	}
}

func toUint(v any) (uint64, error) {
	n, err := toInt64(v)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, fmt.Errorf("%d is negative", n)
	}
	return uint64(n), nil
}

func toInt(v any) (int, error) {
	n, err := toInt64(v)
	if err != nil {
		return 0, err
	}
	if n < math.MinInt32 || n > math.MaxInt32 {
		return 0, fmt.Errorf("%d is out of range", n)
	}
	return int(n), nil
}

func bitIndex(v any) (int, error) {
	n, err := toInt(v)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, fmt.Errorf("bit index %d is negative", n)
	}
	return n, nil
}

// newRange orders a and b so that Start >= Stop.
func newRange(a, b int) BitRange {
	if a < b {
		a, b = b, a
	}
	return BitRange{Start: a, Stop: b}
}

func parseBitRange(v any) (BitRange, error) {
	switch x := v.(type) {
	case nil:
		return BitRange{}, errMissing
	case string:
		return parseBitString(x)
	case []any:
		switch len(x) {
		case 1:
			i, err := bitIndex(x[0])
			if err != nil {
				return BitRange{}, err
			}
			return BitRange{Start: i, Stop: i}, nil
		case 2:
			a, err := bitIndex(x[0])
			if err != nil {
				return BitRange{}, err
			}
			b, err := bitIndex(x[1])
			if err != nil {
				return BitRange{}, err
			}
			return newRange(a, b), nil
		default:
			return BitRange{}, fmt.Errorf("bit range list needs 1 or 2 elements, got %d", len(x))
		}
	default:
		i, err := bitIndex(v)
		if err != nil {
			return BitRange{}, err
		}
		return BitRange{Start: i, Stop: i}, nil
	}
}

// parseBitString handles "7", "7:4", "7..4" and the bracketed "[7:4]".
func parseBitString(s string) (BitRange, error) {
	body := strings.TrimSpace(s)
	if strings.HasPrefix(body, "[") && strings.HasSuffix(body, "]") {
		body = strings.TrimSpace(body[1 : len(body)-1])
	}
	if body == "" {
		return BitRange{}, errMissing
	}

	hi, lo, ok := strings.Cut(body, "..")
	if !ok {
		hi, lo, ok = strings.Cut(body, ":")
	}
	if !ok {
		i, err := bitIndex(body)
		if err != nil {
			return BitRange{}, fmt.Errorf("invalid bit range %q: %w", s, err)
		}
		return BitRange{Start: i, Stop: i}, nil
	}

	a, err := bitIndex(strings.TrimSpace(hi))
	if err != nil {
		return BitRange{}, fmt.Errorf("invalid bit range %q: %w", s, err)
	}
	b, err := bitIndex(strings.TrimSpace(lo))
	if err != nil {
		return BitRange{}, fmt.Errorf("invalid bit range %q: %w", s, err)
	}
	return newRange(a, b), nil
}
