package utils

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Helper functions for coercing decoded JSON values (string, float64, bool, nil)

// IsBlank reports whether a value should clear a field: null, an empty or
// whitespace-only string, false, or a numeric zero.
func IsBlank(v interface{}) bool {
	switch val := v.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(val) == ""
	case bool:
		return !val
	case float64:
		return val == 0
	case int:
		return val == 0
	case uint:
		return val == 0
	case json.Number:
		f, err := val.Float64()
		return err == nil && f == 0
	}
	return false
}

// ToString accepts strings only; numbers are formatted so free-text fields
// survive clients that send them unquoted.
func ToString(v interface{}) (string, error) {
	switch val := v.(type) {
	case nil:
		return "", nil
	case string:
		return val, nil
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64), nil
	case int:
		return strconv.Itoa(val), nil
	case json.Number:
		return val.String(), nil
	}
	return "", fmt.Errorf("expected text, got %T", v)
}

// ToFloat64 converts numbers and numeric strings
func ToFloat64(v interface{}) (float64, error) {
	var f float64
	switch val := v.(type) {
	case float64:
		f = val
	case int:
		f = float64(val)
	case uint:
		f = float64(val)
	case json.Number:
		parsed, err := val.Float64()
		if err != nil {
			return 0, fmt.Errorf("expected a number, got %q", val.String())
		}
		f = parsed
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
		if err != nil {
			return 0, fmt.Errorf("expected a number, got %q", val)
		}
		f = parsed
	default:
		return 0, fmt.Errorf("expected a number, got %T", v)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("expected a finite number, got %v", f)
	}
	return f, nil
}

// ToInt converts numbers and integer strings. Fractional numbers are truncated,
// fractional strings are rejected.
func ToInt(v interface{}) (int, error) {
	if s, ok := v.(string); ok {
		i, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return 0, fmt.Errorf("expected an integer, got %q", s)
		}
		return i, nil
	}
	f, err := ToFloat64(v)
	if err != nil {
		return 0, err
	}
	if f > math.MaxInt32 || f < math.MinInt32 {
		return 0, fmt.Errorf("integer %v out of range", f)
	}
	return int(f), nil
}

// ToID converts a positive integer identifier
func ToID(v interface{}) (uint, error) {
	i, err := ToInt(v)
	if err != nil {
		return 0, err
	}
	if i <= 0 {
		return 0, fmt.Errorf("expected a positive id, got %d", i)
	}
	return uint(i), nil
}

// ParseID parses a path or query parameter id
func ParseID(s string) (uint, error) {
	id, err := strconv.ParseUint(strings.TrimSpace(s), 10, 32)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return uint(id), nil
}
