package atlas

import "time"

// NaturalCompare orders a and b with their natural "<" and ">":
// -1 when a < b, 1 when a > b, 0 otherwise.
// Numbers of any Go numeric type compare by value, strings lexically,
// false before true, times chronologically. Anything else, including
// mixed kinds and nil, compares equal.
func NaturalCompare(a, b any) int {
	switch x := a.(type) {
	case string:
		if y, ok := b.(string); ok {
			return order(x < y, x > y)
		}
		return 0
	case bool:
		if y, ok := b.(bool); ok {
			return order(!x && y, x && !y)
		}
		return 0
	case time.Time:
		if y, ok := b.(time.Time); ok {
			return x.Compare(y)
		}
		return 0
	}

	x, ok := toFloat(a)
	if !ok {
		return 0
	}
	y, ok := toFloat(b)
	if !ok {
		return 0
	}
	// NaN is neither less nor greater
	return order(x < y, x > y)
}

func order(less, greater bool) int {
	switch {
	case less:
		return -1
	case greater:
		return 1
	}
	return 0
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}
