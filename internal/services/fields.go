package services

import "strconv"

// stringField returns the string value of a raw input field, or "" when the
// field is absent, nil, or not a string.
func stringField(item map[string]interface{}, key string) string {
	value, ok := item[key]
	if !ok || value == nil {
		return ""
	}
	str, ok := value.(string)
	if !ok {
		return ""
	}
	return str
}

// numericValue interprets a raw input value as a number. JSON decoding yields
// float64 for numbers; numeric strings are accepted the way loosely typed
// clients send them.
func numericValue(value interface{}) (float64, bool) {
	switch n := value.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case string:
		parsed, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return 0, false
		}
		return parsed, true
	default:
		return 0, false
	}
}
