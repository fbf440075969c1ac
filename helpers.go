package prana

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// Valid millisecond epoch range for timestamps (years 1 through 9999).
const (
	minEpochMillis = -62135596800000
	maxEpochMillis = 253402300799999
)

// stringField returns obj[key] if it is a string.
func stringField(obj map[string]any, key string) (string, bool) {
	s, ok := obj[key].(string)
	return s, ok
}

// stringValue returns obj[key] as a string, or "" if missing or not a string.
func stringValue(obj map[string]any, key string) string {
	s, _ := stringField(obj, key)
	return s
}

// mapValue returns obj[key] as an object, or an empty map if missing or null.
func mapValue(obj map[string]any, key string) map[string]any {
	if m, ok := obj[key].(map[string]any); ok {
		return m
	}
	return map[string]any{}
}

// numberField returns obj[key] if it is a JSON number.
func numberField(obj map[string]any, key string) (float64, bool) {
	f, ok := obj[key].(float64)
	return f, ok
}

// intValue returns obj[key] truncated to an int, or 0.
func intValue(obj map[string]any, key string) int {
	f, ok := numberField(obj, key)
	if !ok {
		return 0
	}
	n, ok := floatToInt(f)
	if !ok {
		return 0
	}
	return n
}

// boolValue returns obj[key] if it is a bool, or false.
func boolValue(obj map[string]any, key string) bool {
	b, _ := obj[key].(bool)
	return b
}

// timeFromMillis converts a millisecond epoch to a time. A zero value and
// values outside the representable range yield false.
func timeFromMillis(v any) (time.Time, bool) {
	ms, ok := v.(float64)
	if !ok || ms == 0 || math.IsNaN(ms) || ms < minEpochMillis || ms > maxEpochMillis {
		return time.Time{}, false
	}
	return time.UnixMilli(int64(ms)), true
}

// millisField maps an optional millisecond epoch field. Absence is nil, never
// the zero epoch.
func millisField(obj map[string]any, key string) *time.Time {
	t, ok := timeFromMillis(obj[key])
	if !ok {
		return nil
	}
	return &t
}

// floatToInt truncates f toward zero, rejecting NaN, infinities and values
// outside the int range.
func floatToInt(f float64) (int, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f >= float64(math.MaxInt) || f < float64(math.MinInt) {
		return 0, false
	}
	return int(f), true
}

// toFloat converts a loosely typed JSON value to a float.
// Booleans convert to 0 or 1 and numeric strings are parsed.
func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case bool:
		if n {
			return 1, true
		}
		return 0, true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// toInt converts a loosely typed JSON value to an int by float conversion and
// truncation.
func toInt(v any) (int, bool) {
	f, ok := toFloat(v)
	if !ok {
		return 0, false
	}
	return floatToInt(f)
}

// toPosition interprets a position-style value as a toggle state: numbers are
// on at 1 or above, strings are on when "true", "1" or "yes".
func toPosition(v any) bool {
	switch b := v.(type) {
	case nil:
		return false
	case bool:
		return b
	case float64:
		return b >= 1
	case int:
		return b >= 1
	case int64:
		return b >= 1
	case string:
		switch strings.ToLower(b) {
		case "true", "1", "yes":
			return true
		}
		return false
	default:
		return false
	}
}

// floorDiv divides rounding toward negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// GetString navigates a nested map and returns a string value.
// Returns the value and true if found, or empty string and false if not.
//
// Example:
//
//	// Extract: device.AdditionalInfo["pranaType"]
//	model, ok := GetString(device.AdditionalInfo, "pranaType")
func GetString(data map[string]any, keys ...string) (string, bool) {
	val, ok := navigate(data, keys)
	if !ok {
		return "", false
	}
	s, ok := val.(string)
	return s, ok
}

// GetInt navigates a nested map and returns an int value.
// Handles JSON's float64 representation of numbers.
// Returns false if the value is outside the valid int range.
func GetInt(data map[string]any, keys ...string) (int, bool) {
	val, ok := navigate(data, keys)
	if !ok {
		return 0, false
	}
	switch v := val.(type) {
	case float64:
		return floatToInt(v)
	case int:
		return v, true
	default:
		return 0, false
	}
}

// GetFloat navigates a nested map and returns a float64 value.
func GetFloat(data map[string]any, keys ...string) (float64, bool) {
	val, ok := navigate(data, keys)
	if !ok {
		return 0, false
	}
	switch v := val.(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	default:
		return 0, false
	}
}

// GetMap navigates a nested map and returns a map[string]any value.
//
// Example:
//
//	// Extract the "config" object of a two-way RPC reply
//	cfg, ok := GetMap(reply, "config")
func GetMap(data map[string]any, keys ...string) (map[string]any, bool) {
	val, ok := navigate(data, keys)
	if !ok {
		return nil, false
	}
	m, ok := val.(map[string]any)
	return m, ok
}

// navigate walks through a nested map following the provided keys.
// Returns the final value and true if successful, or nil and false if any key is missing.
func navigate(data map[string]any, keys []string) (any, bool) {
	if len(keys) == 0 {
		return data, true
	}

	current := data
	for i, key := range keys {
		val, exists := current[key]
		if !exists {
			return nil, false
		}

		if i == len(keys)-1 {
			return val, true
		}

		next, ok := val.(map[string]any)
		if !ok {
			return nil, false
		}
		current = next
	}

	return nil, false
}
