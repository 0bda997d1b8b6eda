package vendors

import (
	"strconv"
)

// asRecords coerces a decoded response body into a slice of records.
// Non-array bodies yield nil; array entries that are not objects yield
// empty records so the normalizers fill them entirely with defaults.
func asRecords(raw any) []map[string]any {
	items, ok := raw.([]any)
	if !ok {
		return nil
	}
	records := make([]map[string]any, 0, len(items))
	for _, item := range items {
		rec, ok := item.(map[string]any)
		if !ok {
			rec = map[string]any{}
		}
		records = append(records, rec)
	}
	return records
}

// stringField returns the first alias whose value is a non-empty string.
func stringField(rec map[string]any, aliases ...string) string {
	for _, alias := range aliases {
		if s, ok := rec[alias].(string); ok && s != "" {
			return s
		}
	}
	return ""
}

// stringFieldOr behaves like stringField but returns fallback when no
// alias carries a usable value.
func stringFieldOr(rec map[string]any, fallback string, aliases ...string) string {
	if s := stringField(rec, aliases...); s != "" {
		return s
	}
	return fallback
}

// numField returns the first alias whose value is a non-zero number.
// Numeric strings count, since several vendors serialize amounts as text.
func numField(rec map[string]any, aliases ...string) float64 {
	for _, alias := range aliases {
		if n, ok := asFloat(rec[alias]); ok && n != 0 {
			return n
		}
	}
	return 0
}

// numFieldOr behaves like numField with an explicit fallback for zero.
func numFieldOr(rec map[string]any, fallback float64, aliases ...string) float64 {
	if n := numField(rec, aliases...); n != 0 {
		return n
	}
	return fallback
}

func intField(rec map[string]any, aliases ...string) int {
	return int(numField(rec, aliases...))
}

func intFieldOr(rec map[string]any, fallback int, aliases ...string) int {
	if n := intField(rec, aliases...); n != 0 {
		return n
	}
	return fallback
}

func boolField(rec map[string]any, aliases ...string) bool {
	for _, alias := range aliases {
		if b, ok := rec[alias].(bool); ok && b {
			return true
		}
	}
	return false
}

// sliceContains reports whether rec[key] is an array holding want.
func sliceContains(rec map[string]any, key, want string) bool {
	items, ok := rec[key].([]any)
	if !ok {
		return false
	}
	for _, item := range items {
		if s, ok := item.(string); ok && s == want {
			return true
		}
	}
	return false
}

// nestedString walks one level into an embedded object, e.g. the Mews
// TotalAmount.Currency shape.
func nestedString(rec map[string]any, outer, inner string) string {
	obj, ok := rec[outer].(map[string]any)
	if !ok {
		return ""
	}
	s, _ := obj[inner].(string)
	return s
}

// nestedNum walks one level into an embedded object, e.g. the Mews
// TotalAmount.Value shape.
func nestedNum(rec map[string]any, outer, inner string) float64 {
	obj, ok := rec[outer].(map[string]any)
	if !ok {
		return 0
	}
	n, _ := asFloat(obj[inner])
	return n
}

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case string:
		f, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}
