package validation

import (
	"math"
	"strings"
)

// Predicates for classifying raw JSON payload values. Request DTOs keep
// their fields as `any` so these see exactly what the client sent: an
// absent field and an explicit null both decode to a nil interface, a
// JSON number decodes to float64, everything else keeps its Go type.
//
// All predicates return a plain bool and never panic on any input.
// Workflows combine them with || left to right, so the type check always
// runs before anything inspects the value as a string.

// IsMissing reports whether the value is absent or explicit null.
func IsMissing(v any) bool {
	return v == nil
}

// IsInvalidString reports whether the value is not a string or is blank
// after trimming whitespace.
func IsInvalidString(v any) bool {
	s, ok := v.(string)
	if !ok {
		return true
	}
	return strings.TrimSpace(s) == ""
}

// IsInvalidInteger reports whether the value is not a non-negative whole
// number. JSON numbers arrive as float64, so 3.0 counts as the integer 3
// while 3.5 does not.
func IsInvalidInteger(v any) bool {
	f, ok := v.(float64)
	if !ok {
		return true
	}
	return f < 0 || f != math.Trunc(f)
}

// IsInvalidURL reports whether the value is an invalid string or does not
// start with the required scheme prefix (e.g. "https").
func IsInvalidURL(v any, scheme string) bool {
	if IsInvalidString(v) {
		return true
	}
	return !strings.HasPrefix(v.(string), scheme)
}

// AsString returns the value as a string. Callers must have ruled out
// IsInvalidString first.
func AsString(v any) string {
	s, _ := v.(string)
	return s
}

// AsInt returns the value as an int. Callers must have ruled out
// IsInvalidInteger first.
func AsInt(v any) int {
	f, _ := v.(float64)
	return int(f)
}
