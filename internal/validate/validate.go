package validate

import (
	"math"
	"strconv"
	"strings"
)

// Kind declares what a form field is expected to hold.
type Kind int

const (
	// Any accepts every value; the permissive default.
	Any Kind = iota
	// Number requires a non-empty value that parses as a float.
	Number
	// Text requires a value that is non-empty after trimming.
	Text
)

// ParseKind maps a raw kind name to a Kind. Unknown names fall back to Any.
func ParseKind(s string) Kind {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "number":
		return Number
	case "text":
		return Text
	default:
		return Any
	}
}

// Field reports whether raw is acceptable for the declared kind. "0" and
// negative numbers are valid numbers; whitespace-only text is not valid
// text; any other kind is accepted unconditionally.
func Field(kind Kind, raw string) bool {
	switch kind {
	case Number:
		if raw == "" {
			return false
		}
		// ParseFloat accepts "NaN" and "Inf"; neither is a usable number here.
		n, err := strconv.ParseFloat(raw, 64)
		return err == nil && !math.IsNaN(n) && !math.IsInf(n, 0)
	case Text:
		return strings.TrimSpace(raw) != ""
	default:
		return true
	}
}
