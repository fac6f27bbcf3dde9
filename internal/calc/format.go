package calc

import "strings"

// Style selects a text transformation. The zero value means "no transform";
// FormatText passes the input through unchanged for it or any value outside
// the known set.
type Style int

const (
	StyleNone Style = iota
	StyleUppercase
	StyleLowercase
	StyleReverse
	StyleCapitalize
)

// ParseStyle maps a raw style name to a Style. Unknown names map to
// StyleNone, which is the pass-through branch, not an error.
func ParseStyle(s string) Style {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "uppercase":
		return StyleUppercase
	case "lowercase":
		return StyleLowercase
	case "reverse":
		return StyleReverse
	case "capitalize":
		return StyleCapitalize
	default:
		return StyleNone
	}
}

func (s Style) String() string {
	switch s {
	case StyleUppercase:
		return "uppercase"
	case StyleLowercase:
		return "lowercase"
	case StyleReverse:
		return "reverse"
	case StyleCapitalize:
		return "capitalize"
	default:
		return "none"
	}
}

// FormatText applies the selected style to text. Capitalize uppercases the
// first rune and lowercases the remainder (not title-case).
func FormatText(text string, style Style) string {
	switch style {
	case StyleUppercase:
		return strings.ToUpper(text)
	case StyleLowercase:
		return strings.ToLower(text)
	case StyleReverse:
		r := []rune(text)
		for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
			r[i], r[j] = r[j], r[i]
		}
		return string(r)
	case StyleCapitalize:
		r := []rune(text)
		if len(r) == 0 {
			return text
		}
		return strings.ToUpper(string(r[0])) + strings.ToLower(string(r[1:]))
	default:
		return text
	}
}
