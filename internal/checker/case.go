package checker

import "strings"

// applyCase shapes a lower-cased correction after the casing of the
// token it replaces: Title for title-cased tokens, upper for all-caps
// tokens, otherwise unchanged.
func applyCase(original, corrected string) string {
	switch {
	case isTitle(original):
		return title(corrected)
	case isUpper(original):
		return strings.ToUpper(corrected)
	default:
		return corrected
	}
}

func isTitle(s string) bool {
	if s == "" {
		return false
	}
	r := []rune(s)
	return strings.ToUpper(string(r[0])) == string(r[0]) && strings.ToLower(string(r[1:])) == string(r[1:])
}

func isUpper(s string) bool { return strings.ToUpper(s) == s }

func title(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	return strings.ToUpper(string(r[0])) + strings.ToLower(string(r[1:]))
}
