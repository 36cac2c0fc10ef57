package common

import "strings"

// Normalize trims a raw input line and upper-cases it for keyword matching.
func Normalize(line string) string {
	return strings.ToUpper(strings.TrimSpace(line))
}

// IsAny reports whether the normalized line equals one of the keywords.
func IsAny(line string, keywords ...string) bool {
	n := Normalize(line)
	for _, k := range keywords {
		if n == k {
			return true
		}
	}
	return false
}
