package utils

import "strings"

// NormalizeResourceName canonicalizes a resource type name for
// preference matching: lowercased with runs of whitespace collapsed.
// Site descriptions occasionally carry stray double spaces.
func NormalizeResourceName(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), " "))
}

// SameResourceName reports whether two resource type names refer to
// the same type after normalization.
func SameResourceName(a, b string) bool {
	return NormalizeResourceName(a) == NormalizeResourceName(b)
}
