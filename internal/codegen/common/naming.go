package common

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Upper applies full Unicode upper-case mapping, so "straße" becomes
// "STRASSE" rather than keeping the sharp s.
func Upper(s string) string {
	// Casers keep state between calls and must not be shared.
	return cases.Upper(language.Und).String(s)
}

// Identifier upper-cases s and replaces spaces with underscores.
func Identifier(s string) string {
	return strings.ReplaceAll(Upper(s), " ", "_")
}

// MacroName joins already-normalized segments with underscores.
func MacroName(segments ...string) string {
	return strings.Join(segments, "_")
}

// ToSnakeCase converts Go-style names to snake_case: "IncludeGuard" becomes
// "include_guard" and "XMLParser" becomes "xml_parser".
func ToSnakeCase(s string) string {
	if s == "" {
		return ""
	}
	var b strings.Builder
	runes := []rune(s)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		isUpper := r >= 'A' && r <= 'Z'

		if i > 0 && isUpper {
			prevIsLower := runes[i-1] >= 'a' && runes[i-1] <= 'z'
			// End of an acronym: "XMLParser" at 'P'.
			nextIsLower := i+1 < len(runes) && runes[i+1] >= 'a' && runes[i+1] <= 'z'
			if prevIsLower || nextIsLower {
				b.WriteByte('_')
			}
		}
		b.WriteRune(r)
	}
	return strings.ToLower(b.String())
}
