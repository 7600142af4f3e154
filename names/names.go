// Package names converts between the two field-naming conventions the
// channel-set formats use: snake_case on the text-proto surface and
// camelCase in the LoRa section of a document.
package names

import "strings"

// Camel converts snake_case to camelCase: each underscore followed by a
// lowercase letter collapses to the uppercase letter. Applied to a name
// with no underscores it is a no-op.
func Camel(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == '_' && i+1 < len(s) && s[i+1] >= 'a' && s[i+1] <= 'z' {
			b.WriteByte(s[i+1] - 'a' + 'A')
			i++
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

// Snake converts camelCase to snake_case: each uppercase letter becomes
// an underscore plus its lowercase form. Applied to a name with no
// uppercase letters it is a no-op.
func Snake(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 'A' && c <= 'Z' {
			b.WriteByte('_')
			b.WriteByte(c - 'A' + 'a')
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}
