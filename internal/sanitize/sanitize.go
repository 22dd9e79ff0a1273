// Package sanitize rewrites captured tool output so error messages reference
// the caller's relative paths instead of gateway-internal absolute paths.
package sanitize

import "strings"

// Replacement maps one absolute path back to the caller-supplied relative path.
type Replacement struct {
	Absolute string
	Relative string
}

// Decode converts captured subprocess bytes to a string, replacing any invalid
// UTF-8 sequences rather than failing the request.
func Decode(b []byte) string {
	return strings.ToValidUTF8(string(b), "�")
}

// Rewrite replaces every occurrence of each absolute path in text with its
// relative counterpart. Replacements are applied in order.
func Rewrite(text string, replacements ...Replacement) string {
	for _, r := range replacements {
		if r.Absolute == "" {
			continue
		}
		text = strings.ReplaceAll(text, r.Absolute, r.Relative)
	}
	return text
}
