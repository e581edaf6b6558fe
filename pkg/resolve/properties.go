package resolve

import (
	"regexp"
	"strings"
)

var placeholderRe = regexp.MustCompile(`\$\{([^}]+)\}`)

// Substitute replaces every ${name} occurrence in s with properties[name].
// Unresolved placeholders are left verbatim; the function never fails.
//
// Substitution is a single pass: a property value that itself contains a
// placeholder is not re-expanded. Descriptors in the wild rely on literal
// ${...} passthrough, so nested expansion is deliberately not performed.
func Substitute(s string, properties map[string]string) string {
	if s == "" || !strings.Contains(s, "${") {
		return s
	}
	return placeholderRe.ReplaceAllStringFunc(s, func(m string) string {
		name := m[2 : len(m)-1]
		if v, ok := properties[name]; ok {
			return v
		}
		return m
	})
}
