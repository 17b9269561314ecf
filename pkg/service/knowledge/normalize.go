package knowledge

import "strings"

// NormalizeKey canonicalizes a human-entered label into a comparable
// token: lowercase, with every rune outside [a-z0-9] removed. An empty
// input yields an empty token.
func NormalizeKey(label string) string {
	var b strings.Builder
	b.Grow(len(label))
	for _, r := range strings.ToLower(label) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}
