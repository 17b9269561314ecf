package knowledge

import "strings"

// Matcher resolves free-text labels against a fixed candidate key set by
// approximate matching. Normalized tokens are precomputed once at
// construction so repeated lookups stay cheap.
//
// Matching is first-match-wins in source order over the combined
// predicate (equal, contains, contained-by). A label that is a substring
// of several keys resolves to the earliest one; downstream consumers
// depend on this resolution order, so it must not be "improved" to
// prefer exact matches globally.
type Matcher struct {
	keys   []string
	tokens []string
}

// NewMatcher builds a matcher over the candidate keys, preserving their
// source order
func NewMatcher(keys []string) *Matcher {
	m := &Matcher{
		keys:   make([]string, len(keys)),
		tokens: make([]string, len(keys)),
	}
	copy(m.keys, keys)
	for i, k := range keys {
		m.tokens[i] = NormalizeKey(k)
	}
	return m
}

// Match returns the first candidate key whose normalized token equals,
// contains, or is contained by the normalized label. The second return
// is false when nothing matches; that is a normal outcome, not an error.
func (m *Matcher) Match(label string) (string, bool) {
	target := NormalizeKey(label)
	if target == "" {
		return "", false
	}

	for i, token := range m.tokens {
		if token == target || strings.Contains(token, target) || strings.Contains(target, token) {
			return m.keys[i], true
		}
	}
	return "", false
}
