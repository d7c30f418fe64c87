package match

import (
	"sort"
	"strings"
)

// TokenSet is an unordered set of canonical tokens.
type TokenSet map[string]struct{}

// NewTokenSet builds a set from tokens.
func NewTokenSet(tokens ...string) TokenSet {
	s := make(TokenSet, len(tokens))
	for _, t := range tokens {
		s[t] = struct{}{}
	}
	return s
}

// Has reports membership.
func (s TokenSet) Has(token string) bool {
	_, ok := s[token]
	return ok
}

// Intersect returns the tokens present in both sets.
func (s TokenSet) Intersect(other TokenSet) TokenSet {
	small, large := s, other
	if len(large) < len(small) {
		small, large = large, small
	}
	out := make(TokenSet)
	for t := range small {
		if large.Has(t) {
			out[t] = struct{}{}
		}
	}
	return out
}

// Difference returns the tokens of s missing from other.
func (s TokenSet) Difference(other TokenSet) TokenSet {
	out := make(TokenSet)
	for t := range s {
		if !other.Has(t) {
			out[t] = struct{}{}
		}
	}
	return out
}

// Union returns the tokens present in any of the sets.
func Union(sets ...TokenSet) TokenSet {
	out := make(TokenSet)
	for _, s := range sets {
		for t := range s {
			out[t] = struct{}{}
		}
	}
	return out
}

// Sorted returns the tokens in lexical order.
func (s TokenSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for t := range s {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

// String renders the set as a sorted quoted list, e.g. ['slab', 'wall'].
func (s TokenSet) String() string {
	sorted := s.Sorted()
	var b strings.Builder
	b.WriteByte('[')
	for i, t := range sorted {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteByte('\'')
		b.WriteString(t)
		b.WriteByte('\'')
	}
	b.WriteByte(']')
	return b.String()
}
