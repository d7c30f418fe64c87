package match

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"

	"github.com/kailas-cloud/detailmatch/internal/domain/vocabulary"
)

// Normalizer turns free text into canonical tokens.
type Normalizer struct {
	vocab vocabulary.Vocabulary
}

// NewNormalizer creates a normalizer over the given vocabulary.
func NewNormalizer(vocab vocabulary.Vocabulary) *Normalizer {
	return &Normalizer{vocab: vocab}
}

// Normalize never fails; garbage input yields an empty set.
//
// Text is lowercased, hyphens and every other character outside [a-z0-9]
// become separators, stop-words are dropped and the rest is mapped through
// the synonym table. Compatibility characters such as "ﬁ" are separators
// too unless the vocabulary enables Unicode folding.
func (n *Normalizer) Normalize(text string) TokenSet {
	out := make(TokenSet)
	if text == "" {
		return out
	}

	if n.vocab.UnicodeFold() {
		text = norm.NFKC.String(text)
	}
	text = strings.ToLower(text)
	text = strings.ReplaceAll(text, "-", " ")
	text = strings.Map(keepTokenRune, text)

	for _, raw := range strings.Fields(text) {
		if n.vocab.IsStopWord(raw) {
			continue
		}
		out[n.vocab.Canonical(raw)] = struct{}{}
	}
	return out
}

func keepTokenRune(r rune) rune {
	switch {
	case r >= 'a' && r <= 'z', r >= '0' && r <= '9', unicode.IsSpace(r):
		return r
	default:
		return ' '
	}
}
