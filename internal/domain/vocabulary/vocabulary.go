// Package vocabulary holds the immutable word tables that drive normalization
// and scoring: synonyms, stop-words and functional keywords.
package vocabulary

import (
	"fmt"
	"sort"
	"strings"

	"github.com/kailas-cloud/detailmatch/internal/domain"
)

// Vocabulary is a read-only set of tables. The zero value is empty and valid:
// every token passes through unchanged and nothing is functional.
type Vocabulary struct {
	synonyms   map[string]string
	stopWords  map[string]struct{}
	functional map[string]struct{}
	// unicodeFold enables NFKC compatibility folding before tokenizing.
	unicodeFold bool
}

// New validates and copies the tables. Entries are lowercased and trimmed.
//
// A canonical synonym target must be a plain token that is neither a
// stop-word nor itself remapped, otherwise re-normalizing canonical text
// would change the token set.
func New(synonyms map[string]string, stopWords, functional []string) (Vocabulary, error) {
	v := Vocabulary{
		synonyms:   make(map[string]string, len(synonyms)),
		stopWords:  make(map[string]struct{}, len(stopWords)),
		functional: make(map[string]struct{}, len(functional)),
	}

	for _, w := range stopWords {
		w = clean(w)
		if w == "" {
			return Vocabulary{}, fmt.Errorf("%w: empty stop-word", domain.ErrInvalidVocabulary)
		}
		// The literal hyphen is kept for parity with the built-in table;
		// it never survives tokenizing and so never matches.
		if !isToken(w) && w != "-" {
			return Vocabulary{}, fmt.Errorf("%w: stop-word %q is not a token", domain.ErrInvalidVocabulary, w)
		}
		v.stopWords[w] = struct{}{}
	}

	for raw, canonical := range synonyms {
		raw, canonical = clean(raw), clean(canonical)
		if raw == "" {
			return Vocabulary{}, fmt.Errorf("%w: empty synonym key", domain.ErrInvalidVocabulary)
		}
		if !isToken(raw) {
			return Vocabulary{}, fmt.Errorf("%w: synonym key %q is not a token", domain.ErrInvalidVocabulary, raw)
		}
		if !isToken(canonical) {
			return Vocabulary{}, fmt.Errorf("%w: synonym %q maps to non-token %q",
				domain.ErrInvalidVocabulary, raw, canonical)
		}
		v.synonyms[raw] = canonical
	}
	for raw, canonical := range v.synonyms {
		if _, stop := v.stopWords[canonical]; stop {
			return Vocabulary{}, fmt.Errorf("%w: synonym %q maps to stop-word %q",
				domain.ErrInvalidVocabulary, raw, canonical)
		}
		if next, ok := v.synonyms[canonical]; ok && next != canonical {
			return Vocabulary{}, fmt.Errorf("%w: synonym chain %q -> %q -> %q",
				domain.ErrInvalidVocabulary, raw, canonical, next)
		}
	}

	for _, w := range functional {
		w = clean(w)
		if !isToken(w) {
			return Vocabulary{}, fmt.Errorf("%w: functional keyword %q is not a token",
				domain.ErrInvalidVocabulary, w)
		}
		v.functional[w] = struct{}{}
	}

	return v, nil
}

// Canonical maps a raw token through the synonym table (identity if absent).
func (v Vocabulary) Canonical(token string) string {
	if c, ok := v.synonyms[token]; ok {
		return c
	}
	return token
}

// IsStopWord reports whether the token is dropped during normalization.
func (v Vocabulary) IsStopWord(token string) bool {
	_, ok := v.stopWords[token]
	return ok
}

// IsFunctional reports whether the token is a functional keyword.
func (v Vocabulary) IsFunctional(token string) bool {
	_, ok := v.functional[token]
	return ok
}

// WithUnicodeFold returns a copy that folds compatibility characters
// (ligatures, full-width letters, superscripts) to ASCII before tokenizing.
// Off by default: without it such characters act as separators.
func (v Vocabulary) WithUnicodeFold(on bool) Vocabulary {
	v.unicodeFold = on
	return v
}

// UnicodeFold reports whether compatibility folding is enabled.
func (v Vocabulary) UnicodeFold() bool { return v.unicodeFold }

// Synonyms returns a copy of the synonym table.
func (v Vocabulary) Synonyms() map[string]string {
	out := make(map[string]string, len(v.synonyms))
	for k, c := range v.synonyms {
		out[k] = c
	}
	return out
}

// StopWords returns the stop-words sorted.
func (v Vocabulary) StopWords() []string { return sortedKeys(v.stopWords) }

// FunctionalKeywords returns the functional keywords sorted.
func (v Vocabulary) FunctionalKeywords() []string { return sortedKeys(v.functional) }

func clean(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// isToken reports whether s is a non-empty run of [a-z0-9].
func isToken(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') {
			return false
		}
	}
	return true
}

func sortedKeys(m map[string]struct{}) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
