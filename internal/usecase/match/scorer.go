package match

import (
	"strconv"
	"strings"

	"github.com/kailas-cloud/detailmatch/internal/domain/query"
	"github.com/kailas-cloud/detailmatch/internal/domain/vocabulary"
)

// Scorer rates one catalog label against a query.
type Scorer struct {
	normalizer *Normalizer
	vocab      vocabulary.Vocabulary
}

// NewScorer creates a scorer over the given vocabulary.
func NewScorer(vocab vocabulary.Vocabulary) *Scorer {
	return &Scorer{normalizer: NewNormalizer(vocab), vocab: vocab}
}

// Normalizer returns the normalizer the scorer tokenizes with.
func (s *Scorer) Normalizer() *Normalizer { return s.normalizer }

// Score returns a confidence in [0, 1] rounded to two decimals and the
// clauses that produced it joined by "; ".
//
// Coverage is recall against the query: extra label tokens cost nothing.
func (s *Scorer) Score(q query.Query, label string) (float64, string) {
	host := s.normalizer.Normalize(q.Host())
	adjacent := s.normalizer.Normalize(q.Adjacent())
	exposure := s.normalizer.Normalize(q.Exposure())
	allInput := Union(host, adjacent, exposure)

	target := s.normalizer.Normalize(label)

	hostHits := host.Intersect(target)
	adjHits := adjacent.Intersect(target)
	expHits := exposure.Intersect(target)

	score := 0.0
	var reasons []string

	if len(hostHits) > 0 {
		// The explicit conversion rounds the product before the add, so no
		// platform fuses it into an FMA.
		score += float64(HostWeight * coverage(hostHits, host))
		reasons = append(reasons, "Host matches "+hostHits.String())
	}
	if len(adjHits) > 0 {
		score += float64(AdjacentWeight * coverage(adjHits, adjacent))
		reasons = append(reasons, "Adjacent matches "+adjHits.String())
	}
	if len(expHits) > 0 {
		score += ExposureBonus
		reasons = append(reasons, "Exposure matches")
	}

	inputFuncs := s.functional(allInput)
	targetFuncs := s.functional(target)

	switch {
	case len(inputFuncs) > 0:
		missing := inputFuncs.Difference(targetFuncs)
		if len(missing) == 0 {
			score += FunctionMatchedBonus
			reasons = append(reasons, "Functionality matched: "+inputFuncs.String())
		} else {
			score -= MissingFunctionPenalty
			reasons = append(reasons, "MISSING required function: "+missing.String())
		}
	case len(targetFuncs) > 0:
		score += SpecificDetailBonus
		reasons = append(reasons, "Note: Detail is specific to "+targetFuncs.String())
	default:
		score += NeutralFunctionBonus
	}

	return round2(clamp01(score)), strings.Join(reasons, "; ")
}

func (s *Scorer) functional(tokens TokenSet) TokenSet {
	out := make(TokenSet)
	for t := range tokens {
		if s.vocab.IsFunctional(t) {
			out[t] = struct{}{}
		}
	}
	return out
}

func coverage(hits, field TokenSet) float64 {
	return float64(len(hits)) / float64(max(len(field), 1))
}

func clamp01(v float64) float64 {
	return max(0.0, min(v, 1.0))
}

// round2 rounds to two decimals from the exact binary value, so 0.175
// (stored as 0.17499...) becomes 0.17 rather than 0.18.
func round2(v float64) float64 {
	r, _ := strconv.ParseFloat(strconv.FormatFloat(v, 'f', 2, 64), 64)
	return r
}
