package match

import (
	"fmt"
	"strconv"
	"strings"

	dommatch "github.com/kailas-cloud/detailmatch/internal/domain/match"
	"github.com/kailas-cloud/detailmatch/internal/domain/query"
)

// noScore is below any reachable confidence, so the first label always wins
// over it and an empty catalog reports it back.
const noScore = -1.0

// Matcher picks the best label from an ordered catalog.
type Matcher struct {
	scorer *Scorer
}

// NewMatcher creates a matcher.
func NewMatcher(scorer *Scorer) *Matcher {
	return &Matcher{scorer: scorer}
}

// FindBest scores every label in order. A later label must score strictly
// higher to replace the current best, so ties go to the earliest entry.
// Below AcceptanceThreshold the result is NoMatch with zero confidence and
// the real best score only appears in the reason.
func (m *Matcher) FindBest(q query.Query, labels []string) dommatch.Result {
	best := noScore
	bestLabel := ""
	bestReason := ""

	for _, label := range labels {
		score, reason := m.scorer.Score(q, label)
		if score > best {
			best, bestLabel, bestReason = score, label, reason
		}
	}

	if best < AcceptanceThreshold {
		return dommatch.NotFound(fmt.Sprintf("No close match. Best was (%s): %s", formatScore(best), bestReason))
	}
	return dommatch.New(bestLabel, best, bestReason)
}

// formatScore prints the shortest representation with at least one
// fractional digit: 0.45, 0.1, 0.0, -1.0.
func formatScore(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
