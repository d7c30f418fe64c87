package detailmatch

import (
	"context"
	"fmt"
	"time"

	"github.com/kailas-cloud/detailmatch/internal/domain/query"
)

// Match returns the catalog entry that best fits the junction.
// A query that clears no entry yields Matched=false, Detail=NoMatch and a
// reason naming the best candidate's score.
func (c *Client) Match(ctx context.Context, q Query) (_ Match, err error) {
	start := time.Now()
	defer func() { c.obs.observe("match", start, err) }()

	res, err := c.matchSvc.FindBest(ctx, query.New(q.Host, q.Adjacent, q.Exposure))
	if err != nil {
		return Match{}, fmt.Errorf("match: %w", err)
	}
	m := Match{
		Detail:     res.Suggested(),
		Confidence: res.Confidence(),
		Reason:     res.Reason(),
		Matched:    res.Matched(),
	}
	c.obs.observeMatch(m)
	return m, nil
}
