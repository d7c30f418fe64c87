package match

// NoMatch is the suggested detail reported when no label clears the threshold.
const NoMatch = "None"

// Result is the outcome of matching a query against the catalog.
type Result struct {
	suggested  string
	confidence float64
	reason     string
	matched    bool
}

// New creates a match result.
func New(suggested string, confidence float64, reason string) Result {
	return Result{suggested: suggested, confidence: confidence, reason: reason, matched: true}
}

// NotFound creates a below-threshold result. Confidence is always zero.
func NotFound(reason string) Result {
	return Result{suggested: NoMatch, reason: reason}
}

// Suggested returns the best label, or NoMatch.
func (r Result) Suggested() string { return r.suggested }

// Confidence returns the clamped, rounded score.
func (r Result) Confidence() float64 { return r.confidence }

// Reason returns the human-readable justification.
func (r Result) Reason() string { return r.reason }

// Matched reports whether a catalog label was suggested. A label that is
// literally "None" still counts as a match.
func (r Result) Matched() bool { return r.matched }
