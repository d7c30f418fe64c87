package batch

// ItemStatus is the processing outcome of a single imported label.
type ItemStatus string

// Batch item status values.
const (
	StatusAdded  ItemStatus = "added"
	StatusExists ItemStatus = "exists"
	StatusError  ItemStatus = "error"
)

// Result is the outcome of importing one label.
type Result struct {
	label  string
	status ItemStatus
	err    error
}

// NewAdded creates a result for a label appended to the catalog.
func NewAdded(label string) Result { return Result{label: label, status: StatusAdded} }

// NewExists creates a result for a label that was already present.
func NewExists(label string) Result { return Result{label: label, status: StatusExists} }

// NewError creates a failed batch result.
func NewError(label string, err error) Result {
	return Result{label: label, status: StatusError, err: err}
}

// Label returns the imported label.
func (r Result) Label() string { return r.label }

// Status returns the processing outcome.
func (r Result) Status() ItemStatus { return r.status }

// Err returns the error, if any.
func (r Result) Err() error { return r.err }

// Summary counts results by status.
type Summary struct {
	Added  int
	Exists int
	Failed int
}

// Summarize counts the outcomes of a batch.
func Summarize(results []Result) Summary {
	var s Summary
	for _, r := range results {
		switch r.status {
		case StatusAdded:
			s.Added++
		case StatusExists:
			s.Exists++
		case StatusError:
			s.Failed++
		}
	}
	return s
}
