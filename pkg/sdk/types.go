package detailmatch

// NoMatch is the Detail reported when nothing clears the acceptance threshold.
const NoMatch = "None"

// Query describes one junction. Any field may be empty.
type Query struct {
	Host     string
	Adjacent string
	Exposure string
}

// Match is the best catalog entry for a query.
type Match struct {
	Detail     string  // catalog label, or NoMatch
	Confidence float64 // 0.0 when Matched is false
	Reason     string
	Matched    bool
}

// ImportStatus is the outcome for one imported label.
type ImportStatus string

// Import outcomes.
const (
	ImportAdded  ImportStatus = "added"
	ImportExists ImportStatus = "exists"
	ImportError  ImportStatus = "error"
)

// ImportResult reports what happened to one label of an import.
type ImportResult struct {
	Label  string
	Status ImportStatus
	Err    error
}

// HealthStatus represents the aggregated system health.
type HealthStatus struct {
	Status string            // "ok", "degraded", "error"
	Checks map[string]string // component → "ok"/"error"
}
