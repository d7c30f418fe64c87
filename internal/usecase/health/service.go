package health

import "context"

// Status represents the aggregated health status.
type Status string

const (
	// Healthy indicates all components are operational.
	Healthy Status = "ok"
	// Degraded indicates partial failure.
	Degraded Status = "degraded"
	// Unhealthy indicates the store itself is unreachable.
	Unhealthy Status = "error"
)

// CheckResult represents an individual component health check outcome.
type CheckResult string

const (
	// CheckOK indicates a passing health check.
	CheckOK CheckResult = "ok"
	// CheckError indicates a failing health check.
	CheckError CheckResult = "error"
)

// Component names in Report.Checks.
const (
	ComponentStore   = "store"
	ComponentCatalog = "catalog"
)

// Report aggregates health check results.
type Report struct {
	Status Status
	Checks map[string]CheckResult
}

// Service coordinates health checks.
type Service struct {
	db      DBPinger
	catalog CatalogReader
}

// New creates a Service. catalog can be nil.
func New(db DBPinger, catalog CatalogReader) *Service {
	return &Service{db: db, catalog: catalog}
}

// Check runs health checks against all components. An unreachable store
// makes the service unhealthy; any other failure degrades it.
func (s *Service) Check(ctx context.Context) Report {
	checks := make(map[string]CheckResult)

	if err := s.db.Ping(ctx); err != nil {
		checks[ComponentStore] = CheckError
	} else {
		checks[ComponentStore] = CheckOK
	}

	if s.catalog != nil {
		if _, err := s.catalog.List(ctx); err != nil {
			checks[ComponentCatalog] = CheckError
		} else {
			checks[ComponentCatalog] = CheckOK
		}
	}

	status := Healthy
	for _, v := range checks {
		if v == CheckError {
			status = Degraded
			break
		}
	}
	if checks[ComponentStore] == CheckError {
		status = Unhealthy
	}

	return Report{Status: status, Checks: checks}
}
