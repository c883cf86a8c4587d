package health

import "context"

// Status represents the aggregated health status.
type Status string

const (
	// Healthy indicates all components are operational.
	Healthy Status = "ok"
	// Degraded indicates partial failure.
	Degraded Status = "degraded"
)

// CheckResult represents an individual component health check outcome.
type CheckResult string

const (
	// CheckOK indicates a passing health check.
	CheckOK CheckResult = "ok"
	// CheckError indicates a failing health check.
	CheckError CheckResult = "error"
)

// Report aggregates health check results.
type Report struct {
	Status      Status
	Checks      map[string]CheckResult
	Prompts     int
	Collections int
}

// Service coordinates health checks.
type Service struct {
	storage Pinger
	counter Counter
}

// New creates a Service. counter can be nil.
func New(storage Pinger, counter Counter) *Service {
	return &Service{storage: storage, counter: counter}
}

// Check runs health checks against all components.
func (s *Service) Check(ctx context.Context) Report {
	checks := make(map[string]CheckResult)

	if err := s.storage.Ping(ctx); err != nil {
		checks["storage"] = CheckError
	} else {
		checks["storage"] = CheckOK
	}

	status := Healthy
	for _, v := range checks {
		if v == CheckError {
			status = Degraded
			break
		}
	}

	r := Report{Status: status, Checks: checks}
	if s.counter != nil {
		r.Prompts, r.Collections = s.counter.Counts()
	}
	return r
}
