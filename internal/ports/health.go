package ports

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"
)

// ErrDuplicateChecker is returned when a checker name is registered twice.
var ErrDuplicateChecker = errors.New("duplicate health checker")

// HealthChecker is implemented by components that can report readiness.
// The content store registers one at start-up so /-/ready fails when the
// blog has nothing to serve.
type HealthChecker interface {
	// Name identifies the check in readiness responses. Must be unique.
	Name() string

	// Check returns nil when the component is healthy.
	Check(ctx context.Context) error
}

// HealthRegistry aggregates the readiness checks of all components.
type HealthRegistry interface {
	Register(checker HealthChecker) error
	CheckAll(ctx context.Context) *HealthResult
}

// HealthStatus is the state reported for a check or for the whole service.
type HealthStatus string

const (
	// HealthStatusHealthy means every check passed.
	HealthStatusHealthy HealthStatus = "healthy"

	// HealthStatusUnhealthy means at least one check failed.
	HealthStatusUnhealthy HealthStatus = "unhealthy"
)

// HealthResult is the aggregated outcome of CheckAll.
type HealthResult struct {
	Status    HealthStatus            `json:"status"`
	Checks    map[string]*CheckResult `json:"checks"`
	Timestamp time.Time               `json:"timestamp"`
}

// CheckResult is the outcome of a single check.
type CheckResult struct {
	Status   HealthStatus  `json:"status"`
	Message  string        `json:"message,omitempty"`
	Duration time.Duration `json:"duration"`
}

// Registry is the default, mutex-guarded HealthRegistry.
type Registry struct {
	mu       sync.RWMutex
	checkers []HealthChecker
}

// NewHealthRegistry returns an empty registry.
func NewHealthRegistry() *Registry {
	return &Registry{checkers: make([]HealthChecker, 0)}
}

// Register adds checker. Names must be unique.
func (r *Registry) Register(checker HealthChecker) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.checkers {
		if existing.Name() == checker.Name() {
			return fmt.Errorf("%w: %s", ErrDuplicateChecker, checker.Name())
		}
	}

	r.checkers = append(r.checkers, checker)

	return nil
}

// CheckAll runs every registered check concurrently and waits for all of
// them. The overall status is unhealthy if any single check fails.
func (r *Registry) CheckAll(ctx context.Context) *HealthResult {
	r.mu.RLock()
	checkers := append([]HealthChecker(nil), r.checkers...)
	r.mu.RUnlock()

	type named struct {
		name   string
		result *CheckResult
	}

	results := make(chan named, len(checkers))

	var wg sync.WaitGroup
	for _, checker := range checkers {
		wg.Add(1)

		go func(c HealthChecker) {
			defer wg.Done()

			start := time.Now()
			err := c.Check(ctx)

			res := &CheckResult{Status: HealthStatusHealthy, Duration: time.Since(start)}
			if err != nil {
				res.Status = HealthStatusUnhealthy
				res.Message = err.Error()
			}

			results <- named{name: c.Name(), result: res}
		}(checker)
	}

	wg.Wait()
	close(results)

	out := &HealthResult{
		Status:    HealthStatusHealthy,
		Checks:    make(map[string]*CheckResult, len(checkers)),
		Timestamp: time.Now(),
	}

	for n := range results {
		out.Checks[n.name] = n.result
		if n.result.Status == HealthStatusUnhealthy {
			out.Status = HealthStatusUnhealthy
		}
	}

	return out
}
