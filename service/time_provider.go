package service

import (
	"time"

	"mynaming/helpers"
	"mynaming/interfaces"
)

// timeProvider implements interfaces.TimeProvider over an injected now func.
// Built in cmd/mynaming with time.Now().UTC; tests pass a movable clock.
type timeProvider struct {
	now func() time.Time
}

// NewTimeProvider creates a TimeProvider that returns time via the given now func. Panics on nil now.
func NewTimeProvider(now func() time.Time) interfaces.TimeProvider {
	return &timeProvider{now: helpers.NilPanic(now, "service.time_provider.go: now is required")}
}

func (t *timeProvider) Now() time.Time {
	return t.now()
}
