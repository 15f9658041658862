package interfaces

import "time"

// TimeProvider supplies the current time used to stamp registrations and to evaluate leases.
// Injected so tests can move the clock past a lease instead of sleeping.
//
//go:generate moq -stub -out mock/time_provider.go -pkg mock . TimeProvider
type TimeProvider interface {
	Now() time.Time
}
