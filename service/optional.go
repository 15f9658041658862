package service

// Ptr returns a pointer to v, for optional fields such as Entry.LeaseSeconds.
func Ptr[T any](v T) *T {
	return &v
}

// Value dereferences p; nil gives the zero value.
func Value[T any](p *T) T {
	if p == nil {
		var zero T
		return zero
	}
	return *p
}

// Lease converts a configured lease in seconds to Entry.LeaseSeconds. Zero or less means no lease.
func Lease(seconds int) *int {
	if seconds <= 0 {
		return nil
	}
	return &seconds
}
