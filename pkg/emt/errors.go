package emt

import "fmt"

// DomainError reports a mathematically invalid solver input, such as a
// non-positive permittivity or a composition/permittivity pair that drives
// a closed-form denominator to zero. It aborts the single computation it
// occurs in; there is no shared state to corrupt.
type DomainError struct {
	Param  string
	Value  float64
	Reason string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("domain error: %s=%g: %s", e.Param, e.Value, e.Reason)
}
