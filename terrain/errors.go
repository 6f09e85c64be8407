package terrain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidParameter is returned before any work is done when a
	// parameter is outside its domain.
	ErrInvalidParameter = errors.New("terrain: invalid parameter")

	// ErrResourceExhaustion is returned when the requested grid is too large
	// to allocate or to address with 32-bit indices.
	ErrResourceExhaustion = errors.New("terrain: resource exhaustion")

	// ErrGridSize is returned when a buffer handed between pipeline stages
	// does not match the grid dimensions.
	ErrGridSize = errors.New("terrain: grid size mismatch")
)

// ParamError describes which parameter was rejected.
type ParamError struct {
	Field  string
	Value  any
	Reason string
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("terrain: invalid %s (%v): %s", e.Field, e.Value, e.Reason)
}

// Is lets errors.Is(err, ErrInvalidParameter) match.
func (e *ParamError) Is(target error) bool {
	return target == ErrInvalidParameter
}
