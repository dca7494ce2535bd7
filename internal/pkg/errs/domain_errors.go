package errs

import "errors"

// Cross-cutting sentinel errors shared by usecase layers. Component-specific
// sentinels live next to their usecases.
var (
	ErrNotFound        = errors.New("not found")
	ErrStateConflict   = errors.New("operation invalid for current state")
	ErrValidation      = errors.New("validation error")
	ErrExternalService = errors.New("external service failure")
)
