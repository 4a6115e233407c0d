package config

import "errors"

var (
	// ErrInvalidValue indicates a config key held a value of the wrong
	// type/shape (e.g. a threshold that is neither "auto" nor a positive
	// integer).
	ErrInvalidValue = errors.New("config: invalid value")

	// ErrInvariantViolated indicates a fully-resolved set of thresholds
	// failed the strict-ordering invariant. Only possible for manually
	// specified (non-auto) thresholds; auto-derived thresholds are
	// self-correcting (see Resolve).
	ErrInvariantViolated = errors.New("config: resolved thresholds violate ordering invariant")

	// ErrMountRequired indicates no mount point was configured.
	ErrMountRequired = errors.New("config: mount is required")
)
