package fn

import "errors"

// Sentinel errors used by decorator constructors.
var (
	// ErrInvalidOption is wrapped by the panic raised when a decorator is
	// constructed with an out-of-range option (negative cache size, negative
	// shard count, negative throttle window).
	ErrInvalidOption = errors.New("fn: invalid option value")
)
