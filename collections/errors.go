package collections

import "errors"

// ErrMixinNotFound is returned when an unregistered mixin name is called.
var ErrMixinNotFound = errors.New("collections: mixin not found")
