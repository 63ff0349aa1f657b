package arr

import "errors"

// Sentinel errors carried by the panics of fail-fast helpers.
//
// Recover and match with [errors.Is]:
//
//	defer func() {
//	    if err, ok := recover().(error); ok && errors.Is(err, arr.ErrMethodNotFound) {
//	        // element lacks the method
//	    }
//	}()
var (
	// ErrMethodNotFound is raised by [InvokeMethod] when an element has no
	// exported method with the requested name.
	ErrMethodNotFound = errors.New("arr: method not found")
)
