package ir

import "errors"

var (
	// ErrUnsupportedValue reports a value outside the supported variants
	// and their plain Go source representations.
	ErrUnsupportedValue = errors.New("unsupported value")
)
