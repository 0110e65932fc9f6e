package b64

import "errors"

var (
	ErrDataEncoding = errors.New("invalid data encoding")
)
