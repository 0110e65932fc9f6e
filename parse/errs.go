package parse

import "errors"

var (
	ErrMalformedDocument    = errors.New("malformed document")
	ErrUnknownTag           = errors.New("unknown tag")
	ErrIncompleteDictionary = errors.New("incomplete dictionary")
	ErrMissingKeyTag        = errors.New("missing key tag")
	ErrInvalidNumber        = errors.New("invalid number")
)
