package iso8601

import "errors"

var (
	ErrInvalidDate = errors.New("invalid date")
)
