package errors

import "errors"

var (
	ErrInvalidBumpInput = errors.New("state analytics delta is invalid")
	ErrStateNotTracked  = errors.New("state has no recorded activity")
)
