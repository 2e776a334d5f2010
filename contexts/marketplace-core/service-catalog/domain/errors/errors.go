package errors

import "errors"

var (
	ErrInvalidServiceInput = errors.New("service input is invalid")
	ErrServiceNotFound     = errors.New("service not found")
)
