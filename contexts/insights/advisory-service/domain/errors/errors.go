package errors

import "errors"

var ErrEmptyAdvisoryInput = errors.New("advisory input is empty")
