package errors

import "errors"

var ErrInvalidAuditInput = errors.New("audit input is invalid")
