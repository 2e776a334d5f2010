package errors

import "errors"

var (
	ErrInvalidEntryInput = errors.New("ledger entry input is invalid")
)
