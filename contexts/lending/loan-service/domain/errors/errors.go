package errors

import "errors"

var (
	ErrInvalidLoanInput    = errors.New("loan input is invalid")
	ErrLoanNotFound        = errors.New("loan application not found")
	ErrInvalidLoanStatus   = errors.New("loan status is not in the allowed set")
	ErrInvalidPartnerInput = errors.New("partner input is invalid")
)
