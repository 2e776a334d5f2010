package errors

import "errors"

var (
	ErrInvalidRequestInput = errors.New("service request input is invalid")

	// ErrRequestNotFound covers a missing request, a request owned by a
	// different agent, and a request that already completed. Callers cannot
	// distinguish the three; all are a safe no-op to retry against.
	ErrRequestNotFound = errors.New("request not found or already completed")

	// ErrServiceMissing means the catalog no longer has the service the
	// request references. The request stays in_progress and is retryable
	// once the catalog is fixed.
	ErrServiceMissing = errors.New("service referenced by the request is missing")
)
