package autofill

import "errors"

// Domain-specific errors for the auto-fill package.
var (
	ErrUnauthenticated      = errors.New("no valid session token")
	ErrNoCandidates         = errors.New("no candidates to process")
	ErrClassificationFailed = errors.New("classification failed")
)
