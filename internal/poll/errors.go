package poll

import "errors"

// Domain-specific errors for the poll package.
var (
	ErrRequestNotFound = errors.New("request not found")
	ErrAnswerNotFound  = errors.New("answer not found")
	ErrInvalidType     = errors.New("invalid request type")
	ErrNoCandidates    = errors.New("request needs at least one candidate")
	ErrInvalidStatus   = errors.New("invalid candidate status")
	ErrEmptyTitle      = errors.New("request title is empty")
)
