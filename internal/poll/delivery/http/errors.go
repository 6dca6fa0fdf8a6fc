package http

import (
	"errors"

	"meetpoll/internal/poll"
	pkgErrors "meetpoll/pkg/errors"
)

// mapError translates domain errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, poll.ErrRequestNotFound):
		return pkgErrors.NewHTTPError(404, "poll not found")
	case errors.Is(err, poll.ErrAnswerNotFound):
		return pkgErrors.NewHTTPError(404, "answer not found")
	case errors.Is(err, poll.ErrEmptyTitle):
		return pkgErrors.NewHTTPError(400, "title must not be empty")
	case errors.Is(err, poll.ErrInvalidType):
		return pkgErrors.NewHTTPError(400, "type must be meal or trip")
	case errors.Is(err, poll.ErrNoCandidates):
		return pkgErrors.NewHTTPError(400, "at least one candidate is required")
	case errors.Is(err, poll.ErrInvalidStatus):
		return pkgErrors.NewHTTPError(400, "status must be accepted, pending or rejected")
	default:
		return err
	}
}
