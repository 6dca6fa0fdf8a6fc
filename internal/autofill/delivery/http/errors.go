package http

import (
	"errors"

	"meetpoll/internal/autofill"
	pkgErrors "meetpoll/pkg/errors"
)

// mapError translates domain errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, autofill.ErrUnauthenticated):
		return pkgErrors.NewHTTPError(401, "session is missing or expired")
	case errors.Is(err, autofill.ErrNoCandidates):
		return pkgErrors.NewHTTPError(400, "no candidates to process")
	case errors.Is(err, autofill.ErrClassificationFailed):
		return pkgErrors.NewHTTPError(502, "schedule classification failed")
	default:
		return err
	}
}
