package http

import (
	"meetpoll/internal/autofill"
	"meetpoll/pkg/log"
)

type handler struct {
	l  log.Logger
	uc autofill.UseCase
}

// New creates a new HTTP handler for the auto-fill domain.
func New(l log.Logger, uc autofill.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
