package http

import (
	"meetpoll/internal/poll"
	"meetpoll/pkg/log"
)

type handler struct {
	l  log.Logger
	uc poll.UseCase
}

// New creates a new HTTP handler for the poll domain.
func New(l log.Logger, uc poll.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
