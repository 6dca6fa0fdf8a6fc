package middleware

import (
	"meetpoll/internal/session"
	"meetpoll/pkg/log"
)

type Middleware struct {
	l       log.Logger
	session *session.Manager
}

func New(l log.Logger, sess *session.Manager) Middleware {
	return Middleware{
		l:       l,
		session: sess,
	}
}
