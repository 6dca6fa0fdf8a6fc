package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"meetpoll/internal/autofill"
	"meetpoll/internal/middleware"
	"meetpoll/internal/poll"
	"meetpoll/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	mw middleware.Middleware

	pollUC     poll.UseCase
	autoFillUC autofill.UseCase
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	Middleware middleware.Middleware

	PollUseCase     poll.UseCase
	AutoFillUseCase autofill.UseCase
}

// New creates a new HTTPServer instance.
func New(cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           cfg.Logger,
		gin:         gin.Default(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		mw:          cfg.Middleware,
		pollUC:      cfg.PollUseCase,
		autoFillUC:  cfg.AutoFillUseCase,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.pollUC == nil {
		return errors.New("poll usecase is required")
	}
	if srv.autoFillUC == nil {
		return errors.New("autofill usecase is required")
	}
	return nil
}
