package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"meetpoll/config"
	_ "meetpoll/docs" // Swagger docs
	autofillUC "meetpoll/internal/autofill/usecase"
	"meetpoll/internal/httpserver"
	"meetpoll/internal/middleware"
	"meetpoll/internal/model"
	pollGorm "meetpoll/internal/poll/repository/gorm"
	pollUC "meetpoll/internal/poll/usecase"
	"meetpoll/internal/session"
	"meetpoll/pkg/dateutil"
	"meetpoll/pkg/llmprovider"
	"meetpoll/pkg/log"
)

// @title       MeetPoll API
// @description Scheduling polls with calendar-based and LLM-based answer auto-fill.
// @version     1
// @host        localhost:8080
// @schemes     http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. Configuration
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	environment := model.EnvironmentFromString(cfg.Environment.Name)
	logger.Info(ctx, "Starting MeetPoll...")
	logger.Infof(ctx, "Environment: %s", environment)

	// 3. Timezone resolver
	resolver, err := dateutil.NewResolver(cfg.AutoFill.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.AutoFill.Timezone, err)
		resolver, _ = dateutil.NewResolver("UTC")
	}

	// 4. Session manager
	tokenTTL, err := time.ParseDuration(cfg.Session.TokenTTL)
	if err != nil {
		logger.Errorf(ctx, "Invalid session.token_ttl %q: %v", cfg.Session.TokenTTL, err)
		return
	}
	sessionManager, err := session.NewManager(cfg.Session.JWTSecret, tokenTTL)
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize session manager: %v", err)
		return
	}

	// 5. Poll domain
	dsn := cfg.Database.DSN
	if cfg.Database.Driver == "sqlite" {
		dsn = cfg.Database.Path
	}
	db, err := pollGorm.Open(cfg.Database.Driver, dsn)
	if err != nil {
		logger.Errorf(ctx, "Failed to open database: %v", err)
		return
	}
	pollRepo := pollGorm.New(logger, db)
	pollUseCase := pollUC.New(logger, pollRepo)

	// 6. LLM providers
	providers, err := llmprovider.InitializeProviders(&cfg.LLM)
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize LLM providers: %v", err)
		return
	}
	retryDelay, err := time.ParseDuration(cfg.LLM.RetryDelay)
	if err != nil {
		retryDelay = time.Second
	}
	maxTotalTimeout, err := time.ParseDuration(cfg.LLM.MaxTotalTimeout)
	if err != nil {
		maxTotalTimeout = time.Minute
	}
	llmManager := llmprovider.NewManager(providers, &llmprovider.Config{
		FallbackEnabled: cfg.LLM.FallbackEnabled,
		RetryAttempts:   cfg.LLM.RetryAttempts,
		RetryDelay:      retryDelay,
		MaxTotalTimeout: maxTotalTimeout,
	}, logger)

	// 7. AutoFill domain
	callTimeout, err := time.ParseDuration(cfg.AutoFill.CallTimeout)
	if err != nil {
		callTimeout = 15 * time.Second
	}
	autoFillUseCase := autofillUC.New(
		logger,
		sessionManager,
		autofillUC.GoogleCalendarFactory(),
		llmManager,
		resolver,
		autofillUC.Config{
			CalendarID:    cfg.GoogleCalendar.CalendarID,
			MaxResults:    int64(cfg.GoogleCalendar.MaxResults),
			BatchSize:     cfg.AutoFill.BatchSize,
			CallTimeout:   callTimeout,
			DayCacheSize:  cfg.AutoFill.DayCacheSize,
			RatePerSecond: cfg.AutoFill.RatePerSecond,
		},
	)

	// 8. HTTP server
	httpServer, err := httpserver.New(httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     string(environment),
		Middleware:      middleware.New(logger, sessionManager),
		PollUseCase:     pollUseCase,
		AutoFillUseCase: autoFillUseCase,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize HTTP server: %v", err)
		return
	}

	// 9. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Errorf(ctx, "Failed to run server: %v", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
