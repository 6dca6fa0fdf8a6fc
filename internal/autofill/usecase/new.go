package usecase

import (
	"context"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/time/rate"

	"meetpoll/internal/conflict"
	"meetpoll/internal/session"
	"meetpoll/pkg/dateutil"
	"meetpoll/pkg/gcalendar"
	"meetpoll/pkg/llmprovider"
	pkgLog "meetpoll/pkg/log"
)

// CalendarClient is the slice of the calendar provider the auto-fill flows
// consume.
type CalendarClient interface {
	ListEvents(ctx context.Context, req gcalendar.ListEventsRequest) ([]gcalendar.Event, error)
}

// CalendarFactory builds a CalendarClient acting as the user behind the
// given access token. One client is built per invocation.
type CalendarFactory func(ctx context.Context, accessToken string) (CalendarClient, error)

// GoogleCalendarFactory is the production CalendarFactory.
func GoogleCalendarFactory() CalendarFactory {
	return func(ctx context.Context, accessToken string) (CalendarClient, error) {
		return gcalendar.NewClientFromToken(ctx, accessToken)
	}
}

// Config tunes the auto-fill pipeline.
type Config struct {
	CalendarID    string
	MaxResults    int64
	BatchSize     int
	CallTimeout   time.Duration
	DayCacheSize  int
	RatePerSecond float64
}

type implUseCase struct {
	l           pkgLog.Logger
	session     *session.Manager
	newCalendar CalendarFactory
	llm         *llmprovider.Manager
	resolver    *dateutil.Resolver
	analyzer    *conflict.Analyzer
	responder   *conflict.Responder
	limiter     *rate.Limiter
	cfg         Config
}

// New creates a new auto-fill UseCase instance.
func New(
	l pkgLog.Logger,
	sess *session.Manager,
	newCalendar CalendarFactory,
	llm *llmprovider.Manager,
	resolver *dateutil.Resolver,
	cfg Config,
) *implUseCase {
	if cfg.CalendarID == "" {
		cfg.CalendarID = gcalendar.DefaultCalendarID
	}
	if cfg.MaxResults <= 0 {
		cfg.MaxResults = gcalendar.DefaultMaxResults
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 3
	}
	if cfg.CallTimeout <= 0 {
		cfg.CallTimeout = 15 * time.Second
	}
	if cfg.DayCacheSize <= 0 {
		cfg.DayCacheSize = 128
	}
	if cfg.RatePerSecond <= 0 {
		cfg.RatePerSecond = 2
	}

	return &implUseCase{
		l:           l,
		session:     sess,
		newCalendar: newCalendar,
		llm:         llm,
		resolver:    resolver,
		analyzer:    conflict.NewAnalyzer(resolver),
		responder:   conflict.NewResponder(resolver),
		limiter:     rate.NewLimiter(rate.Limit(cfg.RatePerSecond), 1),
		cfg:         cfg,
	}
}

// newDayCache builds the per-invocation day-events cache so one invocation
// never refetches the same calendar day.
func (uc *implUseCase) newDayCache() (*lru.Cache[string, []gcalendar.Event], error) {
	return lru.New[string, []gcalendar.Event](uc.cfg.DayCacheSize)
}
