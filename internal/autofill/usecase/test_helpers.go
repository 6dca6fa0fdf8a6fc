package usecase

import (
	"context"
	"testing"
	"time"

	"meetpoll/internal/session"
	"meetpoll/pkg/dateutil"
	"meetpoll/pkg/gcalendar"
	"meetpoll/pkg/llmprovider"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// fakeCalendar is a CalendarClient with a pluggable ListEvents.
type fakeCalendar struct {
	listEventsFunc func(ctx context.Context, req gcalendar.ListEventsRequest) ([]gcalendar.Event, error)
	calls          []gcalendar.ListEventsRequest
}

func (f *fakeCalendar) ListEvents(ctx context.Context, req gcalendar.ListEventsRequest) ([]gcalendar.Event, error) {
	f.calls = append(f.calls, req)
	if f.listEventsFunc == nil {
		return nil, nil
	}
	return f.listEventsFunc(ctx, req)
}

func fixedCalendarFactory(c CalendarClient) CalendarFactory {
	return func(ctx context.Context, accessToken string) (CalendarClient, error) {
		return c, nil
	}
}

// fakeProvider is an llmprovider.Provider with a pluggable response.
type fakeProvider struct {
	generateFunc func(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
	calls        []*llmprovider.Request
}

func (f *fakeProvider) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	f.calls = append(f.calls, req)
	return f.generateFunc(ctx, req)
}

func (f *fakeProvider) Name() string  { return "fake" }
func (f *fakeProvider) Model() string { return "fake-model" }

func newTestManager(p llmprovider.Provider) *llmprovider.Manager {
	return llmprovider.NewManager([]llmprovider.Provider{p}, &llmprovider.Config{
		FallbackEnabled: false,
		RetryAttempts:   1,
	}, &mockLogger{})
}

func newTestSession(t *testing.T) (*session.Manager, string) {
	t.Helper()
	m, err := session.NewManager("test-secret", time.Hour)
	if err != nil {
		t.Fatalf("session.NewManager: %v", err)
	}
	token, err := m.Issue(session.Token{AccessToken: "ya29.test"})
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	return m, token
}

func newTestUseCase(t *testing.T, calendar CalendarClient, provider llmprovider.Provider, cfg Config) (*implUseCase, string) {
	t.Helper()
	sess, token := newTestSession(t)
	resolver, err := dateutil.NewResolver("Asia/Tokyo")
	if err != nil {
		t.Fatalf("NewResolver: %v", err)
	}
	var mgr *llmprovider.Manager
	if provider != nil {
		mgr = newTestManager(provider)
	}
	if cfg.RatePerSecond <= 0 {
		cfg.RatePerSecond = 1000 // keep tests fast
	}
	return New(&mockLogger{}, sess, fixedCalendarFactory(calendar), mgr, resolver, cfg), token
}
