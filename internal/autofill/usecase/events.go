package usecase

import (
	"context"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"

	"meetpoll/pkg/gcalendar"
)

// fetchDayEvents returns the events of one calendar day, hitting the cache
// first. Provider calls are rate-limited and bounded by the per-call
// timeout.
func (uc *implUseCase) fetchDayEvents(
	ctx context.Context,
	client CalendarClient,
	cache *lru.Cache[string, []gcalendar.Event],
	date string,
) ([]gcalendar.Event, error) {
	if events, ok := cache.Get(date); ok {
		return events, nil
	}

	dayStart, dayEnd, err := uc.resolver.DayBounds(date)
	if err != nil {
		return nil, err
	}

	if err := uc.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	callCtx, cancel := context.WithTimeout(ctx, uc.cfg.CallTimeout)
	defer cancel()

	events, err := client.ListEvents(callCtx, gcalendar.ListEventsRequest{
		CalendarID: uc.cfg.CalendarID,
		TimeMin:    dayStart,
		TimeMax:    dayEnd,
		MaxResults: uc.cfg.MaxResults,
	})
	if err != nil {
		return nil, fmt.Errorf("list events for %s: %w", date, err)
	}

	cache.Add(date, events)
	return events, nil
}
