package gcalendar

import "time"

const (
	// DefaultCalendarID is the calendar queried when none is given.
	DefaultCalendarID = "primary"

	// DefaultMaxResults caps one events.list page. No pagination is
	// performed beyond this; days with more events are truncated.
	DefaultMaxResults = 100
)

// EventTime mirrors the Calendar API's start/end shape: timed events carry
// DateTime (RFC3339), all-day events carry only Date ("2006-01-02").
type EventTime struct {
	DateTime string
	Date     string
}

// Event is a read-only calendar entry as returned by events.list.
// Start/End keep the raw DateTime-or-Date split so callers decide how to
// widen all-day events.
type Event struct {
	ID       string
	Summary  string
	Location string
	Start    EventTime
	End      EventTime
}

// ListEventsRequest is the input for listing calendar events.
type ListEventsRequest struct {
	CalendarID string
	TimeMin    time.Time
	TimeMax    time.Time
	MaxResults int64
}
