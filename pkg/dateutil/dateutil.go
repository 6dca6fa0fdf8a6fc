package dateutil

import (
	"fmt"
	"time"
)

const (
	// DisplayLayout is the localized datetime rendering used in
	// respondent-facing comments, e.g. "2025/4/23 15:30:00".
	DisplayLayout = "2006/1/2 15:04:05"

	// DateLayout is the calendar-day form, e.g. "2025-04-23".
	DateLayout = "2006-01-02"

	dateTimeNoZoneLayout = "2006-01-02T15:04:05"
)

// Resolver parses and formats instants within a fixed IANA timezone.
type Resolver struct {
	location *time.Location
}

// NewResolver creates a Resolver for the given IANA timezone string,
// e.g. "Asia/Tokyo".
func NewResolver(timezone string) (*Resolver, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Resolver{location: loc}, nil
}

// Location returns the resolver's timezone.
func (r *Resolver) Location() *time.Location {
	return r.location
}

// ParseInstant parses an ISO-8601 datetime string. Offset-carrying strings
// parse as-is; zone-less datetimes and bare dates resolve in the
// resolver's timezone.
func (r *Resolver) ParseInstant(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	if t, err := time.ParseInLocation(dateTimeNoZoneLayout, s, r.location); err == nil {
		return t, nil
	}
	if t, err := time.ParseInLocation(DateLayout, s, r.location); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("unparseable instant %q", s)
}

// DayBounds widens a calendar day ("2025-04-23") to its full local range
// 00:00:00 through 23:59:59. All-day calendar events and per-day event
// fetch windows both use this widening.
func (r *Resolver) DayBounds(dateStr string) (time.Time, time.Time, error) {
	d, err := time.ParseInLocation(DateLayout, dateStr, r.location)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid date %q: %w", dateStr, err)
	}
	start := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, r.location)
	end := time.Date(d.Year(), d.Month(), d.Day(), 23, 59, 59, 0, r.location)
	return start, end, nil
}

// Day extracts the calendar-day portion of an instant in the resolver's
// timezone, e.g. "2025-04-23".
func (r *Resolver) Day(t time.Time) string {
	return t.In(r.location).Format(DateLayout)
}

// FormatDisplay renders an instant as a localized display string.
func (r *Resolver) FormatDisplay(t time.Time) string {
	return t.In(r.location).Format(DisplayLayout)
}

// FormatMonthDayTime renders an instant as "4月23日 15:30".
func (r *Resolver) FormatMonthDayTime(t time.Time) string {
	lt := t.In(r.location)
	return fmt.Sprintf("%d月%d日 %02d:%02d", int(lt.Month()), lt.Day(), lt.Hour(), lt.Minute())
}

// ReformatDisplay re-renders a display string as "4月23日 15:30".
// Unparseable input comes back unchanged so comment rendering never fails
// on odd calendar data.
func (r *Resolver) ReformatDisplay(s string) string {
	for _, layout := range []string{DisplayLayout, time.RFC3339, dateTimeNoZoneLayout} {
		if t, err := time.ParseInLocation(layout, s, r.location); err == nil {
			return r.FormatMonthDayTime(t)
		}
	}
	return s
}
