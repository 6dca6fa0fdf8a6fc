package conflict

import (
	"time"

	"meetpoll/pkg/dateutil"
	"meetpoll/pkg/gcalendar"
)

// DefaultSummary stands in for events the calendar returns without a title.
const DefaultSummary = "無題の予定"

// Analyzer resolves event intervals and aggregates overlap verdicts for
// candidate slots.
type Analyzer struct {
	resolver *dateutil.Resolver
}

// NewAnalyzer creates an Analyzer formatting and widening in the
// resolver's timezone.
func NewAnalyzer(resolver *dateutil.Resolver) *Analyzer {
	return &Analyzer{resolver: resolver}
}

// Analyze checks a candidate slot against a day's events and returns the
// aggregate overlap kind plus every conflicting event.
//
// All-day events widen to the full local day. Events whose start or end
// cannot be resolved are skipped. The aggregate kind starts at None, is set
// by the first conflicting event, and afterwards only a Complete overlap
// raises it.
func (a *Analyzer) Analyze(candidateStart, candidateEnd time.Time, events []gcalendar.Event) Analysis {
	conflicting := []ConflictEvent{}
	maxKind := OverlapNone

	for _, ev := range events {
		eventStart, eventEnd, ok := a.resolveInterval(ev)
		if !ok {
			continue
		}

		kind := Classify(candidateStart, candidateEnd, eventStart, eventEnd)
		if kind == OverlapNone {
			continue
		}

		summary := ev.Summary
		if summary == "" {
			summary = DefaultSummary
		}

		conflicting = append(conflicting, ConflictEvent{
			Summary: summary,
			Start:   a.resolver.FormatDisplay(eventStart),
			End:     a.resolver.FormatDisplay(eventEnd),
		})

		if kind == OverlapComplete || maxKind == OverlapNone {
			maxKind = kind
		}
	}

	return Analysis{Kind: maxKind, Events: conflicting}
}

// resolveInterval turns a calendar event's start/end into concrete instants.
// Timed events use the precise DateTime; all-day events widen their Date to
// local 00:00:00 and 23:59:59.
func (a *Analyzer) resolveInterval(ev gcalendar.Event) (time.Time, time.Time, bool) {
	start, ok := a.resolveBoundary(ev.Start, false)
	if !ok {
		return time.Time{}, time.Time{}, false
	}
	end, ok := a.resolveBoundary(ev.End, true)
	if !ok {
		return time.Time{}, time.Time{}, false
	}
	return start, end, true
}

func (a *Analyzer) resolveBoundary(et gcalendar.EventTime, endOfDay bool) (time.Time, bool) {
	if et.DateTime != "" {
		t, err := a.resolver.ParseInstant(et.DateTime)
		if err != nil {
			return time.Time{}, false
		}
		return t, true
	}

	if et.Date != "" {
		dayStart, dayEnd, err := a.resolver.DayBounds(et.Date)
		if err != nil {
			return time.Time{}, false
		}
		if endOfDay {
			return dayEnd, true
		}
		return dayStart, true
	}

	return time.Time{}, false
}
