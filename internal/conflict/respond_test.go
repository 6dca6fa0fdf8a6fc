package conflict

import (
	"reflect"
	"strings"
	"testing"

	"meetpoll/pkg/dateutil"
	"meetpoll/pkg/gcalendar"
)

func newTestResponder(t *testing.T) *Responder {
	t.Helper()
	resolver, err := dateutil.NewResolver("Asia/Tokyo")
	if err != nil {
		t.Fatalf("NewResolver: %v", err)
	}
	return NewResponder(resolver)
}

func TestSynthesize(t *testing.T) {
	r := newTestResponder(t)

	t.Run("no conflict", func(t *testing.T) {
		got := r.Synthesize(OverlapNone, nil)

		if got.Type != ResponseGood {
			t.Errorf("Type = %v, want %v", got.Type, ResponseGood)
		}
		if !strings.Contains(got.Comment, "参加可能") {
			t.Errorf("Comment = %q, want attendance-ok message", got.Comment)
		}
	})

	t.Run("partial conflict lists the event", func(t *testing.T) {
		got := r.Synthesize(OverlapPartial, []ConflictEvent{
			{Summary: "チームミーティング", Start: "2025/4/30 16:00:00", End: "2025/4/30 18:00:00"},
		})

		if got.Type != ResponseConditional {
			t.Errorf("Type = %v, want %v", got.Type, ResponseConditional)
		}
		if !strings.Contains(got.Comment, "1件の予定と一部重複") {
			t.Errorf("Comment = %q, want partial-overlap count", got.Comment)
		}
		if !strings.Contains(got.Comment, "チームミーティング") {
			t.Errorf("Comment = %q, want event summary", got.Comment)
		}
		if !strings.Contains(got.Comment, "・チームミーティング（4月30日 16:00〜4月30日 18:00）") {
			t.Errorf("Comment = %q, want compact bullet line", got.Comment)
		}
	})

	t.Run("complete conflict lists every event", func(t *testing.T) {
		got := r.Synthesize(OverlapComplete, []ConflictEvent{
			{Summary: "出張", Start: "2025/4/23 00:00:00", End: "2025/4/23 23:59:59"},
			{Summary: "歯医者", Start: "2025/4/23 10:00:00", End: "2025/4/23 11:00:00"},
		})

		if got.Type != ResponseBad {
			t.Errorf("Type = %v, want %v", got.Type, ResponseBad)
		}
		if !strings.Contains(got.Comment, "2件の予定と完全に重複") {
			t.Errorf("Comment = %q, want complete-overlap count", got.Comment)
		}
		for _, summary := range []string{"出張", "歯医者"} {
			if !strings.Contains(got.Comment, summary) {
				t.Errorf("Comment = %q, missing summary %q", got.Comment, summary)
			}
		}
	})

	t.Run("unparseable display string rendered as-is", func(t *testing.T) {
		got := r.Synthesize(OverlapPartial, []ConflictEvent{
			{Summary: "謎の予定", Start: "???", End: "???"},
		})

		if !strings.Contains(got.Comment, "・謎の予定（???〜???）") {
			t.Errorf("Comment = %q, want raw display strings", got.Comment)
		}
	})

	t.Run("idempotent", func(t *testing.T) {
		events := []ConflictEvent{
			{Summary: "会議", Start: "2025/4/30 16:00:00", End: "2025/4/30 18:00:00"},
		}
		first := r.Synthesize(OverlapPartial, events)
		second := r.Synthesize(OverlapPartial, events)
		if !reflect.DeepEqual(first, second) {
			t.Errorf("repeated Synthesize diverged:\nfirst:  %+v\nsecond: %+v", first, second)
		}
	})
}

func TestAnalyzeSynthesizeEndToEnd(t *testing.T) {
	a := newTestAnalyzer(t)
	r := newTestResponder(t)

	tests := []struct {
		name           string
		candidateStart string
		candidateEnd   string
		event          func(t *testing.T) (start, end string, allDay bool, date string)
		wantType       ResponseType
	}{
		{
			name:           "all-day event swallows candidate",
			candidateStart: "2025-04-23T10:00:00+09:00",
			candidateEnd:   "2025-04-23T11:00:00+09:00",
			event: func(t *testing.T) (string, string, bool, string) {
				return "", "", true, "2025-04-23"
			},
			wantType: ResponseBad,
		},
		{
			name:           "late-afternoon event overlaps tail",
			candidateStart: "2025-04-30T14:00:00+09:00",
			candidateEnd:   "2025-04-30T17:00:00+09:00",
			event: func(t *testing.T) (string, string, bool, string) {
				return "2025-04-30T16:00:00+09:00", "2025-04-30T18:00:00+09:00", false, ""
			},
			wantType: ResponseConditional,
		},
		{
			name:           "evening event misses candidate",
			candidateStart: "2025-04-29T14:00:00+09:00",
			candidateEnd:   "2025-04-29T17:00:00+09:00",
			event: func(t *testing.T) (string, string, bool, string) {
				return "2025-04-29T19:00:00+09:00", "2025-04-29T22:00:00+09:00", false, ""
			},
			wantType: ResponseGood,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end, allDay, date := tt.event(t)
			var ev = timedEvent("既存の予定", start, end)
			if allDay {
				ev = allDayEvent("既存の予定", date)
			}

			analysis := a.Analyze(
				mustParse(t, tt.candidateStart),
				mustParse(t, tt.candidateEnd),
				[]gcalendar.Event{ev})
			resp := r.Synthesize(analysis.Kind, analysis.Events)

			if resp.Type != tt.wantType {
				t.Errorf("Type = %v, want %v", resp.Type, tt.wantType)
			}
		})
	}
}
