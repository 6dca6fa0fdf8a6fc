package conflict

import (
	"testing"
	"time"
)

func mustParse(t *testing.T, s string) time.Time {
	t.Helper()
	ts, err := time.Parse(time.RFC3339, s)
	if err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}
	return ts
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name           string
		candidateStart string
		candidateEnd   string
		eventStart     string
		eventEnd       string
		want           OverlapKind
	}{
		{
			name:           "event entirely after candidate",
			candidateStart: "2025-04-29T14:00:00+09:00",
			candidateEnd:   "2025-04-29T17:00:00+09:00",
			eventStart:     "2025-04-29T19:00:00+09:00",
			eventEnd:       "2025-04-29T22:00:00+09:00",
			want:           OverlapNone,
		},
		{
			name:           "event entirely before candidate",
			candidateStart: "2025-04-29T14:00:00+09:00",
			candidateEnd:   "2025-04-29T17:00:00+09:00",
			eventStart:     "2025-04-29T08:00:00+09:00",
			eventEnd:       "2025-04-29T10:00:00+09:00",
			want:           OverlapNone,
		},
		{
			name:           "event ends exactly at candidate start",
			candidateStart: "2025-04-29T14:00:00+09:00",
			candidateEnd:   "2025-04-29T17:00:00+09:00",
			eventStart:     "2025-04-29T12:00:00+09:00",
			eventEnd:       "2025-04-29T14:00:00+09:00",
			want:           OverlapNone,
		},
		{
			name:           "candidate ends exactly at event start",
			candidateStart: "2025-04-29T14:00:00+09:00",
			candidateEnd:   "2025-04-29T17:00:00+09:00",
			eventStart:     "2025-04-29T17:00:00+09:00",
			eventEnd:       "2025-04-29T19:00:00+09:00",
			want:           OverlapNone,
		},
		{
			name:           "candidate fully inside event",
			candidateStart: "2025-04-23T10:00:00+09:00",
			candidateEnd:   "2025-04-23T11:00:00+09:00",
			eventStart:     "2025-04-23T09:00:00+09:00",
			eventEnd:       "2025-04-23T12:00:00+09:00",
			want:           OverlapComplete,
		},
		{
			name:           "exact same interval",
			candidateStart: "2025-04-23T10:00:00+09:00",
			candidateEnd:   "2025-04-23T11:00:00+09:00",
			eventStart:     "2025-04-23T10:00:00+09:00",
			eventEnd:       "2025-04-23T11:00:00+09:00",
			want:           OverlapComplete,
		},
		{
			name:           "candidate starts before event",
			candidateStart: "2025-04-30T14:00:00+09:00",
			candidateEnd:   "2025-04-30T17:00:00+09:00",
			eventStart:     "2025-04-30T16:00:00+09:00",
			eventEnd:       "2025-04-30T18:00:00+09:00",
			want:           OverlapPartial,
		},
		{
			name:           "candidate ends after event",
			candidateStart: "2025-04-30T14:00:00+09:00",
			candidateEnd:   "2025-04-30T17:00:00+09:00",
			eventStart:     "2025-04-30T13:00:00+09:00",
			eventEnd:       "2025-04-30T15:00:00+09:00",
			want:           OverlapPartial,
		},
		{
			name:           "event fully inside candidate",
			candidateStart: "2025-04-30T09:00:00+09:00",
			candidateEnd:   "2025-04-30T18:00:00+09:00",
			eventStart:     "2025-04-30T12:00:00+09:00",
			eventEnd:       "2025-04-30T13:00:00+09:00",
			want:           OverlapPartial,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(
				mustParse(t, tt.candidateStart), mustParse(t, tt.candidateEnd),
				mustParse(t, tt.eventStart), mustParse(t, tt.eventEnd))
			if got != tt.want {
				t.Errorf("Classify() = %v, want %v", got, tt.want)
			}
		})
	}
}
