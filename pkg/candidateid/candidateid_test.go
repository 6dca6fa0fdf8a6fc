package candidateid_test

import (
	"strings"
	"testing"
	"time"

	"meetpoll/pkg/candidateid"
)

func TestFromDates(t *testing.T) {
	start := time.Date(2025, 4, 23, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 4, 25, 0, 0, 0, 0, time.UTC)

	got := candidateid.FromDates(start, end)
	if got != "2025-04-23_2025-04-25" {
		t.Errorf("got %s", got)
	}
}

func TestFromCandidate(t *testing.T) {
	t.Run("Date Range Candidate", func(t *testing.T) {
		got := candidateid.FromCandidate(candidateid.Candidate{
			Start: "2025-04-23T00:00:00Z",
			End:   "2025-04-25T00:00:00Z",
		}, 0)
		if got != "2025-04-23_2025-04-25" {
			t.Errorf("got %s", got)
		}
	})

	t.Run("Hash Fallback Is Stable And Index-Suffixed", func(t *testing.T) {
		c := candidateid.Candidate{Start: "lunch slot"}
		a := candidateid.FromCandidate(c, 3)
		b := candidateid.FromCandidate(c, 3)
		if a != b {
			t.Errorf("expected deterministic key, got %s vs %s", a, b)
		}
		if !strings.HasSuffix(a, "_3") {
			t.Errorf("expected index suffix, got %s", a)
		}
		if other := candidateid.FromCandidate(c, 4); other == a {
			t.Errorf("different indexes must not collide")
		}
	})
}

func TestParseRoundTrip(t *testing.T) {
	start, end, ok := candidateid.Parse("2025-04-23_2025-04-25")
	if !ok {
		t.Fatalf("expected parseable key")
	}
	if start.Day() != 23 || end.Day() != 25 {
		t.Errorf("unexpected dates: %v %v", start, end)
	}

	if _, _, ok := candidateid.Parse("deadbeef_3"); ok {
		t.Errorf("hash key must not parse as date pair")
	}
	if candidateid.Valid("not-a-key") {
		t.Errorf("expected invalid")
	}
}
