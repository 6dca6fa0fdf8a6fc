package dateutil_test

import (
	"testing"
	"time"

	"meetpoll/pkg/dateutil"
)

func TestNewResolver(t *testing.T) {
	t.Run("Valid Timezone", func(t *testing.T) {
		if _, err := dateutil.NewResolver("Asia/Tokyo"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("Invalid Timezone", func(t *testing.T) {
		if _, err := dateutil.NewResolver("Not/AZone"); err == nil {
			t.Errorf("expected error for bogus timezone")
		}
	})
}

func TestParseInstant(t *testing.T) {
	r, _ := dateutil.NewResolver("Asia/Tokyo")

	t.Run("RFC3339 With Offset", func(t *testing.T) {
		got, err := r.ParseInstant("2025-04-30T16:00:00+09:00")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.UTC().Hour() != 7 {
			t.Errorf("offset not honored: %v", got)
		}
	})

	t.Run("Zone-less DateTime Uses Resolver Location", func(t *testing.T) {
		got, err := r.ParseInstant("2025-04-23T10:00:00")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Hour() != 10 {
			t.Errorf("expected hour 10, got %d", got.Hour())
		}
		if name, _ := got.Zone(); name != "JST" {
			t.Errorf("expected JST, got %s", name)
		}
	})

	t.Run("Bare Date", func(t *testing.T) {
		got, err := r.ParseInstant("2025-04-23")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Hour() != 0 || got.Day() != 23 {
			t.Errorf("unexpected result: %v", got)
		}
	})

	t.Run("Garbage", func(t *testing.T) {
		if _, err := r.ParseInstant("not-a-date"); err == nil {
			t.Errorf("expected parse failure")
		}
	})
}

func TestDayBounds(t *testing.T) {
	r, _ := dateutil.NewResolver("Asia/Tokyo")

	start, end, err := r.DayBounds("2025-04-23")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if start.Hour() != 0 || start.Minute() != 0 || start.Second() != 0 {
		t.Errorf("day start not midnight: %v", start)
	}
	if end.Hour() != 23 || end.Minute() != 59 || end.Second() != 59 {
		t.Errorf("day end not 23:59:59: %v", end)
	}
	if !start.Before(end) {
		t.Errorf("start should precede end")
	}

	if _, _, err := r.DayBounds("23/04/2025"); err == nil {
		t.Errorf("expected error for bad date format")
	}
}

func TestFormatting(t *testing.T) {
	r, _ := dateutil.NewResolver("Asia/Tokyo")
	tm := time.Date(2025, 4, 23, 9, 5, 0, 0, r.Location())

	if got := r.Day(tm); got != "2025-04-23" {
		t.Errorf("Day: got %s", got)
	}
	if got := r.FormatDisplay(tm); got != "2025/4/23 09:05:00" {
		t.Errorf("FormatDisplay: got %s", got)
	}
	if got := r.FormatMonthDayTime(tm); got != "4月23日 09:05" {
		t.Errorf("FormatMonthDayTime: got %s", got)
	}
}

func TestReformatDisplay(t *testing.T) {
	r, _ := dateutil.NewResolver("Asia/Tokyo")

	t.Run("Display Layout Input", func(t *testing.T) {
		if got := r.ReformatDisplay("2025/4/23 15:30:00"); got != "4月23日 15:30" {
			t.Errorf("got %s", got)
		}
	})

	t.Run("Unparseable Input Returned As-Is", func(t *testing.T) {
		if got := r.ReformatDisplay("???"); got != "???" {
			t.Errorf("got %s", got)
		}
	})
}
