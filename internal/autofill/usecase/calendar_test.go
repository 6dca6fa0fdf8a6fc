package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"meetpoll/internal/autofill"
	"meetpoll/internal/conflict"
	"meetpoll/pkg/gcalendar"
)

func TestRun_Unauthenticated(t *testing.T) {
	uc, _ := newTestUseCase(t, &fakeCalendar{}, nil, Config{})

	_, err := uc.Run(context.Background(), "", autofill.RunInput{
		Candidates: []autofill.Candidate{{Start: "2025-04-23T10:00:00+09:00", End: "2025-04-23T11:00:00+09:00"}},
	})
	if !errors.Is(err, autofill.ErrUnauthenticated) {
		t.Errorf("err = %v, want ErrUnauthenticated", err)
	}
}

func TestRun_NoCandidates(t *testing.T) {
	uc, token := newTestUseCase(t, &fakeCalendar{}, nil, Config{})

	_, err := uc.Run(context.Background(), token, autofill.RunInput{})
	if !errors.Is(err, autofill.ErrNoCandidates) {
		t.Errorf("err = %v, want ErrNoCandidates", err)
	}
}

func TestRun_JudgesCandidates(t *testing.T) {
	calendar := &fakeCalendar{
		listEventsFunc: func(ctx context.Context, req gcalendar.ListEventsRequest) ([]gcalendar.Event, error) {
			switch req.TimeMin.Format("2006-01-02") {
			case "2025-04-23":
				return []gcalendar.Event{{
					Summary: "旅行",
					Start:   gcalendar.EventTime{Date: "2025-04-23"},
					End:     gcalendar.EventTime{Date: "2025-04-23"},
				}}, nil
			case "2025-04-30":
				return []gcalendar.Event{{
					Summary: "1on1",
					Start:   gcalendar.EventTime{DateTime: "2025-04-30T16:00:00+09:00"},
					End:     gcalendar.EventTime{DateTime: "2025-04-30T18:00:00+09:00"},
				}}, nil
			default:
				return nil, nil
			}
		},
	}
	uc, token := newTestUseCase(t, calendar, nil, Config{})

	out, err := uc.Run(context.Background(), token, autofill.RunInput{
		Candidates: []autofill.Candidate{
			{Start: "2025-04-23T10:00:00+09:00", End: "2025-04-23T11:00:00+09:00", Index: 0},
			{Start: "2025-04-29T14:00:00+09:00", End: "2025-04-29T17:00:00+09:00", Index: 1},
			{Start: "2025-04-30T14:00:00+09:00", End: "2025-04-30T17:00:00+09:00", Index: 2},
		},
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(out.Results) != 3 {
		t.Fatalf("len(Results) = %d, want 3", len(out.Results))
	}

	wantResponses := []conflict.ResponseType{
		conflict.ResponseBad,         // swallowed by all-day event
		conflict.ResponseGood,        // free day
		conflict.ResponseConditional, // tail overlaps 1on1
	}
	for i, want := range wantResponses {
		if out.Results[i].Index != i {
			t.Errorf("Results[%d].Index = %d, want %d", i, out.Results[i].Index, i)
		}
		if out.Results[i].Response != want {
			t.Errorf("Results[%d].Response = %v, want %v", i, out.Results[i].Response, want)
		}
	}

	if !strings.Contains(out.Results[2].Comment, "1on1") {
		t.Errorf("Results[2].Comment = %q, want mention of conflicting event", out.Results[2].Comment)
	}
}

func TestRun_FetchFailureDefaultsToAccept(t *testing.T) {
	calendar := &fakeCalendar{
		listEventsFunc: func(ctx context.Context, req gcalendar.ListEventsRequest) ([]gcalendar.Event, error) {
			if req.TimeMin.Format("2006-01-02") == "2025-04-23" {
				return nil, errors.New("provider unavailable")
			}
			return []gcalendar.Event{{
				Summary: "輪読会",
				Start:   gcalendar.EventTime{DateTime: "2025-04-29T14:00:00+09:00"},
				End:     gcalendar.EventTime{DateTime: "2025-04-29T18:00:00+09:00"},
			}}, nil
		},
	}
	uc, token := newTestUseCase(t, calendar, nil, Config{})

	out, err := uc.Run(context.Background(), token, autofill.RunInput{
		Candidates: []autofill.Candidate{
			{Start: "2025-04-23T10:00:00+09:00", End: "2025-04-23T11:00:00+09:00", Index: 0},
			{Start: "2025-04-29T14:00:00+09:00", End: "2025-04-29T17:00:00+09:00", Index: 1},
		},
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(out.Results) != 2 {
		t.Fatalf("len(Results) = %d, want 2", len(out.Results))
	}

	// Failed candidate degrades, later candidates still processed.
	if out.Results[0].Response != conflict.ResponseGood {
		t.Errorf("Results[0].Response = %v, want %v", out.Results[0].Response, conflict.ResponseGood)
	}
	if out.Results[0].Comment != autofill.FallbackComment {
		t.Errorf("Results[0].Comment = %q, want fallback comment", out.Results[0].Comment)
	}
	if out.Results[1].Response != conflict.ResponseBad {
		t.Errorf("Results[1].Response = %v, want %v", out.Results[1].Response, conflict.ResponseBad)
	}
}

func TestRun_UnparseableCandidateDefaultsToAccept(t *testing.T) {
	calendar := &fakeCalendar{}
	uc, token := newTestUseCase(t, calendar, nil, Config{})

	out, err := uc.Run(context.Background(), token, autofill.RunInput{
		Candidates: []autofill.Candidate{
			{Start: "not-a-date", End: "2025-04-23T11:00:00+09:00", Index: 7},
		},
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if out.Results[0].Index != 7 {
		t.Errorf("Index = %d, want 7", out.Results[0].Index)
	}
	if out.Results[0].Response != conflict.ResponseGood {
		t.Errorf("Response = %v, want %v", out.Results[0].Response, conflict.ResponseGood)
	}
	if len(calendar.calls) != 0 {
		t.Errorf("calendar called %d times, want 0", len(calendar.calls))
	}
}

func TestRun_SameDayFetchedOnce(t *testing.T) {
	calendar := &fakeCalendar{}
	uc, token := newTestUseCase(t, calendar, nil, Config{})

	_, err := uc.Run(context.Background(), token, autofill.RunInput{
		Candidates: []autofill.Candidate{
			{Start: "2025-04-23T10:00:00+09:00", End: "2025-04-23T11:00:00+09:00", Index: 0},
			{Start: "2025-04-23T14:00:00+09:00", End: "2025-04-23T15:00:00+09:00", Index: 1},
		},
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(calendar.calls) != 1 {
		t.Errorf("calendar called %d times, want 1", len(calendar.calls))
	}
}

func TestRun_CancelledContextAborts(t *testing.T) {
	uc, token := newTestUseCase(t, &fakeCalendar{}, nil, Config{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := uc.Run(ctx, token, autofill.RunInput{
		Candidates: []autofill.Candidate{
			{Start: "2025-04-23T10:00:00+09:00", End: "2025-04-23T11:00:00+09:00"},
		},
	})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}
