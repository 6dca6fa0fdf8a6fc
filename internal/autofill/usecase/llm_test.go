package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"

	"meetpoll/internal/autofill"
	"meetpoll/pkg/gcalendar"
	"meetpoll/pkg/llmprovider"
)

func testSlots(n int) []autofill.Slot {
	slots := make([]autofill.Slot, 0, n)
	for i := 0; i < n; i++ {
		slots = append(slots, autofill.Slot{
			ID:              i + 1,
			ScheduleGroupID: 1,
			Date:            fmt.Sprintf("2025-04-%02d", 20+i),
			StartTime:       "14:00",
			EndTime:         "17:00",
		})
	}
	return slots
}

// echoProvider classifies every slot in the prompt as 参加.
func echoProvider() *fakeProvider {
	return &fakeProvider{
		generateFunc: func(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
			var parsed []promptSlot
			start := strings.Index(req.Prompt, "[")
			end := strings.Index(req.Prompt, "]")
			if start < 0 || end < start {
				return nil, errors.New("no slot payload in prompt")
			}
			if err := json.Unmarshal([]byte(req.Prompt[start:end+1]), &parsed); err != nil {
				return nil, err
			}

			entries := make([]string, 0, len(parsed))
			for _, s := range parsed {
				entries = append(entries, fmt.Sprintf(
					`{"id": %d, "schedule_id": %d, "option": "参加", "reason": "予定が入っていないので参加。"}`,
					s.ID, s.ScheduleID))
			}
			return &llmprovider.Response{
				Text: fmt.Sprintf(`{"schedule": [%s]}`, strings.Join(entries, ",")),
			}, nil
		},
	}
}

func TestRunLLM_Unauthenticated(t *testing.T) {
	uc, _ := newTestUseCase(t, &fakeCalendar{}, echoProvider(), Config{})

	_, err := uc.RunLLM(context.Background(), "bogus", autofill.LLMInput{Slots: testSlots(1)})
	if !errors.Is(err, autofill.ErrUnauthenticated) {
		t.Errorf("err = %v, want ErrUnauthenticated", err)
	}
}

func TestRunLLM_BatchesAndProgress(t *testing.T) {
	provider := echoProvider()
	calendar := &fakeCalendar{}
	uc, token := newTestUseCase(t, calendar, provider, Config{BatchSize: 3})

	var progress []string
	var partialCounts []int
	out, err := uc.RunLLM(context.Background(), token, autofill.LLMInput{
		Slots: testSlots(7),
		OnProgress: func(done []autofill.ClassifiedSlot, message string) {
			progress = append(progress, message)
			partialCounts = append(partialCounts, len(done))
		},
	})
	if err != nil {
		t.Fatalf("RunLLM: %v", err)
	}

	if len(out.Slots) != 7 {
		t.Fatalf("len(Slots) = %d, want 7", len(out.Slots))
	}
	for i, s := range out.Slots {
		if s.ID != i+1 {
			t.Errorf("Slots[%d].ID = %d, want %d", i, s.ID, i+1)
		}
		if s.Option != autofill.OptionAttend {
			t.Errorf("Slots[%d].Option = %q, want %q", i, s.Option, autofill.OptionAttend)
		}
	}

	// 7 slots at batch size 3: batches of 3, 3, 1.
	if len(provider.calls) != 3 {
		t.Errorf("model called %d times, want 3", len(provider.calls))
	}
	wantProgress := []string{
		"2025-04-22 までの日程を確認中",
		"2025-04-25 までの日程を確認中",
		"2025-04-26 までの日程を確認中",
	}
	if len(progress) != len(wantProgress) {
		t.Fatalf("progress callbacks = %d, want %d", len(progress), len(wantProgress))
	}
	for i, want := range wantProgress {
		if progress[i] != want {
			t.Errorf("progress[%d] = %q, want %q", i, progress[i], want)
		}
	}
	wantCounts := []int{3, 6, 7}
	for i, want := range wantCounts {
		if partialCounts[i] != want {
			t.Errorf("partialCounts[%d] = %d, want %d", i, partialCounts[i], want)
		}
	}

	// One fetch per distinct date.
	if len(calendar.calls) != 7 {
		t.Errorf("calendar called %d times, want 7", len(calendar.calls))
	}
}

func TestRunLLM_FilterConditionAppended(t *testing.T) {
	provider := echoProvider()
	uc, token := newTestUseCase(t, &fakeCalendar{}, provider, Config{})

	_, err := uc.RunLLM(context.Background(), token, autofill.LLMInput{
		Slots:           testSlots(1),
		FilterCondition: "夜の予定は避けたい",
	})
	if err != nil {
		t.Fatalf("RunLLM: %v", err)
	}
	if len(provider.calls) != 1 {
		t.Fatalf("model called %d times, want 1", len(provider.calls))
	}
	if !strings.Contains(provider.calls[0].Prompt, "夜の予定は避けたい") {
		t.Errorf("prompt missing filter condition:\n%s", provider.calls[0].Prompt)
	}
	if !strings.Contains(provider.calls[0].SystemInstruction, "scheduling expert") {
		t.Errorf("system instruction missing prompt contract")
	}
}

func TestRunLLM_InvalidOutputFailsBatch(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"unknown option", `{"schedule": [{"id": 1, "schedule_id": 1, "option": "多分参加", "reason": "..."}]}`},
		{"missing slot", `{"schedule": []}`},
		{"not json", `参加でお願いします`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := &fakeProvider{
				generateFunc: func(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
					return &llmprovider.Response{Text: tt.text}, nil
				},
			}
			uc, token := newTestUseCase(t, &fakeCalendar{}, provider, Config{})

			_, err := uc.RunLLM(context.Background(), token, autofill.LLMInput{Slots: testSlots(1)})
			if !errors.Is(err, autofill.ErrClassificationFailed) {
				t.Errorf("err = %v, want ErrClassificationFailed", err)
			}
		})
	}
}

func TestRunLLM_FetchFailureAbortsInvocation(t *testing.T) {
	calendar := &fakeCalendar{
		listEventsFunc: func(ctx context.Context, req gcalendar.ListEventsRequest) ([]gcalendar.Event, error) {
			return nil, errors.New("provider unavailable")
		},
	}
	provider := echoProvider()
	uc, token := newTestUseCase(t, calendar, provider, Config{})

	_, err := uc.RunLLM(context.Background(), token, autofill.LLMInput{Slots: testSlots(2)})
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if len(provider.calls) != 0 {
		t.Errorf("model called %d times, want 0", len(provider.calls))
	}
}
