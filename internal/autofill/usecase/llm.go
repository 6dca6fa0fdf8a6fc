package usecase

import (
	"context"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"

	"meetpoll/internal/autofill"
	"meetpoll/pkg/gcalendar"
	"meetpoll/pkg/llmprovider"
)

// RunLLM classifies slots in fixed-size batches via the language model.
//
// Batches execute sequentially; after each one the progress callback fires
// with the accumulated results. Unlike the calendar flow there is no
// per-slot fallback: a failed fetch, model call, or malformed output aborts
// the whole invocation.
func (uc *implUseCase) RunLLM(ctx context.Context, sessionToken string, input autofill.LLMInput) (autofill.LLMOutput, error) {
	token, err := uc.session.Verify(sessionToken)
	if err != nil {
		return autofill.LLMOutput{}, autofill.ErrUnauthenticated
	}

	if len(input.Slots) == 0 {
		return autofill.LLMOutput{}, autofill.ErrNoCandidates
	}

	uc.l.Infof(ctx, "RunLLM: auto-fill start slots=%d batch_size=%d", len(input.Slots), uc.cfg.BatchSize)

	client, err := uc.newCalendar(ctx, token.AccessToken)
	if err != nil {
		return autofill.LLMOutput{}, fmt.Errorf("failed to create calendar client: %w", err)
	}

	cache, err := uc.newDayCache()
	if err != nil {
		return autofill.LLMOutput{}, fmt.Errorf("failed to create day cache: %w", err)
	}

	classified := make([]autofill.ClassifiedSlot, 0, len(input.Slots))
	for i := 0; i < len(input.Slots); i += uc.cfg.BatchSize {
		select {
		case <-ctx.Done():
			return autofill.LLMOutput{}, ctx.Err()
		default:
		}

		end := i + uc.cfg.BatchSize
		if end > len(input.Slots) {
			end = len(input.Slots)
		}
		batch := input.Slots[i:end]

		results, err := uc.classifyBatch(ctx, client, cache, batch, input.FilterCondition)
		if err != nil {
			return autofill.LLMOutput{}, fmt.Errorf("batch starting at slot index %d: %w", i, err)
		}
		classified = append(classified, results...)

		if input.OnProgress != nil {
			input.OnProgress(classified,
				fmt.Sprintf("%s までの日程を確認中", batch[len(batch)-1].Date))
		}
	}

	uc.l.Infof(ctx, "RunLLM: auto-fill done slots=%d", len(classified))

	return autofill.LLMOutput{Slots: classified}, nil
}

// classifyBatch fetches each distinct day in the batch once, then issues a
// single structured-output model call for the whole batch.
func (uc *implUseCase) classifyBatch(
	ctx context.Context,
	client CalendarClient,
	cache *lru.Cache[string, []gcalendar.Event],
	batch []autofill.Slot,
	filterCondition string,
) ([]autofill.ClassifiedSlot, error) {
	var allEvents []gcalendar.Event
	seen := make(map[string]bool, len(batch))
	for _, slot := range batch {
		if seen[slot.Date] {
			continue
		}
		seen[slot.Date] = true

		events, err := uc.fetchDayEvents(ctx, client, cache, slot.Date)
		if err != nil {
			return nil, err
		}
		allEvents = append(allEvents, events...)
	}

	if err := uc.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	callCtx, cancel := context.WithTimeout(ctx, uc.cfg.CallTimeout)
	defer cancel()

	resp, err := uc.llm.GenerateContent(callCtx, &llmprovider.Request{
		SystemInstruction: classifySystemPrompt,
		Prompt:            buildClassifyPrompt(batch, allEvents, filterCondition),
		ResponseSchema:    classificationSchema,
	})
	if err != nil {
		return nil, fmt.Errorf("model call failed: %w", err)
	}

	results, err := parseClassification(resp.Text, batch)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", autofill.ErrClassificationFailed, err)
	}
	return results, nil
}
