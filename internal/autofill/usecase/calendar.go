package usecase

import (
	"context"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"

	"meetpoll/internal/autofill"
	"meetpoll/internal/conflict"
	"meetpoll/pkg/gcalendar"
)

// Run judges every candidate against the respondent's calendar.
//
// Candidates are processed strictly in sequence. Any per-candidate failure
// (unparseable instants, fetch error, timeout) degrades that candidate to
// the default-accept answer instead of aborting the run; a cancelled ctx
// aborts between candidates.
func (uc *implUseCase) Run(ctx context.Context, sessionToken string, input autofill.RunInput) (autofill.RunOutput, error) {
	token, err := uc.session.Verify(sessionToken)
	if err != nil {
		return autofill.RunOutput{}, autofill.ErrUnauthenticated
	}

	if len(input.Candidates) == 0 {
		return autofill.RunOutput{}, autofill.ErrNoCandidates
	}

	uc.l.Infof(ctx, "Run: auto-fill start candidates=%d", len(input.Candidates))

	client, err := uc.newCalendar(ctx, token.AccessToken)
	if err != nil {
		return autofill.RunOutput{}, fmt.Errorf("failed to create calendar client: %w", err)
	}

	cache, err := uc.newDayCache()
	if err != nil {
		return autofill.RunOutput{}, fmt.Errorf("failed to create day cache: %w", err)
	}

	results := make([]autofill.CandidateResult, 0, len(input.Candidates))
	for _, cand := range input.Candidates {
		select {
		case <-ctx.Done():
			return autofill.RunOutput{}, ctx.Err()
		default:
		}

		results = append(results, uc.checkCandidate(ctx, client, cache, cand))
	}

	uc.l.Infof(ctx, "Run: auto-fill done results=%d", len(results))

	return autofill.RunOutput{Results: results}, nil
}

// checkCandidate resolves one candidate's day, fetches that day's events,
// and synthesizes an answer. Every failure path yields the default-accept
// fallback so the respondent's flow is never blocked.
func (uc *implUseCase) checkCandidate(
	ctx context.Context,
	client CalendarClient,
	cache *lru.Cache[string, []gcalendar.Event],
	cand autofill.Candidate,
) autofill.CandidateResult {
	start, err := uc.resolver.ParseInstant(cand.Start)
	if err != nil {
		return uc.fallbackResult(ctx, cand, err)
	}
	end, err := uc.resolver.ParseInstant(cand.End)
	if err != nil {
		return uc.fallbackResult(ctx, cand, err)
	}

	events, err := uc.fetchDayEvents(ctx, client, cache, uc.resolver.Day(start))
	if err != nil {
		return uc.fallbackResult(ctx, cand, err)
	}

	analysis := uc.analyzer.Analyze(start, end, events)
	resp := uc.responder.Synthesize(analysis.Kind, analysis.Events)

	return autofill.CandidateResult{
		Index:    cand.Index,
		Start:    cand.Start,
		End:      cand.End,
		Response: resp.Type,
		Comment:  resp.Comment,
	}
}

func (uc *implUseCase) fallbackResult(ctx context.Context, cand autofill.Candidate, err error) autofill.CandidateResult {
	uc.l.Warnf(ctx, "Run: candidate %d degraded to default-accept: %v", cand.Index, err)
	return autofill.CandidateResult{
		Index:    cand.Index,
		Start:    cand.Start,
		End:      cand.End,
		Response: conflict.ResponseGood,
		Comment:  autofill.FallbackComment,
	}
}
