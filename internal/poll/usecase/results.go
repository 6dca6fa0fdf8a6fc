package usecase

import (
	"context"
	"errors"
	"sort"

	"meetpoll/internal/model"
	"meetpoll/internal/poll"
	"meetpoll/internal/poll/repository"
	"meetpoll/pkg/candidateid"
)

// Results aggregates every answer per candidate and ranks candidates by
// accepted count descending; ties keep the request's candidate order.
func (uc *implUseCase) Results(ctx context.Context, requestUUID string) (poll.ResultsOutput, error) {
	request, err := uc.repo.GetRequestByUUID(ctx, requestUUID)
	if errors.Is(err, repository.ErrNotFound) {
		return poll.ResultsOutput{}, poll.ErrRequestNotFound
	}
	if err != nil {
		return poll.ResultsOutput{}, err
	}

	answers, err := uc.repo.ListAnswersByRequestID(ctx, request.ID)
	if err != nil {
		return poll.ResultsOutput{}, err
	}

	results := make([]poll.CandidateResult, 0, len(request.Candidates))
	for i, candidate := range request.Candidates {
		key := candidateid.FromCandidate(candidateid.Candidate{
			Start: candidate.Start,
			End:   candidate.End,
		}, i)

		result := poll.CandidateResult{
			Candidate: candidate,
			Key:       key,
			Index:     i,
		}

		for _, answer := range answers {
			response, ok := findCandidateAnswer(answer, candidate, key)
			if !ok {
				continue
			}

			name := answer.Name
			if name == "" {
				name = "匿名"
			}
			result.Responses = append(result.Responses, poll.CandidateResponse{
				Name:   name,
				Status: response.Status,
				Note:   response.Note,
			})

			switch response.Status {
			case model.StatusAccepted:
				result.Counts.Accepted++
			case model.StatusPending:
				result.Counts.Pending++
			case model.StatusRejected:
				result.Counts.Rejected++
			}
		}
		result.Total = len(result.Responses)

		results = append(results, result)
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Counts.Accepted > results[j].Counts.Accepted
	})

	return poll.ResultsOutput{Request: request, Results: results}, nil
}

// findCandidateAnswer matches an answer's entry to a request candidate by
// the start/end pair, falling back to the date-pair key so trip candidates
// match even when clients format the datetimes differently.
func findCandidateAnswer(answer poll.Answer, candidate poll.Candidate, key string) (poll.CandidateAnswer, bool) {
	for i, c := range answer.Candidates {
		if c.Start == candidate.Start && c.End == candidate.End {
			return c, true
		}
		if candidateid.Valid(key) && candidateid.FromCandidate(candidateid.Candidate{
			Start: c.Start,
			End:   c.End,
		}, i) == key {
			return c, true
		}
	}
	return poll.CandidateAnswer{}, false
}
