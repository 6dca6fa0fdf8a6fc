package usecase

import (
	"context"
	"errors"

	"meetpoll/internal/poll"
	"meetpoll/internal/poll/repository"
)

// SubmitAnswer records one respondent's per-candidate judgments and
// returns the stored answer with its creation-order rank.
func (uc *implUseCase) SubmitAnswer(ctx context.Context, input poll.SubmitAnswerInput) (poll.SubmitAnswerOutput, error) {
	request, err := uc.repo.GetRequestByUUID(ctx, input.RequestUUID)
	if errors.Is(err, repository.ErrNotFound) {
		return poll.SubmitAnswerOutput{}, poll.ErrRequestNotFound
	}
	if err != nil {
		return poll.SubmitAnswerOutput{}, err
	}

	if len(input.Candidates) == 0 {
		return poll.SubmitAnswerOutput{}, poll.ErrNoCandidates
	}
	for _, c := range input.Candidates {
		if !c.Status.Valid() {
			return poll.SubmitAnswerOutput{}, poll.ErrInvalidStatus
		}
	}

	answer, err := uc.repo.CreateAnswer(ctx, repository.CreateAnswerOptions{
		RequestID:  request.ID,
		Name:       input.Name,
		Comment:    input.Comment,
		Candidates: input.Candidates,
	})
	if err != nil {
		return poll.SubmitAnswerOutput{}, err
	}

	uc.l.Infof(ctx, "SubmitAnswer: answer %s recorded for request %s", answer.ID, request.ID)

	rank, err := uc.rankOf(ctx, request.ID, answer.ID)
	if err != nil {
		return poll.SubmitAnswerOutput{}, err
	}

	return poll.SubmitAnswerOutput{Answer: answer, Rank: rank}, nil
}

// ListAnswers returns a request's answers ordered by creation time.
func (uc *implUseCase) ListAnswers(ctx context.Context, requestUUID string) (poll.ListAnswersOutput, error) {
	request, err := uc.repo.GetRequestByUUID(ctx, requestUUID)
	if errors.Is(err, repository.ErrNotFound) {
		return poll.ListAnswersOutput{}, poll.ErrRequestNotFound
	}
	if err != nil {
		return poll.ListAnswersOutput{}, err
	}

	answers, err := uc.repo.ListAnswersByRequestID(ctx, request.ID)
	if err != nil {
		return poll.ListAnswersOutput{}, err
	}

	return poll.ListAnswersOutput{Answers: answers}, nil
}

// AnswerRank returns the 1-based position of an answer among its request's
// answers by creation time.
func (uc *implUseCase) AnswerRank(ctx context.Context, requestUUID, answerID string) (poll.AnswerRankOutput, error) {
	request, err := uc.repo.GetRequestByUUID(ctx, requestUUID)
	if errors.Is(err, repository.ErrNotFound) {
		return poll.AnswerRankOutput{}, poll.ErrRequestNotFound
	}
	if err != nil {
		return poll.AnswerRankOutput{}, err
	}

	answers, err := uc.repo.ListAnswersByRequestID(ctx, request.ID)
	if err != nil {
		return poll.AnswerRankOutput{}, err
	}

	for i, answer := range answers {
		if answer.ID == answerID {
			return poll.AnswerRankOutput{Rank: i + 1, Total: len(answers)}, nil
		}
	}
	return poll.AnswerRankOutput{}, poll.ErrAnswerNotFound
}

func (uc *implUseCase) rankOf(ctx context.Context, requestID, answerID string) (int, error) {
	answers, err := uc.repo.ListAnswersByRequestID(ctx, requestID)
	if err != nil {
		return 0, err
	}
	for i, answer := range answers {
		if answer.ID == answerID {
			return i + 1, nil
		}
	}
	return 0, poll.ErrAnswerNotFound
}
