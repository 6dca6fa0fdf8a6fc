package poll

import "context"

// UseCase defines the business logic interface for the poll domain.
type UseCase interface {
	// CreateRequest creates a new scheduling poll and returns it with its
	// share UUID.
	CreateRequest(ctx context.Context, input CreateRequestInput) (CreateRequestOutput, error)

	// GetRequest looks a poll up by its share UUID.
	GetRequest(ctx context.Context, uuid string) (GetRequestOutput, error)

	// SubmitAnswer records one respondent's per-candidate judgments.
	SubmitAnswer(ctx context.Context, input SubmitAnswerInput) (SubmitAnswerOutput, error)

	// ListAnswers returns a request's answers ordered by creation time.
	ListAnswers(ctx context.Context, requestUUID string) (ListAnswersOutput, error)

	// Results aggregates per-candidate counts and ranks candidates by
	// accepted count.
	Results(ctx context.Context, requestUUID string) (ResultsOutput, error)

	// AnswerRank returns the 1-based position of an answer among its
	// request's answers by creation time.
	AnswerRank(ctx context.Context, requestUUID, answerID string) (AnswerRankOutput, error)
}
