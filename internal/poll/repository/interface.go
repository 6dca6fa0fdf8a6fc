package repository

import (
	"context"

	"meetpoll/internal/poll"
)

// Repository is the interface for poll data access operations.
type Repository interface {
	CreateRequest(ctx context.Context, opt CreateRequestOptions) (poll.Request, error)
	GetRequestByUUID(ctx context.Context, uuid string) (poll.Request, error)

	CreateAnswer(ctx context.Context, opt CreateAnswerOptions) (poll.Answer, error)
	GetAnswer(ctx context.Context, id string) (poll.Answer, error)
	ListAnswersByRequestID(ctx context.Context, requestID string) ([]poll.Answer, error)
}
