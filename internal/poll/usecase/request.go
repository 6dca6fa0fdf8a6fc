package usecase

import (
	"context"
	"errors"
	"strings"

	"meetpoll/internal/poll"
	"meetpoll/internal/poll/repository"
)

// CreateRequest validates and stores a new scheduling poll.
func (uc *implUseCase) CreateRequest(ctx context.Context, input poll.CreateRequestInput) (poll.CreateRequestOutput, error) {
	if strings.TrimSpace(input.Title) == "" {
		return poll.CreateRequestOutput{}, poll.ErrEmptyTitle
	}
	if !input.Type.Valid() {
		return poll.CreateRequestOutput{}, poll.ErrInvalidType
	}
	if len(input.Candidates) == 0 {
		return poll.CreateRequestOutput{}, poll.ErrNoCandidates
	}

	request, err := uc.repo.CreateRequest(ctx, repository.CreateRequestOptions{
		Title:      input.Title,
		Type:       input.Type,
		Location:   input.Location,
		Notes:      input.Notes,
		Nights:     input.Nights,
		Candidates: input.Candidates,
	})
	if err != nil {
		return poll.CreateRequestOutput{}, err
	}

	uc.l.Infof(ctx, "CreateRequest: created %s type=%s candidates=%d", request.ID, request.Type, len(request.Candidates))

	return poll.CreateRequestOutput{Request: request}, nil
}

// GetRequest looks a poll up by its share UUID.
func (uc *implUseCase) GetRequest(ctx context.Context, uuid string) (poll.GetRequestOutput, error) {
	request, err := uc.repo.GetRequestByUUID(ctx, uuid)
	if errors.Is(err, repository.ErrNotFound) {
		return poll.GetRequestOutput{}, poll.ErrRequestNotFound
	}
	if err != nil {
		return poll.GetRequestOutput{}, err
	}

	return poll.GetRequestOutput{Request: request}, nil
}
