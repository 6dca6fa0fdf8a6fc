package gorm

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"meetpoll/internal/poll"
	"meetpoll/internal/poll/repository"
	pkgLog "meetpoll/pkg/log"
)

type implRepository struct {
	l  pkgLog.Logger
	db *gorm.DB
}

// New creates a gorm-backed poll repository.
func New(l pkgLog.Logger, db *gorm.DB) *implRepository {
	return &implRepository{l: l, db: db}
}

func (r *implRepository) CreateRequest(ctx context.Context, opt repository.CreateRequestOptions) (poll.Request, error) {
	record, err := newRequestRecord(uuid.NewString(), requestContent{
		Title:      opt.Title,
		Type:       opt.Type,
		Location:   opt.Location,
		Notes:      opt.Notes,
		Nights:     opt.Nights,
		Candidates: opt.Candidates,
	})
	if err != nil {
		return poll.Request{}, err
	}

	if err := r.db.WithContext(ctx).Create(&record).Error; err != nil {
		return poll.Request{}, fmt.Errorf("create request: %w", err)
	}

	return record.toRequest()
}

func (r *implRepository) GetRequestByUUID(ctx context.Context, id string) (poll.Request, error) {
	var record requestRecord
	err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return poll.Request{}, repository.ErrNotFound
	}
	if err != nil {
		return poll.Request{}, fmt.Errorf("get request %s: %w", id, err)
	}

	return record.toRequest()
}

func (r *implRepository) CreateAnswer(ctx context.Context, opt repository.CreateAnswerOptions) (poll.Answer, error) {
	record, err := newAnswerRecord(uuid.NewString(), opt.RequestID, opt.Name, opt.Comment, opt.Candidates)
	if err != nil {
		return poll.Answer{}, err
	}

	if err := r.db.WithContext(ctx).Create(&record).Error; err != nil {
		return poll.Answer{}, fmt.Errorf("create answer: %w", err)
	}

	return record.toAnswer()
}

func (r *implRepository) GetAnswer(ctx context.Context, id string) (poll.Answer, error) {
	var record answerRecord
	err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return poll.Answer{}, repository.ErrNotFound
	}
	if err != nil {
		return poll.Answer{}, fmt.Errorf("get answer %s: %w", id, err)
	}

	return record.toAnswer()
}

func (r *implRepository) ListAnswersByRequestID(ctx context.Context, requestID string) ([]poll.Answer, error) {
	var records []answerRecord
	err := r.db.WithContext(ctx).
		Where("question_id = ?", requestID).
		Order("created_at asc").
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("list answers for %s: %w", requestID, err)
	}

	answers := make([]poll.Answer, 0, len(records))
	for _, record := range records {
		answer, err := record.toAnswer()
		if err != nil {
			// Answers with damaged payloads are skipped, not fatal.
			r.l.Warnf(ctx, "ListAnswersByRequestID: skipping answer %s: %v", record.ID, err)
			continue
		}
		answers = append(answers, answer)
	}
	return answers, nil
}
