package gorm

import (
	"encoding/json"
	"fmt"
	"time"

	"meetpoll/internal/model"
	"meetpoll/internal/poll"
)

// requestRecord is the requests table row. Candidate and free-form content
// rides in ContentJSON, mirroring the share-by-UUID document shape.
type requestRecord struct {
	ID          string `gorm:"primaryKey"`
	Title       string `gorm:"not null"`
	Type        string `gorm:"not null"`
	ContentJSON string `gorm:"column:content_json;not null"`
	CreatedAt   time.Time
}

func (requestRecord) TableName() string { return "requests" }

// answerRecord is the answers table row.
type answerRecord struct {
	ID         string `gorm:"primaryKey"`
	RequestID  string `gorm:"column:question_id;index;not null"`
	Name       string
	AnswerJSON string `gorm:"column:answer_json;not null"`
	CreatedAt  time.Time
}

func (answerRecord) TableName() string { return "answers" }

type contentJSON struct {
	Location   string          `json:"location,omitempty"`
	Notes      string          `json:"notes,omitempty"`
	Nights     int             `json:"nights,omitempty"`
	Candidates []candidateJSON `json:"candidates"`
}

type candidateJSON struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type answerJSON struct {
	Comment    string                `json:"comment,omitempty"`
	Candidates []candidateAnswerJSON `json:"candidates"`
}

type candidateAnswerJSON struct {
	Start  string `json:"start"`
	End    string `json:"end"`
	Status string `json:"status"`
	Note   string `json:"note,omitempty"`
}

func newRequestRecord(id string, opt requestContent) (requestRecord, error) {
	candidates := make([]candidateJSON, len(opt.Candidates))
	for i, c := range opt.Candidates {
		candidates[i] = candidateJSON{Start: c.Start, End: c.End}
	}

	raw, err := json.Marshal(contentJSON{
		Location:   opt.Location,
		Notes:      opt.Notes,
		Nights:     opt.Nights,
		Candidates: candidates,
	})
	if err != nil {
		return requestRecord{}, fmt.Errorf("marshal request content: %w", err)
	}

	return requestRecord{
		ID:          id,
		Title:       opt.Title,
		Type:        string(opt.Type),
		ContentJSON: string(raw),
	}, nil
}

// requestContent is the subset of request fields serialized into
// ContentJSON plus the column-backed ones.
type requestContent struct {
	Title      string
	Type       poll.RequestType
	Location   string
	Notes      string
	Nights     int
	Candidates []poll.Candidate
}

func (r requestRecord) toRequest() (poll.Request, error) {
	var content contentJSON
	if err := json.Unmarshal([]byte(r.ContentJSON), &content); err != nil {
		return poll.Request{}, fmt.Errorf("unmarshal request content: %w", err)
	}

	candidates := make([]poll.Candidate, len(content.Candidates))
	for i, c := range content.Candidates {
		candidates[i] = poll.Candidate{Start: c.Start, End: c.End}
	}

	return poll.Request{
		ID:         r.ID,
		Title:      r.Title,
		Type:       poll.RequestType(r.Type),
		Location:   content.Location,
		Notes:      content.Notes,
		Nights:     content.Nights,
		Candidates: candidates,
		CreatedAt:  r.CreatedAt,
	}, nil
}

func newAnswerRecord(id, requestID, name, comment string, candidates []poll.CandidateAnswer) (answerRecord, error) {
	answers := make([]candidateAnswerJSON, len(candidates))
	for i, c := range candidates {
		answers[i] = candidateAnswerJSON{
			Start:  c.Start,
			End:    c.End,
			Status: string(c.Status),
			Note:   c.Note,
		}
	}

	raw, err := json.Marshal(answerJSON{Comment: comment, Candidates: answers})
	if err != nil {
		return answerRecord{}, fmt.Errorf("marshal answer content: %w", err)
	}

	return answerRecord{
		ID:         id,
		RequestID:  requestID,
		Name:       name,
		AnswerJSON: string(raw),
	}, nil
}

func (r answerRecord) toAnswer() (poll.Answer, error) {
	var content answerJSON
	if err := json.Unmarshal([]byte(r.AnswerJSON), &content); err != nil {
		return poll.Answer{}, fmt.Errorf("unmarshal answer content: %w", err)
	}

	candidates := make([]poll.CandidateAnswer, len(content.Candidates))
	for i, c := range content.Candidates {
		candidates[i] = poll.CandidateAnswer{
			Start:  c.Start,
			End:    c.End,
			Status: model.AnswerStatus(c.Status),
			Note:   c.Note,
		}
	}

	return poll.Answer{
		ID:         r.ID,
		RequestID:  r.RequestID,
		Name:       r.Name,
		Comment:    content.Comment,
		Candidates: candidates,
		CreatedAt:  r.CreatedAt,
	}, nil
}
