package model

import "meetpoll/internal/conflict"

// AnswerStatus is the persisted per-candidate attendance status.
type AnswerStatus string

const (
	StatusAccepted AnswerStatus = "accepted"
	StatusPending  AnswerStatus = "pending"
	StatusRejected AnswerStatus = "rejected"
)

// Valid reports whether s is one of the persisted statuses.
func (s AnswerStatus) Valid() bool {
	switch s {
	case StatusAccepted, StatusPending, StatusRejected:
		return true
	}
	return false
}

// StatusFromResponse maps an attendance verdict to its persisted status.
// Good→accepted, Conditional→pending, Bad→rejected; anything else defaults
// to pending so a stray verdict never blocks an answer.
func StatusFromResponse(rt conflict.ResponseType) AnswerStatus {
	switch rt {
	case conflict.ResponseGood:
		return StatusAccepted
	case conflict.ResponseConditional:
		return StatusPending
	case conflict.ResponseBad:
		return StatusRejected
	default:
		return StatusPending
	}
}
