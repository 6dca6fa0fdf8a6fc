package repository

import "meetpoll/internal/poll"

// CreateRequestOptions holds the parameters for creating a request.
type CreateRequestOptions struct {
	Title      string
	Type       poll.RequestType
	Location   string
	Notes      string
	Nights     int
	Candidates []poll.Candidate
}

// CreateAnswerOptions holds the parameters for recording an answer.
type CreateAnswerOptions struct {
	RequestID  string
	Name       string
	Comment    string
	Candidates []poll.CandidateAnswer
}
