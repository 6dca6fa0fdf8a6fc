package poll

import (
	"time"

	"meetpoll/internal/model"
)

// RequestType distinguishes the two poll flavors.
type RequestType string

const (
	TypeMeal RequestType = "meal"
	TypeTrip RequestType = "trip"
)

// Valid reports whether t is a known request type.
func (t RequestType) Valid() bool {
	return t == TypeMeal || t == TypeTrip
}

// Candidate is one proposed slot in a request. Meal candidates carry
// datetimes, trip candidates carry date pairs; both are ISO-8601 strings.
type Candidate struct {
	Start string
	End   string
}

// Request is a scheduling poll created by an organizer and shared by UUID.
type Request struct {
	ID         string
	Title      string
	Type       RequestType
	Location   string
	Notes      string
	Nights     int
	Candidates []Candidate
	CreatedAt  time.Time
}

// CandidateAnswer is a respondent's judgment of one candidate.
type CandidateAnswer struct {
	Start  string
	End    string
	Status model.AnswerStatus
	Note   string
}

// Answer is one respondent's full submission for a request.
type Answer struct {
	ID         string
	RequestID  string
	Name       string
	Comment    string
	Candidates []CandidateAnswer
	CreatedAt  time.Time
}

// --- UseCase Inputs ---

type CreateRequestInput struct {
	Title      string
	Type       RequestType
	Location   string
	Notes      string
	Nights     int
	Candidates []Candidate
}

type SubmitAnswerInput struct {
	RequestUUID string
	Name        string
	Comment     string
	Candidates  []CandidateAnswer
}

// --- UseCase Outputs ---

type CreateRequestOutput struct {
	Request Request
}

type GetRequestOutput struct {
	Request Request
}

type SubmitAnswerOutput struct {
	Answer Answer
	// Rank is the 1-based position of this answer among the request's
	// answers ordered by creation time.
	Rank int
}

type ListAnswersOutput struct {
	Answers []Answer
}

// CandidateResponse is one respondent's judgment surfaced in results.
type CandidateResponse struct {
	Name   string
	Status model.AnswerStatus
	Note   string
}

// StatusCounts aggregates one candidate's judgments.
type StatusCounts struct {
	Accepted int
	Pending  int
	Rejected int
}

// CandidateResult is the aggregated outcome for one candidate.
type CandidateResult struct {
	Candidate Candidate
	// Key is the candidate's stable identifier: a date-pair key for
	// trip candidates, a content hash otherwise.
	Key   string
	Index int
	Responses []CandidateResponse
	Counts    StatusCounts
	Total     int
}

// ResultsOutput lists candidate results ranked by accepted count
// descending, ties broken by input order.
type ResultsOutput struct {
	Request Request
	Results []CandidateResult
}

type AnswerRankOutput struct {
	Rank  int
	Total int
}
