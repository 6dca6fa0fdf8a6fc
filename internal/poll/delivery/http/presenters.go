package http

import (
	"meetpoll/internal/model"
	"meetpoll/internal/poll"
	"meetpoll/pkg/response"
)

// --- Request DTOs ---

type candidateReq struct {
	Start string `json:"start" binding:"required"`
	End   string `json:"end"   binding:"required"`
}

type createRequestReq struct {
	Title      string         `json:"title" binding:"required"`
	Type       string         `json:"type"  binding:"required"`
	Location   string         `json:"location"`
	Notes      string         `json:"notes"`
	Nights     int            `json:"nights"`
	Candidates []candidateReq `json:"candidates" binding:"required,min=1,dive"`
}

func (r createRequestReq) toInput() poll.CreateRequestInput {
	candidates := make([]poll.Candidate, len(r.Candidates))
	for i, c := range r.Candidates {
		candidates[i] = poll.Candidate{Start: c.Start, End: c.End}
	}
	return poll.CreateRequestInput{
		Title:      r.Title,
		Type:       poll.RequestType(r.Type),
		Location:   r.Location,
		Notes:      r.Notes,
		Nights:     r.Nights,
		Candidates: candidates,
	}
}

type candidateAnswerReq struct {
	Start  string `json:"start"  binding:"required"`
	End    string `json:"end"    binding:"required"`
	Status string `json:"status" binding:"required"`
	Note   string `json:"note"`
}

type submitAnswerReq struct {
	Name       string               `json:"name"`
	Comment    string               `json:"comment"`
	Candidates []candidateAnswerReq `json:"candidates" binding:"required,min=1,dive"`
}

func (r submitAnswerReq) toInput(requestUUID string) poll.SubmitAnswerInput {
	candidates := make([]poll.CandidateAnswer, len(r.Candidates))
	for i, c := range r.Candidates {
		candidates[i] = poll.CandidateAnswer{
			Start:  c.Start,
			End:    c.End,
			Status: model.AnswerStatus(c.Status),
			Note:   c.Note,
		}
	}
	return poll.SubmitAnswerInput{
		RequestUUID: requestUUID,
		Name:        r.Name,
		Comment:     r.Comment,
		Candidates:  candidates,
	}
}

// --- Response DTOs ---

type candidateResp struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type requestResp struct {
	ID         string          `json:"id"`
	Title      string          `json:"title"`
	Type       string          `json:"type"`
	Location   string          `json:"location,omitempty"`
	Notes      string          `json:"notes,omitempty"`
	Nights     int             `json:"nights,omitempty"`
	Candidates []candidateResp   `json:"candidates"`
	CreatedAt  response.DateTime `json:"created_at"`
}

func newRequestResp(r poll.Request) requestResp {
	candidates := make([]candidateResp, len(r.Candidates))
	for i, c := range r.Candidates {
		candidates[i] = candidateResp{Start: c.Start, End: c.End}
	}
	return requestResp{
		ID:         r.ID,
		Title:      r.Title,
		Type:       string(r.Type),
		Location:   r.Location,
		Notes:      r.Notes,
		Nights:     r.Nights,
		Candidates: candidates,
		CreatedAt:  response.DateTime(r.CreatedAt),
	}
}

type candidateAnswerResp struct {
	Start  string `json:"start"`
	End    string `json:"end"`
	Status string `json:"status"`
	Note   string `json:"note,omitempty"`
}

type answerResp struct {
	ID         string                `json:"id"`
	Name       string                `json:"name"`
	Comment    string                `json:"comment,omitempty"`
	Candidates []candidateAnswerResp `json:"candidates"`
	CreatedAt  response.DateTime     `json:"created_at"`
}

func newAnswerResp(a poll.Answer) answerResp {
	candidates := make([]candidateAnswerResp, len(a.Candidates))
	for i, c := range a.Candidates {
		candidates[i] = candidateAnswerResp{
			Start:  c.Start,
			End:    c.End,
			Status: string(c.Status),
			Note:   c.Note,
		}
	}
	return answerResp{
		ID:         a.ID,
		Name:       a.Name,
		Comment:    a.Comment,
		Candidates: candidates,
		CreatedAt:  response.DateTime(a.CreatedAt),
	}
}

type submitAnswerResp struct {
	Answer answerResp `json:"answer"`
	Rank   int        `json:"rank"`
}

func (h *handler) newSubmitAnswerResp(out poll.SubmitAnswerOutput) submitAnswerResp {
	return submitAnswerResp{
		Answer: newAnswerResp(out.Answer),
		Rank:   out.Rank,
	}
}

type listAnswersResp struct {
	Answers []answerResp `json:"answers"`
}

func (h *handler) newListAnswersResp(out poll.ListAnswersOutput) listAnswersResp {
	answers := make([]answerResp, len(out.Answers))
	for i, a := range out.Answers {
		answers[i] = newAnswerResp(a)
	}
	return listAnswersResp{Answers: answers}
}

type candidateResponseResp struct {
	Name   string `json:"name"`
	Status string `json:"status"`
	Note   string `json:"note,omitempty"`
}

type statusCountsResp struct {
	Accepted int `json:"accepted"`
	Pending  int `json:"pending"`
	Rejected int `json:"rejected"`
}

type candidateResultResp struct {
	Start     string                  `json:"start"`
	End       string                  `json:"end"`
	Key       string                  `json:"key"`
	Index     int                     `json:"index"`
	Responses []candidateResponseResp `json:"responses"`
	Counts    statusCountsResp        `json:"counts"`
	Total     int                     `json:"total"`
}

type resultsResp struct {
	Request requestResp           `json:"request"`
	Results []candidateResultResp `json:"results"`
}

func (h *handler) newResultsResp(out poll.ResultsOutput) resultsResp {
	results := make([]candidateResultResp, len(out.Results))
	for i, r := range out.Results {
		responses := make([]candidateResponseResp, len(r.Responses))
		for j, resp := range r.Responses {
			responses[j] = candidateResponseResp{
				Name:   resp.Name,
				Status: string(resp.Status),
				Note:   resp.Note,
			}
		}
		results[i] = candidateResultResp{
			Start:     r.Candidate.Start,
			End:       r.Candidate.End,
			Key:       r.Key,
			Index:     r.Index,
			Responses: responses,
			Counts: statusCountsResp{
				Accepted: r.Counts.Accepted,
				Pending:  r.Counts.Pending,
				Rejected: r.Counts.Rejected,
			},
			Total: r.Total,
		}
	}
	return resultsResp{
		Request: newRequestResp(out.Request),
		Results: results,
	}
}

type answerRankResp struct {
	Rank  int `json:"rank"`
	Total int `json:"total"`
}

func (h *handler) newAnswerRankResp(out poll.AnswerRankOutput) answerRankResp {
	return answerRankResp{Rank: out.Rank, Total: out.Total}
}
