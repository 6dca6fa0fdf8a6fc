package http

import (
	"meetpoll/internal/autofill"
	"meetpoll/internal/model"
)

// --- Request DTOs ---

type runCandidateReq struct {
	Start string `json:"start" binding:"required"`
	End   string `json:"end"   binding:"required"`
	Index int    `json:"index"`
}

type runReq struct {
	Candidates []runCandidateReq `json:"candidates" binding:"required,min=1,dive"`
}

func (r runReq) toInput() autofill.RunInput {
	candidates := make([]autofill.Candidate, len(r.Candidates))
	for i, c := range r.Candidates {
		candidates[i] = autofill.Candidate{
			Start: c.Start,
			End:   c.End,
			Index: c.Index,
		}
	}
	return autofill.RunInput{Candidates: candidates}
}

type llmSlotReq struct {
	ID              int    `json:"id"                binding:"required"`
	ScheduleGroupID int    `json:"schedule_group_id"`
	Date            string `json:"date"       binding:"required"`
	StartTime       string `json:"start_time" binding:"required"`
	EndTime         string `json:"end_time"   binding:"required"`
}

type llmReq struct {
	Slots           []llmSlotReq `json:"slots" binding:"required,min=1,dive"`
	FilterCondition string       `json:"filter_condition"`
}

func (r llmReq) toInput() autofill.LLMInput {
	slots := make([]autofill.Slot, len(r.Slots))
	for i, s := range r.Slots {
		slots[i] = autofill.Slot{
			ID:              s.ID,
			ScheduleGroupID: s.ScheduleGroupID,
			Date:            s.Date,
			StartTime:       s.StartTime,
			EndTime:         s.EndTime,
		}
	}
	return autofill.LLMInput{
		Slots:           slots,
		FilterCondition: r.FilterCondition,
	}
}

// --- Response DTOs ---

type candidateResultResp struct {
	Index    int    `json:"index"`
	Start    string `json:"start"`
	End      string `json:"end"`
	Response string `json:"response"`
	Status   string `json:"status"`
	Comment  string `json:"comment"`
}

type runResp struct {
	Results []candidateResultResp `json:"results"`
}

func (h *handler) newRunResp(out autofill.RunOutput) runResp {
	results := make([]candidateResultResp, len(out.Results))
	for i, r := range out.Results {
		results[i] = candidateResultResp{
			Index:    r.Index,
			Start:    r.Start,
			End:      r.End,
			Response: string(r.Response),
			Status:   string(model.StatusFromResponse(r.Response)),
			Comment:  r.Comment,
		}
	}
	return runResp{Results: results}
}

type classifiedSlotResp struct {
	ID              int    `json:"id"`
	ScheduleGroupID int    `json:"schedule_group_id"`
	Date            string `json:"date"`
	StartTime       string `json:"start_time"`
	EndTime         string `json:"end_time"`
	Option          string `json:"option"`
	Reason          string `json:"reason"`
}

type llmResp struct {
	Slots []classifiedSlotResp `json:"slots"`
}

func (h *handler) newLLMResp(out autofill.LLMOutput) llmResp {
	slots := make([]classifiedSlotResp, len(out.Slots))
	for i, s := range out.Slots {
		slots[i] = classifiedSlotResp{
			ID:              s.ID,
			ScheduleGroupID: s.ScheduleGroupID,
			Date:            s.Date,
			StartTime:       s.StartTime,
			EndTime:         s.EndTime,
			Option:          string(s.Option),
			Reason:          s.Reason,
		}
	}
	return llmResp{Slots: slots}
}
