package autofill

import "meetpoll/internal/conflict"

// FallbackComment is attached when a candidate's events could not be
// fetched and the answer defaults to attend.
const FallbackComment = "予定の取得に失敗しましたが、参加可能として設定します"

// Candidate is one proposed time slot to judge. Start and End are ISO-8601
// datetime strings; Index ties the result back to the originating row.
type Candidate struct {
	Start string
	End   string
	Index int
}

// RunInput is the calendar-flow input.
type RunInput struct {
	Candidates []Candidate
}

// CandidateResult is one judged candidate with the input echoed back.
type CandidateResult struct {
	Index    int
	Start    string
	End      string
	Response conflict.ResponseType
	Comment  string
}

// RunOutput is the calendar-flow result, in input order.
type RunOutput struct {
	Results []CandidateResult
}

// Slot is one candidate in the model-backed flow.
type Slot struct {
	ID              int
	ScheduleGroupID int
	Date            string
	StartTime       string
	EndTime         string
}

// Option is the model's four-way attendance classification.
type Option string

const (
	OptionAttend     Option = "参加"
	OptionJoinLate   Option = "途中参加"
	OptionLeaveEarly Option = "途中退出"
	OptionNotAttend  Option = "不参加"
)

// Valid reports whether o is one of the four allowed options.
func (o Option) Valid() bool {
	switch o {
	case OptionAttend, OptionJoinLate, OptionLeaveEarly, OptionNotAttend:
		return true
	}
	return false
}

// ClassifiedSlot is a slot plus the model's verdict.
type ClassifiedSlot struct {
	Slot
	Option Option
	Reason string
}

// ProgressFunc receives the results classified so far plus a status message
// after each completed batch.
type ProgressFunc func(done []ClassifiedSlot, message string)

// LLMInput is the model-backed flow input. FilterCondition is a free-text
// constraint appended verbatim to the prompt; OnProgress may be nil.
type LLMInput struct {
	Slots           []Slot
	FilterCondition string
	OnProgress      ProgressFunc
}

// LLMOutput is the model-backed flow result.
type LLMOutput struct {
	Slots []ClassifiedSlot
}
