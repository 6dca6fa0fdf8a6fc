package conflict

// OverlapKind classifies how a candidate slot overlaps an existing event.
type OverlapKind string

const (
	OverlapNone     OverlapKind = "none"
	OverlapPartial  OverlapKind = "partial"
	OverlapComplete OverlapKind = "complete"
)

// ConflictEvent is one existing event that overlaps a candidate slot.
// Start and End are localized display strings.
type ConflictEvent struct {
	Summary string
	Start   string
	End     string
}

// Analysis is the aggregate overlap verdict for one candidate slot.
type Analysis struct {
	Kind   OverlapKind
	Events []ConflictEvent
}

// ResponseType is the attendance verdict derived from an Analysis.
type ResponseType string

const (
	ResponseGood        ResponseType = "good"
	ResponseConditional ResponseType = "conditional"
	ResponseBad         ResponseType = "bad"
)

// Response is a human-readable attendance answer for one candidate slot.
type Response struct {
	Type    ResponseType
	Comment string
}
