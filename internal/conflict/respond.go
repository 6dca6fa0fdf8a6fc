package conflict

import (
	"fmt"
	"strings"

	"meetpoll/pkg/dateutil"
)

// Responder turns an overlap analysis into a respondent-facing answer.
type Responder struct {
	resolver *dateutil.Resolver
}

// NewResponder creates a Responder rendering datetimes in the resolver's
// timezone.
func NewResponder(resolver *dateutil.Resolver) *Responder {
	return &Responder{resolver: resolver}
}

// Synthesize maps an overlap kind and its conflicting events to an
// attendance verdict with an explanatory comment. Unknown kinds fall back
// to the no-conflict answer.
func (r *Responder) Synthesize(kind OverlapKind, events []ConflictEvent) Response {
	switch kind {
	case OverlapPartial:
		return Response{
			Type: ResponseConditional,
			Comment: fmt.Sprintf(
				"⚠️ %d件の予定と一部重複しています。調整可能です。\n\n【重複する予定】\n%s",
				len(events), r.describeEvents(events)),
		}
	case OverlapComplete:
		return Response{
			Type: ResponseBad,
			Comment: fmt.Sprintf(
				"❌ %d件の予定と完全に重複しています。参加困難です。\n\n【重複する予定】\n%s",
				len(events), r.describeEvents(events)),
		}
	default:
		return Response{
			Type:    ResponseGood,
			Comment: "✅ この時間帯は予定がありません。参加可能です。",
		}
	}
}

// describeEvents renders one bullet per conflicting event as
// ・summary（start〜end）, with datetimes compacted to "M月D日 HH:MM".
func (r *Responder) describeEvents(events []ConflictEvent) string {
	lines := make([]string, 0, len(events))
	for _, ev := range events {
		lines = append(lines, fmt.Sprintf("・%s（%s〜%s）",
			ev.Summary,
			r.resolver.ReformatDisplay(ev.Start),
			r.resolver.ReformatDisplay(ev.End)))
	}
	return strings.Join(lines, "\n")
}
