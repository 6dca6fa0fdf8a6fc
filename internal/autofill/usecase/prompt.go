package usecase

import (
	"encoding/json"
	"fmt"
	"strings"

	"meetpoll/internal/autofill"
	"meetpoll/pkg/gcalendar"
)

const classifySystemPrompt = `You are a scheduling expert.

You are given a list of candidate time slots for a meeting and a personal calendar.
For each candidate slot, compare it with the existing calendar events and choose one of the following options:
Attend, Join Late, Leave Early, or Not Attend.

Please strictly follow these rules:

1. If there are no calendar events within 1 hour before or after the candidate slot, you must choose 「参加」.

2. If the candidate slot overlaps partially with a calendar event, and the calendar event starts before and ends before the candidate slot ends, choose 「途中参加」.

3. If the candidate slot overlaps partially with a calendar event, and the candidate slot starts before and ends before the calendar event ends, choose 「途中退出」.

4. If the candidate slot is completely overlapped by a calendar event, choose 「不参加」.

Finally, provide a reason for your choice.`

// classificationSchema is the structured-output contract for one batch:
// one entry per candidate slot, echoing the slot and adding option + reason.
var classificationSchema = map[string]interface{}{
	"type": "object",
	"properties": map[string]interface{}{
		"schedule": map[string]interface{}{
			"type": "array",
			"items": map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"id":          map[string]interface{}{"type": "integer"},
					"schedule_id": map[string]interface{}{"type": "integer"},
					"date":        map[string]interface{}{"type": "string"},
					"start_time":  map[string]interface{}{"type": "string"},
					"end_time":    map[string]interface{}{"type": "string"},
					"option": map[string]interface{}{
						"type": "string",
						"enum": []string{
							string(autofill.OptionAttend),
							string(autofill.OptionJoinLate),
							string(autofill.OptionLeaveEarly),
							string(autofill.OptionNotAttend),
						},
					},
					"reason": map[string]interface{}{"type": "string"},
				},
				"required": []string{"id", "schedule_id", "option", "reason"},
			},
		},
	},
	"required": []string{"schedule"},
}

type promptSlot struct {
	ID         int    `json:"id"`
	ScheduleID int    `json:"schedule_id"`
	Date       string `json:"date"`
	StartTime  string `json:"start_time"`
	EndTime    string `json:"end_time"`
}

// buildClassifyPrompt renders one batch's slots, the flattened event list,
// and the optional free-text filter condition.
func buildClassifyPrompt(slots []autofill.Slot, events []gcalendar.Event, filterCondition string) string {
	promptSlots := make([]promptSlot, 0, len(slots))
	for _, s := range slots {
		promptSlots = append(promptSlots, promptSlot{
			ID:         s.ID,
			ScheduleID: s.ScheduleGroupID,
			Date:       s.Date,
			StartTime:  s.StartTime,
			EndTime:    s.EndTime,
		})
	}
	slotsJSON, _ := json.Marshal(promptSlots)

	var b strings.Builder
	b.WriteString("--- candidate slot ---\n")
	b.Write(slotsJSON)
	b.WriteString("\n\n--- calendar ---\n")
	for _, ev := range events {
		b.WriteString(fmt.Sprintf("### 予定名: %s\n### 開始時間: %s\n### 終了時間: %s\n\n",
			ev.Summary, eventBoundary(ev.Start), eventBoundary(ev.End)))
	}
	if filterCondition != "" {
		b.WriteString("\n### search condition\n")
		b.WriteString(filterCondition)
		b.WriteString("\n")
	}
	return b.String()
}

func eventBoundary(et gcalendar.EventTime) string {
	if et.DateTime != "" {
		return et.DateTime
	}
	return et.Date
}

type classifiedPayload struct {
	Schedule []struct {
		ID         int    `json:"id"`
		ScheduleID int    `json:"schedule_id"`
		Date       string `json:"date"`
		StartTime  string `json:"start_time"`
		EndTime    string `json:"end_time"`
		Option     string `json:"option"`
		Reason     string `json:"reason"`
	} `json:"schedule"`
}

// parseClassification validates the model's structured output against the
// batch: every slot must be classified exactly once with a known option.
// The slot fields in the result always come from the batch, never from the
// model's echo.
func parseClassification(text string, batch []autofill.Slot) ([]autofill.ClassifiedSlot, error) {
	var payload classifiedPayload
	if err := json.Unmarshal([]byte(text), &payload); err != nil {
		return nil, fmt.Errorf("invalid output document: %w", err)
	}

	byID := make(map[int]autofill.ClassifiedSlot, len(batch))
	for _, entry := range payload.Schedule {
		opt := autofill.Option(entry.Option)
		if !opt.Valid() {
			return nil, fmt.Errorf("unknown option %q for slot %d", entry.Option, entry.ID)
		}
		if _, dup := byID[entry.ID]; dup {
			return nil, fmt.Errorf("slot %d classified twice", entry.ID)
		}
		byID[entry.ID] = autofill.ClassifiedSlot{
			Option: opt,
			Reason: entry.Reason,
		}
	}

	results := make([]autofill.ClassifiedSlot, 0, len(batch))
	for _, slot := range batch {
		classified, ok := byID[slot.ID]
		if !ok {
			return nil, fmt.Errorf("slot %d missing from output", slot.ID)
		}
		classified.Slot = slot
		results = append(results, classified)
	}
	return results, nil
}
