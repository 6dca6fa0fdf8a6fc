package conflict

import "time"

// intersects reports whether [start1, end1) and [start2, end2) share any time.
func intersects(start1, end1, start2, end2 time.Time) bool {
	return start1.Before(end2) && start2.Before(end1)
}

// Classify determines how an existing event overlaps a candidate slot.
// Complete means the candidate is fully contained in the event; any other
// intersection is Partial.
func Classify(candidateStart, candidateEnd, eventStart, eventEnd time.Time) OverlapKind {
	if !intersects(candidateStart, candidateEnd, eventStart, eventEnd) {
		return OverlapNone
	}

	if !eventStart.After(candidateStart) && !candidateEnd.After(eventEnd) {
		return OverlapComplete
	}

	return OverlapPartial
}
