package candidateid

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"
)

// Candidate is the minimal shape a key can be derived from.
type Candidate struct {
	Start string `json:"start,omitempty"`
	End   string `json:"end,omitempty"`
}

// FromDates builds a trip-candidate key "YYYY-MM-DD_YYYY-MM-DD".
func FromDates(start, end time.Time) string {
	return fmt.Sprintf("%s_%s", start.UTC().Format("2006-01-02"), end.UTC().Format("2006-01-02"))
}

// FromCandidate derives a stable key for a candidate. Date-range candidates
// use the date-pair form; anything else falls back to an 8-hex content hash
// plus the row index.
func FromCandidate(c Candidate, index int) string {
	if c.Start != "" && c.End != "" {
		start, err1 := time.Parse(time.RFC3339, c.Start)
		end, err2 := time.Parse(time.RFC3339, c.End)
		if err1 == nil && err2 == nil {
			return FromDates(start, end)
		}
	}
	return fmt.Sprintf("%s_%d", contentHash(c), index)
}

// Parse recovers the date range from a date-pair key. Returns false for
// hash-based or malformed keys.
func Parse(id string) (start, end time.Time, ok bool) {
	parts := strings.Split(id, "_")
	if len(parts) != 2 {
		return time.Time{}, time.Time{}, false
	}
	start, err1 := time.Parse("2006-01-02", parts[0])
	end, err2 := time.Parse("2006-01-02", parts[1])
	if err1 != nil || err2 != nil {
		return time.Time{}, time.Time{}, false
	}
	return start, end, true
}

// Valid reports whether id is a parseable date-pair key.
func Valid(id string) bool {
	_, _, ok := Parse(id)
	return ok
}

// contentHash returns the first 8 hex chars of the sha256 of the
// key-sorted JSON encoding of the candidate.
func contentHash(c Candidate) string {
	m := map[string]string{}
	if c.Start != "" {
		m["start"] = c.Start
	}
	if c.End != "" {
		m["end"] = c.End
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	ordered := make([]string, 0, len(keys))
	for _, k := range keys {
		v, _ := json.Marshal(m[k])
		ordered = append(ordered, fmt.Sprintf("%q:%s", k, v))
	}

	sum := sha256.Sum256([]byte("{" + strings.Join(ordered, ",") + "}"))
	return hex.EncodeToString(sum[:])[:8]
}
