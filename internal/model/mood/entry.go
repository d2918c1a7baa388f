package mood

import "time"

// Canonical mood values. Free-text moods outside this set are stored
// as-is; analytics falls back to a default score for them.
const (
	Great    = "great"
	Okay     = "okay"
	Sad      = "sad"
	Stressed = "stressed"
)

// Entry is a single timestamped self-reported mood check-in. Entries
// are immutable once saved; there is no update or delete operation.
type Entry struct {
	UserID    string    `json:"userId"`
	Mood      string    `json:"mood"`
	Note      string    `json:"note"`
	Timestamp time.Time `json:"timestamp"`
}
