// Package session defines the finalized study session record and the
// append-only ledger they live in.
package session

import (
	"time"

	"github.com/google/uuid"

	"github.com/stintapp/stint/pkg/timer"
	"github.com/stintapp/stint/pkg/timeutil"
)

// Rating is the reflection a user attaches to a finished session. Empty means
// no reflection has been captured yet; that is a valid state forever.
type Rating string

const (
	RatingNone       Rating = ""
	RatingProductive Rating = "productive"
	RatingAverage    Rating = "average"
	RatingDistracted Rating = "distracted"
)

// ValidRating reports whether r is one of the known ratings (empty included).
func ValidRating(r Rating) bool {
	switch r {
	case RatingNone, RatingProductive, RatingAverage, RatingDistracted:
		return true
	}
	return false
}

// Session is one finalized timed interval. DurationMs always equals
// EndedAt - StartedAt at creation; reflection fields are the only ones that
// mutate without an explicit user edit.
type Session struct {
	ID         string             `json:"id"`
	SubjectID  string             `json:"subjectId"`
	TaskID     string             `json:"taskId,omitempty"`
	StartedAt  timeutil.Timestamp `json:"startedAt"`
	EndedAt    timeutil.Timestamp `json:"endedAt"`
	DurationMs int64              `json:"durationMs"`
	Mode       timer.Mode         `json:"mode"`
	Phase      timer.Phase        `json:"phase"`
	Rating     Rating             `json:"reflectionRating,omitempty"`
	Comment    string             `json:"reflectionComment,omitempty"`
	CreatedAt  timeutil.Timestamp `json:"createdAt"`
}

// FromResult builds a session from a timer stop draft. The start time is the
// end time minus the active duration, so paused stretches fall outside the
// recorded interval.
func FromResult(res timer.Result, now time.Time) Session {
	return Session{
		ID:         uuid.NewString(),
		SubjectID:  res.SubjectID,
		TaskID:     res.TaskID,
		StartedAt:  timeutil.Timestamp{Time: res.EndedAt.Add(-res.Duration)},
		EndedAt:    timeutil.Timestamp{Time: res.EndedAt},
		DurationMs: res.Duration.Milliseconds(),
		Mode:       res.Mode,
		Phase:      res.Phase,
		CreatedAt:  timeutil.Timestamp{Time: now},
	}
}

// Duration returns the recorded duration as a time.Duration.
func (s Session) Duration() time.Duration {
	return time.Duration(s.DurationMs) * time.Millisecond
}
