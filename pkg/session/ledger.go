package session

import (
	"errors"
	"sort"
	"time"
)

var (
	// ErrZeroDuration rejects sessions that recorded no time. The engine's
	// stop contract lets callers drop these silently.
	ErrZeroDuration = errors.New("session: zero duration")
	// ErrNotFound reports an unknown session id.
	ErrNotFound = errors.New("session: not found")
	// ErrBadRating rejects an unknown reflection rating.
	ErrBadRating = errors.New("session: unknown rating")
)

// Ledger is the append-only log of finalized sessions. Mutation is limited to
// reflection patches, explicit edits, and outright deletion for corrections.
type Ledger struct {
	sessions []Session
}

// NewLedger wraps an existing slice, as hydrated from storage.
func NewLedger(sessions []Session) *Ledger {
	return &Ledger{sessions: sessions}
}

// Append adds a finalized session. Zero or negative durations are rejected.
func (l *Ledger) Append(s Session) error {
	if s.DurationMs <= 0 {
		return ErrZeroDuration
	}
	l.sessions = append(l.sessions, s)
	return nil
}

// Find returns the session with the given id.
func (l *Ledger) Find(id string) (Session, bool) {
	for _, s := range l.sessions {
		if s.ID == id {
			return s, true
		}
	}
	return Session{}, false
}

// Reflect attaches or replaces the reflection fields. No other field of the
// record can change through this path.
func (l *Ledger) Reflect(id string, rating Rating, comment string) error {
	if !ValidRating(rating) {
		return ErrBadRating
	}
	for i := range l.sessions {
		if l.sessions[i].ID == id {
			l.sessions[i].Rating = rating
			l.sessions[i].Comment = comment
			return nil
		}
	}
	return ErrNotFound
}

// Edit is the deliberate correction path: it rewrites the recorded interval
// and recomputes the duration, which must remain positive.
func (l *Ledger) Edit(id string, started, ended time.Time) error {
	d := ended.Sub(started)
	if d <= 0 {
		return ErrZeroDuration
	}
	for i := range l.sessions {
		if l.sessions[i].ID == id {
			l.sessions[i].StartedAt.Time = started
			l.sessions[i].EndedAt.Time = ended
			l.sessions[i].DurationMs = d.Milliseconds()
			return nil
		}
	}
	return ErrNotFound
}

// Delete removes a record outright and returns it so callers can recalculate
// any linked task time.
func (l *Ledger) Delete(id string) (Session, error) {
	for i := range l.sessions {
		if l.sessions[i].ID == id {
			removed := l.sessions[i]
			l.sessions = append(l.sessions[:i], l.sessions[i+1:]...)
			return removed, nil
		}
	}
	return Session{}, ErrNotFound
}

// All returns the backing slice, oldest first.
func (l *Ledger) All() []Session {
	return l.sessions
}

// Sorted returns a copy ordered by end time, newest first, for display.
func (l *Ledger) Sorted() []Session {
	out := make([]Session, len(l.sessions))
	copy(out, l.sessions)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].EndedAt.After(out[j].EndedAt.Time)
	})
	return out
}

// Len reports the number of records.
func (l *Ledger) Len() int {
	return len(l.sessions)
}
