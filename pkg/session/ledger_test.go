package session

import (
	"errors"
	"testing"
	"time"

	"github.com/stintapp/stint/pkg/timer"
	"github.com/stintapp/stint/pkg/timeutil"
)

func sessionAt(id string, ended time.Time, d time.Duration) Session {
	return Session{
		ID:         id,
		SubjectID:  "subj",
		StartedAt:  timeutil.Timestamp{Time: ended.Add(-d)},
		EndedAt:    timeutil.Timestamp{Time: ended},
		DurationMs: d.Milliseconds(),
		Mode:       timer.Stopwatch,
		Phase:      timer.Focus,
		CreatedAt:  timeutil.Timestamp{Time: ended},
	}
}

func TestAppendRejectsZeroDuration(t *testing.T) {
	l := NewLedger(nil)
	s := sessionAt("a", time.Now(), 0)
	if err := l.Append(s); !errors.Is(err, ErrZeroDuration) {
		t.Fatalf("want ErrZeroDuration, got %v", err)
	}
	if l.Len() != 0 {
		t.Fatalf("zero-duration session must never be present")
	}
}

func TestReflectOnlyTouchesReflectionFields(t *testing.T) {
	now := time.Now()
	l := NewLedger(nil)
	s := sessionAt("a", now, time.Hour)
	if err := l.Append(s); err != nil {
		t.Fatalf("append: %v", err)
	}

	if err := l.Reflect("a", RatingProductive, "deep work"); err != nil {
		t.Fatalf("reflect: %v", err)
	}
	got, ok := l.Find("a")
	if !ok {
		t.Fatalf("session lost")
	}
	if got.Rating != RatingProductive || got.Comment != "deep work" {
		t.Fatalf("reflection not applied: %+v", got)
	}
	if got.DurationMs != s.DurationMs || !got.EndedAt.Equal(s.EndedAt.Time) {
		t.Fatalf("reflect mutated accounting fields")
	}

	if err := l.Reflect("a", Rating("great"), ""); !errors.Is(err, ErrBadRating) {
		t.Fatalf("want ErrBadRating, got %v", err)
	}
	if err := l.Reflect("missing", RatingAverage, ""); !errors.Is(err, ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestEditRecomputesDuration(t *testing.T) {
	now := time.Now()
	l := NewLedger([]Session{sessionAt("a", now, time.Hour)})

	started := now.Add(-30 * time.Minute)
	if err := l.Edit("a", started, now); err != nil {
		t.Fatalf("edit: %v", err)
	}
	got, _ := l.Find("a")
	if got.DurationMs != (30 * time.Minute).Milliseconds() {
		t.Fatalf("duration not recomputed: %d", got.DurationMs)
	}

	if err := l.Edit("a", now, now); !errors.Is(err, ErrZeroDuration) {
		t.Fatalf("edit to zero must be rejected, got %v", err)
	}
}

func TestDeleteReturnsRemoved(t *testing.T) {
	now := time.Now()
	l := NewLedger([]Session{
		sessionAt("a", now.Add(-time.Hour), 10*time.Minute),
		sessionAt("b", now, 20*time.Minute),
	})

	removed, err := l.Delete("a")
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if removed.ID != "a" {
		t.Fatalf("wrong session removed: %s", removed.ID)
	}
	if l.Len() != 1 {
		t.Fatalf("want 1 remaining, got %d", l.Len())
	}
	if _, err := l.Delete("a"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestSortedNewestFirst(t *testing.T) {
	now := time.Now()
	l := NewLedger([]Session{
		sessionAt("old", now.Add(-2*time.Hour), time.Minute),
		sessionAt("new", now, time.Minute),
		sessionAt("mid", now.Add(-time.Hour), time.Minute),
	})
	got := l.Sorted()
	if got[0].ID != "new" || got[1].ID != "mid" || got[2].ID != "old" {
		t.Fatalf("unexpected order: %s %s %s", got[0].ID, got[1].ID, got[2].ID)
	}
}

func TestFromResult(t *testing.T) {
	ended := time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)
	res := timer.Result{
		SubjectID: "subj",
		TaskID:    "task",
		EndedAt:   ended,
		Duration:  6 * time.Minute,
		Mode:      timer.Stopwatch,
		Phase:     timer.Focus,
	}
	s := FromResult(res, ended)
	if s.ID == "" {
		t.Fatalf("missing id")
	}
	if !s.StartedAt.Equal(ended.Add(-6 * time.Minute)) {
		t.Fatalf("startedAt: %v", s.StartedAt)
	}
	if s.DurationMs != s.EndedAt.Sub(s.StartedAt.Time).Milliseconds() {
		t.Fatalf("duration invariant broken")
	}
}
