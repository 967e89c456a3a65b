package analytics

import (
	"testing"
	"time"

	"github.com/stintapp/stint/pkg/session"
	"github.com/stintapp/stint/pkg/timer"
	"github.com/stintapp/stint/pkg/timeutil"
)

func endedAt(ended time.Time, d time.Duration) session.Session {
	return session.Session{
		ID:         ended.Format(time.RFC3339Nano),
		SubjectID:  "subj",
		StartedAt:  timeutil.Timestamp{Time: ended.Add(-d)},
		EndedAt:    timeutil.Timestamp{Time: ended},
		DurationMs: d.Milliseconds(),
		Mode:       timer.Stopwatch,
		Phase:      timer.Focus,
	}
}

func withSubject(s session.Session, subject string) session.Session {
	s.SubjectID = subject
	return s
}

func TestGoalTotalsToday(t *testing.T) {
	// Mid-month Thursday so day, week, and month windows are distinct.
	now := time.Date(2026, 8, 13, 18, 0, 0, 0, time.Local)

	sessions := []session.Session{
		endedAt(now.Add(-2*time.Hour), 30*time.Minute),
		endedAt(now.Add(-time.Hour), 30*time.Minute),
		endedAt(now.AddDate(0, 0, -2), time.Hour),  // Tuesday: week + month
		endedAt(now.AddDate(0, 0, -7), time.Hour),  // previous week: month only
		endedAt(now.AddDate(0, -1, 0), time.Hour),  // previous month: excluded
	}

	got := GoalTotals(sessions, now)
	if want := int64(3600000); got.TodayMs != want {
		t.Fatalf("todayMs: want %d, got %d", want, got.TodayMs)
	}
	if want := (30*time.Minute + 30*time.Minute + time.Hour).Milliseconds(); got.WeekMs != want {
		t.Fatalf("weekMs: want %d, got %d", want, got.WeekMs)
	}
	if want := (3 * time.Hour).Milliseconds(); got.MonthMs != want {
		t.Fatalf("monthMs: want %d, got %d", want, got.MonthMs)
	}
}

func TestWeekStartsMonday(t *testing.T) {
	// Sunday evening: the week began the previous Monday, six days back.
	sunday := time.Date(2026, 8, 16, 20, 0, 0, 0, time.Local)
	mondaySession := endedAt(time.Date(2026, 8, 10, 9, 0, 0, 0, time.Local), time.Hour)
	priorSunday := endedAt(time.Date(2026, 8, 9, 9, 0, 0, 0, time.Local), time.Hour)

	got := GoalTotals([]session.Session{mondaySession, priorSunday}, sunday)
	if want := time.Hour.Milliseconds(); got.WeekMs != want {
		t.Fatalf("weekMs: want %d, got %d", want, got.WeekMs)
	}
}

func TestStreakCountsBackFromToday(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.Local)
	sessions := []session.Session{
		endedAt(now.Add(-time.Hour), 10*time.Minute),
		endedAt(now.AddDate(0, 0, -1), 10*time.Minute),
		endedAt(now.AddDate(0, 0, -2), 10*time.Minute),
		// gap at day -3
		endedAt(now.AddDate(0, 0, -4), 10*time.Minute),
	}
	if got := Streak(sessions, now); got != 3 {
		t.Fatalf("want streak 3, got %d", got)
	}
}

func TestStreakZeroWhenTodayEmpty(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.Local)
	sessions := []session.Session{
		endedAt(now.AddDate(0, 0, -1), 10*time.Minute),
		endedAt(now.AddDate(0, 0, -2), 10*time.Minute),
	}
	if got := Streak(sessions, now); got != 0 {
		t.Fatalf("want streak 0, got %d", got)
	}
}

func TestStreakIgnoresZeroDurationDays(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.Local)
	sessions := []session.Session{
		endedAt(now.Add(-time.Hour), 0),
	}
	if got := Streak(sessions, now); got != 0 {
		t.Fatalf("zero-duration sessions must not qualify, got %d", got)
	}
}

func TestProductivityPercent(t *testing.T) {
	tests := []struct {
		todayMs int64
		want    float64
	}{
		{0, 0},
		{(450 * time.Minute).Milliseconds(), 50},
		{(900 * time.Minute).Milliseconds(), 100},
		{(2000 * time.Minute).Milliseconds(), 100},
	}
	for _, tc := range tests {
		if got := ProductivityPercent(tc.todayMs); got != tc.want {
			t.Fatalf("productivity(%d): want %v, got %v", tc.todayMs, tc.want, got)
		}
	}
}

func TestBySubjectSortsDescending(t *testing.T) {
	now := time.Now()
	sessions := []session.Session{
		withSubject(endedAt(now, 10*time.Minute), "history"),
		withSubject(endedAt(now.Add(-time.Hour), time.Hour), "math"),
		withSubject(endedAt(now.Add(-2*time.Hour), 20*time.Minute), "history"),
	}
	got := BySubject(sessions)
	if len(got) != 2 {
		t.Fatalf("want 2 buckets, got %d", len(got))
	}
	if got[0].Key != "math" || got[0].TotalMs != time.Hour.Milliseconds() {
		t.Fatalf("unexpected first bucket: %+v", got[0])
	}
	if got[1].Key != "history" || got[1].TotalMs != (30*time.Minute).Milliseconds() {
		t.Fatalf("unexpected second bucket: %+v", got[1])
	}
}

func TestSeriesIsGapless(t *testing.T) {
	from := time.Date(2026, 8, 24, 0, 0, 0, 0, time.Local)
	to := time.Date(2026, 8, 26, 23, 0, 0, 0, time.Local)
	sessions := []session.Session{
		endedAt(time.Date(2026, 8, 24, 10, 0, 0, 0, time.Local), time.Hour),
		endedAt(time.Date(2026, 8, 26, 10, 0, 0, 0, time.Local), 30*time.Minute),
	}
	got := Series(sessions, ByDay, from, to)
	if len(got) != 3 {
		t.Fatalf("want 3 day buckets, got %d", len(got))
	}
	if got[0].TotalMs != time.Hour.Milliseconds() {
		t.Fatalf("day 1: %+v", got[0])
	}
	if got[1].TotalMs != 0 {
		t.Fatalf("empty day must be present with zero total: %+v", got[1])
	}
	if got[2].TotalMs != (30 * time.Minute).Milliseconds() {
		t.Fatalf("day 3: %+v", got[2])
	}
}

func TestSeriesByWeekKeysOnMonday(t *testing.T) {
	from := time.Date(2026, 8, 10, 0, 0, 0, 0, time.Local) // a Monday
	to := time.Date(2026, 8, 23, 0, 0, 0, 0, time.Local)
	sessions := []session.Session{
		endedAt(time.Date(2026, 8, 12, 10, 0, 0, 0, time.Local), time.Hour),
		endedAt(time.Date(2026, 8, 19, 10, 0, 0, 0, time.Local), time.Hour),
	}
	got := Series(sessions, ByWeek, from, to)
	if len(got) != 2 {
		t.Fatalf("want 2 week buckets, got %d", len(got))
	}
	if got[0].Key != "2026-08-10" || got[1].Key != "2026-08-17" {
		t.Fatalf("unexpected keys: %s %s", got[0].Key, got[1].Key)
	}
}
