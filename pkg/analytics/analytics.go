// Package analytics derives goal progress, streaks, and rollups from the
// session ledger. Everything here is a pure function of the sessions and an
// explicit now; nothing is cached or persisted.
package analytics

import (
	"time"

	"github.com/stintapp/stint/pkg/session"
	"github.com/stintapp/stint/pkg/timeutil"
)

// MaxProductiveMinutesPerDay is the normalization ceiling for the
// productivity percentage (15 hours). It is not a cap on tracked time.
const MaxProductiveMinutesPerDay = 900

// Totals are summed session durations bucketed on each session's end time.
type Totals struct {
	TodayMs int64
	WeekMs  int64
	MonthMs int64
}

// GoalTotals sums durations within the local calendar day, the Monday-based
// week, and the calendar month containing now.
func GoalTotals(sessions []session.Session, now time.Time) Totals {
	dayStart := timeutil.StartOfDay(now)
	weekStart := timeutil.StartOfWeek(now)
	monthStart := timeutil.StartOfMonth(now)

	var t Totals
	for _, s := range sessions {
		if s.DurationMs <= 0 {
			continue
		}
		ended := s.EndedAt.Local()
		if ended.After(now) {
			continue
		}
		if !ended.Before(dayStart) {
			t.TodayMs += s.DurationMs
		}
		if !ended.Before(weekStart) {
			t.WeekMs += s.DurationMs
		}
		if !ended.Before(monthStart) {
			t.MonthMs += s.DurationMs
		}
	}
	return t
}

// Streak counts consecutive local calendar days, walking backward from today,
// that have at least one session with positive duration. A day with none
// breaks the walk; an empty today yields zero.
func Streak(sessions []session.Session, now time.Time) int {
	days := make(map[string]bool, len(sessions))
	for _, s := range sessions {
		if s.DurationMs > 0 {
			days[timeutil.DayKey(s.EndedAt.Time)] = true
		}
	}

	streak := 0
	day := timeutil.StartOfDay(now)
	for days[timeutil.DayKey(day)] {
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak
}

// ProductivityPercent normalizes today's total against the daily ceiling,
// clamped to [0, 100].
func ProductivityPercent(todayMs int64) float64 {
	minutes := float64(todayMs) / float64(time.Minute.Milliseconds())
	pct := minutes / MaxProductiveMinutesPerDay * 100
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}
