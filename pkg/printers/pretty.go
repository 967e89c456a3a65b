// Package printers renders service output for the terminal.
package printers

import (
	"fmt"
	"time"

	humanize "github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"github.com/stintapp/stint/pkg/analytics"
	"github.com/stintapp/stint/pkg/app"
	"github.com/stintapp/stint/pkg/session"
	"github.com/stintapp/stint/pkg/timer"
	"github.com/stintapp/stint/pkg/userdata"
)

type PrettyPrint struct {
	ShowID bool
}

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Println(title)
}

func (pp *PrettyPrint) Warn(msg string) {
	w := color.New(color.FgHiYellow)
	_, _ = w.Println(msg)
}

// Snapshot prints the live timer state with elapsed time computed at now.
func (pp *PrettyPrint) Snapshot(snap timer.Snapshot, subjectName string, cfg timer.PomodoroConfig, now time.Time) {
	t := color.New()
	f := color.New(color.Faint)

	switch snap.State() {
	case timer.Idle:
		_, _ = f.Println("no timer running")
		return
	case timer.Paused:
		_, _ = t.Printf("%s  %s (paused)\n", formatDuration(snap.Elapsed(now)), subjectName)
	default:
		_, _ = t.Printf("%s  %s\n", formatDuration(snap.Elapsed(now)), subjectName)
	}

	if snap.Mode == timer.Pomodoro {
		_, _ = f.Printf("%s · cycle %d · %s left in phase\n",
			snap.Phase, snap.CycleCount+1, formatDuration(snap.PhaseRemaining(now, cfg)))
	}
}

// Sessions renders ledger records, newest first.
func (pp *PrettyPrint) Sessions(records []session.Session, subjectName func(string) string) {
	if len(records) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" none\n\n")
		return
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	if pp.ShowID {
		tbl.AddRow("ID", "ENDED", "SUBJECT", "DURATION", "MODE", "RATING")
	} else {
		tbl.AddRow("ENDED", "SUBJECT", "DURATION", "MODE", "RATING")
	}
	for _, rec := range records {
		rating := string(rec.Rating)
		if rating == "" {
			rating = "-"
		}
		ended := humanize.Time(rec.EndedAt.Time)
		if pp.ShowID {
			tbl.AddRow(rec.ID, ended, subjectName(rec.SubjectID), formatDuration(rec.Duration()), string(rec.Mode), rating)
		} else {
			tbl.AddRow(ended, subjectName(rec.SubjectID), formatDuration(rec.Duration()), string(rec.Mode), rating)
		}
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
}

// Stats renders the aggregator output with goal progress.
func (pp *PrettyPrint) Stats(stats app.Stats, settings userdata.Settings) {
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow("today", goalCell(stats.Totals.TodayMs, settings.DailyGoalMinutes))
	tbl.AddRow("this week", goalCell(stats.Totals.WeekMs, settings.WeeklyGoalMinutes))
	tbl.AddRow("this month", goalCell(stats.Totals.MonthMs, settings.MonthlyGoalMinutes))
	tbl.AddRow("streak", fmt.Sprintf("%d days", stats.Streak))
	tbl.AddRow("productivity", fmt.Sprintf("%.0f%%", stats.Productivity))
	_, _ = fmt.Fprintln(color.Output, tbl)

	if len(stats.BySubject) > 0 {
		pp.NewLine()
		pp.Title("By subject")
		sub := uitable.New()
		sub.Separator = "  "
		for _, bucket := range stats.BySubject {
			sub.AddRow(bucket.Key, formatDuration(time.Duration(bucket.TotalMs)*time.Millisecond))
		}
		_, _ = fmt.Fprintln(color.Output, sub)
	}
}

// Series renders a time-bucketed rollup.
func (pp *PrettyPrint) Series(buckets []analytics.Bucket) {
	if len(buckets) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" none\n\n")
		return
	}
	tbl := uitable.New()
	tbl.Separator = "  "
	for _, bucket := range buckets {
		tbl.AddRow(bucket.Key, formatDuration(time.Duration(bucket.TotalMs)*time.Millisecond))
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
}

// Tasks renders the backlog.
func (pp *PrettyPrint) Tasks(tasks []userdata.Task, subjectName func(string) string) {
	if len(tasks) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" none\n\n")
		return
	}
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow("", "TASK", "SUBJECT", "TIME", "DUE")
	for _, task := range tasks {
		mark := " "
		if task.Done {
			mark = "x"
		}
		due := task.DueDate
		if due == "" {
			due = "-"
		}
		tbl.AddRow(mark, task.Title, subjectName(task.SubjectID), formatDuration(time.Duration(task.AccumulatedMs)*time.Millisecond), due)
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
}

func goalCell(totalMs int64, goalMinutes int) string {
	total := formatDuration(time.Duration(totalMs) * time.Millisecond)
	if goalMinutes <= 0 {
		return total
	}
	return fmt.Sprintf("%s / %s", total, formatDuration(time.Duration(goalMinutes)*time.Minute))
}

func formatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	h := d / time.Hour
	m := (d % time.Hour) / time.Minute
	s := (d % time.Minute) / time.Second
	if h > 0 {
		return fmt.Sprintf("%dh%02dm", h, m)
	}
	if m > 0 {
		return fmt.Sprintf("%dm%02ds", m, s)
	}
	return fmt.Sprintf("%ds", s)
}
