// Package userdata owns the per-profile persisted document: the session
// ledger, subjects, tasks, settings, and the live timer snapshot, all wrapped
// in a schema-versioned envelope under the profile's data key.
package userdata

import (
	"time"

	"github.com/stintapp/stint/pkg/session"
	"github.com/stintapp/stint/pkg/timer"
	"github.com/stintapp/stint/pkg/timeutil"
)

// Subject is a study subject sessions are recorded against.
type Subject struct {
	ID        string             `json:"id"`
	Name      string             `json:"name"`
	Category  string             `json:"category,omitempty"`
	CreatedAt timeutil.Timestamp `json:"createdAt"`
}

// Task is one backlog item, optionally time-tracked through linked sessions.
// AccumulatedMs is derived state: the sum of linked session durations, kept
// current by the service whenever the ledger changes.
type Task struct {
	ID            string             `json:"id"`
	SubjectID     string             `json:"subjectId"`
	Title         string             `json:"title"`
	Done          bool               `json:"done"`
	Daily         bool               `json:"daily,omitempty"`
	DueDate       string             `json:"dueDate,omitempty"`
	AccumulatedMs int64              `json:"accumulatedMs"`
	CreatedAt     timeutil.Timestamp `json:"createdAt"`
}

// WorkoutEntry shares the session/ledger shape without reflection fields.
type WorkoutEntry struct {
	ID         string             `json:"id"`
	Name       string             `json:"name"`
	StartedAt  timeutil.Timestamp `json:"startedAt"`
	EndedAt    timeutil.Timestamp `json:"endedAt"`
	DurationMs int64              `json:"durationMs"`
	CreatedAt  timeutil.Timestamp `json:"createdAt"`
}

// WorkoutLog is the workout side of the ledger.
type WorkoutLog struct {
	Entries []WorkoutEntry `json:"entries"`
}

// Settings holds the pomodoro cadence and goal targets.
type Settings struct {
	FocusMinutes       int  `json:"focusMinutes"`
	ShortBreakMinutes  int  `json:"shortBreakMinutes"`
	LongBreakMinutes   int  `json:"longBreakMinutes"`
	LongBreakInterval  int  `json:"longBreakInterval"`
	AutoStartNextPhase bool `json:"autoStartNextPhase"`
	DailyGoalMinutes   int  `json:"dailyGoalMinutes"`
	WeeklyGoalMinutes  int  `json:"weeklyGoalMinutes"`
	MonthlyGoalMinutes int  `json:"monthlyGoalMinutes"`
}

// DefaultSettings is what a fresh profile starts with.
func DefaultSettings() Settings {
	p := timer.DefaultPomodoro()
	return Settings{
		FocusMinutes:       p.FocusMinutes,
		ShortBreakMinutes:  p.ShortBreakMinutes,
		LongBreakMinutes:   p.LongBreakMinutes,
		LongBreakInterval:  p.LongBreakInterval,
		DailyGoalMinutes:   120,
		WeeklyGoalMinutes:  840,
		MonthlyGoalMinutes: 3600,
	}
}

// Pomodoro converts the settings into the timer engine's config.
func (s Settings) Pomodoro() timer.PomodoroConfig {
	cfg := timer.PomodoroConfig{
		FocusMinutes:       s.FocusMinutes,
		ShortBreakMinutes:  s.ShortBreakMinutes,
		LongBreakMinutes:   s.LongBreakMinutes,
		LongBreakInterval:  s.LongBreakInterval,
		AutoStartNextPhase: s.AutoStartNextPhase,
	}
	if cfg.FocusMinutes <= 0 || cfg.ShortBreakMinutes <= 0 || cfg.LongBreakMinutes <= 0 {
		return timer.DefaultPomodoro()
	}
	return cfg
}

// UserData is everything persisted for one profile.
type UserData struct {
	Version          int                `json:"version"`
	ProfileID        string             `json:"profileId"`
	Subjects         []Subject          `json:"subjects"`
	Tasks            []Task             `json:"tasks"`
	Sessions         []session.Session  `json:"sessions"`
	Workout          WorkoutLog         `json:"workout"`
	Settings         Settings           `json:"settings"`
	Timer            timer.Snapshot     `json:"timer"`
	LastRolloverDate string             `json:"lastRolloverDate,omitempty"`
	CreatedAt        timeutil.Timestamp `json:"createdAt"`
	UpdatedAt        timeutil.Timestamp `json:"updatedAt"`
}

// New returns an empty document for a freshly created profile. No demo
// content, ever.
func New(profileID string, now time.Time) *UserData {
	return &UserData{
		Version:   CurrentVersion,
		ProfileID: profileID,
		Subjects:  []Subject{},
		Tasks:     []Task{},
		Sessions:  []session.Session{},
		Workout:   WorkoutLog{Entries: []WorkoutEntry{}},
		Settings:  DefaultSettings(),
		Timer:     *timer.New(),
		CreatedAt: timeutil.Timestamp{Time: now},
		UpdatedAt: timeutil.Timestamp{Time: now},
	}
}

// Subject looks up a subject by id.
func (d *UserData) Subject(id string) (Subject, bool) {
	for _, s := range d.Subjects {
		if s.ID == id {
			return s, true
		}
	}
	return Subject{}, false
}

// SubjectByName looks up a subject by display name.
func (d *UserData) SubjectByName(name string) (Subject, bool) {
	for _, s := range d.Subjects {
		if s.Name == name {
			return s, true
		}
	}
	return Subject{}, false
}

// Task looks up a task by id.
func (d *UserData) Task(id string) (*Task, bool) {
	for i := range d.Tasks {
		if d.Tasks[i].ID == id {
			return &d.Tasks[i], true
		}
	}
	return nil, false
}
