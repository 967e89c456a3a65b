// Package export produces the legacy flat JSON bundle older tooling reads: a
// fixed set of string keys, each holding an independently-serialized JSON
// document with ids denormalized back to display names and derived fields
// recomputed from the ledger. The mapping is one-way and the field names are
// frozen; the canonical schema can move without this shape moving with it.
package export

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/stintapp/stint/pkg/userdata"
)

// Legacy bundle keys. Frozen: renaming any of these breaks old importers.
const (
	KeySessions   = "study-sessions"
	KeyTasks      = "study-tasks"
	KeySubjects   = "study-subjects"
	KeyTimerState = "study-timer-state"
	KeyGoals      = "study-goals"
	KeySettings   = "study-settings"
	KeyWorkouts   = "study-workouts"
)

type legacySession struct {
	ID       string `json:"id"`
	Subject  string `json:"subject"`
	Task     string `json:"task,omitempty"`
	Started  string `json:"startedAt"`
	Ended    string `json:"endedAt"`
	Duration int64  `json:"duration"` // seconds
	Rating   string `json:"rating,omitempty"`
	Comment  string `json:"comment,omitempty"`
}

type legacyTask struct {
	ID                 string `json:"id"`
	Subject            string `json:"subject"`
	Title              string `json:"title"`
	Done               bool   `json:"done"`
	DueDate            string `json:"dueDate,omitempty"`
	AccumulatedSeconds int64  `json:"accumulatedSeconds"`
}

type legacySubject struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category,omitempty"`
}

type legacyTimerState struct {
	IsRunning      bool   `json:"isRunning"`
	Mode           string `json:"mode"`
	Phase          string `json:"phase"`
	StartedAt      string `json:"startedAt,omitempty"`
	ElapsedSeconds int64  `json:"elapsedSeconds"`
	Subject        string `json:"subject,omitempty"`
	Task           string `json:"task,omitempty"`
}

type legacyGoals struct {
	DailyMinutes   int `json:"dailyMinutes"`
	WeeklyMinutes  int `json:"weeklyMinutes"`
	MonthlyMinutes int `json:"monthlyMinutes"`
}

type legacySettings struct {
	FocusMinutes       int  `json:"focusMinutes"`
	ShortBreakMinutes  int  `json:"shortBreakMinutes"`
	LongBreakMinutes   int  `json:"longBreakMinutes"`
	LongBreakInterval  int  `json:"longBreakInterval"`
	AutoStartNextPhase bool `json:"autoStartNextPhase"`
}

type legacyWorkout struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Started  string `json:"startedAt"`
	Ended    string `json:"endedAt"`
	Duration int64  `json:"duration"` // seconds
}

// Build converts the canonical document into the legacy bundle.
func Build(d *userdata.UserData) (map[string]string, error) {
	subjectName := func(id string) string {
		if subj, ok := d.Subject(id); ok {
			return subj.Name
		}
		return id
	}
	taskTitle := func(id string) string {
		if id == "" {
			return ""
		}
		if task, ok := d.Task(id); ok {
			return task.Title
		}
		return id
	}

	// Per-task seconds are recomputed from the ledger, not copied from the
	// stored derived field.
	taskSeconds := make(map[string]int64)
	sessions := make([]legacySession, 0, len(d.Sessions))
	for _, s := range d.Sessions {
		sessions = append(sessions, legacySession{
			ID:       s.ID,
			Subject:  subjectName(s.SubjectID),
			Task:     taskTitle(s.TaskID),
			Started:  s.StartedAt.String(),
			Ended:    s.EndedAt.String(),
			Duration: s.DurationMs / 1000,
			Rating:   string(s.Rating),
			Comment:  s.Comment,
		})
		if s.TaskID != "" {
			taskSeconds[s.TaskID] += s.DurationMs / 1000
		}
	}

	tasks := make([]legacyTask, 0, len(d.Tasks))
	for _, t := range d.Tasks {
		tasks = append(tasks, legacyTask{
			ID:                 t.ID,
			Subject:            subjectName(t.SubjectID),
			Title:              t.Title,
			Done:               t.Done,
			DueDate:            t.DueDate,
			AccumulatedSeconds: taskSeconds[t.ID],
		})
	}

	subjects := make([]legacySubject, 0, len(d.Subjects))
	for _, s := range d.Subjects {
		subjects = append(subjects, legacySubject{ID: s.ID, Name: s.Name, Category: s.Category})
	}

	timerState := legacyTimerState{
		IsRunning:      d.Timer.IsRunning,
		Mode:           string(d.Timer.Mode),
		Phase:          string(d.Timer.Phase),
		ElapsedSeconds: d.Timer.AccumulatedMs / 1000,
		Subject:        subjectName(d.Timer.SubjectID),
		Task:           taskTitle(d.Timer.TaskID),
	}
	if d.Timer.SubjectID == "" {
		timerState.Subject = ""
	}
	if d.Timer.IsRunning && d.Timer.StartedAtMs != nil {
		timerState.StartedAt = time.UnixMilli(*d.Timer.StartedAtMs).UTC().Format(time.RFC3339)
	}

	workouts := make([]legacyWorkout, 0, len(d.Workout.Entries))
	for _, w := range d.Workout.Entries {
		workouts = append(workouts, legacyWorkout{
			ID:       w.ID,
			Name:     w.Name,
			Started:  w.StartedAt.String(),
			Ended:    w.EndedAt.String(),
			Duration: w.DurationMs / 1000,
		})
	}

	bundle := map[string]interface{}{
		KeySessions:   sessions,
		KeyTasks:      tasks,
		KeySubjects:   subjects,
		KeyTimerState: timerState,
		KeyGoals: legacyGoals{
			DailyMinutes:   d.Settings.DailyGoalMinutes,
			WeeklyMinutes:  d.Settings.WeeklyGoalMinutes,
			MonthlyMinutes: d.Settings.MonthlyGoalMinutes,
		},
		KeySettings: legacySettings{
			FocusMinutes:       d.Settings.FocusMinutes,
			ShortBreakMinutes:  d.Settings.ShortBreakMinutes,
			LongBreakMinutes:   d.Settings.LongBreakMinutes,
			LongBreakInterval:  d.Settings.LongBreakInterval,
			AutoStartNextPhase: d.Settings.AutoStartNextPhase,
		},
		KeyWorkouts: workouts,
	}

	out := make(map[string]string, len(bundle))
	for key, value := range bundle {
		b, err := json.Marshal(value)
		if err != nil {
			return nil, fmt.Errorf("export: %s: %w", key, err)
		}
		out[key] = string(b)
	}
	return out, nil
}
