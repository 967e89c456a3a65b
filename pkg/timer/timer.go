// Package timer implements the activity timer state machine. The engine is a
// pure function of its snapshot and an explicit now: it never reads the
// clock, never schedules anything, and its snapshot is exactly what gets
// persisted. Rehydrating a snapshot after a reload and asking for Elapsed(now)
// reproduces the true elapsed time with no ticks in between.
package timer

import (
	"errors"
	"time"
)

// Mode selects the timing discipline for a run.
type Mode string

const (
	Stopwatch Mode = "stopwatch"
	Pomodoro  Mode = "pomodoro"
)

// Phase is the pomodoro phase dimension. Stopwatch runs stay in Focus.
type Phase string

const (
	Focus      Phase = "focus"
	ShortBreak Phase = "shortBreak"
	LongBreak  Phase = "longBreak"
)

// State is the derived lifecycle state of the engine.
type State string

const (
	Idle    State = "idle"
	Running State = "running"
	Paused  State = "paused"
)

var (
	// ErrInvalidTransition reports an operation invoked from a state that
	// does not permit it. Callers treat it as a no-op, not a user-facing
	// failure.
	ErrInvalidTransition = errors.New("timer: invalid transition")
	// ErrNoSubject reports a start without a subject selected.
	ErrNoSubject = errors.New("timer: subject required")
)

// Snapshot is the single live timer state for a profile. The dual accumulator
// is the reload-safety contract: true elapsed time is AccumulatedMs plus
// (now - StartedAtMs) only while running, so nothing in the snapshot advances
// on its own.
type Snapshot struct {
	Mode               Mode   `json:"mode"`
	Phase              Phase  `json:"phase"`
	IsRunning          bool   `json:"isRunning"`
	StartedAtMs        *int64 `json:"startedAtMs"`
	AccumulatedMs      int64  `json:"accumulatedMs"`
	PhaseStartedAtMs   *int64 `json:"phaseStartedAtMs"`
	PhaseAccumulatedMs int64  `json:"phaseAccumulatedMs"`
	CycleCount         int    `json:"cycleCount"`
	SubjectID          string `json:"subjectId,omitempty"`
	TaskID             string `json:"taskId,omitempty"`
}

// Result is the draft a Stop produces. The session's start time is derived as
// EndedAt minus Duration, so paused stretches are excluded from the total but
// the record still brackets the active time.
type Result struct {
	SubjectID string
	TaskID    string
	EndedAt   time.Time
	Duration  time.Duration
	Mode      Mode
	Phase     Phase
}

// New returns an idle stopwatch snapshot.
func New() *Snapshot {
	return &Snapshot{Mode: Stopwatch, Phase: Focus}
}

// State derives the lifecycle state. A snapshot with no subject is idle; a
// subject with the clock stopped is paused.
func (s *Snapshot) State() State {
	switch {
	case s.IsRunning:
		return Running
	case s.SubjectID != "":
		return Paused
	default:
		return Idle
	}
}

// Start begins timing subjectID from Idle. initialElapsed seeds the
// accumulator so a previously-recorded stretch can be continued instead of
// starting from zero.
func (s *Snapshot) Start(now time.Time, mode Mode, subjectID, taskID string, initialElapsed time.Duration) error {
	if s.State() != Idle {
		return ErrInvalidTransition
	}
	if subjectID == "" {
		return ErrNoSubject
	}
	if mode != Stopwatch && mode != Pomodoro {
		mode = Stopwatch
	}
	ms := epochMs(now)
	s.Mode = mode
	s.Phase = Focus
	s.IsRunning = true
	s.StartedAtMs = &ms
	s.AccumulatedMs = initialElapsed.Milliseconds()
	s.PhaseStartedAtMs = cloneMs(ms)
	s.PhaseAccumulatedMs = 0
	s.CycleCount = 0
	s.SubjectID = subjectID
	s.TaskID = taskID
	return nil
}

// Pause folds the running stretch into the accumulators and stops the clock.
func (s *Snapshot) Pause(now time.Time) error {
	if s.State() != Running {
		return ErrInvalidTransition
	}
	s.settle(now)
	s.IsRunning = false
	return nil
}

// Resume restarts the clock from Paused.
func (s *Snapshot) Resume(now time.Time) error {
	if s.State() != Paused {
		return ErrInvalidTransition
	}
	ms := epochMs(now)
	s.StartedAtMs = &ms
	s.PhaseStartedAtMs = cloneMs(ms)
	s.IsRunning = true
	return nil
}

// Stop finalizes the run from Running or Paused, returns the session draft,
// and resets the engine to Idle. Drafts with zero duration are returned too;
// the ledger contract is that the caller never persists them.
func (s *Snapshot) Stop(now time.Time) (Result, error) {
	state := s.State()
	if state != Running && state != Paused {
		return Result{}, ErrInvalidTransition
	}
	if state == Running {
		s.settle(now)
	}
	res := Result{
		SubjectID: s.SubjectID,
		TaskID:    s.TaskID,
		EndedAt:   now,
		Duration:  time.Duration(s.AccumulatedMs) * time.Millisecond,
		Mode:      s.Mode,
		Phase:     s.Phase,
	}
	s.reset()
	return res, nil
}

// Cancel discards all accumulated time and the task association without
// producing a session.
func (s *Snapshot) Cancel() error {
	state := s.State()
	if state != Running && state != Paused {
		return ErrInvalidTransition
	}
	s.reset()
	return nil
}

// Elapsed is the pure display read, safe to call on every UI tick.
func (s *Snapshot) Elapsed(now time.Time) time.Duration {
	ms := s.AccumulatedMs
	if s.IsRunning && s.StartedAtMs != nil {
		ms += epochMs(now) - *s.StartedAtMs
	}
	return time.Duration(ms) * time.Millisecond
}

// PhaseElapsed reports time spent in the current pomodoro phase.
func (s *Snapshot) PhaseElapsed(now time.Time) time.Duration {
	ms := s.PhaseAccumulatedMs
	if s.IsRunning && s.PhaseStartedAtMs != nil {
		ms += epochMs(now) - *s.PhaseStartedAtMs
	}
	return time.Duration(ms) * time.Millisecond
}

func (s *Snapshot) settle(now time.Time) {
	ms := epochMs(now)
	if s.StartedAtMs != nil {
		s.AccumulatedMs += ms - *s.StartedAtMs
	}
	if s.PhaseStartedAtMs != nil {
		s.PhaseAccumulatedMs += ms - *s.PhaseStartedAtMs
	}
	s.StartedAtMs = nil
	s.PhaseStartedAtMs = nil
}

func (s *Snapshot) reset() {
	*s = Snapshot{Mode: s.Mode, Phase: Focus}
}

func epochMs(t time.Time) int64 {
	return t.UnixMilli()
}

func cloneMs(ms int64) *int64 {
	return &ms
}
