package timer

import (
	"errors"
	"testing"
	"time"
)

var t0 = time.Date(2026, 8, 28, 9, 0, 0, 0, time.UTC)

func at(offset time.Duration) time.Time {
	return t0.Add(offset)
}

func TestPauseResumeAccounting(t *testing.T) {
	s := New()
	if err := s.Start(t0, Stopwatch, "subj-math", "", 0); err != nil {
		t.Fatalf("start: %v", err)
	}
	if err := s.Pause(at(5 * time.Minute)); err != nil {
		t.Fatalf("pause: %v", err)
	}
	if err := s.Resume(at(6 * time.Minute)); err != nil {
		t.Fatalf("resume: %v", err)
	}
	res, err := s.Stop(at(7 * time.Minute))
	if err != nil {
		t.Fatalf("stop: %v", err)
	}

	// 5 minutes before the pause plus 1 minute after the resume.
	if want := 6 * time.Minute; res.Duration != want {
		t.Fatalf("duration: want %v, got %v", want, res.Duration)
	}
	if res.SubjectID != "subj-math" {
		t.Fatalf("subject: %q", res.SubjectID)
	}
	if res.EndedAt != at(7*time.Minute) {
		t.Fatalf("endedAt: %v", res.EndedAt)
	}
	if s.State() != Idle {
		t.Fatalf("engine not reset: %v", s.State())
	}
	if s.AccumulatedMs != 0 {
		t.Fatalf("accumulator not zeroed: %d", s.AccumulatedMs)
	}
}

func TestElapsedWhilePausedIsFrozen(t *testing.T) {
	s := New()
	if err := s.Start(t0, Stopwatch, "subj", "", 0); err != nil {
		t.Fatalf("start: %v", err)
	}
	if err := s.Pause(at(time.Minute)); err != nil {
		t.Fatalf("pause: %v", err)
	}
	if got := s.Elapsed(at(time.Hour)); got != time.Minute {
		t.Fatalf("paused elapsed must not advance: %v", got)
	}
}

func TestElapsedSurvivesRehydration(t *testing.T) {
	s := New()
	if err := s.Start(t0, Stopwatch, "subj", "task-1", 0); err != nil {
		t.Fatalf("start: %v", err)
	}

	// Simulate a reload: copy the snapshot by value, no operations between.
	copied := *s
	now := at(42 * time.Minute)
	if before, after := s.Elapsed(now), copied.Elapsed(now); before != after {
		t.Fatalf("elapsed diverged across rehydration: %v vs %v", before, after)
	}
	if want := 42 * time.Minute; copied.Elapsed(now) != want {
		t.Fatalf("want %v, got %v", want, copied.Elapsed(now))
	}
}

func TestStartSeedsInitialElapsed(t *testing.T) {
	s := New()
	if err := s.Start(t0, Stopwatch, "subj", "", 30*time.Minute); err != nil {
		t.Fatalf("start: %v", err)
	}
	if got := s.Elapsed(at(time.Minute)); got != 31*time.Minute {
		t.Fatalf("want 31m, got %v", got)
	}
}

func TestStartRequiresSubject(t *testing.T) {
	s := New()
	if err := s.Start(t0, Stopwatch, "", "", 0); !errors.Is(err, ErrNoSubject) {
		t.Fatalf("want ErrNoSubject, got %v", err)
	}
	if s.State() != Idle {
		t.Fatalf("failed start must leave engine idle")
	}
}

func TestInvalidTransitions(t *testing.T) {
	s := New()

	if err := s.Pause(t0); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("pause from idle: %v", err)
	}
	if err := s.Resume(t0); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("resume from idle: %v", err)
	}
	if _, err := s.Stop(t0); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("stop from idle: %v", err)
	}
	if err := s.Cancel(); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("cancel from idle: %v", err)
	}

	if err := s.Start(t0, Stopwatch, "subj", "", 0); err != nil {
		t.Fatalf("start: %v", err)
	}
	if err := s.Start(t0, Stopwatch, "subj", "", 0); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("start while running: %v", err)
	}
	if err := s.Resume(t0); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("resume while running: %v", err)
	}
}

func TestCancelDiscardsEverything(t *testing.T) {
	s := New()
	if err := s.Start(t0, Stopwatch, "subj", "task-9", 0); err != nil {
		t.Fatalf("start: %v", err)
	}
	if err := s.Cancel(); err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if s.State() != Idle || s.AccumulatedMs != 0 || s.TaskID != "" {
		t.Fatalf("cancel left residue: %+v", s)
	}
}

func TestZeroDurationStop(t *testing.T) {
	s := New()
	if err := s.Start(t0, Stopwatch, "subj", "", 0); err != nil {
		t.Fatalf("start: %v", err)
	}
	res, err := s.Stop(t0)
	if err != nil {
		t.Fatalf("stop: %v", err)
	}
	if res.Duration != 0 {
		t.Fatalf("want zero duration, got %v", res.Duration)
	}
	if s.State() != Idle {
		t.Fatalf("engine must still reset on zero-duration stop")
	}
}

func TestPomodoroPhaseCadence(t *testing.T) {
	cfg := DefaultPomodoro()
	cfg.AutoStartNextPhase = true

	s := New()
	if err := s.Start(t0, Pomodoro, "subj", "", 0); err != nil {
		t.Fatalf("start: %v", err)
	}

	wantPhases := []Phase{ShortBreak, Focus, ShortBreak, Focus, ShortBreak, Focus, LongBreak, Focus, ShortBreak, Focus}
	now := t0
	for i, want := range wantPhases {
		now = now.Add(cfg.PhaseDuration(s.Phase))
		if err := s.AdvancePhase(now, cfg); err != nil {
			t.Fatalf("advance %d: %v", i, err)
		}
		if s.Phase != want {
			t.Fatalf("advance %d: want phase %s, got %s", i, want, s.Phase)
		}
		if !s.IsRunning {
			t.Fatalf("advance %d: auto-start should keep the clock running", i)
		}
	}
	if s.CycleCount != 5 {
		t.Fatalf("want 5 completed focus cycles, got %d", s.CycleCount)
	}
}

func TestAdvancePhasePausesWithoutAutoStart(t *testing.T) {
	cfg := DefaultPomodoro()

	s := New()
	if err := s.Start(t0, Pomodoro, "subj", "", 0); err != nil {
		t.Fatalf("start: %v", err)
	}
	if err := s.AdvancePhase(at(25*time.Minute), cfg); err != nil {
		t.Fatalf("advance: %v", err)
	}
	if s.State() != Paused {
		t.Fatalf("want paused at phase boundary, got %v", s.State())
	}
	if s.Phase != ShortBreak {
		t.Fatalf("want shortBreak, got %s", s.Phase)
	}
	if s.PhaseAccumulatedMs != 0 {
		t.Fatalf("phase accumulator must reset")
	}

	// Focus time spent before the boundary stays in the session total.
	if got := s.Elapsed(at(time.Hour)); got != 25*time.Minute {
		t.Fatalf("want 25m accumulated, got %v", got)
	}
}

func TestPhaseRemaining(t *testing.T) {
	cfg := DefaultPomodoro()
	s := New()
	if err := s.Start(t0, Pomodoro, "subj", "", 0); err != nil {
		t.Fatalf("start: %v", err)
	}
	if got := s.PhaseRemaining(at(10*time.Minute), cfg); got != 15*time.Minute {
		t.Fatalf("want 15m remaining, got %v", got)
	}
	if s.PhaseComplete(at(10*time.Minute), cfg) {
		t.Fatalf("phase must not be complete at 10m")
	}
	if !s.PhaseComplete(at(26*time.Minute), cfg) {
		t.Fatalf("phase must be complete past 25m")
	}
	if got := s.PhaseRemaining(at(26*time.Minute), cfg); got != 0 {
		t.Fatalf("overrun phase must read zero, got %v", got)
	}
}

func TestAdvancePhaseRejectsStopwatch(t *testing.T) {
	s := New()
	if err := s.Start(t0, Stopwatch, "subj", "", 0); err != nil {
		t.Fatalf("start: %v", err)
	}
	if err := s.AdvancePhase(at(time.Minute), DefaultPomodoro()); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("want ErrInvalidTransition, got %v", err)
	}
}
