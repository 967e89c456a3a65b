package timer

import "time"

// PomodoroConfig carries the phase lengths and cadence for pomodoro runs.
type PomodoroConfig struct {
	FocusMinutes       int
	ShortBreakMinutes  int
	LongBreakMinutes   int
	LongBreakInterval  int
	AutoStartNextPhase bool
}

// DefaultPomodoro is the classic 25/5/15 cadence with a long break every
// fourth focus cycle.
func DefaultPomodoro() PomodoroConfig {
	return PomodoroConfig{
		FocusMinutes:      25,
		ShortBreakMinutes: 5,
		LongBreakMinutes:  15,
		LongBreakInterval: 4,
	}
}

// PhaseDuration returns the configured length of a phase.
func (c PomodoroConfig) PhaseDuration(p Phase) time.Duration {
	switch p {
	case ShortBreak:
		return time.Duration(c.ShortBreakMinutes) * time.Minute
	case LongBreak:
		return time.Duration(c.LongBreakMinutes) * time.Minute
	default:
		return time.Duration(c.FocusMinutes) * time.Minute
	}
}

// PhaseRemaining reports how much of the current phase is left. Never
// negative; an overrun phase reads as zero.
func (s *Snapshot) PhaseRemaining(now time.Time, cfg PomodoroConfig) time.Duration {
	remaining := cfg.PhaseDuration(s.Phase) - s.PhaseElapsed(now)
	if remaining < 0 {
		return 0
	}
	return remaining
}

// PhaseComplete reports whether the current phase has used up its budget.
func (s *Snapshot) PhaseComplete(now time.Time, cfg PomodoroConfig) bool {
	return s.Mode == Pomodoro && s.State() != Idle && s.PhaseRemaining(now, cfg) == 0
}

// AdvancePhase completes the current pomodoro phase and enters the next one:
// focus alternates with short breaks, with a long break after every
// LongBreakInterval completed focus cycles. Phase accumulators reset; the
// running/paused state is preserved unless cfg.AutoStartNextPhase is false,
// in which case the engine pauses at the phase boundary.
func (s *Snapshot) AdvancePhase(now time.Time, cfg PomodoroConfig) error {
	if s.Mode != Pomodoro || s.State() == Idle {
		return ErrInvalidTransition
	}

	if s.IsRunning {
		s.settle(now)
		s.IsRunning = false
	}

	if s.Phase == Focus {
		s.CycleCount++
		interval := cfg.LongBreakInterval
		if interval <= 0 {
			interval = DefaultPomodoro().LongBreakInterval
		}
		if s.CycleCount%interval == 0 {
			s.Phase = LongBreak
		} else {
			s.Phase = ShortBreak
		}
	} else {
		s.Phase = Focus
	}

	s.PhaseAccumulatedMs = 0
	s.PhaseStartedAtMs = nil

	if cfg.AutoStartNextPhase {
		return s.Resume(now)
	}
	return nil
}
