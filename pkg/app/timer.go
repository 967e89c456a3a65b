package app

import (
	"errors"
	"time"

	"github.com/stintapp/stint/pkg/session"
	"github.com/stintapp/stint/pkg/timer"
	"github.com/stintapp/stint/pkg/userdata"
)

// StartOptions parameterize StartTimer.
type StartOptions struct {
	Mode       timer.Mode
	SubjectRef string // subject id or display name
	TaskID     string
	// Continue consumes the pending handoff, seeding the accumulator with a
	// previously recorded stretch.
	Continue bool
}

// StartTimer validates the references and starts the engine. A pending
// handoff is only consumed when requested, and its references are re-checked
// against the current document: a gap refuses the start rather than seeding
// a session that points nowhere. Consuming a handoff absorbs its source
// session out of the ledger: the seeded stretch now lives in the engine and
// lands back as part of the one session the next stop records.
func (s *Service) StartTimer(opts StartOptions, now time.Time) error {
	if s.data == nil {
		return ErrNoProfile
	}

	subjectRef := opts.SubjectRef
	taskID := opts.TaskID
	initial := time.Duration(0)
	sourceID := ""

	if opts.Continue {
		h, ok := s.Repo.TakeHandoff()
		if !ok {
			return errors.New("app: nothing to continue")
		}
		subjectRef = h.SubjectID
		taskID = h.TaskID
		initial = time.Duration(h.InitialElapsedMs) * time.Millisecond
		sourceID = h.SessionID
	}

	subj, ok := s.resolveSubject(subjectRef)
	if !ok {
		return ErrMissingSubject
	}
	if taskID != "" {
		if _, ok := s.data.Task(taskID); !ok {
			return ErrMissingTask
		}
	}

	if err := s.data.Timer.Start(now, opts.Mode, subj.ID, taskID, initial); err != nil {
		return err
	}

	if sourceID != "" {
		ledger := session.NewLedger(s.data.Sessions)
		if removed, err := ledger.Delete(sourceID); err == nil {
			s.data.Sessions = ledger.All()
			s.recalcTaskTime(removed.TaskID)
		}
	}
	return s.save(now)
}

// PauseTimer stops the clock without finalizing.
func (s *Service) PauseTimer(now time.Time) error {
	if s.data == nil {
		return ErrNoProfile
	}
	if err := s.data.Timer.Pause(now); err != nil {
		return err
	}
	return s.save(now)
}

// ResumeTimer restarts a paused run.
func (s *Service) ResumeTimer(now time.Time) error {
	if s.data == nil {
		return ErrNoProfile
	}
	if err := s.data.Timer.Resume(now); err != nil {
		return err
	}
	return s.save(now)
}

// StopTimer finalizes the run. A session lands in the ledger only when time
// was actually recorded; a zero-duration stop still resets the engine but
// persists nothing new besides the reset snapshot. The returned bool reports
// whether a session was appended.
func (s *Service) StopTimer(rating session.Rating, comment string, now time.Time) (session.Session, bool, error) {
	if s.data == nil {
		return session.Session{}, false, ErrNoProfile
	}
	res, err := s.data.Timer.Stop(now)
	if err != nil {
		return session.Session{}, false, err
	}

	if res.Duration <= 0 {
		return session.Session{}, false, s.save(now)
	}

	rec := session.FromResult(res, now)
	if session.ValidRating(rating) {
		rec.Rating = rating
		rec.Comment = comment
	}
	ledger := session.NewLedger(s.data.Sessions)
	if err := ledger.Append(rec); err != nil {
		return session.Session{}, false, err
	}
	s.data.Sessions = ledger.All()
	s.recalcTaskTime(rec.TaskID)
	if err := s.save(now); err != nil {
		return session.Session{}, false, err
	}
	return rec, true, nil
}

// CancelTimer discards the run without producing a session or logging any
// task time.
func (s *Service) CancelTimer(now time.Time) error {
	if s.data == nil {
		return ErrNoProfile
	}
	if err := s.data.Timer.Cancel(); err != nil {
		return err
	}
	return s.save(now)
}

// AdvancePomodoro completes the current phase per the profile's settings.
func (s *Service) AdvancePomodoro(now time.Time) error {
	if s.data == nil {
		return ErrNoProfile
	}
	if err := s.data.Timer.AdvancePhase(now, s.data.Settings.Pomodoro()); err != nil {
		return err
	}
	return s.save(now)
}

// Elapsed is the display read. It never persists; the ~1 Hz UI tick calls
// this without generating write volume.
func (s *Service) Elapsed(now time.Time) (time.Duration, error) {
	if s.data == nil {
		return 0, ErrNoProfile
	}
	return s.data.Timer.Elapsed(now), nil
}

// Snapshot returns a copy of the live timer state.
func (s *Service) Snapshot() (timer.Snapshot, error) {
	if s.data == nil {
		return timer.Snapshot{}, ErrNoProfile
	}
	return s.data.Timer, nil
}

// Sessions returns ledger records, newest first.
func (s *Service) Sessions() ([]session.Session, error) {
	if s.data == nil {
		return nil, ErrNoProfile
	}
	return session.NewLedger(s.data.Sessions).Sorted(), nil
}

// Reflect attaches a reflection to a finished session. Reflections can
// arrive any time after completion, or never.
func (s *Service) Reflect(sessionID string, rating session.Rating, comment string, now time.Time) error {
	if s.data == nil {
		return ErrNoProfile
	}
	ledger := session.NewLedger(s.data.Sessions)
	if err := ledger.Reflect(sessionID, rating, comment); err != nil {
		return err
	}
	s.data.Sessions = ledger.All()
	return s.save(now)
}

// EditSession is the deliberate correction path for a recorded interval.
func (s *Service) EditSession(sessionID string, started, ended time.Time, now time.Time) error {
	if s.data == nil {
		return ErrNoProfile
	}
	ledger := session.NewLedger(s.data.Sessions)
	rec, ok := ledger.Find(sessionID)
	if !ok {
		return session.ErrNotFound
	}
	if err := ledger.Edit(sessionID, started, ended); err != nil {
		return err
	}
	s.data.Sessions = ledger.All()
	s.recalcTaskTime(rec.TaskID)
	return s.save(now)
}

// DeleteSession removes a record and recalculates the linked task's
// accumulated time from what remains.
func (s *Service) DeleteSession(sessionID string, now time.Time) error {
	if s.data == nil {
		return ErrNoProfile
	}
	ledger := session.NewLedger(s.data.Sessions)
	removed, err := ledger.Delete(sessionID)
	if err != nil {
		return err
	}
	s.data.Sessions = ledger.All()
	s.recalcTaskTime(removed.TaskID)
	return s.save(now)
}

// ContinueSession stages a handoff so the next start can pick up where a
// recorded session left off. A session whose subject has since disappeared
// is refused here, at the point of use.
func (s *Service) ContinueSession(sessionID string) (userdata.Task, error) {
	if s.data == nil {
		return userdata.Task{}, ErrNoProfile
	}
	ledger := session.NewLedger(s.data.Sessions)
	rec, ok := ledger.Find(sessionID)
	if !ok {
		return userdata.Task{}, session.ErrNotFound
	}
	if _, ok := s.data.Subject(rec.SubjectID); !ok {
		return userdata.Task{}, ErrMissingSubject
	}
	var task userdata.Task
	if rec.TaskID != "" {
		t, ok := s.data.Task(rec.TaskID)
		if !ok {
			return userdata.Task{}, ErrMissingTask
		}
		task = *t
	}
	err := s.Repo.PutHandoff(userdata.Handoff{
		SessionID:        rec.ID,
		SubjectID:        rec.SubjectID,
		TaskID:           rec.TaskID,
		InitialElapsedMs: rec.DurationMs,
	})
	return task, err
}

// recalcTaskTime recomputes a task's accumulated time from the ledger so
// corrections never drift the derived total.
func (s *Service) recalcTaskTime(taskID string) {
	if taskID == "" {
		return
	}
	task, ok := s.data.Task(taskID)
	if !ok {
		return
	}
	var total int64
	for _, rec := range s.data.Sessions {
		if rec.TaskID == taskID {
			total += rec.DurationMs
		}
	}
	task.AccumulatedMs = total
}
