package app

import (
	"errors"
	"testing"
	"time"

	"github.com/stintapp/stint/pkg/session"
	"github.com/stintapp/stint/pkg/store"
	"github.com/stintapp/stint/pkg/timer"
)

var t0 = time.Date(2026, 8, 28, 9, 0, 0, 0, time.UTC)

func at(offset time.Duration) time.Time {
	return t0.Add(offset)
}

func newService(t *testing.T) (*Service, *store.Memory) {
	t.Helper()
	mem := store.NewMemory()
	svc := Load(mem, t0)
	if _, err := svc.CreateProfile("Ada", t0); err != nil {
		t.Fatalf("create profile: %v", err)
	}
	return svc, mem
}

func mustSubject(t *testing.T, svc *Service, name string) string {
	t.Helper()
	subj, err := svc.AddSubject(name, "", t0)
	if err != nil {
		t.Fatalf("add subject: %v", err)
	}
	return subj.ID
}

func TestOperationsGatedOnProfile(t *testing.T) {
	svc := Load(store.NewMemory(), t0)
	if _, err := svc.AddSubject("Math", "", t0); !errors.Is(err, ErrNoProfile) {
		t.Fatalf("want ErrNoProfile, got %v", err)
	}
	if err := svc.StartTimer(StartOptions{SubjectRef: "Math"}, t0); !errors.Is(err, ErrNoProfile) {
		t.Fatalf("want ErrNoProfile, got %v", err)
	}
}

func TestStopwatchScenario(t *testing.T) {
	// Start at T0, pause at T0+5m, resume at T0+6m, stop at T0+7m: 6 minutes.
	svc, mem := newService(t)
	subjID := mustSubject(t, svc, "Math")

	if err := svc.StartTimer(StartOptions{Mode: timer.Stopwatch, SubjectRef: "Math"}, t0); err != nil {
		t.Fatalf("start: %v", err)
	}
	if err := svc.PauseTimer(at(5 * time.Minute)); err != nil {
		t.Fatalf("pause: %v", err)
	}
	if err := svc.ResumeTimer(at(6 * time.Minute)); err != nil {
		t.Fatalf("resume: %v", err)
	}
	rec, saved, err := svc.StopTimer(session.RatingNone, "", at(7*time.Minute))
	if err != nil {
		t.Fatalf("stop: %v", err)
	}
	if !saved {
		t.Fatalf("session should have been appended")
	}
	if want := (6 * time.Minute).Milliseconds(); rec.DurationMs != want {
		t.Fatalf("duration: want %d, got %d", want, rec.DurationMs)
	}
	if rec.SubjectID != subjID {
		t.Fatalf("subject: %q", rec.SubjectID)
	}

	// The ledger survives a full reload through storage.
	svc2 := Load(mem, at(time.Hour))
	sessions, err := svc2.Sessions()
	if err != nil {
		t.Fatalf("sessions after reload: %v", err)
	}
	if len(sessions) != 1 || sessions[0].ID != rec.ID {
		t.Fatalf("ledger lost across reload: %+v", sessions)
	}
}

func TestElapsedEqualAcrossReload(t *testing.T) {
	svc, mem := newService(t)
	mustSubject(t, svc, "Math")
	if err := svc.StartTimer(StartOptions{SubjectRef: "Math"}, t0); err != nil {
		t.Fatalf("start: %v", err)
	}

	probe := at(17 * time.Minute)
	before, err := svc.Elapsed(probe)
	if err != nil {
		t.Fatalf("elapsed: %v", err)
	}

	svc2 := Load(mem, probe)
	after, err := svc2.Elapsed(probe)
	if err != nil {
		t.Fatalf("elapsed after reload: %v", err)
	}
	if before != after {
		t.Fatalf("elapsed diverged across reload: %v vs %v", before, after)
	}
	if before != 17*time.Minute {
		t.Fatalf("want 17m, got %v", before)
	}
}

func TestZeroDurationStopPersistsNothing(t *testing.T) {
	svc, _ := newService(t)
	mustSubject(t, svc, "Math")
	if err := svc.StartTimer(StartOptions{SubjectRef: "Math"}, t0); err != nil {
		t.Fatalf("start: %v", err)
	}
	_, saved, err := svc.StopTimer(session.RatingNone, "", t0)
	if err != nil {
		t.Fatalf("stop: %v", err)
	}
	if saved {
		t.Fatalf("zero-duration session must not be appended")
	}
	sessions, _ := svc.Sessions()
	if len(sessions) != 0 {
		t.Fatalf("ledger must stay empty")
	}
	snap, _ := svc.Snapshot()
	if snap.State() != timer.Idle {
		t.Fatalf("engine must reset even on zero-duration stop")
	}
}

func TestCancelProducesNoSessionOrTaskTime(t *testing.T) {
	svc, _ := newService(t)
	mustSubject(t, svc, "Math")
	task, err := svc.AddTask("Math", "Read ch. 3", false, "", t0)
	if err != nil {
		t.Fatalf("add task: %v", err)
	}
	if err := svc.StartTimer(StartOptions{SubjectRef: "Math", TaskID: task.ID}, t0); err != nil {
		t.Fatalf("start: %v", err)
	}
	if err := svc.CancelTimer(at(30 * time.Minute)); err != nil {
		t.Fatalf("cancel: %v", err)
	}
	sessions, _ := svc.Sessions()
	if len(sessions) != 0 {
		t.Fatalf("cancel must not create a session")
	}
	d, _ := svc.Data()
	got, _ := d.Task(task.ID)
	if got.AccumulatedMs != 0 {
		t.Fatalf("cancel must not log task time: %d", got.AccumulatedMs)
	}
}

func TestStopAccumulatesTaskTime(t *testing.T) {
	svc, _ := newService(t)
	mustSubject(t, svc, "Math")
	task, _ := svc.AddTask("Math", "Read ch. 3", false, "", t0)

	if err := svc.StartTimer(StartOptions{SubjectRef: "Math", TaskID: task.ID}, t0); err != nil {
		t.Fatalf("start: %v", err)
	}
	if _, _, err := svc.StopTimer(session.RatingNone, "", at(10*time.Minute)); err != nil {
		t.Fatalf("stop: %v", err)
	}

	d, _ := svc.Data()
	got, _ := d.Task(task.ID)
	if want := (10 * time.Minute).Milliseconds(); got.AccumulatedMs != want {
		t.Fatalf("task time: want %d, got %d", want, got.AccumulatedMs)
	}
}

func TestDeleteSessionRecalculatesTaskTime(t *testing.T) {
	svc, _ := newService(t)
	mustSubject(t, svc, "Math")
	task, _ := svc.AddTask("Math", "Read ch. 3", false, "", t0)

	var ids []string
	clock := t0
	for i := 0; i < 2; i++ {
		if err := svc.StartTimer(StartOptions{SubjectRef: "Math", TaskID: task.ID}, clock); err != nil {
			t.Fatalf("start %d: %v", i, err)
		}
		clock = clock.Add(10 * time.Minute)
		rec, _, err := svc.StopTimer(session.RatingNone, "", clock)
		if err != nil {
			t.Fatalf("stop %d: %v", i, err)
		}
		ids = append(ids, rec.ID)
		clock = clock.Add(time.Minute)
	}

	if err := svc.DeleteSession(ids[0], clock); err != nil {
		t.Fatalf("delete: %v", err)
	}
	d, _ := svc.Data()
	got, _ := d.Task(task.ID)
	if want := (10 * time.Minute).Milliseconds(); got.AccumulatedMs != want {
		t.Fatalf("task time after delete: want %d, got %d", want, got.AccumulatedMs)
	}
}

func TestReflectLandsOnLedger(t *testing.T) {
	svc, _ := newService(t)
	mustSubject(t, svc, "Math")
	if err := svc.StartTimer(StartOptions{SubjectRef: "Math"}, t0); err != nil {
		t.Fatalf("start: %v", err)
	}
	rec, _, err := svc.StopTimer(session.RatingNone, "", at(10*time.Minute))
	if err != nil {
		t.Fatalf("stop: %v", err)
	}

	// Reflection arrives later, asynchronously to completion.
	if err := svc.Reflect(rec.ID, session.RatingDistracted, "phone", at(time.Hour)); err != nil {
		t.Fatalf("reflect: %v", err)
	}
	sessions, _ := svc.Sessions()
	if sessions[0].Rating != session.RatingDistracted || sessions[0].Comment != "phone" {
		t.Fatalf("reflection lost: %+v", sessions[0])
	}
}

func TestContinueSessionRoundTrip(t *testing.T) {
	svc, _ := newService(t)
	mustSubject(t, svc, "Math")
	if err := svc.StartTimer(StartOptions{SubjectRef: "Math"}, t0); err != nil {
		t.Fatalf("start: %v", err)
	}
	rec, _, err := svc.StopTimer(session.RatingNone, "", at(30*time.Minute))
	if err != nil {
		t.Fatalf("stop: %v", err)
	}

	if _, err := svc.ContinueSession(rec.ID); err != nil {
		t.Fatalf("continue: %v", err)
	}
	if err := svc.StartTimer(StartOptions{Continue: true}, at(time.Hour)); err != nil {
		t.Fatalf("start with handoff: %v", err)
	}
	elapsed, _ := svc.Elapsed(at(time.Hour + time.Minute))
	if want := 31 * time.Minute; elapsed != want {
		t.Fatalf("want %v seeded elapsed, got %v", want, elapsed)
	}

	// The handoff is read-once: a second continue start finds nothing.
	if err := svc.CancelTimer(at(2 * time.Hour)); err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if err := svc.StartTimer(StartOptions{Continue: true}, at(2 * time.Hour)); err == nil {
		t.Fatalf("second continue must fail")
	}
}

func TestContinueCountsTimeExactlyOnce(t *testing.T) {
	svc, _ := newService(t)
	mustSubject(t, svc, "Math")
	task, err := svc.AddTask("Math", "Read ch. 3", false, "", t0)
	if err != nil {
		t.Fatalf("add task: %v", err)
	}

	if err := svc.StartTimer(StartOptions{SubjectRef: "Math", TaskID: task.ID}, t0); err != nil {
		t.Fatalf("start: %v", err)
	}
	rec, _, err := svc.StopTimer(session.RatingNone, "", at(30*time.Minute))
	if err != nil {
		t.Fatalf("stop: %v", err)
	}

	if _, err := svc.ContinueSession(rec.ID); err != nil {
		t.Fatalf("continue: %v", err)
	}
	if err := svc.StartTimer(StartOptions{Continue: true}, at(time.Hour)); err != nil {
		t.Fatalf("start with handoff: %v", err)
	}

	// Consuming the handoff absorbs the source record.
	sessions, _ := svc.Sessions()
	if len(sessions) != 0 {
		t.Fatalf("expected source session absorbed, ledger has %d", len(sessions))
	}

	if _, _, err := svc.StopTimer(session.RatingNone, "", at(time.Hour+10*time.Minute)); err != nil {
		t.Fatalf("stop after continue: %v", err)
	}

	// 30 minutes before the continue plus 10 after: one record, 40 minutes.
	sessions, _ = svc.Sessions()
	if len(sessions) != 1 {
		t.Fatalf("expected 1 session, got %d", len(sessions))
	}
	var total int64
	for _, rec := range sessions {
		total += rec.DurationMs
	}
	if want := (40 * time.Minute).Milliseconds(); total != want {
		t.Fatalf("want ledger total %d, got %d", want, total)
	}

	d, _ := svc.Data()
	got, _ := d.Task(task.ID)
	if got.AccumulatedMs != (40 * time.Minute).Milliseconds() {
		t.Fatalf("want task time counted once, got %d", got.AccumulatedMs)
	}
}

func TestContinueRefusedOnReferentialGap(t *testing.T) {
	svc, _ := newService(t)
	mustSubject(t, svc, "Math")
	if err := svc.StartTimer(StartOptions{SubjectRef: "Math"}, t0); err != nil {
		t.Fatalf("start: %v", err)
	}
	rec, _, err := svc.StopTimer(session.RatingNone, "", at(10*time.Minute))
	if err != nil {
		t.Fatalf("stop: %v", err)
	}

	// Remove the subject out from under the session.
	d, _ := svc.Data()
	d.Subjects = nil

	if _, err := svc.ContinueSession(rec.ID); !errors.Is(err, ErrMissingSubject) {
		t.Fatalf("want ErrMissingSubject, got %v", err)
	}
}

func TestInvalidTransitionsSurfaceAsSentinel(t *testing.T) {
	svc, _ := newService(t)
	if err := svc.PauseTimer(t0); !errors.Is(err, timer.ErrInvalidTransition) {
		t.Fatalf("want ErrInvalidTransition, got %v", err)
	}
	if err := svc.ResumeTimer(t0); !errors.Is(err, timer.ErrInvalidTransition) {
		t.Fatalf("want ErrInvalidTransition, got %v", err)
	}
}

func TestStartUnknownSubjectRefused(t *testing.T) {
	svc, _ := newService(t)
	if err := svc.StartTimer(StartOptions{SubjectRef: "Nope"}, t0); !errors.Is(err, ErrMissingSubject) {
		t.Fatalf("want ErrMissingSubject, got %v", err)
	}
}

func TestCorruptDataLeavesRegistryIntact(t *testing.T) {
	svc, mem := newService(t)
	p, _ := svc.ActiveProfile()

	// Clobber the data key, then reload everything.
	if err := mem.Set("data:"+p.ID, "}{ garbage"); err != nil {
		t.Fatalf("seed: %v", err)
	}
	svc2 := Load(mem, at(time.Hour))
	active, ok := svc2.ActiveProfile()
	if !ok || active.ID != p.ID {
		t.Fatalf("registry must be unaffected by corrupt data")
	}
	d, err := svc2.Data()
	if err != nil {
		t.Fatalf("data: %v", err)
	}
	if len(d.Sessions) != 0 || d.Version == 0 {
		t.Fatalf("want fresh empty document, got %+v", d)
	}
}

func TestRolloverGatedPerDay(t *testing.T) {
	svc, _ := newService(t)
	mustSubject(t, svc, "Math")
	if _, err := svc.AddTask("Math", "Flashcards", true, "2026-08-27", t0); err != nil {
		t.Fatalf("add task: %v", err)
	}

	moved, err := svc.RolloverTasks(t0)
	if err != nil {
		t.Fatalf("rollover: %v", err)
	}
	if moved != 1 {
		t.Fatalf("want 1 task moved, got %d", moved)
	}
	d, _ := svc.Data()
	if d.Tasks[0].DueDate != "2026-08-28" {
		t.Fatalf("due date not carried forward: %s", d.Tasks[0].DueDate)
	}

	moved, err = svc.RolloverTasks(at(time.Hour))
	if err != nil {
		t.Fatalf("second rollover: %v", err)
	}
	if moved != 0 {
		t.Fatalf("same-day rollover must be a no-op")
	}
}

func TestPomodoroAdvanceThroughService(t *testing.T) {
	svc, _ := newService(t)
	mustSubject(t, svc, "Math")
	if err := svc.StartTimer(StartOptions{Mode: timer.Pomodoro, SubjectRef: "Math"}, t0); err != nil {
		t.Fatalf("start: %v", err)
	}
	if err := svc.AdvancePomodoro(at(25 * time.Minute)); err != nil {
		t.Fatalf("advance: %v", err)
	}
	snap, _ := svc.Snapshot()
	if snap.Phase != timer.ShortBreak {
		t.Fatalf("want shortBreak, got %s", snap.Phase)
	}
	if snap.State() != timer.Paused {
		t.Fatalf("default settings must pause at the boundary")
	}
}
