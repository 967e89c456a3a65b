// Package app provides the high-level operations the CLI drives. Service is
// the one owner of the hydrated profile state: every mutation happens through
// an action method here and funnels into a single save path, so nothing else
// in the program writes storage directly.
package app

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/stintapp/stint/pkg/profile"
	"github.com/stintapp/stint/pkg/store"
	"github.com/stintapp/stint/pkg/timeutil"
	"github.com/stintapp/stint/pkg/userdata"
)

var (
	// ErrNoProfile gates every data operation until a profile exists and is
	// active. Absence of a profile is a valid state, not a crash.
	ErrNoProfile = errors.New("app: no active profile")
	// ErrMissingSubject reports a reference to a subject that no longer
	// exists. Surfaced at the point of use instead of corrupting the ledger.
	ErrMissingSubject = errors.New("app: subject not found")
	// ErrMissingTask is the task-side referential gap.
	ErrMissingTask = errors.New("app: task not found")
	// ErrBlankName rejects empty subject/task names.
	ErrBlankName = errors.New("app: name required")
	// ErrBadInterval rejects intervals that do not end after they start.
	ErrBadInterval = errors.New("app: interval must end after it starts")
)

// Service wires the store, the profile registry, and the active profile's
// hydrated document together. All methods take now explicitly; the service
// never reads the clock, which keeps every operation replayable in tests.
type Service struct {
	Store    store.Adapter
	Registry *profile.Registry
	Repo     *userdata.Repository

	data *userdata.UserData
}

// Load builds a service over the adapter and hydrates the active profile's
// document, if there is one.
func Load(s store.Adapter, now time.Time) *Service {
	svc := &Service{
		Store:    s,
		Registry: profile.NewRegistry(s),
		Repo:     userdata.NewRepository(s),
	}
	if p, ok := svc.Registry.Active(); ok {
		svc.data = svc.Repo.Load(p.ID, now)
	}
	return svc
}

// Data exposes the hydrated document for read paths.
func (s *Service) Data() (*userdata.UserData, error) {
	if s.data == nil {
		return nil, ErrNoProfile
	}
	return s.data, nil
}

// ActiveProfile returns the active profile, if any.
func (s *Service) ActiveProfile() (profile.Profile, bool) {
	return s.Registry.Active()
}

// CreateProfile registers a profile, initializes its empty document, and
// hydrates it as active.
func (s *Service) CreateProfile(name string, now time.Time) (profile.Profile, error) {
	p, err := s.Registry.Create(name, now)
	if err != nil {
		return profile.Profile{}, err
	}
	s.data = userdata.New(p.ID, now)
	if err := s.Repo.Save(s.data, now); err != nil {
		return profile.Profile{}, err
	}
	return p, nil
}

// SwitchProfile moves the active pointer and rehydrates.
func (s *Service) SwitchProfile(id string, now time.Time) error {
	if err := s.Registry.Switch(id, now); err != nil {
		return err
	}
	s.data = s.Repo.Load(id, now)
	return nil
}

// DeleteProfile removes a profile and its data key.
func (s *Service) DeleteProfile(id string, now time.Time) error {
	if err := s.Registry.Delete(id, now); err != nil {
		return err
	}
	if _, ok := s.Registry.Active(); !ok {
		s.data = nil
	}
	return nil
}

// AddSubject creates a subject. Blank names are rejected; an existing name
// returns the existing record instead of duplicating it.
func (s *Service) AddSubject(name, category string, now time.Time) (userdata.Subject, error) {
	if s.data == nil {
		return userdata.Subject{}, ErrNoProfile
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return userdata.Subject{}, ErrBlankName
	}
	if existing, ok := s.data.SubjectByName(name); ok {
		return existing, nil
	}
	subj := userdata.Subject{
		ID:        uuid.NewString(),
		Name:      name,
		Category:  strings.TrimSpace(category),
		CreatedAt: timeutil.Timestamp{Time: now},
	}
	s.data.Subjects = append(s.data.Subjects, subj)
	if err := s.save(now); err != nil {
		return userdata.Subject{}, err
	}
	return subj, nil
}

// AddTask creates a backlog item under an existing subject, referenced by id
// or display name.
func (s *Service) AddTask(subjectRef, title string, daily bool, dueDate string, now time.Time) (userdata.Task, error) {
	if s.data == nil {
		return userdata.Task{}, ErrNoProfile
	}
	title = strings.TrimSpace(title)
	if title == "" {
		return userdata.Task{}, ErrBlankName
	}
	subj, ok := s.resolveSubject(subjectRef)
	if !ok {
		return userdata.Task{}, ErrMissingSubject
	}
	task := userdata.Task{
		ID:        uuid.NewString(),
		SubjectID: subj.ID,
		Title:     title,
		Daily:     daily,
		DueDate:   dueDate,
		CreatedAt: timeutil.Timestamp{Time: now},
	}
	s.data.Tasks = append(s.data.Tasks, task)
	if err := s.save(now); err != nil {
		return userdata.Task{}, err
	}
	return task, nil
}

// CompleteTask marks a task done.
func (s *Service) CompleteTask(id string, now time.Time) error {
	if s.data == nil {
		return ErrNoProfile
	}
	task, ok := s.data.Task(id)
	if !ok {
		return ErrMissingTask
	}
	task.Done = true
	return s.save(now)
}

// RolloverTasks carries unfinished daily tasks forward to today's date. The
// LastRolloverDate gate makes repeated calls within one day a no-op.
func (s *Service) RolloverTasks(now time.Time) (int, error) {
	if s.data == nil {
		return 0, ErrNoProfile
	}
	today := timeutil.DayKey(now)
	if s.data.LastRolloverDate == today {
		return 0, nil
	}
	moved := 0
	for i := range s.data.Tasks {
		t := &s.data.Tasks[i]
		if t.Daily && !t.Done && t.DueDate != "" && t.DueDate < today {
			t.DueDate = today
			moved++
		}
	}
	s.data.LastRolloverDate = today
	if err := s.save(now); err != nil {
		return 0, err
	}
	return moved, nil
}

// SetSettings replaces the settings block.
func (s *Service) SetSettings(settings userdata.Settings, now time.Time) error {
	if s.data == nil {
		return ErrNoProfile
	}
	s.data.Settings = settings
	return s.save(now)
}

func (s *Service) resolveSubject(ref string) (userdata.Subject, bool) {
	if subj, ok := s.data.Subject(ref); ok {
		return subj, true
	}
	return s.data.SubjectByName(ref)
}

func (s *Service) save(now time.Time) error {
	return s.Repo.Save(s.data, now)
}
