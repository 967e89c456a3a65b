package app

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/stintapp/stint/pkg/analytics"
	"github.com/stintapp/stint/pkg/export"
	"github.com/stintapp/stint/pkg/timeutil"
	"github.com/stintapp/stint/pkg/userdata"
)

// Stats is the aggregator output the stats view renders.
type Stats struct {
	Totals       analytics.Totals
	Streak       int
	Productivity float64
	BySubject    []analytics.Bucket
}

// Stats recomputes the aggregates from the ledger. Nothing here is cached;
// derived state has no owner.
func (s *Service) Stats(now time.Time) (Stats, error) {
	if s.data == nil {
		return Stats{}, ErrNoProfile
	}
	totals := analytics.GoalTotals(s.data.Sessions, now)

	buckets := analytics.BySubject(s.data.Sessions)
	for i := range buckets {
		if subj, ok := s.data.Subject(buckets[i].Key); ok {
			buckets[i].Key = subj.Name
		}
	}

	return Stats{
		Totals:       totals,
		Streak:       analytics.Streak(s.data.Sessions, now),
		Productivity: analytics.ProductivityPercent(totals.TodayMs),
		BySubject:    buckets,
	}, nil
}

// Series exposes the time-bucketed rollup for chart consumers.
func (s *Service) Series(unit analytics.Unit, from, to time.Time) ([]analytics.Bucket, error) {
	if s.data == nil {
		return nil, ErrNoProfile
	}
	return analytics.Series(s.data.Sessions, unit, from, to), nil
}

// LogWorkout appends a workout entry. Workouts share the ledger shape but
// carry no reflection and never touch the study aggregates.
func (s *Service) LogWorkout(name string, started, ended time.Time, now time.Time) (userdata.WorkoutEntry, error) {
	if s.data == nil {
		return userdata.WorkoutEntry{}, ErrNoProfile
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return userdata.WorkoutEntry{}, ErrBlankName
	}
	d := ended.Sub(started)
	if d <= 0 {
		return userdata.WorkoutEntry{}, ErrBadInterval
	}
	entry := userdata.WorkoutEntry{
		ID:         uuid.NewString(),
		Name:       name,
		StartedAt:  timeutil.Timestamp{Time: started},
		EndedAt:    timeutil.Timestamp{Time: ended},
		DurationMs: d.Milliseconds(),
		CreatedAt:  timeutil.Timestamp{Time: now},
	}
	s.data.Workout.Entries = append(s.data.Workout.Entries, entry)
	if err := s.save(now); err != nil {
		return userdata.WorkoutEntry{}, err
	}
	return entry, nil
}

// Export builds the legacy flat bundle from the canonical document.
func (s *Service) Export() (map[string]string, error) {
	if s.data == nil {
		return nil, ErrNoProfile
	}
	return export.Build(s.data)
}
