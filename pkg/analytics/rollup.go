package analytics

import (
	"sort"
	"time"

	"github.com/stintapp/stint/pkg/session"
	"github.com/stintapp/stint/pkg/timeutil"
)

// Bucket is one group-by row handed to chart consumers. The contract ends
// here; rendering is someone else's problem.
type Bucket struct {
	Key     string
	TotalMs int64
}

// Unit selects the time-series granularity.
type Unit string

const (
	ByDay   Unit = "day"
	ByWeek  Unit = "week"
	ByMonth Unit = "month"
)

// BySubject sums durations per subject id, sorted by descending total and
// then key, so output is deterministic.
func BySubject(sessions []session.Session) []Bucket {
	totals := make(map[string]int64)
	for _, s := range sessions {
		if s.DurationMs <= 0 {
			continue
		}
		totals[s.SubjectID] += s.DurationMs
	}
	out := make([]Bucket, 0, len(totals))
	for key, total := range totals {
		out = append(out, Bucket{Key: key, TotalMs: total})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].TotalMs != out[j].TotalMs {
			return out[i].TotalMs > out[j].TotalMs
		}
		return out[i].Key < out[j].Key
	})
	return out
}

// Series buckets session durations by calendar unit between from and to
// inclusive, keyed on each bucket's start date. Empty buckets are included so
// consumers get a gapless sequence.
func Series(sessions []session.Session, unit Unit, from, to time.Time) []Bucket {
	if to.Before(from) {
		from, to = to, from
	}

	totals := make(map[string]int64)
	for _, s := range sessions {
		if s.DurationMs <= 0 {
			continue
		}
		ended := s.EndedAt.Local()
		if ended.Before(from) || ended.After(to) {
			continue
		}
		totals[bucketStart(ended, unit)] += s.DurationMs
	}

	var out []Bucket
	cursor := bucketStartTime(from, unit)
	end := bucketStartTime(to, unit)
	for !cursor.After(end) {
		key := timeutil.DayKey(cursor)
		out = append(out, Bucket{Key: key, TotalMs: totals[key]})
		cursor = nextBucket(cursor, unit)
	}
	return out
}

func bucketStart(t time.Time, unit Unit) string {
	return timeutil.DayKey(bucketStartTime(t, unit))
}

func bucketStartTime(t time.Time, unit Unit) time.Time {
	switch unit {
	case ByWeek:
		return timeutil.StartOfWeek(t)
	case ByMonth:
		return timeutil.StartOfMonth(t)
	default:
		return timeutil.StartOfDay(t)
	}
}

func nextBucket(t time.Time, unit Unit) time.Time {
	switch unit {
	case ByWeek:
		return t.AddDate(0, 0, 7)
	case ByMonth:
		return t.AddDate(0, 1, 0)
	default:
		return t.AddDate(0, 0, 1)
	}
}
