package userdata

import (
	"fmt"
	"strings"

	"github.com/stintapp/stint/pkg/schema"
	"github.com/stintapp/stint/pkg/timeutil"
)

// CurrentVersion is the schema version this build writes. Bumping it without
// registering the corresponding step makes Chain panic at init, so the
// contract violation cannot ship silently.
const CurrentVersion = 3

// Chain returns the migration chain for UserData documents.
//
// v1: first app generation. Flat lists keyed by display names, durations in
// seconds, no timer snapshot shape.
// v2: ids everywhere, milliseconds everywhere, canonical session shape.
// v3: dual-accumulator timer snapshot, settings block, rollover date.
func Chain() schema.Chain {
	c := schema.Chain{
		Current: CurrentVersion,
		Steps: map[int]schema.Step{
			1: migrateV1NamesToIDs,
			2: migrateV2TimerAndSettings,
		},
		Validate: func(doc map[string]interface{}) bool {
			if _, ok := doc["sessions"].([]interface{}); !ok {
				return false
			}
			_, ok := doc["timer"].(map[string]interface{})
			return ok
		},
	}
	for v := 1; v < c.Current; v++ {
		if _, ok := c.Steps[v]; !ok {
			panic(fmt.Sprintf("userdata: no migration step from version %d", v))
		}
	}
	return c
}

// migrateV1NamesToIDs normalizes the duck-typed first-generation shapes: it
// resolves subject display names to generated subject records, collapses
// taskIds[0] to taskId, and converts second-based durations to milliseconds.
func migrateV1NamesToIDs(doc map[string]interface{}) map[string]interface{} {
	subjects := asSlice(doc["subjects"])
	subjectIDs := make(map[string]string)
	for _, raw := range subjects {
		if m, ok := raw.(map[string]interface{}); ok {
			name := asString(m["name"])
			id := asString(m["id"])
			if name != "" && id != "" {
				subjectIDs[name] = id
			}
		}
	}

	ensureSubject := func(name string) string {
		if name == "" {
			return ""
		}
		if id, ok := subjectIDs[name]; ok {
			return id
		}
		id := slugID(name)
		subjectIDs[name] = id
		subjects = append(subjects, map[string]interface{}{
			"id":   id,
			"name": name,
		})
		return id
	}

	var sessions []interface{}
	for _, raw := range asSlice(doc["sessions"]) {
		m, ok := raw.(map[string]interface{})
		if !ok {
			continue
		}
		if _, ok := m["subjectId"]; !ok {
			m["subjectId"] = ensureSubject(asString(m["subject"]))
			delete(m, "subject")
		}
		if _, ok := m["durationMs"]; !ok {
			m["durationMs"] = secondsToMs(m["duration"])
			delete(m, "duration")
		}
		if _, ok := m["taskId"]; !ok {
			if ids := asSlice(m["taskIds"]); len(ids) > 0 {
				m["taskId"] = asString(ids[0])
			}
		}
		delete(m, "taskIds")
		if asString(m["mode"]) == "" {
			m["mode"] = "stopwatch"
		}
		if asString(m["phase"]) == "" {
			m["phase"] = "focus"
		}
		sessions = append(sessions, m)
	}
	if sessions == nil {
		sessions = []interface{}{}
	}

	var tasks []interface{}
	for _, raw := range asSlice(doc["tasks"]) {
		m, ok := raw.(map[string]interface{})
		if !ok {
			continue
		}
		if _, ok := m["subjectId"]; !ok {
			m["subjectId"] = ensureSubject(asString(m["subject"]))
			delete(m, "subject")
		}
		if _, ok := m["accumulatedMs"]; !ok {
			m["accumulatedMs"] = secondsToMs(m["accumulatedSeconds"])
			delete(m, "accumulatedSeconds")
		}
		tasks = append(tasks, m)
	}
	if tasks == nil {
		tasks = []interface{}{}
	}

	doc["subjects"] = subjects
	doc["sessions"] = sessions
	doc["tasks"] = tasks
	return doc
}

// migrateV2TimerAndSettings introduces the dual-accumulator snapshot and the
// settings block. A legacy running timer carries its elapsed seconds into the
// accumulator and keeps its start timestamp, so elapsed time is not double
// counted and not lost.
func migrateV2TimerAndSettings(doc map[string]interface{}) map[string]interface{} {
	t, _ := doc["timer"].(map[string]interface{})
	if t == nil {
		t = map[string]interface{}{}
	}
	if _, ok := t["accumulatedMs"]; !ok {
		snapshot := map[string]interface{}{
			"mode":               orDefault(asString(t["mode"]), "stopwatch"),
			"phase":              orDefault(asString(t["phase"]), "focus"),
			"isRunning":          t["isRunning"] == true,
			"startedAtMs":        nil,
			"accumulatedMs":      secondsToMs(t["elapsedSeconds"]),
			"phaseStartedAtMs":   nil,
			"phaseAccumulatedMs": float64(0),
			"cycleCount":         float64(0),
		}
		if id := asString(t["subjectId"]); id != "" {
			snapshot["subjectId"] = id
		}
		if id := asString(t["taskId"]); id != "" {
			snapshot["taskId"] = id
		}
		if t["isRunning"] == true {
			if started, err := timeutil.Parse(asString(t["startedAt"])); err == nil {
				ms := float64(started.UnixMilli())
				snapshot["startedAtMs"] = ms
				snapshot["phaseStartedAtMs"] = ms
			} else {
				// A running timer with no usable start timestamp cannot be
				// reconstructed; freeze what was accumulated.
				snapshot["isRunning"] = false
			}
		}
		t = snapshot
	}
	doc["timer"] = t

	settings, _ := doc["settings"].(map[string]interface{})
	if settings == nil {
		settings = map[string]interface{}{}
	}
	defaults := DefaultSettings()
	ensureNumber(settings, "focusMinutes", defaults.FocusMinutes)
	ensureNumber(settings, "shortBreakMinutes", defaults.ShortBreakMinutes)
	ensureNumber(settings, "longBreakMinutes", defaults.LongBreakMinutes)
	ensureNumber(settings, "longBreakInterval", defaults.LongBreakInterval)
	ensureNumber(settings, "dailyGoalMinutes", defaults.DailyGoalMinutes)
	ensureNumber(settings, "weeklyGoalMinutes", defaults.WeeklyGoalMinutes)
	ensureNumber(settings, "monthlyGoalMinutes", defaults.MonthlyGoalMinutes)
	if _, ok := settings["autoStartNextPhase"]; !ok {
		settings["autoStartNextPhase"] = false
	}
	doc["settings"] = settings

	if _, ok := doc["workout"].(map[string]interface{}); !ok {
		doc["workout"] = map[string]interface{}{"entries": []interface{}{}}
	}
	if _, ok := doc["lastRolloverDate"]; !ok {
		doc["lastRolloverDate"] = ""
	}
	if _, ok := doc["createdAt"]; !ok {
		doc["createdAt"] = ""
	}
	return doc
}

func slugID(name string) string {
	slug := strings.ToLower(strings.TrimSpace(name))
	slug = strings.Join(strings.Fields(slug), "-")
	return "subject-" + slug
}

func orDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

func ensureNumber(m map[string]interface{}, key string, fallback int) {
	if _, ok := m[key]; !ok {
		m[key] = float64(fallback)
	}
}

func asSlice(v interface{}) []interface{} {
	s, _ := v.([]interface{})
	return s
}

func asString(v interface{}) string {
	s, _ := v.(string)
	return s
}

func asNumber(v interface{}) float64 {
	f, _ := v.(float64)
	return f
}

// secondsToMs converts a legacy second count to whole milliseconds. Legacy
// writers stored fractional seconds; truncating here keeps the migrated value
// unmarshalable into the canonical int64 fields.
func secondsToMs(v interface{}) float64 {
	return float64(int64(asNumber(v) * 1000))
}
