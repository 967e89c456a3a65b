package userdata

import (
	"encoding/json"
	"time"

	"github.com/stintapp/stint/pkg/profile"
	"github.com/stintapp/stint/pkg/schema"
	"github.com/stintapp/stint/pkg/session"
	"github.com/stintapp/stint/pkg/store"
)

// HandoffKey is the transient, non-versioned key used to pass
// continue-session parameters between views. Profile-agnostic and
// read-once-then-deleted.
const HandoffKey = "handoff"

// Handoff carries the parameters for continuing a previously recorded
// stretch in a fresh timer run. SessionID names the ledger record the seed
// came from; the consumer absorbs it so the stretch is never counted twice.
type Handoff struct {
	SessionID        string `json:"sessionId,omitempty"`
	SubjectID        string `json:"subjectId"`
	TaskID           string `json:"taskId,omitempty"`
	InitialElapsedMs int64  `json:"initialElapsedMs"`
}

// Repository reads and writes UserData documents through the envelope chain.
// It is the only component that touches a profile's data key.
type Repository struct {
	Store store.Adapter

	chain schema.Chain
}

// NewRepository builds a repository over the given adapter.
func NewRepository(s store.Adapter) *Repository {
	return &Repository{Store: s, chain: Chain()}
}

// Load hydrates the document for profileID. Absent, corrupt, unmigratable,
// or future-versioned data all degrade to a fresh empty document at the
// current version; stored bytes are left untouched until the next successful
// save, so manual recovery of a corrupt value stays possible.
func (r *Repository) Load(profileID string, now time.Time) *UserData {
	raw, ok := r.Store.Get(profile.DataKey(profileID))
	if !ok {
		return New(profileID, now)
	}

	var d UserData
	if err := r.chain.DecodeInto(raw, &d); err != nil {
		return New(profileID, now)
	}
	d.Version = CurrentVersion
	d.ProfileID = profileID
	if d.Subjects == nil {
		d.Subjects = []Subject{}
	}
	if d.Tasks == nil {
		d.Tasks = []Task{}
	}
	if d.Sessions == nil {
		d.Sessions = []session.Session{}
	}
	if d.Workout.Entries == nil {
		d.Workout.Entries = []WorkoutEntry{}
	}
	return &d
}

// Save wraps the document in a current-version envelope and writes it,
// refreshing UpdatedAt. Write failures surface to the caller; silently
// losing a write is worse than reporting it.
func (r *Repository) Save(d *UserData, now time.Time) error {
	d.Version = CurrentVersion
	d.UpdatedAt.Time = now
	raw, err := r.chain.Encode(d, now)
	if err != nil {
		return err
	}
	return r.Store.Set(profile.DataKey(d.ProfileID), raw)
}

// PutHandoff stores continue-session parameters for the next timer start.
func (r *Repository) PutHandoff(h Handoff) error {
	b, err := json.Marshal(h)
	if err != nil {
		return err
	}
	return r.Store.Set(HandoffKey, string(b))
}

// TakeHandoff reads and deletes the pending handoff, if any.
func (r *Repository) TakeHandoff() (Handoff, bool) {
	raw, ok := r.Store.Get(HandoffKey)
	if !ok {
		return Handoff{}, false
	}
	_ = r.Store.Remove(HandoffKey)
	var h Handoff
	if err := json.Unmarshal([]byte(raw), &h); err != nil {
		return Handoff{}, false
	}
	return h, true
}
