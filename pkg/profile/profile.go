// Package profile manages user profiles and the active-profile pointer. All
// other persisted state hangs off a profile-scoped key, so profiles are the
// isolation boundary between users on one device.
package profile

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/stintapp/stint/pkg/schema"
	"github.com/stintapp/stint/pkg/store"
	"github.com/stintapp/stint/pkg/timeutil"
)

// StateKey is the fixed top-level storage key for the registry.
const StateKey = "profiles"

// StateVersion is the registry's own schema version, independent of the
// per-profile data version.
const StateVersion = 1

var (
	// ErrBlankName rejects empty or whitespace-only profile names.
	ErrBlankName = errors.New("profile: name required")
	// ErrUnknownProfile reports an id the registry does not hold.
	ErrUnknownProfile = errors.New("profile: unknown profile")
)

// Profile identifies one isolated namespace of persisted data.
type Profile struct {
	ID           string             `json:"id"`
	Name         string             `json:"name"`
	CreatedAt    timeutil.Timestamp `json:"createdAt"`
	LastActiveAt timeutil.Timestamp `json:"lastActiveAt"`
}

// State is the persisted registry document. An empty ActiveProfileID is a
// valid state: nothing is ever auto-selected or seeded.
type State struct {
	Version         int       `json:"version"`
	ActiveProfileID string    `json:"activeProfileId,omitempty"`
	Profiles        []Profile `json:"profiles"`
}

// DataKey returns the storage key holding a profile's UserData.
func DataKey(profileID string) string {
	return "data:" + profileID
}

// Registry loads, mutates, and saves the profile state through the store.
type Registry struct {
	Store store.Adapter

	state State
	chain schema.Chain
}

// NewRegistry hydrates the registry from storage. Corrupt or absent state
// degrades to an empty registry; it never fails a load.
func NewRegistry(s store.Adapter) *Registry {
	r := &Registry{
		Store: s,
		chain: schema.Chain{
			Current: StateVersion,
			Steps:   map[int]schema.Step{},
			Validate: func(doc map[string]interface{}) bool {
				_, ok := doc["profiles"]
				return ok
			},
		},
	}
	r.state = State{Version: StateVersion, Profiles: []Profile{}}
	if raw, ok := s.Get(StateKey); ok {
		var loaded State
		if err := r.chain.DecodeInto(raw, &loaded); err == nil {
			loaded.Version = StateVersion
			if loaded.Profiles == nil {
				loaded.Profiles = []Profile{}
			}
			r.state = loaded
		}
	}
	return r
}

// List returns all profiles.
func (r *Registry) List() []Profile {
	out := make([]Profile, len(r.state.Profiles))
	copy(out, r.state.Profiles)
	return out
}

// Active returns the active profile, if any.
func (r *Registry) Active() (Profile, bool) {
	return r.find(r.state.ActiveProfileID)
}

// Create adds a new profile with a fresh id and makes it active. The new
// profile starts with no data; the caller initializes its UserData key.
func (r *Registry) Create(name string, now time.Time) (Profile, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Profile{}, ErrBlankName
	}
	p := Profile{
		ID:           uuid.NewString(),
		Name:         name,
		CreatedAt:    timeutil.Timestamp{Time: now},
		LastActiveAt: timeutil.Timestamp{Time: now},
	}
	prevActive := r.state.ActiveProfileID
	r.state.Profiles = append(r.state.Profiles, p)
	r.state.ActiveProfileID = p.ID
	if err := r.save(now); err != nil {
		r.state.Profiles = r.state.Profiles[:len(r.state.Profiles)-1]
		r.state.ActiveProfileID = prevActive
		return Profile{}, err
	}
	return p, nil
}

// Switch changes the active pointer. Unknown ids leave the registry
// untouched.
func (r *Registry) Switch(id string, now time.Time) error {
	for i := range r.state.Profiles {
		if r.state.Profiles[i].ID == id {
			r.state.ActiveProfileID = id
			r.state.Profiles[i].LastActiveAt = timeutil.Timestamp{Time: now}
			return r.save(now)
		}
	}
	return ErrUnknownProfile
}

// Rename changes a profile's display name.
func (r *Registry) Rename(id, name string, now time.Time) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrBlankName
	}
	for i := range r.state.Profiles {
		if r.state.Profiles[i].ID == id {
			r.state.Profiles[i].Name = name
			return r.save(now)
		}
	}
	return ErrUnknownProfile
}

// Delete removes a profile and its data key. Deleting the active profile
// leaves no profile selected.
func (r *Registry) Delete(id string, now time.Time) error {
	for i := range r.state.Profiles {
		if r.state.Profiles[i].ID == id {
			r.state.Profiles = append(r.state.Profiles[:i], r.state.Profiles[i+1:]...)
			if r.state.ActiveProfileID == id {
				r.state.ActiveProfileID = ""
			}
			if err := r.save(now); err != nil {
				return err
			}
			return r.Store.Remove(DataKey(id))
		}
	}
	return ErrUnknownProfile
}

func (r *Registry) find(id string) (Profile, bool) {
	if id == "" {
		return Profile{}, false
	}
	for _, p := range r.state.Profiles {
		if p.ID == id {
			return p, true
		}
	}
	return Profile{}, false
}

func (r *Registry) save(now time.Time) error {
	raw, err := r.chain.Encode(r.state, now)
	if err != nil {
		return err
	}
	return r.Store.Set(StateKey, raw)
}
