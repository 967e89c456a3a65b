// Package schema implements the versioned persistence envelope and the
// ordered migration chain that upgrades stored JSON from any older schema
// version to the current one. Migrations are pure and total: each step must
// produce a valid next-version document even from partially-malformed input,
// defaulting anything missing.
package schema

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/stintapp/stint/pkg/timeutil"
)

var (
	// ErrCorrupt reports that a stored value is not parseable as an envelope,
	// or fails final shape validation. Callers substitute a default value and
	// leave the stored bytes untouched.
	ErrCorrupt = errors.New("schema: corrupt envelope")
	// ErrFutureVersion reports a stored version newer than this build
	// understands (a rollback scenario). Never interpreted, never migrated.
	ErrFutureVersion = errors.New("schema: future version")
	// ErrMissingMigration reports a stored version with no step toward the
	// current version. Treated like corruption: fail safe to defaults.
	ErrMissingMigration = errors.New("schema: missing migration")
)

// Envelope wraps every persisted domain object.
type Envelope struct {
	Version   int                `json:"version"`
	UpdatedAt timeutil.Timestamp `json:"updatedAt"`
	Data      json.RawMessage    `json:"data"`
}

// Step migrates a document from version v to v+1. Steps never return nil.
type Step func(doc map[string]interface{}) map[string]interface{}

// Chain describes how to read and write one persisted key.
type Chain struct {
	// Current is the schema version this build writes.
	Current int
	// Steps maps version v to the migration producing version v+1.
	Steps map[int]Step
	// Validate optionally re-checks the final document shape. A false return
	// degrades to the caller's default value.
	Validate func(doc map[string]interface{}) bool
}

// Decode parses raw into a document at Chain.Current, applying migration
// steps in strictly ascending order. Already-current data passes through
// untouched, so running Decode over its own output is a no-op.
func (c Chain) Decode(raw string) (map[string]interface{}, error) {
	var env Envelope
	if err := json.Unmarshal([]byte(raw), &env); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	if env.Version <= 0 || len(env.Data) == 0 {
		return nil, fmt.Errorf("%w: not an envelope", ErrCorrupt)
	}
	if env.Version > c.Current {
		return nil, fmt.Errorf("%w: stored %d, current %d", ErrFutureVersion, env.Version, c.Current)
	}

	var doc map[string]interface{}
	if err := json.Unmarshal(env.Data, &doc); err != nil {
		return nil, fmt.Errorf("%w: data: %v", ErrCorrupt, err)
	}
	if doc == nil {
		doc = map[string]interface{}{}
	}

	for v := env.Version; v < c.Current; v++ {
		step, ok := c.Steps[v]
		if !ok {
			return nil, fmt.Errorf("%w: no step from version %d", ErrMissingMigration, v)
		}
		doc = step(doc)
		if doc == nil {
			return nil, fmt.Errorf("%w: step %d returned nil", ErrCorrupt, v)
		}
	}

	if c.Validate != nil && !c.Validate(doc) {
		return nil, fmt.Errorf("%w: validation failed", ErrCorrupt)
	}
	return doc, nil
}

// DecodeInto decodes raw through the chain and unmarshals the migrated
// document into out.
func (c Chain) DecodeInto(raw string, out interface{}) error {
	doc, err := c.Decode(raw)
	if err != nil {
		return err
	}
	b, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("%w: remarshal: %v", ErrCorrupt, err)
	}
	if err := json.Unmarshal(b, out); err != nil {
		return fmt.Errorf("%w: decode into %T: %v", ErrCorrupt, out, err)
	}
	return nil
}

// Encode wraps data in an envelope at the current version.
func (c Chain) Encode(data interface{}, now time.Time) (string, error) {
	b, err := json.Marshal(data)
	if err != nil {
		return "", fmt.Errorf("schema: encode data: %w", err)
	}
	env := Envelope{
		Version:   c.Current,
		UpdatedAt: timeutil.Timestamp{Time: now},
		Data:      b,
	}
	out, err := json.Marshal(env)
	if err != nil {
		return "", fmt.Errorf("schema: encode envelope: %w", err)
	}
	return string(out), nil
}
