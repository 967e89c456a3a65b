// Package store provides the string-keyed persistence primitive everything
// else writes through. No transactions, no cross-key atomicity: one key, one
// durable JSON string.
package store

import "errors"

// ErrUnavailable reports that the underlying store rejected a write (path
// missing, permissions, disk full). Reads never return it; a failed read is
// treated as an absent key.
var ErrUnavailable = errors.New("store: storage unavailable")

// Adapter is the read-write-delete contract over a persistent string store.
type Adapter interface {
	// Get returns the stored value and true, or ("", false) when the key is
	// absent or unreadable.
	Get(key string) (string, bool)
	// Set durably writes value under key. Failures wrap ErrUnavailable.
	Set(key, value string) error
	// Remove deletes key. Removing an absent key is not an error.
	Remove(key string) error
}
