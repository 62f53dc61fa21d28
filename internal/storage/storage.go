// Package storage provides the key-value persistence layer that all record
// collections and settings are kept in.
//
// Values are opaque strings; callers JSON-encode whole collections and settings
// objects. Two implementations exist: a gorm/SQLite-backed store for durable
// on-device persistence and an in-memory store for tests and ephemeral runs.
package storage

import "errors"

var (
	// ErrKeyNotFound is returned by Get when no value exists under the key.
	ErrKeyNotFound = errors.New("storage: key not found")
)

// Store is the minimal get/set/remove contract the application is written
// against. All operations are synchronous; callers are expected to serialize
// access to any given key themselves (single-writer model).
type Store interface {
	// Get returns the value stored under key, or ErrKeyNotFound.
	Get(key string) (string, error)

	// Set stores value under key, replacing any previous value.
	Set(key, value string) error

	// Delete removes the value under key. Deleting an absent key is not an error.
	Delete(key string) error
}
