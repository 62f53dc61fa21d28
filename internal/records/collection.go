// Package records is the record store: CRUD over the four record collections
// (invoices, shoots, upcoming shoots, expenses) plus the settings objects,
// persisted as JSON under fixed keys in a storage.Store.
//
// Every mutation is a whole-collection read-modify-write. Two in-flight
// mutations of the same collection would lose one of them (last writer wins);
// the application is single-threaded by contract so this never occurs.
package records

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"studiobooks/internal/storage"
)

// Storage keys for the record collections and the invoice counter.
const (
	keyInvoices       = "invoices"
	keyInvoiceCounter = "invoice-counter"
	keyShoots         = "shoots"
	keyUpcomingShoots = "upcoming-shoots"
	keyExpenses       = "expenses"
)

var validate = validator.New()

// loadCollection reads and decodes the JSON array under key. A missing key is
// first-run state and loads as an empty collection; corrupt JSON does too, so
// a damaged value can never block the primary save path.
func loadCollection[T any](store storage.Store, key string) ([]T, error) {
	raw, err := store.Get(key)
	if err != nil {
		if errors.Is(err, storage.ErrKeyNotFound) {
			return []T{}, nil
		}
		return nil, fmt.Errorf("records: loading %s: %w", key, err)
	}

	var items []T
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return []T{}, nil
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

// saveCollection serializes items and rewrites the full value under key.
func saveCollection[T any](store storage.Store, key string, items []T) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("records: encoding %s: %w", key, err)
	}
	if err := store.Set(key, string(raw)); err != nil {
		return fmt.Errorf("records: saving %s: %w", key, err)
	}
	return nil
}
