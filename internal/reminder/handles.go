package reminder

import (
	"encoding/json"
	"errors"
	"fmt"

	"studiobooks/internal/storage"
)

// keyReminderHandles is the storage key of the handle side-table: a JSON
// object mapping reminder keys ("shoot_<id>", "invoice_<id>") to the platform
// handles returned at scheduling time.
const keyReminderHandles = "reminder-handles"

// handleTable persists the reminder-key-to-handle mapping so scheduled
// notifications stay cancellable across restarts.
type handleTable struct {
	store storage.Store
}

func (t *handleTable) load() (map[string]string, error) {
	raw, err := t.store.Get(keyReminderHandles)
	if err != nil {
		if errors.Is(err, storage.ErrKeyNotFound) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("reminder: loading handle table: %w", err)
	}

	handles := map[string]string{}
	if err := json.Unmarshal([]byte(raw), &handles); err != nil {
		return map[string]string{}, nil
	}
	return handles, nil
}

func (t *handleTable) save(handles map[string]string) error {
	raw, err := json.Marshal(handles)
	if err != nil {
		return fmt.Errorf("reminder: encoding handle table: %w", err)
	}
	if err := t.store.Set(keyReminderHandles, string(raw)); err != nil {
		return fmt.Errorf("reminder: saving handle table: %w", err)
	}
	return nil
}

// get returns the handle for key, if any.
func (t *handleTable) get(key string) (string, bool, error) {
	handles, err := t.load()
	if err != nil {
		return "", false, err
	}
	handle, ok := handles[key]
	return handle, ok, nil
}

// put records key → handle.
func (t *handleTable) put(key, handle string) error {
	handles, err := t.load()
	if err != nil {
		return err
	}
	handles[key] = handle
	return t.save(handles)
}

// remove drops key from the table. Removing an absent key is a no-op.
func (t *handleTable) remove(key string) error {
	handles, err := t.load()
	if err != nil {
		return err
	}
	if _, ok := handles[key]; !ok {
		return nil
	}
	delete(handles, key)
	return t.save(handles)
}

// clear empties the table.
func (t *handleTable) clear() error {
	return t.save(map[string]string{})
}
