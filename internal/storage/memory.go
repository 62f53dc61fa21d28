package storage

// MemoryStore is a map-backed Store for tests and ephemeral runs.
type MemoryStore struct {
	values map[string]string
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

// Get returns the value stored under key, or ErrKeyNotFound.
func (s *MemoryStore) Get(key string) (string, error) {
	value, ok := s.values[key]
	if !ok {
		return "", ErrKeyNotFound
	}
	return value, nil
}

// Set stores value under key, replacing any previous value.
func (s *MemoryStore) Set(key, value string) error {
	s.values[key] = value
	return nil
}

// Delete removes the value under key. Deleting an absent key is not an error.
func (s *MemoryStore) Delete(key string) error {
	delete(s.values, key)
	return nil
}
