// Package session provides the tab-scoped state carrier used to pass
// parameters between otherwise-stateless fragment loads.
//
// The store is deliberately small: string keys, string values, no expiry,
// no persistence. A missing key reads as the empty value rather than
// failing, and removing a key that was never set is a no-op. Callers that
// need to distinguish "absent" from "set to empty" use Has.
package session

import "sync"

// Well-known keys shared with externally served fragments. Fragments read
// these by name, so they are part of the wire contract and must stay stable.
const (
	KeyUsername     = "username"
	KeyCollegeID    = "collegeid"
	KeyContext      = "context"
	KeyParam        = "param"
	KeyModuleID     = "moduleid"
	KeyAcademicYear = "academicyear"
	KeyProgramType  = "programtype"
)

// Store is the state carrier contract. Implementations never fail: Set
// always succeeds, Get on a missing key returns "", and Remove of a missing
// key is a no-op. Mutations are visible to any subsequent read on the same
// store.
type Store interface {
	Set(key, value string)
	Get(key string) string
	Has(key string) bool
	Remove(key string)
}

// MemoryStore is the default Store backed by an in-process map. The zero
// value is not usable; create one with NewMemoryStore.
//
// Fragment loads run on their own goroutines, so access is guarded even
// though the composition layer itself is single-threaded.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

// Set stores value under key, replacing any previous value.
func (s *MemoryStore) Set(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
}

// Get returns the value stored under key, or "" when the key is absent.
func (s *MemoryStore) Get(key string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.values[key]
}

// Has reports whether key is present, regardless of its value.
func (s *MemoryStore) Has(key string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.values[key]
	return ok
}

// Remove deletes key. Removing an absent key is a no-op.
func (s *MemoryStore) Remove(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
}

// Len returns the number of stored keys.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.values)
}
