package reference

import "sync/atomic"

// Provider gives read access to the current reference data. Either accessor may
// return nil when that source is unavailable.
type Provider interface {
	Distribution() *Distribution
	Institutions() *InstitutionRanking
}

// Snapshot is one consistent version of the reference data
type Snapshot struct {
	Distribution *Distribution
	Institutions *InstitutionRanking
}

// Store holds the current Snapshot. Readers never block; Refresh swaps in a new
// snapshot atomically and never mutates one that readers may hold.
type Store struct {
	current atomic.Pointer[Snapshot]
}

// NewStore creates a store holding the given snapshot
func NewStore(initial Snapshot) *Store {
	s := &Store{}
	s.Refresh(initial)
	return s
}

// Refresh replaces the current snapshot
func (s *Store) Refresh(next Snapshot) {
	snap := next
	s.current.Store(&snap)
}

// Snapshot returns the current snapshot
func (s *Store) Snapshot() Snapshot {
	if snap := s.current.Load(); snap != nil {
		return *snap
	}
	return Snapshot{}
}

// Distribution implements Provider
func (s *Store) Distribution() *Distribution {
	return s.Snapshot().Distribution
}

// Institutions implements Provider
func (s *Store) Institutions() *InstitutionRanking {
	return s.Snapshot().Institutions
}
