package booking

import "sync"

// Store owns every submitted booking request and the per-user index of
// booking ids. It delegates slot reservation and release to the
// registry; all access is funneled through one mutex.
type Store struct {
	mu       sync.Mutex
	slots    *SlotRegistry
	requests map[string]*Request
	byUser   map[int64][]string
}

// NewStore returns an empty store backed by the given registry.
func NewStore(slots *SlotRegistry) *Store {
	return &Store{
		slots:    slots,
		requests: make(map[string]*Request),
		byUser:   make(map[int64][]string),
	}
}

// Get looks up a booking by id.
func (s *Store) Get(bookingID string) (*Request, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	req, ok := s.requests[bookingID]
	return req, ok
}

// ByUser returns the user's bookings in submission order.
func (s *Store) ByUser(userID int64) []*Request {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := s.byUser[userID]
	out := make([]*Request, 0, len(ids))
	for _, id := range ids {
		if req, ok := s.requests[id]; ok {
			out = append(out, req)
		}
	}
	return out
}

// Len reports the number of stored bookings.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.requests)
}
