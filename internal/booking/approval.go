package booking

// Decision is the admin's verdict on a pending booking.
type Decision string

const (
	DecisionAccept Decision = "accept"
	DecisionDeny   Decision = "deny"
)

// ParseDecision matches raw payload text against the decision set.
func ParseDecision(raw string) (Decision, bool) {
	switch Decision(raw) {
	case DecisionAccept:
		return DecisionAccept, true
	case DecisionDeny:
		return DecisionDeny, true
	}
	return "", false
}

// Past renders the decision as shown in notifications ("accepted", "denied").
func (d Decision) Past() string { return string(d) + "ed" }

// Submit moves a draft from pending_user to pending_admin, reserving
// its slot and indexing it under the owning user. A ConflictError is
// returned, and nothing is stored, when the slot was claimed since the
// draft was assembled.
func (s *Store) Submit(req *Request) error {
	if err := s.slots.Reserve(req.Date, req.Slot, req.ID); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	req.Status = StatusPendingAdmin
	s.requests[req.ID] = req
	s.byUser[req.UserID] = append(s.byUser[req.UserID], req.ID)
	return nil
}

// Decide applies the admin decision to a pending booking. Deciding on
// an unknown id fails with a NotFoundError and changes nothing.
func (s *Store) Decide(bookingID string, decision Decision) (*Request, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	req, ok := s.requests[bookingID]
	if !ok {
		return nil, &NotFoundError{BookingID: bookingID}
	}
	if decision == DecisionAccept {
		req.Status = StatusAccepted
	} else {
		req.Status = StatusDenied
	}
	return req, nil
}

// Cancel removes a booking from both indexes and releases its slot.
// Canceling an id that is not present reports NotFoundError so the
// caller can answer "nothing to cancel"; it is otherwise a no-op.
func (s *Store) Cancel(bookingID string) (*Request, error) {
	s.mu.Lock()
	req, ok := s.requests[bookingID]
	if !ok {
		s.mu.Unlock()
		return nil, &NotFoundError{BookingID: bookingID}
	}
	delete(s.requests, bookingID)

	ids := s.byUser[req.UserID]
	for i, id := range ids {
		if id == bookingID {
			s.byUser[req.UserID] = append(ids[:i], ids[i+1:]...)
			break
		}
	}
	req.Status = StatusCanceled
	s.mu.Unlock()

	// Release after dropping the store lock; the registry has its own.
	s.slots.Release(req.Date, req.Slot)
	return req, nil
}
