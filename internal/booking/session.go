package booking

import "sync"

// Stage is the typed state of one in-progress booking attempt. Each
// variant carries exactly the data that is valid at that point of the
// conversation, so a later value cannot be read before it exists.
type Stage interface {
	stage()
}

// CategoryStage awaits a category choice from the fixed list.
type CategoryStage struct{}

// CalendarStage awaits a resolved date from the calendar widget.
type CalendarStage struct {
	Category Category
}

// TimeStage awaits a slot choice for the chosen date.
type TimeStage struct {
	Category Category
	Date     Date
}

// FieldsStage walks the form-field table. Values holds the typed
// results accumulated so far; Index points at the field being asked.
type FieldsStage struct {
	Category Category
	Date     Date
	Slot     Slot
	Index    int
	Values   map[FieldKey]FieldValue
}

// ConfirmStage holds the assembled draft awaiting explicit confirmation.
type ConfirmStage struct {
	Draft *Request
}

func (CategoryStage) stage() {}
func (CalendarStage) stage() {}
func (TimeStage) stage()     {}
func (FieldsStage) stage()   {}
func (ConfirmStage) stage()  {}

// Sessions tracks the per-user conversation stage. A user with no
// entry is idle. The map is mutex-guarded because the transport may
// deliver updates on concurrent goroutines.
type Sessions struct {
	mu     sync.RWMutex
	active map[int64]Stage
}

// NewSessions returns an empty session table.
func NewSessions() *Sessions {
	return &Sessions{active: make(map[int64]Stage)}
}

// Get returns the user's current stage, if any.
func (s *Sessions) Get(userID int64) (Stage, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	st, ok := s.active[userID]
	return st, ok
}

// Set replaces the user's stage.
func (s *Sessions) Set(userID int64, st Stage) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active[userID] = st
}

// Clear destroys the user's session, returning them to idle.
func (s *Sessions) Clear(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.active, userID)
}

// InProgress reports whether the user has an active booking attempt.
func (s *Sessions) InProgress(userID int64) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.active[userID]
	return ok
}
