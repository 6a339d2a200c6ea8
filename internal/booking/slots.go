package booking

import "sync"

// SlotRegistry tracks which (date, slot) pairs are reserved and by
// which booking. All mutation goes through the mutex so that at most
// one booking holds a pair at any time.
type SlotRegistry struct {
	mu     sync.Mutex
	booked map[Date]map[Slot]string
}

// NewSlotRegistry returns an empty registry.
func NewSlotRegistry() *SlotRegistry {
	return &SlotRegistry{booked: make(map[Date]map[Slot]string)}
}

// Available returns the fixed slot enumeration minus any slot already
// reserved for the date, in enumeration order.
func (r *SlotRegistry) Available(date Date) []Slot {
	r.mu.Lock()
	defer r.mu.Unlock()

	day := r.booked[date]
	free := make([]Slot, 0, len(TimeSlots))
	for _, slot := range TimeSlots {
		if _, taken := day[slot]; !taken {
			free = append(free, slot)
		}
	}
	return free
}

// IsAvailable reports whether the (date, slot) pair is unreserved.
func (r *SlotRegistry) IsAvailable(date Date, slot Slot) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, taken := r.booked[date][slot]
	return !taken && ValidSlot(slot)
}

// Reserve records the pair for a booking id, failing with a
// ConflictError if it is already held.
func (r *SlotRegistry) Reserve(date Date, slot Slot, bookingID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	day, ok := r.booked[date]
	if !ok {
		day = make(map[Slot]string)
		r.booked[date] = day
	}
	if _, taken := day[slot]; taken {
		return &ConflictError{Date: date, Slot: slot}
	}
	day[slot] = bookingID
	return nil
}

// Release removes a reservation. Releasing an absent pair is a no-op.
func (r *SlotRegistry) Release(date Date, slot Slot) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if day, ok := r.booked[date]; ok {
		delete(day, slot)
		if len(day) == 0 {
			delete(r.booked, date)
		}
	}
}
