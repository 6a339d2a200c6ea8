package booking

import (
	"errors"
	"testing"
)

func testRequest(userID int64) *Request {
	return NewRequest(userID, CategoryNewRegistration, testDate(), "10:00",
		Identity{FirstName: "Alice", LastName: "Young", DateOfBirth: Date{Year: 1990, Month: 1, Day: 2}},
		Address{StreetNumber: "12", StreetName: "Main St", City: "Ottawa", Province: "ON", PostalCode: "A2A 1B4"},
	)
}

func TestSubmitReservesAndIndexes(t *testing.T) {
	slots := NewSlotRegistry()
	store := NewStore(slots)
	req := testRequest(7)

	if err := store.Submit(req); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if req.Status != StatusPendingAdmin {
		t.Fatalf("status = %s, want %s", req.Status, StatusPendingAdmin)
	}
	if slots.IsAvailable(req.Date, req.Slot) {
		t.Fatal("slot should be reserved after submit")
	}
	if got := store.ByUser(7); len(got) != 1 || got[0].ID != req.ID {
		t.Fatalf("user index = %v", got)
	}

	// A second booking for the same pair conflicts and is not stored.
	other := testRequest(8)
	err := store.Submit(other)
	var conflict *ConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("expected ConflictError, got %v", err)
	}
	if _, ok := store.Get(other.ID); ok {
		t.Fatal("conflicting booking must not be stored")
	}
	if store.Len() != 1 {
		t.Fatalf("store len = %d, want 1", store.Len())
	}
}

func TestDecide(t *testing.T) {
	store := NewStore(NewSlotRegistry())
	req := testRequest(7)
	if err := store.Submit(req); err != nil {
		t.Fatalf("submit: %v", err)
	}

	got, err := store.Decide(req.ID, DecisionAccept)
	if err != nil {
		t.Fatalf("decide: %v", err)
	}
	if got.Status != StatusAccepted {
		t.Fatalf("status = %s, want %s", got.Status, StatusAccepted)
	}

	_, err = store.Decide("missing", DecisionDeny)
	var notFound *NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestDecideDeny(t *testing.T) {
	store := NewStore(NewSlotRegistry())
	req := testRequest(7)
	if err := store.Submit(req); err != nil {
		t.Fatalf("submit: %v", err)
	}
	got, err := store.Decide(req.ID, DecisionDeny)
	if err != nil {
		t.Fatalf("decide: %v", err)
	}
	if got.Status != StatusDenied {
		t.Fatalf("status = %s, want %s", got.Status, StatusDenied)
	}
}

func TestCancelReleasesSlot(t *testing.T) {
	slots := NewSlotRegistry()
	store := NewStore(slots)
	req := testRequest(7)
	if err := store.Submit(req); err != nil {
		t.Fatalf("submit: %v", err)
	}

	canceled, err := store.Cancel(req.ID)
	if err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if canceled.Status != StatusCanceled {
		t.Fatalf("status = %s, want %s", canceled.Status, StatusCanceled)
	}
	if !slots.IsAvailable(req.Date, req.Slot) {
		t.Fatal("slot must reappear after cancel")
	}
	if got := store.ByUser(7); len(got) != 0 {
		t.Fatalf("user index not cleared: %v", got)
	}

	// Canceling again is a not-found no-op, never a fatal error.
	if _, err := store.Cancel(req.ID); err == nil {
		t.Fatal("expected NotFoundError on double cancel")
	} else {
		var notFound *NotFoundError
		if !errors.As(err, &notFound) {
			t.Fatalf("expected NotFoundError, got %T", err)
		}
	}
}
