package booking

import (
	"errors"
	"testing"
)

func testDate() Date { return Date{Year: 2024, Month: 6, Day: 10} }

func TestAvailableMatchesEnumerationOrder(t *testing.T) {
	reg := NewSlotRegistry()
	date := testDate()

	got := reg.Available(date)
	if len(got) != len(TimeSlots) {
		t.Fatalf("got %d slots, want %d", len(got), len(TimeSlots))
	}
	for i, slot := range TimeSlots {
		if got[i] != slot {
			t.Fatalf("slot %d = %s, want %s", i, got[i], slot)
		}
	}

	if err := reg.Reserve(date, "12:00", "b1"); err != nil {
		t.Fatalf("reserve: %v", err)
	}
	got = reg.Available(date)
	want := []Slot{"08:00", "10:00", "14:00", "16:00"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}

	// Another date is unaffected.
	other := Date{Year: 2024, Month: 6, Day: 11}
	if free := reg.Available(other); len(free) != len(TimeSlots) {
		t.Fatalf("other date lost slots: %v", free)
	}
}

func TestReserveConflict(t *testing.T) {
	reg := NewSlotRegistry()
	date := testDate()

	if err := reg.Reserve(date, "10:00", "b1"); err != nil {
		t.Fatalf("first reserve: %v", err)
	}
	err := reg.Reserve(date, "10:00", "b2")
	if err == nil {
		t.Fatal("second reserve should conflict")
	}
	var conflict *ConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("expected ConflictError, got %T", err)
	}

	// Release then re-reserve with a different booking succeeds.
	reg.Release(date, "10:00")
	if err := reg.Reserve(date, "10:00", "b2"); err != nil {
		t.Fatalf("reserve after release: %v", err)
	}
}

func TestReleaseIdempotent(t *testing.T) {
	reg := NewSlotRegistry()
	date := testDate()

	reg.Release(date, "08:00")
	if err := reg.Reserve(date, "08:00", "b1"); err != nil {
		t.Fatalf("reserve: %v", err)
	}
	reg.Release(date, "08:00")
	reg.Release(date, "08:00")
	if !reg.IsAvailable(date, "08:00") {
		t.Fatal("slot should be free after release")
	}
}

func TestIsAvailableRejectsUnknownSlot(t *testing.T) {
	reg := NewSlotRegistry()
	if reg.IsAvailable(testDate(), "09:30") {
		t.Fatal("slot outside the enumeration must not be available")
	}
}
