package telegram

import (
	"testing"

	"esimbot/internal/booking"
)

func TestSlotPayloadRoundTrip(t *testing.T) {
	date := booking.Date{Year: 2024, Month: 6, Day: 10}
	payload := EncodeSlot(date, "10:00")
	if payload != "2024-06-10|10:00" {
		t.Fatalf("payload = %q", payload)
	}

	gotDate, gotSlot, err := ParseSlot(payload)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if gotDate != date || gotSlot != "10:00" {
		t.Fatalf("got %v %s", gotDate, gotSlot)
	}
}

func TestParseSlotRejectsMalformed(t *testing.T) {
	for _, payload := range []string{"", "2024-06-10", "junk|10:00", "2024-06-10|09:30", "a|b|c"} {
		if _, _, err := ParseSlot(payload); err == nil {
			t.Fatalf("expected error for %q", payload)
		}
	}
}

func TestDecisionPayloadRoundTrip(t *testing.T) {
	payload := EncodeDecision(booking.DecisionDeny, "abc123")
	decision, id, err := ParseDecisionPayload(payload)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if decision != booking.DecisionDeny || id != "abc123" {
		t.Fatalf("got %s %s", decision, id)
	}

	for _, bad := range []string{"", "accept", "accept|", "maybe|abc"} {
		if _, _, err := ParseDecisionPayload(bad); err == nil {
			t.Fatalf("expected error for %q", bad)
		}
	}
}
