package telegram

import (
	"fmt"
	"strings"

	tele "gopkg.in/telebot.v4"

	"esimbot/internal/booking"
)

// Callback button uniques. Telebot encodes pressed buttons as
// \f<unique>|<payload>; every payload below is encoded and parsed only
// here, so handlers receive typed values.
const (
	uniqueCalendarDay = "calday"
	uniqueCalendarNav = "calnav"
	uniqueCalendarNil = "calnil"
	uniqueSlot        = "slot"
	uniqueSlotNone    = "slotnone"
	uniqueConfirm     = "confirm"
	uniqueCancel      = "cancel"
	uniqueDecision    = "admin"
)

const payloadSep = "|"

// EncodeSlot packs a (date, slot) pair into a callback payload.
func EncodeSlot(date booking.Date, slot booking.Slot) string {
	return date.String() + payloadSep + string(slot)
}

// ParseSlot unpacks a slot-choice payload.
func ParseSlot(payload string) (booking.Date, booking.Slot, error) {
	parts := strings.Split(payload, payloadSep)
	if len(parts) != 2 {
		return booking.Date{}, "", fmt.Errorf("malformed slot payload %q", payload)
	}
	date, err := booking.ParseDate(parts[0])
	if err != nil {
		return booking.Date{}, "", err
	}
	slot := booking.Slot(parts[1])
	if !booking.ValidSlot(slot) {
		return booking.Date{}, "", fmt.Errorf("unknown slot %q", parts[1])
	}
	return date, slot, nil
}

// EncodeDecision packs an admin decision with its booking id.
func EncodeDecision(decision booking.Decision, bookingID string) string {
	return string(decision) + payloadSep + bookingID
}

// ParseDecisionPayload unpacks an admin-decision payload.
func ParseDecisionPayload(payload string) (booking.Decision, string, error) {
	parts := strings.SplitN(payload, payloadSep, 2)
	if len(parts) != 2 || parts[1] == "" {
		return "", "", fmt.Errorf("malformed decision payload %q", payload)
	}
	decision, ok := booking.ParseDecision(parts[0])
	if !ok {
		return "", "", fmt.Errorf("unknown decision %q", parts[0])
	}
	return decision, parts[1], nil
}

// callbackPayload returns the payload portion of the pressed button.
// cb.Data already carries only the payload when dispatch went through
// a Btn endpoint; the \f<unique>| prefix is stripped otherwise.
func callbackPayload(c tele.Context) string {
	cb := c.Callback()
	if cb == nil {
		return ""
	}
	raw := strings.TrimPrefix(cb.Data, "\\f")
	if cb.Unique == "" {
		if parts := strings.SplitN(raw, payloadSep, 2); len(parts) == 2 {
			return parts[1]
		}
	}
	return raw
}
