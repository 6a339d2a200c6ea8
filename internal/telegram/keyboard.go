package telegram

import (
	"time"

	tele "gopkg.in/telebot.v4"

	"esimbot/internal/booking"
)

// Slot labels carry the operating-timezone hint shown to users.
const slotLabelSuffix = " Eastern"

const noSlotsLabel = "No slots available. Pick another date."

// renderKeyboard turns a transport-neutral keyboard description into a
// telebot markup. now supplies the month opened by the calendar widget.
func renderKeyboard(kb booking.Keyboard, now time.Time) *tele.ReplyMarkup {
	switch k := kb.(type) {
	case booking.ReplyKeyboard:
		return replyButtons(k.Rows)
	case booking.CalendarKeyboard:
		return Calendar(now.Year(), now.Month())
	case booking.SlotKeyboard:
		return slotButtons(k)
	case booking.ConfirmKeyboard:
		markup := &tele.ReplyMarkup{}
		markup.Inline(
			markup.Row(markup.Data("Confirm", uniqueConfirm, k.BookingID)),
			markup.Row(markup.Data("Cancel", uniqueCancel, k.BookingID)),
		)
		return markup
	case booking.CancelKeyboard:
		markup := &tele.ReplyMarkup{}
		rows := make([]tele.Row, 0, len(k.Items))
		for _, item := range k.Items {
			rows = append(rows, markup.Row(markup.Data(item.Label, uniqueCancel, item.BookingID)))
		}
		markup.Inline(rows...)
		return markup
	case booking.DecisionKeyboard:
		markup := &tele.ReplyMarkup{}
		markup.Inline(markup.Row(
			markup.Data("Accept", uniqueDecision, EncodeDecision(booking.DecisionAccept, k.BookingID)),
			markup.Data("Deny", uniqueDecision, EncodeDecision(booking.DecisionDeny, k.BookingID)),
		))
		return markup
	}
	return nil
}

// replyButtons builds a one-time reply keyboard from rows of labels.
func replyButtons(rows [][]string) *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{ResizeKeyboard: true, OneTimeKeyboard: true}
	keyboard := make([]tele.Row, 0, len(rows))
	for _, row := range rows {
		buttons := make([]tele.Btn, 0, len(row))
		for _, label := range row {
			buttons = append(buttons, markup.Text(label))
		}
		keyboard = append(keyboard, markup.Row(buttons...))
	}
	markup.Reply(keyboard...)
	return markup
}

// slotButtons lists each free slot on its own row, or a single inert
// placeholder when the date is fully booked.
func slotButtons(k booking.SlotKeyboard) *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	if len(k.Slots) == 0 {
		markup.Inline(markup.Row(markup.Data(noSlotsLabel, uniqueSlotNone)))
		return markup
	}
	rows := make([]tele.Row, 0, len(k.Slots))
	for _, slot := range k.Slots {
		rows = append(rows, markup.Row(
			markup.Data(slot.Label()+slotLabelSuffix, uniqueSlot, EncodeSlot(k.Date, slot)),
		))
	}
	markup.Inline(rows...)
	return markup
}
