package telegram

import (
	"log/slog"

	tele "gopkg.in/telebot.v4"

	"esimbot/internal/booking"
)

const faqText = "eSIM support bookings run between 8:00 AM and 6:00 PM Eastern. " +
	"Slots last 30-60 minutes and are reserved for one client at a time. " +
	"By booking, you agree to our disclaimer and Terms of Service."

func (b *Bot) register() {
	b.tb.Handle("/start", b.onStart)
	b.tb.Handle(tele.OnText, b.onText)

	b.tb.Handle(&tele.Btn{Unique: uniqueCalendarDay}, b.onCalendarDay)
	b.tb.Handle(&tele.Btn{Unique: uniqueCalendarNav}, b.onCalendarNav)
	b.tb.Handle(&tele.Btn{Unique: uniqueCalendarNil}, b.onInert)
	b.tb.Handle(&tele.Btn{Unique: uniqueSlot}, b.onSlot)
	b.tb.Handle(&tele.Btn{Unique: uniqueSlotNone}, b.onSlotNone)
	b.tb.Handle(&tele.Btn{Unique: uniqueConfirm}, b.onConfirm)
	b.tb.Handle(&tele.Btn{Unique: uniqueCancel}, b.onCancel)
	b.tb.Handle(&tele.Btn{Unique: uniqueDecision}, b.onDecision)
}

func (b *Bot) onStart(c tele.Context) error {
	return b.perform(c, b.flow.Reset(c.Sender().ID))
}

// onText routes menu presses and hands everything else to the flow.
func (b *Bot) onText(c tele.Context) error {
	userID := c.Sender().ID
	switch c.Text() {
	case booking.MenuCreateBooking:
		return b.perform(c, b.flow.StartBooking(userID))
	case booking.MenuMyBookings:
		return b.perform(c, b.flow.ListBookings(userID))
	case booking.MenuFAQ:
		return c.Send(faqText)
	}
	return b.perform(c, b.flow.HandleText(userID, c.Text()))
}

// onCalendarDay resolves a day press into a date for the flow.
func (b *Bot) onCalendarDay(c tele.Context) error {
	date, err := booking.ParseDate(callbackPayload(c))
	if err != nil {
		b.log.Warn("bad calendar payload",
			slog.String("event", "tg.bad_payload"),
			slog.String("err", err.Error()),
		)
		return c.Respond(&tele.CallbackResponse{})
	}
	return b.perform(c, b.flow.HandleDate(c.Sender().ID, date))
}

// onCalendarNav re-renders the widget for the requested month without
// involving the flow.
func (b *Bot) onCalendarNav(c tele.Context) error {
	year, month, err := parseMonthKey(callbackPayload(c))
	if err != nil {
		return c.Respond(&tele.CallbackResponse{})
	}
	if err := c.Respond(&tele.CallbackResponse{}); err != nil {
		return err
	}
	return c.Edit("Select a date:", Calendar(year, month))
}

func (b *Bot) onInert(c tele.Context) error {
	return c.Respond(&tele.CallbackResponse{})
}

func (b *Bot) onSlot(c tele.Context) error {
	date, slot, err := ParseSlot(callbackPayload(c))
	if err != nil {
		b.log.Warn("bad slot payload",
			slog.String("event", "tg.bad_payload"),
			slog.String("err", err.Error()),
		)
		return c.Respond(&tele.CallbackResponse{})
	}
	return b.perform(c, b.flow.HandleSlot(c.Sender().ID, date, slot))
}

func (b *Bot) onSlotNone(c tele.Context) error {
	return c.Respond(&tele.CallbackResponse{Text: "No slots for that date. Choose another."})
}

func (b *Bot) onConfirm(c tele.Context) error {
	return b.perform(c, b.flow.HandleConfirm(c.Sender().ID, callbackPayload(c)))
}

func (b *Bot) onCancel(c tele.Context) error {
	return b.perform(c, b.flow.HandleCancel(c.Sender().ID, callbackPayload(c)))
}

func (b *Bot) onDecision(c tele.Context) error {
	decision, bookingID, err := ParseDecisionPayload(callbackPayload(c))
	if err != nil {
		b.log.Warn("bad decision payload",
			slog.String("event", "tg.bad_payload"),
			slog.String("err", err.Error()),
		)
		return c.Respond(&tele.CallbackResponse{})
	}
	return b.perform(c, b.flow.HandleAdminDecision(decision, bookingID))
}
