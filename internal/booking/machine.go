package booking

import (
	"log/slog"
)

// Menu button labels shown by the main reply keyboard.
const (
	MenuCreateBooking = "Create a booking"
	MenuMyBookings    = "My bookings"
	MenuFAQ           = "FAQ / TOS"
)

const (
	msgMainMenu       = "Welcome to eSIM support. Choose an option below."
	msgGuidance       = "Use the menu to begin a booking or view FAQs."
	msgFollowPrompts  = "Please follow the prompts in order."
	msgPickCategory   = "Select the type of appointment:"
	msgBadCategory    = "Please select one of the listed categories."
	msgPickDate       = "Select a date:"
	msgSlotTaken      = "Slot already booked. Please choose another."
	msgSlotSelected   = "Time slot selected."
	msgSlotRace       = "Slot already taken. Choose another time."
	msgPickNewTime    = "Select a new time:"
	msgPreviewMissing = "Booking preview not found."
	msgSubmitted      = "Booking submitted. The administrator will confirm your request."
	msgCanceled       = "Booking canceled."
	msgNothingCancel  = "Nothing to cancel."
	msgNoBookings     = "No bookings yet. Tap 'Create a booking' to start."
	msgNotFound       = "Booking not found."
)

// Flow is the conversation state machine. It consumes typed events
// already parsed at the transport boundary and emits transport-neutral
// actions; it owns no transport state of its own.
type Flow struct {
	sessions *Sessions
	slots    *SlotRegistry
	store    *Store
	adminID  int64
	log      *slog.Logger
}

// NewFlow wires the state machine to its collaborators. adminID may be
// zero, in which case admin notifications are skipped.
func NewFlow(sessions *Sessions, slots *SlotRegistry, store *Store, adminID int64, log *slog.Logger) *Flow {
	if log == nil {
		log = slog.Default()
	}
	return &Flow{sessions: sessions, slots: slots, store: store, adminID: adminID, log: log}
}

// Reset drops any in-progress session and shows the main menu.
func (f *Flow) Reset(userID int64) []Action {
	f.sessions.Clear(userID)
	return []Action{SendMessage{
		UserID: userID,
		Text:   msgMainMenu,
		Keyboard: ReplyKeyboard{Rows: [][]string{
			{MenuCreateBooking},
			{MenuMyBookings},
			{MenuFAQ},
		}},
	}}
}

// StartBooking opens a fresh session at the category stage.
func (f *Flow) StartBooking(userID int64) []Action {
	f.sessions.Set(userID, CategoryStage{})
	f.log.Debug("booking started",
		slog.String("event", "flow.start"),
		slog.Int64("user_id", userID),
	)

	rows := make([][]string, 0, len(Categories))
	for _, cat := range Categories {
		rows = append(rows, []string{string(cat)})
	}
	return []Action{SendMessage{
		UserID:   userID,
		Text:     msgPickCategory,
		Keyboard: ReplyKeyboard{Rows: rows},
	}}
}

// HandleText routes free-text input by the current stage. Input outside
// an expecting stage is answered with a re-orientation message.
func (f *Flow) HandleText(userID int64, text string) []Action {
	stage, ok := f.sessions.Get(userID)
	if !ok {
		return []Action{SendMessage{UserID: userID, Text: msgGuidance}}
	}

	switch st := stage.(type) {
	case CategoryStage:
		return f.handleCategory(userID, text)
	case FieldsStage:
		return f.handleField(userID, st, text)
	default:
		return []Action{SendMessage{UserID: userID, Text: msgFollowPrompts}}
	}
}

func (f *Flow) handleCategory(userID int64, text string) []Action {
	category, ok := ParseCategory(text)
	if !ok {
		return []Action{SendMessage{UserID: userID, Text: msgBadCategory}}
	}
	f.sessions.Set(userID, CalendarStage{Category: category})
	return []Action{SendMessage{
		UserID:   userID,
		Text:     msgPickDate,
		Keyboard: CalendarKeyboard{},
	}}
}

// HandleDate consumes a date resolved by the calendar collaborator and
// moves the session to slot selection.
func (f *Flow) HandleDate(userID int64, date Date) []Action {
	stage, ok := f.sessions.Get(userID)
	if !ok {
		return []Action{AnswerCallback{Text: msgGuidance}}
	}
	cal, ok := stage.(CalendarStage)
	if !ok {
		return []Action{AnswerCallback{Text: msgFollowPrompts}}
	}

	f.sessions.Set(userID, TimeStage{Category: cal.Category, Date: date})
	return []Action{EditMessage{
		Text:     "Chosen date: " + date.Display() + "\nSelect a time slot:",
		Keyboard: SlotKeyboard{Date: date, Slots: f.slots.Available(date)},
	}}
}

// HandleSlot consumes a slot choice. A slot that disappeared since the
// list was offered re-offers the refreshed list without advancing.
func (f *Flow) HandleSlot(userID int64, date Date, slot Slot) []Action {
	stage, ok := f.sessions.Get(userID)
	if !ok {
		return []Action{AnswerCallback{Text: msgGuidance}}
	}
	ts, ok := stage.(TimeStage)
	if !ok {
		return []Action{AnswerCallback{Text: msgFollowPrompts}}
	}

	if !f.slots.IsAvailable(date, slot) {
		return []Action{
			AnswerCallback{Text: msgSlotTaken},
			EditMessage{
				Text:     "Chosen date: " + date.Display() + "\nSelect a time slot:",
				Keyboard: SlotKeyboard{Date: date, Slots: f.slots.Available(date)},
			},
		}
	}

	f.sessions.Set(userID, FieldsStage{
		Category: ts.Category,
		Date:     date,
		Slot:     slot,
		Index:    0,
		Values:   make(map[FieldKey]FieldValue, len(FormFields)),
	})
	return []Action{
		AnswerCallback{Text: msgSlotSelected},
		SendMessage{UserID: userID, Text: FormFields[0].Prompt},
	}
}

func (f *Flow) handleField(userID int64, st FieldsStage, text string) []Action {
	spec := FormFields[st.Index]
	value, err := spec.Validate(text)
	if err != nil {
		return []Action{SendMessage{UserID: userID, Text: err.Error()}}
	}

	st.Values[spec.Key] = value
	st.Index++
	if st.Index < len(FormFields) {
		f.sessions.Set(userID, st)
		return []Action{SendMessage{UserID: userID, Text: FormFields[st.Index].Prompt}}
	}

	draft := NewRequest(userID, st.Category, st.Date, st.Slot,
		buildIdentity(st.Values), buildAddress(st.Values))
	f.sessions.Set(userID, ConfirmStage{Draft: draft})
	f.log.Debug("draft assembled",
		slog.String("event", "flow.draft"),
		slog.Int64("user_id", userID),
		slog.String("booking_id", draft.ID),
	)
	return []Action{SendMessage{
		UserID:   userID,
		Text:     draft.Summary() + "\n\nConfirm or cancel?",
		Keyboard: ConfirmKeyboard{BookingID: draft.ID},
	}}
}

// HandleConfirm re-checks slot availability and, if the slot still
// holds, submits the draft and engages the approval workflow. A slot
// lost in the meantime routes the user back to time selection.
func (f *Flow) HandleConfirm(userID int64, bookingID string) []Action {
	stage, _ := f.sessions.Get(userID)
	confirm, ok := stage.(ConfirmStage)
	if !ok || confirm.Draft.ID != bookingID {
		return []Action{AnswerCallback{Text: msgPreviewMissing}}
	}
	draft := confirm.Draft

	if err := f.store.Submit(draft); err != nil {
		// Reservation raced with another booking; offer fresh slots.
		f.sessions.Set(userID, TimeStage{Category: draft.Category, Date: draft.Date})
		return []Action{
			AnswerCallback{Text: msgSlotRace},
			SendMessage{
				UserID:   userID,
				Text:     msgPickNewTime,
				Keyboard: SlotKeyboard{Date: draft.Date, Slots: f.slots.Available(draft.Date)},
			},
		}
	}

	f.sessions.Clear(userID)
	f.log.Info("booking submitted",
		slog.String("event", "flow.submit"),
		slog.String("status", "ok"),
		slog.Int64("user_id", userID),
		slog.String("booking_id", draft.ID),
		slog.String("date", draft.Date.String()),
		slog.String("slot", string(draft.Slot)),
	)

	actions := []Action{EditMessage{Text: msgSubmitted}}
	if f.adminID != 0 {
		actions = append(actions, SendMessage{
			UserID:   f.adminID,
			Text:     "New booking request:\n" + draft.Summary(),
			Keyboard: DecisionKeyboard{BookingID: draft.ID},
		})
	}
	return actions
}

// HandleCancel discards a confirmation draft, or cancels a stored
// booking and releases its slot. Unknown ids report "nothing to
// cancel" and change no state.
func (f *Flow) HandleCancel(userID int64, bookingID string) []Action {
	if stage, ok := f.sessions.Get(userID); ok {
		if confirm, ok := stage.(ConfirmStage); ok && confirm.Draft.ID == bookingID {
			f.sessions.Clear(userID)
			return []Action{EditMessage{Text: msgCanceled}}
		}
	}

	if _, err := f.store.Cancel(bookingID); err != nil {
		return []Action{EditMessage{Text: msgNothingCancel}}
	}
	f.log.Info("booking canceled",
		slog.String("event", "flow.cancel"),
		slog.String("status", "ok"),
		slog.String("booking_id", bookingID),
	)
	return []Action{EditMessage{Text: msgCanceled}}
}

// HandleAdminDecision applies accept/deny, rewrites the admin message
// and notifies the requester with the decision and the full summary.
func (f *Flow) HandleAdminDecision(decision Decision, bookingID string) []Action {
	req, err := f.store.Decide(bookingID, decision)
	if err != nil {
		return []Action{AnswerCallback{Text: msgNotFound}}
	}
	f.log.Info("booking decided",
		slog.String("event", "flow.decide"),
		slog.String("status", "ok"),
		slog.String("booking_id", bookingID),
		slog.String("decision", string(decision)),
	)
	return []Action{
		EditMessage{Text: "Booking " + decision.Past() + ":\n" + req.Summary()},
		SendMessage{
			UserID: req.UserID,
			Text:   "Your booking has been " + decision.Past() + ".\n" + req.Summary(),
		},
	}
}

// ListBookings renders the user's bookings with a cancel button each.
func (f *Flow) ListBookings(userID int64) []Action {
	requests := f.store.ByUser(userID)
	if len(requests) == 0 {
		return []Action{SendMessage{UserID: userID, Text: msgNoBookings}}
	}

	lines := make([]string, 0, len(requests))
	items := make([]CancelItem, 0, len(requests))
	for _, req := range requests {
		lines = append(lines, req.ListLine())
		items = append(items, CancelItem{
			BookingID: req.ID,
			Label:     "Cancel " + req.Date.Display() + " " + req.Slot.Label(),
		})
	}
	text := lines[0]
	for _, line := range lines[1:] {
		text += "\n" + line
	}
	return []Action{SendMessage{
		UserID:   userID,
		Text:     text,
		Keyboard: CancelKeyboard{Items: items},
	}}
}
