package booking

// Action is one outbound instruction for the delivery adapter. The
// core never talks to the transport directly; it emits actions and the
// adapter renders them.
type Action interface {
	action()
}

// SendMessage delivers text (and an optional keyboard) to a user.
type SendMessage struct {
	UserID   int64
	Text     string
	Keyboard Keyboard
}

// EditMessage rewrites the message that triggered the current event.
type EditMessage struct {
	Text     string
	Keyboard Keyboard
}

// AnswerCallback shows a short notice for the pressed button.
type AnswerCallback struct {
	Text string
}

func (SendMessage) action()    {}
func (EditMessage) action()    {}
func (AnswerCallback) action() {}

// Keyboard is a transport-neutral description of selectable choices.
// Each variant is rendered by the adapter with its own payload codec,
// so callback payloads are encoded and parsed in exactly one place.
type Keyboard interface {
	keyboard()
}

// ReplyKeyboard shows persistent menu buttons that send their label.
type ReplyKeyboard struct {
	Rows [][]string
}

// CalendarKeyboard asks the adapter to render its date picker widget.
type CalendarKeyboard struct{}

// SlotKeyboard offers one button per free slot for a date.
type SlotKeyboard struct {
	Date  Date
	Slots []Slot
}

// ConfirmKeyboard offers Confirm / Cancel for an assembled draft.
type ConfirmKeyboard struct {
	BookingID string
}

// CancelKeyboard offers a cancel button per listed booking.
type CancelKeyboard struct {
	Items []CancelItem
}

// CancelItem labels one cancel button in a booking listing.
type CancelItem struct {
	BookingID string
	Label     string
}

// DecisionKeyboard offers Accept / Deny to the administrator.
type DecisionKeyboard struct {
	BookingID string
}

func (ReplyKeyboard) keyboard()    {}
func (CalendarKeyboard) keyboard() {}
func (SlotKeyboard) keyboard()     {}
func (ConfirmKeyboard) keyboard()  {}
func (CancelKeyboard) keyboard()   {}
func (DecisionKeyboard) keyboard() {}
