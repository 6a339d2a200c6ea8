package booking

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Category is one of the fixed appointment categories offered in the menu.
type Category string

const (
	CategoryNewRegistration Category = "New registration"
	CategorySIMActivation   Category = "Mobile SIM activation"
	CategorySupport         Category = "Technical support"
)

// Categories lists every valid category in menu order.
var Categories = []Category{
	CategoryNewRegistration,
	CategorySIMActivation,
	CategorySupport,
}

// ParseCategory matches raw text against the fixed category list.
func ParseCategory(text string) (Category, bool) {
	for _, cat := range Categories {
		if string(cat) == text {
			return cat, true
		}
	}
	return "", false
}

// Slot is a fixed time of day, stored in 24h "15:04" form.
type Slot string

// TimeSlots is the fixed daily slot enumeration, in offer order.
var TimeSlots = []Slot{"08:00", "10:00", "12:00", "14:00", "16:00"}

// ValidSlot reports whether s belongs to the fixed enumeration.
func ValidSlot(s Slot) bool {
	for _, slot := range TimeSlots {
		if slot == s {
			return true
		}
	}
	return false
}

// Label renders a slot the way it is shown on buttons and summaries, e.g. "08:00 AM".
func (s Slot) Label() string {
	t, err := time.Parse("15:04", string(s))
	if err != nil {
		return string(s)
	}
	return t.Format("03:04 PM")
}

// Date is a calendar day in the bot's single operating timezone.
// It is comparable and safe to use as a map key.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// DateOf truncates a time to its calendar day.
func DateOf(t time.Time) Date {
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

// ParseDate reads a date in ISO "2006-01-02" form.
func ParseDate(raw string) (Date, error) {
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return Date{}, err
	}
	return DateOf(t), nil
}

// ParseDateDMY reads user-entered "DD/MM/YYYY" input.
func ParseDateDMY(raw string) (Date, error) {
	t, err := time.Parse("02/01/2006", raw)
	if err != nil {
		return Date{}, err
	}
	return DateOf(t), nil
}

func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// String renders ISO form used in callback payloads and logs.
func (d Date) String() string { return d.Time().Format("2006-01-02") }

// Display renders the long form shown to users, e.g. "10 June 2024".
func (d Date) Display() string { return d.Time().Format("02 January 2006") }

// DisplayDMY renders the form used for dates the user typed in.
func (d Date) DisplayDMY() string { return d.Time().Format("02/01/2006") }

// IsZero reports whether the date is unset.
func (d Date) IsZero() bool { return d == Date{} }

// Status tracks a booking request through the approval workflow.
type Status string

const (
	StatusPendingUser  Status = "pending_user"
	StatusPendingAdmin Status = "pending_admin"
	StatusAccepted     Status = "accepted"
	StatusDenied       Status = "denied"
	StatusCanceled     Status = "canceled"
)

// Identity holds the personal details collected by the form.
// Optional strings are empty when not provided; optional dates are nil.
type Identity struct {
	FirstName      string
	MiddleName     string
	LastName       string
	DateOfBirth    Date
	DriversLicense string
	LicenseIssue   *Date
	LicenseExpiry  *Date
}

// FullName joins the name parts, skipping an absent middle name.
func (i Identity) FullName() string {
	if i.MiddleName == "" {
		return i.FirstName + " " + i.LastName
	}
	return i.FirstName + " " + i.MiddleName + " " + i.LastName
}

// Address holds the street address collected by the form.
type Address struct {
	Suite        string
	StreetNumber string
	StreetName   string
	City         string
	Province     string
	PostalCode   string
}

// Request is a completed, submitted appointment request. It is owned by
// the Store once created and mutated only through workflow transitions.
type Request struct {
	ID       string
	UserID   int64
	Category Category
	Date     Date
	Slot     Slot
	Identity Identity
	Address  Address
	Status   Status
}

// NewRequest assembles a draft request in the pending_user status with a
// fresh collision-resistant id.
func NewRequest(userID int64, category Category, date Date, slot Slot, id Identity, addr Address) *Request {
	return &Request{
		ID:       strings.ReplaceAll(uuid.NewString(), "-", ""),
		UserID:   userID,
		Category: category,
		Date:     date,
		Slot:     slot,
		Identity: id,
		Address:  addr,
		Status:   StatusPendingUser,
	}
}

// Summary renders the full booking details shown on confirmation,
// in admin notifications and in decision messages.
func (r *Request) Summary() string {
	lines := []string{
		"Booking ID: " + r.ID,
		"Category: " + string(r.Category),
		"Date: " + r.Date.Display(),
		"Time: " + r.Slot.Label(),
		"Name: " + r.Identity.FullName(),
		"Date of Birth: " + r.Identity.DateOfBirth.DisplayDMY(),
	}
	if r.Identity.DriversLicense != "" {
		lines = append(lines, "Driver's License: "+r.Identity.DriversLicense)
	}
	if r.Identity.LicenseIssue != nil {
		lines = append(lines, "License Issue Date: "+r.Identity.LicenseIssue.DisplayDMY())
	}
	if r.Identity.LicenseExpiry != nil {
		lines = append(lines, "License Expiry Date: "+r.Identity.LicenseExpiry.DisplayDMY())
	}
	suite := r.Address.Suite
	if suite == "" {
		suite = "N/A"
	}
	lines = append(lines,
		"Suite/Unit: "+suite,
		fmt.Sprintf("Street: %s %s", r.Address.StreetNumber, r.Address.StreetName),
		"City: "+r.Address.City,
		"Province: "+r.Address.Province,
		"Postal Code: "+r.Address.PostalCode,
		"Status: "+string(r.Status),
	)
	return strings.Join(lines, "\n")
}

// ListLine renders the one-line form used by the "My bookings" listing.
func (r *Request) ListLine() string {
	return fmt.Sprintf("%s at %s - %s (%s)", r.Date.Display(), r.Slot.Label(), r.Category, r.Status)
}
