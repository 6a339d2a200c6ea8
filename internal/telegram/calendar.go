package telegram

import (
	"strconv"
	"time"

	tele "gopkg.in/telebot.v4"

	"esimbot/internal/booking"
)

// The inline month calendar. It is the bot's date-picker collaborator:
// navigation is handled entirely inside the adapter and only a final
// day press reaches the booking flow as a resolved date.

var weekdayHeader = []string{"Mo", "Tu", "We", "Th", "Fr", "Sa", "Su"}

// monthKey formats the payload used by navigation buttons.
func monthKey(year int, month time.Month) string {
	return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Format("2006-01")
}

// parseMonthKey reads a navigation payload back into a month.
func parseMonthKey(payload string) (int, time.Month, error) {
	t, err := time.Parse("2006-01", payload)
	if err != nil {
		return 0, 0, err
	}
	return t.Year(), t.Month(), nil
}

// Calendar renders the month grid with prev/next navigation. Day
// buttons carry the ISO date; filler cells carry an inert unique.
func Calendar(year int, month time.Month) *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	prev := first.AddDate(0, -1, 0)
	next := first.AddDate(0, 1, 0)

	rows := []tele.Row{
		markup.Row(
			markup.Data("<", uniqueCalendarNav, monthKey(prev.Year(), prev.Month())),
			markup.Data(first.Format("January 2006"), uniqueCalendarNil),
			markup.Data(">", uniqueCalendarNav, monthKey(next.Year(), next.Month())),
		),
	}

	header := make([]tele.Btn, len(weekdayHeader))
	for i, wd := range weekdayHeader {
		header[i] = markup.Data(wd, uniqueCalendarNil)
	}
	rows = append(rows, markup.Row(header...))

	blank := markup.Data(" ", uniqueCalendarNil)
	daysInMonth := next.AddDate(0, 0, -1).Day()

	// Monday-first offset of the 1st.
	offset := (int(first.Weekday()) + 6) % 7

	week := make([]tele.Btn, 0, 7)
	for i := 0; i < offset; i++ {
		week = append(week, blank)
	}
	for day := 1; day <= daysInMonth; day++ {
		date := booking.Date{Year: year, Month: month, Day: day}
		week = append(week, markup.Data(strconv.Itoa(day), uniqueCalendarDay, date.String()))
		if len(week) == 7 {
			rows = append(rows, markup.Row(week...))
			week = make([]tele.Btn, 0, 7)
		}
	}
	if len(week) > 0 {
		for len(week) < 7 {
			week = append(week, blank)
		}
		rows = append(rows, markup.Row(week...))
	}

	markup.Inline(rows...)
	return markup
}
