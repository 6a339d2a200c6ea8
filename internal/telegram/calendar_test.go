package telegram

import (
	"strings"
	"testing"
	"time"
)

func TestCalendarGrid(t *testing.T) {
	markup := Calendar(2024, time.June)
	rows := markup.InlineKeyboard
	if len(rows) < 3 {
		t.Fatalf("calendar has %d rows", len(rows))
	}

	// Header: prev, month label, next.
	header := rows[0]
	if len(header) != 3 {
		t.Fatalf("header has %d buttons", len(header))
	}
	if header[1].Text != "June 2024" {
		t.Fatalf("month label = %q", header[1].Text)
	}
	if !strings.Contains(header[0].Data, "2024-05") || !strings.Contains(header[2].Data, "2024-07") {
		t.Fatalf("nav payloads = %q / %q", header[0].Data, header[2].Data)
	}

	// Weekday row is Monday-first.
	if rows[1][0].Text != "Mo" || rows[1][6].Text != "Su" {
		t.Fatalf("weekday row = %+v", rows[1])
	}

	// Every day of June appears exactly once with its ISO payload.
	seen := map[string]int{}
	for _, row := range rows[2:] {
		if len(row) != 7 {
			t.Fatalf("day row has %d cells", len(row))
		}
		for _, btn := range row {
			if strings.Contains(btn.Data, "2024-06-") {
				seen[btn.Data]++
			}
		}
	}
	if len(seen) != 30 {
		t.Fatalf("saw %d distinct days, want 30", len(seen))
	}
	for payload, n := range seen {
		if n != 1 {
			t.Fatalf("day %q appears %d times", payload, n)
		}
	}

	// 1 June 2024 is a Saturday; Monday-first offset leaves five blanks.
	if !strings.Contains(rows[2][5].Data, "2024-06-01") {
		t.Fatalf("first day misplaced: %+v", rows[2])
	}
}

func TestMonthKeyRoundTrip(t *testing.T) {
	key := monthKey(2024, time.December)
	year, month, err := parseMonthKey(key)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if year != 2024 || month != time.December {
		t.Fatalf("got %d-%s", year, month)
	}

	if _, _, err := parseMonthKey("not-a-month"); err == nil {
		t.Fatal("expected error")
	}
}

func TestYearBoundaryNavigation(t *testing.T) {
	markup := Calendar(2024, time.January)
	header := markup.InlineKeyboard[0]
	if !strings.Contains(header[0].Data, "2023-12") {
		t.Fatalf("prev from January = %q", header[0].Data)
	}
	if !strings.Contains(header[2].Data, "2024-02") {
		t.Fatalf("next from January = %q", header[2].Data)
	}
}
