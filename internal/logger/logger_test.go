package logger

import (
	"log/slog"
	"testing"
	"time"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"":        slog.LevelInfo,
		"info":    slog.LevelInfo,
		"DEBUG":   slog.LevelDebug,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
	}
	for raw, want := range cases {
		got, err := parseLevel(raw)
		if err != nil {
			t.Fatalf("%q: %v", raw, err)
		}
		if got != want {
			t.Fatalf("%q: got %v, want %v", raw, got, want)
		}
	}

	if _, err := parseLevel("loud"); err == nil {
		t.Fatal("expected error for unknown level")
	}
}

func TestStatus(t *testing.T) {
	if Status(nil) != "ok" {
		t.Fatal("nil error should be ok")
	}
	if Status(errFake) != "fail" {
		t.Fatal("error should be fail")
	}
}

var errFake = &fakeErr{}

type fakeErr struct{}

func (*fakeErr) Error() string { return "fake" }

func TestRoundMS(t *testing.T) {
	if got := RoundMS(1499 * time.Microsecond); got != 1*time.Millisecond {
		t.Fatalf("got %v", got)
	}
	if got := RoundMS(-5 * time.Millisecond); got != 0 {
		t.Fatalf("negative duration: got %v", got)
	}
}
