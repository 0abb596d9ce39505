package simtime

import (
	"testing"
	"time"
)

func TestHourOf(t *testing.T) {
	at := time.Date(2026, 3, 10, 7, 30, 0, 0, time.UTC)
	if got := HourOf(at); got != 7.5 {
		t.Fatalf("expected 7.5, got %v", got)
	}
}

func TestFutureHourSameDay(t *testing.T) {
	now := time.Date(2026, 3, 10, 6, 0, 0, 0, time.UTC)
	got := FutureHour(now, 9)
	want := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestFutureHourRollsToNextDay(t *testing.T) {
	now := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)
	got := FutureHour(now, 9)
	want := time.Date(2026, 3, 11, 9, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestFutureHourExactNowStays(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	got := FutureHour(now, 9)
	if !got.Equal(now) {
		t.Fatalf("expected %v, got %v", now, got)
	}
}

func TestNormalizeHour(t *testing.T) {
	cases := []struct{ in, want float64 }{
		{25.5, 1.5},
		{-1, 23},
		{0, 0},
		{24, 0},
		{48.25, 0.25},
	}
	for _, c := range cases {
		if got := NormalizeHour(c.in); got != c.want {
			t.Fatalf("NormalizeHour(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestHourInWindow(t *testing.T) {
	cases := []struct {
		h, start, end float64
		want          bool
	}{
		{10, 9, 18, true},
		{9, 9, 18, true},
		{18, 9, 18, false},
		{8.99, 9, 18, false},
		{3, 12, 12, true}, // start==end covers the whole day
		{23, 22, 6, true}, // wrap
		{2, 22, 6, true},
		{6, 22, 6, false},
		{21.99, 22, 6, false},
		{22, 22, 6, true},
	}
	for _, c := range cases {
		if got := HourInWindow(c.h, c.start, c.end); got != c.want {
			t.Fatalf("HourInWindow(%v, %v, %v) = %v, want %v", c.h, c.start, c.end, got, c.want)
		}
	}
}

func TestHourInWindowMatchesContract(t *testing.T) {
	// Exhaustive sweep at quarter-hour resolution over all three window shapes.
	for s := 0.0; s < 24; s += 1.5 {
		for e := 0.0; e < 24; e += 1.5 {
			for h := 0.0; h < 24; h += 0.25 {
				var want bool
				switch {
				case s == e:
					want = true
				case s < e:
					want = s <= h && h < e
				default:
					want = h >= s || h < e
				}
				if got := HourInWindow(h, s, e); got != want {
					t.Fatalf("HourInWindow(%v, %v, %v) = %v, want %v", h, s, e, got, want)
				}
			}
		}
	}
}

func TestIsWeekend(t *testing.T) {
	sat := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	sun := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	mon := time.Date(2026, 3, 16, 12, 0, 0, 0, time.UTC)
	if !IsWeekend(sat) || !IsWeekend(sun) {
		t.Fatalf("expected Saturday and Sunday to be weekend")
	}
	if IsWeekend(mon) {
		t.Fatalf("Monday must not be weekend")
	}
}

func TestIsNightHour(t *testing.T) {
	if !IsNightHour(23, 22, 6) {
		t.Fatalf("23:00 should be night for a 22-6 window")
	}
	if !IsNightHour(3, 22, 6) {
		t.Fatalf("03:00 should be night for a 22-6 window")
	}
	if IsNightHour(12, 22, 6) {
		t.Fatalf("noon should not be night")
	}
}
