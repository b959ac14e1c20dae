package progress

import (
	"testing"
	"time"
)

func TestNextStreak(t *testing.T) {
	at := func(y int, m time.Month, d, h int) time.Time {
		return time.Date(y, m, d, h, 0, 0, 0, time.Local)
	}
	prior := at(2026, 3, 10, 22)

	tests := []struct {
		name    string
		current int
		last    *time.Time
		now     time.Time
		want    int
	}{
		{"first ever activity", 0, nil, at(2026, 3, 10, 9), 1},
		{"same day keeps streak", 3, &prior, at(2026, 3, 10, 23), 3},
		{"same day floors at one", 0, &prior, at(2026, 3, 10, 23), 1},
		{"next day increments", 3, &prior, at(2026, 3, 11, 6), 4},
		{"next day across under 24h", 1, &prior, at(2026, 3, 11, 1), 2},
		{"two day gap resets", 7, &prior, at(2026, 3, 12, 9), 1},
		{"long gap resets", 30, &prior, at(2026, 4, 2, 9), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := nextStreak(tt.current, tt.last, tt.now); got != tt.want {
				t.Errorf("nextStreak(%d, %v, %v) = %d, want %d", tt.current, tt.last, tt.now, got, tt.want)
			}
		})
	}
}

func TestCalendarDaysBetween(t *testing.T) {
	a := time.Date(2026, 3, 10, 23, 59, 0, 0, time.Local)
	b := time.Date(2026, 3, 11, 0, 1, 0, 0, time.Local)
	if got := calendarDaysBetween(a, b); got != 1 {
		t.Errorf("two minutes across midnight = %d days, want 1", got)
	}

	mid := time.Date(2026, 3, 10, 10, 0, 0, 0, time.Local)
	if got := calendarDaysBetween(mid, mid.Add(time.Minute)); got != 0 {
		t.Errorf("same day = %d days, want 0", got)
	}
}

func TestCalendarDaysBetweenAcrossDST(t *testing.T) {
	// US clocks spring forward on 2026-03-08, making that local day 23
	// hours long. Day counting must follow the calendar, not elapsed time.
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}

	sat := time.Date(2026, 3, 7, 22, 0, 0, 0, loc)
	mon := time.Date(2026, 3, 9, 9, 0, 0, 0, loc)
	if got := calendarDaysBetween(sat, mon); got != 2 {
		t.Errorf("two calendar days across spring-forward = %d, want 2", got)
	}
	sun := time.Date(2026, 3, 8, 12, 0, 0, 0, loc)
	if got := calendarDaysBetween(sat, sun); got != 1 {
		t.Errorf("one calendar day across spring-forward = %d, want 1", got)
	}

	// A skipped day resets the streak even when it spans only 47 hours.
	if got := nextStreak(5, &sat, mon); got != 1 {
		t.Errorf("nextStreak across a skipped DST day = %d, want reset to 1", got)
	}
}
