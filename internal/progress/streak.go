package progress

import "time"

// calendarDaysBetween returns the number of whole calendar days from a to b,
// ignoring the time of day. Same day is 0, yesterday-to-today is 1.
// The dates are re-anchored in UTC so the count is exact across DST
// transitions, where a local day is 23 or 25 hours long.
func calendarDaysBetween(a, b time.Time) int {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	ua := time.Date(ay, am, ad, 0, 0, 0, 0, time.UTC)
	ub := time.Date(by, bm, bd, 0, 0, 0, 0, time.UTC)
	return int(ub.Sub(ua).Hours() / 24)
}

// nextStreak computes the streak value after activity at now, given the
// previously stored activity date. Same-day activity holds the streak (but
// never below 1), the next calendar day extends it, and any gap resets it.
func nextStreak(current int, lastActivity *time.Time, now time.Time) int {
	if lastActivity == nil {
		return 1
	}
	switch days := calendarDaysBetween(*lastActivity, now); {
	case days == 0:
		if current < 1 {
			return 1
		}
		return current
	case days == 1:
		return current + 1
	default:
		return 1
	}
}
