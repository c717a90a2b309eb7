// internal/service/streak.go
package service

import "time"

// utcDate truncates t to a UTC calendar date. All streak arithmetic runs on
// these; the bot's local timezones never matter.
func utcDate(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// nextStreak computes the consecutive-day count a claim at `now` produces.
// A claim the day after the last one extends the streak; any gap resets it
// to 1. sameDay reports a repeat claim on the current date.
func nextStreak(lastClaim *time.Time, current int, now time.Time) (next int, sameDay bool) {
	today := utcDate(now)
	if lastClaim == nil {
		return 1, false
	}
	last := utcDate(*lastClaim)
	switch {
	case last.Equal(today):
		return current, true
	case last.Equal(today.AddDate(0, 0, -1)):
		return current + 1, false
	default:
		return 1, false
	}
}
