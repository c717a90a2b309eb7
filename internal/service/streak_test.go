// internal/service/streak_test.go
package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNextStreak(t *testing.T) {
	now := time.Date(2025, 6, 15, 14, 30, 0, 0, time.UTC)
	yesterday := now.AddDate(0, 0, -1)
	threeDaysAgo := now.AddDate(0, 0, -3)
	todayEarly := time.Date(2025, 6, 15, 0, 0, 1, 0, time.UTC)

	testCases := []struct {
		name        string
		lastClaim   *time.Time
		current     int
		wantNext    int
		wantSameDay bool
	}{
		{
			name:        "first ever claim",
			lastClaim:   nil,
			current:     0,
			wantNext:    1,
			wantSameDay: false,
		},
		{
			name:        "repeat claim same UTC day",
			lastClaim:   &todayEarly,
			current:     4,
			wantNext:    4,
			wantSameDay: true,
		},
		{
			name:        "claim the day after extends streak",
			lastClaim:   &yesterday,
			current:     4,
			wantNext:    5,
			wantSameDay: false,
		},
		{
			name:        "gap resets streak",
			lastClaim:   &threeDaysAgo,
			current:     12,
			wantNext:    1,
			wantSameDay: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			next, sameDay := nextStreak(tc.lastClaim, tc.current, now)
			assert.Equal(t, tc.wantNext, next)
			assert.Equal(t, tc.wantSameDay, sameDay)
		})
	}
}

func TestNextStreakUTCBoundary(t *testing.T) {
	// 23:50 local at UTC+2 is already the next day in local time, but the
	// claim still lands on the same UTC date as one made two hours earlier.
	nairobi := time.FixedZone("UTC+2", 2*60*60)
	last := time.Date(2025, 6, 15, 21, 0, 0, 0, time.UTC)
	now := time.Date(2025, 6, 16, 1, 50, 0, 0, nairobi) // 23:50 UTC on the 15th

	next, sameDay := nextStreak(&last, 3, now)
	assert.Equal(t, 3, next)
	assert.True(t, sameDay)

	// One minute past UTC midnight it becomes a consecutive-day claim.
	afterMidnight := time.Date(2025, 6, 16, 0, 1, 0, 0, time.UTC)
	next, sameDay = nextStreak(&last, 3, afterMidnight)
	assert.Equal(t, 4, next)
	assert.False(t, sameDay)
}

func TestUTCDate(t *testing.T) {
	in := time.Date(2025, 6, 15, 23, 59, 59, 999, time.FixedZone("UTC-5", -5*60*60))
	got := utcDate(in)
	assert.Equal(t, time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC), got)
}
