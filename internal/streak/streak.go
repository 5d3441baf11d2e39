// Package streak holds the consecutive-day streak rules. The stored
// streak_count on the user row is a cache; these functions decide how it
// moves when activity is logged and what value a read should display.
package streak

import "github.com/studyvault/backend/internal/models"

// Advance returns the streak count after logging activity on today.
// First activity ever starts at 1, activity the day after the last one
// extends the streak, and any other gap resets it to 1. Callers must have
// already ruled out a second activity on the same day.
func Advance(current int, lastActive *models.Date, today models.Date) int {
	if lastActive == nil {
		return 1
	}
	if lastActive.DaysUntil(today) == 1 {
		return current + 1
	}
	return 1
}

// Display derives the streak to report on a read without touching stored
// state: 0 when there is no activity on record or the last activity is more
// than one day in the past, otherwise the cached count.
func Display(cached int, lastActive *models.Date, today models.Date) int {
	if lastActive == nil {
		return 0
	}
	if lastActive.DaysUntil(today) > 1 {
		return 0
	}
	return cached
}
