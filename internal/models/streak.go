package models

import "time"

// Streak activity kinds.
const (
	ActivityRedo     = "redo"
	ActivityRevision = "revision"
	ActivityShuffle  = "shuffle"
)

// ValidActivityType reports whether t is a known activity kind.
func ValidActivityType(t string) bool {
	switch t {
	case ActivityRedo, ActivityRevision, ActivityShuffle:
		return true
	}
	return false
}

// StreakLog is an append-only record of qualifying activity, unique per
// (user, date).
type StreakLog struct {
	ID           string    `json:"id"`
	UserID       string    `json:"-"`
	ActivityType string    `json:"activity_type"`
	ActivityDate Date      `json:"activity_date"`
	CreatedAt    time.Time `json:"created_at"`
}

// StreakStats summarizes a user's activity history.
type StreakStats struct {
	CurrentStreak     int            `json:"current_streak"`
	LastActiveDate    *Date          `json:"last_active_date"`
	TotalActivities   int            `json:"total_activities"`
	ActivityBreakdown map[string]int `json:"activity_breakdown"`
}
