package models

import "time"

type User struct {
	ID             string    `json:"id"`
	Email          string    `json:"email"`
	PasswordHash   string    `json:"-"`
	StreakCount    int       `json:"streak_count"`
	LastActiveDate *Date     `json:"last_active_date"`
	CreatedAt      time.Time `json:"created_at"`
}
