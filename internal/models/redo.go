package models

import "time"

type RedoSchedule struct {
	ID           string `json:"redo_id"`
	MistakeID    string `json:"mistake_id"`
	ScheduleType string `json:"schedule_type"`
	DueDate      Date   `json:"due_date"`
	Performed    bool   `json:"performed"`
}

// RedoScheduleItem is a schedule joined with its question text for listings.
type RedoScheduleItem struct {
	RedoSchedule
	QuestionText string `json:"question_text"`
}

type RedoAttempt struct {
	ID          string    `json:"attempt_id"`
	RedoID      string    `json:"redo_id"`
	IsCorrect   bool      `json:"is_correct"`
	AttemptedAt time.Time `json:"attempted_at"`
}

// RedoAttemptItem is an attempt joined with its question text for listings.
type RedoAttemptItem struct {
	RedoAttempt
	QuestionText string `json:"question_text"`
}
