package models

import "time"

// Revision slot kinds, derived from self-reported difficulty.
const (
	SlotTypeEasy   = "easy_7d"
	SlotTypeMedium = "medium_3d"
	SlotTypeHard   = "hard_tom"
)

type RevisionSlot struct {
	ID           string    `json:"revision_id"`
	UserID       string    `json:"-"`
	TopicID      string    `json:"topic_id"`
	SlotType     string    `json:"slot_type"`
	ScheduledFor Date      `json:"scheduled_for"`
	Completed    bool      `json:"completed"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"-"`
}

// RevisionSlotDetail is a slot joined with topic, chapter and subject names.
type RevisionSlotDetail struct {
	RevisionSlot
	TopicName   string `json:"topic_name"`
	ChapterName string `json:"chapter_name"`
	SubjectName string `json:"subject_name"`
}

// RevisionSlotFilter narrows slot listings. When PendingOnly is set, only
// incomplete slots due on or before Today are returned.
type RevisionSlotFilter struct {
	UserID      string
	PendingOnly bool
	Today       Date
}
