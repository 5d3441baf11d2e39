package models

import "time"

// Source distinguishes questions the user got wrong from ones they added
// themselves for extra practice.
type Source string

const (
	SourceMistake   Source = "mistake"
	SourceSelfAdded Source = "self_added"
)

// ValidSource reports whether s is a known source.
func ValidSource(s Source) bool {
	return s == SourceMistake || s == SourceSelfAdded
}

// Mistake types, meaningful only when Source is "mistake".
const (
	MistakeTypeConcept     = "Concept"
	MistakeTypeCalculation = "Calculation"
	MistakeTypeMisread     = "Misread"
	MistakeTypeTrap        = "Trap"
)

// ValidMistakeType reports whether t is a known mistake type.
func ValidMistakeType(t string) bool {
	switch t {
	case MistakeTypeConcept, MistakeTypeCalculation, MistakeTypeMisread, MistakeTypeTrap:
		return true
	}
	return false
}

// MistakeEntry is a recorded practice question. MistakeType is set exactly
// when Source is "mistake"; request validation enforces the pairing before
// an entry is ever persisted.
type MistakeEntry struct {
	ID            string    `json:"id"`
	UserID        string    `json:"-"`
	QuestionText  string    `json:"question_text"`
	Source        Source    `json:"source"`
	MistakeType   *string   `json:"mistake_type"`
	SubjectID     string    `json:"subject_id"`
	ChapterID     string    `json:"chapter_id"`
	TopicID       *string   `json:"topic_id"`
	Notes         *string   `json:"notes"`
	ScreenshotURL *string   `json:"screenshot_url"`
	SavedAt       time.Time `json:"saved_at"`
	UpdatedAt     time.Time `json:"-"`
}

// MistakeFilter narrows mistake listings.
type MistakeFilter struct {
	UserID string
	Limit  int
	Offset int
}
