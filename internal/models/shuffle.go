package models

// ShuffleQuestion is a practice candidate: a mistake entry tagged with the
// strength level inherited from its topic's heat-map row.
type ShuffleQuestion struct {
	MistakeID     string  `json:"mistake_id"`
	QuestionText  string  `json:"question_text"`
	Source        Source  `json:"source"`
	SubjectID     string  `json:"subject_id"`
	ChapterID     string  `json:"chapter_id"`
	TopicID       *string `json:"topic_id"`
	TopicStrength string  `json:"topic_strength"`
}
