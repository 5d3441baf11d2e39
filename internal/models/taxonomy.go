package models

// Subjects, chapters and topics are global reference data, not owned by any user.

type Subject struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Chapter struct {
	ID        string `json:"id"`
	SubjectID string `json:"subject_id"`
	Name      string `json:"name"`
}

type Topic struct {
	ID        string `json:"id"`
	ChapterID string `json:"chapter_id"`
	Name      string `json:"name"`
}

// TopicRef is a topic joined with its chapter and subject names.
type TopicRef struct {
	TopicID     string `json:"topic_id"`
	TopicName   string `json:"topic_name"`
	ChapterName string `json:"chapter_name"`
	SubjectName string `json:"subject_name"`
}
