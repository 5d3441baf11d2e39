package models

import "time"

// TopicHeatmap is the cached per-user, per-topic aggregate maintained by the
// heat-map recompute job. It is never written by user actions directly.
type TopicHeatmap struct {
	UserID          string    `json:"-"`
	TopicID         string    `json:"topic_id"`
	MistakeFreq     int       `json:"mistake_freq"`
	RedoSuccessRate float64   `json:"redo_success_rate"`
	StrengthLevel   string    `json:"strength_level"`
	LastCalculated  time.Time `json:"last_calculated"`
}

// TopicHeatmapDetail is a heat-map row joined with taxonomy names. Topics
// without a stored row are synthesized as Strong with zero counts.
type TopicHeatmapDetail struct {
	TopicHeatmap
	TopicName   string `json:"topic_name"`
	ChapterName string `json:"chapter_name"`
	SubjectName string `json:"subject_name"`
}
