package repository

import (
	"context"
	"errors"

	"github.com/studyvault/backend/internal/models"
)

// ErrDuplicate is returned when a write would violate a uniqueness invariant
// (duplicate email, second redo attempt, duplicate pending revision slot).
var ErrDuplicate = errors.New("duplicate record")

// IsDuplicate reports whether err is a uniqueness violation.
func IsDuplicate(err error) bool {
	return errors.Is(err, ErrDuplicate)
}

// UserRepository handles user data access
type UserRepository interface {
	Insert(ctx context.Context, user models.User) error
	Get(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	ListIDs(ctx context.Context) ([]string, error)
}

// TaxonomyRepository handles the global subject/chapter/topic reference data
type TaxonomyRepository interface {
	SubjectExists(ctx context.Context, id string) (bool, error)
	ChapterExists(ctx context.Context, id string) (bool, error)
	TopicExists(ctx context.Context, id string) (bool, error)
	GetTopicRef(ctx context.Context, topicID string) (*models.TopicRef, error)
	ListTopicRefs(ctx context.Context) ([]models.TopicRef, error)
}

// MistakeRepository handles mistake entry data access
type MistakeRepository interface {
	// InsertWithSchedule writes the entry and its redo schedule in one
	// transaction so a mistake can never exist without its schedule.
	InsertWithSchedule(ctx context.Context, entry models.MistakeEntry, sched models.RedoSchedule) error
	Get(ctx context.Context, userID, id string) (*models.MistakeEntry, error)
	List(ctx context.Context, filter models.MistakeFilter) ([]models.MistakeEntry, error)
	Count(ctx context.Context, userID string) (int, error)
	Update(ctx context.Context, entry models.MistakeEntry) (bool, error)
	Delete(ctx context.Context, userID, id string) (bool, error)
	// ShufflePool returns all of the user's mistakes tagged with the strength
	// level of their topic, defaulting to Strong when no heat-map row exists.
	ShufflePool(ctx context.Context, userID string) ([]models.ShuffleQuestion, error)
}

// RedoRepository handles redo schedule and attempt data access
type RedoRepository interface {
	ListPending(ctx context.Context, userID string) ([]models.RedoScheduleItem, error)
	ListDueOn(ctx context.Context, userID string, day models.Date) ([]models.RedoScheduleItem, error)
	GetForUser(ctx context.Context, userID, redoID string) (*models.RedoScheduleItem, error)
	// RecordAttempt inserts the attempt and marks the schedule performed in
	// one transaction; ErrDuplicate when the schedule was already attempted.
	RecordAttempt(ctx context.Context, attempt models.RedoAttempt) error
	ListAttempts(ctx context.Context, userID string) ([]models.RedoAttemptItem, error)
}

// RevisionRepository handles revision slot data access
type RevisionRepository interface {
	// Insert returns ErrDuplicate when an incomplete slot already exists for
	// the same (user, topic, scheduled date).
	Insert(ctx context.Context, slot models.RevisionSlot) error
	List(ctx context.Context, filter models.RevisionSlotFilter) ([]models.RevisionSlotDetail, error)
	ListDueOn(ctx context.Context, userID string, day models.Date) ([]models.RevisionSlotDetail, error)
	Get(ctx context.Context, userID, id string) (*models.RevisionSlotDetail, error)
	// MarkCompleted flips completed on an incomplete slot; false when the
	// slot is absent or already completed.
	MarkCompleted(ctx context.Context, userID, id string) (bool, error)
}

// TopicAggregate is the raw per-topic attempt tally the heat-map recompute
// reads before classification.
type TopicAggregate struct {
	TopicID      string
	MistakeFreq  int
	AttemptCount int
	CorrectCount int
}

// HeatmapRepository handles cached topic strength data access
type HeatmapRepository interface {
	ListForUser(ctx context.Context, userID string) ([]models.TopicHeatmapDetail, error)
	GetForTopic(ctx context.Context, userID, topicID string) (*models.TopicHeatmapDetail, error)
	Upsert(ctx context.Context, hm models.TopicHeatmap) error
	// TopicAggregates tallies, for every topic, the user's mistake count and
	// redo attempt outcomes linked through those mistakes.
	TopicAggregates(ctx context.Context, userID string) ([]TopicAggregate, error)
}

// StreakActivityResult is the outcome of recording a streak activity.
type StreakActivityResult struct {
	StreakCount   int
	AlreadyLogged bool
}

// StreakRepository handles streak log and cached counter data access
type StreakRepository interface {
	// RecordActivity inserts the log row unless one already exists for the
	// user and date, and updates the cached user counter in the same
	// transaction. The advance callback receives the user's current counter
	// and last active date and returns the new counter.
	RecordActivity(ctx context.Context, entry models.StreakLog, advance func(current int, lastActive *models.Date) int) (StreakActivityResult, error)
	CountActivities(ctx context.Context, userID string) (int, error)
	ActivityBreakdown(ctx context.Context, userID string, since models.Date) (map[string]int, error)
}
