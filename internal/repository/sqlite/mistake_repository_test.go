package sqlite_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"github.com/studyvault/backend/internal/models"
	"github.com/studyvault/backend/internal/repository"
	"github.com/studyvault/backend/internal/repository/sqlite"
	"github.com/studyvault/backend/internal/testutil"
)

// Seeded taxonomy rows used across repository tests.
const (
	physicsID    = "0b05df9e-55b4-4b14-9251-1df4aa77dd51"
	mechanicsID  = "d4a9c2fe-3d0c-4f2c-ae60-8f18c2a8fbe0"
	kinematicsID = "fb0a2c64-7e91-4d3a-b852-90cf25c87a13"
	rotationalID = "41da8b2f-6c35-4e07-a9d4-3fb8e1c6a952"
)

func insertTestUser(s *suite.Suite, db *sql.DB) string {
	id := uuid.NewString()
	_, err := db.ExecContext(context.Background(), `
		INSERT INTO users (id, email, password_hash) VALUES (?, ?, ?)
	`, id, id+"@example.com", "hash")
	s.Require().NoError(err)
	return id
}

type MistakeRepositorySuite struct {
	suite.Suite
	db     *sql.DB
	repo   repository.MistakeRepository
	userID string
}

func (s *MistakeRepositorySuite) SetupTest() {
	s.db = testutil.NewTestDB(s.T())
	s.repo = sqlite.NewMistakeRepository(s.db)
	s.userID = insertTestUser(&s.Suite, s.db)
}

func (s *MistakeRepositorySuite) TearDownTest() {
	testutil.MustClose(s.T(), s.db)
}

func (s *MistakeRepositorySuite) newEntry() (models.MistakeEntry, models.RedoSchedule) {
	mistakeType := models.MistakeTypeConcept
	topicID := kinematicsID
	entry := models.MistakeEntry{
		ID:           uuid.NewString(),
		UserID:       s.userID,
		QuestionText: "A ball is thrown upward at 20 m/s. Find the max height.",
		Source:       models.SourceMistake,
		MistakeType:  &mistakeType,
		SubjectID:    physicsID,
		ChapterID:    mechanicsID,
		TopicID:      &topicID,
	}
	due, err := models.ParseDate("2026-09-04")
	s.Require().NoError(err)
	sched := models.RedoSchedule{
		ID:           uuid.NewString(),
		MistakeID:    entry.ID,
		ScheduleType: "three_days",
		DueDate:      due,
	}
	return entry, sched
}

func (s *MistakeRepositorySuite) TestInsertWithScheduleAndGet() {
	ctx := context.Background()
	entry, sched := s.newEntry()

	s.Require().NoError(s.repo.InsertWithSchedule(ctx, entry, sched))

	got, err := s.repo.Get(ctx, s.userID, entry.ID)
	s.Require().NoError(err)
	s.Require().NotNil(got)
	s.Equal(entry.QuestionText, got.QuestionText)
	s.Equal(models.SourceMistake, got.Source)
	s.Require().NotNil(got.MistakeType)
	s.Equal(models.MistakeTypeConcept, *got.MistakeType)
	s.Require().NotNil(got.TopicID)
	s.Equal(kinematicsID, *got.TopicID)
	s.Nil(got.Notes)
	s.False(got.SavedAt.IsZero())

	// The schedule must exist in the same transaction.
	var count int
	err = s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM redo_schedules WHERE mistake_id = ?`, entry.ID).Scan(&count)
	s.Require().NoError(err)
	s.Equal(1, count)
}

func (s *MistakeRepositorySuite) TestInsertRollsBackOnScheduleConflict() {
	ctx := context.Background()
	entry, sched := s.newEntry()
	s.Require().NoError(s.repo.InsertWithSchedule(ctx, entry, sched))

	// A schedule conflict must roll back the mistake insert too.
	entry2, sched2 := s.newEntry()
	sched2.ID = sched.ID
	err := s.repo.InsertWithSchedule(ctx, entry2, sched2)
	s.Require().Error(err)

	got, err := s.repo.Get(ctx, s.userID, entry2.ID)
	s.Require().NoError(err)
	s.Nil(got)
}

func (s *MistakeRepositorySuite) TestGetUnknownReturnsNil() {
	got, err := s.repo.Get(context.Background(), s.userID, uuid.NewString())
	s.Require().NoError(err)
	s.Nil(got)
}

func (s *MistakeRepositorySuite) TestGetScopedToUser() {
	ctx := context.Background()
	entry, sched := s.newEntry()
	s.Require().NoError(s.repo.InsertWithSchedule(ctx, entry, sched))

	otherUser := insertTestUser(&s.Suite, s.db)
	got, err := s.repo.Get(ctx, otherUser, entry.ID)
	s.Require().NoError(err)
	s.Nil(got)
}

func (s *MistakeRepositorySuite) TestListPagination() {
	ctx := context.Background()
	for i := 0; i < 5; i++ {
		entry, sched := s.newEntry()
		s.Require().NoError(s.repo.InsertWithSchedule(ctx, entry, sched))
	}

	entries, err := s.repo.List(ctx, models.MistakeFilter{UserID: s.userID, Limit: 3})
	s.Require().NoError(err)
	s.Len(entries, 3)

	entries, err = s.repo.List(ctx, models.MistakeFilter{UserID: s.userID, Limit: 3, Offset: 3})
	s.Require().NoError(err)
	s.Len(entries, 2)

	count, err := s.repo.Count(ctx, s.userID)
	s.Require().NoError(err)
	s.Equal(5, count)
}

func (s *MistakeRepositorySuite) TestUpdate() {
	ctx := context.Background()
	entry, sched := s.newEntry()
	s.Require().NoError(s.repo.InsertWithSchedule(ctx, entry, sched))

	entry.QuestionText = "Revised question text"
	entry.Source = models.SourceSelfAdded
	entry.MistakeType = nil
	updated, err := s.repo.Update(ctx, entry)
	s.Require().NoError(err)
	s.True(updated)

	got, err := s.repo.Get(ctx, s.userID, entry.ID)
	s.Require().NoError(err)
	s.Require().NotNil(got)
	s.Equal("Revised question text", got.QuestionText)
	s.Equal(models.SourceSelfAdded, got.Source)
	s.Nil(got.MistakeType)
}

func (s *MistakeRepositorySuite) TestUpdateUnknownReturnsFalse() {
	entry, _ := s.newEntry()
	updated, err := s.repo.Update(context.Background(), entry)
	s.Require().NoError(err)
	s.False(updated)
}

func (s *MistakeRepositorySuite) TestDeleteCascadesToSchedule() {
	ctx := context.Background()
	entry, sched := s.newEntry()
	s.Require().NoError(s.repo.InsertWithSchedule(ctx, entry, sched))

	deleted, err := s.repo.Delete(ctx, s.userID, entry.ID)
	s.Require().NoError(err)
	s.True(deleted)

	var count int
	err = s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM redo_schedules WHERE mistake_id = ?`, entry.ID).Scan(&count)
	s.Require().NoError(err)
	s.Equal(0, count)

	deleted, err = s.repo.Delete(ctx, s.userID, entry.ID)
	s.Require().NoError(err)
	s.False(deleted)
}

func (s *MistakeRepositorySuite) TestShufflePoolDefaultsToStrong() {
	ctx := context.Background()
	entry, sched := s.newEntry()
	s.Require().NoError(s.repo.InsertWithSchedule(ctx, entry, sched))

	pool, err := s.repo.ShufflePool(ctx, s.userID)
	s.Require().NoError(err)
	s.Require().Len(pool, 1)
	s.Equal("Strong", pool[0].TopicStrength)
}

func (s *MistakeRepositorySuite) TestShufflePoolUsesHeatmapStrength() {
	ctx := context.Background()
	entry, sched := s.newEntry()
	s.Require().NoError(s.repo.InsertWithSchedule(ctx, entry, sched))

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO topic_heatmap (user_id, topic_id, mistake_freq, redo_success_rate, strength_level)
		VALUES (?, ?, 6, 0.2, 'Weak')
	`, s.userID, kinematicsID)
	s.Require().NoError(err)

	pool, err := s.repo.ShufflePool(ctx, s.userID)
	s.Require().NoError(err)
	s.Require().Len(pool, 1)
	s.Equal("Weak", pool[0].TopicStrength)
}

func TestMistakeRepositorySuite(t *testing.T) {
	suite.Run(t, new(MistakeRepositorySuite))
}
