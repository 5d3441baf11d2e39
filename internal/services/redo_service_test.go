package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apperrors "github.com/studyvault/backend/internal/errors"
	"github.com/studyvault/backend/internal/models"
	"github.com/studyvault/backend/internal/repository"
	"github.com/studyvault/backend/internal/services"
	"github.com/studyvault/backend/internal/testutil/mocks"
)

// stubStreakService records logged activities without touching storage.
type stubStreakService struct {
	logged  []string
	logErr  error
	current int
}

func (s *stubStreakService) LogActivity(_ context.Context, _, activityType string) (*services.StreakActivityStatus, error) {
	if s.logErr != nil {
		return nil, s.logErr
	}
	s.logged = append(s.logged, activityType)
	return &services.StreakActivityStatus{CurrentStreak: 1}, nil
}

func (s *stubStreakService) Current(_ context.Context, _ string) (*services.StreakCurrent, error) {
	return &services.StreakCurrent{CurrentStreak: s.current}, nil
}

func (s *stubStreakService) Stats(_ context.Context, _ string) (*models.StreakStats, error) {
	return &models.StreakStats{}, nil
}

const testRedoID = "aa6f1c2d-3e45-4b67-89ab-cdef01234567"

func redoScheduleItem() *models.RedoScheduleItem {
	return &models.RedoScheduleItem{
		RedoSchedule: models.RedoSchedule{ID: testRedoID, ScheduleType: "three_days"},
		QuestionText: "State Newton's second law.",
	}
}

func TestRedoServiceRecordAttempt(t *testing.T) {
	redoRepo := new(mocks.MockRedoRepository)
	queue := new(mocks.MockJobQueue)
	streaks := &stubStreakService{}

	redoRepo.On("GetForUser", mock.Anything, "user-1", testRedoID).Return(redoScheduleItem(), nil)
	redoRepo.On("RecordAttempt", mock.Anything, mock.MatchedBy(func(a models.RedoAttempt) bool {
		return a.RedoID == testRedoID && a.IsCorrect
	})).Return(nil)
	queue.On("EnqueueHeatmapRefresh", "user-1").Return(nil)

	svc := services.NewRedoService(redoRepo, streaks, queue)
	item, err := svc.RecordAttempt(context.Background(), "user-1", testRedoID, true)
	require.NoError(t, err)
	assert.True(t, item.IsCorrect)
	assert.Equal(t, "State Newton's second law.", item.QuestionText)
	assert.Equal(t, []string{models.ActivityRedo}, streaks.logged)
	queue.AssertExpectations(t)
	redoRepo.AssertExpectations(t)
}

func TestRedoServiceRecordAttemptDuplicate(t *testing.T) {
	redoRepo := new(mocks.MockRedoRepository)
	queue := new(mocks.MockJobQueue)
	streaks := &stubStreakService{}

	redoRepo.On("GetForUser", mock.Anything, "user-1", testRedoID).Return(redoScheduleItem(), nil)
	redoRepo.On("RecordAttempt", mock.Anything, mock.Anything).Return(repository.ErrDuplicate)

	svc := services.NewRedoService(redoRepo, streaks, queue)
	_, err := svc.RecordAttempt(context.Background(), "user-1", testRedoID, false)
	requireAppErrorCode(t, err, apperrors.ErrCodeConflict)

	// No streak or heat-map side effects on a rejected attempt.
	assert.Empty(t, streaks.logged)
	queue.AssertNotCalled(t, "EnqueueHeatmapRefresh", mock.Anything)
}

func TestRedoServiceRecordAttemptUnknownSchedule(t *testing.T) {
	redoRepo := new(mocks.MockRedoRepository)
	redoRepo.On("GetForUser", mock.Anything, "user-1", testRedoID).Return(nil, nil)

	svc := services.NewRedoService(redoRepo, &stubStreakService{}, new(mocks.MockJobQueue))
	_, err := svc.RecordAttempt(context.Background(), "user-1", testRedoID, true)
	requireAppErrorCode(t, err, apperrors.ErrCodeNotFound)
}

func TestRedoServiceRecordAttemptRejectsMalformedID(t *testing.T) {
	svc := services.NewRedoService(new(mocks.MockRedoRepository), &stubStreakService{}, new(mocks.MockJobQueue))
	_, err := svc.RecordAttempt(context.Background(), "user-1", "not-a-uuid", true)
	requireAppErrorCode(t, err, apperrors.ErrCodeValidation)
}

func TestRedoServiceListScheduleEmpty(t *testing.T) {
	redoRepo := new(mocks.MockRedoRepository)
	redoRepo.On("ListPending", mock.Anything, "user-1").Return([]models.RedoScheduleItem{}, nil)

	svc := services.NewRedoService(redoRepo, &stubStreakService{}, new(mocks.MockJobQueue))
	items, err := svc.ListSchedule(context.Background(), "user-1")
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}
