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

const testSlotID = "bb7f2d3e-4f56-4c78-9abc-def012345678"

func TestRevisionServiceScheduleMapsDifficulty(t *testing.T) {
	tests := []struct {
		difficulty string
		slotType   string
		daysOut    int
	}{
		{"easy", models.SlotTypeEasy, 7},
		{"medium", models.SlotTypeMedium, 3},
		{"hard", models.SlotTypeHard, 1},
	}

	for _, tt := range tests {
		t.Run(tt.difficulty, func(t *testing.T) {
			revisionRepo := new(mocks.MockRevisionRepository)
			taxonomyRepo := new(mocks.MockTaxonomyRepository)
			taxonomyRepo.On("TopicExists", mock.Anything, kinematicsID).Return(true, nil)

			want := models.Today().AddDays(tt.daysOut)
			revisionRepo.On("Insert", mock.Anything, mock.MatchedBy(func(s models.RevisionSlot) bool {
				return s.TopicID == kinematicsID && s.SlotType == tt.slotType && s.ScheduledFor.Equal(want)
			})).Return(nil)
			revisionRepo.On("Get", mock.Anything, "user-1", mock.Anything).
				Return(&models.RevisionSlotDetail{}, nil)

			svc := services.NewRevisionService(revisionRepo, taxonomyRepo, &stubStreakService{})
			_, err := svc.Schedule(context.Background(), "user-1", kinematicsID, tt.difficulty)
			require.NoError(t, err)
			revisionRepo.AssertExpectations(t)
		})
	}
}

func TestRevisionServiceScheduleInvalidDifficulty(t *testing.T) {
	svc := services.NewRevisionService(new(mocks.MockRevisionRepository), new(mocks.MockTaxonomyRepository), &stubStreakService{})
	_, err := svc.Schedule(context.Background(), "user-1", kinematicsID, "brutal")
	requireAppErrorCode(t, err, apperrors.ErrCodeValidation)
}

func TestRevisionServiceScheduleUnknownTopic(t *testing.T) {
	revisionRepo := new(mocks.MockRevisionRepository)
	taxonomyRepo := new(mocks.MockTaxonomyRepository)
	taxonomyRepo.On("TopicExists", mock.Anything, kinematicsID).Return(false, nil)

	svc := services.NewRevisionService(revisionRepo, taxonomyRepo, &stubStreakService{})
	_, err := svc.Schedule(context.Background(), "user-1", kinematicsID, "easy")
	requireAppErrorCode(t, err, apperrors.ErrCodeNotFound)
	revisionRepo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestRevisionServiceScheduleDuplicateConflicts(t *testing.T) {
	revisionRepo := new(mocks.MockRevisionRepository)
	taxonomyRepo := new(mocks.MockTaxonomyRepository)
	taxonomyRepo.On("TopicExists", mock.Anything, kinematicsID).Return(true, nil)
	revisionRepo.On("Insert", mock.Anything, mock.Anything).Return(repository.ErrDuplicate)

	svc := services.NewRevisionService(revisionRepo, taxonomyRepo, &stubStreakService{})
	_, err := svc.Schedule(context.Background(), "user-1", kinematicsID, "medium")
	requireAppErrorCode(t, err, apperrors.ErrCodeConflict)
}

func TestRevisionServiceCompleteLogsStreak(t *testing.T) {
	revisionRepo := new(mocks.MockRevisionRepository)
	streaks := &stubStreakService{}
	revisionRepo.On("MarkCompleted", mock.Anything, "user-1", testSlotID).Return(true, nil)
	revisionRepo.On("Get", mock.Anything, "user-1", testSlotID).
		Return(&models.RevisionSlotDetail{RevisionSlot: models.RevisionSlot{ID: testSlotID, Completed: true}}, nil)

	svc := services.NewRevisionService(revisionRepo, new(mocks.MockTaxonomyRepository), streaks)
	slot, err := svc.Complete(context.Background(), "user-1", testSlotID)
	require.NoError(t, err)
	assert.True(t, slot.Completed)
	assert.Equal(t, []string{models.ActivityRevision}, streaks.logged)
}

func TestRevisionServiceCompleteAlreadyCompleted(t *testing.T) {
	revisionRepo := new(mocks.MockRevisionRepository)
	streaks := &stubStreakService{}
	revisionRepo.On("MarkCompleted", mock.Anything, "user-1", testSlotID).Return(false, nil)
	revisionRepo.On("Get", mock.Anything, "user-1", testSlotID).
		Return(&models.RevisionSlotDetail{RevisionSlot: models.RevisionSlot{ID: testSlotID, Completed: true}}, nil)

	svc := services.NewRevisionService(revisionRepo, new(mocks.MockTaxonomyRepository), streaks)
	_, err := svc.Complete(context.Background(), "user-1", testSlotID)
	requireAppErrorCode(t, err, apperrors.ErrCodeConflict)
	assert.Empty(t, streaks.logged)
}

func TestRevisionServiceCompleteUnknownSlot(t *testing.T) {
	revisionRepo := new(mocks.MockRevisionRepository)
	revisionRepo.On("MarkCompleted", mock.Anything, "user-1", testSlotID).Return(false, nil)
	revisionRepo.On("Get", mock.Anything, "user-1", testSlotID).Return(nil, nil)

	svc := services.NewRevisionService(revisionRepo, new(mocks.MockTaxonomyRepository), &stubStreakService{})
	_, err := svc.Complete(context.Background(), "user-1", testSlotID)
	requireAppErrorCode(t, err, apperrors.ErrCodeNotFound)
}
