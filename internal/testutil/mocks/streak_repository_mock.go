package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/studyvault/backend/internal/models"
	"github.com/studyvault/backend/internal/repository"
)

// MockStreakRepository is a mock implementation of repository.StreakRepository
type MockStreakRepository struct {
	mock.Mock
}

func (m *MockStreakRepository) RecordActivity(ctx context.Context, entry models.StreakLog, advance func(current int, lastActive *models.Date) int) (repository.StreakActivityResult, error) {
	args := m.Called(ctx, entry, advance)
	return args.Get(0).(repository.StreakActivityResult), args.Error(1)
}

func (m *MockStreakRepository) CountActivities(ctx context.Context, userID string) (int, error) {
	args := m.Called(ctx, userID)
	return args.Int(0), args.Error(1)
}

func (m *MockStreakRepository) ActivityBreakdown(ctx context.Context, userID string, since models.Date) (map[string]int, error) {
	args := m.Called(ctx, userID, since)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]int), args.Error(1)
}
