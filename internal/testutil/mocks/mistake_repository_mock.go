package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/studyvault/backend/internal/models"
)

// MockMistakeRepository is a mock implementation of repository.MistakeRepository
type MockMistakeRepository struct {
	mock.Mock
}

func (m *MockMistakeRepository) InsertWithSchedule(ctx context.Context, entry models.MistakeEntry, sched models.RedoSchedule) error {
	args := m.Called(ctx, entry, sched)
	return args.Error(0)
}

func (m *MockMistakeRepository) Get(ctx context.Context, userID, id string) (*models.MistakeEntry, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MistakeEntry), args.Error(1)
}

func (m *MockMistakeRepository) List(ctx context.Context, filter models.MistakeFilter) ([]models.MistakeEntry, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.MistakeEntry), args.Error(1)
}

func (m *MockMistakeRepository) Count(ctx context.Context, userID string) (int, error) {
	args := m.Called(ctx, userID)
	return args.Int(0), args.Error(1)
}

func (m *MockMistakeRepository) Update(ctx context.Context, entry models.MistakeEntry) (bool, error) {
	args := m.Called(ctx, entry)
	return args.Bool(0), args.Error(1)
}

func (m *MockMistakeRepository) Delete(ctx context.Context, userID, id string) (bool, error) {
	args := m.Called(ctx, userID, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockMistakeRepository) ShufflePool(ctx context.Context, userID string) ([]models.ShuffleQuestion, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ShuffleQuestion), args.Error(1)
}
