package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/studyvault/backend/internal/models"
)

// MockRedoRepository is a mock implementation of repository.RedoRepository
type MockRedoRepository struct {
	mock.Mock
}

func (m *MockRedoRepository) ListPending(ctx context.Context, userID string) ([]models.RedoScheduleItem, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.RedoScheduleItem), args.Error(1)
}

func (m *MockRedoRepository) ListDueOn(ctx context.Context, userID string, day models.Date) ([]models.RedoScheduleItem, error) {
	args := m.Called(ctx, userID, day)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.RedoScheduleItem), args.Error(1)
}

func (m *MockRedoRepository) GetForUser(ctx context.Context, userID, redoID string) (*models.RedoScheduleItem, error) {
	args := m.Called(ctx, userID, redoID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.RedoScheduleItem), args.Error(1)
}

func (m *MockRedoRepository) RecordAttempt(ctx context.Context, attempt models.RedoAttempt) error {
	args := m.Called(ctx, attempt)
	return args.Error(0)
}

func (m *MockRedoRepository) ListAttempts(ctx context.Context, userID string) ([]models.RedoAttemptItem, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.RedoAttemptItem), args.Error(1)
}
