package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/studyvault/backend/internal/models"
)

// MockRevisionRepository is a mock implementation of repository.RevisionRepository
type MockRevisionRepository struct {
	mock.Mock
}

func (m *MockRevisionRepository) Insert(ctx context.Context, slot models.RevisionSlot) error {
	args := m.Called(ctx, slot)
	return args.Error(0)
}

func (m *MockRevisionRepository) List(ctx context.Context, filter models.RevisionSlotFilter) ([]models.RevisionSlotDetail, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.RevisionSlotDetail), args.Error(1)
}

func (m *MockRevisionRepository) ListDueOn(ctx context.Context, userID string, day models.Date) ([]models.RevisionSlotDetail, error) {
	args := m.Called(ctx, userID, day)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.RevisionSlotDetail), args.Error(1)
}

func (m *MockRevisionRepository) Get(ctx context.Context, userID, id string) (*models.RevisionSlotDetail, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.RevisionSlotDetail), args.Error(1)
}

func (m *MockRevisionRepository) MarkCompleted(ctx context.Context, userID, id string) (bool, error) {
	args := m.Called(ctx, userID, id)
	return args.Bool(0), args.Error(1)
}
