package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/studyvault/backend/internal/models"
	"github.com/studyvault/backend/internal/repository"
)

// MockHeatmapRepository is a mock implementation of repository.HeatmapRepository
type MockHeatmapRepository struct {
	mock.Mock
}

func (m *MockHeatmapRepository) ListForUser(ctx context.Context, userID string) ([]models.TopicHeatmapDetail, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.TopicHeatmapDetail), args.Error(1)
}

func (m *MockHeatmapRepository) GetForTopic(ctx context.Context, userID, topicID string) (*models.TopicHeatmapDetail, error) {
	args := m.Called(ctx, userID, topicID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.TopicHeatmapDetail), args.Error(1)
}

func (m *MockHeatmapRepository) Upsert(ctx context.Context, hm models.TopicHeatmap) error {
	args := m.Called(ctx, hm)
	return args.Error(0)
}

func (m *MockHeatmapRepository) TopicAggregates(ctx context.Context, userID string) ([]repository.TopicAggregate, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.TopicAggregate), args.Error(1)
}
