package services_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/studyvault/backend/internal/models"
	"github.com/studyvault/backend/internal/services"
	"github.com/studyvault/backend/internal/testutil/mocks"
)

func shufflePool(weak, medium, strong int) []models.ShuffleQuestion {
	pool := make([]models.ShuffleQuestion, 0, weak+medium+strong)
	add := func(n int, level string) {
		for i := 0; i < n; i++ {
			pool = append(pool, models.ShuffleQuestion{
				MistakeID:     level + "-" + string(rune('a'+i)),
				QuestionText:  "question",
				TopicStrength: level,
			})
		}
	}
	add(weak, "Weak")
	add(medium, "Medium")
	add(strong, "Strong")
	return pool
}

func TestShuffleServiceQuestionsBiasTowardWeak(t *testing.T) {
	mistakeRepo := new(mocks.MockMistakeRepository)
	mistakeRepo.On("ShufflePool", mock.Anything, "user-1").Return(shufflePool(20, 5, 2), nil)
	streaks := &stubStreakService{}

	svc := services.NewShuffleService(mistakeRepo, streaks, rand.New(rand.NewSource(1)))
	questions, err := svc.Questions(context.Background(), "user-1", 10)
	require.NoError(t, err)
	require.Len(t, questions, 10)

	counts := map[string]int{}
	for _, q := range questions {
		counts[q.TopicStrength]++
	}
	assert.Equal(t, 6, counts["Weak"])
	assert.Equal(t, 3, counts["Medium"])
	assert.Equal(t, 1, counts["Strong"])
	assert.Equal(t, []string{models.ActivityShuffle}, streaks.logged)
}

func TestShuffleServiceSmallPoolReturnsEverything(t *testing.T) {
	mistakeRepo := new(mocks.MockMistakeRepository)
	mistakeRepo.On("ShufflePool", mock.Anything, "user-1").Return(shufflePool(1, 1, 1), nil)

	svc := services.NewShuffleService(mistakeRepo, &stubStreakService{}, rand.New(rand.NewSource(1)))
	questions, err := svc.Questions(context.Background(), "user-1", 10)
	require.NoError(t, err)
	assert.Len(t, questions, 3)
}

func TestShuffleServiceClampsLimit(t *testing.T) {
	mistakeRepo := new(mocks.MockMistakeRepository)
	mistakeRepo.On("ShufflePool", mock.Anything, "user-1").Return(shufflePool(30, 0, 0), nil)

	svc := services.NewShuffleService(mistakeRepo, &stubStreakService{}, rand.New(rand.NewSource(1)))

	// Over the cap comes back with the cap, zero with the default and
	// negatives with the minimum.
	questions, err := svc.Questions(context.Background(), "user-1", 50)
	require.NoError(t, err)
	assert.Len(t, questions, 20)

	questions, err = svc.Questions(context.Background(), "user-1", 0)
	require.NoError(t, err)
	assert.Len(t, questions, 10)

	questions, err = svc.Questions(context.Background(), "user-1", -3)
	require.NoError(t, err)
	assert.Len(t, questions, 1)
}

func TestShuffleServiceEmptyPool(t *testing.T) {
	mistakeRepo := new(mocks.MockMistakeRepository)
	mistakeRepo.On("ShufflePool", mock.Anything, "user-1").Return([]models.ShuffleQuestion{}, nil)
	streaks := &stubStreakService{}

	svc := services.NewShuffleService(mistakeRepo, streaks, rand.New(rand.NewSource(1)))
	questions, err := svc.Questions(context.Background(), "user-1", 10)
	require.NoError(t, err)
	assert.NotNil(t, questions)
	assert.Empty(t, questions)
}
