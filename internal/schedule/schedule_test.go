package schedule_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/studyvault/backend/internal/models"
	"github.com/studyvault/backend/internal/schedule"
)

func TestRedoDueDate(t *testing.T) {
	today := models.NewDate(2024, time.January, 1)

	tests := []struct {
		kind     schedule.RedoKind
		expected string
	}{
		{schedule.RedoThreeDays, "2024-01-04"},
		{schedule.RedoSevenDays, "2024-01-08"},
		{schedule.RedoFifteenDays, "2024-01-16"},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			due, err := schedule.RedoDueDate(tt.kind, today)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, due.String())
		})
	}
}

func TestRedoDueDate_InvalidKind(t *testing.T) {
	_, err := schedule.RedoDueDate("two_days", models.Today())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown redo schedule type")
}

func TestRedoDueDate_CrossesMonthBoundary(t *testing.T) {
	today := models.NewDate(2024, time.January, 30)

	due, err := schedule.RedoDueDate(schedule.RedoThreeDays, today)
	require.NoError(t, err)
	assert.Equal(t, "2024-02-02", due.String())
}

func TestRevisionSlot(t *testing.T) {
	today := models.NewDate(2024, time.January, 1)

	tests := []struct {
		difficulty   schedule.Difficulty
		slotType     string
		scheduledFor string
	}{
		{schedule.DifficultyEasy, models.SlotTypeEasy, "2024-01-08"},
		{schedule.DifficultyMedium, models.SlotTypeMedium, "2024-01-04"},
		{schedule.DifficultyHard, models.SlotTypeHard, "2024-01-02"},
	}

	for _, tt := range tests {
		t.Run(string(tt.difficulty), func(t *testing.T) {
			slotType, scheduledFor, err := schedule.RevisionSlot(tt.difficulty, today)
			require.NoError(t, err)
			assert.Equal(t, tt.slotType, slotType)
			assert.Equal(t, tt.scheduledFor, scheduledFor.String())
		})
	}
}

func TestRevisionSlot_InvalidDifficulty(t *testing.T) {
	_, _, err := schedule.RevisionSlot("extreme", models.Today())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown difficulty")
}
