package models_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/studyvault/backend/internal/models"
)

func TestDate_AddDays(t *testing.T) {
	d := models.NewDate(2024, time.January, 1)
	assert.Equal(t, "2024-01-04", d.AddDays(3).String())
	assert.Equal(t, "2023-12-31", d.AddDays(-1).String())
}

func TestDate_DaysUntil(t *testing.T) {
	d := models.NewDate(2024, time.March, 9)

	assert.Equal(t, 1, d.DaysUntil(models.NewDate(2024, time.March, 10)))
	assert.Equal(t, 0, d.DaysUntil(d))
	assert.Equal(t, -2, d.DaysUntil(models.NewDate(2024, time.March, 7)))
}

func TestDate_DaysUntil_AcrossDSTChange(t *testing.T) {
	// Dates live at UTC midnight, so wall-clock shifts cannot skew day math.
	d := models.NewDate(2024, time.March, 30)
	assert.Equal(t, 2, d.DaysUntil(models.NewDate(2024, time.April, 1)))
}

func TestDate_ParseRoundTrip(t *testing.T) {
	d, err := models.ParseDate("2024-02-29")
	require.NoError(t, err)
	assert.Equal(t, "2024-02-29", d.String())

	_, err = models.ParseDate("not-a-date")
	assert.Error(t, err)
}

func TestDate_JSON(t *testing.T) {
	d := models.NewDate(2024, time.January, 4)

	b, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2024-01-04"`, string(b))

	var parsed models.Date
	require.NoError(t, json.Unmarshal(b, &parsed))
	assert.True(t, d.Equal(parsed))

	assert.Error(t, json.Unmarshal([]byte(`"04/01/2024"`), &parsed))
}

func TestDateOf_TruncatesTimeOfDay(t *testing.T) {
	late := time.Date(2024, time.June, 15, 23, 59, 59, 0, time.UTC)
	assert.Equal(t, "2024-06-15", models.DateOf(late).String())
}
