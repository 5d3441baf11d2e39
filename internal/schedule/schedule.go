// Package schedule holds the due-date rules for redo schedules and revision
// slots. Dates are calendar dates computed once at creation time and never
// recalculated.
package schedule

import (
	"fmt"

	"github.com/studyvault/backend/internal/models"
)

// RedoKind selects the redo interval.
type RedoKind string

const (
	RedoThreeDays   RedoKind = "three_days"
	RedoSevenDays   RedoKind = "seven_days"
	RedoFifteenDays RedoKind = "fifteen_days"
)

// RedoDueDate returns the due date for a redo of the given kind created today.
func RedoDueDate(kind RedoKind, today models.Date) (models.Date, error) {
	switch kind {
	case RedoThreeDays:
		return today.AddDays(3), nil
	case RedoSevenDays:
		return today.AddDays(7), nil
	case RedoFifteenDays:
		return today.AddDays(15), nil
	default:
		return models.Date{}, fmt.Errorf("unknown redo schedule type %q", kind)
	}
}

// Difficulty is the user's self-reported difficulty for a topic revision.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// RevisionSlot maps a difficulty to its slot type and scheduled date:
// easy reviews in a week, medium in three days, hard tomorrow.
func RevisionSlot(difficulty Difficulty, today models.Date) (slotType string, scheduledFor models.Date, err error) {
	switch difficulty {
	case DifficultyEasy:
		return models.SlotTypeEasy, today.AddDays(7), nil
	case DifficultyMedium:
		return models.SlotTypeMedium, today.AddDays(3), nil
	case DifficultyHard:
		return models.SlotTypeHard, today.AddDays(1), nil
	default:
		return "", models.Date{}, fmt.Errorf("unknown difficulty %q", difficulty)
	}
}
