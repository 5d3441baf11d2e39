package services

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/studyvault/backend/internal/errors"
	"github.com/studyvault/backend/internal/logger"
	"github.com/studyvault/backend/internal/models"
	"github.com/studyvault/backend/internal/repository"
	"github.com/studyvault/backend/internal/schedule"
)

// MistakeInput carries the writable fields of a mistake entry.
type MistakeInput struct {
	QuestionText  string  `json:"question_text"`
	Source        string  `json:"source"`
	MistakeType   *string `json:"mistake_type"`
	SubjectID     string  `json:"subject_id"`
	ChapterID     string  `json:"chapter_id"`
	TopicID       *string `json:"topic_id"`
	Notes         *string `json:"notes"`
	ScreenshotURL *string `json:"screenshot_url"`
}

// MistakeList is a page of entries with pagination metadata.
type MistakeList struct {
	Entries []models.MistakeEntry `json:"entries"`
	Total   int                   `json:"total"`
	Limit   int                   `json:"limit"`
	Offset  int                   `json:"offset"`
	HasMore bool                  `json:"has_more"`
}

// MistakeService handles mistake entry business logic
type MistakeService interface {
	Create(ctx context.Context, userID string, input MistakeInput) (*models.MistakeEntry, error)
	Get(ctx context.Context, userID, id string) (*models.MistakeEntry, error)
	List(ctx context.Context, userID string, limit, offset int) (*MistakeList, error)
	Update(ctx context.Context, userID, id string, input MistakeInput) (*models.MistakeEntry, error)
	Delete(ctx context.Context, userID, id string) error
}

type mistakeService struct {
	mistakes repository.MistakeRepository
	taxonomy repository.TaxonomyRepository
}

// NewMistakeService creates a new MistakeService
func NewMistakeService(mistakes repository.MistakeRepository, taxonomy repository.TaxonomyRepository) MistakeService {
	return &mistakeService{mistakes: mistakes, taxonomy: taxonomy}
}

func (s *mistakeService) validate(ctx context.Context, input *MistakeInput) error {
	input.QuestionText = strings.TrimSpace(input.QuestionText)
	if input.QuestionText == "" {
		return errors.NewValidationError("question_text", "must not be empty")
	}

	source := models.Source(input.Source)
	if !models.ValidSource(source) {
		return errors.NewValidationError("source", "must be 'mistake' or 'self_added'")
	}
	// mistake_type is required exactly when the question came from a real
	// mistake; self-added questions must not carry one.
	if source == models.SourceMistake {
		if input.MistakeType == nil {
			return errors.NewValidationError("mistake_type", "required when source is 'mistake'")
		}
		if !models.ValidMistakeType(*input.MistakeType) {
			return errors.NewValidationError("mistake_type", "must be one of Concept, Calculation, Misread, Trap")
		}
	} else if input.MistakeType != nil {
		return errors.NewValidationError("mistake_type", "must be absent when source is 'self_added'")
	}

	if uuid.Validate(input.SubjectID) != nil {
		return errors.NewValidationError("subject_id", "must be a valid UUID")
	}
	if uuid.Validate(input.ChapterID) != nil {
		return errors.NewValidationError("chapter_id", "must be a valid UUID")
	}
	if input.TopicID != nil && uuid.Validate(*input.TopicID) != nil {
		return errors.NewValidationError("topic_id", "must be a valid UUID")
	}

	if ok, err := s.taxonomy.SubjectExists(ctx, input.SubjectID); err != nil {
		return errors.NewInternalError(err)
	} else if !ok {
		return errors.NewValidationError("subject_id", "unknown subject")
	}
	if ok, err := s.taxonomy.ChapterExists(ctx, input.ChapterID); err != nil {
		return errors.NewInternalError(err)
	} else if !ok {
		return errors.NewValidationError("chapter_id", "unknown chapter")
	}
	if input.TopicID != nil {
		if ok, err := s.taxonomy.TopicExists(ctx, *input.TopicID); err != nil {
			return errors.NewInternalError(err)
		} else if !ok {
			return errors.NewValidationError("topic_id", "unknown topic")
		}
	}
	return nil
}

func (s *mistakeService) Create(ctx context.Context, userID string, input MistakeInput) (*models.MistakeEntry, error) {
	log := logger.FromContext(ctx)
	log.Debug("creating mistake entry: source=%s", input.Source)

	if err := s.validate(ctx, &input); err != nil {
		return nil, err
	}

	entry := models.MistakeEntry{
		ID:            uuid.NewString(),
		UserID:        userID,
		QuestionText:  input.QuestionText,
		Source:        models.Source(input.Source),
		MistakeType:   input.MistakeType,
		SubjectID:     input.SubjectID,
		ChapterID:     input.ChapterID,
		TopicID:       input.TopicID,
		Notes:         input.Notes,
		ScreenshotURL: input.ScreenshotURL,
	}

	// Every new entry gets its redo schedule in the same transaction.
	due, err := schedule.RedoDueDate(schedule.RedoThreeDays, models.Today())
	if err != nil {
		return nil, errors.NewInternalError(err)
	}
	sched := models.RedoSchedule{
		ID:           uuid.NewString(),
		MistakeID:    entry.ID,
		ScheduleType: string(schedule.RedoThreeDays),
		DueDate:      due,
	}

	if err := s.mistakes.InsertWithSchedule(ctx, entry, sched); err != nil {
		log.Error("failed to create mistake: %v", err)
		return nil, errors.NewInternalError(err)
	}

	created, err := s.mistakes.Get(ctx, userID, entry.ID)
	if err != nil || created == nil {
		log.Error("failed to load created mistake: %v", err)
		return nil, errors.NewInternalError(err)
	}
	log.Info("mistake created: id=%s, due=%s", created.ID, due)
	return created, nil
}

func (s *mistakeService) Get(ctx context.Context, userID, id string) (*models.MistakeEntry, error) {
	entry, err := s.mistakes.Get(ctx, userID, id)
	if err != nil {
		return nil, errors.NewInternalError(err)
	}
	if entry == nil {
		return nil, errors.NewNotFoundError("mistake", id)
	}
	return entry, nil
}

func (s *mistakeService) List(ctx context.Context, userID string, limit, offset int) (*MistakeList, error) {
	log := logger.FromContext(ctx)

	if limit <= 0 {
		limit = 50
	}
	if limit > 100 {
		return nil, errors.NewValidationError("limit", "must be at most 100")
	}
	if offset < 0 {
		return nil, errors.NewValidationError("offset", "must not be negative")
	}

	entries, err := s.mistakes.List(ctx, models.MistakeFilter{UserID: userID, Limit: limit, Offset: offset})
	if err != nil {
		log.Error("failed to list mistakes: %v", err)
		return nil, errors.NewInternalError(err)
	}
	total, err := s.mistakes.Count(ctx, userID)
	if err != nil {
		log.Error("failed to count mistakes: %v", err)
		return nil, errors.NewInternalError(err)
	}

	if entries == nil {
		entries = []models.MistakeEntry{}
	}
	return &MistakeList{
		Entries: entries,
		Total:   total,
		Limit:   limit,
		Offset:  offset,
		HasMore: offset+len(entries) < total,
	}, nil
}

func (s *mistakeService) Update(ctx context.Context, userID, id string, input MistakeInput) (*models.MistakeEntry, error) {
	log := logger.FromContext(ctx)
	log.Debug("updating mistake: id=%s", id)

	if err := s.validate(ctx, &input); err != nil {
		return nil, err
	}

	entry := models.MistakeEntry{
		ID:            id,
		UserID:        userID,
		QuestionText:  input.QuestionText,
		Source:        models.Source(input.Source),
		MistakeType:   input.MistakeType,
		SubjectID:     input.SubjectID,
		ChapterID:     input.ChapterID,
		TopicID:       input.TopicID,
		Notes:         input.Notes,
		ScreenshotURL: input.ScreenshotURL,
	}
	updated, err := s.mistakes.Update(ctx, entry)
	if err != nil {
		log.Error("failed to update mistake: %v", err)
		return nil, errors.NewInternalError(err)
	}
	if !updated {
		return nil, errors.NewNotFoundError("mistake", id)
	}
	return s.Get(ctx, userID, id)
}

func (s *mistakeService) Delete(ctx context.Context, userID, id string) error {
	log := logger.FromContext(ctx)
	log.Debug("deleting mistake: id=%s", id)

	deleted, err := s.mistakes.Delete(ctx, userID, id)
	if err != nil {
		log.Error("failed to delete mistake: %v", err)
		return errors.NewInternalError(err)
	}
	if !deleted {
		return errors.NewNotFoundError("mistake", id)
	}
	log.Info("mistake deleted: id=%s", id)
	return nil
}
