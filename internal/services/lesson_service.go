package services

import (
	"context"
	"strings"

	"stable_backend/internal/models"
	"stable_backend/internal/repositories"
	"stable_backend/pkg/utils"
)

// --- Lesson DTOs ---
type CreateLessonRequest struct {
	TrainerID   string      `json:"trainer_id" binding:"required"`
	HorseID     *string     `json:"horse_id"`
	ClientName  string      `json:"client_name"`
	ClientEmail string      `json:"client_email"`
	Date        models.Date `json:"date"`
	StartTime   string      `json:"start_time" binding:"required"`
	EndTime     string      `json:"end_time" binding:"required"`
	Duration    *int        `json:"duration"`
	Type        string      `json:"type"`
	Status      string      `json:"status"`
	Price       *float64    `json:"price" binding:"omitempty,gte=0"`
	Notes       *string     `json:"notes"`
}

type UpdateLessonRequest struct {
	TrainerID   *string      `json:"trainer_id"`
	HorseID     *string      `json:"horse_id"`
	ClientName  *string      `json:"client_name"`
	ClientEmail *string      `json:"client_email"`
	Date        *models.Date `json:"date"`
	StartTime   *string      `json:"start_time"`
	EndTime     *string      `json:"end_time"`
	Duration    *int         `json:"duration"`
	Type        *string      `json:"type"`
	Status      *string      `json:"status"`
	Price       *float64     `json:"price" binding:"omitempty,gte=0"`
	Notes       *string      `json:"notes"`
}

// LessonObserver is told about every created lesson; *metrics.Metrics satisfies it.
type LessonObserver interface {
	RecordLessonCreated(lessonType string)
}

// --- LessonService Interface ---
type LessonService interface {
	CreateLesson(ctx context.Context, req CreateLessonRequest) (*models.Lesson, error)
	GetLesson(ctx context.Context, id string) (*models.Lesson, error)
	ListLessons(ctx context.Context, filters models.LessonFilters) ([]models.Lesson, error)
	UpdateLesson(ctx context.Context, id string, req UpdateLessonRequest) (*models.Lesson, error)
	CancelLesson(ctx context.Context, id string) (*models.Lesson, error)
	CompleteLesson(ctx context.Context, id string) (*models.Lesson, error)
	DeleteLesson(ctx context.Context, id string) error
}

type lessonService struct {
	lessonRepo  repositories.LessonRepository
	trainerRepo repositories.TrainerRepository
	horseRepo   repositories.HorseRepository
	observer    LessonObserver
	db          repositories.SQLExecutor
}

// NewLessonService creates a new instance of LessonService. observer may be nil.
func NewLessonService(
	lessonRepo repositories.LessonRepository,
	trainerRepo repositories.TrainerRepository,
	horseRepo repositories.HorseRepository,
	observer LessonObserver,
	db repositories.SQLExecutor,
) LessonService {
	return &lessonService{
		lessonRepo:  lessonRepo,
		trainerRepo: trainerRepo,
		horseRepo:   horseRepo,
		observer:    observer,
		db:          db,
	}
}

// normalizeLesson applies the group-session defaults, derives a missing
// duration and validates the result. durationGiven is false when the caller
// left duration for the service to compute.
func normalizeLesson(l *models.Lesson, durationGiven bool) error {
	if l.Type == "" {
		l.Type = models.LessonTypePrivate
	}
	if !models.IsValidLessonType(l.Type) {
		return validationError("invalid lesson type %q", l.Type)
	}
	if l.Status == "" {
		l.Status = models.LessonStatusScheduled
	}
	if !models.IsValidLessonStatus(l.Status) {
		return validationError("invalid lesson status %q", l.Status)
	}
	if strings.TrimSpace(l.TrainerID) == "" {
		return validationError("trainer is required")
	}
	if l.Date.IsZero() {
		return validationError("date is required")
	}

	start, err := utils.ParseClock(l.StartTime)
	if err != nil {
		return validationError("start time: %v", err)
	}
	end, err := utils.ParseClock(l.EndTime)
	if err != nil {
		return validationError("end time: %v", err)
	}
	if end <= start {
		return validationError("end time must be after start time")
	}
	if !durationGiven {
		l.Duration = end - start
	}
	if l.Duration <= 0 {
		return validationError("duration must be positive")
	}

	l.ClientName = strings.TrimSpace(l.ClientName)
	l.ClientEmail = strings.TrimSpace(l.ClientEmail)
	l.HorseID = utils.NewNullString(utils.StringValue(l.HorseID))

	if l.Type == models.LessonTypeGroup {
		if l.ClientName == "" {
			l.ClientName = models.GroupClientName
		}
		if l.ClientEmail == "" {
			l.ClientEmail = models.GroupClientEmail
		}
		l.Price = 0
		return nil
	}

	if l.HorseID == nil {
		return validationError("horse is required for %s lessons", l.Type)
	}
	if l.ClientName == "" {
		return validationError("client name is required for %s lessons", l.Type)
	}
	if !utils.IsValidEmail(l.ClientEmail) {
		return validationError("invalid client email %q", l.ClientEmail)
	}
	if l.Price < 0 {
		return validationError("price cannot be negative")
	}
	return nil
}

// checkReferences makes sure the selected trainer and horse exist.
func (s *lessonService) checkReferences(ctx context.Context, l *models.Lesson, trainer, horse bool) error {
	if trainer {
		if _, err := s.trainerRepo.GetTrainerByID(ctx, l.TrainerID); err != nil {
			return storageError(err, validationError("trainer %s does not exist", l.TrainerID))
		}
	}
	if horse && l.HorseID != nil {
		if _, err := s.horseRepo.GetHorseByID(ctx, *l.HorseID); err != nil {
			return storageError(err, validationError("horse %s does not exist", *l.HorseID))
		}
	}
	return nil
}

func (s *lessonService) CreateLesson(ctx context.Context, req CreateLessonRequest) (*models.Lesson, error) {
	lesson := &models.Lesson{
		TrainerID:   strings.TrimSpace(req.TrainerID),
		HorseID:     req.HorseID,
		ClientName:  req.ClientName,
		ClientEmail: req.ClientEmail,
		Date:        req.Date,
		StartTime:   strings.TrimSpace(req.StartTime),
		EndTime:     strings.TrimSpace(req.EndTime),
		Type:        strings.TrimSpace(req.Type),
		Status:      strings.TrimSpace(req.Status),
		Notes:       utils.NewNullString(utils.StringValue(req.Notes)),
	}
	if req.Duration != nil {
		lesson.Duration = *req.Duration
	}
	if req.Price != nil {
		lesson.Price = *req.Price
	}

	if err := normalizeLesson(lesson, req.Duration != nil); err != nil {
		return nil, err
	}
	if err := s.checkReferences(ctx, lesson, true, true); err != nil {
		return nil, err
	}
	if err := s.lessonRepo.CreateLesson(ctx, s.db, lesson); err != nil {
		return nil, storageError(err, nil)
	}
	if s.observer != nil {
		s.observer.RecordLessonCreated(lesson.Type)
	}
	return lesson, nil
}

func (s *lessonService) GetLesson(ctx context.Context, id string) (*models.Lesson, error) {
	lesson, err := s.lessonRepo.GetLessonByID(ctx, id)
	if err != nil {
		return nil, storageError(err, ErrLessonNotFound)
	}
	return lesson, nil
}

func (s *lessonService) ListLessons(ctx context.Context, filters models.LessonFilters) ([]models.Lesson, error) {
	if filters.Status != nil && !models.IsValidLessonStatus(*filters.Status) {
		return nil, validationError("invalid status filter %q", *filters.Status)
	}
	if filters.Type != nil && !models.IsValidLessonType(*filters.Type) {
		return nil, validationError("invalid type filter %q", *filters.Type)
	}
	if filters.DateFrom != nil && filters.DateTo != nil && filters.DateTo.Before(filters.DateFrom.Time) {
		return nil, validationError("date_to cannot be before date_from")
	}
	lessons, err := s.lessonRepo.GetLessons(ctx, filters)
	if err != nil {
		return nil, storageError(err, nil)
	}
	return lessons, nil
}

func (s *lessonService) UpdateLesson(ctx context.Context, id string, req UpdateLessonRequest) (*models.Lesson, error) {
	lesson, err := s.GetLesson(ctx, id)
	if err != nil {
		return nil, err
	}

	// References are only checked when they change: the trainer or horse of an
	// existing lesson may have been deleted since.
	previousTrainer := lesson.TrainerID
	previousHorse := utils.StringValue(lesson.HorseID)

	if req.TrainerID != nil {
		lesson.TrainerID = strings.TrimSpace(*req.TrainerID)
	}
	if req.HorseID != nil {
		lesson.HorseID = req.HorseID
	}
	if req.ClientName != nil {
		lesson.ClientName = *req.ClientName
	}
	if req.ClientEmail != nil {
		lesson.ClientEmail = *req.ClientEmail
	}
	if req.Date != nil {
		lesson.Date = *req.Date
	}
	timesChanged := false
	if req.StartTime != nil {
		lesson.StartTime = strings.TrimSpace(*req.StartTime)
		timesChanged = true
	}
	if req.EndTime != nil {
		lesson.EndTime = strings.TrimSpace(*req.EndTime)
		timesChanged = true
	}
	if req.Duration != nil {
		lesson.Duration = *req.Duration
	}
	if req.Type != nil {
		lesson.Type = strings.TrimSpace(*req.Type)
	}
	if req.Status != nil {
		lesson.Status = strings.TrimSpace(*req.Status)
	}
	if req.Price != nil {
		lesson.Price = *req.Price
	}
	if req.Notes != nil {
		lesson.Notes = utils.NewNullString(*req.Notes)
	}

	durationGiven := req.Duration != nil || !timesChanged
	if err := normalizeLesson(lesson, durationGiven); err != nil {
		return nil, err
	}
	trainerChanged := lesson.TrainerID != previousTrainer
	horseChanged := utils.StringValue(lesson.HorseID) != previousHorse
	if err := s.checkReferences(ctx, lesson, trainerChanged, horseChanged); err != nil {
		return nil, err
	}
	if err := s.lessonRepo.UpdateLesson(ctx, s.db, lesson); err != nil {
		return nil, storageError(err, ErrLessonNotFound)
	}
	return lesson, nil
}

func (s *lessonService) CancelLesson(ctx context.Context, id string) (*models.Lesson, error) {
	return s.transition(ctx, id, models.LessonStatusCancelled)
}

func (s *lessonService) CompleteLesson(ctx context.Context, id string) (*models.Lesson, error) {
	return s.transition(ctx, id, models.LessonStatusCompleted)
}

// transition moves a scheduled lesson to a final status.
func (s *lessonService) transition(ctx context.Context, id, to string) (*models.Lesson, error) {
	lesson, err := s.GetLesson(ctx, id)
	if err != nil {
		return nil, err
	}
	if lesson.Status != models.LessonStatusScheduled {
		return nil, ErrLessonNotScheduled
	}
	if err := s.lessonRepo.TransitionLessonStatus(ctx, s.db, id, models.LessonStatusScheduled, to); err != nil {
		// Someone else moved it between the read and the write.
		return nil, storageError(err, ErrLessonNotScheduled)
	}
	lesson.Status = to
	return lesson, nil
}

func (s *lessonService) DeleteLesson(ctx context.Context, id string) error {
	if err := s.lessonRepo.DeleteLesson(ctx, s.db, id); err != nil {
		return storageError(err, ErrLessonNotFound)
	}
	return nil
}
