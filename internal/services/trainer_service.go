package services

import (
	"context"
	"strings"

	"stable_backend/internal/models"
	"stable_backend/internal/repositories"
	"stable_backend/pkg/utils"
)

// --- Trainer DTOs ---
type CreateTrainerRequest struct {
	Name        string   `json:"name" binding:"required"`
	Email       string   `json:"email" binding:"required,email"`
	Phone       string   `json:"phone"`
	Specialties []string `json:"specialties"`
}

type UpdateTrainerRequest struct {
	Name        *string   `json:"name"`
	Email       *string   `json:"email" binding:"omitempty,email"`
	Phone       *string   `json:"phone"`
	Specialties *[]string `json:"specialties"`
}

// --- TrainerService Interface ---
type TrainerService interface {
	CreateTrainer(ctx context.Context, req CreateTrainerRequest) (*models.Trainer, error)
	GetTrainer(ctx context.Context, id string) (*models.Trainer, error)
	ListTrainers(ctx context.Context) ([]models.Trainer, error)
	UpdateTrainer(ctx context.Context, id string, req UpdateTrainerRequest) (*models.Trainer, error)
	DeleteTrainer(ctx context.Context, id string) error
}

type trainerService struct {
	trainerRepo repositories.TrainerRepository
	db          repositories.SQLExecutor
}

// NewTrainerService creates a new instance of TrainerService.
func NewTrainerService(repo repositories.TrainerRepository, db repositories.SQLExecutor) TrainerService {
	return &trainerService{trainerRepo: repo, db: db}
}

func validateTrainer(t *models.Trainer) error {
	if strings.TrimSpace(t.Name) == "" {
		return validationError("name cannot be empty")
	}
	if !utils.IsValidEmail(t.Email) {
		return validationError("invalid email format %q", t.Email)
	}
	return nil
}

func (s *trainerService) CreateTrainer(ctx context.Context, req CreateTrainerRequest) (*models.Trainer, error) {
	trainer := &models.Trainer{
		Name:        strings.TrimSpace(req.Name),
		Email:       strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:       strings.TrimSpace(req.Phone),
		Specialties: cleanOptions(req.Specialties),
	}
	if err := validateTrainer(trainer); err != nil {
		return nil, err
	}
	if err := s.trainerRepo.CreateTrainer(ctx, s.db, trainer); err != nil {
		return nil, storageError(err, nil)
	}
	return trainer, nil
}

func (s *trainerService) GetTrainer(ctx context.Context, id string) (*models.Trainer, error) {
	trainer, err := s.trainerRepo.GetTrainerByID(ctx, id)
	if err != nil {
		return nil, storageError(err, ErrTrainerNotFound)
	}
	return trainer, nil
}

func (s *trainerService) ListTrainers(ctx context.Context) ([]models.Trainer, error) {
	trainers, err := s.trainerRepo.GetTrainers(ctx)
	if err != nil {
		return nil, storageError(err, nil)
	}
	return trainers, nil
}

func (s *trainerService) UpdateTrainer(ctx context.Context, id string, req UpdateTrainerRequest) (*models.Trainer, error) {
	trainer, err := s.GetTrainer(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		trainer.Name = strings.TrimSpace(*req.Name)
	}
	if req.Email != nil {
		trainer.Email = strings.ToLower(strings.TrimSpace(*req.Email))
	}
	if req.Phone != nil {
		trainer.Phone = strings.TrimSpace(*req.Phone)
	}
	if req.Specialties != nil {
		trainer.Specialties = cleanOptions(*req.Specialties)
	}
	if err := validateTrainer(trainer); err != nil {
		return nil, err
	}
	if err := s.trainerRepo.UpdateTrainer(ctx, s.db, trainer); err != nil {
		return nil, storageError(err, ErrTrainerNotFound)
	}
	return trainer, nil
}

// DeleteTrainer removes the trainer. Lessons keep pointing at the old id.
func (s *trainerService) DeleteTrainer(ctx context.Context, id string) error {
	if err := s.trainerRepo.DeleteTrainer(ctx, s.db, id); err != nil {
		return storageError(err, ErrTrainerNotFound)
	}
	return nil
}
