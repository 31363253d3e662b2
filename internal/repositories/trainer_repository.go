package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"stable_backend/internal/models"
)

const trainerColumns = `id, name, email, phone, specialties, created_at, updated_at`

// TrainerRepository defines the persistence operations for trainers.
type TrainerRepository interface {
	CreateTrainer(ctx context.Context, executor SQLExecutor, trainer *models.Trainer) error
	GetTrainerByID(ctx context.Context, id string) (*models.Trainer, error)
	GetTrainers(ctx context.Context) ([]models.Trainer, error)
	UpdateTrainer(ctx context.Context, executor SQLExecutor, trainer *models.Trainer) error
	DeleteTrainer(ctx context.Context, executor SQLExecutor, id string) error
}

type trainerRepository struct {
	db *sqlx.DB
}

// NewTrainerRepository creates a new instance of TrainerRepository.
func NewTrainerRepository(db *sqlx.DB) TrainerRepository {
	return &trainerRepository{db: db}
}

func (r *trainerRepository) CreateTrainer(ctx context.Context, executor SQLExecutor, trainer *models.Trainer) error {
	if trainer.ID == "" {
		trainer.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	trainer.CreatedAt = now
	trainer.UpdatedAt = now
	if trainer.Specialties == nil {
		trainer.Specialties = []string{}
	}

	query := `INSERT INTO trainers (` + trainerColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := executor.ExecContext(ctx, query,
		trainer.ID, trainer.Name, trainer.Email, trainer.Phone, trainer.Specialties,
		trainer.CreatedAt, trainer.UpdatedAt,
	)
	if err != nil {
		return mapWriteError(err, "creating trainer")
	}
	return nil
}

func (r *trainerRepository) GetTrainerByID(ctx context.Context, id string) (*models.Trainer, error) {
	var trainer models.Trainer
	query := `SELECT ` + trainerColumns + ` FROM trainers WHERE id = $1`
	if err := sqlx.GetContext(ctx, r.db, &trainer, query, id); err != nil {
		return nil, mapReadError(err, fmt.Sprintf("getting trainer by ID %s", id))
	}
	return &trainer, nil
}

func (r *trainerRepository) GetTrainers(ctx context.Context) ([]models.Trainer, error) {
	trainers := []models.Trainer{}
	query := `SELECT ` + trainerColumns + ` FROM trainers ORDER BY created_at DESC`
	if err := sqlx.SelectContext(ctx, r.db, &trainers, query); err != nil {
		return nil, fmt.Errorf("%w: querying trainers: %v", ErrDatabaseError, err)
	}
	return trainers, nil
}

func (r *trainerRepository) UpdateTrainer(ctx context.Context, executor SQLExecutor, trainer *models.Trainer) error {
	trainer.UpdatedAt = time.Now().UTC()
	if trainer.Specialties == nil {
		trainer.Specialties = []string{}
	}
	query := `UPDATE trainers SET name = $1, email = $2, phone = $3, specialties = $4, updated_at = $5
	          WHERE id = $6`
	result, err := executor.ExecContext(ctx, query,
		trainer.Name, trainer.Email, trainer.Phone, trainer.Specialties, trainer.UpdatedAt, trainer.ID,
	)
	if err != nil {
		return mapWriteError(err, fmt.Sprintf("updating trainer ID %s", trainer.ID))
	}
	return expectAffected(result, fmt.Sprintf("updating trainer ID %s", trainer.ID))
}

// DeleteTrainer removes the trainer. Lessons keep their trainer_id.
func (r *trainerRepository) DeleteTrainer(ctx context.Context, executor SQLExecutor, id string) error {
	result, err := executor.ExecContext(ctx, `DELETE FROM trainers WHERE id = $1`, id)
	if err != nil {
		return mapWriteError(err, fmt.Sprintf("deleting trainer ID %s", id))
	}
	return expectAffected(result, fmt.Sprintf("deleting trainer ID %s", id))
}
