package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"stable_backend/internal/models"
)

const horseColumns = `id, name, breed, age, color, owner, status, stall_number, custom_data, created_at, updated_at`

// HorseRepository defines the persistence operations for horses.
// Child records live in HorseRecordRepository.
type HorseRepository interface {
	CreateHorse(ctx context.Context, executor SQLExecutor, horse *models.Horse) error
	GetHorseByID(ctx context.Context, id string) (*models.Horse, error)
	GetHorses(ctx context.Context, filters models.HorseFilters) ([]models.Horse, error)
	UpdateHorse(ctx context.Context, executor SQLExecutor, horse *models.Horse) error
	DeleteHorse(ctx context.Context, executor SQLExecutor, id string) error
}

type horseRepository struct {
	db *sqlx.DB
}

// NewHorseRepository creates a new instance of HorseRepository.
func NewHorseRepository(db *sqlx.DB) HorseRepository {
	return &horseRepository{db: db}
}

// CreateHorse inserts the horse, assigning id and timestamps.
func (r *horseRepository) CreateHorse(ctx context.Context, executor SQLExecutor, horse *models.Horse) error {
	if horse.ID == "" {
		horse.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	horse.CreatedAt = now
	horse.UpdatedAt = now
	if horse.CustomData == nil {
		horse.CustomData = models.CustomData{}
	}

	query := `INSERT INTO horses (` + horseColumns + `)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := executor.ExecContext(ctx, query,
		horse.ID, horse.Name, horse.Breed, horse.Age, horse.Color, horse.Owner, horse.Status,
		horse.StallNumber, horse.CustomData, horse.CreatedAt, horse.UpdatedAt,
	)
	if err != nil {
		return mapWriteError(err, "creating horse")
	}
	return nil
}

// GetHorseByID retrieves a horse without its child records.
func (r *horseRepository) GetHorseByID(ctx context.Context, id string) (*models.Horse, error) {
	var horse models.Horse
	query := `SELECT ` + horseColumns + ` FROM horses WHERE id = $1`
	if err := sqlx.GetContext(ctx, r.db, &horse, query, id); err != nil {
		return nil, mapReadError(err, fmt.Sprintf("getting horse by ID %s", id))
	}
	return &horse, nil
}

// GetHorses lists horses, newest first.
func (r *horseRepository) GetHorses(ctx context.Context, filters models.HorseFilters) ([]models.Horse, error) {
	query := `SELECT ` + horseColumns + ` FROM horses`
	var args []interface{}
	if filters.Status != nil {
		query += ` WHERE status = $1`
		args = append(args, *filters.Status)
	}
	query += ` ORDER BY created_at DESC`

	horses := []models.Horse{}
	if err := sqlx.SelectContext(ctx, r.db, &horses, query, args...); err != nil {
		return nil, fmt.Errorf("%w: querying horses: %v", ErrDatabaseError, err)
	}
	return horses, nil
}

// UpdateHorse overwrites every mutable column of the horse.
func (r *horseRepository) UpdateHorse(ctx context.Context, executor SQLExecutor, horse *models.Horse) error {
	horse.UpdatedAt = time.Now().UTC()
	query := `UPDATE horses SET
	            name = $1, breed = $2, age = $3, color = $4, owner = $5, status = $6,
	            stall_number = $7, custom_data = $8, updated_at = $9
	          WHERE id = $10`

	result, err := executor.ExecContext(ctx, query,
		horse.Name, horse.Breed, horse.Age, horse.Color, horse.Owner, horse.Status,
		horse.StallNumber, horse.CustomData, horse.UpdatedAt, horse.ID,
	)
	if err != nil {
		return mapWriteError(err, fmt.Sprintf("updating horse ID %s", horse.ID))
	}
	return expectAffected(result, fmt.Sprintf("updating horse ID %s", horse.ID))
}

// DeleteHorse removes the horse; medical records, vaccinations and training notes
// go with it through ON DELETE CASCADE.
func (r *horseRepository) DeleteHorse(ctx context.Context, executor SQLExecutor, id string) error {
	result, err := executor.ExecContext(ctx, `DELETE FROM horses WHERE id = $1`, id)
	if err != nil {
		return mapWriteError(err, fmt.Sprintf("deleting horse ID %s", id))
	}
	return expectAffected(result, fmt.Sprintf("deleting horse ID %s", id))
}
