package repositories

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"stable_backend/internal/models"
)

const lessonColumns = `id, trainer_id, horse_id, client_name, client_email, date, start_time, end_time,
	duration, type, status, price, notes, created_at, updated_at`

// LessonRepository defines the persistence operations for lessons.
type LessonRepository interface {
	CreateLesson(ctx context.Context, executor SQLExecutor, lesson *models.Lesson) error
	GetLessonByID(ctx context.Context, id string) (*models.Lesson, error)
	GetLessons(ctx context.Context, filters models.LessonFilters) ([]models.Lesson, error)
	UpdateLesson(ctx context.Context, executor SQLExecutor, lesson *models.Lesson) error
	// TransitionLessonStatus moves a lesson from one status to another. It
	// returns ErrNotFound when no lesson with that id is in the from status.
	TransitionLessonStatus(ctx context.Context, executor SQLExecutor, id, from, to string) error
	DeleteLesson(ctx context.Context, executor SQLExecutor, id string) error
}

type lessonRepository struct {
	db *sqlx.DB
}

// NewLessonRepository creates a new instance of LessonRepository.
func NewLessonRepository(db *sqlx.DB) LessonRepository {
	return &lessonRepository{db: db}
}

func (r *lessonRepository) CreateLesson(ctx context.Context, executor SQLExecutor, lesson *models.Lesson) error {
	if lesson.ID == "" {
		lesson.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	lesson.CreatedAt = now
	lesson.UpdatedAt = now

	query := `INSERT INTO lessons (` + lessonColumns + `)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := executor.ExecContext(ctx, query,
		lesson.ID, lesson.TrainerID, lesson.HorseID, lesson.ClientName, lesson.ClientEmail,
		lesson.Date, lesson.StartTime, lesson.EndTime, lesson.Duration, lesson.Type,
		lesson.Status, lesson.Price, lesson.Notes, lesson.CreatedAt, lesson.UpdatedAt,
	)
	if err != nil {
		return mapWriteError(err, "creating lesson")
	}
	return nil
}

func (r *lessonRepository) GetLessonByID(ctx context.Context, id string) (*models.Lesson, error) {
	var lesson models.Lesson
	query := `SELECT ` + lessonColumns + ` FROM lessons WHERE id = $1`
	if err := sqlx.GetContext(ctx, r.db, &lesson, query, id); err != nil {
		return nil, mapReadError(err, fmt.Sprintf("getting lesson by ID %s", id))
	}
	return &lesson, nil
}

// GetLessons lists lessons in calendar order, narrowed by the non-nil filters.
func (r *lessonRepository) GetLessons(ctx context.Context, filters models.LessonFilters) ([]models.Lesson, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`SELECT ` + lessonColumns + ` FROM lessons`)

	var conditions []string
	var args []interface{}
	argCount := 1

	if filters.TrainerID != nil {
		conditions = append(conditions, fmt.Sprintf("trainer_id = $%d", argCount))
		args = append(args, *filters.TrainerID)
		argCount++
	}
	if filters.HorseID != nil {
		conditions = append(conditions, fmt.Sprintf("horse_id = $%d", argCount))
		args = append(args, *filters.HorseID)
		argCount++
	}
	if filters.Status != nil {
		conditions = append(conditions, fmt.Sprintf("status = $%d", argCount))
		args = append(args, *filters.Status)
		argCount++
	}
	if filters.Type != nil {
		conditions = append(conditions, fmt.Sprintf("type = $%d", argCount))
		args = append(args, *filters.Type)
		argCount++
	}
	if filters.DateFrom != nil {
		conditions = append(conditions, fmt.Sprintf("date >= $%d", argCount))
		args = append(args, *filters.DateFrom)
		argCount++
	}
	if filters.DateTo != nil {
		conditions = append(conditions, fmt.Sprintf("date <= $%d", argCount))
		args = append(args, *filters.DateTo)
	}

	if len(conditions) > 0 {
		queryBuilder.WriteString(" WHERE ")
		queryBuilder.WriteString(strings.Join(conditions, " AND "))
	}
	queryBuilder.WriteString(" ORDER BY date ASC, start_time ASC")

	lessons := []models.Lesson{}
	if err := sqlx.SelectContext(ctx, r.db, &lessons, queryBuilder.String(), args...); err != nil {
		return nil, fmt.Errorf("%w: querying lessons: %v", ErrDatabaseError, err)
	}
	return lessons, nil
}

func (r *lessonRepository) UpdateLesson(ctx context.Context, executor SQLExecutor, lesson *models.Lesson) error {
	lesson.UpdatedAt = time.Now().UTC()
	query := `UPDATE lessons SET
	            trainer_id = $1, horse_id = $2, client_name = $3, client_email = $4, date = $5,
	            start_time = $6, end_time = $7, duration = $8, type = $9, status = $10,
	            price = $11, notes = $12, updated_at = $13
	          WHERE id = $14`
	result, err := executor.ExecContext(ctx, query,
		lesson.TrainerID, lesson.HorseID, lesson.ClientName, lesson.ClientEmail, lesson.Date,
		lesson.StartTime, lesson.EndTime, lesson.Duration, lesson.Type, lesson.Status,
		lesson.Price, lesson.Notes, lesson.UpdatedAt, lesson.ID,
	)
	if err != nil {
		return mapWriteError(err, fmt.Sprintf("updating lesson ID %s", lesson.ID))
	}
	return expectAffected(result, fmt.Sprintf("updating lesson ID %s", lesson.ID))
}

func (r *lessonRepository) TransitionLessonStatus(ctx context.Context, executor SQLExecutor, id, from, to string) error {
	query := `UPDATE lessons SET status = $1, updated_at = $2 WHERE id = $3 AND status = $4`
	result, err := executor.ExecContext(ctx, query, to, time.Now().UTC(), id, from)
	if err != nil {
		return mapWriteError(err, fmt.Sprintf("changing status of lesson ID %s", id))
	}
	return expectAffected(result, fmt.Sprintf("changing status of lesson ID %s", id))
}

func (r *lessonRepository) DeleteLesson(ctx context.Context, executor SQLExecutor, id string) error {
	result, err := executor.ExecContext(ctx, `DELETE FROM lessons WHERE id = $1`, id)
	if err != nil {
		return mapWriteError(err, fmt.Sprintf("deleting lesson ID %s", id))
	}
	return expectAffected(result, fmt.Sprintf("deleting lesson ID %s", id))
}
