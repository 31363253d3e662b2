package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"stable_backend/internal/models"
)

const (
	medicalRecordColumns = `id, horse_id, date, diagnosis, treatment, veterinarian, notes, created_at`
	vaccinationColumns   = `id, horse_id, vaccine_name, date_administered, next_due_date, veterinarian, batch_number, created_at`
	trainingNoteColumns  = `id, horse_id, date, trainer_id, activity, duration, notes, performance, created_at`
)

// HorseRecordRepository persists the child records of a horse: medical
// records, vaccinations and training notes. Listing takes a slice of horse IDs
// so a whole page of horses can be hydrated in three queries.
type HorseRecordRepository interface {
	CreateMedicalRecord(ctx context.Context, executor SQLExecutor, record *models.MedicalRecord) error
	GetMedicalRecordsByHorseIDs(ctx context.Context, horseIDs []string) ([]models.MedicalRecord, error)
	DeleteMedicalRecord(ctx context.Context, executor SQLExecutor, horseID, id string) error

	CreateVaccination(ctx context.Context, executor SQLExecutor, vaccination *models.Vaccination) error
	GetVaccinationsByHorseIDs(ctx context.Context, horseIDs []string) ([]models.Vaccination, error)
	DeleteVaccination(ctx context.Context, executor SQLExecutor, horseID, id string) error

	CreateTrainingNote(ctx context.Context, executor SQLExecutor, note *models.TrainingNote) error
	GetTrainingNotesByHorseIDs(ctx context.Context, horseIDs []string) ([]models.TrainingNote, error)
	DeleteTrainingNote(ctx context.Context, executor SQLExecutor, horseID, id string) error
}

type horseRecordRepository struct {
	db *sqlx.DB
}

func NewHorseRecordRepository(db *sqlx.DB) HorseRecordRepository {
	return &horseRecordRepository{db: db}
}

func (r *horseRecordRepository) CreateMedicalRecord(ctx context.Context, executor SQLExecutor, record *models.MedicalRecord) error {
	if record.ID == "" {
		record.ID = uuid.NewString()
	}
	record.CreatedAt = time.Now().UTC()

	query := `INSERT INTO medical_records (` + medicalRecordColumns + `)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := executor.ExecContext(ctx, query,
		record.ID, record.HorseID, record.Date, record.Diagnosis, record.Treatment,
		record.Veterinarian, record.Notes, record.CreatedAt,
	)
	if err != nil {
		return mapWriteError(err, "creating medical record")
	}
	return nil
}

func (r *horseRecordRepository) GetMedicalRecordsByHorseIDs(ctx context.Context, horseIDs []string) ([]models.MedicalRecord, error) {
	records := []models.MedicalRecord{}
	if len(horseIDs) == 0 {
		return records, nil
	}
	query := `SELECT ` + medicalRecordColumns + ` FROM medical_records
	          WHERE horse_id = ANY($1) ORDER BY date DESC, created_at DESC`
	if err := sqlx.SelectContext(ctx, r.db, &records, query, pq.Array(horseIDs)); err != nil {
		return nil, fmt.Errorf("%w: querying medical records: %v", ErrDatabaseError, err)
	}
	return records, nil
}

func (r *horseRecordRepository) DeleteMedicalRecord(ctx context.Context, executor SQLExecutor, horseID, id string) error {
	return r.deleteChild(ctx, executor, "medical_records", horseID, id)
}

func (r *horseRecordRepository) CreateVaccination(ctx context.Context, executor SQLExecutor, vaccination *models.Vaccination) error {
	if vaccination.ID == "" {
		vaccination.ID = uuid.NewString()
	}
	vaccination.CreatedAt = time.Now().UTC()

	query := `INSERT INTO vaccinations (` + vaccinationColumns + `)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := executor.ExecContext(ctx, query,
		vaccination.ID, vaccination.HorseID, vaccination.VaccineName, vaccination.DateAdministered,
		vaccination.NextDueDate, vaccination.Veterinarian, vaccination.BatchNumber, vaccination.CreatedAt,
	)
	if err != nil {
		return mapWriteError(err, "creating vaccination")
	}
	return nil
}

func (r *horseRecordRepository) GetVaccinationsByHorseIDs(ctx context.Context, horseIDs []string) ([]models.Vaccination, error) {
	vaccinations := []models.Vaccination{}
	if len(horseIDs) == 0 {
		return vaccinations, nil
	}
	query := `SELECT ` + vaccinationColumns + ` FROM vaccinations
	          WHERE horse_id = ANY($1) ORDER BY date_administered DESC, created_at DESC`
	if err := sqlx.SelectContext(ctx, r.db, &vaccinations, query, pq.Array(horseIDs)); err != nil {
		return nil, fmt.Errorf("%w: querying vaccinations: %v", ErrDatabaseError, err)
	}
	return vaccinations, nil
}

func (r *horseRecordRepository) DeleteVaccination(ctx context.Context, executor SQLExecutor, horseID, id string) error {
	return r.deleteChild(ctx, executor, "vaccinations", horseID, id)
}

func (r *horseRecordRepository) CreateTrainingNote(ctx context.Context, executor SQLExecutor, note *models.TrainingNote) error {
	if note.ID == "" {
		note.ID = uuid.NewString()
	}
	note.CreatedAt = time.Now().UTC()

	query := `INSERT INTO training_notes (` + trainingNoteColumns + `)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := executor.ExecContext(ctx, query,
		note.ID, note.HorseID, note.Date, note.TrainerID, note.Activity, note.Duration,
		note.Notes, note.Performance, note.CreatedAt,
	)
	if err != nil {
		return mapWriteError(err, "creating training note")
	}
	return nil
}

func (r *horseRecordRepository) GetTrainingNotesByHorseIDs(ctx context.Context, horseIDs []string) ([]models.TrainingNote, error) {
	notes := []models.TrainingNote{}
	if len(horseIDs) == 0 {
		return notes, nil
	}
	query := `SELECT ` + trainingNoteColumns + ` FROM training_notes
	          WHERE horse_id = ANY($1) ORDER BY date DESC, created_at DESC`
	if err := sqlx.SelectContext(ctx, r.db, &notes, query, pq.Array(horseIDs)); err != nil {
		return nil, fmt.Errorf("%w: querying training notes: %v", ErrDatabaseError, err)
	}
	return notes, nil
}

func (r *horseRecordRepository) DeleteTrainingNote(ctx context.Context, executor SQLExecutor, horseID, id string) error {
	return r.deleteChild(ctx, executor, "training_notes", horseID, id)
}

// deleteChild removes a child row scoped to its horse. table is always one of
// the constants above, never user input.
func (r *horseRecordRepository) deleteChild(ctx context.Context, executor SQLExecutor, table, horseID, id string) error {
	query := `DELETE FROM ` + table + ` WHERE id = $1 AND horse_id = $2`
	result, err := executor.ExecContext(ctx, query, id, horseID)
	if err != nil {
		return mapWriteError(err, fmt.Sprintf("deleting %s ID %s", table, id))
	}
	return expectAffected(result, fmt.Sprintf("deleting %s ID %s", table, id))
}
