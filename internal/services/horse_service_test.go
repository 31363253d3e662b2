package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stable_backend/internal/models"
	"stable_backend/internal/repositories"
)

func newHorseServiceWithMocks(horseRepo *MockHorseRepository, recordRepo *MockHorseRecordRepository) HorseService {
	fieldRepo := &MockCustomFieldRepository{
		GetCustomFieldsFunc: func(ctx context.Context) ([]models.CustomFieldDefinition, error) {
			return testDefinitions(), nil
		},
	}
	if recordRepo == nil {
		recordRepo = &MockHorseRecordRepository{}
	}
	return NewHorseService(horseRepo, recordRepo, fieldRepo, &MockTrainerRepository{}, NewFormatter("et"), nil)
}

func TestHorseService_CreateHorse(t *testing.T) {
	var stored *models.Horse
	horseRepo := &MockHorseRepository{
		CreateHorseFunc: func(ctx context.Context, horse *models.Horse) error {
			horse.ID = "h1"
			stored = horse
			return nil
		},
	}
	svc := newHorseServiceWithMocks(horseRepo, nil)

	horse, err := svc.CreateHorse(context.Background(), CreateHorseRequest{
		Name:       "Thunder",
		Breed:      "Arabian",
		Age:        8,
		CustomData: map[string]interface{}{"chip_number": "EE-1", "height": 160.0},
	})
	require.NoError(t, err)
	assert.Equal(t, "h1", horse.ID)
	assert.Equal(t, models.HorseStatusActive, horse.Status)
	assert.Equal(t, models.NumberValue(160), stored.CustomData["height"])
	assert.NotNil(t, horse.MedicalRecords)
}

func TestHorseService_CreateHorse_Validation(t *testing.T) {
	svc := newHorseServiceWithMocks(&MockHorseRepository{}, nil)

	_, err := svc.CreateHorse(context.Background(), CreateHorseRequest{Name: " ", CustomData: map[string]interface{}{"chip_number": "x"}})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.CreateHorse(context.Background(), CreateHorseRequest{Name: "A", Status: "sleeping", CustomData: map[string]interface{}{"chip_number": "x"}})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.CreateHorse(context.Background(), CreateHorseRequest{Name: "A"})
	assert.ErrorIs(t, err, ErrValidation, "required custom field is missing")
}

func TestHorseService_ListHorses_AttachesChildren(t *testing.T) {
	horseRepo := &MockHorseRepository{
		GetHorsesFunc: func(ctx context.Context, filters models.HorseFilters) ([]models.Horse, error) {
			return []models.Horse{{ID: "h1", Name: "A"}, {ID: "h2", Name: "B"}}, nil
		},
	}
	recordRepo := &MockHorseRecordRepository{
		GetMedicalRecordsFunc: func(ctx context.Context, horseIDs []string) ([]models.MedicalRecord, error) {
			assert.ElementsMatch(t, []string{"h1", "h2"}, horseIDs)
			return []models.MedicalRecord{{ID: "m1", HorseID: "h2"}, {ID: "m2", HorseID: "h2"}}, nil
		},
		GetVaccinationsFunc: func(ctx context.Context, horseIDs []string) ([]models.Vaccination, error) {
			return []models.Vaccination{{ID: "v1", HorseID: "h1"}}, nil
		},
	}
	svc := newHorseServiceWithMocks(horseRepo, recordRepo)

	horses, err := svc.ListHorses(context.Background(), models.HorseFilters{})
	require.NoError(t, err)
	require.Len(t, horses, 2)
	assert.Empty(t, horses[0].MedicalRecords)
	assert.Len(t, horses[0].Vaccinations, 1)
	assert.Len(t, horses[1].MedicalRecords, 2)
	assert.NotNil(t, horses[1].TrainingNotes)

	bad := "sleeping"
	_, err = svc.ListHorses(context.Background(), models.HorseFilters{Status: &bad})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestHorseService_UpdateHorse_MergesCustomData(t *testing.T) {
	current := models.Horse{
		ID: "h1", Name: "Thunder", Status: models.HorseStatusActive,
		CustomData: models.CustomData{"chip_number": models.TextValue("EE-1"), "old_field": models.TextValue("legacy")},
	}
	var written *models.Horse
	horseRepo := &MockHorseRepository{
		GetHorseByIDFunc: func(ctx context.Context, id string) (*models.Horse, error) {
			if id != "h1" {
				return nil, repositories.ErrNotFound
			}
			if written != nil {
				h := *written
				return &h, nil
			}
			h := current
			return &h, nil
		},
		UpdateHorseFunc: func(ctx context.Context, horse *models.Horse) error {
			written = horse
			return nil
		},
	}
	svc := newHorseServiceWithMocks(horseRepo, nil)

	status := models.HorseStatusInjured
	horse, err := svc.UpdateHorse(context.Background(), "h1", UpdateHorseRequest{
		Status:     &status,
		CustomData: map[string]interface{}{"insured": "true"},
	})
	require.NoError(t, err)
	assert.Equal(t, models.HorseStatusInjured, horse.Status)
	assert.Equal(t, models.BoolValue(true), horse.CustomData["insured"])
	assert.Equal(t, models.TextValue("legacy"), horse.CustomData["old_field"])

	_, err = svc.UpdateHorse(context.Background(), "missing", UpdateHorseRequest{})
	assert.ErrorIs(t, err, ErrHorseNotFound)
}

func TestHorseService_GetCustomValues(t *testing.T) {
	horseRepo := &MockHorseRepository{
		GetHorseByIDFunc: func(ctx context.Context, id string) (*models.Horse, error) {
			return &models.Horse{ID: id, CustomData: models.CustomData{
				"insured":      models.BoolValue(true),
				"last_farrier": models.DateValue(time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC)),
			}}, nil
		},
	}
	svc := newHorseServiceWithMocks(horseRepo, nil)

	rows, err := svc.GetCustomValues(context.Background(), "h1")
	require.NoError(t, err)
	display := map[string]string{}
	for _, r := range rows {
		display[r.Key] = r.Display
	}
	assert.Equal(t, "Jah", display["insured"])
	assert.Equal(t, "9.03.2024", display["last_farrier"])
	assert.Equal(t, "-", display["chip_number"])
}

func TestHorseService_Records(t *testing.T) {
	horseRepo := &MockHorseRepository{
		GetHorseByIDFunc: func(ctx context.Context, id string) (*models.Horse, error) {
			if id != "h1" {
				return nil, repositories.ErrNotFound
			}
			return &models.Horse{ID: "h1"}, nil
		},
	}
	recordRepo := &MockHorseRecordRepository{
		DeleteVaccinationFunc: func(ctx context.Context, horseID, id string) error { return repositories.ErrNotFound },
	}
	svc := newHorseServiceWithMocks(horseRepo, recordRepo)
	day, _ := models.ParseDate("2024-04-02")

	record, err := svc.AddMedicalRecord(context.Background(), "h1", CreateMedicalRecordRequest{Date: day, Diagnosis: "Colic"})
	require.NoError(t, err)
	assert.Equal(t, "h1", record.HorseID)

	_, err = svc.AddMedicalRecord(context.Background(), "h9", CreateMedicalRecordRequest{Date: day, Diagnosis: "Colic"})
	assert.ErrorIs(t, err, ErrHorseNotFound)

	_, err = svc.AddVaccination(context.Background(), "h1", CreateVaccinationRequest{
		VaccineName: "Influenza", DateAdministered: day, NextDueDate: models.NewDate(day.AddDate(0, 0, -1)),
	})
	assert.ErrorIs(t, err, ErrValidation)

	note, err := svc.AddTrainingNote(context.Background(), "h1", CreateTrainingNoteRequest{Date: day, Activity: "Lunging", Duration: 30})
	require.NoError(t, err)
	assert.Equal(t, models.PerformanceGood, note.Performance)

	_, err = svc.AddTrainingNote(context.Background(), "h1", CreateTrainingNoteRequest{Date: day, Activity: "Lunging", Duration: 30, TrainerID: strPtr("ghost")})
	assert.ErrorIs(t, err, ErrTrainerNotFound)

	err = svc.DeleteVaccination(context.Background(), "h1", "v1")
	assert.ErrorIs(t, err, ErrRecordNotFound)
}

func TestHorseService_AddVaccination_RequiresNextDueDate(t *testing.T) {
	created := false
	horseRepo := &MockHorseRepository{
		GetHorseByIDFunc: func(ctx context.Context, id string) (*models.Horse, error) {
			return &models.Horse{ID: id}, nil
		},
	}
	recordRepo := &MockHorseRecordRepository{
		CreateVaccinationFunc: func(ctx context.Context, v *models.Vaccination) error {
			created = true
			return nil
		},
	}
	svc := newHorseServiceWithMocks(horseRepo, recordRepo)
	day, _ := models.ParseDate("2024-06-10")

	_, err := svc.AddVaccination(context.Background(), "h1", CreateVaccinationRequest{VaccineName: "Flu", DateAdministered: day})
	assert.ErrorIs(t, err, ErrValidation)
	assert.False(t, created)

	v, err := svc.AddVaccination(context.Background(), "h1", CreateVaccinationRequest{
		VaccineName: "Flu", DateAdministered: day, NextDueDate: models.NewDate(day.AddDate(1, 0, 0)),
	})
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, "2025-06-10", v.NextDueDate.String())
}

func TestHorseService_ChildInsertAfterHorseDeleted(t *testing.T) {
	horseRepo := &MockHorseRepository{
		GetHorseByIDFunc: func(ctx context.Context, id string) (*models.Horse, error) {
			return &models.Horse{ID: id}, nil
		},
	}
	fkErr := fmt.Errorf("%w: insert violates foreign key constraint", repositories.ErrReferenceViolation)
	recordRepo := &MockHorseRecordRepository{
		CreateMedicalRecordFunc: func(ctx context.Context, record *models.MedicalRecord) error { return fkErr },
		CreateTrainingNoteFunc:  func(ctx context.Context, note *models.TrainingNote) error { return fkErr },
	}
	svc := newHorseServiceWithMocks(horseRepo, recordRepo)
	day, _ := models.ParseDate("2024-04-02")

	_, err := svc.AddMedicalRecord(context.Background(), "h1", CreateMedicalRecordRequest{Date: day, Diagnosis: "Colic"})
	assert.ErrorIs(t, err, ErrHorseNotFound)

	_, err = svc.AddTrainingNote(context.Background(), "h1", CreateTrainingNoteRequest{Date: day, Activity: "Lunging", Duration: 30})
	assert.ErrorIs(t, err, ErrHorseNotFound)
}

func TestStorageError_ReferenceViolationIsConflict(t *testing.T) {
	err := storageError(fmt.Errorf("%w: fk", repositories.ErrReferenceViolation), ErrHorseNotFound)
	assert.ErrorIs(t, err, ErrConflict)
	assert.NotErrorIs(t, err, ErrStorage)
}

func TestHorseService_RecordsRequireDates(t *testing.T) {
	horseRepo := &MockHorseRepository{
		GetHorseByIDFunc: func(ctx context.Context, id string) (*models.Horse, error) {
			return &models.Horse{ID: id}, nil
		},
	}
	svc := newHorseServiceWithMocks(horseRepo, nil)
	ctx := context.Background()

	_, err := svc.AddMedicalRecord(ctx, "h1", CreateMedicalRecordRequest{Diagnosis: "Colic"})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.AddVaccination(ctx, "h1", CreateVaccinationRequest{VaccineName: "Flu"})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.AddTrainingNote(ctx, "h1", CreateTrainingNoteRequest{Activity: "Lunging", Duration: 30})
	assert.ErrorIs(t, err, ErrValidation)
}
