package handlers

import (
	"context"
	"time"

	"stable_backend/internal/models"
	"stable_backend/internal/services"
)

type MockHorseService struct {
	CreateHorseFunc         func(ctx context.Context, req services.CreateHorseRequest) (*models.Horse, error)
	GetHorseFunc            func(ctx context.Context, id string) (*models.Horse, error)
	ListHorsesFunc          func(ctx context.Context, filters models.HorseFilters) ([]models.Horse, error)
	UpdateHorseFunc         func(ctx context.Context, id string, req services.UpdateHorseRequest) (*models.Horse, error)
	DeleteHorseFunc         func(ctx context.Context, id string) error
	GetCustomValuesFunc     func(ctx context.Context, id string) ([]services.CustomValueDisplay, error)
	AddMedicalRecordFunc    func(ctx context.Context, horseID string, req services.CreateMedicalRecordRequest) (*models.MedicalRecord, error)
	ListMedicalRecordsFunc  func(ctx context.Context, horseID string) ([]models.MedicalRecord, error)
	DeleteMedicalRecordFunc func(ctx context.Context, horseID, recordID string) error
	AddVaccinationFunc      func(ctx context.Context, horseID string, req services.CreateVaccinationRequest) (*models.Vaccination, error)
	ListVaccinationsFunc    func(ctx context.Context, horseID string) ([]models.Vaccination, error)
	DeleteVaccinationFunc   func(ctx context.Context, horseID, recordID string) error
	AddTrainingNoteFunc     func(ctx context.Context, horseID string, req services.CreateTrainingNoteRequest) (*models.TrainingNote, error)
	ListTrainingNotesFunc   func(ctx context.Context, horseID string) ([]models.TrainingNote, error)
	DeleteTrainingNoteFunc  func(ctx context.Context, horseID, recordID string) error
}

var _ services.HorseService = (*MockHorseService)(nil)

func (m *MockHorseService) CreateHorse(ctx context.Context, req services.CreateHorseRequest) (*models.Horse, error) {
	if m.CreateHorseFunc != nil {
		return m.CreateHorseFunc(ctx, req)
	}
	return &models.Horse{ID: "h-1", Name: req.Name}, nil
}

func (m *MockHorseService) GetHorse(ctx context.Context, id string) (*models.Horse, error) {
	if m.GetHorseFunc != nil {
		return m.GetHorseFunc(ctx, id)
	}
	return nil, services.ErrHorseNotFound
}

func (m *MockHorseService) ListHorses(ctx context.Context, filters models.HorseFilters) ([]models.Horse, error) {
	if m.ListHorsesFunc != nil {
		return m.ListHorsesFunc(ctx, filters)
	}
	return nil, nil
}

func (m *MockHorseService) UpdateHorse(ctx context.Context, id string, req services.UpdateHorseRequest) (*models.Horse, error) {
	if m.UpdateHorseFunc != nil {
		return m.UpdateHorseFunc(ctx, id, req)
	}
	return nil, services.ErrHorseNotFound
}

func (m *MockHorseService) DeleteHorse(ctx context.Context, id string) error {
	if m.DeleteHorseFunc != nil {
		return m.DeleteHorseFunc(ctx, id)
	}
	return nil
}

func (m *MockHorseService) GetCustomValues(ctx context.Context, id string) ([]services.CustomValueDisplay, error) {
	if m.GetCustomValuesFunc != nil {
		return m.GetCustomValuesFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockHorseService) AddMedicalRecord(ctx context.Context, horseID string, req services.CreateMedicalRecordRequest) (*models.MedicalRecord, error) {
	if m.AddMedicalRecordFunc != nil {
		return m.AddMedicalRecordFunc(ctx, horseID, req)
	}
	return &models.MedicalRecord{ID: "m-1", HorseID: horseID, Diagnosis: req.Diagnosis}, nil
}

func (m *MockHorseService) ListMedicalRecords(ctx context.Context, horseID string) ([]models.MedicalRecord, error) {
	if m.ListMedicalRecordsFunc != nil {
		return m.ListMedicalRecordsFunc(ctx, horseID)
	}
	return nil, nil
}

func (m *MockHorseService) DeleteMedicalRecord(ctx context.Context, horseID, recordID string) error {
	if m.DeleteMedicalRecordFunc != nil {
		return m.DeleteMedicalRecordFunc(ctx, horseID, recordID)
	}
	return nil
}

func (m *MockHorseService) AddVaccination(ctx context.Context, horseID string, req services.CreateVaccinationRequest) (*models.Vaccination, error) {
	if m.AddVaccinationFunc != nil {
		return m.AddVaccinationFunc(ctx, horseID, req)
	}
	return &models.Vaccination{ID: "v-1", HorseID: horseID, VaccineName: req.VaccineName}, nil
}

func (m *MockHorseService) ListVaccinations(ctx context.Context, horseID string) ([]models.Vaccination, error) {
	if m.ListVaccinationsFunc != nil {
		return m.ListVaccinationsFunc(ctx, horseID)
	}
	return nil, nil
}

func (m *MockHorseService) DeleteVaccination(ctx context.Context, horseID, recordID string) error {
	if m.DeleteVaccinationFunc != nil {
		return m.DeleteVaccinationFunc(ctx, horseID, recordID)
	}
	return nil
}

func (m *MockHorseService) AddTrainingNote(ctx context.Context, horseID string, req services.CreateTrainingNoteRequest) (*models.TrainingNote, error) {
	if m.AddTrainingNoteFunc != nil {
		return m.AddTrainingNoteFunc(ctx, horseID, req)
	}
	return &models.TrainingNote{ID: "t-1", HorseID: horseID, Activity: req.Activity}, nil
}

func (m *MockHorseService) ListTrainingNotes(ctx context.Context, horseID string) ([]models.TrainingNote, error) {
	if m.ListTrainingNotesFunc != nil {
		return m.ListTrainingNotesFunc(ctx, horseID)
	}
	return nil, nil
}

func (m *MockHorseService) DeleteTrainingNote(ctx context.Context, horseID, recordID string) error {
	if m.DeleteTrainingNoteFunc != nil {
		return m.DeleteTrainingNoteFunc(ctx, horseID, recordID)
	}
	return nil
}

type MockLessonService struct {
	CreateLessonFunc   func(ctx context.Context, req services.CreateLessonRequest) (*models.Lesson, error)
	GetLessonFunc      func(ctx context.Context, id string) (*models.Lesson, error)
	ListLessonsFunc    func(ctx context.Context, filters models.LessonFilters) ([]models.Lesson, error)
	UpdateLessonFunc   func(ctx context.Context, id string, req services.UpdateLessonRequest) (*models.Lesson, error)
	CancelLessonFunc   func(ctx context.Context, id string) (*models.Lesson, error)
	CompleteLessonFunc func(ctx context.Context, id string) (*models.Lesson, error)
	DeleteLessonFunc   func(ctx context.Context, id string) error
}

var _ services.LessonService = (*MockLessonService)(nil)

func (m *MockLessonService) CreateLesson(ctx context.Context, req services.CreateLessonRequest) (*models.Lesson, error) {
	if m.CreateLessonFunc != nil {
		return m.CreateLessonFunc(ctx, req)
	}
	return &models.Lesson{ID: "l-1", TrainerID: req.TrainerID}, nil
}

func (m *MockLessonService) GetLesson(ctx context.Context, id string) (*models.Lesson, error) {
	if m.GetLessonFunc != nil {
		return m.GetLessonFunc(ctx, id)
	}
	return nil, services.ErrLessonNotFound
}

func (m *MockLessonService) ListLessons(ctx context.Context, filters models.LessonFilters) ([]models.Lesson, error) {
	if m.ListLessonsFunc != nil {
		return m.ListLessonsFunc(ctx, filters)
	}
	return nil, nil
}

func (m *MockLessonService) UpdateLesson(ctx context.Context, id string, req services.UpdateLessonRequest) (*models.Lesson, error) {
	if m.UpdateLessonFunc != nil {
		return m.UpdateLessonFunc(ctx, id, req)
	}
	return nil, services.ErrLessonNotFound
}

func (m *MockLessonService) CancelLesson(ctx context.Context, id string) (*models.Lesson, error) {
	if m.CancelLessonFunc != nil {
		return m.CancelLessonFunc(ctx, id)
	}
	return &models.Lesson{ID: id, Status: models.LessonStatusCancelled}, nil
}

func (m *MockLessonService) CompleteLesson(ctx context.Context, id string) (*models.Lesson, error) {
	if m.CompleteLessonFunc != nil {
		return m.CompleteLessonFunc(ctx, id)
	}
	return &models.Lesson{ID: id, Status: models.LessonStatusCompleted}, nil
}

func (m *MockLessonService) DeleteLesson(ctx context.Context, id string) error {
	if m.DeleteLessonFunc != nil {
		return m.DeleteLessonFunc(ctx, id)
	}
	return nil
}

type MockCustomFieldService struct {
	CreateFieldFunc func(ctx context.Context, req services.CreateCustomFieldRequest) (*models.CustomFieldDefinition, error)
	GetFieldFunc    func(ctx context.Context, id string) (*models.CustomFieldDefinition, error)
	ListFieldsFunc  func(ctx context.Context) ([]models.CustomFieldDefinition, error)
	UpdateFieldFunc func(ctx context.Context, id string, req services.UpdateCustomFieldRequest) (*models.CustomFieldDefinition, error)
	DeleteFieldFunc func(ctx context.Context, id string) error
}

var _ services.CustomFieldService = (*MockCustomFieldService)(nil)

func (m *MockCustomFieldService) CreateField(ctx context.Context, req services.CreateCustomFieldRequest) (*models.CustomFieldDefinition, error) {
	if m.CreateFieldFunc != nil {
		return m.CreateFieldFunc(ctx, req)
	}
	return &models.CustomFieldDefinition{ID: "f-1", Label: req.Label}, nil
}

func (m *MockCustomFieldService) GetField(ctx context.Context, id string) (*models.CustomFieldDefinition, error) {
	if m.GetFieldFunc != nil {
		return m.GetFieldFunc(ctx, id)
	}
	return nil, services.ErrCustomFieldNotFound
}

func (m *MockCustomFieldService) ListFields(ctx context.Context) ([]models.CustomFieldDefinition, error) {
	if m.ListFieldsFunc != nil {
		return m.ListFieldsFunc(ctx)
	}
	return nil, nil
}

func (m *MockCustomFieldService) UpdateField(ctx context.Context, id string, req services.UpdateCustomFieldRequest) (*models.CustomFieldDefinition, error) {
	if m.UpdateFieldFunc != nil {
		return m.UpdateFieldFunc(ctx, id, req)
	}
	return nil, services.ErrCustomFieldNotFound
}

func (m *MockCustomFieldService) DeleteField(ctx context.Context, id string) error {
	if m.DeleteFieldFunc != nil {
		return m.DeleteFieldFunc(ctx, id)
	}
	return nil
}

type MockDashboardService struct {
	GetStatsFunc func(ctx context.Context, asOf *time.Time) (*models.DashboardStats, error)
}

func (m *MockDashboardService) GetStats(ctx context.Context, asOf *time.Time) (*models.DashboardStats, error) {
	if m.GetStatsFunc != nil {
		return m.GetStatsFunc(ctx, asOf)
	}
	return &models.DashboardStats{}, nil
}

type MockMigrationService struct {
	MigrateFunc func(ctx context.Context) (*services.MigrationResult, error)
}

func (m *MockMigrationService) Migrate(ctx context.Context) (*services.MigrationResult, error) {
	if m.MigrateFunc != nil {
		return m.MigrateFunc(ctx)
	}
	return &services.MigrationResult{}, nil
}

type MockAuthService struct {
	LoginFunc           func(req services.LoginRequest) (*services.SessionResponse, error)
	ValidateSessionFunc func(token string) (*services.SessionResponse, error)
}

func (m *MockAuthService) Login(req services.LoginRequest) (*services.SessionResponse, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(req)
	}
	return nil, services.ErrInvalidPassword
}

func (m *MockAuthService) ValidateSession(token string) (*services.SessionResponse, error) {
	if m.ValidateSessionFunc != nil {
		return m.ValidateSessionFunc(token)
	}
	return nil, services.ErrInvalidSession
}

type MockTrainerService struct {
	CreateTrainerFunc func(ctx context.Context, req services.CreateTrainerRequest) (*models.Trainer, error)
	GetTrainerFunc    func(ctx context.Context, id string) (*models.Trainer, error)
	ListTrainersFunc  func(ctx context.Context) ([]models.Trainer, error)
	UpdateTrainerFunc func(ctx context.Context, id string, req services.UpdateTrainerRequest) (*models.Trainer, error)
	DeleteTrainerFunc func(ctx context.Context, id string) error
}

var _ services.TrainerService = (*MockTrainerService)(nil)

func (m *MockTrainerService) CreateTrainer(ctx context.Context, req services.CreateTrainerRequest) (*models.Trainer, error) {
	if m.CreateTrainerFunc != nil {
		return m.CreateTrainerFunc(ctx, req)
	}
	return &models.Trainer{ID: "t-1", Name: req.Name, Email: req.Email}, nil
}

func (m *MockTrainerService) GetTrainer(ctx context.Context, id string) (*models.Trainer, error) {
	if m.GetTrainerFunc != nil {
		return m.GetTrainerFunc(ctx, id)
	}
	return nil, services.ErrTrainerNotFound
}

func (m *MockTrainerService) ListTrainers(ctx context.Context) ([]models.Trainer, error) {
	if m.ListTrainersFunc != nil {
		return m.ListTrainersFunc(ctx)
	}
	return nil, nil
}

func (m *MockTrainerService) UpdateTrainer(ctx context.Context, id string, req services.UpdateTrainerRequest) (*models.Trainer, error) {
	if m.UpdateTrainerFunc != nil {
		return m.UpdateTrainerFunc(ctx, id, req)
	}
	return nil, services.ErrTrainerNotFound
}

func (m *MockTrainerService) DeleteTrainer(ctx context.Context, id string) error {
	if m.DeleteTrainerFunc != nil {
		return m.DeleteTrainerFunc(ctx, id)
	}
	return nil
}
