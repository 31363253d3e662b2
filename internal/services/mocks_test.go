package services

import (
	"context"

	"stable_backend/internal/models"
	"stable_backend/internal/repositories"
)

type MockHorseRepository struct {
	CreateHorseFunc  func(ctx context.Context, horse *models.Horse) error
	GetHorseByIDFunc func(ctx context.Context, id string) (*models.Horse, error)
	GetHorsesFunc    func(ctx context.Context, filters models.HorseFilters) ([]models.Horse, error)
	UpdateHorseFunc  func(ctx context.Context, horse *models.Horse) error
	DeleteHorseFunc  func(ctx context.Context, id string) error
}

var _ repositories.HorseRepository = (*MockHorseRepository)(nil)

func (m *MockHorseRepository) CreateHorse(ctx context.Context, _ repositories.SQLExecutor, horse *models.Horse) error {
	if m.CreateHorseFunc != nil {
		return m.CreateHorseFunc(ctx, horse)
	}
	horse.ID = "generated-horse"
	return nil
}

func (m *MockHorseRepository) GetHorseByID(ctx context.Context, id string) (*models.Horse, error) {
	if m.GetHorseByIDFunc != nil {
		return m.GetHorseByIDFunc(ctx, id)
	}
	return nil, repositories.ErrNotFound
}

func (m *MockHorseRepository) GetHorses(ctx context.Context, filters models.HorseFilters) ([]models.Horse, error) {
	if m.GetHorsesFunc != nil {
		return m.GetHorsesFunc(ctx, filters)
	}
	return []models.Horse{}, nil
}

func (m *MockHorseRepository) UpdateHorse(ctx context.Context, _ repositories.SQLExecutor, horse *models.Horse) error {
	if m.UpdateHorseFunc != nil {
		return m.UpdateHorseFunc(ctx, horse)
	}
	return nil
}

func (m *MockHorseRepository) DeleteHorse(ctx context.Context, _ repositories.SQLExecutor, id string) error {
	if m.DeleteHorseFunc != nil {
		return m.DeleteHorseFunc(ctx, id)
	}
	return nil
}

type MockHorseRecordRepository struct {
	CreateMedicalRecordFunc func(ctx context.Context, record *models.MedicalRecord) error
	GetMedicalRecordsFunc   func(ctx context.Context, horseIDs []string) ([]models.MedicalRecord, error)
	DeleteMedicalRecordFunc func(ctx context.Context, horseID, id string) error
	CreateVaccinationFunc   func(ctx context.Context, v *models.Vaccination) error
	GetVaccinationsFunc     func(ctx context.Context, horseIDs []string) ([]models.Vaccination, error)
	DeleteVaccinationFunc   func(ctx context.Context, horseID, id string) error
	CreateTrainingNoteFunc  func(ctx context.Context, note *models.TrainingNote) error
	GetTrainingNotesFunc    func(ctx context.Context, horseIDs []string) ([]models.TrainingNote, error)
	DeleteTrainingNoteFunc  func(ctx context.Context, horseID, id string) error
}

var _ repositories.HorseRecordRepository = (*MockHorseRecordRepository)(nil)

func (m *MockHorseRecordRepository) CreateMedicalRecord(ctx context.Context, _ repositories.SQLExecutor, record *models.MedicalRecord) error {
	if m.CreateMedicalRecordFunc != nil {
		return m.CreateMedicalRecordFunc(ctx, record)
	}
	return nil
}

func (m *MockHorseRecordRepository) GetMedicalRecordsByHorseIDs(ctx context.Context, horseIDs []string) ([]models.MedicalRecord, error) {
	if m.GetMedicalRecordsFunc != nil {
		return m.GetMedicalRecordsFunc(ctx, horseIDs)
	}
	return []models.MedicalRecord{}, nil
}

func (m *MockHorseRecordRepository) DeleteMedicalRecord(ctx context.Context, _ repositories.SQLExecutor, horseID, id string) error {
	if m.DeleteMedicalRecordFunc != nil {
		return m.DeleteMedicalRecordFunc(ctx, horseID, id)
	}
	return nil
}

func (m *MockHorseRecordRepository) CreateVaccination(ctx context.Context, _ repositories.SQLExecutor, v *models.Vaccination) error {
	if m.CreateVaccinationFunc != nil {
		return m.CreateVaccinationFunc(ctx, v)
	}
	return nil
}

func (m *MockHorseRecordRepository) GetVaccinationsByHorseIDs(ctx context.Context, horseIDs []string) ([]models.Vaccination, error) {
	if m.GetVaccinationsFunc != nil {
		return m.GetVaccinationsFunc(ctx, horseIDs)
	}
	return []models.Vaccination{}, nil
}

func (m *MockHorseRecordRepository) DeleteVaccination(ctx context.Context, _ repositories.SQLExecutor, horseID, id string) error {
	if m.DeleteVaccinationFunc != nil {
		return m.DeleteVaccinationFunc(ctx, horseID, id)
	}
	return nil
}

func (m *MockHorseRecordRepository) CreateTrainingNote(ctx context.Context, _ repositories.SQLExecutor, note *models.TrainingNote) error {
	if m.CreateTrainingNoteFunc != nil {
		return m.CreateTrainingNoteFunc(ctx, note)
	}
	return nil
}

func (m *MockHorseRecordRepository) GetTrainingNotesByHorseIDs(ctx context.Context, horseIDs []string) ([]models.TrainingNote, error) {
	if m.GetTrainingNotesFunc != nil {
		return m.GetTrainingNotesFunc(ctx, horseIDs)
	}
	return []models.TrainingNote{}, nil
}

func (m *MockHorseRecordRepository) DeleteTrainingNote(ctx context.Context, _ repositories.SQLExecutor, horseID, id string) error {
	if m.DeleteTrainingNoteFunc != nil {
		return m.DeleteTrainingNoteFunc(ctx, horseID, id)
	}
	return nil
}

type MockTrainerRepository struct {
	CreateTrainerFunc  func(ctx context.Context, trainer *models.Trainer) error
	GetTrainerByIDFunc func(ctx context.Context, id string) (*models.Trainer, error)
	GetTrainersFunc    func(ctx context.Context) ([]models.Trainer, error)
	UpdateTrainerFunc  func(ctx context.Context, trainer *models.Trainer) error
	DeleteTrainerFunc  func(ctx context.Context, id string) error
}

var _ repositories.TrainerRepository = (*MockTrainerRepository)(nil)

func (m *MockTrainerRepository) CreateTrainer(ctx context.Context, _ repositories.SQLExecutor, trainer *models.Trainer) error {
	if m.CreateTrainerFunc != nil {
		return m.CreateTrainerFunc(ctx, trainer)
	}
	trainer.ID = "generated-trainer"
	return nil
}

func (m *MockTrainerRepository) GetTrainerByID(ctx context.Context, id string) (*models.Trainer, error) {
	if m.GetTrainerByIDFunc != nil {
		return m.GetTrainerByIDFunc(ctx, id)
	}
	return nil, repositories.ErrNotFound
}

func (m *MockTrainerRepository) GetTrainers(ctx context.Context) ([]models.Trainer, error) {
	if m.GetTrainersFunc != nil {
		return m.GetTrainersFunc(ctx)
	}
	return []models.Trainer{}, nil
}

func (m *MockTrainerRepository) UpdateTrainer(ctx context.Context, _ repositories.SQLExecutor, trainer *models.Trainer) error {
	if m.UpdateTrainerFunc != nil {
		return m.UpdateTrainerFunc(ctx, trainer)
	}
	return nil
}

func (m *MockTrainerRepository) DeleteTrainer(ctx context.Context, _ repositories.SQLExecutor, id string) error {
	if m.DeleteTrainerFunc != nil {
		return m.DeleteTrainerFunc(ctx, id)
	}
	return nil
}

type MockLessonRepository struct {
	CreateLessonFunc     func(ctx context.Context, lesson *models.Lesson) error
	GetLessonByIDFunc    func(ctx context.Context, id string) (*models.Lesson, error)
	GetLessonsFunc       func(ctx context.Context, filters models.LessonFilters) ([]models.Lesson, error)
	UpdateLessonFunc     func(ctx context.Context, lesson *models.Lesson) error
	TransitionStatusFunc func(ctx context.Context, id, from, to string) error
	DeleteLessonFunc     func(ctx context.Context, id string) error
}

var _ repositories.LessonRepository = (*MockLessonRepository)(nil)

func (m *MockLessonRepository) CreateLesson(ctx context.Context, _ repositories.SQLExecutor, lesson *models.Lesson) error {
	if m.CreateLessonFunc != nil {
		return m.CreateLessonFunc(ctx, lesson)
	}
	lesson.ID = "generated-lesson"
	return nil
}

func (m *MockLessonRepository) GetLessonByID(ctx context.Context, id string) (*models.Lesson, error) {
	if m.GetLessonByIDFunc != nil {
		return m.GetLessonByIDFunc(ctx, id)
	}
	return nil, repositories.ErrNotFound
}

func (m *MockLessonRepository) GetLessons(ctx context.Context, filters models.LessonFilters) ([]models.Lesson, error) {
	if m.GetLessonsFunc != nil {
		return m.GetLessonsFunc(ctx, filters)
	}
	return []models.Lesson{}, nil
}

func (m *MockLessonRepository) UpdateLesson(ctx context.Context, _ repositories.SQLExecutor, lesson *models.Lesson) error {
	if m.UpdateLessonFunc != nil {
		return m.UpdateLessonFunc(ctx, lesson)
	}
	return nil
}

func (m *MockLessonRepository) TransitionLessonStatus(ctx context.Context, _ repositories.SQLExecutor, id, from, to string) error {
	if m.TransitionStatusFunc != nil {
		return m.TransitionStatusFunc(ctx, id, from, to)
	}
	return nil
}

func (m *MockLessonRepository) DeleteLesson(ctx context.Context, _ repositories.SQLExecutor, id string) error {
	if m.DeleteLessonFunc != nil {
		return m.DeleteLessonFunc(ctx, id)
	}
	return nil
}

type MockCustomFieldRepository struct {
	CreateCustomFieldFunc  func(ctx context.Context, def *models.CustomFieldDefinition) error
	GetCustomFieldByIDFunc func(ctx context.Context, id string) (*models.CustomFieldDefinition, error)
	GetCustomFieldsFunc    func(ctx context.Context) ([]models.CustomFieldDefinition, error)
	ExistsWithKeyFunc      func(ctx context.Context, key, excludeID string) (bool, error)
	UpdateCustomFieldFunc  func(ctx context.Context, def *models.CustomFieldDefinition) error
	DeleteCustomFieldFunc  func(ctx context.Context, id string) error
}

var _ repositories.CustomFieldRepository = (*MockCustomFieldRepository)(nil)

func (m *MockCustomFieldRepository) CreateCustomField(ctx context.Context, _ repositories.SQLExecutor, def *models.CustomFieldDefinition) error {
	if m.CreateCustomFieldFunc != nil {
		return m.CreateCustomFieldFunc(ctx, def)
	}
	def.ID = "generated-field"
	return nil
}

func (m *MockCustomFieldRepository) GetCustomFieldByID(ctx context.Context, id string) (*models.CustomFieldDefinition, error) {
	if m.GetCustomFieldByIDFunc != nil {
		return m.GetCustomFieldByIDFunc(ctx, id)
	}
	return nil, repositories.ErrNotFound
}

func (m *MockCustomFieldRepository) GetCustomFields(ctx context.Context) ([]models.CustomFieldDefinition, error) {
	if m.GetCustomFieldsFunc != nil {
		return m.GetCustomFieldsFunc(ctx)
	}
	return []models.CustomFieldDefinition{}, nil
}

func (m *MockCustomFieldRepository) ExistsWithKey(ctx context.Context, key, excludeID string) (bool, error) {
	if m.ExistsWithKeyFunc != nil {
		return m.ExistsWithKeyFunc(ctx, key, excludeID)
	}
	return false, nil
}

func (m *MockCustomFieldRepository) UpdateCustomField(ctx context.Context, _ repositories.SQLExecutor, def *models.CustomFieldDefinition) error {
	if m.UpdateCustomFieldFunc != nil {
		return m.UpdateCustomFieldFunc(ctx, def)
	}
	return nil
}

func (m *MockCustomFieldRepository) DeleteCustomField(ctx context.Context, _ repositories.SQLExecutor, id string) error {
	if m.DeleteCustomFieldFunc != nil {
		return m.DeleteCustomFieldFunc(ctx, id)
	}
	return nil
}
