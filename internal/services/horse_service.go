package services

import (
	"context"
	"errors"
	"strings"

	"stable_backend/internal/models"
	"stable_backend/internal/repositories"
	"stable_backend/pkg/utils"
)

// --- Horse DTOs ---
type CreateHorseRequest struct {
	Name        string                 `json:"name" binding:"required"`
	Breed       string                 `json:"breed"`
	Age         int                    `json:"age" binding:"gte=0"`
	Color       string                 `json:"color"`
	Owner       string                 `json:"owner"`
	Status      string                 `json:"status"`
	StallNumber *string                `json:"stall_number"`
	CustomData  map[string]interface{} `json:"custom_data"`
}

// UpdateHorseRequest is a partial update. Keys in CustomData are merged into
// the stored values; a null value removes the key.
type UpdateHorseRequest struct {
	Name        *string                `json:"name"`
	Breed       *string                `json:"breed"`
	Age         *int                   `json:"age" binding:"omitempty,gte=0"`
	Color       *string                `json:"color"`
	Owner       *string                `json:"owner"`
	Status      *string                `json:"status"`
	StallNumber *string                `json:"stall_number"`
	CustomData  map[string]interface{} `json:"custom_data"`
}

type CreateMedicalRecordRequest struct {
	Date         models.Date `json:"date"`
	Diagnosis    string      `json:"diagnosis" binding:"required"`
	Treatment    string      `json:"treatment"`
	Veterinarian string      `json:"veterinarian"`
	Notes        *string     `json:"notes"`
}

type CreateVaccinationRequest struct {
	VaccineName      string      `json:"vaccine_name" binding:"required"`
	DateAdministered models.Date `json:"date_administered"`
	NextDueDate      models.Date `json:"next_due_date"`
	Veterinarian     string      `json:"veterinarian"`
	BatchNumber      *string     `json:"batch_number"`
}

type CreateTrainingNoteRequest struct {
	Date        models.Date `json:"date"`
	TrainerID   *string     `json:"trainer_id"`
	Activity    string      `json:"activity" binding:"required"`
	Duration    int         `json:"duration" binding:"required,gt=0"`
	Notes       string      `json:"notes"`
	Performance string      `json:"performance"`
}

// --- HorseService Interface ---
type HorseService interface {
	CreateHorse(ctx context.Context, req CreateHorseRequest) (*models.Horse, error)
	GetHorse(ctx context.Context, id string) (*models.Horse, error)
	ListHorses(ctx context.Context, filters models.HorseFilters) ([]models.Horse, error)
	UpdateHorse(ctx context.Context, id string, req UpdateHorseRequest) (*models.Horse, error)
	DeleteHorse(ctx context.Context, id string) error
	GetCustomValues(ctx context.Context, id string) ([]CustomValueDisplay, error)

	AddMedicalRecord(ctx context.Context, horseID string, req CreateMedicalRecordRequest) (*models.MedicalRecord, error)
	ListMedicalRecords(ctx context.Context, horseID string) ([]models.MedicalRecord, error)
	DeleteMedicalRecord(ctx context.Context, horseID, recordID string) error

	AddVaccination(ctx context.Context, horseID string, req CreateVaccinationRequest) (*models.Vaccination, error)
	ListVaccinations(ctx context.Context, horseID string) ([]models.Vaccination, error)
	DeleteVaccination(ctx context.Context, horseID, recordID string) error

	AddTrainingNote(ctx context.Context, horseID string, req CreateTrainingNoteRequest) (*models.TrainingNote, error)
	ListTrainingNotes(ctx context.Context, horseID string) ([]models.TrainingNote, error)
	DeleteTrainingNote(ctx context.Context, horseID, recordID string) error
}

type horseService struct {
	horseRepo   repositories.HorseRepository
	recordRepo  repositories.HorseRecordRepository
	fieldRepo   repositories.CustomFieldRepository
	trainerRepo repositories.TrainerRepository
	formatter   *Formatter
	db          repositories.SQLExecutor
}

// NewHorseService creates a new instance of HorseService.
func NewHorseService(
	horseRepo repositories.HorseRepository,
	recordRepo repositories.HorseRecordRepository,
	fieldRepo repositories.CustomFieldRepository,
	trainerRepo repositories.TrainerRepository,
	formatter *Formatter,
	db repositories.SQLExecutor,
) HorseService {
	if formatter == nil {
		formatter = NewFormatter("")
	}
	return &horseService{
		horseRepo:   horseRepo,
		recordRepo:  recordRepo,
		fieldRepo:   fieldRepo,
		trainerRepo: trainerRepo,
		formatter:   formatter,
		db:          db,
	}
}

func validateHorse(h *models.Horse) error {
	if strings.TrimSpace(h.Name) == "" {
		return validationError("name cannot be empty")
	}
	if h.Age < 0 {
		return validationError("age cannot be negative")
	}
	if !models.IsValidHorseStatus(h.Status) {
		return validationError("invalid status %q", h.Status)
	}
	return nil
}

func (s *horseService) buildCustomData(ctx context.Context, incoming map[string]interface{}, existing models.CustomData) (models.CustomData, error) {
	defs, err := s.fieldRepo.GetCustomFields(ctx)
	if err != nil {
		return nil, storageError(err, nil)
	}
	return BuildCustomData(defs, incoming, existing)
}

func (s *horseService) CreateHorse(ctx context.Context, req CreateHorseRequest) (*models.Horse, error) {
	horse := &models.Horse{
		Name:        strings.TrimSpace(req.Name),
		Breed:       strings.TrimSpace(req.Breed),
		Age:         req.Age,
		Color:       strings.TrimSpace(req.Color),
		Owner:       strings.TrimSpace(req.Owner),
		Status:      strings.TrimSpace(req.Status),
		StallNumber: utils.NewNullString(utils.StringValue(req.StallNumber)),
	}
	if horse.Status == "" {
		horse.Status = models.HorseStatusActive
	}
	if err := validateHorse(horse); err != nil {
		return nil, err
	}

	customData, err := s.buildCustomData(ctx, req.CustomData, nil)
	if err != nil {
		return nil, err
	}
	horse.CustomData = customData

	if err := s.horseRepo.CreateHorse(ctx, s.db, horse); err != nil {
		return nil, storageError(err, nil)
	}
	horse.MedicalRecords = []models.MedicalRecord{}
	horse.Vaccinations = []models.Vaccination{}
	horse.TrainingNotes = []models.TrainingNote{}
	return horse, nil
}

func (s *horseService) getHorse(ctx context.Context, id string) (*models.Horse, error) {
	horse, err := s.horseRepo.GetHorseByID(ctx, id)
	if err != nil {
		return nil, storageError(err, ErrHorseNotFound)
	}
	return horse, nil
}

func (s *horseService) GetHorse(ctx context.Context, id string) (*models.Horse, error) {
	horse, err := s.getHorse(ctx, id)
	if err != nil {
		return nil, err
	}
	horses := []models.Horse{*horse}
	if err := s.attachRecords(ctx, horses); err != nil {
		return nil, err
	}
	return &horses[0], nil
}

func (s *horseService) ListHorses(ctx context.Context, filters models.HorseFilters) ([]models.Horse, error) {
	if filters.Status != nil && !models.IsValidHorseStatus(*filters.Status) {
		return nil, validationError("invalid status filter %q", *filters.Status)
	}
	horses, err := s.horseRepo.GetHorses(ctx, filters)
	if err != nil {
		return nil, storageError(err, nil)
	}
	if err := s.attachRecords(ctx, horses); err != nil {
		return nil, err
	}
	return horses, nil
}

// attachRecords loads the children of all horses with one query per child type.
func (s *horseService) attachRecords(ctx context.Context, horses []models.Horse) error {
	if len(horses) == 0 {
		return nil
	}
	ids := make([]string, len(horses))
	index := make(map[string]int, len(horses))
	for i := range horses {
		ids[i] = horses[i].ID
		index[horses[i].ID] = i
		horses[i].MedicalRecords = []models.MedicalRecord{}
		horses[i].Vaccinations = []models.Vaccination{}
		horses[i].TrainingNotes = []models.TrainingNote{}
	}

	medical, err := s.recordRepo.GetMedicalRecordsByHorseIDs(ctx, ids)
	if err != nil {
		return storageError(err, nil)
	}
	for _, r := range medical {
		if i, ok := index[r.HorseID]; ok {
			horses[i].MedicalRecords = append(horses[i].MedicalRecords, r)
		}
	}

	vaccinations, err := s.recordRepo.GetVaccinationsByHorseIDs(ctx, ids)
	if err != nil {
		return storageError(err, nil)
	}
	for _, v := range vaccinations {
		if i, ok := index[v.HorseID]; ok {
			horses[i].Vaccinations = append(horses[i].Vaccinations, v)
		}
	}

	notes, err := s.recordRepo.GetTrainingNotesByHorseIDs(ctx, ids)
	if err != nil {
		return storageError(err, nil)
	}
	for _, n := range notes {
		if i, ok := index[n.HorseID]; ok {
			horses[i].TrainingNotes = append(horses[i].TrainingNotes, n)
		}
	}
	return nil
}

func (s *horseService) UpdateHorse(ctx context.Context, id string, req UpdateHorseRequest) (*models.Horse, error) {
	horse, err := s.getHorse(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		horse.Name = strings.TrimSpace(*req.Name)
	}
	if req.Breed != nil {
		horse.Breed = strings.TrimSpace(*req.Breed)
	}
	if req.Age != nil {
		horse.Age = *req.Age
	}
	if req.Color != nil {
		horse.Color = strings.TrimSpace(*req.Color)
	}
	if req.Owner != nil {
		horse.Owner = strings.TrimSpace(*req.Owner)
	}
	if req.Status != nil {
		horse.Status = strings.TrimSpace(*req.Status)
	}
	if req.StallNumber != nil {
		horse.StallNumber = utils.NewNullString(*req.StallNumber)
	}
	if err := validateHorse(horse); err != nil {
		return nil, err
	}

	if req.CustomData != nil {
		customData, err := s.buildCustomData(ctx, req.CustomData, horse.CustomData)
		if err != nil {
			return nil, err
		}
		horse.CustomData = customData
	}

	if err := s.horseRepo.UpdateHorse(ctx, s.db, horse); err != nil {
		return nil, storageError(err, ErrHorseNotFound)
	}
	return s.GetHorse(ctx, id)
}

// DeleteHorse removes the horse and its child records. Lessons that reference
// the horse are kept.
func (s *horseService) DeleteHorse(ctx context.Context, id string) error {
	if err := s.horseRepo.DeleteHorse(ctx, s.db, id); err != nil {
		return storageError(err, ErrHorseNotFound)
	}
	return nil
}

func (s *horseService) GetCustomValues(ctx context.Context, id string) ([]CustomValueDisplay, error) {
	horse, err := s.getHorse(ctx, id)
	if err != nil {
		return nil, err
	}
	defs, err := s.fieldRepo.GetCustomFields(ctx)
	if err != nil {
		return nil, storageError(err, nil)
	}
	return s.formatter.DisplayCustomData(defs, horse.CustomData), nil
}

// childWriteError reports a foreign key failure on a child insert as a missing
// horse: the horse was deleted after the existence check.
func childWriteError(err error) error {
	if errors.Is(err, repositories.ErrReferenceViolation) {
		return ErrHorseNotFound
	}
	return storageError(err, nil)
}

func (s *horseService) AddMedicalRecord(ctx context.Context, horseID string, req CreateMedicalRecordRequest) (*models.MedicalRecord, error) {
	if _, err := s.getHorse(ctx, horseID); err != nil {
		return nil, err
	}
	if req.Date.IsZero() {
		return nil, validationError("date is required")
	}
	if strings.TrimSpace(req.Diagnosis) == "" {
		return nil, validationError("diagnosis cannot be empty")
	}
	record := &models.MedicalRecord{
		HorseID:      horseID,
		Date:         req.Date,
		Diagnosis:    strings.TrimSpace(req.Diagnosis),
		Treatment:    strings.TrimSpace(req.Treatment),
		Veterinarian: strings.TrimSpace(req.Veterinarian),
		Notes:        utils.NewNullString(utils.StringValue(req.Notes)),
	}
	if err := s.recordRepo.CreateMedicalRecord(ctx, s.db, record); err != nil {
		return nil, childWriteError(err)
	}
	return record, nil
}

func (s *horseService) ListMedicalRecords(ctx context.Context, horseID string) ([]models.MedicalRecord, error) {
	if _, err := s.getHorse(ctx, horseID); err != nil {
		return nil, err
	}
	records, err := s.recordRepo.GetMedicalRecordsByHorseIDs(ctx, []string{horseID})
	if err != nil {
		return nil, storageError(err, nil)
	}
	return records, nil
}

func (s *horseService) DeleteMedicalRecord(ctx context.Context, horseID, recordID string) error {
	if err := s.recordRepo.DeleteMedicalRecord(ctx, s.db, horseID, recordID); err != nil {
		return storageError(err, ErrRecordNotFound)
	}
	return nil
}

func (s *horseService) AddVaccination(ctx context.Context, horseID string, req CreateVaccinationRequest) (*models.Vaccination, error) {
	if _, err := s.getHorse(ctx, horseID); err != nil {
		return nil, err
	}
	if strings.TrimSpace(req.VaccineName) == "" {
		return nil, validationError("vaccine name cannot be empty")
	}
	if req.DateAdministered.IsZero() {
		return nil, validationError("date administered is required")
	}
	if req.NextDueDate.IsZero() {
		return nil, validationError("next due date is required")
	}
	if req.NextDueDate.Before(req.DateAdministered.Time) {
		return nil, validationError("next due date cannot be before the date administered")
	}
	vaccination := &models.Vaccination{
		HorseID:          horseID,
		VaccineName:      strings.TrimSpace(req.VaccineName),
		DateAdministered: req.DateAdministered,
		NextDueDate:      req.NextDueDate,
		Veterinarian:     strings.TrimSpace(req.Veterinarian),
		BatchNumber:      utils.NewNullString(utils.StringValue(req.BatchNumber)),
	}
	if err := s.recordRepo.CreateVaccination(ctx, s.db, vaccination); err != nil {
		return nil, childWriteError(err)
	}
	return vaccination, nil
}

func (s *horseService) ListVaccinations(ctx context.Context, horseID string) ([]models.Vaccination, error) {
	if _, err := s.getHorse(ctx, horseID); err != nil {
		return nil, err
	}
	vaccinations, err := s.recordRepo.GetVaccinationsByHorseIDs(ctx, []string{horseID})
	if err != nil {
		return nil, storageError(err, nil)
	}
	return vaccinations, nil
}

func (s *horseService) DeleteVaccination(ctx context.Context, horseID, recordID string) error {
	if err := s.recordRepo.DeleteVaccination(ctx, s.db, horseID, recordID); err != nil {
		return storageError(err, ErrRecordNotFound)
	}
	return nil
}

func (s *horseService) AddTrainingNote(ctx context.Context, horseID string, req CreateTrainingNoteRequest) (*models.TrainingNote, error) {
	if _, err := s.getHorse(ctx, horseID); err != nil {
		return nil, err
	}
	if req.Date.IsZero() {
		return nil, validationError("date is required")
	}
	if strings.TrimSpace(req.Activity) == "" {
		return nil, validationError("activity cannot be empty")
	}
	if req.Duration <= 0 {
		return nil, validationError("duration must be positive")
	}
	performance := strings.TrimSpace(req.Performance)
	if performance == "" {
		performance = models.PerformanceGood
	}
	if !models.IsValidPerformance(performance) {
		return nil, validationError("invalid performance %q", performance)
	}

	trainerID := utils.NewNullString(utils.StringValue(req.TrainerID))
	if trainerID != nil {
		if _, err := s.trainerRepo.GetTrainerByID(ctx, *trainerID); err != nil {
			return nil, storageError(err, ErrTrainerNotFound)
		}
	}

	note := &models.TrainingNote{
		HorseID:     horseID,
		Date:        req.Date,
		TrainerID:   trainerID,
		Activity:    strings.TrimSpace(req.Activity),
		Duration:    req.Duration,
		Notes:       strings.TrimSpace(req.Notes),
		Performance: performance,
	}
	if err := s.recordRepo.CreateTrainingNote(ctx, s.db, note); err != nil {
		return nil, childWriteError(err)
	}
	return note, nil
}

func (s *horseService) ListTrainingNotes(ctx context.Context, horseID string) ([]models.TrainingNote, error) {
	if _, err := s.getHorse(ctx, horseID); err != nil {
		return nil, err
	}
	notes, err := s.recordRepo.GetTrainingNotesByHorseIDs(ctx, []string{horseID})
	if err != nil {
		return nil, storageError(err, nil)
	}
	return notes, nil
}

func (s *horseService) DeleteTrainingNote(ctx context.Context, horseID, recordID string) error {
	if err := s.recordRepo.DeleteTrainingNote(ctx, s.db, horseID, recordID); err != nil {
		return storageError(err, ErrRecordNotFound)
	}
	return nil
}
