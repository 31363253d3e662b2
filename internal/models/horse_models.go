package models

import "time"

const (
	HorseStatusActive  = "active"
	HorseStatusInjured = "injured"
	HorseStatusRetired = "retired"
)

// IsValidHorseStatus reports whether s is one of the known horse statuses.
func IsValidHorseStatus(s string) bool {
	switch s {
	case HorseStatusActive, HorseStatusInjured, HorseStatusRetired:
		return true
	}
	return false
}

// Horse is a horse kept at the stable. Children are loaded separately and are
// deleted together with the horse.
type Horse struct {
	ID             string          `json:"id" db:"id"`
	Name           string          `json:"name" db:"name"`
	Breed          string          `json:"breed" db:"breed"`
	Age            int             `json:"age" db:"age"`
	Color          string          `json:"color" db:"color"`
	Owner          string          `json:"owner" db:"owner"`
	Status         string          `json:"status" db:"status"`
	StallNumber    *string         `json:"stall_number,omitempty" db:"stall_number"`
	CustomData     CustomData      `json:"custom_data" db:"custom_data"`
	MedicalRecords []MedicalRecord `json:"medical_records" db:"-"`
	Vaccinations   []Vaccination   `json:"vaccinations" db:"-"`
	TrainingNotes  []TrainingNote  `json:"training_notes" db:"-"`
	CreatedAt      time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at" db:"updated_at"`
}

// HorseFilters narrows a horse listing.
type HorseFilters struct {
	Status *string
}

type MedicalRecord struct {
	ID           string    `json:"id" db:"id"`
	HorseID      string    `json:"horse_id" db:"horse_id"`
	Date         Date      `json:"date" db:"date"`
	Diagnosis    string    `json:"diagnosis" db:"diagnosis"`
	Treatment    string    `json:"treatment" db:"treatment"`
	Veterinarian string    `json:"veterinarian" db:"veterinarian"`
	Notes        *string   `json:"notes,omitempty" db:"notes"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

type Vaccination struct {
	ID               string    `json:"id" db:"id"`
	HorseID          string    `json:"horse_id" db:"horse_id"`
	VaccineName      string    `json:"vaccine_name" db:"vaccine_name"`
	DateAdministered Date      `json:"date_administered" db:"date_administered"`
	NextDueDate      Date      `json:"next_due_date" db:"next_due_date"`
	Veterinarian     string    `json:"veterinarian" db:"veterinarian"`
	BatchNumber      *string   `json:"batch_number,omitempty" db:"batch_number"`
	CreatedAt        time.Time `json:"created_at" db:"created_at"`
}

const (
	PerformanceExcellent        = "excellent"
	PerformanceGood             = "good"
	PerformanceAverage          = "average"
	PerformanceNeedsImprovement = "needs improvement"
)

func IsValidPerformance(s string) bool {
	switch s {
	case PerformanceExcellent, PerformanceGood, PerformanceAverage, PerformanceNeedsImprovement:
		return true
	}
	return false
}

type TrainingNote struct {
	ID          string    `json:"id" db:"id"`
	HorseID     string    `json:"horse_id" db:"horse_id"`
	Date        Date      `json:"date" db:"date"`
	TrainerID   *string   `json:"trainer_id,omitempty" db:"trainer_id"`
	Activity    string    `json:"activity" db:"activity"`
	Duration    int       `json:"duration" db:"duration"` // minutes
	Notes       string    `json:"notes" db:"notes"`
	Performance string    `json:"performance" db:"performance"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}
