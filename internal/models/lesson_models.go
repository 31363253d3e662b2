package models

import "time"

const (
	LessonTypePrivate  = "private"
	LessonTypeGroup    = "group"
	LessonTypeTraining = "training"

	LessonStatusScheduled = "scheduled"
	LessonStatusCompleted = "completed"
	LessonStatusCancelled = "cancelled"
)

// Defaults filled in for group sessions, which have no single client or horse.
const (
	GroupClientName  = "Group Session"
	GroupClientEmail = "group@stable.com"
)

func IsValidLessonType(s string) bool {
	switch s {
	case LessonTypePrivate, LessonTypeGroup, LessonTypeTraining:
		return true
	}
	return false
}

func IsValidLessonStatus(s string) bool {
	switch s {
	case LessonStatusScheduled, LessonStatusCompleted, LessonStatusCancelled:
		return true
	}
	return false
}

// Lesson is a scheduled session. TrainerID and HorseID are plain references;
// the referenced rows may be deleted independently.
type Lesson struct {
	ID          string    `json:"id" db:"id"`
	TrainerID   string    `json:"trainer_id" db:"trainer_id"`
	HorseID     *string   `json:"horse_id" db:"horse_id"`
	ClientName  string    `json:"client_name" db:"client_name"`
	ClientEmail string    `json:"client_email" db:"client_email"`
	Date        Date      `json:"date" db:"date"`
	StartTime   string    `json:"start_time" db:"start_time"`
	EndTime     string    `json:"end_time" db:"end_time"`
	Duration    int       `json:"duration" db:"duration"` // minutes
	Type        string    `json:"type" db:"type"`
	Status      string    `json:"status" db:"status"`
	Price       float64   `json:"price" db:"price"`
	Notes       *string   `json:"notes,omitempty" db:"notes"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// LessonFilters narrows a lesson listing. Nil fields are ignored.
type LessonFilters struct {
	TrainerID *string
	HorseID   *string
	Status    *string
	Type      *string
	DateFrom  *Date
	DateTo    *Date
}
