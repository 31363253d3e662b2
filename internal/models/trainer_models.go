package models

import (
	"time"

	"github.com/lib/pq"
)

// Trainer gives lessons. Specialties keep their input order.
type Trainer struct {
	ID          string         `json:"id" db:"id"`
	Name        string         `json:"name" db:"name"`
	Email       string         `json:"email" db:"email"`
	Phone       string         `json:"phone" db:"phone"`
	Specialties pq.StringArray `json:"specialties" db:"specialties"`
	CreatedAt   time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at" db:"updated_at"`
}
