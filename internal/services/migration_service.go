package services

import (
	"context"
	"fmt"
	"time"
)

// SchemaApplier applies the embedded schema; database.ApplySchema bound to a
// pool satisfies it.
type SchemaApplier func(ctx context.Context) error

// MigrationResult DTO
type MigrationResult struct {
	Message   string    `json:"message"`
	AppliedAt time.Time `json:"applied_at"`
}

// MigrationService creates the tables on demand. Applying twice is harmless.
type MigrationService interface {
	Migrate(ctx context.Context) (*MigrationResult, error)
}

type migrationService struct {
	apply SchemaApplier
}

func NewMigrationService(apply SchemaApplier) MigrationService {
	return &migrationService{apply: apply}
}

func (s *migrationService) Migrate(ctx context.Context) (*MigrationResult, error) {
	if err := s.apply(ctx); err != nil {
		return nil, fmt.Errorf("%w: applying schema: %v", ErrStorage, err)
	}
	return &MigrationResult{Message: "Database schema is up to date", AppliedAt: time.Now().UTC()}, nil
}
