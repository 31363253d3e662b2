package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"stable_backend/internal/models"
)

const customFieldColumns = `id, label, key, field_type, options, required, placeholder, help_text,
	display_order, created_at, updated_at`

// CustomFieldRepository defines the persistence operations for custom horse
// field definitions.
type CustomFieldRepository interface {
	CreateCustomField(ctx context.Context, executor SQLExecutor, def *models.CustomFieldDefinition) error
	GetCustomFieldByID(ctx context.Context, id string) (*models.CustomFieldDefinition, error)
	GetCustomFields(ctx context.Context) ([]models.CustomFieldDefinition, error)
	// ExistsWithKey reports whether a definition other than excludeID uses key.
	// An empty excludeID checks every definition.
	ExistsWithKey(ctx context.Context, key, excludeID string) (bool, error)
	UpdateCustomField(ctx context.Context, executor SQLExecutor, def *models.CustomFieldDefinition) error
	DeleteCustomField(ctx context.Context, executor SQLExecutor, id string) error
}

type customFieldRepository struct {
	db *sqlx.DB
}

// NewCustomFieldRepository creates a new instance of CustomFieldRepository.
func NewCustomFieldRepository(db *sqlx.DB) CustomFieldRepository {
	return &customFieldRepository{db: db}
}

func (r *customFieldRepository) CreateCustomField(ctx context.Context, executor SQLExecutor, def *models.CustomFieldDefinition) error {
	if def.ID == "" {
		def.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	def.CreatedAt = now
	def.UpdatedAt = now
	if def.Options == nil {
		def.Options = []string{}
	}

	query := `INSERT INTO horse_custom_fields (` + customFieldColumns + `)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := executor.ExecContext(ctx, query,
		def.ID, def.Label, def.Key, def.FieldType, def.Options, def.Required,
		def.Placeholder, def.HelpText, def.DisplayOrder, def.CreatedAt, def.UpdatedAt,
	)
	if err != nil {
		return mapWriteError(err, "creating custom field")
	}
	return nil
}

func (r *customFieldRepository) GetCustomFieldByID(ctx context.Context, id string) (*models.CustomFieldDefinition, error) {
	var def models.CustomFieldDefinition
	query := `SELECT ` + customFieldColumns + ` FROM horse_custom_fields WHERE id = $1`
	if err := sqlx.GetContext(ctx, r.db, &def, query, id); err != nil {
		return nil, mapReadError(err, fmt.Sprintf("getting custom field by ID %s", id))
	}
	return &def, nil
}

func (r *customFieldRepository) GetCustomFields(ctx context.Context) ([]models.CustomFieldDefinition, error) {
	defs := []models.CustomFieldDefinition{}
	query := `SELECT ` + customFieldColumns + ` FROM horse_custom_fields ORDER BY display_order ASC, label ASC`
	if err := sqlx.SelectContext(ctx, r.db, &defs, query); err != nil {
		return nil, fmt.Errorf("%w: querying custom fields: %v", ErrDatabaseError, err)
	}
	return defs, nil
}

func (r *customFieldRepository) ExistsWithKey(ctx context.Context, key, excludeID string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM horse_custom_fields WHERE key = $1 AND id <> $2)`
	if err := sqlx.GetContext(ctx, r.db, &exists, query, key, excludeID); err != nil {
		return false, fmt.Errorf("%w: checking custom field key %q: %v", ErrDatabaseError, key, err)
	}
	return exists, nil
}

func (r *customFieldRepository) UpdateCustomField(ctx context.Context, executor SQLExecutor, def *models.CustomFieldDefinition) error {
	def.UpdatedAt = time.Now().UTC()
	if def.Options == nil {
		def.Options = []string{}
	}
	query := `UPDATE horse_custom_fields SET
	            label = $1, key = $2, field_type = $3, options = $4, required = $5,
	            placeholder = $6, help_text = $7, display_order = $8, updated_at = $9
	          WHERE id = $10`
	result, err := executor.ExecContext(ctx, query,
		def.Label, def.Key, def.FieldType, def.Options, def.Required,
		def.Placeholder, def.HelpText, def.DisplayOrder, def.UpdatedAt, def.ID,
	)
	if err != nil {
		return mapWriteError(err, fmt.Sprintf("updating custom field ID %s", def.ID))
	}
	return expectAffected(result, fmt.Sprintf("updating custom field ID %s", def.ID))
}

// DeleteCustomField removes the definition only; values already stored on
// horses under its key are left in place.
func (r *customFieldRepository) DeleteCustomField(ctx context.Context, executor SQLExecutor, id string) error {
	result, err := executor.ExecContext(ctx, `DELETE FROM horse_custom_fields WHERE id = $1`, id)
	if err != nil {
		return mapWriteError(err, fmt.Sprintf("deleting custom field ID %s", id))
	}
	return expectAffected(result, fmt.Sprintf("deleting custom field ID %s", id))
}
