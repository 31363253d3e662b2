package services

import (
	"context"
	"errors"
	"strings"

	"stable_backend/internal/models"
	"stable_backend/internal/repositories"
	"stable_backend/pkg/utils"
)

// --- Custom Field DTOs ---
type CreateCustomFieldRequest struct {
	Label        string   `json:"label" binding:"required"`
	Key          *string  `json:"key"`
	FieldType    string   `json:"field_type" binding:"required"`
	Options      []string `json:"options"`
	Required     bool     `json:"required"`
	Placeholder  *string  `json:"placeholder"`
	HelpText     *string  `json:"help_text"`
	DisplayOrder int      `json:"display_order"`
}

type UpdateCustomFieldRequest struct {
	Label        *string   `json:"label"`
	Key          *string   `json:"key"`
	FieldType    *string   `json:"field_type"`
	Options      *[]string `json:"options"`
	Required     *bool     `json:"required"`
	Placeholder  *string   `json:"placeholder"`
	HelpText     *string   `json:"help_text"`
	DisplayOrder *int      `json:"display_order"`
}

// --- CustomFieldService Interface ---
type CustomFieldService interface {
	CreateField(ctx context.Context, req CreateCustomFieldRequest) (*models.CustomFieldDefinition, error)
	GetField(ctx context.Context, id string) (*models.CustomFieldDefinition, error)
	ListFields(ctx context.Context) ([]models.CustomFieldDefinition, error)
	UpdateField(ctx context.Context, id string, req UpdateCustomFieldRequest) (*models.CustomFieldDefinition, error)
	DeleteField(ctx context.Context, id string) error
}

type customFieldService struct {
	repo repositories.CustomFieldRepository
	db   repositories.SQLExecutor
}

// NewCustomFieldService creates a new instance of CustomFieldService.
func NewCustomFieldService(repo repositories.CustomFieldRepository, db repositories.SQLExecutor) CustomFieldService {
	return &customFieldService{repo: repo, db: db}
}

func validateDefinition(def *models.CustomFieldDefinition) error {
	if strings.TrimSpace(def.Label) == "" {
		return validationError("label cannot be empty")
	}
	if strings.TrimSpace(def.Key) == "" {
		return validationError("key cannot be empty")
	}
	if !models.IsValidFieldType(def.FieldType) {
		return validationError("invalid field type %q", def.FieldType)
	}
	if def.FieldType == models.FieldTypeSelect && len(def.Options) == 0 {
		return validationError("select fields need at least one option")
	}
	return nil
}

// ensureKeyFree checks key uniqueness before writing. The unique constraint
// still backs it when two writers race.
func (s *customFieldService) ensureKeyFree(ctx context.Context, key, excludeID string) error {
	exists, err := s.repo.ExistsWithKey(ctx, key, excludeID)
	if err != nil {
		return storageError(err, nil)
	}
	if exists {
		return ErrCustomFieldKeyExists
	}
	return nil
}

func customFieldWriteError(err error) error {
	if errors.Is(err, repositories.ErrDuplicateKey) {
		return ErrCustomFieldKeyExists
	}
	return storageError(err, ErrCustomFieldNotFound)
}

func (s *customFieldService) CreateField(ctx context.Context, req CreateCustomFieldRequest) (*models.CustomFieldDefinition, error) {
	def := &models.CustomFieldDefinition{
		Label:        strings.TrimSpace(req.Label),
		FieldType:    models.FieldType(strings.ToUpper(strings.TrimSpace(req.FieldType))),
		Options:      cleanOptions(req.Options),
		Required:     req.Required,
		Placeholder:  utils.NewNullString(utils.StringValue(req.Placeholder)),
		HelpText:     utils.NewNullString(utils.StringValue(req.HelpText)),
		DisplayOrder: req.DisplayOrder,
	}
	if req.Key != nil && strings.TrimSpace(*req.Key) != "" {
		def.Key = strings.TrimSpace(*req.Key)
	} else {
		def.Key = utils.Slugify(def.Label)
	}

	if err := validateDefinition(def); err != nil {
		return nil, err
	}
	if err := s.ensureKeyFree(ctx, def.Key, ""); err != nil {
		return nil, err
	}
	if err := s.repo.CreateCustomField(ctx, s.db, def); err != nil {
		return nil, customFieldWriteError(err)
	}
	return def, nil
}

func (s *customFieldService) GetField(ctx context.Context, id string) (*models.CustomFieldDefinition, error) {
	def, err := s.repo.GetCustomFieldByID(ctx, id)
	if err != nil {
		return nil, storageError(err, ErrCustomFieldNotFound)
	}
	return def, nil
}

func (s *customFieldService) ListFields(ctx context.Context) ([]models.CustomFieldDefinition, error) {
	defs, err := s.repo.GetCustomFields(ctx)
	if err != nil {
		return nil, storageError(err, nil)
	}
	return defs, nil
}

func (s *customFieldService) UpdateField(ctx context.Context, id string, req UpdateCustomFieldRequest) (*models.CustomFieldDefinition, error) {
	def, err := s.GetField(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Label != nil {
		def.Label = strings.TrimSpace(*req.Label)
	}
	keyChanged := false
	if req.Key != nil {
		newKey := strings.TrimSpace(*req.Key)
		keyChanged = newKey != def.Key
		def.Key = newKey
	}
	if req.FieldType != nil {
		def.FieldType = models.FieldType(strings.ToUpper(strings.TrimSpace(*req.FieldType)))
	}
	if req.Options != nil {
		def.Options = cleanOptions(*req.Options)
	}
	if req.Required != nil {
		def.Required = *req.Required
	}
	if req.Placeholder != nil {
		def.Placeholder = utils.NewNullString(*req.Placeholder)
	}
	if req.HelpText != nil {
		def.HelpText = utils.NewNullString(*req.HelpText)
	}
	if req.DisplayOrder != nil {
		def.DisplayOrder = *req.DisplayOrder
	}

	if err := validateDefinition(def); err != nil {
		return nil, err
	}
	if keyChanged {
		if err := s.ensureKeyFree(ctx, def.Key, def.ID); err != nil {
			return nil, err
		}
	}
	if err := s.repo.UpdateCustomField(ctx, s.db, def); err != nil {
		return nil, customFieldWriteError(err)
	}
	return def, nil
}

// DeleteField removes the definition. Values stored on horses under its key
// are not touched.
func (s *customFieldService) DeleteField(ctx context.Context, id string) error {
	if err := s.repo.DeleteCustomField(ctx, s.db, id); err != nil {
		return storageError(err, ErrCustomFieldNotFound)
	}
	return nil
}

func cleanOptions(options []string) []string {
	out := make([]string, 0, len(options))
	for _, o := range options {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}
