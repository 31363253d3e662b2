package services

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stable_backend/internal/models"
)

func testDefinitions() []models.CustomFieldDefinition {
	return []models.CustomFieldDefinition{
		{ID: "f1", Label: "Chip Number", Key: "chip_number", FieldType: models.FieldTypeText, Required: true, DisplayOrder: 1},
		{ID: "f2", Label: "Height", Key: "height", FieldType: models.FieldTypeNumber, DisplayOrder: 2},
		{ID: "f3", Label: "Last Farrier", Key: "last_farrier", FieldType: models.FieldTypeDate, DisplayOrder: 3},
		{ID: "f4", Label: "Insured", Key: "insured", FieldType: models.FieldTypeCheckbox, DisplayOrder: 4},
		{ID: "f5", Label: "Discipline", Key: "discipline", FieldType: models.FieldTypeSelect, Options: []string{"dressage", "jumping"}, DisplayOrder: 0},
	}
}

func TestBuildCustomData_CoercesByFieldType(t *testing.T) {
	data, err := BuildCustomData(testDefinitions(), map[string]interface{}{
		"chip_number":  "EE-123",
		"height":       "162.5",
		"last_farrier": "2024-05-01",
		"insured":      true,
		"discipline":   "jumping",
	}, nil)
	require.NoError(t, err)

	assert.Equal(t, models.TextValue("EE-123"), data["chip_number"])
	assert.Equal(t, models.NumberValue(162.5), data["height"])
	assert.Equal(t, models.DateValue(time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)), data["last_farrier"])
	assert.Equal(t, models.BoolValue(true), data["insured"])
	assert.Equal(t, models.SelectValue("jumping"), data["discipline"])
}

func TestBuildCustomData_Rejections(t *testing.T) {
	tests := []struct {
		name     string
		incoming map[string]interface{}
	}{
		{"missing required", map[string]interface{}{"height": 150.0}},
		{"unknown key", map[string]interface{}{"chip_number": "x", "colour_code": "red"}},
		{"bad number", map[string]interface{}{"chip_number": "x", "height": "tall"}},
		{"NaN number", map[string]interface{}{"chip_number": "x", "height": "NaN"}},
		{"infinite number", map[string]interface{}{"chip_number": "x", "height": "-Inf"}},
		{"infinity spelled out", map[string]interface{}{"chip_number": "x", "height": "infinity"}},
		{"NaN json number", map[string]interface{}{"chip_number": "x", "height": json.Number("NaN")}},
		{"bad date", map[string]interface{}{"chip_number": "x", "last_farrier": "yesterday"}},
		{"option not offered", map[string]interface{}{"chip_number": "x", "discipline": "polo"}},
		{"text given a number", map[string]interface{}{"chip_number": 42.0}},
		{"checkbox given text", map[string]interface{}{"chip_number": "x", "insured": "maybe"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := BuildCustomData(testDefinitions(), tt.incoming, nil)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestBuildCustomData_PreservesOrphans(t *testing.T) {
	existing := models.CustomData{
		"chip_number": models.TextValue("EE-1"),
		"old_field":   models.TextValue("legacy"),
	}

	data, err := BuildCustomData(testDefinitions(), map[string]interface{}{"height": 150.0}, existing)
	require.NoError(t, err)
	assert.Equal(t, models.TextValue("legacy"), data["old_field"])
	assert.Equal(t, models.TextValue("EE-1"), data["chip_number"])
	assert.Equal(t, models.NumberValue(150), data["height"])

	data, err = BuildCustomData(testDefinitions(), map[string]interface{}{"old_field": "edited"}, existing)
	require.NoError(t, err)
	assert.Equal(t, models.TextValue("edited"), data["old_field"])
	assert.NotContains(t, existing, "height", "existing data must not be mutated")
}

func TestBuildCustomData_NullClearsKey(t *testing.T) {
	existing := models.CustomData{"chip_number": models.TextValue("EE-1"), "height": models.NumberValue(150)}

	data, err := BuildCustomData(testDefinitions(), map[string]interface{}{"height": nil}, existing)
	require.NoError(t, err)
	assert.NotContains(t, data, "height")

	_, err = BuildCustomData(testDefinitions(), map[string]interface{}{"chip_number": ""}, existing)
	assert.ErrorIs(t, err, ErrValidation, "clearing a required field fails")
}

func TestFormatter_FormatValue(t *testing.T) {
	et := NewFormatter("et")
	en := NewFormatter("en-US")
	de := NewFormatter("de")

	assert.Equal(t, "-", et.FormatValue(nil, models.FieldTypeText))
	assert.Equal(t, "-", et.FormatValue("", models.FieldTypeText))
	assert.Equal(t, "-", et.FormatValue(models.CustomValue{}, models.FieldTypeNumber))

	assert.Equal(t, "Jah", et.FormatValue(true, models.FieldTypeCheckbox))
	assert.Equal(t, "Jah", et.FormatValue("true", models.FieldTypeCheckbox))
	assert.Equal(t, "Ei", et.FormatValue(false, models.FieldTypeCheckbox))
	assert.Equal(t, "Yes", en.FormatValue(models.BoolValue(true), models.FieldTypeCheckbox))
	assert.Equal(t, "Nein", de.FormatValue("false", models.FieldTypeCheckbox))

	assert.Equal(t, "1.05.2024", et.FormatValue("2024-05-01", models.FieldTypeDate))
	assert.Equal(t, "5/1/2024", en.FormatValue("2024-05-01", models.FieldTypeDate))
	assert.Equal(t, "01.05.2024", de.FormatValue(models.DateValue(time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)), models.FieldTypeDate))
	assert.Equal(t, "soon", et.FormatValue("soon", models.FieldTypeDate))

	assert.Equal(t, "162.5", et.FormatValue(162.5, models.FieldTypeNumber))
	assert.Equal(t, "jumping", et.FormatValue(models.SelectValue("jumping"), models.FieldTypeSelect))
}

func TestNewFormatter_Fallback(t *testing.T) {
	assert.Equal(t, "et", NewFormatter("").Locale())
	assert.Equal(t, "et", NewFormatter("fr").Locale())
	assert.Equal(t, "en", NewFormatter("en-GB").Locale())
	assert.Equal(t, "de", NewFormatter("de-AT").Locale())
}

func TestFormatter_DisplayCustomData(t *testing.T) {
	data := models.CustomData{
		"chip_number": models.TextValue("EE-1"),
		"insured":     models.BoolValue(false),
		"zz_orphan":   models.NumberValue(3),
		"aa_orphan":   models.TextValue("x"),
	}

	rows := NewFormatter("en").DisplayCustomData(testDefinitions(), data)

	require.Len(t, rows, 7)
	keys := make([]string, len(rows))
	for i, r := range rows {
		keys[i] = r.Key
	}
	assert.Equal(t, []string{"discipline", "chip_number", "height", "last_farrier", "insured", "aa_orphan", "zz_orphan"}, keys)
	assert.Equal(t, "-", rows[0].Display)
	assert.Equal(t, "EE-1", rows[1].Display)
	assert.Equal(t, "No", rows[4].Display)
	assert.True(t, rows[6].Orphaned)
	assert.Equal(t, "3", rows[6].Display)
}
