package services

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"

	"stable_backend/internal/models"
	"stable_backend/pkg/utils"
)

// BuildCustomData validates incoming custom values against the live field
// definitions and merges them over existing. A nil or empty-string value clears
// the key. Keys without a definition are accepted only when existing already
// holds them, so values left behind by a deleted definition survive edits.
func BuildCustomData(defs []models.CustomFieldDefinition, incoming map[string]interface{}, existing models.CustomData) (models.CustomData, error) {
	byKey := make(map[string]*models.CustomFieldDefinition, len(defs))
	for i := range defs {
		byKey[defs[i].Key] = &defs[i]
	}

	result := make(models.CustomData, len(existing)+len(incoming))
	for k, v := range existing {
		result[k] = v
	}

	keys := make([]string, 0, len(incoming))
	for k := range incoming {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		raw := incoming[key]
		if isBlank(raw) {
			delete(result, key)
			continue
		}

		def, ok := byKey[key]
		if !ok {
			if _, orphan := existing[key]; !orphan {
				return nil, validationError("unknown custom field %q", key)
			}
			v, err := inferValue(raw)
			if err != nil {
				return nil, validationError("custom field %q: %v", key, err)
			}
			result[key] = v
			continue
		}

		v, err := coerceValue(def, raw)
		if err != nil {
			return nil, validationError("custom field %q: %v", def.Label, err)
		}
		result[key] = v
	}

	for _, def := range defs {
		if !def.Required {
			continue
		}
		if v, ok := result[def.Key]; !ok || v.IsEmpty() {
			return nil, validationError("custom field %q is required", def.Label)
		}
	}
	return result, nil
}

func isBlank(raw interface{}) bool {
	switch v := raw.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(v) == ""
	}
	return false
}

// coerceValue converts one decoded JSON value into the variant its field type demands.
func coerceValue(def *models.CustomFieldDefinition, raw interface{}) (models.CustomValue, error) {
	switch def.FieldType {
	case models.FieldTypeText, models.FieldTypeTextarea:
		s, ok := raw.(string)
		if !ok {
			return models.CustomValue{}, fmt.Errorf("expected text, got %T", raw)
		}
		return models.TextValue(s), nil

	case models.FieldTypeNumber:
		var f float64
		switch v := raw.(type) {
		case float64:
			f = v
		case int:
			f = float64(v)
		case json.Number:
			parsed, err := v.Float64()
			if err != nil {
				return models.CustomValue{}, fmt.Errorf("invalid number %q", v.String())
			}
			f = parsed
		case string:
			parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
			if err != nil {
				return models.CustomValue{}, fmt.Errorf("invalid number %q", v)
			}
			f = parsed
		default:
			return models.CustomValue{}, fmt.Errorf("expected a number, got %T", raw)
		}
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return models.CustomValue{}, fmt.Errorf("number must be finite, got %v", raw)
		}
		return models.NumberValue(f), nil

	case models.FieldTypeDate:
		s, ok := raw.(string)
		if !ok {
			return models.CustomValue{}, fmt.Errorf("expected a date string, got %T", raw)
		}
		t, err := utils.ParseDate(s)
		if err != nil {
			return models.CustomValue{}, err
		}
		return models.DateValue(t), nil

	case models.FieldTypeCheckbox:
		switch v := raw.(type) {
		case bool:
			return models.BoolValue(v), nil
		case string:
			b, err := strconv.ParseBool(strings.TrimSpace(v))
			if err != nil {
				return models.CustomValue{}, fmt.Errorf("expected true or false, got %q", v)
			}
			return models.BoolValue(b), nil
		}
		return models.CustomValue{}, fmt.Errorf("expected a boolean, got %T", raw)

	case models.FieldTypeSelect:
		s, ok := raw.(string)
		if !ok {
			return models.CustomValue{}, fmt.Errorf("expected one of the options, got %T", raw)
		}
		if !def.HasOption(s) {
			return models.CustomValue{}, fmt.Errorf("%q is not one of %s", s, strings.Join(def.Options, ", "))
		}
		return models.SelectValue(s), nil
	}
	return models.CustomValue{}, fmt.Errorf("unsupported field type %q", def.FieldType)
}

// inferValue handles orphaned keys, which have no definition to coerce against.
func inferValue(raw interface{}) (models.CustomValue, error) {
	b, err := json.Marshal(raw)
	if err != nil {
		return models.CustomValue{}, err
	}
	var v models.CustomValue
	if err := json.Unmarshal(b, &v); err != nil {
		return models.CustomValue{}, err
	}
	return v, nil
}

// EmptyDisplay is shown for missing values.
const EmptyDisplay = "-"

type localeStrings struct {
	dateLayout string
	yes, no    string
}

var supportedLocales = []language.Tag{language.Estonian, language.English, language.German}

var localeTable = map[string]localeStrings{
	"et": {dateLayout: "2.01.2006", yes: "Jah", no: "Ei"},
	"en": {dateLayout: "1/2/2006", yes: "Yes", no: "No"},
	"de": {dateLayout: "02.01.2006", yes: "Ja", no: "Nein"},
}

var localeMatcher = language.NewMatcher(supportedLocales)

// Formatter renders custom values for display in one locale.
type Formatter struct {
	locale string
	labels localeStrings
}

// NewFormatter picks the closest supported locale to the given BCP 47 tag or
// Accept-Language string. Unknown input falls back to Estonian.
func NewFormatter(locale string) *Formatter {
	tag, _ := language.MatchStrings(localeMatcher, locale)
	base, _ := tag.Base()
	ls, ok := localeTable[base.String()]
	if !ok {
		return &Formatter{locale: "et", labels: localeTable["et"]}
	}
	return &Formatter{locale: base.String(), labels: ls}
}

// Locale returns the base language the formatter resolved to.
func (f *Formatter) Locale() string { return f.locale }

// FormatValue renders value for a field of type ft. value may be a
// models.CustomValue or a plain decoded JSON value.
func (f *Formatter) FormatValue(value interface{}, ft models.FieldType) string {
	if cv, ok := value.(models.CustomValue); ok {
		if cv.IsEmpty() {
			return EmptyDisplay
		}
		value = cv.Raw()
	}
	if isBlank(value) {
		return EmptyDisplay
	}

	switch ft {
	case models.FieldTypeDate:
		switch v := value.(type) {
		case time.Time:
			return v.Format(f.labels.dateLayout)
		case string:
			t, err := utils.ParseDate(v)
			if err != nil {
				return v
			}
			return t.Format(f.labels.dateLayout)
		}
	case models.FieldTypeCheckbox:
		if value == true || value == "true" {
			return f.labels.yes
		}
		return f.labels.no
	}

	switch v := value.(type) {
	case string:
		return v
	case float64:
		return utils.FormatNumber(v)
	case bool:
		return strconv.FormatBool(v)
	case time.Time:
		return v.Format(utils.DateLayout)
	}
	return fmt.Sprint(value)
}

// CustomValueDisplay is one row of a horse's custom attributes as shown to users.
type CustomValueDisplay struct {
	Key       string           `json:"key"`
	Label     string           `json:"label"`
	FieldType models.FieldType `json:"field_type,omitempty"`
	Value     interface{}      `json:"value"`
	Display   string           `json:"display"`
	Orphaned  bool             `json:"orphaned"`
}

// DisplayCustomData lists the defined fields in display order followed by any
// orphaned keys in alphabetical order.
func (f *Formatter) DisplayCustomData(defs []models.CustomFieldDefinition, data models.CustomData) []CustomValueDisplay {
	ordered := make([]models.CustomFieldDefinition, len(defs))
	copy(ordered, defs)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].DisplayOrder != ordered[j].DisplayOrder {
			return ordered[i].DisplayOrder < ordered[j].DisplayOrder
		}
		return ordered[i].Label < ordered[j].Label
	})

	rows := make([]CustomValueDisplay, 0, len(ordered)+len(data))
	defined := make(map[string]bool, len(ordered))
	for _, def := range ordered {
		defined[def.Key] = true
		v := data[def.Key]
		rows = append(rows, CustomValueDisplay{
			Key:       def.Key,
			Label:     def.Label,
			FieldType: def.FieldType,
			Value:     v.Raw(),
			Display:   f.FormatValue(v, def.FieldType),
		})
	}

	var orphans []string
	for k := range data {
		if !defined[k] {
			orphans = append(orphans, k)
		}
	}
	sort.Strings(orphans)
	for _, k := range orphans {
		v := data[k]
		rows = append(rows, CustomValueDisplay{
			Key:      k,
			Label:    k,
			Value:    v.Raw(),
			Display:  f.FormatValue(v, orphanFieldType(v)),
			Orphaned: true,
		})
	}
	return rows
}

func orphanFieldType(v models.CustomValue) models.FieldType {
	switch v.Kind {
	case models.KindDate:
		return models.FieldTypeDate
	case models.KindBoolean:
		return models.FieldTypeCheckbox
	case models.KindNumber:
		return models.FieldTypeNumber
	case models.KindSelect:
		return models.FieldTypeSelect
	}
	return models.FieldTypeText
}
