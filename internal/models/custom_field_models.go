package models

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/lib/pq"

	"stable_backend/pkg/utils"
)

// FieldType is the input type of a custom horse field.
type FieldType string

const (
	FieldTypeText     FieldType = "TEXT"
	FieldTypeNumber   FieldType = "NUMBER"
	FieldTypeDate     FieldType = "DATE"
	FieldTypeTextarea FieldType = "TEXTAREA"
	FieldTypeSelect   FieldType = "SELECT"
	FieldTypeCheckbox FieldType = "CHECKBOX"
)

func IsValidFieldType(t FieldType) bool {
	switch t {
	case FieldTypeText, FieldTypeNumber, FieldTypeDate, FieldTypeTextarea, FieldTypeSelect, FieldTypeCheckbox:
		return true
	}
	return false
}

// CustomFieldDefinition describes an operator-defined horse attribute.
// Key is unique across all definitions and addresses the value in Horse.CustomData.
type CustomFieldDefinition struct {
	ID           string         `json:"id" db:"id"`
	Label        string         `json:"label" db:"label"`
	Key          string         `json:"key" db:"key"`
	FieldType    FieldType      `json:"field_type" db:"field_type"`
	Options      pq.StringArray `json:"options,omitempty" db:"options"`
	Required     bool           `json:"required" db:"required"`
	Placeholder  *string        `json:"placeholder,omitempty" db:"placeholder"`
	HelpText     *string        `json:"help_text,omitempty" db:"help_text"`
	DisplayOrder int            `json:"display_order" db:"display_order"`
	CreatedAt    time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at" db:"updated_at"`
}

// HasOption reports whether choice is one of the SELECT options.
func (d *CustomFieldDefinition) HasOption(choice string) bool {
	for _, o := range d.Options {
		if o == choice {
			return true
		}
	}
	return false
}

// CustomValueKind tags the variant held by a CustomValue.
type CustomValueKind string

const (
	KindText    CustomValueKind = "text"
	KindNumber  CustomValueKind = "number"
	KindDate    CustomValueKind = "date"
	KindBoolean CustomValueKind = "boolean"
	KindSelect  CustomValueKind = "select"
)

// CustomValue holds one custom attribute value. Exactly one payload field is
// meaningful, chosen by Kind. The zero value means "no value".
type CustomValue struct {
	Kind   CustomValueKind
	Text   string // KindText and KindSelect
	Number float64
	Date   time.Time
	Bool   bool
}

func TextValue(s string) CustomValue        { return CustomValue{Kind: KindText, Text: s} }
func NumberValue(f float64) CustomValue     { return CustomValue{Kind: KindNumber, Number: f} }
func DateValue(t time.Time) CustomValue     { return CustomValue{Kind: KindDate, Date: NewDate(t).Time} }
func BoolValue(b bool) CustomValue          { return CustomValue{Kind: KindBoolean, Bool: b} }
func SelectValue(choice string) CustomValue { return CustomValue{Kind: KindSelect, Text: choice} }

// IsEmpty reports whether v carries no displayable value.
func (v CustomValue) IsEmpty() bool {
	switch v.Kind {
	case "":
		return true
	case KindText, KindSelect:
		return v.Text == ""
	case KindDate:
		return v.Date.IsZero()
	}
	return false
}

// Raw returns the plain JSON-friendly form: string, float64 or bool.
func (v CustomValue) Raw() interface{} {
	switch v.Kind {
	case KindText, KindSelect:
		return v.Text
	case KindNumber:
		return v.Number
	case KindDate:
		return v.Date.Format(utils.DateLayout)
	case KindBoolean:
		return v.Bool
	}
	return nil
}

// String is the plain string coercion of the value.
func (v CustomValue) String() string {
	switch v.Kind {
	case KindText, KindSelect:
		return v.Text
	case KindNumber:
		return strconv.FormatFloat(v.Number, 'f', -1, 64)
	case KindDate:
		return v.Date.Format(utils.DateLayout)
	case KindBoolean:
		return strconv.FormatBool(v.Bool)
	}
	return ""
}

// MarshalJSON writes the flat value so API clients see {"chip_number": "A1"}.
func (v CustomValue) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Raw())
}

// UnmarshalJSON infers the kind from a flat JSON value. Date and select kinds
// cannot be told apart from text without the field definition.
func (v *CustomValue) UnmarshalJSON(b []byte) error {
	inferred, err := inferCustomValue(b)
	if err != nil {
		return err
	}
	*v = inferred
	return nil
}

func inferCustomValue(b []byte) (CustomValue, error) {
	var raw interface{}
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	if err := dec.Decode(&raw); err != nil {
		return CustomValue{}, err
	}
	switch x := raw.(type) {
	case nil:
		return CustomValue{}, nil
	case bool:
		return BoolValue(x), nil
	case json.Number:
		f, err := x.Float64()
		if err != nil {
			return CustomValue{}, err
		}
		return NumberValue(f), nil
	case string:
		return TextValue(x), nil
	}
	return CustomValue{}, fmt.Errorf("unsupported custom value %s", string(b))
}

// storedCustomValue is the tagged storage form kept in the custom_data JSONB column.
type storedCustomValue struct {
	Kind  CustomValueKind `json:"kind"`
	Value json.RawMessage `json:"value"`
}

// CustomData is the free-form attribute bag of a horse, keyed by CustomFieldDefinition.Key.
type CustomData map[string]CustomValue

// Value stores the bag with explicit kinds so dates and select choices survive a round trip.
func (d CustomData) Value() (driver.Value, error) {
	stored := make(map[string]storedCustomValue, len(d))
	for k, v := range d {
		if v.Kind == "" {
			continue
		}
		raw, err := json.Marshal(v.Raw())
		if err != nil {
			return nil, err
		}
		stored[k] = storedCustomValue{Kind: v.Kind, Value: raw}
	}
	b, err := json.Marshal(stored)
	if err != nil {
		return nil, err
	}
	return b, nil
}

// Scan reads the tagged form and also accepts flat legacy values.
func (d *CustomData) Scan(src interface{}) error {
	var b []byte
	switch v := src.(type) {
	case nil:
		*d = CustomData{}
		return nil
	case []byte:
		b = v
	case string:
		b = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into CustomData", src)
	}

	var entries map[string]json.RawMessage
	if err := json.Unmarshal(b, &entries); err != nil {
		return fmt.Errorf("decoding custom_data: %w", err)
	}

	out := make(CustomData, len(entries))
	for key, raw := range entries {
		v, err := decodeStoredValue(raw)
		if err != nil {
			return fmt.Errorf("decoding custom_data[%s]: %w", key, err)
		}
		if v.Kind != "" {
			out[key] = v
		}
	}
	*d = out
	return nil
}

func decodeStoredValue(raw json.RawMessage) (CustomValue, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return inferCustomValue(trimmed)
	}
	var s storedCustomValue
	if err := json.Unmarshal(trimmed, &s); err != nil {
		return CustomValue{}, err
	}
	if s.Kind == "" {
		return CustomValue{}, errors.New("object value without kind")
	}
	switch s.Kind {
	case KindText, KindSelect:
		var text string
		if err := json.Unmarshal(s.Value, &text); err != nil {
			return CustomValue{}, err
		}
		return CustomValue{Kind: s.Kind, Text: text}, nil
	case KindNumber:
		var f float64
		if err := json.Unmarshal(s.Value, &f); err != nil {
			return CustomValue{}, err
		}
		return NumberValue(f), nil
	case KindBoolean:
		var bl bool
		if err := json.Unmarshal(s.Value, &bl); err != nil {
			return CustomValue{}, err
		}
		return BoolValue(bl), nil
	case KindDate:
		var text string
		if err := json.Unmarshal(s.Value, &text); err != nil {
			return CustomValue{}, err
		}
		t, err := time.Parse(utils.DateLayout, text)
		if err != nil {
			return CustomValue{}, err
		}
		return DateValue(t), nil
	}
	return CustomValue{}, fmt.Errorf("unknown value kind %q", s.Kind)
}
