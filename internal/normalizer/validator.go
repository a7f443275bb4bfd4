package normalizer

import (
	"errors"
	"fmt"

	"crcsb/internal/models"
)

// Validation errors.
var (
	ErrNilRecord       = errors.New("source record is nil")
	ErrMissingField    = errors.New("missing required field")
	ErrInvalidField    = errors.New("field has an unexpected type")
	ErrMissingInterval = errors.New("interval missing required field")
)

// Validator checks that a source record carries every key the mapping reads.
type Validator struct{}

// NewValidator creates a new validator instance.
func NewValidator() *Validator {
	return &Validator{}
}

// Validate checks required keys and the types of values the mapping cannot
// do without. Optional values may still be null.
func (v *Validator) Validate(rec *models.CoreRecord) error {
	if rec == nil {
		return ErrNilRecord
	}

	required := []struct {
		key  string
		text models.Text
	}{
		{key: "sb_parent_id", text: rec.ParentID},
		{key: "crcwc_url", text: rec.URL},
		{key: "crc_collection_name", text: rec.CollectionName},
	}

	for _, field := range required {
		if !field.text.Present {
			return fmt.Errorf("%w: %q", ErrMissingField, field.key)
		}

		if !field.text.Valid {
			return fmt.Errorf("%w: %q must be a string", ErrInvalidField, field.key)
		}
	}

	if !rec.LibNum.Present {
		return fmt.Errorf("%w: %q", ErrMissingField, "Lib Num")
	}

	if !rec.LibNum.Valid {
		return fmt.Errorf("%w: %q must be a string or a number", ErrInvalidField, "Lib Num")
	}

	// Keys that must exist even though their value is optional.
	nullable := []struct {
		key  string
		text models.Text
	}{
		{key: "API Num", text: rec.APINum},
		{key: "Operator", text: rec.Operator},
		{key: "Latitude", text: rec.Latitude},
	}

	for _, field := range nullable {
		if !field.text.Present {
			return fmt.Errorf("%w: %q", ErrMissingField, field.key)
		}
	}

	if !rec.IntervalsPresent && rec.Intervals == nil {
		return fmt.Errorf("%w: %q", ErrMissingField, "intervals")
	}

	for i, interval := range rec.Intervals {
		if !interval.Formation.Present {
			return fmt.Errorf("%w %q at index %d", ErrMissingInterval, "Formation", i)
		}

		if !interval.Age.Present {
			return fmt.Errorf("%w %q at index %d", ErrMissingInterval, "Age", i)
		}
	}

	return nil
}
