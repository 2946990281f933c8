package record

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownField is returned when a name is not declared by the record's schema.
	ErrUnknownField = errors.New("unknown field")

	// ErrMissingValue is returned when a field is neither assigned nor defaulted.
	ErrMissingValue = errors.New("field has no value and no default")

	// ErrValidationFailed is returned when a declared rule rejects a value.
	ErrValidationFailed = errors.New("field value failed validation")

	// ErrImmutableMutation is returned on any attempt to mutate a record in place.
	ErrImmutableMutation = errors.New("record is immutable")

	// ErrInvalidSchema is returned when a schema definition is malformed.
	ErrInvalidSchema = errors.New("invalid record schema")
)

// FieldError ties a record error to the schema and field that produced it.
type FieldError struct {
	Schema string
	Field  string
	Err    error
}

func (e *FieldError) Error() string {
	if e.Schema == "" {
		return fmt.Sprintf("field %q: %v", e.Field, e.Err)
	}
	return fmt.Sprintf("%s.%s: %v", e.Schema, e.Field, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

func newFieldError(schema *Schema, field string, err error) *FieldError {
	return &FieldError{
		Schema: schema.Name(),
		Field:  field,
		Err:    err,
	}
}

func IsUnknownField(err error) bool {
	return errors.Is(err, ErrUnknownField)
}

func IsMissingValue(err error) bool {
	return errors.Is(err, ErrMissingValue)
}

func IsValidationFailed(err error) bool {
	return errors.Is(err, ErrValidationFailed)
}

func IsImmutableMutation(err error) bool {
	return errors.Is(err, ErrImmutableMutation)
}

// FieldOf returns the field name carried by err, if any.
func FieldOf(err error) (string, bool) {
	var fe *FieldError
	if errors.As(err, &fe) {
		return fe.Field, true
	}
	return "", false
}
