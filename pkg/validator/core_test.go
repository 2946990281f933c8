package validator_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/record/pkg/validator"
)

func TestValidationErrors_Error(t *testing.T) {
	t.Parallel()

	t.Run("returns default message when no errors", func(t *testing.T) {
		t.Parallel()
		var errs validator.ValidationErrors
		assert.Equal(t, "validation failed", errs.Error())
	})

	t.Run("returns formatted message with single error", func(t *testing.T) {
		t.Parallel()
		var errs validator.ValidationErrors
		errs.Add(validator.ValidationError{Field: "email", Message: "is required"})
		assert.Equal(t, "validation failed: email: is required", errs.Error())
	})

	t.Run("joins multiple errors", func(t *testing.T) {
		t.Parallel()
		var errs validator.ValidationErrors
		errs.Add(validator.ValidationError{Field: "email", Message: "is required"})
		errs.Add(validator.ValidationError{Field: "password", Message: "too short"})
		assert.Equal(t, "validation failed: email: is required; password: too short", errs.Error())
	})
}

func TestValidationErrors_Accessors(t *testing.T) {
	t.Parallel()

	var errs validator.ValidationErrors
	errs.Add(validator.ValidationError{Field: "password", Message: "too short"})
	errs.Add(validator.ValidationError{Field: "email", Message: "is required"})
	errs.Add(validator.ValidationError{Field: "password", Message: "missing digit"})

	assert.True(t, errs.Has("password"))
	assert.False(t, errs.Has("name"))
	assert.Equal(t, []string{"too short", "missing digit"}, errs.Get("password"))
	assert.Nil(t, errs.Get("name"))
	assert.Equal(t, []string{"password", "email"}, errs.Fields())
	assert.False(t, errs.IsEmpty())
	assert.True(t, validator.ValidationErrors{}.IsEmpty())
}

func TestValidationErrors_Directives(t *testing.T) {
	t.Parallel()

	errs := validator.ValidationErrors{
		{Field: "username", Directive: "alphanum", Message: "may only contain letters and digits"},
		{Field: "email", Directive: "email", Message: "must be a valid email address"},
		{Field: "username", Directive: "min", Message: "must be at least 3"},
	}

	assert.Equal(t, []string{"alphanum", "min"}, errs.Directives("username"))
	assert.Nil(t, errs.Directives("age"))
	assert.Equal(t, "email: must be a valid email address", errs[1].Error())
	assert.ErrorIs(t, errs, validator.ErrValidationFailed)
}

func TestApply(t *testing.T) {
	t.Parallel()

	pass := validator.Rule{Check: func() bool { return true }}
	fail := func(field string) validator.Rule {
		return validator.Rule{
			Check: func() bool { return false },
			Error: validator.ValidationError{Field: field, Message: "bad"},
		}
	}

	t.Run("nil when all pass", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, validator.Apply(pass, pass))
		assert.NoError(t, validator.Apply())
	})

	t.Run("collects failures in order", func(t *testing.T) {
		t.Parallel()
		err := validator.Apply(fail("a"), pass, fail("b"))
		require.Error(t, err)

		errs := validator.ExtractValidationErrors(err)
		require.Len(t, errs, 2)
		assert.Equal(t, []string{"a", "b"}, errs.Fields())
		assert.ErrorIs(t, err, validator.ErrValidationFailed)
	})
}

func TestExtractValidationErrors(t *testing.T) {
	t.Parallel()

	assert.Nil(t, validator.ExtractValidationErrors(nil))
	assert.Nil(t, validator.ExtractValidationErrors(errors.New("plain")))
	assert.False(t, validator.IsValidationError(errors.New("plain")))

	inner := validator.ValidationErrors{{Field: "name", Message: "is required"}}
	wrapped := fmt.Errorf("binding: %w", inner)

	assert.True(t, validator.IsValidationError(wrapped))
	assert.Equal(t, inner, validator.ExtractValidationErrors(wrapped))
}
