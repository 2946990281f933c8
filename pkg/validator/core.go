package validator

import (
	"errors"
	"iter"
	"slices"
	"strings"
)

// ValidationError is one failed directive for one field. TranslationKey
// and TranslationValues ("field" plus the directive arguments) let hosts
// localize Message.
type ValidationError struct {
	Field             string
	Directive         string
	Message           string
	TranslationKey    string
	TranslationValues map[string]any
}

func (e ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// ValidationErrors lists failed directives in evaluation order.
// It matches ErrValidationFailed with errors.Is.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return ErrValidationFailed.Error()
	}

	var b strings.Builder
	b.WriteString(ErrValidationFailed.Error())
	for i, e := range ve {
		if i == 0 {
			b.WriteString(": ")
		} else {
			b.WriteString("; ")
		}
		b.WriteString(e.Error())
	}
	return b.String()
}

func (ve ValidationErrors) Is(target error) bool {
	return target == ErrValidationFailed
}

func (ve *ValidationErrors) Add(err ValidationError) {
	*ve = append(*ve, err)
}

// Has reports whether any directive failed for field.
func (ve ValidationErrors) Has(field string) bool {
	return slices.ContainsFunc(ve, func(e ValidationError) bool { return e.Field == field })
}

// Get returns the messages of field's failed directives.
func (ve ValidationErrors) Get(field string) []string {
	var messages []string
	for e := range ve.of(field) {
		messages = append(messages, e.Message)
	}
	return messages
}

// Directives returns the names of field's failed directives.
func (ve ValidationErrors) Directives(field string) []string {
	var names []string
	for e := range ve.of(field) {
		names = append(names, e.Directive)
	}
	return names
}

// Fields returns each failing field once, in the order it first failed.
func (ve ValidationErrors) Fields() []string {
	var fields []string
	for _, e := range ve {
		if !slices.Contains(fields, e.Field) {
			fields = append(fields, e.Field)
		}
	}
	return fields
}

func (ve ValidationErrors) IsEmpty() bool {
	return len(ve) == 0
}

func (ve ValidationErrors) of(field string) iter.Seq[ValidationError] {
	return func(yield func(ValidationError) bool) {
		for _, e := range ve {
			if e.Field == field && !yield(e) {
				return
			}
		}
	}
}

// Rule is a compiled directive: Check is bound to the value under test and
// Error describes the failure.
type Rule struct {
	Check func() bool
	Error ValidationError
}

// Apply runs every rule (no short-circuit) and returns ValidationErrors for
// the failures, or nil.
func Apply(rules ...Rule) error {
	var failed ValidationErrors
	for _, r := range rules {
		if !r.Check() {
			failed.Add(r.Error)
		}
	}
	if failed.IsEmpty() {
		return nil
	}
	return failed
}

// ExtractValidationErrors finds directive failures anywhere in err's chain,
// including errors joined by the binder.
func ExtractValidationErrors(err error) ValidationErrors {
	var ve ValidationErrors
	if errors.As(err, &ve) {
		return ve
	}
	return nil
}

func IsValidationError(err error) bool {
	var ve ValidationErrors
	return errors.As(err, &ve)
}
