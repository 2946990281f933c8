package validator

import "errors"

var (
	// ErrValidationFailed is matched by every ValidationErrors value.
	ErrValidationFailed = errors.New("validation failed")

	// ErrUnknownDirective is returned when a rule names a directive the engine does not know.
	ErrUnknownDirective = errors.New("unknown validation directive")

	// ErrInvalidArgument is returned when a directive argument cannot be parsed.
	ErrInvalidArgument = errors.New("invalid directive argument")

	// ErrUnsupportedRule is returned when a rule descriptor has an unsupported type.
	ErrUnsupportedRule = errors.New("unsupported rule descriptor")
)
