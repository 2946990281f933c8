package binder

import "errors"

// Common binding errors
var (
	ErrUnsupportedMediaType = errors.New("unsupported media type")
	ErrMissingContentType   = errors.New("missing content type")
	ErrInvalidJSON          = errors.New("failed to parse JSON request body")
	ErrInvalidYAML          = errors.New("failed to parse YAML request body")
	ErrInvalidForm          = errors.New("failed to parse form data")
	ErrBodyTooLarge         = errors.New("request body too large")
)
