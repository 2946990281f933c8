package binder

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dmitrymomot/record"
	"github.com/dmitrymomot/record/pkg/validator"
)

// Response is the JSON envelope written by WriteRecord and WriteError.
type Response struct {
	Data  *record.Record `json:"data,omitempty"`
	Error *ErrorDetail   `json:"error,omitempty"`
}

// ErrorDetail describes a rejected request.
type ErrorDetail struct {
	Code    string              `json:"code"`
	Message string              `json:"message"`
	Field   string              `json:"field,omitempty"`
	Details map[string][]string `json:"details,omitempty"`
}

// Status maps binding and record errors to HTTP status codes.
func Status(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrBodyTooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, ErrUnsupportedMediaType), errors.Is(err, ErrMissingContentType):
		return http.StatusUnsupportedMediaType
	case errors.Is(err, ErrInvalidJSON), errors.Is(err, ErrInvalidYAML), errors.Is(err, ErrInvalidForm):
		return http.StatusBadRequest
	case record.IsValidationFailed(err), record.IsUnknownField(err), record.IsMissingValue(err):
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}

// Detail converts err into an ErrorDetail. Validation details from an
// Explainer are grouped by field.
func Detail(err error) *ErrorDetail {
	d := &ErrorDetail{Code: code(err), Message: err.Error()}
	if field, ok := record.FieldOf(err); ok {
		d.Field = field
	}
	if errs := validator.ExtractValidationErrors(err); errs != nil {
		d.Details = make(map[string][]string, len(errs))
		for _, field := range errs.Fields() {
			d.Details[field] = errs.Get(field)
		}
	}
	// Internal failures keep their message out of the response.
	if Status(err) == http.StatusInternalServerError {
		d.Message = http.StatusText(http.StatusInternalServerError)
	}
	return d
}

// WriteRecord writes rec as {"data": ...} with the given status.
func WriteRecord(w http.ResponseWriter, status int, rec *record.Record) error {
	// Encode first so an unresolvable record turns into an error response
	// instead of a half-written body.
	body, err := json.Marshal(Response{Data: rec})
	if err != nil {
		return WriteError(w, err)
	}
	return write(w, status, append(body, '\n'))
}

// WriteError writes err as {"error": ...} with the status from Status.
func WriteError(w http.ResponseWriter, err error) error {
	body, mErr := json.Marshal(Response{Error: Detail(err)})
	if mErr != nil {
		return mErr
	}
	return write(w, Status(err), append(body, '\n'))
}

func write(w http.ResponseWriter, status int, body []byte) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_, err := w.Write(body)
	return err
}

func code(err error) string {
	switch {
	case errors.Is(err, ErrBodyTooLarge):
		return "body_too_large"
	case errors.Is(err, ErrUnsupportedMediaType), errors.Is(err, ErrMissingContentType):
		return "unsupported_media_type"
	case errors.Is(err, ErrInvalidJSON), errors.Is(err, ErrInvalidYAML), errors.Is(err, ErrInvalidForm):
		return "malformed_request"
	case record.IsValidationFailed(err):
		return "validation_error"
	case record.IsUnknownField(err):
		return "unknown_field"
	case record.IsMissingValue(err):
		return "missing_value"
	}
	return "internal_error"
}
