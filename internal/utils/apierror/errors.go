package apierror

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrorResponse abstracts all API error responses to the user.
//
// This interface does not implement `error`, since its only purpose
// is to be used for API responses and not for logging circumstances.
//
// In general, the whole ErrorResponse can be sent for serialization.
type ErrorResponse interface {
	// Code is the HTTP status code to be returned.
	Code() int
}

// APIError carries an error category plus a human-readable message.
type APIError struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Status  int    `json:"-"`
}

func (a *APIError) Code() int {
	return a.Status
}

// StructuredError reports validation problems keyed by field name.
type StructuredError struct {
	Error  string              `json:"error"`
	Errors map[string][]string `json:"errors"`
	Status int                 `json:"-"`
}

func (s *StructuredError) Code() int {
	return s.Status
}

func (s *StructuredError) Add(field, problem string) {
	s.Errors[field] = append(s.Errors[field], problem)
}

// Messages returns every field problem joined into one string,
// in the shape "field: problem, field: problem".
func (s *StructuredError) Messages() string {
	parts := make([]string, 0, len(s.Errors))
	for field, problems := range s.Errors {
		for _, p := range problems {
			parts = append(parts, field+": "+p)
		}
	}
	return strings.Join(parts, ", ")
}

var (
	MalformedJSONError = NewSimple(400, "Malformed JSON", "Request body is not valid JSON")
	InvalidIDError     = NewSimple(400, "Invalid ID", "The provided ID must be a positive integer")

	NoteNotFoundError = NewSimple(404, "Note not found", "No note found with the provided ID")

	MissingSearchQueryError = NewSimple(400, "Search query required", `Please provide a search query parameter "q"`)
)

// NewSimple builds an APIError with a category and a formatted message.
func NewSimple(status int, category, msg string, args ...any) *APIError {
	if len(args) > 0 {
		msg = fmt.Sprintf(msg, args...)
	}
	return &APIError{Status: status, Error: category, Message: msg}
}

func NewStructured(code int) *StructuredError {
	return &StructuredError{
		Error:  "Validation error",
		Errors: make(map[string][]string),
		Status: code,
	}
}

// NewStoreError wraps an underlying persistence failure as a 500 response.
// The raw error is expected to be logged by the caller, not exposed here.
func NewStoreError(action string) *APIError {
	return NewSimple(http.StatusInternalServerError, "Failed to "+action, "The note store rejected the request, please retry")
}

// FromValidationError converts validator.ValidationErrors into a
// field-keyed StructuredError. Returns nil if err is of another kind.
func FromValidationError(err error) *StructuredError {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return nil
	}

	resp := NewStructured(http.StatusBadRequest)
	for _, fe := range ve {
		field := fe.Field()

		switch fe.Tag() {
		case "required":
			resp.Add(field, "This field is required")
		case "min":
			resp.Add(field, "Value is too short, min: "+fe.Param())
		case "max":
			resp.Add(field, "Value is too long, max: "+fe.Param())
		case "datetime":
			resp.Add(field, "Value must be a valid date in YYYY-MM-DD format")
		case "hhmm":
			resp.Add(field, "Value must be a time in HH:MM format")

		default:
			resp.Add(field, "Invalid value provided")
		}
	}
	return resp
}
