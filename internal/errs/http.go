package errs

import (
	"sort"
	"strings"
)

// FieldErrors maps a field path to every violation found on it.
//
// A field path is the dotted reference to a leaf value in the submitted
// payload, e.g. "formNumber" or "fields.wheelGauge".
//
//	{ "fields.wheelGauge": ["This field is required."] }
type FieldErrors map[string][]string

// Add appends a message to the given field path.
func (fe FieldErrors) Add(path, message string) {
	fe[path] = append(fe[path], message)
}

// Has reports whether at least one message is recorded for path.
func (fe FieldErrors) Has(path string) bool {
	return len(fe[path]) > 0
}

// Paths returns the offending field paths in sorted order.
func (fe FieldErrors) Paths() []string {
	paths := make([]string, 0, len(fe))
	for p := range fe {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// HTTPError is the main custom error type for API responses.
//
// It implements the `error` interface via Error() and is serialized
// directly as the failure envelope. Status and Code stay out of the body:
// the status travels as the HTTP status line, the code goes to the logs.
type HTTPError struct {
	Code    string `json:"-"`
	Status  int    `json:"-"`
	Message string `json:"message"`

	// Errors holds field-level validation errors. Omitted when empty.
	Errors FieldErrors `json:"errors,omitempty"`

	// Success is always false for an error envelope.
	Success bool `json:"success"`
}

// Error makes *HTTPError satisfy the built-in `error` interface.
func (e *HTTPError) Error() string {
	return e.Message
}

// Is reports whether target is also an *HTTPError.
//
// It does NOT compare Code/Status; it only matches on type.
func (e *HTTPError) Is(target error) bool {
	_, ok := target.(*HTTPError)
	return ok
}

// WithMessage returns a copy of this HTTPError with Message replaced.
func (e *HTTPError) WithMessage(message string) *HTTPError {
	return &HTTPError{
		Code:    e.Code,
		Status:  e.Status,
		Message: message,
		Errors:  e.Errors,
	}
}

// MakeUpperCaseWithUnderscores converts a string into an UPPER_CASE_WITH_UNDERSCORES format.
//
//	"Bad Request" -> "BAD_REQUEST"
func MakeUpperCaseWithUnderscores(str string) string {
	return strings.ToUpper(strings.ReplaceAll(str, " ", "_"))
}
