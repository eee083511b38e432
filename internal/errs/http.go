// Package errs defines the error types returned to API clients.
//
// Every failure that reaches the client is an *HTTPError, serialized as
// JSON by the global error handler:
//
//	{ "code": "BAD_REQUEST", "message": "Validation failed", "status": 400,
//	  "override": true, "errors": [{ "field": "age", "error": "must be at least 10" }] }
package errs

import "strings"

// FieldError represents a field-level validation error.
// Example:
//
//	{ "field": "email", "error": "must be a valid email address" }
type FieldError struct {
	// Field is the JSON name of the offending field (e.g. "last_name").
	Field string `json:"field"`

	// Error is the human-readable error message.
	Error string `json:"error"`
}

// HTTPError is the error type for API responses.
//
// Fields:
//   - Code: machine-friendly error code (e.g. "CUSTOMER_NOT_FOUND").
//   - Message: human-friendly message.
//   - Status: HTTP status code.
//   - Override: whether the client may show Message as-is.
//   - Errors: per-field validation errors.
type HTTPError struct {
	Code     string `json:"code"`
	Message  string `json:"message"`
	Status   int    `json:"status"`
	Override bool   `json:"override"`

	Errors []FieldError `json:"errors"`
}

// Error returns the message so logging the error shows it.
func (e *HTTPError) Error() string {
	return e.Message
}

// Is reports whether target is also an *HTTPError. Code and Status are not
// compared.
func (e *HTTPError) Is(target error) bool {
	_, ok := target.(*HTTPError)

	return ok
}

// MakeUpperCaseWithUnderscores converts a string into UPPER_CASE_WITH_UNDERSCORES.
//
//	"Bad Request" -> "BAD_REQUEST"
func MakeUpperCaseWithUnderscores(str string) string {
	return strings.ToUpper(strings.ReplaceAll(str, " ", "_"))
}
