// Package errs defines the custom error types the API returns to clients.
//
// Every failure path in the service funnels into one of these types so that
// clients always receive the same error shape: a JSON object with a single
// "error" field carrying a human-readable message. Status codes and machine
// codes ride along on the struct for the error handler and the logs, but are
// never serialized into the response body.
package errs

import "strings"

// FieldError represents a single field-level validation issue.
//
// Field errors are not sent to the client directly; they are folded into the
// HTTPError message (e.g. "Validation failed: b is required") and attached to
// the struct for structured logging.
type FieldError struct {
	Field string
	Error string
}

// HTTPError is the error type every API failure is translated into.
//
// It implements the error interface and is serialized directly to JSON.
// Only Message appears on the wire, as the "error" field; the remaining
// fields drive status selection and logging.
type HTTPError struct {
	// Message is the human-readable text sent to the client.
	Message string `json:"error"`

	// Code is a machine-friendly error code (e.g. "BAD_REQUEST"), used in logs.
	Code string `json:"-"`

	// Status is the HTTP status code to respond with.
	Status int `json:"-"`

	// Errors holds field-level validation errors, when applicable.
	Errors []FieldError `json:"-"`
}

func (e *HTTPError) Error() string {
	return e.Message
}

// Is reports whether target is also an *HTTPError, so that
// errors.Is(err, &HTTPError{}) can be used as a type check.
// It deliberately does not compare Code/Status.
func (e *HTTPError) Is(target error) bool {
	_, ok := target.(*HTTPError)
	return ok
}

// WithMessage returns a copy of the error with Message replaced,
// leaving the original untouched.
func (e *HTTPError) WithMessage(message string) *HTTPError {
	return &HTTPError{
		Message: message,
		Code:    e.Code,
		Status:  e.Status,
		Errors:  e.Errors,
	}
}

// MakeUpperCaseWithUnderscores converts a string into
// UPPER_CASE_WITH_UNDERSCORES format.
//
// Example: "Bad Request" -> "BAD_REQUEST". Used to derive stable
// machine-readable codes from HTTP status text.
func MakeUpperCaseWithUnderscores(str string) string {
	return strings.ToUpper(strings.ReplaceAll(str, " ", "_"))
}
