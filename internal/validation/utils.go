package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"calculator-service/internal/errs"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// Validatable is implemented by request payload types that know how to
// validate themselves.
//
// Typical pattern:
//   - Define a request struct with validator tags (`validate:"required"`)
//   - Implement Validate() error that runs validator.Struct(req)
//
// In practice the implementing type is a pointer to a struct, because
// Echo's Bind needs a pointer to populate fields.
type Validatable interface {
	Validate() error
}

// BindAndValidate binds request data into payload and validates it.
//
// Flow:
//  1. c.Bind(payload) populates the struct from the request body.
//  2. payload.Validate() applies the struct's validation rules.
//  3. Any failure becomes a *errs.HTTPError with status 400, so the caller
//     can simply return it and let the global error handler respond.
//
// Binding failures cover malformed JSON and type mismatches (e.g. a string
// where a number is expected); they are reported before validation runs,
// and validation runs before any computation is invoked.
func BindAndValidate(c echo.Context, payload Validatable) error {
	if err := c.Bind(payload); err != nil {
		return errs.NewBadRequestError(bindErrorMessage(err), nil)
	}

	if msg, fieldErrors := validateStruct(payload); fieldErrors != nil {
		return errs.NewBadRequestError(msg, fieldErrors)
	}

	return nil
}

// bindErrorMessage extracts a client-safe message from an Echo bind error.
//
// Echo wraps bind failures in *echo.HTTPError whose Message may be a string
// or an arbitrary value; anything unusable falls back to a fixed message so
// clients never see Go type noise.
func bindErrorMessage(err error) string {
	var echoErr *echo.HTTPError
	if errors.As(err, &echoErr) {
		if msg, ok := echoErr.Message.(string); ok && msg != "" {
			return msg
		}
	}
	return "Invalid request body"
}

// validateStruct calls v.Validate() and extracts field errors if validation fails.
func validateStruct(v Validatable) (string, []errs.FieldError) {
	if err := v.Validate(); err != nil {
		return extractValidationError(err)
	}
	return "", nil
}

// extractValidationError converts validator tag failures into field-level
// errors and a single human-readable message.
//
// The response body carries only one "error" string, so the per-field
// messages are folded into it (e.g. "Validation failed: b is required").
// The structured slice is kept on the error for logging.
func extractValidationError(err error) (string, []errs.FieldError) {
	var fieldErrors []errs.FieldError

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		// Not a tag failure; surface the message as-is.
		return err.Error(), []errs.FieldError{{Field: "", Error: err.Error()}}
	}

	for _, ferr := range validationErrors {
		field := strings.ToLower(ferr.Field())
		var msg string

		switch ferr.Tag() {
		case "required":
			msg = "is required and must be a number"

		case "min":
			// min means minimum length for strings, minimum value for numbers.
			if ferr.Type().Kind() == reflect.String {
				msg = fmt.Sprintf("must be at least %s characters", ferr.Param())
			} else {
				msg = fmt.Sprintf("must be at least %s", ferr.Param())
			}

		case "max":
			if ferr.Type().Kind() == reflect.String {
				msg = fmt.Sprintf("must not exceed %s characters", ferr.Param())
			} else {
				msg = fmt.Sprintf("must not exceed %s", ferr.Param())
			}

		case "oneof":
			msg = fmt.Sprintf("must be one of: %s", ferr.Param())

		default:
			if ferr.Param() != "" {
				msg = fmt.Sprintf("%s: %s:%s", field, ferr.Tag(), ferr.Param())
			} else {
				msg = fmt.Sprintf("%s: %s", field, ferr.Tag())
			}
		}

		fieldErrors = append(fieldErrors, errs.FieldError{
			Field: field,
			Error: msg,
		})
	}

	parts := make([]string, 0, len(fieldErrors))
	for _, fe := range fieldErrors {
		parts = append(parts, fe.Field+" "+fe.Error)
	}

	return "Validation failed: " + strings.Join(parts, "; "), fieldErrors
}
