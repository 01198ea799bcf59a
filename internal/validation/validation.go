// Package validation contains the logic for validating request data.
//
// It uses the validator library to enforce rules (like required fields)
// declared in struct tags, and converts validation failures into the
// client-facing error shape before any business logic runs.
package validation
