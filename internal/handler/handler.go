// Package handler is the first entry point for business logic after the
// router.
//
// It binds and validates requests using the validation package, calls the
// appropriate service, and returns either a response payload or an error
// for the global error handler to classify. Handlers never write error
// responses themselves.
package handler
