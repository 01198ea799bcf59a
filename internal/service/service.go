// Package service contains the business logic.
//
// It sits between the handler layer and the arithmetic core: it receives
// validated operands from the handlers, performs the computation, and
// reports domain failures as errors for the global error handler to
// classify.
package service
