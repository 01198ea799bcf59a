// Package middleware contains the HTTP middleware stack and the global
// error handler.
//
// The global error handler is the single funnel every failure flows
// through: handlers just return errors, and this package decides the
// status code and the client-facing message.
package middleware
