// Package middleware holds the cross-cutting HTTP concerns: request ids,
// request-scoped logging, New Relic tracing, CORS, panic recovery, the
// numeric path guard and the global error handler.
package middleware
