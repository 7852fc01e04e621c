// Package errs defines the error types returned to API clients.
//
// Every failure that leaves the service is rendered as an Envelope:
//
//	{ "error": { "code": "NOT_FOUND", "status": 404, ... }, "message": "..." }
//
// Handlers and services return *HTTPError values; anything else is classified
// by the global error handler before it reaches the wire.
package errs

import "strings"

// FieldError represents a field-level validation error.
//
//	{ "field": "amt", "error": "must be greater than 0" }
type FieldError struct {
	Field string `json:"field"`
	Error string `json:"error"`
}

// HTTPError is the error detail object carried inside an Envelope.
//
// Fields:
//   - Code: machine-friendly error code (e.g. "BAD_REQUEST", "INVOICE_COMPANY_NOT_FOUND").
//   - Message: human-friendly message.
//   - Status: HTTP status code.
//   - Override: the message is safe to show verbatim to end users.
//   - Errors: per-field validation errors.
type HTTPError struct {
	Code     string       `json:"code"`
	Message  string       `json:"message"`
	Status   int          `json:"status"`
	Override bool         `json:"override"`
	Errors   []FieldError `json:"errors,omitempty"`
}

func (e *HTTPError) Error() string {
	return e.Message
}

// Envelope is the uniform JSON body written for every error response.
// Message mirrors Error.Message so clients that only read the top level
// still get a readable reason.
type Envelope struct {
	Error   *HTTPError `json:"error"`
	Message string     `json:"message"`
}

// NewEnvelope wraps e for the wire.
func NewEnvelope(e *HTTPError) Envelope {
	return Envelope{Error: e, Message: e.Message}
}

// MakeUpperCaseWithUnderscores converts "Bad Request" into "BAD_REQUEST".
func MakeUpperCaseWithUnderscores(str string) string {
	return strings.ToUpper(strings.ReplaceAll(str, " ", "_"))
}
