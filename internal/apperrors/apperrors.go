package apperrors

import "net/http"

// Error is an operational error: an expected failure carrying the HTTP
// status it should surface with. Anything that is not an *Error collapses
// to a generic 500 at the response boundary.
type Error struct {
	Message    string
	StatusCode int
}

// New creates an operational error with a message and HTTP status code.
func New(message string, statusCode int) *Error {
	return &Error{Message: message, StatusCode: statusCode}
}

func (e *Error) Error() string {
	return e.Message
}

// Status extracts the HTTP status for an error. Operational errors keep
// their own status; everything else is an internal failure.
func Status(err error) int {
	if e, ok := err.(*Error); ok {
		return e.StatusCode
	}
	return http.StatusInternalServerError
}

// Message extracts the client-facing message for an error. Non-operational
// errors never leak their text to clients.
func Message(err error) string {
	if e, ok := err.(*Error); ok {
		return e.Message
	}
	return "Internal server error"
}

// IsOperational reports whether err is an expected, user-facing error.
func IsOperational(err error) bool {
	_, ok := err.(*Error)
	return ok
}
