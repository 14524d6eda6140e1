package api

import "errors"

const (
	// DefaultErrorMessage is used when a failed response carries no detail
	DefaultErrorMessage = "Something went wrong"
	// DefaultRegisterErrorMessage is used when registration fails without an error field
	DefaultRegisterErrorMessage = "Registration failed"
)

// Error is the single failure kind surfaced by the client. Authentication,
// validation, not-found and transport failures all collapse into it.
type Error struct {
	Message    string
	StatusCode int // 0 when no response was received
	Err        error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Message extracts the human-readable message of an *Error.
// ok is false for any other error kind.
func Message(err error) (msg string, ok bool) {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Message, true
	}
	return "", false
}
