// Package common defines shared constants and sentinel errors used across
// client and server layers of Cookenu. Callers should use errors.Is to
// match these values; services wrap them with fmt.Errorf("%w: reason") so
// the transport layer can surface the human-readable part.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal = errors.New("internal error")

	// Credential errors. Missing and invalid tokens both collapse to 401
	// at the boundary, but the middleware distinguishes the message.
	ErrorMissingToken = errors.New("missing token")
	ErrorInvalidToken = errors.New("invalid token")
	ErrorUnauthorized = errors.New("unauthorized")

	// Request-shape errors. InvalidRequest covers signup/login input (400),
	// Validation covers recipe field checks (422).
	ErrorInvalidRequest = errors.New("invalid request")
	ErrorValidation     = errors.New("validation error")

	// Policy errors. SelfDelete is a specialization of Forbidden so tests
	// and callers can tell the two refusals apart.
	ErrorForbidden  = errors.New("forbidden")
	ErrorSelfDelete = errors.New("self-delete forbidden")

	// Uniqueness conflicts (duplicate e-mail at signup).
	ErrorAlreadyExists = errors.New("already exists")
)

// Reason extracts the human-readable part of a wrapped sentinel error.
// Errors are wrapped as fmt.Errorf("%w: reason"); Reason returns the text
// after the first ": ". If there is no wrapped reason, the full message is
// returned as-is.
func Reason(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	for i := 0; i < len(msg)-1; i++ {
		if msg[i] == ':' && msg[i+1] == ' ' {
			return msg[i+2:]
		}
	}
	return msg
}
