package contentlens

import (
	"errors"
	"fmt"
)

// Application error codes.
//
// These are meant to be generic codes that map failures to behavior:
// EINVALID means the caller supplied bad input, EUNAVAILABLE means an
// upstream dependency failed, and so on. Codes travel with errors
// across package boundaries so callers can branch without string
// matching.
const (
	EINVALID     = "invalid"      // validation failed
	ENOTFOUND    = "not_found"    // entity does not exist
	ERATELIMITED = "rate_limited" // upstream returned HTTP 429
	EUNAVAILABLE = "unavailable"  // upstream transport failure
	EDECODE      = "decode"       // response body could not be decoded
	EINTERNAL    = "internal"     // internal error
)

// Error represents an application error with a machine-readable code
// and a human-readable message.
type Error struct {
	// Code is one of the E* constants above.
	Code string

	// Message is a human-readable description of the error.
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("contentlens error: code=%s message=%s", e.Code, e.Message)
}

// Errorf is a helper for constructing an *Error with a formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// ErrorCode unwraps an application error and returns its code.
// Non-application errors return EINTERNAL; nil returns the empty string.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage unwraps an application error and returns its message.
// Non-application errors return a generic message; nil returns the
// empty string.
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error."
}
