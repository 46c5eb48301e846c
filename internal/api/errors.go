package api

import (
	"errors"
	"fmt"
	"net/http"
)

// StatusError means the backend responded with a non-2xx status. Its absence
// on a failed call means no response was received at all (network failure) -
// the two cases get different user-facing messages.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("server returned status %d", e.Code)
	}
	return fmt.Sprintf("server returned status %d: %s", e.Code, e.Body)
}

// AsStatus extracts a StatusError from an error chain.
func AsStatus(err error) (*StatusError, bool) {
	var se *StatusError
	if errors.As(err, &se) {
		return se, true
	}
	return nil, false
}

// IsStatus reports whether err is a StatusError with the given code.
func IsStatus(err error, code int) bool {
	se, ok := AsStatus(err)
	return ok && se.Code == code
}

// IsAuthError reports whether err is an authorization failure. Callers handle
// these by redirecting, never by showing an error notice.
func IsAuthError(err error) bool {
	return IsStatus(err, http.StatusUnauthorized) || IsStatus(err, http.StatusForbidden)
}

// UserMessage maps a failed call to the text shown to the user. A response
// with an error status gets status-specific wording; no response at all gets
// the generic connectivity message.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	se, ok := AsStatus(err)
	if !ok {
		return "Network error, please check your connection"
	}
	switch se.Code {
	case http.StatusUnauthorized:
		return "Please sign in before continuing"
	case http.StatusBadRequest:
		return "The request was invalid, please check your input"
	case http.StatusInternalServerError:
		return "The server encountered an error, please try again later"
	default:
		return fmt.Sprintf("Request failed: %d %s", se.Code, http.StatusText(se.Code))
	}
}
