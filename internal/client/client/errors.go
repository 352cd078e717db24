package client

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidInput       = errors.New("invalid input")
	ErrNetwork            = errors.New("network error")
	ErrRegistrationFailed = errors.New("registration failed")
	ErrProfileFetchFailed = errors.New("profile fetch failed")
	ErrLoginFailed        = errors.New("login failed")
)

// Operations named in ValidationError.
const (
	OpLogin    = "login"
	OpRegister = "register"
)

// NetworkError means the request never produced an HTTP response.
type NetworkError struct {
	Message string
	Err     error
}

func (e *NetworkError) Error() string {
	return "network error: " + e.Message
}

func (e *NetworkError) Unwrap() []error {
	return withCause(ErrNetwork, e.Err)
}

// RegistrationFailedError carries the status of a rejected registration.
type RegistrationFailedError struct {
	StatusCode int
}

func (e *RegistrationFailedError) Error() string {
	return fmt.Sprintf("registration failed: status %d", e.StatusCode)
}

func (e *RegistrationFailedError) Unwrap() error {
	return ErrRegistrationFailed
}

// ProfileFetchError wraps whatever prevented the profile from loading:
// a non-200 status or a transport failure. Callers must drop the session.
type ProfileFetchError struct {
	StatusCode int
	Err        error
}

func (e *ProfileFetchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("profile fetch failed: %v", e.Err)
	}
	return fmt.Sprintf("profile fetch failed: status %d", e.StatusCode)
}

func (e *ProfileFetchError) Unwrap() []error {
	return withCause(ErrProfileFetchFailed, e.Err)
}

func withCause(sentinel, cause error) []error {
	if cause == nil {
		return []error{sentinel}
	}
	return []error{sentinel, cause}
}

// UnexpectedStatusError is a status the contract does not name for Op.
type UnexpectedStatusError struct {
	StatusCode int
	Op         error
}

func (e *UnexpectedStatusError) Error() string {
	return fmt.Sprintf("%v: unexpected status %d", e.Op, e.StatusCode)
}

func (e *UnexpectedStatusError) Unwrap() error {
	return e.Op
}

// ValidationError is a client-side rejection raised before any request.
type ValidationError struct {
	Op     string
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: missing required fields: %s", e.Op, strings.Join(e.Fields, ", "))
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}

// User-facing messages.
const (
	MsgInvalidCredentials = "Invalid email or password. Please check your credentials or create an account."
	MsgInvalidInput       = "Invalid input. Please enter both email and password."
	MsgFillAllFields      = "Please fill in all fields"
	MsgLoginFailed        = "Login failed. Please try again."
	MsgProfileFetchFailed = "Could not load your profile. Please log in again."
)

// UserMessage turns an error from this package into text for the views.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	var (
		ve *ValidationError
		re *RegistrationFailedError
		ne *NetworkError
	)

	switch {
	case errors.As(err, &ve) && ve.Op == OpRegister:
		return MsgFillAllFields
	case errors.Is(err, ErrInvalidCredentials):
		return MsgInvalidCredentials
	case errors.Is(err, ErrInvalidInput):
		return MsgInvalidInput
	case errors.As(err, &re):
		return fmt.Sprintf("Registration Failed: %d", re.StatusCode)
	case errors.Is(err, ErrProfileFetchFailed):
		return MsgProfileFetchFailed
	case errors.As(err, &ne):
		return "Network Error: " + ne.Message
	case errors.Is(err, ErrLoginFailed):
		return MsgLoginFailed
	default:
		return err.Error()
	}
}
