// Package models defines client-side data models used by the gophauth clients.
package models

import (
	"log/slog"
	"strings"
)

// AuthToken is the opaque credential issued by the server on login.
// It is the only piece of durable client state.
type AuthToken string

// Credentials is the login payload. It is never persisted.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Normalize trims surrounding whitespace from the email. The password is
// sent exactly as typed.
func (c Credentials) Normalize() Credentials {
	c.Email = strings.TrimSpace(c.Email)
	return c
}

// MissingFields lists the JSON names of required fields that are empty.
func (c Credentials) MissingFields() []string {
	var missing []string
	if strings.TrimSpace(c.Email) == "" {
		missing = append(missing, "email")
	}
	if c.Password == "" {
		missing = append(missing, "password")
	}
	return missing
}

// LogValue keeps the password out of structured logs.
func (c Credentials) LogValue() slog.Value {
	return slog.GroupValue(slog.String("email", c.Email))
}

// RegistrationRequest is the registration payload. It is never persisted.
type RegistrationRequest struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Normalize trims surrounding whitespace from every field.
func (r RegistrationRequest) Normalize() RegistrationRequest {
	r.FullName = strings.TrimSpace(r.FullName)
	r.Email = strings.TrimSpace(r.Email)
	r.Password = strings.TrimSpace(r.Password)
	return r
}

// MissingFields lists the JSON names of fields that are empty after trimming.
func (r RegistrationRequest) MissingFields() []string {
	var missing []string
	if strings.TrimSpace(r.FullName) == "" {
		missing = append(missing, "fullName")
	}
	if strings.TrimSpace(r.Email) == "" {
		missing = append(missing, "email")
	}
	if strings.TrimSpace(r.Password) == "" {
		missing = append(missing, "password")
	}
	return missing
}

// LogValue keeps the password out of structured logs.
func (r RegistrationRequest) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("full_name", r.FullName),
		slog.String("email", r.Email),
	)
}
