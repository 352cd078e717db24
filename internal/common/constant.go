// Package common contains shared constants and small helpers used across
// gophauth components.
package common

// Header names used on outbound requests to the auth API.
const (
	AuthorizationHeaderName = "Authorization"
	RequestIDHeaderName     = "X-Request-ID"

	// BearerPrefix precedes the token in the Authorization header.
	BearerPrefix = "Bearer "
)

// Keys of the durable client state.
const (
	TokenKey        = "token"
	TokenSavedAtKey = "token_saved_at"
)
