// Package client contains the transport side of the gophauth clients.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Client interface) for the
//     auth server: Register, Login and FetchProfile.
//  2. A concrete HTTP/JSON implementation (see HTTPClient). Each request
//     carries a fresh X-Request-ID; the profile request carries the bearer
//     token. There are no retries and no client-side timeout.
//  3. Local persistence bootstrap (InitDatabase, RunMigrations) wiring an
//     SQLite database and applying embedded goose migrations.
//
// # Error Handling
//
// Failures are reported with sentinel errors matched via errors.Is:
// ErrInvalidCredentials, ErrInvalidInput, ErrNetwork, ErrRegistrationFailed,
// ErrProfileFetchFailed, ErrLoginFailed. Typed errors (NetworkError,
// RegistrationFailedError, ProfileFetchError, UnexpectedStatusError,
// ValidationError) carry details and are reachable with errors.As.
// UserMessage renders any of them for display.
package client
