// Package cli provides the interactive gophauth terminal client.
//
// It wires configuration, the token store and the auth service into a
// small REPL. On start the stored session is restored; the user then
// registers, logs in, views the dashboard or logs out.
//
// Commands:
//   - register, login: guest-only, a signed-in user is shown the dashboard
//   - me | dashboard: protected, a guest is sent to login first
//   - status: session state and token details
//   - logout, help, exit | quit
//
// The REPL is started via App.Run(ctx), which blocks until the user exits
// or input ends.
package cli
