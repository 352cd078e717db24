// Package tokens persists the auth token between runs.
//
// Three backends share the Repository contract:
//   - SQLiteRepository keeps the token in the metadata table of the local
//     client database, next to the time it was saved;
//   - FileRepository keeps it in a small JSON document readable only by the
//     owner;
//   - MemoryRepository keeps it for the lifetime of the process.
//
// An absent token is reported as the empty AuthToken with a nil error.
package tokens
