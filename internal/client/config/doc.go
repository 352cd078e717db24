// Package config loads runtime configuration for the gophauth clients.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Environment variables prefixed GOPHAUTH_ (see parseEnv); a .env file
//     in the working directory is loaded first if present.
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the auth API (scheme://host:port)
//	-s string   token store: sqlite, file or memory
//	-p string   token store path (database file or JSON file)
//	-l string   log level: debug, info, warn, error
//	-w string   listen address of the web client
//
// # JSON schema
//
//	{
//	  "server_base_url": "http://127.0.0.1:8080",
//	  "store_kind": "sqlite",
//	  "store_path": "gophauth.db",
//	  "log_level": "info",
//	  "log_format": "text",
//	  "web_listen_addr": "127.0.0.1:3000",
//	  "web_read_header_timeout": "5s"
//	}
//
// Durations accept either strings like "5s" or integer nanoseconds.
package config
