package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/gophauth/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   base URL of the auth API
//	-s string   token store kind
//	-p string   token store path
//	-l string   log level
//	-w string   web client listen address
//
// os.Args is filtered with flagx.FilterArgs first so flags owned by other
// components (-c, test flags) do not break parsing.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-s", "-p", "-l", "-w"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerBaseURL, "a", cfg.ServerBaseURL, "base URL of the auth API")
	fs.StringVar(&cfg.StoreKind, "s", cfg.StoreKind, "token store: sqlite, file or memory")
	fs.StringVar(&cfg.StorePath, "p", cfg.StorePath, "token store path")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level: debug, info, warn, error")
	fs.StringVar(&cfg.WebListenAddr, "w", cfg.WebListenAddr, "web client listen address")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
