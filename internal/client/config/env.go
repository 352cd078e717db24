package config

import (
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// parseEnv overlays Config with GOPHAUTH_* environment variables. Variables
// from a .env file in the working directory are loaded first; they never
// override variables already set in the process environment. Unset
// variables leave the current values untouched.
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if err := cleanenv.ReadEnv(cfg); err != nil {
		panic(err)
	}
}
