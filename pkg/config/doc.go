// Package config loads typed configuration from environment variables and
// dotenv files.
//
// Struct fields are described with caarlos0/env tags; nested structs are
// parsed recursively, so a component can own its own Config type:
//
//	type Config struct {
//	    Env      string `env:"APP_ENV" envDefault:"development"`
//	    LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
//	    HTTP     httpserver.Config
//	}
//
// Variables come from the process environment first and from ./.env (or the
// files passed to WithEnvFiles) second. A missing ./.env is not an error.
package config
