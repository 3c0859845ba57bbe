package main

import "github.com/dmitrymomot/reqvalidate/pkg/httpserver"

type appConfig struct {
	Env      string `env:"APP_ENV" envDefault:"development"`
	Name     string `env:"APP_NAME" envDefault:"reqvalidate"`
	LogLevel string `env:"LOG_LEVEL"`

	// StrictJSON rejects unknown request fields on the path-aware endpoints.
	StrictJSON bool `env:"STRICT_JSON" envDefault:"false"`

	HTTP httpserver.Config
}
