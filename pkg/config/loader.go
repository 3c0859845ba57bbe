package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const defaultEnvFile = ".env"

// Option configures Load.
type Option func(*loader)

type loader struct {
	files       []string
	required    bool
	prefix      string
	environment map[string]string
}

// WithEnvFiles reads the given dotenv files instead of ./.env. Unlike the
// default file they must exist. Later files win over earlier ones.
func WithEnvFiles(paths ...string) Option {
	return func(l *loader) {
		if len(paths) > 0 {
			l.files = paths
			l.required = true
		}
	}
}

// WithPrefix prepends prefix to every env tag, e.g. "REQVALIDATE_".
func WithPrefix(prefix string) Option {
	return func(l *loader) { l.prefix = prefix }
}

// WithEnvironment replaces the process environment as the source of
// variables. Dotenv files are still read underneath it.
func WithEnvironment(vars map[string]string) Option {
	return func(l *loader) { l.environment = vars }
}

// Load fills v from the environment using `env` and `envDefault` struct
// tags. Dotenv values are used only for variables the environment does not
// set; the process environment itself is never modified.
//
//	type Config struct {
//	    Env  string            `env:"APP_ENV" envDefault:"development"`
//	    HTTP httpserver.Config
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//	    return err
//	}
func Load[T any](v *T, opts ...Option) error {
	if v == nil {
		return ErrNilPointer
	}

	l := &loader{files: []string{defaultEnvFile}}
	for _, opt := range opts {
		opt(l)
	}

	vars, err := l.dotenv()
	if err != nil {
		return err
	}

	current := l.environment
	if current == nil {
		current = processEnvironment()
	}
	for k, val := range current {
		vars[k] = val
	}

	if err := env.ParseWithOptions(v, env.Options{
		Prefix:      l.prefix,
		Environment: vars,
	}); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

// MustLoad panics when Load fails.
func MustLoad[T any](v *T, opts ...Option) {
	if err := Load(v, opts...); err != nil {
		panic(fmt.Sprintf("load configuration: %v", err))
	}
}

func (l *loader) dotenv() (map[string]string, error) {
	vars := make(map[string]string)
	for _, path := range l.files {
		values, err := godotenv.Read(path)
		if err != nil {
			if !l.required && errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, errors.Join(ErrEnvFile, fmt.Errorf("%s: %w", path, err))
		}
		for k, val := range values {
			vars[k] = val
		}
	}
	return vars, nil
}

func processEnvironment() map[string]string {
	vars := make(map[string]string)
	for _, kv := range os.Environ() {
		if k, val, ok := strings.Cut(kv, "="); ok {
			vars[k] = val
		}
	}
	return vars
}
