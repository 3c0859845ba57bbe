package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/reqvalidate/modules/signup"
	"github.com/dmitrymomot/reqvalidate/pkg/config"
	"github.com/dmitrymomot/reqvalidate/pkg/httpserver"
	"github.com/dmitrymomot/reqvalidate/pkg/logger"
	"github.com/dmitrymomot/reqvalidate/pkg/requestid"
)

func main() {
	if err := run(context.Background()); err != nil {
		slog.Error("server exited", logger.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, opts ...config.Option) error {
	var cfg appConfig
	if err := config.Load(&cfg, opts...); err != nil {
		return err
	}

	log := newLogger(cfg)
	logger.SetAsDefault(log)

	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
	return srv.Run(ctx, newRouter(cfg, log))
}

func newLogger(cfg appConfig) *slog.Logger {
	opts := []logger.Option{
		logger.WithEnvironment(cfg.Env, cfg.Name),
		logger.WithContextExtractors(requestid.LogExtractor()),
	}
	if cfg.LogLevel != "" {
		opts = append(opts, logger.WithLevelName(cfg.LogLevel))
	}
	return logger.New(opts...)
}

func newRouter(cfg appConfig, log *slog.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(requestid.Middleware)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)

	r.Get("/healthz", httpserver.Health())
	r.Mount("/", signup.Router(signup.RouterOptions{
		Logger: log,
		Strict: cfg.StrictJSON,
	}))
	return r
}
