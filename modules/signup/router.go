package signup

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/reqvalidate/handler"
	"github.com/dmitrymomot/reqvalidate/pkg/binder"
)

type Mountable interface {
	Handle() http.Handler
}

// RouterOptions configures Router. Service defaults to a signup Service
// using an error handler built from Logger.
type RouterOptions struct {
	Logger  *slog.Logger
	Service Mountable

	// Strict rejects unknown JSON fields on the path-aware endpoints.
	Strict bool
}

// Router mounts the signup endpoints at the root and renders routing misses
// with the JSON error envelope.
//
//	r := chi.NewRouter()
//	r.Mount("/", signup.Router(signup.RouterOptions{Logger: log}))
func Router(opts RouterOptions) chi.Router {
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}

	svc := opts.Service
	if svc == nil {
		var decodeOpts []binder.DecodeOption
		if opts.Strict {
			decodeOpts = append(decodeOpts, binder.WithDisallowUnknownFields())
		}
		svc = NewService(handler.NewErrorHandler(log), decodeOpts...)
	}

	r := chi.NewRouter()
	r.NotFound(handler.NotFound(log))
	r.MethodNotAllowed(handler.MethodNotAllowed(log))
	r.Mount("/", svc.Handle())
	return r
}
