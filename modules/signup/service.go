package signup

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/reqvalidate/handler"
	"github.com/dmitrymomot/reqvalidate/pkg/binder"
)

// CreateResult is the success payload of the create endpoints.
type CreateResult struct {
	Message string `json:"message"`
}

// Service exposes the three create endpoints. They accept the same body and
// differ only in how much of the pipeline runs:
//
//	POST /create-basic      plain JSON decoding, no field paths
//	POST /create-path       path-aware decoding
//	POST /create-validator  path-aware decoding plus rule validation
type Service struct {
	errorHandler handler.ErrorHandler[handler.Context]
	decodeOpts   []binder.DecodeOption
}

// NewService panics on a nil error handler.
func NewService(errorHandler handler.ErrorHandler[handler.Context], opts ...binder.DecodeOption) *Service {
	if errorHandler == nil {
		panic("signup: nil error handler")
	}
	return &Service{errorHandler: errorHandler, decodeOpts: opts}
}

func (s *Service) Handle() http.Handler {
	r := chi.NewRouter()

	r.Post("/create-basic", handler.Wrap(s.create,
		handler.WithBinder[handler.Context, CreateRequest](binder.JSON()),
		handler.WithErrorHandler[handler.Context, CreateRequest](s.errorHandler),
	))

	r.Post("/create-path", handler.Wrap(s.create,
		handler.WithBinder[handler.Context, CreateRequest](binder.JSONPath(s.decodeOpts...)),
		handler.WithErrorHandler[handler.Context, CreateRequest](s.errorHandler),
	))

	r.Post("/create-validator", handler.Wrap(s.create,
		handler.WithBinder[handler.Context, CreateRequest](binder.JSONPath(s.decodeOpts...)),
		handler.WithValidation[handler.Context, CreateRequest](),
		handler.WithErrorHandler[handler.Context, CreateRequest](s.errorHandler),
	))

	return r
}

func (s *Service) create(_ handler.Context, req CreateRequest) handler.Response {
	return handler.JSON(CreateResult{Message: "called with: " + req.String()})
}
