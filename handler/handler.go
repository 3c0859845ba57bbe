package handler

import (
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/reqvalidate/pkg/validator"
)

// HandlerFunc handles a request that has already been bound (and, with
// WithValidation, validated) into R.
//
//	h := handler.HandlerFunc[handler.Context, signup.CreateRequest](
//		func(ctx handler.Context, req signup.CreateRequest) handler.Response {
//			return handler.JSON(map[string]string{"email": req.Email})
//		},
//	)
type HandlerFunc[C Context, R any] func(ctx C, req R) Response

// Response renders itself. A render error is passed to the error handler.
type Response interface {
	Render(w http.ResponseWriter, r *http.Request) error
}

// Bind fills v from the request. v is always a pointer to R.
type Bind func(r *http.Request, v any) error

// ErrorHandler writes the response for a failed bind, validation or render.
type ErrorHandler[C Context] func(ctx C, err error)

// Decorator wraps a HandlerFunc. The first decorator passed to
// WithDecorators is the outermost.
type Decorator[C Context, R any] func(HandlerFunc[C, R]) HandlerFunc[C, R]

// WrapOption configures Wrap.
type WrapOption[C Context, R any] func(*wrapConfig[C, R])

type wrapConfig[C Context, R any] struct {
	binders        []Bind
	validate       bool
	errorHandler   ErrorHandler[C]
	contextFactory func(http.ResponseWriter, *http.Request) C
	decorators     []Decorator[C, R]
}

// WithBinder replaces the binders with b.
func WithBinder[C Context, R any](b Bind) WrapOption[C, R] {
	return func(c *wrapConfig[C, R]) {
		if b != nil {
			c.binders = []Bind{b}
		}
	}
}

// WithBinders appends binders; they run in order and the first failure wins.
func WithBinders[C Context, R any](binders ...Bind) WrapOption[C, R] {
	return func(c *wrapConfig[C, R]) {
		c.binders = append(c.binders, binders...)
	}
}

// WithValidation runs validator.Validate on the bound request when R (or *R)
// implements validator.Record. A failing tree goes to the error handler and
// the handler is not called.
func WithValidation[C Context, R any]() WrapOption[C, R] {
	return func(c *wrapConfig[C, R]) {
		c.validate = true
	}
}

func WithErrorHandler[C Context, R any](h ErrorHandler[C]) WrapOption[C, R] {
	return func(c *wrapConfig[C, R]) {
		if h != nil {
			c.errorHandler = h
		}
	}
}

// WithContextFactory is required when C is not Context itself.
func WithContextFactory[C Context, R any](f func(http.ResponseWriter, *http.Request) C) WrapOption[C, R] {
	return func(c *wrapConfig[C, R]) {
		if f != nil {
			c.contextFactory = f
		}
	}
}

func WithDecorators[C Context, R any](decorators ...Decorator[C, R]) WrapOption[C, R] {
	return func(c *wrapConfig[C, R]) {
		c.decorators = append(c.decorators, decorators...)
	}
}

// defaultErrorHandler behaves like NewErrorHandler with the logger that is
// the slog default at the time of the failure.
func defaultErrorHandler[C Context](ctx C, err error) {
	NewErrorHandler(slog.Default())(ctx, err)
}

// Wrap converts a typed HandlerFunc into an http.HandlerFunc.
//
//	r.Post("/create-validator", handler.Wrap(create,
//		handler.WithBinder[handler.Context, CreateRequest](binder.JSONPath()),
//		handler.WithValidation[handler.Context, CreateRequest](),
//		handler.WithErrorHandler[handler.Context, CreateRequest](errorHandler),
//	))
func Wrap[C Context, R any](h HandlerFunc[C, R], opts ...WrapOption[C, R]) http.HandlerFunc {
	cfg := &wrapConfig[C, R]{
		errorHandler: defaultErrorHandler[C],
		contextFactory: func(w http.ResponseWriter, r *http.Request) C {
			if c, ok := NewContext(w, r).(C); ok {
				return c
			}
			panic("handler: custom context type requires WithContextFactory")
		},
	}
	for _, opt := range opts {
		opt(cfg)
	}

	final := h
	for i := len(cfg.decorators) - 1; i >= 0; i-- {
		final = cfg.decorators[i](final)
	}

	return func(w http.ResponseWriter, r *http.Request) {
		ctx := cfg.contextFactory(w, r)

		var req R
		for _, bind := range cfg.binders {
			if err := bind(r, &req); err != nil {
				cfg.errorHandler(ctx, err)
				return
			}
		}

		if cfg.validate {
			if err := validateRequest(&req); err != nil {
				cfg.errorHandler(ctx, err)
				return
			}
		}

		response := final(ctx, req)
		if response == nil {
			cfg.errorHandler(ctx, ErrNilResponse)
			return
		}
		if err := response.Render(w, r); err != nil {
			cfg.errorHandler(ctx, err)
		}
	}
}

func validateRequest[R any](req *R) error {
	var rec validator.Record
	switch v := any(req).(type) {
	case validator.Record:
		rec = v
	default:
		if r, ok := any(*req).(validator.Record); ok {
			rec = r
		}
	}
	if rec == nil {
		return nil
	}
	return validator.Validate(rec)
}
