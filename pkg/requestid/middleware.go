package requestid

import (
	"net/http"
	"regexp"

	"github.com/google/uuid"
)

// Header is the default header carrying the request id in both directions.
const Header = "X-Request-ID"

const maxLength = 128

var acceptable = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// Option configures New.
type Option func(*middleware)

type middleware struct {
	header   string
	generate func() string
}

// WithHeader reads and writes the id under a different header name.
func WithHeader(name string) Option {
	return func(m *middleware) {
		if name != "" {
			m.header = name
		}
	}
}

// WithGenerator replaces the UUIDv4 generator.
func WithGenerator(fn func() string) Option {
	return func(m *middleware) {
		if fn != nil {
			m.generate = fn
		}
	}
}

// New returns middleware that reuses a well-formed incoming id or generates
// a fresh one, echoes it in the response header and stores it in the request
// context.
func New(opts ...Option) func(http.Handler) http.Handler {
	m := &middleware{
		header:   Header,
		generate: uuid.NewString,
	}
	for _, opt := range opts {
		opt(m)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(m.header)
			if !Valid(id) {
				id = m.generate()
			}
			w.Header().Set(m.header, id)
			next.ServeHTTP(w, r.WithContext(WithContext(r.Context(), id)))
		})
	}
}

// Middleware is New with default options.
func Middleware(next http.Handler) http.Handler {
	return New()(next)
}

// Valid reports whether a client-supplied id may be propagated: 1 to 128
// characters of letters, digits, '-' and '_'.
func Valid(id string) bool {
	return id != "" && len(id) <= maxLength && acceptable.MatchString(id)
}
