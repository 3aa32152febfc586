package middleware

import (
	"context"
	"fmt"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type contextKey string

const RequestIDKey contextKey = "request_id"

// RequestIDHeader is the response header carrying the per-request ID.
const RequestIDHeader = "X-Request-Id"

// WithLogger adds a logger to the context and logs request information.
func WithLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			logger := log.With().
				Str("host", r.Host).
				Str("method", r.Method).
				Str("url", r.URL.String()).
				Str("remote_addr", r.RemoteAddr).
				Time("timestamp", time.Now()).
				Logger()

			// Add the logger to the context
			ctx := logger.WithContext(r.Context())
			next.ServeHTTP(w, r.WithContext(ctx))
		},
	)
}

// WithRequestID assigns every request a UUID, exposes it as a response
// header and stamps it onto the request logger. Must run inside WithLogger.
func WithRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			requestID := uuid.NewString()
			w.Header().Set(RequestIDHeader, requestID)

			ctx := context.WithValue(r.Context(), RequestIDKey, requestID)
			zerolog.Ctx(ctx).UpdateContext(func(c zerolog.Context) zerolog.Context {
				return c.Str("request_id", requestID)
			})

			next.ServeHTTP(w, r.WithContext(ctx))
		},
	)
}

// GetRequestID returns the request ID stored by WithRequestID, or "".
func GetRequestID(ctx context.Context) string {
	if id, ok := ctx.Value(RequestIDKey).(string); ok {
		return id
	}
	return ""
}

// NewRecovery turns panics into the configured fault behavior: a detailed
// response in development, a redirect to the generic error page otherwise.
func NewRecovery(isDev bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				defer func() {
					rec := recover()
					if rec == nil {
						return
					}
					stack := debug.Stack()

					logger := zerolog.Ctx(r.Context())
					logger.Error().
						Interface("panic", rec).
						Str("stack", string(stack)).
						Msg("recovered from panic")

					if isDev {
						http.Error(w, fmt.Sprintf("panic: %v\n\n%s", rec, stack),
							http.StatusInternalServerError)
						return
					}
					http.Redirect(w, r, "/home/error", http.StatusFound)
				}()

				next.ServeHTTP(w, r)
			},
		)
	}
}
