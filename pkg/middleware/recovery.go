package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/jince360/styvia/pkg/httputil"
	"github.com/jince360/styvia/pkg/logger"
)

// requestLogger prefers the request-scoped logger when one is present and
// falls back otherwise.
func requestLogger(r *http.Request, fallback *slog.Logger) *slog.Logger {
	if l := logger.FromContext(r.Context()); l != slog.Default() {
		return l
	}
	return fallback
}

// Recovery converts handler panics into a 500 response carrying the standard
// error envelope. The panic is logged through the request-scoped logger when
// one is present, otherwise through the fallback.
func Recovery(fallback *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				// http.ErrAbortHandler is how handlers abort a response
				// on purpose; re-raise it for the server to handle.
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				requestLogger(r, fallback).ErrorContext(r.Context(), "panic recovered",
					slog.Any("panic", rec),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.String("stack", string(debug.Stack())),
				)

				httputil.WriteJSON(w, http.StatusInternalServerError, httputil.Response{
					Error: &httputil.ErrorResponse{
						Code:    "INTERNAL_ERROR",
						Message: "an internal error occurred",
					},
				})
			}()

			next.ServeHTTP(w, r)
		})
	}
}
