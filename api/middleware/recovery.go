// ABOUTME: Panic recovery middleware for API endpoints
// ABOUTME: Turns an unexpected panic into a problem+json 500 carrying the panic message

package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"
	"runtime/debug"

	"email-shield-api/core/interfaces"
)

// problem mirrors the RFC 7807 body huma emits for returned errors
type problem struct {
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail"`
}

// RecoveryMiddleware recovers from handler panics and responds with a 500
func RecoveryMiddleware(logger interfaces.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				detail := fmt.Sprint(rec)
				logger.Error("Recovered from handler panic", map[string]interface{}{
					"request_id": RequestIDFromContext(r.Context()),
					"method":     r.Method,
					"path":       r.URL.Path,
					"panic":      detail,
					"stack":      string(debug.Stack()),
				})

				w.Header().Set("Content-Type", "application/problem+json")
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(problem{
					Title:  http.StatusText(http.StatusInternalServerError),
					Status: http.StatusInternalServerError,
					Detail: detail,
				})
			}()

			next.ServeHTTP(w, r)
		})
	}
}
