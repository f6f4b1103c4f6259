package middleware

import (
	"log/slog"
	"net/http"

	"eventpulse/internal/delivery/http/helpers"
)

// Recover is the top-level fallback: if any handler panics, the client still
// gets a 500 with a generic message and the panic is logged with the request.
func Recover(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				logger.Error("panic recovered",
					"method", r.Method,
					"path", r.URL.Path,
					"panic", rec,
				)
				helpers.WriteJSONError(w, http.StatusInternalServerError, "Something went wrong!")
			}
		}()
		next.ServeHTTP(w, r)
	})
}
