package http

import (
	"database/sql"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"eventpulse/internal/delivery/http/controllers"
	"eventpulse/internal/delivery/http/helpers"
	"eventpulse/internal/delivery/http/middleware"
	"eventpulse/internal/domain"
)

// NewRouter initializes the HTTP router with all application routes.
// Every route except register/login runs behind RequireAuth; event mutation
// and the all-feedback listing additionally require the admin role.
func NewRouter(
	authController *controllers.AuthController,
	eventController *controllers.EventController,
	feedbackController *controllers.FeedbackController,
	verifier domain.TokenVerifier,
	db *sql.DB,
) *http.ServeMux {
	mux := http.NewServeMux()

	authed := middleware.RequireAuth(verifier)
	admin := func(h http.HandlerFunc) http.HandlerFunc {
		return authed(middleware.RequireAdmin(h))
	}

	// Auth
	mux.HandleFunc("POST /api/auth/register", authController.Register)
	mux.HandleFunc("POST /api/auth/login", authController.Login)

	// Events
	mux.HandleFunc("POST /api/events", admin(eventController.CreateEvent))
	mux.HandleFunc("GET /api/events", authed(eventController.ListEvents))
	mux.HandleFunc("GET /api/events/upcoming", authed(eventController.ListUpcoming))
	mux.HandleFunc("GET /api/events/{id}", authed(eventController.GetEvent))
	mux.HandleFunc("PUT /api/events/{id}", admin(eventController.UpdateEvent))
	mux.HandleFunc("DELETE /api/events/{id}", admin(eventController.DeleteEvent))
	mux.HandleFunc("POST /api/events/{id}/register", authed(eventController.RegisterForEvent))

	// Feedback
	mux.HandleFunc("POST /api/feedback", authed(feedbackController.SubmitFeedback))
	mux.HandleFunc("GET /api/feedback/event/{eventID}", authed(feedbackController.ListFeedbackForEvent))
	mux.HandleFunc("GET /api/feedback/my-feedback", authed(feedbackController.ListMyFeedback))
	mux.HandleFunc("GET /api/feedback/all", admin(feedbackController.ListAllFeedback))

	// Operational
	mux.Handle("GET /metrics", promhttp.Handler())
	mux.Handle("/swagger/", httpSwagger.WrapHandler)
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		if err := db.PingContext(r.Context()); err != nil {
			helpers.WriteJSONError(w, http.StatusServiceUnavailable, "database unreachable")
			return
		}
		helpers.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	return mux
}
