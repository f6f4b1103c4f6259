// Command server runs the EventPulse API.
//
// @title EventPulse API
// @version 1.0
// @description Event management backend: auth, events, registration, and feedback.
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	"eventpulse/config"
	_ "eventpulse/docs"
	"eventpulse/internal/adapters/auth"
	"eventpulse/internal/adapters/email"
	"eventpulse/internal/adapters/sentiment"
	httpdelivery "eventpulse/internal/delivery/http"
	"eventpulse/internal/delivery/http/controllers"
	"eventpulse/internal/delivery/http/middleware"
	"eventpulse/internal/repository/postgres"
	"eventpulse/internal/services"
)

const bcryptCost = 10

func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		os.Exit(1)
	}
	logger := config.NewLogger()

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		logger.Error("failed to open database", "err", err)
		os.Exit(1)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		logger.Error("failed to reach database", "err", err)
		os.Exit(1)
	}
	logger.Info("connected to database")

	if err := postgres.MigrateUp(cfg.DBUrl); err != nil {
		logger.Error("failed to run migrations", "err", err)
		os.Exit(1)
	}

	// Adapters
	hasher := auth.NewBcryptHasher(bcryptCost)
	issuer, verifier := auth.NewJWTCodec(cfg.JWTSecret)
	mailer := email.NewMailer(email.MailerConfig{
		Provider:    cfg.EmailProvider,
		FromAddress: cfg.EmailFrom,
		FromName:    cfg.EmailFromName,
		SES: email.SESConfig{
			Region:          cfg.SESRegion,
			AccessKeyID:     cfg.SESAccessKey,
			SecretAccessKey: cfg.SESSecretKey,
		},
	}, logger)
	analyzer := sentiment.NewAnalyzer()

	// Repositories
	userRepo := postgres.NewUserRepository(db)
	eventRepo := postgres.NewEventRepository(db)
	attendeeRepo := postgres.NewAttendeeRepository(db)
	feedbackRepo := postgres.NewFeedbackRepository(db)

	// Services
	authService := services.NewAuthService(userRepo, hasher, issuer, cfg.JWTExpiry)
	eventService := services.NewEventService(eventRepo, attendeeRepo, userRepo, mailer, logger)
	feedbackService := services.NewFeedbackService(feedbackRepo, analyzer)

	// Controllers and router
	authController := controllers.NewAuthController(logger, authService)
	eventController := controllers.NewEventController(logger, eventService)
	feedbackController := controllers.NewFeedbackController(logger, feedbackService)
	mux := httpdelivery.NewRouter(authController, eventController, feedbackController, verifier, db)

	handler := middleware.CORS(cfg.AllowedOrigins,
		middleware.Logging(logger,
			middleware.Recover(logger, mux)))

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("server listening", "port", cfg.Port, "env", cfg.Environment)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "err", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown failed", "err", err)
	}
}
