package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/rs/cors"
	"github.com/rs/zerolog"

	"mentor-booking-backend/config"
	"mentor-booking-backend/controllers"
	"mentor-booking-backend/models"
	"mentor-booking-backend/repository"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	if config.IsDevelopment() {
		logger = logger.Output(zerolog.ConsoleWriter{Out: os.Stdout})
	}

	db, err := config.ConnectDB()
	if err != nil {
		logger.Fatal().Err(err).Msg("database connection failed")
	}
	logger.Info().Msg("database connected successfully")

	if err := db.AutoMigrate(
		&models.Mentor{},
		&models.Session{},
		&models.Booking{},
	); err != nil {
		logger.Fatal().Err(err).Msg("database migration failed")
	}

	mentorRepo := repository.NewMentorRepository(db)
	sessionRepo := repository.NewSessionRepository(db)
	bookingRepo := repository.NewBookingRepository(db)

	mentorCtrl := controllers.NewMentorController(mentorRepo, logger)
	sessionCtrl := controllers.NewSessionController(sessionRepo, mentorRepo, logger)
	bookingCtrl := controllers.NewBookingController(bookingRepo, sessionRepo, logger)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = controllers.NewHTTPErrorHandler(logger)
	controllers.RegisterRoutes(e, mentorCtrl, sessionCtrl, bookingCtrl)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Origin", "X-Requested-With", "Content-Type", "Accept", "Authorization"},
	})

	srv := &http.Server{
		Addr:    ":" + config.Port(),
		Handler: corsHandler.Handler(e),
	}

	go func() {
		logger.Info().Str("port", config.Port()).Msg("server is running")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("server failed")
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	logger.Info().Msg("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("server shutdown failed")
	}
	if err := config.CloseDB(db); err != nil {
		logger.Error().Err(err).Msg("closing database failed")
	} else {
		logger.Info().Msg("database disconnected")
	}
}
