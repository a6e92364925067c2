package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/workasana/workasana-be/internal/api"
	"github.com/workasana/workasana-be/internal/auth"
	"github.com/workasana/workasana-be/internal/config"
	"github.com/workasana/workasana-be/internal/database"
	"github.com/workasana/workasana-be/internal/logger"
	"github.com/workasana/workasana-be/internal/services"
)

func main() {
	logger.Init()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Set up database
	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize database")
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("Failed to apply database migrations")
	}

	// Token manager gets the signing secret from config, not from the
	// environment at call time.
	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL)

	// Set up services
	deps := api.RouterDeps{
		Tokens:        tokens,
		Users:         services.NewUserService(db),
		Teams:         services.NewTeamService(db),
		Projects:      services.NewProjectService(db),
		Tags:          services.NewTagService(db),
		Tasks:         services.NewTaskService(db),
		Reports:       services.NewReportService(db),
		AllowedOrigin: cfg.AllowedOrigin,
	}

	// Set up router and server
	router := api.NewRouter(deps, api.DefaultRoutePolicy())
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.ServerPort),
		Handler: router,
	}

	// Graceful shutdown
	go func() {
		log.Info().Int("port", cfg.ServerPort).Msg("Server starting")
		if err := srv.ListenAndServe(); err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("ListenAndServe()")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exiting")
}
