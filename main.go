package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"

	"github.com/HugoFdezTbres/fairplay/internal/auth"
	"github.com/HugoFdezTbres/fairplay/internal/config"
	"github.com/HugoFdezTbres/fairplay/internal/court"
	"github.com/HugoFdezTbres/fairplay/internal/database"
	"github.com/HugoFdezTbres/fairplay/internal/events"
	server "github.com/HugoFdezTbres/fairplay/internal/http"
	"github.com/HugoFdezTbres/fairplay/internal/lifecycle"
	"github.com/HugoFdezTbres/fairplay/internal/match"
	"github.com/HugoFdezTbres/fairplay/internal/metrics"
	"github.com/HugoFdezTbres/fairplay/internal/reservation"
	"github.com/HugoFdezTbres/fairplay/internal/sport"
	"github.com/HugoFdezTbres/fairplay/internal/user"
)

func main() {
	startTime := time.Now()
	log.SetFormatter(log.JSONFormatter)
	cfg := config.Load()
	db, dbTeardown, err := database.InitDB(cfg.DBName, cfg.Turso.PrimaryURL, cfg.Turso.AuthToken, cfg.MigrationsDir)
	dbInitDuration := time.Since(startTime)
	log.Info("Database initialization time recorded", "duration_ms", dbInitDuration.Milliseconds())
	if err != nil {
		log.Fatalf("Failed to initialize database: %s", err)
	}
	defer func() {
		log.Info("Closing database connection")
		dbTeardown()
	}()

	metricsSvc := metrics.NewService()
	metricsHandler := metrics.NewMetricsHandler()
	publisher := events.New(cfg.ProjectID)
	tokens := auth.NewTokenIssuer(cfg.JWT.Secret, cfg.JWT.Issuer, 24*time.Hour)

	resStore := reservation.NewStore(db)
	matchStore := match.NewStore(db)
	engine := reservation.NewEngine(resStore, metricsSvc, publisher)
	coordinator := match.NewCoordinator(matchStore, metricsSvc, publisher)
	sweeper := lifecycle.New(resStore, matchStore, metricsSvc, publisher)

	s := server.NewServer(
		engine,
		coordinator,
		court.NewStore(db),
		sport.NewStore(db),
		user.NewStore(db),
		sweeper,
		tokens,
		metricsSvc,
		metricsHandler,
		cfg,
	)

	startupDuration := time.Since(startTime)
	metricsSvc.SetStartupTime(startupDuration.Seconds())
	log.Info("Startup time recorded", "duration_ms", startupDuration.Milliseconds())

	// --- Graceful shutdown setup ---
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: s,
	}

	serverErrors := make(chan error, 1)

	go func() {
		log.Info("Server started", "port", cfg.Port)
		serverErrors <- srv.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	case sig := <-shutdown:
		log.Info("Shutdown signal received", "signal", sig)

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			log.Error("Server shutdown failed", "error", err)
		} else {
			log.Info("Server gracefully stopped")
		}
	}

	log.Info("Server process shutting down")
}
