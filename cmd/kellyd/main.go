package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/katalvlaran/kelly"
	"github.com/katalvlaran/kelly/internal/config"
	"github.com/katalvlaran/kelly/internal/handlers"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("config load failed")
	}

	// Logging setup
	lvl, _ := zerolog.ParseLevel(cfg.LogLevel)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr}).Level(lvl)

	// Create handler with service-level solver options
	handler := handlers.NewHandler(
		kelly.Options{
			BisectTol: cfg.BisectTol,
			NewtonTol: cfg.NewtonTol,
			MaxIter:   cfg.MaxIter,
		},
		cfg.SimRounds,
		cfg.SimBankroll,
		log.Logger,
	)

	// Create router
	r := chi.NewRouter()

	// Middleware
	r.Use(handlers.RequestLogger(log.Logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	// CORS configuration
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	// Routes
	r.Get("/health", handler.HealthCheck)
	r.Post("/api/v1/kelly/single", handler.SolveSingle)
	r.Post("/api/v1/kelly/double", handler.SolveDouble)
	r.Post("/api/v1/simulate", handler.Simulate)

	// Start server
	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Info().
			Int("port", cfg.Port).
			Int("max_iter", cfg.MaxIter).
			Float64("bisect_tol", cfg.BisectTol).
			Float64("newton_tol", cfg.NewtonTol).
			Msg("kellyd started")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	log.Info().Msg("shutting down gracefully")

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("shutdown error")
	}

	log.Info().Msg("kellyd stopped")
}
