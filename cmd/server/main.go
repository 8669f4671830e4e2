// Package main provides a local HTTP server for development and testing.
// It serves the same handlers the Lambda functions run, so a frontend can
// talk to the API without deploying.
package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/rs/cors"

	"fitness-tracker-api/internal/config"
	"fitness-tracker-api/internal/handlers"
	"fitness-tracker-api/internal/utils"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := utils.InitLogger(cfg.LogLevel); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer utils.Sync()
	logger := utils.GetLogger()

	if err := cfg.RequireDatabase(); err != nil {
		logger.Warn("Database not configured, API requests will fail", utils.Error(err))
	}

	health, err := handlers.NewHealthHandler()
	if err != nil {
		log.Fatalf("Failed to create health handler: %v", err)
	}
	fitness := handlers.NewFitnessHandler()

	mux := http.NewServeMux()
	mux.Handle("/health", handlers.ProxyHTTP(health.Handle))
	mux.Handle("/api/health", handlers.ProxyHTTP(health.Handle))
	mux.Handle("/api", handlers.ProxyHTTP(fitness.Handle))

	// Preflight is passed through so the handlers answer it the same way
	// API Gateway would.
	c := cors.New(cors.Options{
		AllowedOrigins:     []string{"*"},
		AllowedMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:     []string{"Content-Type"},
		MaxAge:             86400,
		OptionsPassthrough: true,
	})

	addr := fmt.Sprintf("0.0.0.0:%d", cfg.Port)
	server := &http.Server{
		Addr:              addr,
		Handler:           c.Handler(mux),
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Info("Fitness Tracker API server listening",
		utils.String("addr", addr),
		utils.String("api", fmt.Sprintf("http://localhost:%d/api", cfg.Port)),
		utils.String("health", fmt.Sprintf("http://localhost:%d/health", cfg.Port)))

	if err := server.ListenAndServe(); err != nil {
		logger.Fatal("Server failed", utils.Error(err))
	}
}
