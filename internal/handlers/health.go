package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/aws/aws-lambda-go/events"

	appConfig "fitness-tracker-api/internal/config"
	"fitness-tracker-api/internal/services/database"
	"fitness-tracker-api/internal/utils"
)

// Pinger checks that a database answers.
type Pinger func(ctx context.Context, databaseURL string) error

// pingDatabase opens a connection, pings it and closes it again.
func pingDatabase(ctx context.Context, databaseURL string) error {
	db, err := database.Connect(ctx, databaseURL)
	if err != nil {
		return err
	}
	defer db.Close(ctx)

	return db.Ping(ctx)
}

// HealthHandler handles health check requests.
type HealthHandler struct {
	cfg  *appConfig.Config
	ping Pinger
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler() (*HealthHandler, error) {
	cfg, err := appConfig.Load()
	if err != nil {
		return nil, err
	}

	return &HealthHandler{cfg: cfg, ping: pingDatabase}, nil
}

// HealthResponse is the response structure for health checks.
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Service   string `json:"service"`
	Version   string `json:"version"`
	Stage     string `json:"stage"`
	Database  string `json:"database,omitempty"`
}

// Handle processes health check requests.
func (h *HealthHandler) Handle(ctx context.Context, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	if request.HTTPMethod == http.MethodOptions {
		return preflightResponse(), nil
	}

	response := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Service:   "fitness-tracker-api",
		Version:   h.cfg.ServiceVersion,
		Stage:     h.cfg.Stage,
	}

	if err := h.cfg.RequireDatabase(); err != nil {
		response.Database = "not configured"
	} else {
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()

		if err := h.ping(pingCtx, h.cfg.DatabaseURL); err != nil {
			utils.ForInvocation(ctx).Warn("Database health check failed", utils.Error(err))
			response.Database = "disconnected"
			response.Status = "degraded"
		} else {
			response.Database = "connected"
		}
	}

	statusCode := http.StatusOK
	if response.Status != "healthy" {
		statusCode = http.StatusServiceUnavailable
	}

	return jsonResponse(statusCode, response)
}
