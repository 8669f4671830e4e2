// Package handlers provides the Lambda handlers for the fitness tracker API.
package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/aws/aws-lambda-go/events"

	appConfig "fitness-tracker-api/internal/config"
	"fitness-tracker-api/internal/models"
	"fitness-tracker-api/internal/services/database"
	"fitness-tracker-api/internal/utils"
)

// Store is the set of queries the fitness handler dispatches to.
type Store interface {
	ListExercises(ctx context.Context) ([]models.Exercise, error)
	ListFoods(ctx context.Context) ([]models.Food, error)
	ListRecentWeightStats(ctx context.Context) ([]models.WeightStat, error)
	ListMealsForToday(ctx context.Context) ([]models.MealSummary, error)
	ListWorkoutPlans(ctx context.Context) ([]models.WorkoutPlan, error)
	ListPersonalRecords(ctx context.Context) ([]models.PersonalRecord, error)

	CreateMeal(ctx context.Context, name, mealTime *string) (int64, error)
	UpsertWeight(ctx context.Context, weight *string) (int64, error)
	CreateWorkoutPlan(ctx context.Context, name, description *string) (int64, error)

	Close(ctx context.Context) error
}

// Connector opens a Store for one invocation.
type Connector func(ctx context.Context, databaseURL string) (Store, error)

// connectDatabase is the default Connector backed by a single pgx connection.
func connectDatabase(ctx context.Context, databaseURL string) (Store, error) {
	db, err := database.Connect(ctx, databaseURL)
	if err != nil {
		return nil, err
	}
	return db, nil
}

// FitnessHandler routes API Gateway requests to fixed fitness queries.
type FitnessHandler struct {
	connect     Connector
	databaseURL func() string
	now         func() time.Time
}

// NewFitnessHandler creates a handler that reads DATABASE_URL on every
// invocation and opens a fresh connection for it.
func NewFitnessHandler() *FitnessHandler {
	return &FitnessHandler{
		connect:     connectDatabase,
		databaseURL: appConfig.DatabaseURLFromEnv,
		now:         time.Now,
	}
}

// Handle processes one API Gateway proxy request. Failures are reported in
// the response; the returned error is always nil.
func (h *FitnessHandler) Handle(ctx context.Context, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	logger := utils.ForInvocation(ctx).With(utils.String("method", request.HTTPMethod))

	switch request.HTTPMethod {
	case http.MethodOptions:
		return preflightResponse(), nil
	case http.MethodGet, http.MethodPost:
	default:
		logger.Debug("Rejected method")
		return errorResponse(http.StatusMethodNotAllowed, models.ErrMethodNotAllowed.Error())
	}

	start := time.Now()
	result, err := h.dispatch(ctx, request)
	if err != nil {
		logger.Error("Request failed", utils.Error(err))
		return errorResponse(http.StatusInternalServerError, err.Error())
	}

	logger.Debug("Request completed", utils.Duration("elapsed", time.Since(start)))
	return jsonResponse(http.StatusOK, result)
}

// dispatch opens the invocation's connection and runs the selected action.
func (h *FitnessHandler) dispatch(ctx context.Context, request events.APIGatewayProxyRequest) (interface{}, error) {
	store, err := h.connect(ctx, h.databaseURL())
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := store.Close(ctx); cerr != nil {
			utils.ForInvocation(ctx).Warn("Failed to close database connection", utils.Error(cerr))
		}
	}()

	if request.HTTPMethod == http.MethodGet {
		return h.read(ctx, store, request.QueryStringParameters)
	}
	return h.write(ctx, store, []byte(request.Body))
}

func (h *FitnessHandler) read(ctx context.Context, store Store, params map[string]string) (interface{}, error) {
	action, ok := params["action"]
	if !ok {
		action = models.DefaultReadAction
	}

	run, ok := readActions[action]
	if !ok {
		return unknownAction(ctx, action), nil
	}
	return run(ctx, store)
}

func (h *FitnessHandler) write(ctx context.Context, store Store, body []byte) (interface{}, error) {
	parsed, err := models.ParseRequestBody(body)
	if err != nil {
		return nil, err
	}

	action, ok := parsed.Action()
	run, known := writeActions[action]
	if !ok || !known {
		return unknownAction(ctx, action), nil
	}
	return run(ctx, h, store, parsed)
}

// unknownAction is reported with status 200, not as an HTTP error.
func unknownAction(ctx context.Context, action string) models.ErrorResponse {
	utils.ForInvocation(ctx).Info("Unknown action", utils.String("action", action))
	return models.ErrorResponse{Error: models.ErrUnknownAction.Error()}
}
