package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/aws/aws-lambda-go/events"

	"fitness-tracker-api/internal/models"
)

// CORS header values sent on preflight responses.
const (
	corsAllowMethods = "GET, POST, PUT, DELETE, OPTIONS"
	corsAllowHeaders = "Content-Type"
	corsMaxAge       = "86400"
)

// preflightResponse answers an OPTIONS request without touching the database.
func preflightResponse() events.APIGatewayProxyResponse {
	return events.APIGatewayProxyResponse{
		StatusCode: http.StatusOK,
		Headers: map[string]string{
			"Access-Control-Allow-Origin":  "*",
			"Access-Control-Allow-Methods": corsAllowMethods,
			"Access-Control-Allow-Headers": corsAllowHeaders,
			"Access-Control-Max-Age":       corsMaxAge,
		},
		Body:            "",
		IsBase64Encoded: false,
	}
}

// jsonHeaders returns the headers for a JSON body. Every response allows any origin.
func jsonHeaders() map[string]string {
	return map[string]string{
		"Access-Control-Allow-Origin": "*",
		"Content-Type":                "application/json",
	}
}

// jsonResponse encodes payload as the response body.
func jsonResponse(statusCode int, payload interface{}) (events.APIGatewayProxyResponse, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return errorResponse(http.StatusInternalServerError, err.Error())
	}

	return events.APIGatewayProxyResponse{
		StatusCode:      statusCode,
		Headers:         jsonHeaders(),
		Body:            string(body),
		IsBase64Encoded: false,
	}, nil
}

// errorResponse creates an error response carrying message under "error".
func errorResponse(statusCode int, message string) (events.APIGatewayProxyResponse, error) {
	body, _ := json.Marshal(models.ErrorResponse{Error: message})

	return events.APIGatewayProxyResponse{
		StatusCode:      statusCode,
		Headers:         jsonHeaders(),
		Body:            string(body),
		IsBase64Encoded: false,
	}, nil
}
