package handlers

import (
	"context"
	"io"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/google/uuid"

	"fitness-tracker-api/internal/utils"
)

// LambdaFunc is the signature of an API Gateway proxy Lambda handler.
type LambdaFunc func(ctx context.Context, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error)

// ProxyHTTP serves a Lambda handler over plain net/http for local
// development. Each request gets a fresh request id, as API Gateway would
// assign one.
func ProxyHTTP(fn LambdaFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			http.Error(w, "failed to read request body", http.StatusBadRequest)
			return
		}

		request := events.APIGatewayProxyRequest{
			HTTPMethod: r.Method,
			Path:       r.URL.Path,
			Headers:    map[string]string{},
			Body:       string(body),
			RequestContext: events.APIGatewayProxyRequestContext{
				RequestID:  uuid.NewString(),
				HTTPMethod: r.Method,
				Path:       r.URL.Path,
			},
		}
		for name := range r.Header {
			request.Headers[name] = r.Header.Get(name)
		}
		if query := r.URL.Query(); len(query) > 0 {
			request.QueryStringParameters = make(map[string]string, len(query))
			for key := range query {
				request.QueryStringParameters[key] = query.Get(key)
			}
		}

		ctx := lambdacontext.NewContext(r.Context(), &lambdacontext.LambdaContext{
			AwsRequestID: request.RequestContext.RequestID,
		})

		resp, err := fn(ctx, request)
		if err != nil {
			utils.ForInvocation(ctx).Error("Handler returned an error", utils.Error(err))
			http.Error(w, err.Error(), http.StatusBadGateway)
			return
		}

		for name, value := range resp.Headers {
			w.Header().Set(name, value)
		}
		w.WriteHeader(resp.StatusCode)
		_, _ = io.WriteString(w, resp.Body)
	}
}
