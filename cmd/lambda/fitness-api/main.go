// Fitness API Lambda entry point
package main

import (
	"os"

	"github.com/aws/aws-lambda-go/lambda"

	"fitness-tracker-api/internal/handlers"
	"fitness-tracker-api/internal/utils"
)

func main() {
	_ = utils.InitLogger(os.Getenv("LOG_LEVEL"))
	defer utils.Sync()

	handler := handlers.NewFitnessHandler()

	lambda.Start(handler.Handle)
}
