// Package utils provides logging helpers shared by the Lambda functions and
// the local development server.
package utils

import (
	"context"
	"os"

	"github.com/aws/aws-lambda-go/lambdacontext"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the global logger instance.
var Logger *zap.Logger

// InitLogger initializes the global logger. Unknown levels fall back to info.
func InitLogger(level string) error {
	zapLevel, err := zapcore.ParseLevel(level)
	if err != nil {
		zapLevel = zapcore.InfoLevel
	}

	var config zap.Config
	if IsLambda() {
		// CloudWatch picks up JSON lines from stdout
		config = zap.NewProductionConfig()
		config.OutputPaths = []string{"stdout"}
		config.ErrorOutputPaths = []string{"stderr"}
	} else {
		config = zap.NewDevelopmentConfig()
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	config.Level = zap.NewAtomicLevelAt(zapLevel)

	logger, err := config.Build()
	if err != nil {
		return err
	}
	Logger = logger

	return nil
}

// IsLambda reports whether the process runs inside AWS Lambda.
func IsLambda() bool {
	return os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != ""
}

// GetLogger returns the global logger, initializing if necessary.
func GetLogger() *zap.Logger {
	if Logger == nil {
		_ = InitLogger("info")
	}
	return Logger
}

// ForInvocation returns the global logger annotated with the request id and
// function name of the current invocation, when the context carries them.
func ForInvocation(ctx context.Context) *zap.Logger {
	logger := GetLogger()

	if lc, ok := lambdacontext.FromContext(ctx); ok {
		logger = logger.With(String("requestID", lc.AwsRequestID))
	}
	if lambdacontext.FunctionName != "" {
		logger = logger.With(String("functionName", lambdacontext.FunctionName))
	}

	return logger
}

// Sync flushes any buffered log entries.
func Sync() {
	if Logger != nil {
		_ = Logger.Sync()
	}
}

// Common field constructors
var (
	String   = zap.String
	Int64    = zap.Int64
	Error    = zap.Error
	Duration = zap.Duration
)
