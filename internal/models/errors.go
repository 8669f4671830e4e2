// Package models defines the data structures for the fitness tracker API.
package models

import "errors"

// Common errors
var (
	ErrMissingDatabaseURL = errors.New("DATABASE_URL is not set")
	ErrUnknownAction      = errors.New("Unknown action")
	ErrMethodNotAllowed   = errors.New("Method not allowed")
)
