// Package database provides the database abstraction layer for the Hangs API.
//
// The Database interface hides the SurrealDB client so repositories can be
// exercised against a real instance in e2e tests and replaced in unit tests.
//
// # Query Methods
//
//   - Query: Returns every statement result (for SELECT queries returning lists)
//   - QueryOne: Returns the first record of the first statement (for SELECT by ID)
//   - Execute: No return value (for UPDATE/DELETE mutations)
//
// # Error Handling
//
// Standard errors are defined for common failure cases and are checked with
// errors.Is():
//
//	if errors.Is(err, database.ErrNotFound) {
//	    // Handle missing record
//	}
package database

import (
	"context"
	"errors"
)

// Standard errors for database operations.
var (
	// ErrNotFound indicates the requested record does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicate indicates a unique index violation (e.g., duplicate email).
	ErrDuplicate = errors.New("duplicate record")

	// ErrConstraint indicates a write rejected by a field ASSERT or type check.
	ErrConstraint = errors.New("constraint violation")

	// ErrConnection indicates a failure to connect to or communicate with the database.
	ErrConnection = errors.New("database connection error")

	// ErrQuery indicates a query execution failure (syntax error, invalid reference, etc.).
	ErrQuery = errors.New("query error")
)

// Database defines the interface for database operations
type Database interface {
	// Connection management
	Connect(ctx context.Context) error
	Close() error
	Ping(ctx context.Context) error

	// Query executes a query and returns results
	Query(ctx context.Context, query string, vars map[string]interface{}) ([]interface{}, error)

	// QueryOne executes a query and returns a single result
	QueryOne(ctx context.Context, query string, vars map[string]interface{}) (interface{}, error)

	// Execute runs a query without returning results (for mutations)
	Execute(ctx context.Context, query string, vars map[string]interface{}) error
}

// Config holds database configuration
type Config struct {
	Host      string
	Port      string
	User      string
	Password  string
	Namespace string
	Database  string
}
