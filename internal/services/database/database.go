// Package database provides database operations for the fitness tracker API.
package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DB holds a single database connection. One DB is opened per invocation
// and closed before the invocation returns.
type DB struct {
	conn *pgx.Conn
}

// Connect opens a new connection from a URL string.
func Connect(ctx context.Context, databaseURL string) (*DB, error) {
	conn, err := pgx.Connect(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &DB{conn: conn}, nil
}

// Close closes the database connection.
func (db *DB) Close(ctx context.Context) error {
	if db.conn == nil {
		return nil
	}
	return db.conn.Close(ctx)
}

// Ping verifies database connectivity.
func (db *DB) Ping(ctx context.Context) error {
	return db.conn.Ping(ctx)
}

// ExecContext executes a query that doesn't return rows.
func (db *DB) ExecContext(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error) {
	return db.conn.Exec(ctx, sql, args...)
}

// QueryRowContext executes a query that returns a single row.
func (db *DB) QueryRowContext(ctx context.Context, sql string, args ...interface{}) pgx.Row {
	return db.conn.QueryRow(ctx, sql, args...)
}

// QueryContext executes a query that returns rows.
func (db *DB) QueryContext(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error) {
	return db.conn.Query(ctx, sql, args...)
}

// insertReturningID runs a single auto-committed INSERT ... RETURNING id.
func (db *DB) insertReturningID(ctx context.Context, what, sql string, args ...interface{}) (int64, error) {
	var id int64
	if err := db.QueryRowContext(ctx, sql, args...).Scan(&id); err != nil {
		return 0, fmt.Errorf("failed to create %s: %w", what, err)
	}
	return id, nil
}
