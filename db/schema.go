// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/trivia-api/cliparse"
)

// driverNames maps a configured database type to its database/sql driver
var driverNames = map[string]string{
	cliparse.DatabasePostgres: "postgres",
	cliparse.DatabaseSQLite:   "sqlite",
}

// Open connects to the configured database and verifies the connection.
func Open(ctx context.Context, dbType, url string) (*sql.DB, error) {
	driver, ok := driverNames[dbType]
	if !ok {
		return nil, fmt.Errorf("unsupported database type %q", dbType)
	}

	conn, err := sql.Open(driver, url)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite allows a single writer; serialise access through one connection
	if dbType == cliparse.DatabaseSQLite {
		conn.SetMaxOpenConns(1)
	}

	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return conn, nil
}

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(ctx context.Context, db *sql.DB, dbType string) error {
	var schema string
	switch dbType {
	case cliparse.DatabasePostgres:
		schema = postgresSchema
	case cliparse.DatabaseSQLite:
		schema = sqliteSchema
	default:
		return fmt.Errorf("unsupported database type %q", dbType)
	}

	_, err := db.ExecContext(ctx, schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// questions.category deliberately carries no foreign key: orphaned
// category ids are accepted as-is.
const postgresSchema = `
CREATE TABLE IF NOT EXISTS categories (
    id SERIAL PRIMARY KEY,
    type TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS questions (
    id SERIAL PRIMARY KEY,
    question TEXT NOT NULL,
    answer TEXT NOT NULL,
    category INTEGER NOT NULL,
    difficulty INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_questions_category ON questions(category);
`

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS categories (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    type TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS questions (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    question TEXT NOT NULL,
    answer TEXT NOT NULL,
    category INTEGER NOT NULL,
    difficulty INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_questions_category ON questions(category);
`
