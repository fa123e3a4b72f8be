// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/danielhkuo/trivia-api/cliparse"
	"github.com/danielhkuo/trivia-api/db"
)

// SetupTestDB creates a fresh SQLite database with the full schema.
// The database lives in t.TempDir() and is closed when the test ends.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	ctx := context.Background()
	conn, err := db.Open(ctx, cliparse.DatabaseSQLite, filepath.Join(t.TempDir(), "trivia.db"))
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(ctx, conn, cliparse.DatabaseSQLite); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         5000,
		DatabaseURL:  "trivia.db",
		DatabaseType: cliparse.DatabaseSQLite,
		LogLevel:     "info",
		LogFormat:    "text",
	}
}

// SeedCategory inserts a category with a fixed id
func SeedCategory(t *testing.T, db *sql.DB, id int64, typ string) {
	t.Helper()

	_, err := db.Exec(`INSERT INTO categories (id, type) VALUES ($1, $2)`, id, typ)
	if err != nil {
		t.Fatalf("Failed to create test category: %v", err)
	}
}

// SeedDefaultCategories inserts the six categories of the stock trivia game
func SeedDefaultCategories(t *testing.T, db *sql.DB) {
	t.Helper()

	for i, typ := range []string{"Science", "Art", "Geography", "History", "Entertainment", "Sports"} {
		SeedCategory(t, db, int64(i+1), typ)
	}
}

// SeedQuestion inserts a question and returns its ID
func SeedQuestion(t *testing.T, db *sql.DB, question, answer string, category, difficulty int) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(`
		INSERT INTO questions (question, answer, category, difficulty)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, question, answer, category, difficulty).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to create test question: %v", err)
	}

	return id
}

// CountQuestions returns the number of rows in the questions table
func CountQuestions(t *testing.T, db *sql.DB) int {
	t.Helper()

	var n int
	if err := db.QueryRow(`SELECT COUNT(*) FROM questions`).Scan(&n); err != nil {
		t.Fatalf("Failed to count questions: %v", err)
	}
	return n
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		var jsonBody []byte
		if s, ok := body.(string); ok {
			jsonBody = []byte(s)
		} else {
			jsonBody, _ = json.Marshal(body)
		}
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
