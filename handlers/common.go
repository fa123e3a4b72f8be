// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/danielhkuo/trivia-api/middleware"
	"github.com/danielhkuo/trivia-api/models"
)

const (
	msgNotFound      = "resource not found"
	msgInvalidJSON   = "invalid JSON"
	msgDatabaseError = "database error"
)

// Paginate returns the 1-based page of items, QuestionsPerPage per page.
// Pages outside the data (including page < 1) are empty, never nil.
func Paginate[T any](items []T, page int) []T {
	if page < 1 {
		return []T{}
	}
	start := (page - 1) * models.QuestionsPerPage
	if start >= len(items) {
		return []T{}
	}
	end := min(start+models.QuestionsPerPage, len(items))
	return items[start:end]
}

// pageFromRequest reads ?page=N; anything unparseable means page 1
func pageFromRequest(r *http.Request) int {
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil {
		return 1
	}
	return page
}

// pathID parses an integer path parameter
func pathID(r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue(name), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

// dbError logs a store failure with its cause and answers 422
func dbError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	slog.Error(msg,
		"error", err,
		"path", r.URL.Path,
		"request_id", middleware.RequestID(r.Context()),
	)
	middleware.ErrorResponse(w, http.StatusUnprocessableEntity, msgDatabaseError)
}

// invalidBodyMessage names the offending field when a body decodes with the wrong JSON type
func invalidBodyMessage(err error) string {
	var typeErr *json.UnmarshalTypeError
	if !errors.As(err, &typeErr) || typeErr.Field == "" || typeErr.Type == nil {
		return msgInvalidJSON
	}

	switch typeErr.Type.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return typeErr.Field + " must be an integer"
	case reflect.String:
		return typeErr.Field + " must be a string"
	case reflect.Slice, reflect.Array:
		return typeErr.Field + " must be a list"
	case reflect.Struct, reflect.Map:
		return typeErr.Field + " must be an object"
	}
	return msgInvalidJSON
}

// containsFold reports whether s contains substr, ignoring case across all of Unicode.
// SQLite's LOWER and LIKE only fold ASCII, so matching happens here for every backend.
func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

const questionColumns = "id, question, answer, category, difficulty"

func scanQuestions(rows *sql.Rows) ([]models.Question, error) {
	defer rows.Close()

	questions := []models.Question{}
	for rows.Next() {
		var q models.Question
		if err := rows.Scan(&q.ID, &q.Question, &q.Answer, &q.Category, &q.Difficulty); err != nil {
			return nil, err
		}
		questions = append(questions, q)
	}
	return questions, rows.Err()
}

// loadCategories returns every category as id -> type
func loadCategories(ctx context.Context, db *sql.DB) (map[int]string, error) {
	rows, err := db.QueryContext(ctx, `SELECT id, type FROM categories ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := map[int]string{}
	for rows.Next() {
		var id int
		var typ string
		if err := rows.Scan(&id, &typ); err != nil {
			return nil, err
		}
		categories[id] = typ
	}
	return categories, rows.Err()
}

func questionsInCategory(ctx context.Context, db *sql.DB, categoryID int64) ([]models.Question, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT `+questionColumns+`
		FROM questions
		WHERE category = $1
		ORDER BY id
	`, categoryID)
	if err != nil {
		return nil, err
	}
	return scanQuestions(rows)
}

func allQuestions(ctx context.Context, db *sql.DB) ([]models.Question, error) {
	rows, err := db.QueryContext(ctx, `SELECT `+questionColumns+` FROM questions ORDER BY id`)
	if err != nil {
		return nil, err
	}
	return scanQuestions(rows)
}

func countQuestions(ctx context.Context, db *sql.DB) (int, error) {
	var total int
	err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM questions`).Scan(&total)
	return total, err
}
