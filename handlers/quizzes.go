// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"slices"
	"strings"

	"github.com/danielhkuo/trivia-api/middleware"
	"github.com/danielhkuo/trivia-api/models"
)

// maxPreviousQuestions bounds the distinct ids a quiz request may exclude;
// each one becomes a bind parameter
const maxPreviousQuestions = 1000

type QuizHandler struct {
	db *sql.DB
}

func NewQuizHandler(db *sql.DB) *QuizHandler {
	return &QuizHandler{db: db}
}

// NextQuestion handles POST /quizzes
// Picks one random question from the category that the player has not seen yet.
// Returns question=null once the category is exhausted.
func (h *QuizHandler) NextQuestion(w http.ResponseWriter, r *http.Request) {
	var req models.QuizRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusUnprocessableEntity, invalidBodyMessage(err))
		return
	}

	if req.QuizCategory == nil || req.QuizCategory.ID == nil {
		middleware.ErrorResponse(w, http.StatusUnprocessableEntity, "quiz_category.id is required")
		return
	}
	categoryID := *req.QuizCategory.ID
	if categoryID < 0 {
		middleware.ErrorResponse(w, http.StatusUnprocessableEntity, "quiz_category.id must not be negative")
		return
	}

	previous := slices.Compact(slices.Sorted(slices.Values(req.PreviousQuestions)))
	if len(previous) > maxPreviousQuestions {
		middleware.ErrorResponse(w, http.StatusUnprocessableEntity,
			fmt.Sprintf("previous_questions must not list more than %d questions", maxPreviousQuestions))
		return
	}

	if categoryID != models.AllCategories {
		var exists int
		err := h.db.QueryRowContext(r.Context(), `SELECT 1 FROM categories WHERE id = $1`, categoryID).Scan(&exists)
		if errors.Is(err, sql.ErrNoRows) {
			middleware.ErrorResponse(w, http.StatusNotFound, "category not found")
			return
		}
		if err != nil {
			dbError(w, r, "failed to query category", err)
			return
		}
	}

	query, args := nextQuestionQuery(categoryID, previous)

	var q models.Question
	err := h.db.QueryRowContext(r.Context(), query, args...).
		Scan(&q.ID, &q.Question, &q.Answer, &q.Category, &q.Difficulty)

	if errors.Is(err, sql.ErrNoRows) {
		middleware.JSONResponse(w, http.StatusOK, models.QuizResponse{Success: true})
		return
	}
	if err != nil {
		dbError(w, r, "failed to pick quiz question", err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.QuizResponse{
		Success:  true,
		Question: &q,
	})
}

// nextQuestionQuery builds the random-pick query with numbered placeholders
func nextQuestionQuery(categoryID int, previous []int) (string, []any) {
	var conditions []string
	var args []any

	if categoryID != models.AllCategories {
		args = append(args, categoryID)
		conditions = append(conditions, fmt.Sprintf("category = $%d", len(args)))
	}

	if len(previous) > 0 {
		placeholders := make([]string, len(previous))
		for i, id := range previous {
			args = append(args, id)
			placeholders[i] = fmt.Sprintf("$%d", len(args))
		}
		conditions = append(conditions, "id NOT IN ("+strings.Join(placeholders, ", ")+")")
	}

	query := "SELECT " + questionColumns + " FROM questions"
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY RANDOM() LIMIT 1"

	return query, args
}
