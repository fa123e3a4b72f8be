// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/danielhkuo/trivia-api/middleware"
	"github.com/danielhkuo/trivia-api/models"
)

// defaultCategoryID is the category shown by the unfiltered question list
const defaultCategoryID = 1

type QuestionHandler struct {
	db *sql.DB
}

func NewQuestionHandler(db *sql.DB) *QuestionHandler {
	return &QuestionHandler{db: db}
}

// ListQuestions handles GET /questions
func (h *QuestionHandler) ListQuestions(w http.ResponseWriter, r *http.Request) {
	categories, err := loadCategories(r.Context(), h.db)
	if err != nil {
		dbError(w, r, "failed to query categories", err)
		return
	}

	currentCategory, ok := categories[defaultCategoryID]
	if !ok || currentCategory == "" {
		middleware.ErrorResponse(w, http.StatusNotFound, "category not found")
		return
	}

	selection, err := questionsInCategory(r.Context(), h.db, defaultCategoryID)
	if err != nil {
		dbError(w, r, "failed to query questions", err)
		return
	}

	questions := Paginate(selection, pageFromRequest(r))
	if len(questions) == 0 {
		middleware.ErrorResponse(w, http.StatusNotFound, msgNotFound)
		return
	}

	total, err := countQuestions(r.Context(), h.db)
	if err != nil {
		dbError(w, r, "failed to count questions", err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.QuestionsResponse{
		Success:         true,
		Questions:       questions,
		TotalQuestions:  total,
		CurrentCategory: currentCategory,
		Categories:      categories,
	})
}

// GetQuestion handles GET /questions/{id}
func (h *QuestionHandler) GetQuestion(w http.ResponseWriter, r *http.Request) {
	questionID, ok := pathID(r, "id")
	if !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, msgNotFound)
		return
	}

	var q models.Question
	err := h.db.QueryRowContext(r.Context(), `
		SELECT `+questionColumns+`
		FROM questions
		WHERE id = $1
	`, questionID).Scan(&q.ID, &q.Question, &q.Answer, &q.Category, &q.Difficulty)

	if errors.Is(err, sql.ErrNoRows) {
		middleware.ErrorResponse(w, http.StatusNotFound, "question not found")
		return
	}
	if err != nil {
		dbError(w, r, "failed to query question", err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.QuestionResponse{
		Success:  true,
		Question: q,
	})
}

// DeleteQuestion handles DELETE /questions/{id}
func (h *QuestionHandler) DeleteQuestion(w http.ResponseWriter, r *http.Request) {
	questionID, ok := pathID(r, "id")
	if !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, msgNotFound)
		return
	}

	result, err := h.db.ExecContext(r.Context(), `DELETE FROM questions WHERE id = $1`, questionID)
	if err != nil {
		dbError(w, r, "failed to delete question", err)
		return
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		dbError(w, r, "failed to read delete result", err)
		return
	}
	if deleted == 0 {
		middleware.ErrorResponse(w, http.StatusNotFound, "question not found")
		return
	}

	slog.Info("question deleted", "question_id", questionID)

	middleware.JSONResponse(w, http.StatusOK, models.DeleteQuestionResponse{
		Success: true,
		Deleted: questionID,
	})
}

// CreateQuestion handles POST /questions
func (h *QuestionHandler) CreateQuestion(w http.ResponseWriter, r *http.Request) {
	var req models.CreateQuestionRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusUnprocessableEntity, invalidBodyMessage(err))
		return
	}

	if msg := validateCreateQuestion(req); msg != "" {
		middleware.ErrorResponse(w, http.StatusUnprocessableEntity, msg)
		return
	}

	var questionID int64
	err := h.db.QueryRowContext(r.Context(), `
		INSERT INTO questions (question, answer, category, difficulty)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, *req.Question, *req.Answer, *req.Category, *req.Difficulty).Scan(&questionID)

	if err != nil {
		dbError(w, r, "failed to insert question", err)
		return
	}

	slog.Info("question created", "question_id", questionID, "category", *req.Category)

	middleware.JSONResponse(w, http.StatusOK, models.CreateQuestionResponse{
		Success: true,
		Created: questionID,
	})
}

// validateCreateQuestion returns a message describing the first invalid field, or ""
func validateCreateQuestion(req models.CreateQuestionRequest) string {
	switch {
	case req.Question == nil || strings.TrimSpace(*req.Question) == "":
		return "question is required"
	case req.Answer == nil || strings.TrimSpace(*req.Answer) == "":
		return "answer is required"
	case req.Category == nil:
		return "category is required"
	case *req.Category < 1:
		return "category must be a positive integer"
	case req.Difficulty == nil:
		return "difficulty is required"
	case *req.Difficulty < 1:
		return "difficulty must be a positive integer"
	}
	return ""
}

// SearchQuestions handles POST /questions/search
func (h *QuestionHandler) SearchQuestions(w http.ResponseWriter, r *http.Request) {
	var req models.SearchQuestionsRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusUnprocessableEntity, invalidBodyMessage(err))
		return
	}
	if req.SearchTerm == nil {
		middleware.ErrorResponse(w, http.StatusUnprocessableEntity, "searchTerm is required")
		return
	}

	questions, err := allQuestions(r.Context(), h.db)
	if err != nil {
		dbError(w, r, "failed to search questions", err)
		return
	}

	selection := []models.Question{}
	for _, q := range questions {
		if containsFold(q.Question, *req.SearchTerm) {
			selection = append(selection, q)
		}
	}

	middleware.JSONResponse(w, http.StatusOK, models.SearchQuestionsResponse{
		Success:        true,
		Questions:      Paginate(selection, pageFromRequest(r)),
		TotalQuestions: len(selection),
	})
}
