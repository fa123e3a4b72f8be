// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/danielhkuo/trivia-api/middleware"
	"github.com/danielhkuo/trivia-api/models"
)

type CategoryHandler struct {
	db *sql.DB
}

func NewCategoryHandler(db *sql.DB) *CategoryHandler {
	return &CategoryHandler{db: db}
}

// ListCategories handles GET /categories
func (h *CategoryHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := loadCategories(r.Context(), h.db)
	if err != nil {
		dbError(w, r, "failed to query categories", err)
		return
	}

	if len(categories) == 0 {
		middleware.ErrorResponse(w, http.StatusNotFound, msgNotFound)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.CategoriesResponse{
		Success:    true,
		Categories: categories,
	})
}

// ListCategoryQuestions handles GET /categories/{id}/questions
func (h *CategoryHandler) ListCategoryQuestions(w http.ResponseWriter, r *http.Request) {
	categoryID, ok := pathID(r, "id")
	if !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, msgNotFound)
		return
	}

	var category models.Category
	err := h.db.QueryRowContext(r.Context(), `
		SELECT id, type FROM categories WHERE id = $1
	`, categoryID).Scan(&category.ID, &category.Type)

	if errors.Is(err, sql.ErrNoRows) {
		middleware.ErrorResponse(w, http.StatusNotFound, "category not found")
		return
	}
	if err != nil {
		dbError(w, r, "failed to query category", err)
		return
	}

	selection, err := questionsInCategory(r.Context(), h.db, categoryID)
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

	middleware.JSONResponse(w, http.StatusOK, models.CategoryQuestionsResponse{
		Success:         true,
		CurrentCategory: category.Type,
		Questions:       questions,
		TotalQuestions:  total,
	})
}
