// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/trivia-api/cliparse"
	"github.com/danielhkuo/trivia-api/handlers"
	"github.com/danielhkuo/trivia-api/middleware"
)

// NewRouter registers every route; unmatched requests get JSON 404/405 bodies
func NewRouter(db *sql.DB, cfg cliparse.Config) http.Handler {
	mux := http.NewServeMux()

	// Initialize handlers
	categoryHandler := handlers.NewCategoryHandler(db)
	questionHandler := handlers.NewQuestionHandler(db)
	quizHandler := handlers.NewQuizHandler(db)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		if err := db.PingContext(r.Context()); err != nil {
			slog.Error("health check failed", "error", err)
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte("database unavailable"))
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Categories
	mux.HandleFunc("GET /categories", middleware.WithLogging(categoryHandler.ListCategories))
	mux.HandleFunc("GET /categories/{id}/questions", middleware.WithLogging(categoryHandler.ListCategoryQuestions))

	// Questions (create and delete honour the optional API key)
	mux.HandleFunc("GET /questions", middleware.WithLogging(questionHandler.ListQuestions))
	mux.HandleFunc("GET /questions/{id}", middleware.WithLogging(questionHandler.GetQuestion))
	mux.HandleFunc("POST /questions", middleware.WithLogging(middleware.RequireAPIKey(cfg.APIKey, questionHandler.CreateQuestion)))
	mux.HandleFunc("DELETE /questions/{id}", middleware.WithLogging(middleware.RequireAPIKey(cfg.APIKey, questionHandler.DeleteQuestion)))
	mux.HandleFunc("POST /questions/search", middleware.WithLogging(questionHandler.SearchQuestions))

	// Quiz play
	mux.HandleFunc("POST /quizzes", middleware.WithLogging(quizHandler.NextQuestion))

	// Root endpoint; "/{$}" so unknown paths still 404
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("trivia API v1"))
	})

	return middleware.JSONErrors(mux)
}
