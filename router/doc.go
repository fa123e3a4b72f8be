// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the trivia API.

# Route Registration

NewRouter creates an http.ServeMux with all endpoints and wraps it in
middleware.JSONErrors, so unknown paths and wrong methods answer with the
JSON error body:

	handler := router.NewRouter(db, cfg)

Wrap it with middleware.CORS before serving.

# Endpoints

Health:

	GET /health - 200 "OK", or 503 when the database does not answer a ping

Categories:

	GET /categories                      - All categories as {id: type}
	GET /categories/{id}/questions?page= - One page of a category's questions

Questions:

	GET    /questions?page=   - One page of category 1's questions plus all categories
	GET    /questions/{id}    - A single question
	POST   /questions         - Create a question (API key when configured)
	DELETE /questions/{id}    - Delete a question (API key when configured)
	POST   /questions/search  - Case-insensitive substring search

Quiz:

	POST /quizzes - Random unseen question from a category (id 0 = all)

# Handler Initialization

The router creates handler instances with dependency injection:

	categoryHandler := handlers.NewCategoryHandler(db)
	questionHandler := handlers.NewQuestionHandler(db)
	quizHandler := handlers.NewQuizHandler(db)

cfg.APIKey is applied to the mutating question routes through
middleware.RequireAPIKey.
*/
package router
