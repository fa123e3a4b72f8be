// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the trivia API server.

The trivia API serves categories and questions for a quiz game: paginated
listings, search, question creation and deletion, and a quiz endpoint that
hands out one random question the player has not seen yet.

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	DATABASE_URL=postgres://... go run .

Or with flags, using a local SQLite file:

	go run . -p 5000 -d trivia.db

A .env file in the working directory is loaded first when present.

# Configuration

Required settings:

  - DATABASE_URL (-d): Postgres URL or SQLite file path

Optional settings:

  - PORT (-p): Server port (default: 5000)
  - DATABASE_TYPE (-t): postgres or sqlite (inferred from the URL)
  - API_KEY (-api-key): Bearer key for creating and deleting questions
  - LOG_LEVEL (-log-level): debug, info, warn, error (default: info)
  - LOG_FORMAT (-log-format): text or json (default: text)

Categories and questions are seeded outside the service; startup only
creates missing tables.

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (categories, questions, quizzes)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, API key guard, JSON helpers
  - models: Request/response types
  - auth: API key validation
  - db: Driver selection and schema creation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
