// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /categories", middleware.WithLogging(handler))

Each request gets a UUID request ID (an incoming X-Request-ID is kept when it
is a valid UUID). The ID is echoed in the X-Request-ID response header and is
available to handlers through RequestID(r.Context()).

Logs request start (method, path, remote) and completion (status, size,
duration_ms).

# API Key Guard

Protect mutating routes when an API key is configured:

	mux.HandleFunc("DELETE /questions/{id}",
		middleware.WithLogging(middleware.RequireAPIKey(cfg.APIKey, h.DeleteQuestion)))

With an empty key the handler is returned unchanged.

# CORS Middleware

Enable cross-origin requests for the frontend:

	server := http.Server{
		Handler: middleware.CORS(mux),
	}

Allows any origin, methods GET, PUT, POST, DELETE, OPTIONS and headers
Content-Type, Authorization. OPTIONS preflight requests are answered directly.

# JSON Helpers

Write JSON responses:

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusNotFound, "resource not found")

Error bodies look like:

	{"success": false, "error": 404, "message": "resource not found"}

Parse JSON request bodies:

	var req models.SearchQuestionsRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusUnprocessableEntity, "invalid JSON")
		return
	}

# Client IP Extraction

Get the original client IP (handles X-Forwarded-For, X-Real-IP):

	ip := middleware.GetClientIP(r)

Used for the remote field of request logs.
*/
package middleware
