// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the trivia API.

# Handler Types

Each handler is a struct holding the database connection:

  - CategoryHandler: category listing and per-category questions
  - QuestionHandler: question listing, lookup, create, delete, search
  - QuizHandler: random unseen question for quiz play

Handlers are created via constructor functions that accept *sql.DB:

	questionHandler := handlers.NewQuestionHandler(db)

# Pagination

Listings return pages of ten questions. Paginate slices a full result:

	page := Paginate(questions, 2) // items 10..19

Pages past the end, and page numbers below 1, are empty. A missing or
non-numeric ?page= means page 1. Listing handlers answer 404 for an empty
page; search answers with an empty list instead.

# Errors

Failures are classified where they happen:

  - 404: unknown category or question, non-numeric path id, empty page
  - 422: malformed JSON, missing or invalid fields, database failures

Database failures are logged with their cause and the request ID; clients
only see "database error".

# Quiz Play

	POST /quizzes {"previous_questions": [1, 4], "quiz_category": {"id": 2}}

Picks a random question in category 2 whose id is not 1 or 4. Category id 0
means every category. When nothing is left the response is
{"success": true, "question": null}.
*/
package handlers
