// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON. Required fields are pointers so handlers
can tell a missing field from a zero value:

  - CreateQuestionRequest: question, answer, category, difficulty
  - SearchQuestionsRequest: searchTerm
  - QuizRequest: previous_questions, quiz_category{id}

# Response Types

  - CategoriesResponse: success, categories (id → type)
  - QuestionsResponse: success, questions, total_questions, current_category, categories
  - CategoryQuestionsResponse: success, current_category, questions, total_questions
  - SearchQuestionsResponse: success, questions, total_questions
  - QuestionResponse: success, question
  - CreateQuestionResponse: success, created
  - DeleteQuestionResponse: success, deleted
  - QuizResponse: success, question (null when the quiz is exhausted)
  - ErrorResponse: success, error, message

# Domain Types

  - Category: id, type
  - Question: id, question, answer, category, difficulty

# Constants

	QuestionsPerPage = 10
	AllCategories    = 0
*/
package models
