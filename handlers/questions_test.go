// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/danielhkuo/trivia-api/models"
	"github.com/danielhkuo/trivia-api/testutil"
)

func ptr[T any](v T) *T { return &v }

func TestListQuestions(t *testing.T) {
	db := testutil.SetupTestDB(t)
	handler := NewQuestionHandler(db)

	testutil.SeedDefaultCategories(t, db)
	for i := 1; i <= 15; i++ {
		testutil.SeedQuestion(t, db, fmt.Sprintf("Science question %d", i), "answer", 1, 1)
	}
	// Other categories count towards total_questions but are not listed
	testutil.SeedQuestion(t, db, "Who painted the Mona Lisa?", "Da Vinci", 2, 2)

	tests := []struct {
		name           string
		query          string
		expectedStatus int
		wantLen        int
		wantFirst      string
	}{
		{"default page", "", http.StatusOK, 10, "Science question 1"},
		{"explicit page 1", "?page=1", http.StatusOK, 10, "Science question 1"},
		{"page 2", "?page=2", http.StatusOK, 5, "Science question 11"},
		{"non-numeric page falls back to 1", "?page=two", http.StatusOK, 10, "Science question 1"},
		{"page past the end", "?page=3", http.StatusNotFound, 0, ""},
		{"page zero", "?page=0", http.StatusNotFound, 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			handler.ListQuestions(w, httptest.NewRequest("GET", "/questions"+tt.query, nil))

			testutil.AssertStatus(t, w, tt.expectedStatus)
			if tt.expectedStatus != http.StatusOK {
				return
			}

			var resp models.QuestionsResponse
			testutil.AssertJSON(t, w, &resp)

			if len(resp.Questions) != tt.wantLen {
				t.Fatalf("Expected %d questions, got %d", tt.wantLen, len(resp.Questions))
			}
			if resp.Questions[0].Question != tt.wantFirst {
				t.Errorf("Expected first question '%s', got '%s'", tt.wantFirst, resp.Questions[0].Question)
			}
			if resp.TotalQuestions != 16 {
				t.Errorf("Expected total_questions 16, got %d", resp.TotalQuestions)
			}
			if resp.CurrentCategory != "Science" {
				t.Errorf("Expected current_category 'Science', got '%s'", resp.CurrentCategory)
			}
			if len(resp.Categories) != 6 {
				t.Errorf("Expected 6 categories, got %d", len(resp.Categories))
			}
		})
	}
}

func TestListQuestions_MissingDefaultCategory(t *testing.T) {
	db := testutil.SetupTestDB(t)
	handler := NewQuestionHandler(db)

	testutil.SeedCategory(t, db, 2, "Art")
	testutil.SeedQuestion(t, db, "Q", "A", 2, 1)

	w := httptest.NewRecorder()
	handler.ListQuestions(w, httptest.NewRequest("GET", "/questions", nil))

	testutil.AssertStatus(t, w, http.StatusNotFound)
}

func TestGetQuestion(t *testing.T) {
	db := testutil.SetupTestDB(t)
	handler := NewQuestionHandler(db)

	id := testutil.SeedQuestion(t, db, "What is H2O?", "Water", 1, 1)

	tests := []struct {
		name           string
		pathID         string
		expectedStatus int
	}{
		{"existing", strconv.FormatInt(id, 10), http.StatusOK},
		{"missing", "12345", http.StatusNotFound},
		{"non-numeric", "search", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/questions/"+tt.pathID, nil)
			req.SetPathValue("id", tt.pathID)
			w := httptest.NewRecorder()

			handler.GetQuestion(w, req)

			testutil.AssertStatus(t, w, tt.expectedStatus)
			if tt.expectedStatus == http.StatusOK {
				var resp models.QuestionResponse
				testutil.AssertJSON(t, w, &resp)
				if resp.Question.Answer != "Water" {
					t.Errorf("Expected answer 'Water', got '%s'", resp.Question.Answer)
				}
			}
		})
	}
}

func TestDeleteQuestion(t *testing.T) {
	db := testutil.SetupTestDB(t)
	handler := NewQuestionHandler(db)

	id := testutil.SeedQuestion(t, db, "Delete me", "ok", 1, 1)
	keep := testutil.SeedQuestion(t, db, "Keep me", "ok", 1, 1)
	idStr := strconv.FormatInt(id, 10)

	deleteReq := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest("DELETE", "/questions/"+idStr, nil)
		req.SetPathValue("id", idStr)
		w := httptest.NewRecorder()
		handler.DeleteQuestion(w, req)
		return w
	}

	w := deleteReq()
	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.DeleteQuestionResponse
	testutil.AssertJSON(t, w, &resp)
	if !resp.Success || resp.Deleted != id {
		t.Errorf("Unexpected response: %+v", resp)
	}

	// Gone from the store
	getReq := httptest.NewRequest("GET", "/questions/"+idStr, nil)
	getReq.SetPathValue("id", idStr)
	getW := httptest.NewRecorder()
	handler.GetQuestion(getW, getReq)
	testutil.AssertStatus(t, getW, http.StatusNotFound)

	// Second delete is not found
	testutil.AssertStatus(t, deleteReq(), http.StatusNotFound)

	if n := testutil.CountQuestions(t, db); n != 1 {
		t.Errorf("Expected 1 remaining question, got %d", n)
	}

	var remaining int64
	db.QueryRow("SELECT id FROM questions").Scan(&remaining)
	if remaining != keep {
		t.Errorf("Wrong question deleted: remaining id %d, want %d", remaining, keep)
	}
}

func TestDeleteQuestion_NonNumericID(t *testing.T) {
	db := testutil.SetupTestDB(t)
	handler := NewQuestionHandler(db)

	req := httptest.NewRequest("DELETE", "/questions/abc", nil)
	req.SetPathValue("id", "abc")
	w := httptest.NewRecorder()

	handler.DeleteQuestion(w, req)

	testutil.AssertStatus(t, w, http.StatusNotFound)
}

func TestCreateQuestion(t *testing.T) {
	db := testutil.SetupTestDB(t)
	handler := NewQuestionHandler(db)

	tests := []struct {
		name           string
		requestBody    interface{}
		expectedStatus int
		expectedMsg    string
	}{
		{
			name: "valid question",
			requestBody: models.CreateQuestionRequest{
				Question:   ptr("What is the capital of France?"),
				Answer:     ptr("Paris"),
				Category:   ptr(3),
				Difficulty: ptr(1),
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "unknown category is accepted",
			requestBody: models.CreateQuestionRequest{
				Question:   ptr("Orphan?"),
				Answer:     ptr("Yes"),
				Category:   ptr(999),
				Difficulty: ptr(2),
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "missing question",
			requestBody: models.CreateQuestionRequest{
				Answer:     ptr("Paris"),
				Category:   ptr(3),
				Difficulty: ptr(1),
			},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedMsg:    "question is required",
		},
		{
			name: "blank answer",
			requestBody: models.CreateQuestionRequest{
				Question:   ptr("Q?"),
				Answer:     ptr("   "),
				Category:   ptr(3),
				Difficulty: ptr(1),
			},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedMsg:    "answer is required",
		},
		{
			name: "missing category",
			requestBody: models.CreateQuestionRequest{
				Question:   ptr("Q?"),
				Answer:     ptr("A"),
				Difficulty: ptr(1),
			},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedMsg:    "category is required",
		},
		{
			name: "zero difficulty",
			requestBody: models.CreateQuestionRequest{
				Question:   ptr("Q?"),
				Answer:     ptr("A"),
				Category:   ptr(1),
				Difficulty: ptr(0),
			},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedMsg:    "difficulty must be a positive integer",
		},
		{
			name:           "category as string",
			requestBody:    `{"question":"Q?","answer":"A","category":"Science","difficulty":1}`,
			expectedStatus: http.StatusUnprocessableEntity,
			expectedMsg:    "category must be an integer",
		},
		{
			name:           "difficulty as numeric string",
			requestBody:    `{"question":"Q?","answer":"A","category":1,"difficulty":"2"}`,
			expectedStatus: http.StatusUnprocessableEntity,
			expectedMsg:    "difficulty must be an integer",
		},
		{
			name:           "invalid JSON",
			requestBody:    "invalid json",
			expectedStatus: http.StatusUnprocessableEntity,
			expectedMsg:    msgInvalidJSON,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var body []byte
			if str, ok := tt.requestBody.(string); ok {
				body = []byte(str)
			} else {
				var err error
				body, err = json.Marshal(tt.requestBody)
				if err != nil {
					t.Fatalf("Failed to marshal request body: %v", err)
				}
			}

			before := testutil.CountQuestions(t, db)

			req := httptest.NewRequest("POST", "/questions", bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			handler.CreateQuestion(w, req)

			testutil.AssertStatus(t, w, tt.expectedStatus)
			after := testutil.CountQuestions(t, db)

			if tt.expectedStatus != http.StatusOK {
				var resp models.ErrorResponse
				testutil.AssertJSON(t, w, &resp)
				if resp.Message != tt.expectedMsg {
					t.Errorf("Expected message '%s', got '%s'", tt.expectedMsg, resp.Message)
				}
				if after != before {
					t.Errorf("Rejected request changed question count %d -> %d", before, after)
				}
				return
			}

			var resp models.CreateQuestionResponse
			testutil.AssertJSON(t, w, &resp)
			if !resp.Success || resp.Created == 0 {
				t.Errorf("Unexpected response: %+v", resp)
			}
			if after != before+1 {
				t.Errorf("Expected question count %d, got %d", before+1, after)
			}

			req2 := tt.requestBody.(models.CreateQuestionRequest)
			var stored models.Question
			err := db.QueryRow(`SELECT id, question, answer, category, difficulty FROM questions WHERE id = $1`, resp.Created).
				Scan(&stored.ID, &stored.Question, &stored.Answer, &stored.Category, &stored.Difficulty)
			if err != nil {
				t.Fatalf("Created question not retrievable: %v", err)
			}
			if stored.Question != *req2.Question || stored.Category != *req2.Category {
				t.Errorf("Stored question mismatch: %+v", stored)
			}
		})
	}
}

func TestSearchQuestions(t *testing.T) {
	db := testutil.SetupTestDB(t)
	handler := NewQuestionHandler(db)

	testutil.SeedQuestion(t, db, "What is the title of the 1990 fantasy film?", "Edward Scissorhands", 5, 3)
	testutil.SeedQuestion(t, db, "Whose autobiography is entitled 'I Know Why the Caged Bird Sings'?", "Maya Angelou", 4, 2)
	testutil.SeedQuestion(t, db, "Which is the only team to play in every soccer World Cup?", "Brazil", 6, 3)
	testutil.SeedQuestion(t, db, "What fraction is 100% of a whole?", "All of it", 1, 1)
	testutil.SeedQuestion(t, db, "Which song is Édith Piaf best known for?", "La Vie en rose", 5, 2)
	for i := 0; i < 12; i++ {
		testutil.SeedQuestion(t, db, fmt.Sprintf("Repeated keyword %d", i), "x", 1, 1)
	}

	tests := []struct {
		name           string
		requestBody    string
		query          string
		expectedStatus int
		wantLen        int
		wantTotal      int
	}{
		{"case-insensitive substring", `{"searchTerm":"TITLE"}`, "", http.StatusOK, 2, 2},
		{"accented term in upper case", `{"searchTerm":"ÉDITH"}`, "", http.StatusOK, 1, 1},
		{"accented term in lower case", `{"searchTerm":"édith piaf"}`, "", http.StatusOK, 1, 1},
		{"no match", `{"searchTerm":"zzzz-no-such-text"}`, "", http.StatusOK, 0, 0},
		{"percent is literal", `{"searchTerm":"100%"}`, "", http.StatusOK, 1, 1},
		{"underscore is literal", `{"searchTerm":"_"}`, "", http.StatusOK, 0, 0},
		{"paginated first page", `{"searchTerm":"keyword"}`, "", http.StatusOK, 10, 12},
		{"paginated second page", `{"searchTerm":"keyword"}`, "?page=2", http.StatusOK, 2, 12},
		{"empty term matches all", `{"searchTerm":""}`, "?page=2", http.StatusOK, 7, 17},
		{"missing searchTerm", `{}`, "", http.StatusUnprocessableEntity, 0, 0},
		{"searchTerm not a string", `{"searchTerm":5}`, "", http.StatusUnprocessableEntity, 0, 0},
		{"invalid JSON", `{"searchTerm":`, "", http.StatusUnprocessableEntity, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/questions/search"+tt.query, bytes.NewReader([]byte(tt.requestBody)))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			handler.SearchQuestions(w, req)

			testutil.AssertStatus(t, w, tt.expectedStatus)
			if tt.expectedStatus != http.StatusOK {
				return
			}

			var resp models.SearchQuestionsResponse
			testutil.AssertJSON(t, w, &resp)
			if !resp.Success {
				t.Error("Expected success=true")
			}
			if resp.Questions == nil {
				t.Error("Expected questions to be a list, got null")
			}
			if len(resp.Questions) != tt.wantLen {
				t.Errorf("Expected %d questions, got %d", tt.wantLen, len(resp.Questions))
			}
			if resp.TotalQuestions != tt.wantTotal {
				t.Errorf("Expected total_questions %d, got %d", tt.wantTotal, resp.TotalQuestions)
			}
		})
	}
}
