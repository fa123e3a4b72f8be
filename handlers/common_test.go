// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"encoding/json"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"

	"github.com/danielhkuo/trivia-api/models"
)

func seq(n int) []int {
	s := make([]int, n)
	for i := range s {
		s[i] = i + 1
	}
	return s
}

func TestPaginate(t *testing.T) {
	tests := []struct {
		name      string
		total     int
		page      int
		wantFirst int
		wantLen   int
	}{
		{"first full page", 25, 1, 1, 10},
		{"second full page", 25, 2, 11, 10},
		{"partial last page", 25, 3, 21, 5},
		{"past the end", 25, 4, 0, 0},
		{"exact multiple last page", 20, 2, 11, 10},
		{"exact multiple past end", 20, 3, 0, 0},
		{"fewer than a page", 3, 1, 1, 3},
		{"empty input", 0, 1, 0, 0},
		{"page zero", 25, 0, 0, 0},
		{"negative page", 25, -1, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Paginate(seq(tt.total), tt.page)

			if got == nil {
				t.Fatal("Paginate returned nil, want non-nil slice")
			}
			if len(got) != tt.wantLen {
				t.Fatalf("len = %d, want %d", len(got), tt.wantLen)
			}
			if tt.wantLen > 0 && got[0] != tt.wantFirst {
				t.Errorf("first item = %d, want %d", got[0], tt.wantFirst)
			}
		})
	}
}

func TestPaginate_OffsetProperty(t *testing.T) {
	items := seq(47)
	for page := 1; page <= 5; page++ {
		got := Paginate(items, page)
		start := (page - 1) * 10
		end := min(start+10, len(items))
		if !reflect.DeepEqual(got, items[start:end]) {
			t.Errorf("page %d = %v, want %v", page, got, items[start:end])
		}
	}
}

func TestPageFromRequest(t *testing.T) {
	tests := []struct {
		query string
		want  int
	}{
		{"", 1},
		{"?page=3", 3},
		{"?page=abc", 1},
		{"?page=", 1},
		{"?page=0", 0},
		{"?page=-2", -2},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/questions"+tt.query, nil)
			if got := pageFromRequest(req); got != tt.want {
				t.Errorf("pageFromRequest(%q) = %d, want %d", tt.query, got, tt.want)
			}
		})
	}
}

func TestContainsFold(t *testing.T) {
	tests := []struct {
		s, substr string
		want      bool
	}{
		{"What is the title?", "TITLE", true},
		{"Who sang Édith's songs?", "édith", true},
		{"Who sang édith's songs?", "ÉDITH", true},
		{"Straße", "STRASSE", false},
		{"100% of a whole", "100%", true},
		{"plain", "_", false},
		{"anything", "", true},
	}

	for _, tt := range tests {
		if got := containsFold(tt.s, tt.substr); got != tt.want {
			t.Errorf("containsFold(%q, %q) = %v, want %v", tt.s, tt.substr, got, tt.want)
		}
	}
}

func TestInvalidBodyMessage(t *testing.T) {
	tests := []struct {
		name string
		body string
		dst  interface{}
		want string
	}{
		{"string category", `{"category":"1"}`, &models.CreateQuestionRequest{}, "category must be an integer"},
		{"fractional difficulty", `{"difficulty":1.5}`, &models.CreateQuestionRequest{}, "difficulty must be an integer"},
		{"numeric question", `{"question":7}`, &models.CreateQuestionRequest{}, "question must be a string"},
		{"nested quiz category id", `{"quiz_category":{"id":"1"}}`, &models.QuizRequest{}, "quiz_category.id must be an integer"},
		{"previous questions not a list", `{"previous_questions":"1,2"}`, &models.QuizRequest{}, "previous_questions must be a list"},
		{"quiz category not an object", `{"quiz_category":3}`, &models.QuizRequest{}, "quiz_category must be an object"},
		{"syntax error", `{"category":`, &models.CreateQuestionRequest{}, msgInvalidJSON},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := json.Unmarshal([]byte(tt.body), tt.dst)
			if err == nil {
				t.Fatal("Expected a decode error")
			}
			if got := invalidBodyMessage(err); got != tt.want {
				t.Errorf("invalidBodyMessage() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNextQuestionQuery(t *testing.T) {
	t.Run("all categories, nothing seen", func(t *testing.T) {
		query, args := nextQuestionQuery(0, nil)
		if strings.Contains(query, "WHERE") {
			t.Errorf("expected no WHERE clause, got %q", query)
		}
		if len(args) != 0 {
			t.Errorf("expected no args, got %v", args)
		}
	})

	t.Run("category and previous ids", func(t *testing.T) {
		query, args := nextQuestionQuery(3, []int{7, 9})
		if !strings.Contains(query, "category = $1") {
			t.Errorf("expected category placeholder $1, got %q", query)
		}
		if !strings.Contains(query, "id NOT IN ($2, $3)") {
			t.Errorf("expected NOT IN ($2, $3), got %q", query)
		}
		if !reflect.DeepEqual(args, []any{3, 7, 9}) {
			t.Errorf("args = %v, want [3 7 9]", args)
		}
	})

	t.Run("all categories with previous ids", func(t *testing.T) {
		query, args := nextQuestionQuery(0, []int{1})
		if !strings.Contains(query, "WHERE id NOT IN ($1)") {
			t.Errorf("expected NOT IN ($1), got %q", query)
		}
		if len(args) != 1 {
			t.Errorf("expected one arg, got %v", args)
		}
	})
}
