package models

// QuestionsPerPage is the fixed page size for every paginated listing
const QuestionsPerPage = 10

// AllCategories selects questions from every category in a quiz request
const AllCategories = 0

// Request types

// Pointer fields distinguish a missing value from a zero value.
type CreateQuestionRequest struct {
	Question   *string `json:"question"`
	Answer     *string `json:"answer"`
	Category   *int    `json:"category"`
	Difficulty *int    `json:"difficulty"`
}

type SearchQuestionsRequest struct {
	SearchTerm *string `json:"searchTerm"`
}

type QuizCategory struct {
	ID   *int   `json:"id"`
	Type string `json:"type,omitempty"`
}

type QuizRequest struct {
	PreviousQuestions []int         `json:"previous_questions"`
	QuizCategory      *QuizCategory `json:"quiz_category"`
}

// Response types

type CategoriesResponse struct {
	Success    bool           `json:"success"`
	Categories map[int]string `json:"categories"`
}

type QuestionsResponse struct {
	Success         bool           `json:"success"`
	Questions       []Question     `json:"questions"`
	TotalQuestions  int            `json:"total_questions"`
	CurrentCategory string         `json:"current_category"`
	Categories      map[int]string `json:"categories"`
}

type CategoryQuestionsResponse struct {
	Success         bool       `json:"success"`
	CurrentCategory string     `json:"current_category"`
	Questions       []Question `json:"questions"`
	TotalQuestions  int        `json:"total_questions"`
}

type SearchQuestionsResponse struct {
	Success        bool       `json:"success"`
	Questions      []Question `json:"questions"`
	TotalQuestions int        `json:"total_questions"`
}

type QuestionResponse struct {
	Success  bool     `json:"success"`
	Question Question `json:"question"`
}

type CreateQuestionResponse struct {
	Success bool  `json:"success"`
	Created int64 `json:"created"`
}

type DeleteQuestionResponse struct {
	Success bool  `json:"success"`
	Deleted int64 `json:"deleted"`
}

// Question is nil once every question in the category has been played.
type QuizResponse struct {
	Success  bool      `json:"success"`
	Question *Question `json:"question"`
}

// Domain types

type Category struct {
	ID   int64  `json:"id"`
	Type string `json:"type"`
}

type Question struct {
	ID         int64  `json:"id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Category   int    `json:"category"`
	Difficulty int    `json:"difficulty"`
}

// Error response

type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   int    `json:"error"`
	Message string `json:"message"`
}
