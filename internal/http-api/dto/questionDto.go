package dto

import (
	"time"

	"skillcheckpoint/internal/http-api/models"
)

// CreateQuestionDTO for creating a question. All three fields are mandatory;
// binding rejects empty or missing values before any store access.
type CreateQuestionDTO struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	Category    string `json:"category" binding:"required"`
}

// UpdateQuestionDTO for a full-field overwrite of an existing question.
type UpdateQuestionDTO struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	Category    string `json:"category" binding:"required"`
}

// SearchQuestionsDTO carries the optional query filters. At least one must be
// present; that guard spans both fields so it lives in HasFilter rather than
// a binding tag.
type SearchQuestionsDTO struct {
	Title    string `form:"title"`
	Category string `form:"category"`
}

func (s SearchQuestionsDTO) HasFilter() bool {
	return s.Title != "" || s.Category != ""
}

// QuestionResponse for returning question information
type QuestionResponse struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	CreatedAt   time.Time `json:"created_at"`
}

// FromModelToQuestionResponse converts a Question model to QuestionResponse DTO
func FromModelToQuestionResponse(q *models.Question) *QuestionResponse {
	return &QuestionResponse{
		ID:          q.ID,
		Title:       q.Title,
		Description: q.Description,
		Category:    q.Category,
		CreatedAt:   q.CreatedAt,
	}
}

// FromModelsToQuestionResponses converts a slice of Question models
func FromModelsToQuestionResponses(questions []models.Question) []QuestionResponse {
	responses := make([]QuestionResponse, 0, len(questions))
	for i := range questions {
		responses = append(responses, *FromModelToQuestionResponse(&questions[i]))
	}
	return responses
}
