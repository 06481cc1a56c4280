package dto

import (
	"time"

	"skillcheckpoint/internal/http-api/models"
)

// CreateAnswerDTO for answering a question. Content is capped at 300
// characters by the schema, so the same cap is enforced at the edge.
type CreateAnswerDTO struct {
	Content string `json:"content" binding:"required,max=300"`
}

// AnswerResponse for returning answer information
type AnswerResponse struct {
	ID         int64     `json:"id"`
	QuestionID int64     `json:"question_id"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"created_at"`
}

// FromModelToAnswerResponse converts an Answer model to AnswerResponse DTO
func FromModelToAnswerResponse(a *models.Answer) *AnswerResponse {
	return &AnswerResponse{
		ID:         a.ID,
		QuestionID: a.QuestionID,
		Content:    a.Content,
		CreatedAt:  a.CreatedAt,
	}
}

func FromModelsToAnswerResponses(answers []models.Answer) []AnswerResponse {
	responses := make([]AnswerResponse, 0, len(answers))
	for i := range answers {
		responses = append(responses, *FromModelToAnswerResponse(&answers[i]))
	}
	return responses
}
