package service

import (
	"context"

	"skillcheckpoint/internal/http-api/dto"
	"skillcheckpoint/internal/http-api/repository"
)

type AnswerService interface {
	GetQuestionAnswers(ctx context.Context, questionID int64) ([]dto.AnswerResponse, error)
	CreateAnswer(ctx context.Context, questionID int64, req dto.CreateAnswerDTO) (int64, error)
	DeleteQuestionAnswers(ctx context.Context, questionID int64) error
}

type answerService struct {
	answerRepo repository.AnswerRepository
}

func NewAnswerService(answerRepo repository.AnswerRepository) AnswerService {
	return &answerService{answerRepo: answerRepo}
}

// GetQuestionAnswers lists the answers of an existing question. The outer
// join yields one all-NULL row when the question has no answers yet; that
// join-miss row is collapsed into an empty list here so callers never see a
// phantom answer, while a missing question still surfaces as not-found.
func (s *answerService) GetQuestionAnswers(ctx context.Context, questionID int64) ([]dto.AnswerResponse, error) {
	rows, err := s.answerRepo.ListByQuestion(ctx, questionID)
	if err != nil {
		return nil, err
	}

	answers := make([]dto.AnswerResponse, 0, len(rows))
	for _, row := range rows {
		if !row.AnswerID.Valid {
			continue
		}
		answers = append(answers, dto.AnswerResponse{
			ID:         row.AnswerID.Int64,
			QuestionID: row.QuestionID,
			Content:    row.Content.String,
			CreatedAt:  row.CreatedAt.Time,
		})
	}
	return answers, nil
}

func (s *answerService) CreateAnswer(ctx context.Context, questionID int64, req dto.CreateAnswerDTO) (int64, error) {
	return s.answerRepo.CreateForQuestion(ctx, questionID, req.Content)
}

func (s *answerService) DeleteQuestionAnswers(ctx context.Context, questionID int64) error {
	return s.answerRepo.DeleteAllForQuestion(ctx, questionID)
}
