package service

import (
	"context"

	"skillcheckpoint/internal/http-api/dto"
	"skillcheckpoint/internal/http-api/models"
	"skillcheckpoint/internal/http-api/repository"
)

type QuestionService interface {
	CreateQuestion(ctx context.Context, req dto.CreateQuestionDTO) error
	GetAllQuestions(ctx context.Context) ([]dto.QuestionResponse, error)
	GetQuestionByID(ctx context.Context, id int64) (*dto.QuestionResponse, error)
	UpdateQuestion(ctx context.Context, id int64, req dto.UpdateQuestionDTO) error
	DeleteQuestion(ctx context.Context, id int64) error
	SearchQuestions(ctx context.Context, filters dto.SearchQuestionsDTO) ([]dto.QuestionResponse, error)
}

type questionService struct {
	questionRepo repository.QuestionRepository
}

func NewQuestionService(questionRepo repository.QuestionRepository) QuestionService {
	return &questionService{questionRepo: questionRepo}
}

func (s *questionService) CreateQuestion(ctx context.Context, req dto.CreateQuestionDTO) error {
	question := &models.Question{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
	}
	return s.questionRepo.Create(ctx, question)
}

func (s *questionService) GetAllQuestions(ctx context.Context) ([]dto.QuestionResponse, error) {
	questions, err := s.questionRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return dto.FromModelsToQuestionResponses(questions), nil
}

func (s *questionService) GetQuestionByID(ctx context.Context, id int64) (*dto.QuestionResponse, error) {
	question, err := s.questionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.FromModelToQuestionResponse(question), nil
}

func (s *questionService) UpdateQuestion(ctx context.Context, id int64, req dto.UpdateQuestionDTO) error {
	question := &models.Question{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
	}
	return s.questionRepo.Update(ctx, id, question)
}

func (s *questionService) DeleteQuestion(ctx context.Context, id int64) error {
	return s.questionRepo.Delete(ctx, id)
}

func (s *questionService) SearchQuestions(ctx context.Context, filters dto.SearchQuestionsDTO) ([]dto.QuestionResponse, error) {
	questions, err := s.questionRepo.Search(ctx, filters.Title, filters.Category)
	if err != nil {
		return nil, err
	}
	return dto.FromModelsToQuestionResponses(questions), nil
}
