package service_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"skillcheckpoint/internal/http-api/dto"
	"skillcheckpoint/internal/http-api/repository"
	"skillcheckpoint/internal/http-api/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockAnswerRepository struct {
	mock.Mock
}

func (m *MockAnswerRepository) ListByQuestion(ctx context.Context, questionID int64) ([]repository.QuestionAnswerRow, error) {
	args := m.Called(ctx, questionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.QuestionAnswerRow), args.Error(1)
}

func (m *MockAnswerRepository) CreateForQuestion(ctx context.Context, questionID int64, content string) (int64, error) {
	args := m.Called(ctx, questionID, content)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAnswerRepository) DeleteAllForQuestion(ctx context.Context, questionID int64) error {
	args := m.Called(ctx, questionID)
	return args.Error(0)
}

func TestAnswerService_GetQuestionAnswers(t *testing.T) {
	ctx := context.Background()

	t.Run("MapsRows", func(t *testing.T) {
		mockRepo := new(MockAnswerRepository)
		svc := service.NewAnswerService(mockRepo)

		now := time.Now()
		rows := []repository.QuestionAnswerRow{
			{
				QuestionID: 5,
				AnswerID:   sql.NullInt64{Int64: 11, Valid: true},
				Content:    sql.NullString{String: "A", Valid: true},
				CreatedAt:  sql.NullTime{Time: now, Valid: true},
			},
			{
				QuestionID: 5,
				AnswerID:   sql.NullInt64{Int64: 12, Valid: true},
				Content:    sql.NullString{String: "B", Valid: true},
				CreatedAt:  sql.NullTime{Time: now, Valid: true},
			},
		}
		mockRepo.On("ListByQuestion", ctx, int64(5)).Return(rows, nil).Once()

		answers, err := svc.GetQuestionAnswers(ctx, 5)

		assert.NoError(t, err)
		assert.Len(t, answers, 2)
		assert.Equal(t, dto.AnswerResponse{ID: 11, QuestionID: 5, Content: "A", CreatedAt: now}, answers[0])
		assert.Equal(t, "B", answers[1].Content)
	})

	// The outer join yields one all-NULL row for a question with zero
	// answers; callers must get an empty list, not a phantom answer.
	t.Run("CollapsesJoinMissRow", func(t *testing.T) {
		mockRepo := new(MockAnswerRepository)
		svc := service.NewAnswerService(mockRepo)

		rows := []repository.QuestionAnswerRow{{QuestionID: 5}}
		mockRepo.On("ListByQuestion", ctx, int64(5)).Return(rows, nil).Once()

		answers, err := svc.GetQuestionAnswers(ctx, 5)

		assert.NoError(t, err)
		assert.NotNil(t, answers)
		assert.Empty(t, answers)
	})

	t.Run("QuestionNotFound", func(t *testing.T) {
		mockRepo := new(MockAnswerRepository)
		svc := service.NewAnswerService(mockRepo)

		mockRepo.On("ListByQuestion", ctx, int64(99)).
			Return(nil, repository.ErrQuestionNotFound).Once()

		answers, err := svc.GetQuestionAnswers(ctx, 99)

		assert.ErrorIs(t, err, repository.ErrQuestionNotFound)
		assert.Nil(t, answers)
	})
}

func TestAnswerService_CreateAnswer(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockRepo := new(MockAnswerRepository)
		svc := service.NewAnswerService(mockRepo)

		mockRepo.On("CreateForQuestion", ctx, int64(5), "A").Return(int64(11), nil).Once()

		id, err := svc.CreateAnswer(ctx, 5, dto.CreateAnswerDTO{Content: "A"})

		assert.NoError(t, err)
		assert.Equal(t, int64(11), id)
		mockRepo.AssertExpectations(t)
	})

	t.Run("ParentGone", func(t *testing.T) {
		mockRepo := new(MockAnswerRepository)
		svc := service.NewAnswerService(mockRepo)

		mockRepo.On("CreateForQuestion", ctx, int64(99), "A").
			Return(int64(0), repository.ErrQuestionNotFound).Once()

		_, err := svc.CreateAnswer(ctx, 99, dto.CreateAnswerDTO{Content: "A"})

		assert.ErrorIs(t, err, repository.ErrQuestionNotFound)
	})
}

func TestAnswerService_DeleteQuestionAnswers(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockAnswerRepository)
	svc := service.NewAnswerService(mockRepo)

	mockRepo.On("DeleteAllForQuestion", ctx, int64(5)).Return(nil).Once()

	assert.NoError(t, svc.DeleteQuestionAnswers(ctx, 5))
	mockRepo.AssertExpectations(t)
}
