package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"skillcheckpoint/internal/http-api/dto"
	"skillcheckpoint/internal/http-api/handler"
	"skillcheckpoint/internal/http-api/repository"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// --- MOCK SERVICE ---

type MockAnswerService struct {
	mock.Mock
}

func (m *MockAnswerService) GetQuestionAnswers(ctx context.Context, questionID int64) ([]dto.AnswerResponse, error) {
	args := m.Called(ctx, questionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.AnswerResponse), args.Error(1)
}

func (m *MockAnswerService) CreateAnswer(ctx context.Context, questionID int64, req dto.CreateAnswerDTO) (int64, error) {
	args := m.Called(ctx, questionID, req)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAnswerService) DeleteQuestionAnswers(ctx context.Context, questionID int64) error {
	args := m.Called(ctx, questionID)
	return args.Error(0)
}

// --- SETUP ---

func setupAnswerRouter(mockService *MockAnswerService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := handler.NewAnswerHandler(mockService)
	h.RegisterRoutes(r.Group(""))
	return r
}

// --- TESTS ---

func TestAnswerHandler_ListByQuestion(t *testing.T) {
	mockService := new(MockAnswerService)
	r := setupAnswerRouter(mockService)

	t.Run("Success", func(t *testing.T) {
		expected := []dto.AnswerResponse{{ID: 11, QuestionID: 5, Content: "A"}}
		mockService.On("GetQuestionAnswers", mock.Anything, int64(5)).Return(expected, nil).Once()

		req, _ := http.NewRequest(http.MethodGet, "/questions/5/answers", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var response map[string]interface{}
		json.Unmarshal(w.Body.Bytes(), &response)
		data := response["data"].([]interface{})
		assert.Len(t, data, 1)
		assert.Equal(t, "A", data[0].(map[string]interface{})["content"])
	})

	t.Run("NoAnswersYet", func(t *testing.T) {
		mockService.On("GetQuestionAnswers", mock.Anything, int64(5)).
			Return([]dto.AnswerResponse{}, nil).Once()

		req, _ := http.NewRequest(http.MethodGet, "/questions/5/answers", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var response map[string]interface{}
		json.Unmarshal(w.Body.Bytes(), &response)
		assert.Empty(t, response["data"])
	})

	t.Run("QuestionNotFound", func(t *testing.T) {
		mockService.On("GetQuestionAnswers", mock.Anything, int64(99)).
			Return(nil, repository.ErrQuestionNotFound).Once()

		req, _ := http.NewRequest(http.MethodGet, "/questions/99/answers", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		var response map[string]interface{}
		json.Unmarshal(w.Body.Bytes(), &response)
		assert.Equal(t, "Question not found.", response["message"])
	})
}

func TestAnswerHandler_Create(t *testing.T) {
	mockService := new(MockAnswerService)
	r := setupAnswerRouter(mockService)

	t.Run("Success", func(t *testing.T) {
		payload := dto.CreateAnswerDTO{Content: "A"}
		mockService.On("CreateAnswer", mock.Anything, int64(5), payload).Return(int64(11), nil).Once()

		body, _ := json.Marshal(payload)
		req, _ := http.NewRequest(http.MethodPost, "/questions/5/answers", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("QuestionNotFound", func(t *testing.T) {
		payload := dto.CreateAnswerDTO{Content: "A"}
		mockService.On("CreateAnswer", mock.Anything, int64(99), payload).
			Return(int64(0), repository.ErrQuestionNotFound).Once()

		body, _ := json.Marshal(payload)
		req, _ := http.NewRequest(http.MethodPost, "/questions/99/answers", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("EmptyContent", func(t *testing.T) {
		body := []byte(`{"content": ""}`)
		req, _ := http.NewRequest(http.MethodPost, "/questions/5/answers", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockService.AssertNotCalled(t, "CreateAnswer", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("ContentTooLong", func(t *testing.T) {
		payload := dto.CreateAnswerDTO{Content: strings.Repeat("a", 301)}
		body, _ := json.Marshal(payload)
		req, _ := http.NewRequest(http.MethodPost, "/questions/5/answers", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockService.AssertNotCalled(t, "CreateAnswer", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("ContentAtLimit", func(t *testing.T) {
		payload := dto.CreateAnswerDTO{Content: strings.Repeat("a", 300)}
		mockService.On("CreateAnswer", mock.Anything, int64(5), payload).Return(int64(12), nil).Once()

		body, _ := json.Marshal(payload)
		req, _ := http.NewRequest(http.MethodPost, "/questions/5/answers", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
	})
}

func TestAnswerHandler_DeleteAll(t *testing.T) {
	mockService := new(MockAnswerService)
	r := setupAnswerRouter(mockService)

	t.Run("Success", func(t *testing.T) {
		mockService.On("DeleteQuestionAnswers", mock.Anything, int64(5)).Return(nil).Once()

		req, _ := http.NewRequest(http.MethodDelete, "/questions/5/answers", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("QuestionNotFound", func(t *testing.T) {
		mockService.On("DeleteQuestionAnswers", mock.Anything, int64(99)).
			Return(repository.ErrQuestionNotFound).Once()

		req, _ := http.NewRequest(http.MethodDelete, "/questions/99/answers", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
