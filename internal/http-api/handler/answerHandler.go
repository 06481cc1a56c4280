package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"skillcheckpoint/internal/http-api/dto"
	"skillcheckpoint/internal/http-api/repository"
	"skillcheckpoint/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

type AnswerHandler struct {
	answerService service.AnswerService
}

func NewAnswerHandler(answerService service.AnswerService) *AnswerHandler {
	return &AnswerHandler{answerService: answerService}
}

// RegisterRoutes registers answer-related routes
func (h *AnswerHandler) RegisterRoutes(router *gin.RouterGroup) {
	answers := router.Group("/questions/:questionId/answers")
	{
		answers.GET("", h.ListByQuestion)
		answers.POST("", h.Create)
		answers.DELETE("", h.DeleteAll)
	}
}

// ListByQuestion returns all answers of a question
// GET /questions/:questionId/answers
func (h *AnswerHandler) ListByQuestion(c *gin.Context) {
	questionID, err := strconv.ParseInt(c.Param("questionId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request data."})
		return
	}

	answers, err := h.answerService.GetQuestionAnswers(c.Request.Context(), questionID)
	if err != nil {
		if errors.Is(err, repository.ErrQuestionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Question not found."})
			return
		}
		slog.Error("list answers failed", "error", err, "question_id", questionID)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Unable to fetch answers."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": answers})
}

// Create records an answer, only if the question still exists
// POST /questions/:questionId/answers
func (h *AnswerHandler) Create(c *gin.Context) {
	questionID, err := strconv.ParseInt(c.Param("questionId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request data."})
		return
	}

	var req dto.CreateAnswerDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request data."})
		return
	}

	if _, err := h.answerService.CreateAnswer(c.Request.Context(), questionID, req); err != nil {
		if errors.Is(err, repository.ErrQuestionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Question not found."})
			return
		}
		slog.Error("create answer failed", "error", err, "question_id", questionID)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Unable to create answers."})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Answer created successfully."})
}

// DeleteAll removes every answer of a question
// DELETE /questions/:questionId/answers
func (h *AnswerHandler) DeleteAll(c *gin.Context) {
	questionID, err := strconv.ParseInt(c.Param("questionId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request data."})
		return
	}

	if err := h.answerService.DeleteQuestionAnswers(c.Request.Context(), questionID); err != nil {
		if errors.Is(err, repository.ErrQuestionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Question not found."})
			return
		}
		slog.Error("delete answers failed", "error", err, "question_id", questionID)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Unable to delete answers."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "All answers for the question have been deleted successfully."})
}
