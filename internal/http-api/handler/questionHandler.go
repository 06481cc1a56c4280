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

type QuestionHandler struct {
	questionService service.QuestionService
}

func NewQuestionHandler(questionService service.QuestionService) *QuestionHandler {
	return &QuestionHandler{questionService: questionService}
}

// RegisterRoutes registers question-related routes
func (h *QuestionHandler) RegisterRoutes(router *gin.RouterGroup) {
	questions := router.Group("/questions")
	{
		questions.GET("", h.List)
		questions.POST("", h.Create)
		questions.GET("/search", h.Search)
		questions.GET("/:questionId", h.Get)
		questions.PUT("/:questionId", h.Update)
		questions.DELETE("/:questionId", h.Delete)
	}
}

// Create creates a new question
// POST /questions
func (h *QuestionHandler) Create(c *gin.Context) {
	var req dto.CreateQuestionDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request data."})
		return
	}

	if err := h.questionService.CreateQuestion(c.Request.Context(), req); err != nil {
		slog.Error("create question failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Unable to create question."})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Question created successfully."})
}

// List returns all questions
// GET /questions
func (h *QuestionHandler) List(c *gin.Context) {
	questions, err := h.questionService.GetAllQuestions(c.Request.Context())
	if err != nil {
		slog.Error("list questions failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Unable to fetch questions."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": questions})
}

// Get returns a single question by id
// GET /questions/:questionId
func (h *QuestionHandler) Get(c *gin.Context) {
	questionID, err := strconv.ParseInt(c.Param("questionId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request data."})
		return
	}

	question, err := h.questionService.GetQuestionByID(c.Request.Context(), questionID)
	if err != nil {
		if errors.Is(err, repository.ErrQuestionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Question not found."})
			return
		}
		slog.Error("get question failed", "error", err, "question_id", questionID)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Unable to fetch questions."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": question})
}

// Update overwrites a question's title, description and category
// PUT /questions/:questionId
func (h *QuestionHandler) Update(c *gin.Context) {
	questionID, err := strconv.ParseInt(c.Param("questionId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request data."})
		return
	}

	var req dto.UpdateQuestionDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request data."})
		return
	}

	if err := h.questionService.UpdateQuestion(c.Request.Context(), questionID, req); err != nil {
		if errors.Is(err, repository.ErrQuestionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Question not found."})
			return
		}
		slog.Error("update question failed", "error", err, "question_id", questionID)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Unable to update question."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Question updated successfully."})
}

// Delete removes a question
// DELETE /questions/:questionId
func (h *QuestionHandler) Delete(c *gin.Context) {
	questionID, err := strconv.ParseInt(c.Param("questionId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request data."})
		return
	}

	if err := h.questionService.DeleteQuestion(c.Request.Context(), questionID); err != nil {
		if errors.Is(err, repository.ErrQuestionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Question not found."})
			return
		}
		slog.Error("delete question failed", "error", err, "question_id", questionID)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Unable to delete question."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Question deleted successfully."})
}

// Search filters questions by title and/or category, case-insensitively
// GET /questions/search?title=&category=
func (h *QuestionHandler) Search(c *gin.Context) {
	var filters dto.SearchQuestionsDTO
	if err := c.ShouldBindQuery(&filters); err != nil || !filters.HasFilter() {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request data."})
		return
	}

	questions, err := h.questionService.SearchQuestions(c.Request.Context(), filters)
	if err != nil {
		slog.Error("search questions failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Unable to fetch questions."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": questions})
}
