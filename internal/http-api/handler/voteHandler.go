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

type VoteHandler struct {
	voteService service.VoteService
}

func NewVoteHandler(voteService service.VoteService) *VoteHandler {
	return &VoteHandler{voteService: voteService}
}

// RegisterRoutes registers vote-related routes
func (h *VoteHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/questions/:questionId/vote", h.VoteQuestion)
	router.POST("/answers/:answerId/vote", h.VoteAnswer)
}

// VoteQuestion records an up or down vote on a question
// POST /questions/:questionId/vote
func (h *VoteHandler) VoteQuestion(c *gin.Context) {
	questionID, err := strconv.ParseInt(c.Param("questionId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request data."})
		return
	}

	var req dto.CastVoteDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid vote value."})
		return
	}

	if err := h.voteService.VoteQuestion(c.Request.Context(), questionID, *req.Vote); err != nil {
		if errors.Is(err, repository.ErrQuestionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Question not found."})
			return
		}
		slog.Error("vote question failed", "error", err, "question_id", questionID)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Unable to vote question."})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Vote on the question has been recorded successfully."})
}

// VoteAnswer records an up or down vote on an answer
// POST /answers/:answerId/vote
func (h *VoteHandler) VoteAnswer(c *gin.Context) {
	answerID, err := strconv.ParseInt(c.Param("answerId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request data."})
		return
	}

	var req dto.CastVoteDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid vote value."})
		return
	}

	if err := h.voteService.VoteAnswer(c.Request.Context(), answerID, *req.Vote); err != nil {
		if errors.Is(err, repository.ErrAnswerNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Answer not found."})
			return
		}
		slog.Error("vote answer failed", "error", err, "answer_id", answerID)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Unable to vote answer."})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Vote on the answer has been recorded successfully."})
}
