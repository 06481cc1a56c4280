package service

import (
	"context"

	"skillcheckpoint/internal/http-api/repository"
)

type VoteService interface {
	VoteQuestion(ctx context.Context, questionID int64, vote int) error
	VoteAnswer(ctx context.Context, answerID int64, vote int) error
}

type voteService struct {
	voteRepo repository.VoteRepository
}

func NewVoteService(voteRepo repository.VoteRepository) VoteService {
	return &voteService{voteRepo: voteRepo}
}

// The vote value is already pinned to +1/-1 at the edge; the repository's
// conditional insert decides whether the parent still exists.

func (s *voteService) VoteQuestion(ctx context.Context, questionID int64, vote int) error {
	_, err := s.voteRepo.CreateQuestionVote(ctx, questionID, vote)
	return err
}

func (s *voteService) VoteAnswer(ctx context.Context, answerID int64, vote int) error {
	_, err := s.voteRepo.CreateAnswerVote(ctx, answerID, vote)
	return err
}
