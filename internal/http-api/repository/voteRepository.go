package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

type VoteRepository interface {
	CreateQuestionVote(ctx context.Context, questionID int64, vote int) (int64, error)
	CreateAnswerVote(ctx context.Context, answerID int64, vote int) (int64, error)
}

type voteRepository struct {
	db *gorm.DB
}

func NewVoteRepository(db *gorm.DB) VoteRepository {
	return &voteRepository{db: db}
}

// Both inserts follow the same conditional shape as answers: the parent is
// read and the child written in one statement, so a vote can never land on a
// question or answer that was already gone.

const insertQuestionVoteQuery = `
WITH parent AS (
	SELECT id FROM questions WHERE id = ?
)
INSERT INTO question_votes (vote, question_id)
SELECT ?, id FROM parent
RETURNING id`

func (r *voteRepository) CreateQuestionVote(ctx context.Context, questionID int64, vote int) (int64, error) {
	var id int64
	result := r.db.WithContext(ctx).Raw(insertQuestionVoteQuery, questionID, vote).Scan(&id)
	if result.Error != nil {
		if isForeignKeyViolation(result.Error) {
			return 0, ErrQuestionNotFound
		}
		return 0, fmt.Errorf("vote question: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return 0, ErrQuestionNotFound
	}
	return id, nil
}

const insertAnswerVoteQuery = `
WITH parent AS (
	SELECT id FROM answers WHERE id = ?
)
INSERT INTO answer_votes (vote, answer_id)
SELECT ?, id FROM parent
RETURNING id`

func (r *voteRepository) CreateAnswerVote(ctx context.Context, answerID int64, vote int) (int64, error) {
	var id int64
	result := r.db.WithContext(ctx).Raw(insertAnswerVoteQuery, answerID, vote).Scan(&id)
	if result.Error != nil {
		if isForeignKeyViolation(result.Error) {
			return 0, ErrAnswerNotFound
		}
		return 0, fmt.Errorf("vote answer: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return 0, ErrAnswerNotFound
	}
	return id, nil
}
