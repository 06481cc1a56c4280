package repository

import (
	"context"
	"database/sql"
	"fmt"

	"skillcheckpoint/internal/http-api/models"

	"gorm.io/gorm"
)

// QuestionAnswerRow is one row of the questions-to-answers outer join. A
// question with zero answers yields a single row whose answer columns are
// all NULL; zero rows means the question itself does not exist.
type QuestionAnswerRow struct {
	QuestionID int64          `gorm:"column:question_id"`
	AnswerID   sql.NullInt64  `gorm:"column:answer_id"`
	Content    sql.NullString `gorm:"column:content"`
	CreatedAt  sql.NullTime   `gorm:"column:created_at"`
}

type AnswerRepository interface {
	ListByQuestion(ctx context.Context, questionID int64) ([]QuestionAnswerRow, error)
	CreateForQuestion(ctx context.Context, questionID int64, content string) (int64, error)
	DeleteAllForQuestion(ctx context.Context, questionID int64) error
}

type answerRepository struct {
	db *gorm.DB
}

func NewAnswerRepository(db *gorm.DB) AnswerRepository {
	return &answerRepository{db: db}
}

const listAnswersQuery = `
SELECT q.id AS question_id, a.id AS answer_id, a.content, a.created_at
FROM questions q
LEFT JOIN answers a ON a.question_id = q.id
WHERE q.id = ?`

// ListByQuestion left-joins the question to its answers so the question's
// existence is answered by the same round trip.
func (r *answerRepository) ListByQuestion(ctx context.Context, questionID int64) ([]QuestionAnswerRow, error) {
	var rows []QuestionAnswerRow
	result := r.db.WithContext(ctx).Raw(listAnswersQuery, questionID).Scan(&rows)
	if result.Error != nil {
		return nil, fmt.Errorf("list answers: %w", result.Error)
	}
	if len(rows) == 0 {
		return nil, ErrQuestionNotFound
	}
	return rows, nil
}

const insertAnswerQuery = `
WITH parent AS (
	SELECT id FROM questions WHERE id = ?
)
INSERT INTO answers (content, question_id, created_at)
SELECT ?, id, now() FROM parent
RETURNING id`

// CreateForQuestion inserts the answer only if the question still exists, in
// a single statement. A separate existence check followed by an insert would
// let a concurrent delete slip between the two and orphan the answer; the CTE
// form closes that window at the store.
func (r *answerRepository) CreateForQuestion(ctx context.Context, questionID int64, content string) (int64, error) {
	var id int64
	result := r.db.WithContext(ctx).Raw(insertAnswerQuery, questionID, content).Scan(&id)
	if result.Error != nil {
		if isForeignKeyViolation(result.Error) {
			return 0, ErrQuestionNotFound
		}
		return 0, fmt.Errorf("create answer: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return 0, ErrQuestionNotFound
	}
	return id, nil
}

// DeleteAllForQuestion removes every answer of the question. The existence
// check and the bulk delete are two statements; a delete of the question
// between them only shrinks the second statement to zero rows, which is
// still a success per the contract.
func (r *answerRepository) DeleteAllForQuestion(ctx context.Context, questionID int64) error {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Question{}).
		Where("id = ?", questionID).
		Count(&count).Error; err != nil {
		return fmt.Errorf("check question: %w", err)
	}
	if count == 0 {
		return ErrQuestionNotFound
	}

	if err := r.db.WithContext(ctx).
		Where("question_id = ?", questionID).
		Delete(&models.Answer{}).Error; err != nil {
		return fmt.Errorf("delete answers: %w", err)
	}
	return nil
}
