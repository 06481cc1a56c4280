package repository

import (
	"context"
	"errors"
	"fmt"

	"skillcheckpoint/internal/http-api/models"

	"gorm.io/gorm"
)

type QuestionRepository interface {
	Create(ctx context.Context, q *models.Question) error
	GetAll(ctx context.Context) ([]models.Question, error)
	GetByID(ctx context.Context, id int64) (*models.Question, error)
	Update(ctx context.Context, id int64, q *models.Question) error
	Delete(ctx context.Context, id int64) error
	Search(ctx context.Context, title, category string) ([]models.Question, error)
}

type questionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

// Create inserts a new question. GORM populates q.ID and q.CreatedAt, but
// callers only receive an acknowledgment.
func (r *questionRepository) Create(ctx context.Context, q *models.Question) error {
	if err := r.db.WithContext(ctx).Create(q).Error; err != nil {
		return fmt.Errorf("create question: %w", err)
	}
	return nil
}

// GetAll returns every question, unordered.
func (r *questionRepository) GetAll(ctx context.Context) ([]models.Question, error) {
	var list []models.Question
	if err := r.db.WithContext(ctx).Find(&list).Error; err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}
	return list, nil
}

func (r *questionRepository) GetByID(ctx context.Context, id int64) (*models.Question, error) {
	var q models.Question
	if err := r.db.WithContext(ctx).First(&q, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrQuestionNotFound
		}
		return nil, fmt.Errorf("get question: %w", err)
	}
	return &q, nil
}

// Update overwrites title, description and category. The map form keeps the
// overwrite explicit regardless of zero values.
func (r *questionRepository) Update(ctx context.Context, id int64, q *models.Question) error {
	result := r.db.WithContext(ctx).
		Model(&models.Question{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"title":       q.Title,
			"description": q.Description,
			"category":    q.Category,
		})
	if result.Error != nil {
		return fmt.Errorf("update question: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrQuestionNotFound
	}
	return nil
}

// Delete removes the question row only. Dependent answers and votes go with
// it through the ON DELETE CASCADE foreign keys declared on the schema.
func (r *questionRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&models.Question{}, id)
	if result.Error != nil {
		return fmt.Errorf("delete question: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrQuestionNotFound
	}
	return nil
}

// Search performs case-insensitive partial match on whichever of title and
// category is present; both present means both must match.
func (r *questionRepository) Search(ctx context.Context, title, category string) ([]models.Question, error) {
	var list []models.Question
	db := r.db.WithContext(ctx)
	if title != "" {
		db = db.Where("title ILIKE ?", "%"+title+"%")
	}
	if category != "" {
		db = db.Where("category ILIKE ?", "%"+category+"%")
	}
	if err := db.Find(&list).Error; err != nil {
		return nil, fmt.Errorf("search questions: %w", err)
	}
	return list, nil
}
