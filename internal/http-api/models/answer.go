package models

import "time"

type Answer struct {
	ID         int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	QuestionID int64     `json:"question_id" gorm:"not null;index"`
	Content    string    `json:"content" gorm:"not null;type:varchar(300)"`
	CreatedAt  time.Time `json:"created_at" gorm:"autoCreateTime"`

	// Associations
	Question Question `json:"question,omitempty" gorm:"foreignKey:QuestionID;constraint:OnDelete:CASCADE;"`
}

func (Answer) TableName() string {
	return "answers"
}
