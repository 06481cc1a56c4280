package models

import "time"

type Question struct {
	ID          int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Title       string    `json:"title" gorm:"not null;type:text"`
	Description string    `json:"description" gorm:"not null;type:text"`
	Category    string    `json:"category" gorm:"not null;type:text"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (Question) TableName() string {
	return "questions"
}
