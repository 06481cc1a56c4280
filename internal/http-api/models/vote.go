package models

// Votes are append-only and anonymous: there is no voter identity in the
// model, so the same question or answer may accumulate any number of rows.

type QuestionVote struct {
	ID         int64 `json:"id" gorm:"primaryKey;autoIncrement"`
	QuestionID int64 `json:"question_id" gorm:"not null;index"`
	Vote       int   `json:"vote" gorm:"not null;check:vote IN (1,-1)"`

	// Associations
	Question Question `json:"question,omitempty" gorm:"foreignKey:QuestionID;constraint:OnDelete:CASCADE;"`
}

func (QuestionVote) TableName() string {
	return "question_votes"
}

type AnswerVote struct {
	ID       int64 `json:"id" gorm:"primaryKey;autoIncrement"`
	AnswerID int64 `json:"answer_id" gorm:"not null;index"`
	Vote     int   `json:"vote" gorm:"not null;check:vote IN (1,-1)"`

	// Associations
	Answer Answer `json:"answer,omitempty" gorm:"foreignKey:AnswerID;constraint:OnDelete:CASCADE;"`
}

func (AnswerVote) TableName() string {
	return "answer_votes"
}
