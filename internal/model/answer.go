package model

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Answer is immutable once stored.
type Answer struct {
	ID         string         `gorm:"column:answer_id;primaryKey;type:varchar(36)" json:"answer_id"`
	SessionID  string         `gorm:"column:session_id;type:varchar(36);not null;index" json:"session_id"`
	QuestionID string         `gorm:"column:question_id;type:varchar(36);not null;index:idx_answers_question_created" json:"question_id"`
	BoardJSON  datatypes.JSON `gorm:"column:board_json" json:"board_json,omitempty"`
	PreviewURL *string        `gorm:"column:preview_url;type:text" json:"preview_url"`
	StudentID  *string        `gorm:"column:student_id;type:varchar(255)" json:"student_id"`
	CreatedAt  time.Time      `gorm:"index:idx_answers_question_created" json:"created_at"`
}

func (Answer) TableName() string {
	return "answers"
}

func (a *Answer) BeforeCreate(tx *gorm.DB) (err error) {
	if a.ID == "" {
		a.ID = GenerateUUID()
	}
	return
}
