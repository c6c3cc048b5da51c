package model

import (
	"time"

	"gorm.io/gorm"
)

// Session is a teacher-initiated unit of classroom activity.
// CurrentQuestionID, when set, points at a question of the same session.
type Session struct {
	ID                string    `gorm:"column:session_id;primaryKey;type:varchar(36)" json:"session_id"`
	TeacherID         string    `gorm:"column:teacher_id;type:varchar(255);not null;index:idx_sessions_teacher_created" json:"teacher_id"`
	SessionName       string    `gorm:"column:session_name;type:varchar(255)" json:"session_name"`
	SessionCode       string    `gorm:"column:session_code;type:varchar(16);uniqueIndex" json:"session_code"`
	CurrentQuestionID *string   `gorm:"column:current_question_id;type:varchar(36)" json:"current_question_id"`
	CreatedAt         time.Time `gorm:"index:idx_sessions_teacher_created" json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

func (Session) TableName() string {
	return "sessions"
}

func (s *Session) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == "" {
		s.ID = GenerateUUID()
	}
	if s.SessionCode == "" {
		s.SessionCode = GenerateSessionCode()
	}
	return
}
