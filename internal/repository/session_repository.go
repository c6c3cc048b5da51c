package repository

import (
	"answer_board_backend/internal/model"
	"strings"

	"gorm.io/gorm"
)

type SessionRepository struct {
	DB *gorm.DB
}

func NewSessionRepository(db *gorm.DB) *SessionRepository {
	return &SessionRepository{DB: db}
}

func (r *SessionRepository) Create(session *model.Session) error {
	return r.DB.Create(session).Error
}

func (r *SessionRepository) FindByID(id string) (*model.Session, error) {
	var session model.Session
	err := r.DB.Where("session_id = ?", id).First(&session).Error
	if err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *SessionRepository) FindByCode(code string) (*model.Session, error) {
	var session model.Session
	err := r.DB.Where("session_code = ?", strings.ToUpper(code)).First(&session).Error
	if err != nil {
		return nil, err
	}
	return &session, nil
}

// UpdateName returns the number of rows touched; zero means no such session.
func (r *SessionRepository) UpdateName(id, name string) (int64, error) {
	res := r.DB.Model(&model.Session{}).Where("session_id = ?", id).Update("session_name", name)
	return res.RowsAffected, res.Error
}

func (r *SessionRepository) SetCurrentQuestion(id, questionID string) (int64, error) {
	res := r.DB.Model(&model.Session{}).Where("session_id = ?", id).Update("current_question_id", questionID)
	return res.RowsAffected, res.Error
}

// ListByTeacher pages through a teacher's sessions, newest first.
func (r *SessionRepository) ListByTeacher(teacherID string, limit, offset int) ([]model.Session, error) {
	var sessions []model.Session
	err := r.DB.Where("teacher_id = ?", teacherID).
		Order("created_at DESC").
		Order("session_id DESC").
		Limit(limit).
		Offset(offset).
		Find(&sessions).Error
	return sessions, err
}
