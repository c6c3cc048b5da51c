package repository

import (
	"answer_board_backend/internal/model"

	"gorm.io/gorm"
)

type QuestionRepository struct {
	DB *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) *QuestionRepository {
	return &QuestionRepository{DB: db}
}

func (r *QuestionRepository) Create(question *model.Question) error {
	return r.DB.Create(question).Error
}

func (r *QuestionRepository) FindByID(id string) (*model.Question, error) {
	var question model.Question
	err := r.DB.Where("question_id = ?", id).First(&question).Error
	if err != nil {
		return nil, err
	}
	return &question, nil
}

func (r *QuestionRepository) FindByIDs(ids []string) ([]model.Question, error) {
	if len(ids) == 0 {
		return []model.Question{}, nil
	}
	var questions []model.Question
	err := r.DB.Where("question_id IN ?", ids).Find(&questions).Error
	return questions, err
}

func (r *QuestionRepository) ListBySession(sessionID string) ([]model.Question, error) {
	var questions []model.Question
	err := r.DB.Where("session_id = ?", sessionID).
		Order("created_at ASC").
		Order("position ASC").
		Find(&questions).Error
	return questions, err
}

func (r *QuestionRepository) CountBySession(sessionID string) (int64, error) {
	var count int64
	err := r.DB.Model(&model.Question{}).Where("session_id = ?", sessionID).Count(&count).Error
	return count, err
}

// UpdateContent patches both text columns and returns the rows touched.
func (r *QuestionRepository) UpdateContent(id string, content model.QuestionContent) (int64, error) {
	var patch model.Question
	if err := patch.SetContent(content); err != nil {
		return 0, err
	}
	res := r.DB.Model(&model.Question{}).Where("question_id = ?", id).Updates(map[string]interface{}{
		"question_text": patch.QuestionText,
		"question_body": patch.QuestionBody,
	})
	return res.RowsAffected, res.Error
}
