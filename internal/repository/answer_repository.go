package repository

import (
	"answer_board_backend/internal/model"

	"gorm.io/gorm"
)

// answerMetaColumns is every column except the board document.
var answerMetaColumns = []string{"answer_id", "session_id", "question_id", "preview_url", "student_id", "created_at"}

type AnswerRepository struct {
	DB *gorm.DB
}

func NewAnswerRepository(db *gorm.DB) *AnswerRepository {
	return &AnswerRepository{DB: db}
}

func (r *AnswerRepository) Create(answer *model.Answer) error {
	return r.DB.Create(answer).Error
}

func (r *AnswerRepository) FindByID(id string) (*model.Answer, error) {
	var answer model.Answer
	err := r.DB.Where("answer_id = ?", id).First(&answer).Error
	if err != nil {
		return nil, err
	}
	return &answer, nil
}

// ListByQuestion returns answer metadata (no board document), oldest first.
func (r *AnswerRepository) ListByQuestion(questionID string) ([]model.Answer, error) {
	var answers []model.Answer
	err := r.DB.Select(answerMetaColumns).
		Where("question_id = ?", questionID).
		Order("created_at ASC").
		Find(&answers).Error
	return answers, err
}

func (r *AnswerRepository) ListIDsByQuestion(questionID string) ([]string, error) {
	var ids []string
	err := r.DB.Model(&model.Answer{}).
		Where("question_id = ?", questionID).
		Order("created_at ASC").
		Pluck("answer_id", &ids).Error
	return ids, err
}

// ListByQuestionIDs fetches the answers of many questions in one query.
func (r *AnswerRepository) ListByQuestionIDs(questionIDs []string, includeBoard bool) ([]model.Answer, error) {
	if len(questionIDs) == 0 {
		return []model.Answer{}, nil
	}
	query := r.DB.Where("question_id IN ?", questionIDs).Order("created_at ASC")
	if !includeBoard {
		query = query.Select(answerMetaColumns)
	}
	var answers []model.Answer
	err := query.Find(&answers).Error
	return answers, err
}
