package repository

import (
	"answer_board_backend/internal/model"

	"gorm.io/gorm"
)

type TeacherRepository struct {
	DB *gorm.DB
}

func NewTeacherRepository(db *gorm.DB) *TeacherRepository {
	return &TeacherRepository{DB: db}
}

func (r *TeacherRepository) Create(teacher *model.Teacher) error {
	return r.DB.Create(teacher).Error
}

func (r *TeacherRepository) FindByID(id string) (*model.Teacher, error) {
	var teacher model.Teacher
	err := r.DB.Where("teacher_id = ?", id).First(&teacher).Error
	if err != nil {
		return nil, err
	}
	return &teacher, nil
}

func (r *TeacherRepository) FindByEmail(email string) (*model.Teacher, error) {
	var teacher model.Teacher
	err := r.DB.Where("email = ?", email).Order("created_at ASC").First(&teacher).Error
	if err != nil {
		return nil, err
	}
	return &teacher, nil
}
