package service

import (
	"answer_board_backend/internal/model"
	"answer_board_backend/internal/repository"
	"answer_board_backend/internal/util"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

type TeacherService struct {
	repo *repository.TeacherRepository
}

func NewTeacherService(repo *repository.TeacherRepository) *TeacherService {
	return &TeacherService{repo: repo}
}

func (s *TeacherService) CreateTeacher(displayName, email *string) (*model.Teacher, error) {
	teacher := &model.Teacher{
		DisplayName: trimmedOrNil(displayName),
		Email:       trimmedOrNil(email),
	}
	if err := s.repo.Create(teacher); err != nil {
		return nil, fmt.Errorf("insert teacher: %w", err)
	}
	return teacher, nil
}

func (s *TeacherService) FindByEmail(email string) (*model.Teacher, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, util.Validation("email is required")
	}
	teacher, err := s.repo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.NotFound("teacher")
		}
		return nil, fmt.Errorf("find teacher by email: %w", err)
	}
	return teacher, nil
}

func (s *TeacherService) GetTeacher(id string) (*model.Teacher, error) {
	teacher, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.NotFound("teacher")
		}
		return nil, fmt.Errorf("find teacher: %w", err)
	}
	return teacher, nil
}

func trimmedOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
