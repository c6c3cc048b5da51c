package service

import (
	"answer_board_backend/internal/model"
	"answer_board_backend/internal/repository"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// Lookup fetches single rows by primary key. Absent rows come back as nil
// with a nil error; nothing is cached.
type Lookup struct {
	sessions  *repository.SessionRepository
	questions *repository.QuestionRepository
}

func NewLookup(sessions *repository.SessionRepository, questions *repository.QuestionRepository) *Lookup {
	return &Lookup{sessions: sessions, questions: questions}
}

func (l *Lookup) FindSession(id string) (*model.Session, error) {
	session, err := l.sessions.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("find session: %w", err)
	}
	return session, nil
}

func (l *Lookup) FindQuestion(id string) (*model.Question, error) {
	question, err := l.questions.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("find question: %w", err)
	}
	return question, nil
}
