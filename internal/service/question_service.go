package service

import (
	"answer_board_backend/internal/model"
	"answer_board_backend/internal/repository"
	"answer_board_backend/internal/util"
	"fmt"
)

type QuestionService struct {
	*Lookup
	questions *repository.QuestionRepository
}

func NewQuestionService(sessions *repository.SessionRepository, questions *repository.QuestionRepository) *QuestionService {
	return &QuestionService{
		Lookup:    NewLookup(sessions, questions),
		questions: questions,
	}
}

// CreateQuestion appends a question to an existing session. It does not move
// the session's current-question pointer.
func (s *QuestionService) CreateQuestion(sessionID string, content model.QuestionContent) (*QuestionView, error) {
	session, err := s.FindSession(sessionID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, util.Validation("Invalid session_id")
	}

	count, err := s.questions.CountBySession(session.ID)
	if err != nil {
		return nil, fmt.Errorf("count questions: %w", err)
	}

	question := &model.Question{SessionID: session.ID, Position: int(count)}
	if err := question.SetContent(content); err != nil {
		return nil, util.Validation("%v", err)
	}
	if err := s.questions.Create(question); err != nil {
		return nil, fmt.Errorf("insert question: %w", err)
	}
	view := NewQuestionView(question)
	return &view, nil
}

func (s *QuestionService) GetQuestion(id string) (*QuestionView, error) {
	question, err := s.FindQuestion(id)
	if err != nil {
		return nil, err
	}
	if question == nil {
		return nil, util.NotFound("question")
	}
	view := NewQuestionView(question)
	return &view, nil
}

func (s *QuestionService) UpdateQuestionContent(id string, content model.QuestionContent) (*QuestionView, error) {
	affected, err := s.questions.UpdateContent(id, content)
	if err != nil {
		return nil, fmt.Errorf("update question: %w", err)
	}
	if affected == 0 {
		return nil, util.NotFound("question")
	}
	return s.GetQuestion(id)
}

// ListQuestions returns a session's questions in creation order.
func (s *QuestionService) ListQuestions(sessionID string) ([]QuestionView, error) {
	questions, err := s.questions.ListBySession(sessionID)
	if err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}
	views := make([]QuestionView, len(questions))
	for i := range questions {
		views[i] = NewQuestionView(&questions[i])
	}
	return views, nil
}
