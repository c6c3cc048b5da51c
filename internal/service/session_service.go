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

type SessionService struct {
	*Lookup
	db        *gorm.DB
	sessions  *repository.SessionRepository
	questions *repository.QuestionRepository
}

func NewSessionService(db *gorm.DB, sessions *repository.SessionRepository, questions *repository.QuestionRepository) *SessionService {
	return &SessionService{
		Lookup:    NewLookup(sessions, questions),
		db:        db,
		sessions:  sessions,
		questions: questions,
	}
}

type CreateSessionInput struct {
	TeacherID   string
	SessionName string
	// InitialQuestion is optional; when set it becomes the current question.
	InitialQuestion *model.QuestionContent
}

// CreateSession stores the session and, if given, its first question and
// pointer in one transaction.
func (s *SessionService) CreateSession(in CreateSessionInput) (*model.Session, error) {
	teacherID := strings.TrimSpace(in.TeacherID)
	if teacherID == "" {
		return nil, util.Validation("teacher_id is required")
	}

	session := &model.Session{
		TeacherID:   teacherID,
		SessionName: strings.TrimSpace(in.SessionName),
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		sessions := repository.NewSessionRepository(tx)
		questions := repository.NewQuestionRepository(tx)

		if err := sessions.Create(session); err != nil {
			return fmt.Errorf("insert session: %w", err)
		}
		if in.InitialQuestion == nil {
			return nil
		}

		question := &model.Question{SessionID: session.ID}
		if err := question.SetContent(*in.InitialQuestion); err != nil {
			return util.Validation("%v", err)
		}
		if err := questions.Create(question); err != nil {
			return fmt.Errorf("insert question: %w", err)
		}
		if _, err := sessions.SetCurrentQuestion(session.ID, question.ID); err != nil {
			return fmt.Errorf("set current question: %w", err)
		}
		session.CurrentQuestionID = &question.ID
		return nil
	})
	if err != nil {
		return nil, err
	}
	return session, nil
}

func (s *SessionService) GetSession(id string) (*SessionView, error) {
	session, err := s.FindSession(id)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, util.NotFound("session")
	}
	return s.sessionView(session)
}

func (s *SessionService) sessionView(session *model.Session) (*SessionView, error) {
	view := NewSessionView(session)
	if err := s.attachCurrentQuestionText([]*SessionView{&view}); err != nil {
		return nil, err
	}
	return &view, nil
}

// ResolveSession accepts a join code (any case) or a full session id.
func (s *SessionService) ResolveSession(ref string) (*SessionView, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return nil, util.Validation("session code is required")
	}
	if len(ref) == model.SessionCodeLength {
		session, err := s.sessions.FindByCode(ref)
		if err == nil {
			return s.sessionView(session)
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("find session by code: %w", err)
		}
	}
	return s.GetSession(ref)
}

func (s *SessionService) RenameSession(id, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return util.Validation("session_name is required")
	}
	affected, err := s.sessions.UpdateName(id, name)
	if err != nil {
		return fmt.Errorf("update session name: %w", err)
	}
	if affected == 0 {
		return util.NotFound("session")
	}
	return nil
}

// ListSessionsForTeacher returns one page, newest first, each row carrying the
// display text of its current question when that question still exists.
func (s *SessionService) ListSessionsForTeacher(teacherID string, limit, offset int) ([]SessionView, error) {
	sessions, err := s.sessions.ListByTeacher(teacherID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}

	views := make([]SessionView, len(sessions))
	ptrs := make([]*SessionView, len(sessions))
	for i := range sessions {
		views[i] = NewSessionView(&sessions[i])
		ptrs[i] = &views[i]
	}
	if err := s.attachCurrentQuestionText(ptrs); err != nil {
		return nil, err
	}
	return views, nil
}

// attachCurrentQuestionText resolves all current-question pointers of the
// page with a single bulk query.
func (s *SessionService) attachCurrentQuestionText(views []*SessionView) error {
	seen := make(map[string]struct{})
	ids := make([]string, 0, len(views))
	for _, v := range views {
		if v.CurrentQuestionID == nil {
			continue
		}
		if _, ok := seen[*v.CurrentQuestionID]; ok {
			continue
		}
		seen[*v.CurrentQuestionID] = struct{}{}
		ids = append(ids, *v.CurrentQuestionID)
	}
	if len(ids) == 0 {
		return nil
	}

	questions, err := s.questions.FindByIDs(ids)
	if err != nil {
		return fmt.Errorf("load current questions: %w", err)
	}
	texts := make(map[string]string, len(questions))
	for i := range questions {
		texts[questions[i].ID] = questions[i].Content().Text()
	}
	for _, v := range views {
		if v.CurrentQuestionID == nil {
			continue
		}
		if text, ok := texts[*v.CurrentQuestionID]; ok {
			v.CurrentQuestionText = &text
		}
	}
	return nil
}

// SetCurrentQuestion moves the pointer after checking the question belongs
// to the session. Concurrent calls are last-write-wins.
func (s *SessionService) SetCurrentQuestion(sessionID, questionID string) error {
	questionID = strings.TrimSpace(questionID)
	if questionID == "" {
		return util.Validation("question_id is required")
	}
	session, err := s.FindSession(sessionID)
	if err != nil {
		return err
	}
	if session == nil {
		return util.Validation("Invalid session_id")
	}
	question, err := s.FindQuestion(questionID)
	if err != nil {
		return err
	}
	if question == nil || question.SessionID != session.ID {
		return util.Validation("question_id does not belong to this session")
	}
	if _, err := s.sessions.SetCurrentQuestion(session.ID, question.ID); err != nil {
		return fmt.Errorf("set current question: %w", err)
	}
	return nil
}

// GetCurrentQuestion returns nil (no error) when no question is current.
func (s *SessionService) GetCurrentQuestion(sessionID string) (*QuestionView, error) {
	session, err := s.FindSession(sessionID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, util.Validation("Invalid session_id")
	}
	if session.CurrentQuestionID == nil || *session.CurrentQuestionID == "" {
		return nil, nil
	}
	question, err := s.FindQuestion(*session.CurrentQuestionID)
	if err != nil {
		return nil, err
	}
	if question == nil {
		return nil, nil
	}
	view := NewQuestionView(question)
	return &view, nil
}
