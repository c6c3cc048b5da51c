package service

import (
	"answer_board_backend/internal/model"
	"encoding/json"
	"time"
)

type SessionView struct {
	SessionID           string    `json:"session_id"`
	TeacherID           string    `json:"teacher_id"`
	SessionName         string    `json:"session_name"`
	Name                string    `json:"name"`
	SessionCode         string    `json:"session_code"`
	CurrentQuestionID   *string   `json:"current_question_id"`
	CurrentQuestionText *string   `json:"current_question_text,omitempty"`
	CreatedAt           time.Time `json:"created_at"`
}

func NewSessionView(s *model.Session) SessionView {
	return SessionView{
		SessionID:         s.ID,
		TeacherID:         s.TeacherID,
		SessionName:       s.SessionName,
		Name:              s.SessionName,
		SessionCode:       s.SessionCode,
		CurrentQuestionID: s.CurrentQuestionID,
		CreatedAt:         s.CreatedAt,
	}
}

type QuestionView struct {
	QuestionID   string         `json:"question_id"`
	SessionID    string         `json:"session_id"`
	QuestionText string         `json:"question_text"`
	QuestionBody map[string]any `json:"question_body"`
	Position     int            `json:"position"`
	CreatedAt    time.Time      `json:"created_at"`
}

func NewQuestionView(q *model.Question) QuestionView {
	content := q.Content()
	return QuestionView{
		QuestionID:   q.ID,
		SessionID:    q.SessionID,
		QuestionText: content.Text(),
		QuestionBody: content.Document(),
		Position:     q.Position,
		CreatedAt:    q.CreatedAt,
	}
}

type AnswerView struct {
	AnswerID   string          `json:"answer_id"`
	QuestionID string          `json:"question_id"`
	SessionID  string          `json:"session_id"`
	StudentID  *string         `json:"student_id"`
	PreviewURL *string         `json:"preview_url"`
	CreatedAt  time.Time       `json:"created_at"`
	BoardJSON  json.RawMessage `json:"board_json,omitempty"`
}

func NewAnswerView(a *model.Answer, includeBoard bool) AnswerView {
	v := AnswerView{
		AnswerID:   a.ID,
		QuestionID: a.QuestionID,
		SessionID:  a.SessionID,
		StudentID:  a.StudentID,
		PreviewURL: a.PreviewURL,
		CreatedAt:  a.CreatedAt,
	}
	if includeBoard && len(a.BoardJSON) > 0 {
		v.BoardJSON = json.RawMessage(a.BoardJSON)
	}
	return v
}

// QuestionAnswers is one group of the per-session answer overview.
type QuestionAnswers struct {
	QuestionView
	Answers []AnswerView `json:"answers"`
}
