package service

import (
	"answer_board_backend/internal/model"
	"answer_board_backend/internal/repository"
	"answer_board_backend/internal/util"
	"answer_board_backend/pkg/logger"
	"answer_board_backend/pkg/monitoring"
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"strings"

	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type AnswerService struct {
	*Lookup
	answers   *repository.AnswerRepository
	questions *repository.QuestionRepository
	storage   *StorageService
}

func NewAnswerService(
	sessions *repository.SessionRepository,
	questions *repository.QuestionRepository,
	answers *repository.AnswerRepository,
	storage *StorageService,
) *AnswerService {
	return &AnswerService{
		Lookup:    NewLookup(sessions, questions),
		answers:   answers,
		questions: questions,
		storage:   storage,
	}
}

type SubmitAnswerInput struct {
	SessionID string
	// QuestionID is optional; the session's current question is used otherwise.
	QuestionID string
	// BoardJSON is stored byte for byte; it must be a JSON object.
	BoardJSON        json.RawMessage
	PreviewPNGBase64 string
	StudentID        *string
}

type SubmitAnswerResult struct {
	AnswerID   string
	QuestionID string
	PreviewURL *string
}

// SubmitAnswer records a student's board. A preview that cannot be decoded or
// uploaded is dropped with a warning; the answer is stored regardless.
func (s *AnswerService) SubmitAnswer(ctx context.Context, in SubmitAnswerInput) (*SubmitAnswerResult, error) {
	if !isJSONObject(in.BoardJSON) {
		return nil, util.Validation("board_json must be a JSON object")
	}

	session, err := s.FindSession(strings.TrimSpace(in.SessionID))
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, util.Validation("Invalid session_id")
	}

	question, err := s.resolveQuestion(session, strings.TrimSpace(in.QuestionID))
	if err != nil {
		return nil, err
	}

	answerID := model.GenerateUUID()
	previewURL := s.storePreview(ctx, session.ID, answerID, in.PreviewPNGBase64)

	answer := &model.Answer{
		ID:         answerID,
		SessionID:  session.ID,
		QuestionID: question.ID,
		BoardJSON:  datatypes.JSON(bytes.TrimSpace(in.BoardJSON)),
		PreviewURL: previewURL,
		StudentID:  trimmedOrNil(in.StudentID),
	}
	if err := s.answers.Create(answer); err != nil {
		if previewURL != nil {
			s.discardPreview(ctx, session.ID, answerID)
		}
		return nil, fmt.Errorf("insert answer: %w", err)
	}

	return &SubmitAnswerResult{
		AnswerID:   answer.ID,
		QuestionID: question.ID,
		PreviewURL: previewURL,
	}, nil
}

// resolveQuestion picks the explicit question or falls back to the session's
// current one; either way it must belong to the session.
func (s *AnswerService) resolveQuestion(session *model.Session, questionID string) (*model.Question, error) {
	if questionID == "" {
		if session.CurrentQuestionID == nil || *session.CurrentQuestionID == "" {
			return nil, util.Validation("No question_id given and the session has no current question")
		}
		questionID = *session.CurrentQuestionID
	}

	question, err := s.FindQuestion(questionID)
	if err != nil {
		return nil, err
	}
	if question == nil {
		return nil, util.Validation("Invalid question_id")
	}
	if question.SessionID != session.ID {
		return nil, util.Validation("question_id does not belong to this session")
	}
	return question, nil
}

func (s *AnswerService) storePreview(ctx context.Context, sessionID, answerID, encoded string) *string {
	if strings.TrimSpace(encoded) == "" || s.storage == nil {
		return nil
	}

	log := logger.Log.With(zap.String("session_id", sessionID), zap.String("answer_id", answerID))

	png, err := DecodePreview(encoded)
	if err != nil {
		log.Warn("Discarding undecodable preview", zap.Error(err))
		monitoring.PreviewUploads.WithLabelValues("invalid").Inc()
		return nil
	}

	url, err := s.storage.UploadPreview(ctx, sessionID, answerID, png)
	if err != nil {
		log.Warn("Preview upload failed; storing answer without preview", zap.Error(err))
		monitoring.PreviewUploads.WithLabelValues("failed").Inc()
		return nil
	}
	monitoring.PreviewUploads.WithLabelValues("stored").Inc()
	return &url
}

// discardPreview removes a preview whose answer row was never written.
func (s *AnswerService) discardPreview(ctx context.Context, sessionID, answerID string) {
	key := PreviewKey(sessionID, answerID)
	if err := s.storage.Delete(ctx, key); err != nil {
		logger.Log.Warn("Failed to remove orphaned preview", zap.String("key", key), zap.Error(err))
		return
	}
	monitoring.PreviewUploads.WithLabelValues("discarded").Inc()
}

// isJSONObject reports whether raw is a single well-formed JSON object.
func isJSONObject(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '{' && json.Valid(trimmed)
}

// DecodePreview accepts raw base64 or a data URL and requires PNG content.
func DecodePreview(encoded string) ([]byte, error) {
	payload := strings.TrimSpace(encoded)
	if strings.HasPrefix(payload, "data:") {
		idx := strings.Index(payload, "base64,")
		if idx < 0 {
			return nil, errors.New("data url is not base64 encoded")
		}
		payload = payload[idx+len("base64,"):]
	}
	payload = strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\n', '\r', '\t':
			return -1
		}
		return r
	}, payload)

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		var rawErr error
		data, rawErr = base64.RawStdEncoding.DecodeString(strings.TrimRight(payload, "="))
		if rawErr != nil {
			return nil, fmt.Errorf("decode base64: %w", err)
		}
	}
	if len(data) == 0 {
		return nil, errors.New("empty preview")
	}
	if _, err := util.ValidateMimeType(data, []string{util.MimePNG}); err != nil {
		return nil, err
	}
	return data, nil
}

// ListAnswers returns answer metadata for a question, oldest first.
func (s *AnswerService) ListAnswers(questionID string) ([]AnswerView, error) {
	answers, err := s.answers.ListByQuestion(questionID)
	if err != nil {
		return nil, fmt.Errorf("list answers: %w", err)
	}
	views := make([]AnswerView, len(answers))
	for i := range answers {
		views[i] = NewAnswerView(&answers[i], false)
	}
	return views, nil
}

func (s *AnswerService) GetAnswer(id string) (*AnswerView, error) {
	answer, err := s.answers.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.NotFound("answer")
		}
		return nil, fmt.Errorf("find answer: %w", err)
	}
	view := NewAnswerView(answer, true)
	return &view, nil
}

// ShuffledAnswerOrder returns the question's answer ids in a fresh random
// order on every call.
func (s *AnswerService) ShuffledAnswerOrder(questionID string) ([]string, error) {
	ids, err := s.answers.ListIDsByQuestion(questionID)
	if err != nil {
		return nil, fmt.Errorf("list answer ids: %w", err)
	}
	if ids == nil {
		ids = []string{}
	}
	rand.Shuffle(len(ids), func(i, j int) { ids[i], ids[j] = ids[j], ids[i] })
	return ids, nil
}

// AnswersByQuestion groups every answer of a session under its question,
// loading all answers with one query.
func (s *AnswerService) AnswersByQuestion(sessionID string, includeBoard bool) ([]QuestionAnswers, error) {
	session, err := s.FindSession(sessionID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, util.NotFound("session")
	}

	questions, err := s.questions.ListBySession(session.ID)
	if err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}
	ids := make([]string, len(questions))
	for i := range questions {
		ids[i] = questions[i].ID
	}

	answers, err := s.answers.ListByQuestionIDs(ids, includeBoard)
	if err != nil {
		return nil, fmt.Errorf("list answers: %w", err)
	}
	grouped := make(map[string][]AnswerView, len(questions))
	for i := range answers {
		a := &answers[i]
		grouped[a.QuestionID] = append(grouped[a.QuestionID], NewAnswerView(a, includeBoard))
	}

	out := make([]QuestionAnswers, len(questions))
	for i := range questions {
		group := grouped[questions[i].ID]
		if group == nil {
			group = []AnswerView{}
		}
		out[i] = QuestionAnswers{
			QuestionView: NewQuestionView(&questions[i]),
			Answers:      group,
		}
	}
	return out, nil
}
