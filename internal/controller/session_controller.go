package controller

import (
	"answer_board_backend/internal/model"
	"answer_board_backend/internal/service"
	"answer_board_backend/internal/util"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

type SessionController struct {
	sessions  *service.SessionService
	questions *service.QuestionService
	answers   *service.AnswerService
}

func NewSessionController(sessions *service.SessionService, questions *service.QuestionService, answers *service.AnswerService) *SessionController {
	return &SessionController{sessions: sessions, questions: questions, answers: answers}
}

type CreateSessionRequest struct {
	TeacherID    string          `json:"teacher_id" binding:"required"`
	SessionName  string          `json:"session_name"`
	QuestionText json.RawMessage `json:"question_text" swaggertype:"string"`
	QuestionBody json.RawMessage `json:"question_body" swaggertype:"object"`
}

// initialQuestion returns nil when the request carries no usable question.
func (r CreateSessionRequest) initialQuestion() (*model.QuestionContent, error) {
	content, err := model.ParseQuestionContent(r.QuestionText, r.QuestionBody)
	if errors.Is(err, model.ErrQuestionContentMissing) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(content.Text()) == "" {
		return nil, nil
	}
	return &content, nil
}

// CreateSession godoc
// @Summary Create a session, optionally with its first question
// @Tags sessions
// @Accept json
// @Produce json
// @Param body body CreateSessionRequest true "session"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} util.ErrorResponse
// @Router /sessions [post]
func (c *SessionController) CreateSession(ctx *gin.Context) {
	var req CreateSessionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	initial, err := req.initialQuestion()
	if err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	session, err := c.sessions.CreateSession(service.CreateSessionInput{
		TeacherID:       req.TeacherID,
		SessionName:     req.SessionName,
		InitialQuestion: initial,
	})
	if err != nil {
		util.RespondError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{
		"session_id":          session.ID,
		"session_code":        session.SessionCode,
		"current_question_id": session.CurrentQuestionID,
	})
}

// GetSession godoc
// @Summary Get a session
// @Tags sessions
// @Produce json
// @Param id path string true "session id"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} util.ErrorResponse
// @Router /sessions/{id} [get]
func (c *SessionController) GetSession(ctx *gin.Context) {
	session, err := c.sessions.GetSession(ctx.Param("id"))
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"session": session})
}

// ResolveSession godoc
// @Summary Resolve a join code (or session id) to a session
// @Tags sessions
// @Produce json
// @Param code path string true "join code or session id"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} util.ErrorResponse
// @Router /sessions/resolve/{code} [get]
func (c *SessionController) ResolveSession(ctx *gin.Context) {
	session, err := c.sessions.ResolveSession(ctx.Param("code"))
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"session": session})
}

type RenameSessionRequest struct {
	SessionName string `json:"session_name"`
	// Name is accepted for older clients.
	Name string `json:"name"`
}

// RenameSession godoc
// @Summary Rename a session
// @Tags sessions
// @Accept json
// @Produce json
// @Param id path string true "session id"
// @Param body body RenameSessionRequest true "new name"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} util.ErrorResponse
// @Router /sessions/{id}/name [put]
func (c *SessionController) RenameSession(ctx *gin.Context) {
	var req RenameSessionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	name := req.SessionName
	if strings.TrimSpace(name) == "" {
		name = req.Name
	}
	name = strings.TrimSpace(name)

	id := ctx.Param("id")
	if err := c.sessions.RenameSession(id, name); err != nil {
		util.RespondError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{
		"session_id":   id,
		"session_name": name,
		"name":         name,
	})
}

type SetCurrentQuestionRequest struct {
	QuestionID string `json:"question_id" binding:"required"`
}

// SetCurrentQuestion godoc
// @Summary Point the session at one of its questions
// @Tags sessions
// @Accept json
// @Produce json
// @Param id path string true "session id"
// @Param body body SetCurrentQuestionRequest true "question"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} util.ErrorResponse
// @Router /sessions/{id}/current_question [post]
func (c *SessionController) SetCurrentQuestion(ctx *gin.Context) {
	var req SetCurrentQuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.sessions.SetCurrentQuestion(ctx.Param("id"), req.QuestionID); err != nil {
		util.RespondError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{
		"session_id":          ctx.Param("id"),
		"current_question_id": req.QuestionID,
	})
}

// GetCurrentQuestion godoc
// @Summary Get the session's current question (null when none)
// @Tags sessions
// @Produce json
// @Param id path string true "session id"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} util.ErrorResponse
// @Router /sessions/{id}/current_question [get]
func (c *SessionController) GetCurrentQuestion(ctx *gin.Context) {
	question, err := c.sessions.GetCurrentQuestion(ctx.Param("id"))
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"question": question})
}

// ListQuestions godoc
// @Summary List a session's questions in creation order
// @Tags sessions
// @Produce json
// @Param id path string true "session id"
// @Success 200 {array} service.QuestionView
// @Router /sessions/{id}/questions [get]
func (c *SessionController) ListQuestions(ctx *gin.Context) {
	questions, err := c.questions.ListQuestions(ctx.Param("id"))
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, questions)
}

// AnswersByQuestion godoc
// @Summary All answers of a session grouped by question
// @Tags sessions
// @Produce json
// @Param id path string true "session id"
// @Param include_json query bool false "include each answer's board document" default(false)
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} util.ErrorResponse
// @Router /sessions/{id}/answers_by_question [get]
func (c *SessionController) AnswersByQuestion(ctx *gin.Context) {
	includeBoard := util.ParseBoolFlag(ctx.Query("include_json"), false)

	groups, err := c.answers.AnswersByQuestion(ctx.Param("id"), includeBoard)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{
		"session_id": ctx.Param("id"),
		"questions":  groups,
	})
}
