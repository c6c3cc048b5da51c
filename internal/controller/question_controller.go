package controller

import (
	"answer_board_backend/internal/model"
	"answer_board_backend/internal/service"
	"answer_board_backend/internal/util"
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
)

type QuestionController struct {
	questions *service.QuestionService
	answers   *service.AnswerService
}

func NewQuestionController(questions *service.QuestionService, answers *service.AnswerService) *QuestionController {
	return &QuestionController{questions: questions, answers: answers}
}

// QuestionContentRequest carries either form of question content; a non-null
// question_body wins.
type QuestionContentRequest struct {
	QuestionText json.RawMessage `json:"question_text" swaggertype:"string"`
	QuestionBody json.RawMessage `json:"question_body" swaggertype:"object"`
}

func (r QuestionContentRequest) content() (model.QuestionContent, error) {
	return model.ParseQuestionContent(r.QuestionText, r.QuestionBody)
}

type CreateQuestionRequest struct {
	SessionID string `json:"session_id" binding:"required"`
	QuestionContentRequest
}

// CreateQuestion godoc
// @Summary Add a question to a session
// @Tags questions
// @Accept json
// @Produce json
// @Param body body CreateQuestionRequest true "question"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} util.ErrorResponse
// @Router /questions [post]
func (c *QuestionController) CreateQuestion(ctx *gin.Context) {
	var req CreateQuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	content, err := req.content()
	if err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	question, err := c.questions.CreateQuestion(req.SessionID, content)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{
		"question_id":   question.QuestionID,
		"question_text": question.QuestionText,
	})
}

// GetQuestion godoc
// @Summary Get a question
// @Tags questions
// @Produce json
// @Param id path string true "question id"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} util.ErrorResponse
// @Router /questions/{id} [get]
func (c *QuestionController) GetQuestion(ctx *gin.Context) {
	question, err := c.questions.GetQuestion(ctx.Param("id"))
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"question": question})
}

// UpdateQuestionText godoc
// @Summary Replace a question's content
// @Tags questions
// @Accept json
// @Produce json
// @Param id path string true "question id"
// @Param body body QuestionContentRequest true "content"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} util.ErrorResponse
// @Router /questions/{id}/text [put]
func (c *QuestionController) UpdateQuestionText(ctx *gin.Context) {
	var req QuestionContentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	content, err := req.content()
	if err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	question, err := c.questions.UpdateQuestionContent(ctx.Param("id"), content)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{
		"question_id":   question.QuestionID,
		"question_text": question.QuestionText,
		"question_body": question.QuestionBody,
	})
}

// ListAnswers godoc
// @Summary List answer metadata for a question, oldest first
// @Tags questions
// @Produce json
// @Param id path string true "question id"
// @Success 200 {array} service.AnswerView
// @Router /questions/{id}/answers [get]
func (c *QuestionController) ListAnswers(ctx *gin.Context) {
	answers, err := c.answers.ListAnswers(ctx.Param("id"))
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, answers)
}

// ShuffledAnswers godoc
// @Summary Answer ids of a question in a fresh random order
// @Tags questions
// @Produce json
// @Param id path string true "question id"
// @Success 200 {object} map[string]interface{}
// @Router /questions/{id}/answers/shuffled [get]
func (c *QuestionController) ShuffledAnswers(ctx *gin.Context) {
	order, err := c.answers.ShuffledAnswerOrder(ctx.Param("id"))
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{
		"question_id": ctx.Param("id"),
		"order":       order,
	})
}
