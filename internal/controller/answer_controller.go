package controller

import (
	"answer_board_backend/internal/service"
	"answer_board_backend/internal/util"
	"encoding/json"

	"github.com/gin-gonic/gin"
)

type AnswerController struct {
	answers *service.AnswerService
}

func NewAnswerController(answers *service.AnswerService) *AnswerController {
	return &AnswerController{answers: answers}
}

type SubmitAnswerRequest struct {
	SessionID        string          `json:"session_id" binding:"required"`
	BoardJSON        json.RawMessage `json:"board_json" binding:"required" swaggertype:"object"`
	QuestionID       string          `json:"question_id"`
	PreviewPNGBase64 string          `json:"preview_png_base64"`
	StudentID        *string         `json:"student_id"`
}

// SubmitAnswer godoc
// @Summary Submit a student's board
// @Description preview_url is null when no preview was sent or it could not be stored.
// @Tags answers
// @Accept json
// @Produce json
// @Param body body SubmitAnswerRequest true "answer"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} util.ErrorResponse
// @Router /answers [post]
func (c *AnswerController) SubmitAnswer(ctx *gin.Context) {
	var req SubmitAnswerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.answers.SubmitAnswer(ctx.Request.Context(), service.SubmitAnswerInput{
		SessionID:        req.SessionID,
		QuestionID:       req.QuestionID,
		BoardJSON:        req.BoardJSON,
		PreviewPNGBase64: req.PreviewPNGBase64,
		StudentID:        req.StudentID,
	})
	if err != nil {
		util.RespondError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{
		"answer_id":   result.AnswerID,
		"question_id": result.QuestionID,
		"preview_url": result.PreviewURL,
	})
}

// GetAnswer godoc
// @Summary Get one answer including its board document
// @Tags answers
// @Produce json
// @Param id path string true "answer id"
// @Success 200 {object} service.AnswerView
// @Failure 404 {object} util.ErrorResponse
// @Router /answers/{id} [get]
func (c *AnswerController) GetAnswer(ctx *gin.Context) {
	answer, err := c.answers.GetAnswer(ctx.Param("id"))
	if err != nil {
		util.RespondError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{
		"answer_id":   answer.AnswerID,
		"question_id": answer.QuestionID,
		"session_id":  answer.SessionID,
		"student_id":  answer.StudentID,
		"preview_url": answer.PreviewURL,
		"created_at":  answer.CreatedAt,
		"board_json":  answer.BoardJSON,
	})
}
