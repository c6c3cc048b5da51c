package util

import (
	"answer_board_backend/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	OK    bool      `json:"ok"`
	Kind  ErrorKind `json:"kind"`
	Error string    `json:"error"`
}

// Success answers 200 with fields plus ok:true.
func Success(c *gin.Context, fields gin.H) {
	body := gin.H{"ok": true}
	for k, v := range fields {
		body[k] = v
	}
	c.JSON(http.StatusOK, body)
}

func Error(c *gin.Context, code int, kind ErrorKind, message string) {
	c.JSON(code, ErrorResponse{
		OK:    false,
		Kind:  kind,
		Error: message,
	})
}

func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, KindValidation, message)
}

func NotFoundResponse(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, KindNotFound, message)
}

func InternalServerError(c *gin.Context, message string) {
	Error(c, http.StatusInternalServerError, KindUpstream, message)
}

// RespondError maps err onto the error taxonomy and writes the body.
func RespondError(c *gin.Context, err error) {
	apiErr := AsAPIError(err)
	if apiErr.Kind == KindUpstream {
		LogInternalError(c, err)
		InternalServerError(c, UpstreamMessage(apiErr.Err))
		return
	}
	Error(c, apiErr.Status, apiErr.Kind, apiErr.Error())
}

func LogInternalError(c *gin.Context, err error) {
	logger.Log.Error("Internal server error",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Error(err),
	)
}
