package controller

import (
	"answer_board_backend/internal/service"
	"answer_board_backend/internal/util"
	"errors"
	"io"

	"github.com/gin-gonic/gin"
)

type TeacherController struct {
	teachers *service.TeacherService
	sessions *service.SessionService
}

func NewTeacherController(teachers *service.TeacherService, sessions *service.SessionService) *TeacherController {
	return &TeacherController{teachers: teachers, sessions: sessions}
}

type CreateTeacherRequest struct {
	DisplayName *string `json:"display_name"`
	Email       *string `json:"email"`
}

// CreateTeacher godoc
// @Summary Register a teacher
// @Tags teachers
// @Accept json
// @Produce json
// @Param body body CreateTeacherRequest false "profile"
// @Success 200 {object} map[string]interface{}
// @Router /teachers [post]
func (c *TeacherController) CreateTeacher(ctx *gin.Context) {
	// both fields are optional, so an empty body is fine
	var req CreateTeacherRequest
	if err := ctx.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		util.BadRequest(ctx, err.Error())
		return
	}

	teacher, err := c.teachers.CreateTeacher(req.DisplayName, req.Email)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"teacher_id": teacher.ID})
}

// GetTeacherByEmail godoc
// @Summary Find a teacher by exact email
// @Tags teachers
// @Produce json
// @Param email query string true "email"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} util.ErrorResponse
// @Router /teachers/by_email [get]
func (c *TeacherController) GetTeacherByEmail(ctx *gin.Context) {
	teacher, err := c.teachers.FindByEmail(ctx.Query("email"))
	if err != nil {
		util.RespondError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{
		"teacher_id": teacher.ID,
		"teacher":    teacher,
	})
}

// GetTeacher godoc
// @Summary Get a teacher
// @Tags teachers
// @Produce json
// @Param id path string true "teacher id"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} util.ErrorResponse
// @Router /teachers/{id} [get]
func (c *TeacherController) GetTeacher(ctx *gin.Context) {
	teacher, err := c.teachers.GetTeacher(ctx.Param("id"))
	if err != nil {
		util.RespondError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"teacher": teacher})
}

// ListSessions godoc
// @Summary List a teacher's sessions, newest first
// @Tags teachers
// @Produce json
// @Param id path string true "teacher id"
// @Param limit query int false "page size" default(20)
// @Param offset query int false "rows to skip" default(0)
// @Success 200 {object} map[string]interface{}
// @Router /teachers/{id}/sessions [get]
func (c *TeacherController) ListSessions(ctx *gin.Context) {
	limit, offset := util.ParseLimitOffset(ctx.Query("limit"), ctx.Query("offset"))

	sessions, err := c.sessions.ListSessionsForTeacher(ctx.Param("id"), limit, offset)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{
		"sessions": sessions,
		"limit":    limit,
		"offset":   offset,
	})
}
