package app

import (
	"answer_board_backend/docs"
	"answer_board_backend/internal/config"
	"answer_board_backend/internal/util"
	"answer_board_backend/pkg/monitoring"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	api := router.Group("/api")
	{
		api.GET("/health", c.health.HealthCheck)
		if cfg.Server.Mode != gin.ReleaseMode {
			api.GET("/routes", c.health.ListRoutes(router))
		}

		registerTeacherRoutes(api, c)
		registerSessionRoutes(api, c)
		registerQuestionRoutes(api, c)
		registerAnswerRoutes(api, c)
	}

	router.HandleMethodNotAllowed = true
	router.NoMethod(func(ctx *gin.Context) {
		util.Error(ctx, http.StatusMethodNotAllowed, util.KindValidation, "method not allowed")
	})
	router.NoRoute(func(ctx *gin.Context) {
		util.NotFoundResponse(ctx, "route not found")
	})
}

func registerTeacherRoutes(api *gin.RouterGroup, c *controllers) {
	teachers := api.Group("/teachers")
	{
		teachers.POST("", c.teacher.CreateTeacher)
		teachers.GET("/by_email", c.teacher.GetTeacherByEmail)
		teachers.GET("/:id", c.teacher.GetTeacher)
		teachers.GET("/:id/sessions", c.teacher.ListSessions)
	}
}

func registerSessionRoutes(api *gin.RouterGroup, c *controllers) {
	sessions := api.Group("/sessions")
	{
		sessions.POST("", c.session.CreateSession)
		sessions.GET("/resolve/:code", c.session.ResolveSession)
		sessions.GET("/:id", c.session.GetSession)
		sessions.PUT("/:id/name", c.session.RenameSession)
		sessions.PUT("/:id/text", c.session.RenameSession)
		sessions.POST("/:id/current_question", c.session.SetCurrentQuestion)
		sessions.GET("/:id/current_question", c.session.GetCurrentQuestion)
		sessions.GET("/:id/questions", c.session.ListQuestions)
		sessions.GET("/:id/answers_by_question", c.session.AnswersByQuestion)
	}
}

func registerQuestionRoutes(api *gin.RouterGroup, c *controllers) {
	questions := api.Group("/questions")
	{
		questions.POST("", c.question.CreateQuestion)
		questions.GET("/:id", c.question.GetQuestion)
		questions.PUT("/:id/text", c.question.UpdateQuestionText)
		questions.GET("/:id/answers", c.question.ListAnswers)
		questions.GET("/:id/answers/shuffled", c.question.ShuffledAnswers)
	}
}

func registerAnswerRoutes(api *gin.RouterGroup, c *controllers) {
	answers := api.Group("/answers")
	{
		answers.POST("", c.answer.SubmitAnswer)
		answers.GET("/:id", c.answer.GetAnswer)
	}
}
