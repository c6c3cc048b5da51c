package app

import (
	"answer_board_backend/internal/config"
	"answer_board_backend/internal/controller"
	"answer_board_backend/internal/middleware"
	"answer_board_backend/internal/repository"
	"answer_board_backend/internal/service"
	"answer_board_backend/internal/util"
	"answer_board_backend/pkg/database"
	"answer_board_backend/pkg/logger"
	"answer_board_backend/pkg/monitoring"
	"answer_board_backend/pkg/security"
	"answer_board_backend/pkg/tracing"
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config  *config.Config
	Router  *gin.Engine
	DB      *gorm.DB
	Storage *service.StorageService

	tracerProvider *sdktrace.TracerProvider
}

type repositories struct {
	teacher  *repository.TeacherRepository
	session  *repository.SessionRepository
	question *repository.QuestionRepository
	answer   *repository.AnswerRepository
}

type services struct {
	storage  *service.StorageService
	teacher  *service.TeacherService
	session  *service.SessionService
	question *service.QuestionService
	answer   *service.AnswerService
}

type controllers struct {
	teacher  *controller.TeacherController
	session  *controller.SessionController
	question *controller.QuestionController
	answer   *controller.AnswerController
	health   *controller.HealthController
}

func initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		teacher:  repository.NewTeacherRepository(db),
		session:  repository.NewSessionRepository(db),
		question: repository.NewQuestionRepository(db),
		answer:   repository.NewAnswerRepository(db),
	}
}

func initServices(repos *repositories, db *gorm.DB, storage *service.StorageService) *services {
	return &services{
		storage:  storage,
		teacher:  service.NewTeacherService(repos.teacher),
		session:  service.NewSessionService(db, repos.session, repos.question),
		question: service.NewQuestionService(repos.session, repos.question),
		answer:   service.NewAnswerService(repos.session, repos.question, repos.answer, storage),
	}
}

func initControllers(s *services, db *gorm.DB) *controllers {
	return &controllers{
		teacher:  controller.NewTeacherController(s.teacher, s.session),
		session:  controller.NewSessionController(s.session, s.question, s.answer),
		question: controller.NewQuestionController(s.question, s.answer),
		answer:   controller.NewAnswerController(s.answer),
		health:   controller.NewHealthController(db),
	}
}

func setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestLogger())
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())
	router.Use(security.RateLimiter(cfg.RateLimit.MaxRequests, time.Duration(cfg.RateLimit.WindowMinutes)*time.Minute))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

// NewRouter builds the HTTP surface around an already opened datastore and
// storage backend.
func NewRouter(cfg *config.Config, db *gorm.DB, storage *service.StorageService) *gin.Engine {
	if cfg.Server.Mode == gin.ReleaseMode || cfg.Server.Mode == gin.TestMode {
		gin.SetMode(cfg.Server.Mode)
	}

	monitoring.Init()

	repos := initRepositories(db)
	svcs := initServices(repos, db, storage)
	ctrls := initControllers(svcs, db)

	router := gin.New()
	setupMiddlewares(router, cfg)
	registerRoutes(router, ctrls, cfg)

	return router
}

// NewApp opens every backend named in cfg. Startup failures are fatal.
func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)
	logger.Log.Info("Logger initialized successfully")

	migrate := cfg.Server.Mode != gin.ReleaseMode || cfg.ForceMigrate
	db, err := database.InitDB(&cfg.Database, cfg.Server.Mode, migrate)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}

	app := &App{Config: cfg, DB: db}
	if cfg.MigrateOnly {
		return app
	}

	app.Storage = service.NewStorageService(cfg)
	logger.Log.Info("Preview storage ready", zap.String("type", cfg.Storage.Type), zap.String("bucket", cfg.Storage.Bucket))

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer(tracing.ServiceName, cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
		app.tracerProvider = tp
	}

	app.Router = NewRouter(cfg, db, app.Storage)

	if cfg.Storage.Type == util.StorageLocal {
		app.Router.Static("/uploads", cfg.Storage.LocalPath)
	}

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:              ":" + a.Config.Server.Port,
		Handler:           a.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Log.Info("Server running", zap.String("port", a.Config.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Fatal("listen", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", zap.Error(err))
	}

	if a.tracerProvider != nil {
		if err := a.tracerProvider.Shutdown(ctx); err != nil {
			logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
		}
	}

	if sqlDB, err := a.DB.DB(); err == nil {
		_ = sqlDB.Close()
	}

	logger.Log.Info("Server exiting")
}
