package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ielts_edu_backend/internal/config"
	"ielts_edu_backend/internal/controller"
	"ielts_edu_backend/internal/repository"
	"ielts_edu_backend/internal/service"
	"ielts_edu_backend/pkg/database"
	"ielts_edu_backend/pkg/logger"
	"ielts_edu_backend/pkg/monitoring"
	"ielts_edu_backend/pkg/security"
	"ielts_edu_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config          *config.Config
	Router          *gin.Engine
	DB              *gorm.DB
	Redis           *redis.Client
	configCallbacks []func(*config.Config)
}

type repositories struct {
	user    *repository.UserRepository
	group   *repository.GroupRepository
	exam    *repository.ExamRepository
	attempt *repository.AttemptRepository
	review  *repository.ReviewRepository
}

type services struct {
	auth      *service.AuthService
	storage   *service.StorageService
	user      *service.UserService
	group     *service.GroupService
	exam      *service.ExamService
	attempt   *service.AttemptService
	review    *service.ReviewService
	dashboard *service.DashboardService
}

type controllers struct {
	auth      *controller.AuthController
	user      *controller.UserController
	group     *controller.GroupController
	exam      *controller.ExamController
	attempt   *controller.AttemptController
	review    *controller.ReviewController
	dashboard *controller.DashboardController
	health    *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

// ApplyConfig swaps in a reloaded configuration. Services hold a pointer to
// the same Config value, so copying in place propagates the new settings.
func (a *App) ApplyConfig(updated *config.Config) {
	updated.ForceMigrate = a.Config.ForceMigrate
	updated.MigrateOnly = a.Config.MigrateOnly
	*a.Config = *updated

	for _, callback := range a.configCallbacks {
		callback(a.Config)
	}
	logger.Log.Info("Configuration reloaded")
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:    repository.NewUserRepository(db),
		group:   repository.NewGroupRepository(db),
		exam:    repository.NewExamRepository(db),
		attempt: repository.NewAttemptRepository(db),
		review:  repository.NewReviewRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, rdb *redis.Client) *services {
	s := &services{}

	s.storage = service.NewStorageService(cfg)
	s.auth = service.NewAuthService(repos.user, cfg)
	s.user = service.NewUserService(repos.user)
	s.group = service.NewGroupService(repos.group, repos.user)
	s.exam = service.NewExamService(repos.exam, s.storage)
	s.attempt = service.NewAttemptService(repos.attempt, repos.exam, repos.group, s.storage)
	s.review = service.NewReviewService(repos.review, repos.attempt)
	s.dashboard = service.NewDashboardService(repos.attempt, rdb)

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB) *controllers {
	return &controllers{
		auth:      controller.NewAuthController(s.auth),
		user:      controller.NewUserController(s.user),
		group:     controller.NewGroupController(s.group),
		exam:      controller.NewExamController(s.exam, s.group),
		attempt:   controller.NewAttemptController(s.attempt, s.review, s.dashboard),
		review:    controller.NewReviewController(s.review, s.attempt, s.dashboard),
		dashboard: controller.NewDashboardController(s.dashboard),
		health:    controller.NewHealthController(db),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 1000
	}
	window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
	if window <= 0 {
		window = time.Minute
	}
	router.Use(security.RateLimiter(maxRequests, window))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)

	logger.Log.Info("Logger initialized successfully")

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Warn("Redis unavailable, dashboard caching disabled", zap.Error(err))
		rdb = nil
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db)
	services := app.initServices(repos, cfg, rdb)
	controllers := app.initControllers(services, db)

	monitoring.Init()

	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("ielts-platform", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers, repos, cfg)

	if cfg.Storage.Type == "local" {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
