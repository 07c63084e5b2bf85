package app

import (
	"context"
	"fmt"
	"time"

	"scholar_backend/internal/config"
	"scholar_backend/internal/database"
	"scholar_backend/internal/email"
	"scholar_backend/internal/handlers"
	"scholar_backend/internal/logger"
	"scholar_backend/internal/middleware"
	"scholar_backend/internal/repositories"
	"scholar_backend/internal/routes"
	"scholar_backend/internal/services"
	"scholar_backend/internal/validator"
	"scholar_backend/internal/workers"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig

	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	logger.Info("Connecting to database...")
	gormDB, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
	if err != nil {
		logger.Fatal("Failed to connect to GORM", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	// Migration failure is logged but does not stop the server: the
	// existing schema keeps serving while the problem is investigated.
	if err := database.Migrate(gormDB); err != nil {
		logger.Error("Database migration failed", "error", err)
	} else {
		logger.Info("Database migration complete")
	}

	ginRouter := SetupRouter(cfg, gormDB)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	startReminderWorker(ctx, cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info(fmt.Sprintf("Server starting on %s", address))
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// SetupRouter builds the fully wired engine. Tests call it directly
// with their own *gorm.DB.
func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	serviceContainer := initializeServices()
	appHandlers := initializeHandlers(serviceContainer)

	ginRouter := initializeGinRouter(gormDB)
	routes.RegisterRoutes(ginRouter, appHandlers, cfg)

	return ginRouter
}

func initializeServices() *services.ServiceContainer {
	userRepo := repositories.NewUserRepository()
	projectRepo := repositories.NewProjectRepository()
	ideaRepo := repositories.NewIdeaRepository()
	noteRepo := repositories.NewNoteRepository()
	futureWorkRepo := repositories.NewFutureWorkRepository()
	deadlineRepo := repositories.NewDeadlineRepository()
	meetingRepo := repositories.NewMeetingRepository()
	careerRepo := repositories.NewCareerRepository()
	calendarRepo := repositories.NewCalendarRepository()
	profileRepo := repositories.NewProfileRepository()

	return &services.ServiceContainer{
		AuthService:     services.NewAuthService(userRepo),
		ProjectService:  services.NewProjectService(projectRepo),
		PlannerService:  services.NewPlannerService(ideaRepo, noteRepo, futureWorkRepo, deadlineRepo, meetingRepo),
		CareerService:   services.NewCareerService(careerRepo),
		CalendarService: services.NewCalendarService(calendarRepo),
		ProfileService:  services.NewProfileService(profileRepo),
	}
}

func initializeHandlers(services *services.ServiceContainer) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	return &handlers.AppHandlers{
		AuthHandler:     handlers.NewAuthHandler(baseHandler, services.AuthService),
		ProjectHandler:  handlers.NewProjectHandler(baseHandler, services.ProjectService),
		PlannerHandler:  handlers.NewPlannerHandler(baseHandler, services.PlannerService),
		CareerHandler:   handlers.NewCareerHandler(baseHandler, services.CareerService),
		CalendarHandler: handlers.NewCalendarHandler(baseHandler, services.CalendarService),
		ProfileHandler:  handlers.NewProfileHandler(baseHandler, services.ProfileService),
		HealthHandler:   handlers.NewHealthHandler(baseHandler),
	}
}

func initializeGinRouter(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.DBMiddleware(db))
	return router
}

func startReminderWorker(ctx context.Context, cfg *config.Config, gormDB *gorm.DB) {
	if !cfg.Reminders.Enabled {
		logger.Info("Reminder worker disabled")
		return
	}

	var provider email.Provider
	if cfg.Email.SMTPHost != "" {
		provider = email.NewSMTPProvider(&email.Config{
			Host:      cfg.Email.SMTPHost,
			Port:      cfg.Email.SMTPPort,
			Username:  cfg.Email.SMTPUsername,
			Password:  cfg.Email.SMTPPassword,
			FromEmail: cfg.Email.FromEmail,
			FromName:  cfg.Email.FromName,
		})
	} else {
		provider = &email.NoopProvider{}
	}

	interval := time.Duration(cfg.Reminders.Interval) * time.Minute
	worker := workers.NewReminderWorker(gormDB, repositories.NewDeadlineRepository(), provider, interval)
	worker.Start(ctx)
	logger.Info("Reminder worker started", "interval", interval.String())
}
