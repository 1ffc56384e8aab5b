package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/clearboard/clearboard-backend/internal/db"
	"github.com/clearboard/clearboard-backend/internal/handlers"
	"github.com/clearboard/clearboard-backend/internal/logger"
	"github.com/clearboard/clearboard-backend/internal/middleware"
	"github.com/clearboard/clearboard-backend/internal/observability"
	"github.com/clearboard/clearboard-backend/internal/repos"
	"github.com/clearboard/clearboard-backend/internal/server"
	"github.com/clearboard/clearboard-backend/internal/services"
	"github.com/clearboard/clearboard-backend/internal/utils"
)

func main() {
	// Logger
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// Env
	log.Info("Loading environment variables from main...")
	jwtSecretKey := utils.GetEnv("JWT_SECRET_KEY", "defaultsecret", log)
	accessTokenTTL := utils.GetEnvAsInt("ACCESS_TOKEN_TTL", 3600, log)
	refreshTokenTTL := utils.GetEnvAsInt("REFRESH_TOKEN_TTL", 604800, log)
	port := utils.GetEnv("PORT", "8080", log)
	engineCfg := services.EngineConfigFromEnv(log)

	// Tracing
	shutdownOTel := observability.InitOTel(context.Background(), log, observability.OtelConfig{
		ServiceName: "clearboard",
		Environment: utils.GetEnv("APP_ENV", "development", log),
		Version:     utils.GetEnv("APP_VERSION", "dev", log),
	})
	if shutdownOTel != nil {
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := shutdownOTel(ctx); err != nil {
				log.Warn("OTel shutdown failed", "error", err)
			}
		}()
	}

	// Postgres
	postgresService, err := db.NewPostgresService(log)
	if err != nil {
		log.Fatal("Postgres init failed", "error", err)
	}
	if err = postgresService.AutoMigrateAll(); err != nil {
		log.Fatal("Postgres auto migration failed", "error", err)
	}
	thePG := postgresService.DB()

	// Repos
	log.Info("Setting up Repos from main...")
	userRepo := repos.NewUserRepo(thePG, log)
	userTokenRepo := repos.NewUserTokenRepo(thePG, log)
	teacherRepo := repos.NewTeacherRepo(thePG, log)
	selectionRepo := repos.NewFrameworkSelectionRepo(thePG, log)
	assessmentRepo := repos.NewAssessmentRepo(thePG, log)
	observationRepo := repos.NewObservationRepo(thePG, log)
	trendPointRepo := repos.NewTrendPointRepo(thePG, log)
	suggestionRepo := repos.NewSuggestionRepo(thePG, log)
	correctionRepo := repos.NewCorrectionRepo(thePG, log)
	scheduleRepo := repos.NewScheduleRepo(thePG, log)
	reflectionRepo := repos.NewReflectionRepo(thePG, log)

	// Services
	log.Info("Setting up Services from main...")
	cacheService, err := services.NewCacheService(log)
	if err != nil {
		log.Fatal("Cache init failed", "error", err)
	}
	authService := services.NewAuthService(
		thePG, log, userRepo, userTokenRepo,
		jwtSecretKey,
		time.Duration(accessTokenTTL)*time.Second,
		time.Duration(refreshTokenTTL)*time.Second,
	)
	teacherService := services.NewTeacherService(thePG, log, teacherRepo, reflectionRepo, cacheService)
	frameworkService := services.NewFrameworkService(thePG, log, selectionRepo, cacheService)
	assessmentService := services.NewAssessmentService(thePG, log, engineCfg, teacherRepo, assessmentRepo, observationRepo, cacheService)
	performanceService := services.NewPerformanceService(thePG, log, engineCfg, teacherRepo, assessmentRepo, trendPointRepo, scheduleRepo, selectionRepo, cacheService)
	advisoryService := services.NewAdvisoryService(thePG, log, engineCfg, teacherRepo, trendPointRepo, suggestionRepo, correctionRepo)
	feedbackService := services.NewFeedbackService(thePG, log, teacherRepo, correctionRepo)
	scheduleService := services.NewScheduleService(thePG, log, teacherRepo, scheduleRepo)

	// Handlers
	log.Info("Setting up Handlers from main...")
	authHandler := handlers.NewAuthHandler(authService)
	teacherHandler := handlers.NewTeacherHandler(teacherService)
	frameworkHandler := handlers.NewFrameworkHandler(frameworkService)
	assessmentHandler := handlers.NewAssessmentHandler(assessmentService)
	performanceHandler := handlers.NewPerformanceHandler(performanceService)
	suggestionHandler := handlers.NewSuggestionHandler(advisoryService)
	correctionHandler := handlers.NewCorrectionHandler(feedbackService)
	scheduleHandler := handlers.NewScheduleHandler(scheduleService)

	// Middleware
	authMiddleware := middleware.NewAuthMiddleware(log, authService)

	// Router
	var origins []string
	if raw := utils.GetEnv("CORS_ALLOWED_ORIGINS", "", log); raw != "" {
		for _, o := range strings.Split(raw, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
	}
	router := server.NewRouter(server.RouterConfig{
		ServiceName:        "clearboard",
		AllowedOrigins:     origins,
		AuthMiddleware:     authMiddleware,
		AuthHandler:        authHandler,
		TeacherHandler:     teacherHandler,
		FrameworkHandler:   frameworkHandler,
		AssessmentHandler:  assessmentHandler,
		PerformanceHandler: performanceHandler,
		SuggestionHandler:  suggestionHandler,
		CorrectionHandler:  correctionHandler,
		ScheduleHandler:    scheduleHandler,
	})

	log.Info("Starting server...", "port", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatal("Server exited", "error", err)
	}
}
