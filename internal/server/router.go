package server

import (
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/clearboard/clearboard-backend/internal/handlers"
	"github.com/clearboard/clearboard-backend/internal/middleware"
)

type RouterConfig struct {
	ServiceName        string
	AllowedOrigins     []string
	AuthMiddleware     *middleware.AuthMiddleware
	AuthHandler        *handlers.AuthHandler
	TeacherHandler     *handlers.TeacherHandler
	FrameworkHandler   *handlers.FrameworkHandler
	AssessmentHandler  *handlers.AssessmentHandler
	PerformanceHandler *handlers.PerformanceHandler
	SuggestionHandler  *handlers.SuggestionHandler
	CorrectionHandler  *handlers.CorrectionHandler
	ScheduleHandler    *handlers.ScheduleHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.Default()

	serviceName := strings.TrimSpace(cfg.ServiceName)
	if serviceName == "" {
		serviceName = "clearboard"
	}
	router.Use(otelgin.Middleware(serviceName))

	origins := cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"http://localhost:3000", "http://localhost:5173"}
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
	}))

	// Public
	router.GET("/healthcheck", handlers.HealthCheck)
	api := router.Group("/api")
	api.POST("/register", cfg.AuthHandler.Register)
	api.POST("/login", cfg.AuthHandler.Login)
	api.POST("/refresh", cfg.AuthHandler.Refresh)

	// Protected
	protected := api.Group("/")
	protected.Use(cfg.AuthMiddleware.RequireAuth())

	// Auth
	protected.POST("/logout", cfg.AuthHandler.Logout)
	protected.GET("/me", cfg.AuthHandler.Me)

	// Frameworks
	protected.GET("/frameworks", cfg.FrameworkHandler.List)
	protected.GET("/framework-selection", cfg.FrameworkHandler.GetSelection)
	protected.PUT("/framework-selection", cfg.FrameworkHandler.SaveSelection)

	// Teachers
	protected.POST("/teachers", cfg.TeacherHandler.Create)
	protected.GET("/teachers", cfg.TeacherHandler.List)
	protected.GET("/teachers/:id", cfg.TeacherHandler.Get)
	protected.PUT("/teachers/:id", cfg.TeacherHandler.Update)
	protected.DELETE("/teachers/:id", cfg.TeacherHandler.Delete)
	protected.GET("/teachers/:id/reflection", cfg.TeacherHandler.GetReflection)
	protected.PUT("/teachers/:id/reflection", cfg.TeacherHandler.SaveReflection)

	// Assessments and observations
	protected.POST("/assessments", cfg.AssessmentHandler.Create)
	protected.GET("/assessments/:id", cfg.AssessmentHandler.Get)
	protected.GET("/teachers/:id/assessments", cfg.AssessmentHandler.ListByTeacher)
	protected.GET("/teachers/:id/summary-insights", cfg.AssessmentHandler.SummaryInsights)
	protected.POST("/observations", cfg.AssessmentHandler.CreateObservation)
	protected.GET("/teachers/:id/observations", cfg.AssessmentHandler.ListObservations)
	protected.PUT("/observations/:id", cfg.AssessmentHandler.UpdateObservation)

	// Performance
	protected.GET("/roster", cfg.PerformanceHandler.Roster)
	protected.GET("/teachers/:id/dashboard", cfg.PerformanceHandler.Dashboard)
	protected.GET("/teachers/:id/trends", cfg.PerformanceHandler.Trends)
	protected.POST("/teachers/:id/trends/recompute", cfg.PerformanceHandler.RecomputeTrends)
	protected.GET("/teachers/:id/peer-recommendations", cfg.PerformanceHandler.PeerRecommendations)

	// Suggestions
	protected.POST("/teachers/:id/suggestions/generate", cfg.SuggestionHandler.Generate)
	protected.GET("/teachers/:id/suggestions", cfg.SuggestionHandler.ListByTeacher)
	protected.PUT("/suggestions/:id/status", cfg.SuggestionHandler.UpdateStatus)

	// Score corrections and learning summaries
	protected.POST("/corrections", cfg.CorrectionHandler.Submit)
	protected.GET("/teachers/:id/corrections", cfg.CorrectionHandler.ListByTeacher)
	protected.GET("/learning/summary", cfg.CorrectionHandler.LearningSummary)
	protected.GET("/learning/elements/:elementId", cfg.CorrectionHandler.ElementSummary)

	// Schedules
	protected.POST("/schedules", cfg.ScheduleHandler.Create)
	protected.GET("/schedules", cfg.ScheduleHandler.List)
	protected.PUT("/schedules/:id/status", cfg.ScheduleHandler.UpdateStatus)

	return router
}
