package router

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"stable_backend/internal/config"
	"stable_backend/internal/database"
	"stable_backend/internal/handlers"
	"stable_backend/internal/metrics"
	"stable_backend/internal/middleware"
	"stable_backend/internal/repositories"
	"stable_backend/internal/services"
)

// Setup initializes the routing for the application. gatherer backs /metrics
// and must be the registry m was created with.
func Setup(engine *gin.Engine, db *sqlx.DB, cfg *config.Config, m *metrics.Metrics, gatherer prometheus.Gatherer) error {
	passwordHash := cfg.Auth.SharedPasswordHash
	if passwordHash == "" {
		hash, err := services.HashSharedPassword(cfg.Auth.SharedPassword)
		if err != nil {
			return fmt.Errorf("preparing shared password: %w", err)
		}
		passwordHash = hash
	}

	// Initialize Repositories
	horseRepo := repositories.NewHorseRepository(db)
	recordRepo := repositories.NewHorseRecordRepository(db)
	trainerRepo := repositories.NewTrainerRepository(db)
	lessonRepo := repositories.NewLessonRepository(db)
	fieldRepo := repositories.NewCustomFieldRepository(db)

	// Initialize Services
	formatter := services.NewFormatter(cfg.Display.Locale)
	statsConfig := services.StatsConfig{
		StallCapacity:   cfg.Dashboard.StallCapacity,
		MaxMonthlyHours: cfg.Dashboard.MaxMonthlyHours,
	}

	authService := services.NewAuthService(passwordHash, cfg.Auth.SessionSecret, cfg.Auth.SessionTTL, m)
	horseService := services.NewHorseService(horseRepo, recordRepo, fieldRepo, trainerRepo, formatter, db)
	trainerService := services.NewTrainerService(trainerRepo, db)
	lessonService := services.NewLessonService(lessonRepo, trainerRepo, horseRepo, m, db)
	fieldService := services.NewCustomFieldService(fieldRepo, db)
	dashboardService := services.NewDashboardService(horseRepo, lessonRepo, statsConfig, m)
	migrationService := services.NewMigrationService(func(ctx context.Context) error {
		return database.ApplySchema(ctx, db)
	})

	// Initialize Handlers
	authHandler := handlers.NewAuthHandler(authService)
	horseHandler := handlers.NewHorseHandler(horseService)
	trainerHandler := handlers.NewTrainerHandler(trainerService)
	lessonHandler := handlers.NewLessonHandler(lessonService)
	fieldHandler := handlers.NewCustomFieldHandler(fieldService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService, migrationService)

	engine.Use(middleware.MetricsMiddleware(m))

	engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
	engine.GET("/metrics", func(c *gin.Context) {
		m.UpdateDBStats(db.Stats())
		promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}).ServeHTTP(c.Writer, c.Request)
	})

	apiV1 := engine.Group("/api/v1")
	requireSession := middleware.AuthMiddleware(authService)

	SetupAuthRoutes(apiV1, authHandler, requireSession)

	authenticated := apiV1.Group("")
	authenticated.Use(requireSession)
	{
		SetupHorseRoutes(authenticated, horseHandler)
		SetupTrainerRoutes(authenticated, trainerHandler)
		SetupLessonRoutes(authenticated, lessonHandler)
		SetupCustomFieldRoutes(authenticated, fieldHandler)
		SetupDashboardRoutes(authenticated, dashboardHandler)
	}
	return nil
}
