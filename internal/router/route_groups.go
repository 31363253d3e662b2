package router

import (
	"github.com/gin-gonic/gin"

	"stable_backend/internal/handlers"
)

// SetupAuthRoutes sets up the shared-password gate routes. Login is public;
// the rest sit behind requireSession.
func SetupAuthRoutes(apiGroup *gin.RouterGroup, authHandler *handlers.AuthHandler, requireSession gin.HandlerFunc) {
	authRoutes := apiGroup.Group("/auth")
	{
		authRoutes.POST("/login", authHandler.Login)

		authRequiredRoutes := authRoutes.Group("")
		authRequiredRoutes.Use(requireSession)
		{
			authRequiredRoutes.GET("/session", authHandler.GetSession)
			authRequiredRoutes.POST("/logout", authHandler.Logout)
		}
	}
}

// SetupHorseRoutes sets up the horse routes and the nested record routes.
func SetupHorseRoutes(authenticatedGroup *gin.RouterGroup, horseHandler *handlers.HorseHandler) {
	horseRoutes := authenticatedGroup.Group("/horses")
	{
		horseRoutes.POST("", horseHandler.CreateHorse)
		horseRoutes.GET("", horseHandler.GetHorses)
		horseRoutes.GET("/:id", horseHandler.GetHorseByID)
		horseRoutes.PUT("/:id", horseHandler.UpdateHorse)
		horseRoutes.DELETE("/:id", horseHandler.DeleteHorse)
		horseRoutes.GET("/:id/custom-values", horseHandler.GetCustomValues)

		horseRoutes.GET("/:id/medical-records", horseHandler.GetMedicalRecords)
		horseRoutes.POST("/:id/medical-records", horseHandler.CreateMedicalRecord)
		horseRoutes.DELETE("/:id/medical-records/:recordId", horseHandler.DeleteMedicalRecord)

		horseRoutes.GET("/:id/vaccinations", horseHandler.GetVaccinations)
		horseRoutes.POST("/:id/vaccinations", horseHandler.CreateVaccination)
		horseRoutes.DELETE("/:id/vaccinations/:recordId", horseHandler.DeleteVaccination)

		horseRoutes.GET("/:id/training-notes", horseHandler.GetTrainingNotes)
		horseRoutes.POST("/:id/training-notes", horseHandler.CreateTrainingNote)
		horseRoutes.DELETE("/:id/training-notes/:recordId", horseHandler.DeleteTrainingNote)
	}
}

// SetupTrainerRoutes sets up the trainer routes.
func SetupTrainerRoutes(authenticatedGroup *gin.RouterGroup, trainerHandler *handlers.TrainerHandler) {
	trainerRoutes := authenticatedGroup.Group("/trainers")
	{
		trainerRoutes.POST("", trainerHandler.CreateTrainer)
		trainerRoutes.GET("", trainerHandler.GetTrainers)
		trainerRoutes.GET("/:id", trainerHandler.GetTrainerByID)
		trainerRoutes.PUT("/:id", trainerHandler.UpdateTrainer)
		trainerRoutes.DELETE("/:id", trainerHandler.DeleteTrainer)
	}
}

// SetupLessonRoutes sets up the lesson routes.
func SetupLessonRoutes(authenticatedGroup *gin.RouterGroup, lessonHandler *handlers.LessonHandler) {
	lessonRoutes := authenticatedGroup.Group("/lessons")
	{
		lessonRoutes.POST("", lessonHandler.CreateLesson)
		lessonRoutes.GET("", lessonHandler.GetLessons)
		lessonRoutes.GET("/:id", lessonHandler.GetLessonByID)
		lessonRoutes.PUT("/:id", lessonHandler.UpdateLesson)
		lessonRoutes.PATCH("/:id/cancel", lessonHandler.CancelLesson)
		lessonRoutes.PATCH("/:id/complete", lessonHandler.CompleteLesson)
		lessonRoutes.DELETE("/:id", lessonHandler.DeleteLesson)
	}
}

// SetupCustomFieldRoutes sets up the custom horse field definition routes.
func SetupCustomFieldRoutes(authenticatedGroup *gin.RouterGroup, fieldHandler *handlers.CustomFieldHandler) {
	fieldRoutes := authenticatedGroup.Group("/horse-custom-fields")
	{
		fieldRoutes.POST("", fieldHandler.CreateCustomField)
		fieldRoutes.GET("", fieldHandler.GetCustomFields)
		fieldRoutes.GET("/:id", fieldHandler.GetCustomFieldByID)
		fieldRoutes.PUT("/:id", fieldHandler.UpdateCustomField)
		fieldRoutes.DELETE("/:id", fieldHandler.DeleteCustomField)
	}
}

// SetupDashboardRoutes sets up the dashboard and schema routes.
func SetupDashboardRoutes(authenticatedGroup *gin.RouterGroup, dashboardHandler *handlers.DashboardHandler) {
	authenticatedGroup.GET("/dashboard", dashboardHandler.GetDashboard)
	authenticatedGroup.POST("/admin/migrate", dashboardHandler.Migrate)
}
