package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"stable_backend/internal/models"
	"stable_backend/internal/services"
	"stable_backend/pkg/utils"
)

// LessonHandler holds the lesson service.
type LessonHandler struct {
	lessonService services.LessonService
}

// NewLessonHandler creates a new LessonHandler.
func NewLessonHandler(ls services.LessonService) *LessonHandler {
	return &LessonHandler{lessonService: ls}
}

func (h *LessonHandler) CreateLesson(c *gin.Context) {
	var req services.CreateLessonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "CreateLesson: Failed to bind JSON")
		utils.RespondBindingError(c, err)
		return
	}
	lesson, err := h.lessonService.CreateLesson(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err, "CreateLesson", "Failed to create lesson.")
		return
	}
	c.JSON(http.StatusCreated, lesson)
}

// GetLessons lists lessons filtered by trainer_id, horse_id, status, type,
// date_from and date_to.
func (h *LessonHandler) GetLessons(c *gin.Context) {
	filters := models.LessonFilters{
		TrainerID: optionalQuery(c, "trainer_id"),
		HorseID:   optionalQuery(c, "horse_id"),
		Status:    optionalQuery(c, "status"),
		Type:      optionalQuery(c, "type"),
	}
	var err error
	if filters.DateFrom, err = optionalDateQuery(c, "date_from"); err != nil {
		utils.RespondValidationFailed(c, "date_from must be YYYY-MM-DD")
		return
	}
	if filters.DateTo, err = optionalDateQuery(c, "date_to"); err != nil {
		utils.RespondValidationFailed(c, "date_to must be YYYY-MM-DD")
		return
	}

	lessons, err := h.lessonService.ListLessons(c.Request.Context(), filters)
	if err != nil {
		respondServiceError(c, err, "GetLessons", "Failed to fetch lessons.")
		return
	}
	if lessons == nil {
		lessons = []models.Lesson{}
	}
	c.JSON(http.StatusOK, lessons)
}

func (h *LessonHandler) GetLessonByID(c *gin.Context) {
	lesson, err := h.lessonService.GetLesson(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "GetLessonByID", "Failed to fetch lesson.")
		return
	}
	c.JSON(http.StatusOK, lesson)
}

func (h *LessonHandler) UpdateLesson(c *gin.Context) {
	var req services.UpdateLessonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "UpdateLesson: Failed to bind JSON")
		utils.RespondBindingError(c, err)
		return
	}
	lesson, err := h.lessonService.UpdateLesson(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondServiceError(c, err, "UpdateLesson", "Failed to update lesson.")
		return
	}
	c.JSON(http.StatusOK, lesson)
}

func (h *LessonHandler) CancelLesson(c *gin.Context) {
	lesson, err := h.lessonService.CancelLesson(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "CancelLesson", "Failed to cancel lesson.")
		return
	}
	c.JSON(http.StatusOK, lesson)
}

func (h *LessonHandler) CompleteLesson(c *gin.Context) {
	lesson, err := h.lessonService.CompleteLesson(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "CompleteLesson", "Failed to complete lesson.")
		return
	}
	c.JSON(http.StatusOK, lesson)
}

func (h *LessonHandler) DeleteLesson(c *gin.Context) {
	if err := h.lessonService.DeleteLesson(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, err, "DeleteLesson", "Failed to delete lesson.")
		return
	}
	respondDeleted(c, "Lesson deleted successfully")
}
