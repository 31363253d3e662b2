package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"stable_backend/internal/models"
	"stable_backend/internal/services"
	"stable_backend/pkg/utils"
)

// TrainerHandler holds the trainer service.
type TrainerHandler struct {
	trainerService services.TrainerService
}

// NewTrainerHandler creates a new TrainerHandler.
func NewTrainerHandler(ts services.TrainerService) *TrainerHandler {
	return &TrainerHandler{trainerService: ts}
}

func (h *TrainerHandler) CreateTrainer(c *gin.Context) {
	var req services.CreateTrainerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "CreateTrainer: Failed to bind JSON")
		utils.RespondBindingError(c, err)
		return
	}
	trainer, err := h.trainerService.CreateTrainer(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err, "CreateTrainer", "Failed to create trainer.")
		return
	}
	c.JSON(http.StatusCreated, trainer)
}

func (h *TrainerHandler) GetTrainers(c *gin.Context) {
	trainers, err := h.trainerService.ListTrainers(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "GetTrainers", "Failed to fetch trainers.")
		return
	}
	if trainers == nil {
		trainers = []models.Trainer{}
	}
	c.JSON(http.StatusOK, trainers)
}

func (h *TrainerHandler) GetTrainerByID(c *gin.Context) {
	trainer, err := h.trainerService.GetTrainer(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "GetTrainerByID", "Failed to fetch trainer.")
		return
	}
	c.JSON(http.StatusOK, trainer)
}

func (h *TrainerHandler) UpdateTrainer(c *gin.Context) {
	var req services.UpdateTrainerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "UpdateTrainer: Failed to bind JSON")
		utils.RespondBindingError(c, err)
		return
	}
	trainer, err := h.trainerService.UpdateTrainer(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondServiceError(c, err, "UpdateTrainer", "Failed to update trainer.")
		return
	}
	c.JSON(http.StatusOK, trainer)
}

func (h *TrainerHandler) DeleteTrainer(c *gin.Context) {
	if err := h.trainerService.DeleteTrainer(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, err, "DeleteTrainer", "Failed to delete trainer.")
		return
	}
	respondDeleted(c, "Trainer deleted successfully")
}
