package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"stable_backend/internal/models"
	"stable_backend/internal/services"
	"stable_backend/pkg/utils"
)

// HorseHandler holds the horse service.
type HorseHandler struct {
	horseService services.HorseService
}

// NewHorseHandler creates a new HorseHandler.
func NewHorseHandler(hs services.HorseService) *HorseHandler {
	return &HorseHandler{horseService: hs}
}

// CreateHorse handles the creation of a new horse.
func (h *HorseHandler) CreateHorse(c *gin.Context) {
	var req services.CreateHorseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "CreateHorse: Failed to bind JSON")
		utils.RespondBindingError(c, err)
		return
	}

	horse, err := h.horseService.CreateHorse(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err, "CreateHorse", "Failed to create horse.")
		return
	}
	c.JSON(http.StatusCreated, horse)
}

// GetHorses lists horses, optionally filtered by ?status=.
func (h *HorseHandler) GetHorses(c *gin.Context) {
	filters := models.HorseFilters{Status: optionalQuery(c, "status")}

	horses, err := h.horseService.ListHorses(c.Request.Context(), filters)
	if err != nil {
		respondServiceError(c, err, "GetHorses", "Failed to fetch horses.")
		return
	}
	if horses == nil {
		horses = []models.Horse{}
	}
	c.JSON(http.StatusOK, horses)
}

// GetHorseByID returns one horse with its records.
func (h *HorseHandler) GetHorseByID(c *gin.Context) {
	horse, err := h.horseService.GetHorse(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "GetHorseByID", "Failed to fetch horse.")
		return
	}
	c.JSON(http.StatusOK, horse)
}

// UpdateHorse applies a partial update.
func (h *HorseHandler) UpdateHorse(c *gin.Context) {
	var req services.UpdateHorseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "UpdateHorse: Failed to bind JSON")
		utils.RespondBindingError(c, err)
		return
	}

	horse, err := h.horseService.UpdateHorse(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondServiceError(c, err, "UpdateHorse", "Failed to update horse.")
		return
	}
	c.JSON(http.StatusOK, horse)
}

// DeleteHorse removes a horse together with its records.
func (h *HorseHandler) DeleteHorse(c *gin.Context) {
	if err := h.horseService.DeleteHorse(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, err, "DeleteHorse", "Failed to delete horse.")
		return
	}
	respondDeleted(c, "Horse deleted successfully")
}

// GetCustomValues returns the horse's custom attributes formatted for display.
func (h *HorseHandler) GetCustomValues(c *gin.Context) {
	rows, err := h.horseService.GetCustomValues(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "GetCustomValues", "Failed to fetch custom values.")
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (h *HorseHandler) GetMedicalRecords(c *gin.Context) {
	records, err := h.horseService.ListMedicalRecords(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "GetMedicalRecords", "Failed to fetch medical records.")
		return
	}
	if records == nil {
		records = []models.MedicalRecord{}
	}
	c.JSON(http.StatusOK, records)
}

func (h *HorseHandler) CreateMedicalRecord(c *gin.Context) {
	var req services.CreateMedicalRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "CreateMedicalRecord: Failed to bind JSON")
		utils.RespondBindingError(c, err)
		return
	}
	record, err := h.horseService.AddMedicalRecord(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondServiceError(c, err, "CreateMedicalRecord", "Failed to create medical record.")
		return
	}
	c.JSON(http.StatusCreated, record)
}

func (h *HorseHandler) DeleteMedicalRecord(c *gin.Context) {
	if err := h.horseService.DeleteMedicalRecord(c.Request.Context(), c.Param("id"), c.Param("recordId")); err != nil {
		respondServiceError(c, err, "DeleteMedicalRecord", "Failed to delete medical record.")
		return
	}
	respondDeleted(c, "Medical record deleted successfully")
}

func (h *HorseHandler) GetVaccinations(c *gin.Context) {
	vaccinations, err := h.horseService.ListVaccinations(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "GetVaccinations", "Failed to fetch vaccinations.")
		return
	}
	if vaccinations == nil {
		vaccinations = []models.Vaccination{}
	}
	c.JSON(http.StatusOK, vaccinations)
}

func (h *HorseHandler) CreateVaccination(c *gin.Context) {
	var req services.CreateVaccinationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "CreateVaccination: Failed to bind JSON")
		utils.RespondBindingError(c, err)
		return
	}
	vaccination, err := h.horseService.AddVaccination(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondServiceError(c, err, "CreateVaccination", "Failed to create vaccination.")
		return
	}
	c.JSON(http.StatusCreated, vaccination)
}

func (h *HorseHandler) DeleteVaccination(c *gin.Context) {
	if err := h.horseService.DeleteVaccination(c.Request.Context(), c.Param("id"), c.Param("recordId")); err != nil {
		respondServiceError(c, err, "DeleteVaccination", "Failed to delete vaccination.")
		return
	}
	respondDeleted(c, "Vaccination deleted successfully")
}

func (h *HorseHandler) GetTrainingNotes(c *gin.Context) {
	notes, err := h.horseService.ListTrainingNotes(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "GetTrainingNotes", "Failed to fetch training notes.")
		return
	}
	if notes == nil {
		notes = []models.TrainingNote{}
	}
	c.JSON(http.StatusOK, notes)
}

func (h *HorseHandler) CreateTrainingNote(c *gin.Context) {
	var req services.CreateTrainingNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "CreateTrainingNote: Failed to bind JSON")
		utils.RespondBindingError(c, err)
		return
	}
	note, err := h.horseService.AddTrainingNote(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondServiceError(c, err, "CreateTrainingNote", "Failed to create training note.")
		return
	}
	c.JSON(http.StatusCreated, note)
}

func (h *HorseHandler) DeleteTrainingNote(c *gin.Context) {
	if err := h.horseService.DeleteTrainingNote(c.Request.Context(), c.Param("id"), c.Param("recordId")); err != nil {
		respondServiceError(c, err, "DeleteTrainingNote", "Failed to delete training note.")
		return
	}
	respondDeleted(c, "Training note deleted successfully")
}
