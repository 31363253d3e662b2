package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"stable_backend/internal/models"
	"stable_backend/internal/services"
	"stable_backend/pkg/utils"
)

// CustomFieldHandler holds the custom field service.
type CustomFieldHandler struct {
	fieldService services.CustomFieldService
}

// NewCustomFieldHandler creates a new CustomFieldHandler.
func NewCustomFieldHandler(fs services.CustomFieldService) *CustomFieldHandler {
	return &CustomFieldHandler{fieldService: fs}
}

// CreateCustomField defines a new horse attribute. A key already in use
// yields 409.
func (h *CustomFieldHandler) CreateCustomField(c *gin.Context) {
	var req services.CreateCustomFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "CreateCustomField: Failed to bind JSON")
		utils.RespondBindingError(c, err)
		return
	}
	def, err := h.fieldService.CreateField(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err, "CreateCustomField", "Failed to create custom field.")
		return
	}
	c.JSON(http.StatusCreated, def)
}

func (h *CustomFieldHandler) GetCustomFields(c *gin.Context) {
	defs, err := h.fieldService.ListFields(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "GetCustomFields", "Failed to fetch custom fields.")
		return
	}
	if defs == nil {
		defs = []models.CustomFieldDefinition{}
	}
	c.JSON(http.StatusOK, defs)
}

func (h *CustomFieldHandler) GetCustomFieldByID(c *gin.Context) {
	def, err := h.fieldService.GetField(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "GetCustomFieldByID", "Failed to fetch custom field.")
		return
	}
	c.JSON(http.StatusOK, def)
}

func (h *CustomFieldHandler) UpdateCustomField(c *gin.Context) {
	var req services.UpdateCustomFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "UpdateCustomField: Failed to bind JSON")
		utils.RespondBindingError(c, err)
		return
	}
	def, err := h.fieldService.UpdateField(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondServiceError(c, err, "UpdateCustomField", "Failed to update custom field.")
		return
	}
	c.JSON(http.StatusOK, def)
}

func (h *CustomFieldHandler) DeleteCustomField(c *gin.Context) {
	if err := h.fieldService.DeleteField(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, err, "DeleteCustomField", "Failed to delete custom field.")
		return
	}
	respondDeleted(c, "Custom field deleted successfully")
}
