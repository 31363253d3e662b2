package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"stable_backend/internal/services"
	"stable_backend/pkg/utils"
)

// DashboardHandler holds the dashboard and migration services.
type DashboardHandler struct {
	dashboardService services.DashboardService
	migrationService services.MigrationService
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(ds services.DashboardService, ms services.MigrationService) *DashboardHandler {
	return &DashboardHandler{dashboardService: ds, migrationService: ms}
}

// GetDashboard returns the aggregate statistics. ?as_of=YYYY-MM-DD picks the
// month the monthly figures refer to.
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	asOf, err := optionalDateQuery(c, "as_of")
	if err != nil {
		utils.RespondValidationFailed(c, "as_of must be YYYY-MM-DD")
		return
	}
	var asOfTime *time.Time
	if asOf != nil {
		asOfTime = &asOf.Time
	}

	stats, err := h.dashboardService.GetStats(c.Request.Context(), asOfTime)
	if err != nil {
		respondServiceError(c, err, "GetDashboard", "Failed to compute dashboard statistics.")
		return
	}
	c.JSON(http.StatusOK, stats)
}

// Migrate applies the database schema.
func (h *DashboardHandler) Migrate(c *gin.Context) {
	result, err := h.migrationService.Migrate(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "Migrate", "Failed to apply database schema.")
		return
	}
	utils.LogInfo("Database schema applied on request")
	c.JSON(http.StatusOK, result)
}
