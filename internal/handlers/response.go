package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"stable_backend/internal/models"
	"stable_backend/internal/services"
	"stable_backend/pkg/utils"
)

// respondServiceError maps a service error onto an HTTP status. Storage and
// unexpected failures are logged and reported with a generic message.
func respondServiceError(c *gin.Context, err error, operation, failureMessage string) {
	switch {
	case errors.Is(err, services.ErrValidation):
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Validation failed: "+err.Error(), err.Error()))
	case errors.Is(err, services.ErrNotFound):
		utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Requested resource not found.", err.Error()))
	case errors.Is(err, services.ErrCustomFieldKeyExists):
		utils.RespondWithError(c, utils.NewAPIError(http.StatusConflict, utils.ErrCodeDuplicateKey, "A custom field with this key already exists.", err.Error()))
	case errors.Is(err, services.ErrConflict):
		utils.RespondWithError(c, utils.NewAPIError(http.StatusConflict, utils.ErrCodeConflict, "Request conflicts with the current state.", err.Error()))
	default:
		utils.LogError(err, operation+": unexpected service error")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, failureMessage, "Internal error"))
	}
}

// optionalQuery returns nil for an absent or blank query parameter.
func optionalQuery(c *gin.Context, name string) *string {
	v := strings.TrimSpace(c.Query(name))
	if v == "" {
		return nil
	}
	return &v
}

// optionalDateQuery parses a YYYY-MM-DD query parameter.
func optionalDateQuery(c *gin.Context, name string) (*models.Date, error) {
	v := optionalQuery(c, name)
	if v == nil {
		return nil, nil
	}
	d, err := models.ParseDate(*v)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func respondDeleted(c *gin.Context, message string) {
	c.JSON(http.StatusOK, gin.H{"message": message})
}
