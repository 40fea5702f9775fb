package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/diagnostico-tools/diagnostico_backend/internal/services"
)

// SettingsHandler handles branding settings endpoints
type SettingsHandler struct {
	settingsService services.SettingsService
}

// NewSettingsHandler creates a new settings handler
func NewSettingsHandler(settingsService services.SettingsService) *SettingsHandler {
	return &SettingsHandler{
		settingsService: settingsService,
	}
}

// GetSettings handles GET /api/v1/settings
// @Summary Get branding settings
// @Description Returns the logo URLs used by the diagnostic frontend
// @Tags Settings
// @Produce json
// @Success 200 {object} models.Settings
// @Failure 500 {object} ErrorResponse
// @Router /settings [get]
func (h *SettingsHandler) GetSettings(c *gin.Context) {
	settings, err := h.settingsService.GetSettings(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "internal_error",
			Message: "Failed to load settings",
		})
		return
	}

	c.JSON(http.StatusOK, settings)
}

// UpdateSettings handles PUT /api/v1/settings
// @Summary Update branding settings
// @Description Applies a partial update to the logo URLs
// @Tags Settings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body services.UpdateSettingsRequest true "Fields to update"
// @Success 200 {object} models.Settings
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /settings [put]
func (h *SettingsHandler) UpdateSettings(c *gin.Context) {
	var req services.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid settings data",
		})
		return
	}

	settings, err := h.settingsService.UpdateSettings(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "internal_error",
			Message: "Failed to save settings",
		})
		return
	}

	c.JSON(http.StatusOK, settings)
}

// RegisterRoutes registers settings handler routes
func (h *SettingsHandler) RegisterRoutes(rg *gin.RouterGroup, authMiddleware gin.HandlerFunc) {
	settings := rg.Group("/settings")
	{
		// Public endpoint: the frontend loads branding before any login
		settings.GET("", h.GetSettings)

		// Admin endpoint
		settings.PUT("", authMiddleware, h.UpdateSettings)
	}
}
