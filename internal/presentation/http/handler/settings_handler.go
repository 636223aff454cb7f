package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/danuwijaya/tokopos-api/internal/application/service"
	"github.com/danuwijaya/tokopos-api/internal/presentation/http/dto/response"
)

// SettingsHandler handles store settings HTTP requests
type SettingsHandler struct {
	settingsService *service.SettingsService
}

// NewSettingsHandler creates a new settings handler
func NewSettingsHandler(settingsService *service.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

// GetSettings returns all settings as a key/value map
func (h *SettingsHandler) GetSettings(c *gin.Context) {
	settings, err := h.settingsService.GetAll(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Settings retrieved successfully", settings)
}

// UpdateSettings upserts the submitted key/value pairs
func (h *SettingsHandler) UpdateSettings(c *gin.Context) {
	var req map[string]string
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.settingsService.Update(c.Request.Context(), req); err != nil {
		response.Error(c, err)
		return
	}

	settings, err := h.settingsService.GetAll(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Settings updated successfully", settings)
}

// GetPOSConfig returns the typed point-of-sale configuration
func (h *SettingsHandler) GetPOSConfig(c *gin.Context) {
	cfg, err := h.settingsService.GetPOSConfig(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "POS configuration retrieved successfully", cfg)
}
