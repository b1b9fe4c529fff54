package handler

import (
	"github.com/aquadrill/borewell-api/internal/application/service"
	"github.com/aquadrill/borewell-api/internal/presentation/http/dto/request"
	"github.com/aquadrill/borewell-api/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
)

// SettingsHandler handles settings HTTP requests
type SettingsHandler struct {
	settingsService *service.SettingsService
}

// NewSettingsHandler creates a new settings handler
func NewSettingsHandler(settingsService *service.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

// GetBillTemplate returns the bill template used on every invoice
func (h *SettingsHandler) GetBillTemplate(c *gin.Context) {
	template, err := h.settingsService.GetBillTemplate(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Bill template retrieved successfully", template)
}

// UpdateBillTemplate updates the bill template
func (h *SettingsHandler) UpdateBillTemplate(c *gin.Context) {
	var req request.UpdateBillTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	template, err := h.settingsService.UpdateBillTemplate(c.Request.Context(), &service.UpdateBillTemplateInput{
		CompanyName:    req.CompanyName,
		CompanyAddress: req.CompanyAddress,
		CompanyPhone:   req.CompanyPhone,
		CompanyEmail:   req.CompanyEmail,
		CompanyWebsite: req.CompanyWebsite,
		Footer:         req.Footer,
		Terms:          req.Terms,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Bill template updated successfully", template)
}
