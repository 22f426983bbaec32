package handler

import (
	"hostel-be-svc/internal/service"
	"hostel-be-svc/pkg/logger"
	"hostel-be-svc/pkg/utils"

	"github.com/gin-gonic/gin"
)

// UpdateSettingsRequest represents the request for updating global
// settings. Omitted fields are left unchanged.
type UpdateSettingsRequest struct {
	CurrentBillingMonth    *string `json:"current_billing_month,omitempty" example:"2026-08"`
	NextBillingMonth       *string `json:"next_billing_month,omitempty" example:"2026-09"`
	WiFiMonthlyCharge      *int64  `json:"wifi_monthly_charge,omitempty" example:"1000"`
	SecurityDepositDefault *int64  `json:"security_deposit_default,omitempty" example:"2000"`
	AdminPhones            *string `json:"admin_phones,omitempty" example:"+8801712345678,+8801812345678"`
}

// SettingsHandler handles global settings HTTP requests
type SettingsHandler struct {
	settingsService service.SettingsService
	logger          *logger.Logger
}

// NewSettingsHandler creates a new SettingsHandler instance
func NewSettingsHandler(settingsService service.SettingsService, logger *logger.Logger) *SettingsHandler {
	return &SettingsHandler{
		settingsService: settingsService,
		logger:          logger,
	}
}

// GetSettings retrieves the global settings
// @Summary Get settings
// @Description Get the published global settings row, seeding defaults on first access.
// @Tags settings
// @Produce json
// @Success 200 {object} utils.APIResponse{data=models.Settings} "Settings retrieved"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/settings [get]
func (h *SettingsHandler) GetSettings(c *gin.Context) {
	settings, err := h.settingsService.GetSettings()
	if err != nil {
		handleServiceError(c, h.logger, err, "Failed to get settings")
		return
	}

	utils.SuccessResponse(c, "Settings retrieved successfully", settings)
}

// UpdateSettings updates the global settings
// @Summary Update settings
// @Description Update the global settings. Omitted fields are left unchanged.
// @Tags settings
// @Accept json
// @Produce json
// @Param request body UpdateSettingsRequest true "Settings update request"
// @Success 200 {object} utils.APIResponse{data=models.Settings} "Settings updated"
// @Failure 400 {object} utils.APIResponse "Invalid request"
// @Failure 422 {object} utils.APIResponse "Domain rule violation"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/settings [put]
func (h *SettingsHandler) UpdateSettings(c *gin.Context) {
	var req UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.WithError(err).Error("Invalid request body")
		utils.BadRequestResponse(c, "Request body must be valid JSON", err)
		return
	}

	settings, err := h.settingsService.UpdateSettings(service.UpdateSettingsInput{
		CurrentBillingMonth:    req.CurrentBillingMonth,
		NextBillingMonth:       req.NextBillingMonth,
		WiFiMonthlyCharge:      req.WiFiMonthlyCharge,
		SecurityDepositDefault: req.SecurityDepositDefault,
		AdminPhones:            req.AdminPhones,
	})
	if err != nil {
		handleServiceError(c, h.logger, err, "Failed to update settings")
		return
	}

	utils.SuccessResponse(c, "Settings updated successfully", settings)
}

// AdvanceBillingMonth rolls the billing period forward
// @Summary Advance the billing month
// @Description Promote the next billing month to current and derive a fresh next month.
// @Tags settings
// @Produce json
// @Success 200 {object} utils.APIResponse{data=models.Settings} "Billing month advanced"
// @Failure 422 {object} utils.APIResponse "Domain rule violation"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/settings/advance-month [post]
func (h *SettingsHandler) AdvanceBillingMonth(c *gin.Context) {
	settings, err := h.settingsService.AdvanceBillingMonth()
	if err != nil {
		handleServiceError(c, h.logger, err, "Failed to advance billing month")
		return
	}

	utils.SuccessResponse(c, "Billing month advanced successfully", settings)
}
