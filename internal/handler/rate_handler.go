package handler

import (
	"hostel-be-svc/internal/billing"
	"hostel-be-svc/internal/service"
	"hostel-be-svc/pkg/logger"
	"hostel-be-svc/pkg/utils"

	"github.com/gin-gonic/gin"
)

// SetRateRequest represents the request for setting a rate entry
type SetRateRequest struct {
	Floor       string `json:"floor" binding:"required" example:"2nd"`
	BedType     string `json:"bed_type" binding:"required" example:"Bed"`
	MonthlyRent int64  `json:"monthly_rent" binding:"required" example:"1600"`
}

// RateHandler handles rate table HTTP requests
type RateHandler struct {
	rateService service.RateService
	logger      *logger.Logger
}

// NewRateHandler creates a new RateHandler instance
func NewRateHandler(rateService service.RateService, logger *logger.Logger) *RateHandler {
	return &RateHandler{
		rateService: rateService,
		logger:      logger,
	}
}

// GetAllRates retrieves all configured rates
// @Summary List rates
// @Description List the monthly rent for every configured floor and bed type.
// @Tags rates
// @Produce json
// @Success 200 {object} utils.APIResponse{data=[]models.Rate} "Rates retrieved"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/rates [get]
func (h *RateHandler) GetAllRates(c *gin.Context) {
	rates, err := h.rateService.GetAllRates()
	if err != nil {
		handleServiceError(c, h.logger, err, "Failed to get rates")
		return
	}

	utils.SuccessResponse(c, "Rates retrieved successfully", rates)
}

// SetRate inserts or updates a rate entry
// @Summary Set a rate
// @Description Set the monthly rent for a floor/bed-type pair. Existing entries are overwritten.
// @Tags rates
// @Accept json
// @Produce json
// @Param request body SetRateRequest true "Rate request"
// @Success 200 {object} utils.APIResponse{data=models.Rate} "Rate saved"
// @Failure 400 {object} utils.APIResponse "Invalid request"
// @Failure 422 {object} utils.APIResponse "Domain rule violation"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/rates [put]
func (h *RateHandler) SetRate(c *gin.Context) {
	var req SetRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.WithError(err).Error("Invalid request body")
		utils.BadRequestResponse(c, "Request body must be valid JSON", err)
		return
	}

	rate, err := h.rateService.SetRate(billing.Floor(req.Floor), billing.BedType(req.BedType), req.MonthlyRent)
	if err != nil {
		handleServiceError(c, h.logger, err, "Failed to save rate")
		return
	}

	utils.SuccessResponse(c, "Rate saved successfully", rate)
}

// DeleteRate removes a rate entry
// @Summary Delete a rate
// @Description Delete the rate entry for a floor/bed-type pair. Refused while active members still occupy that placement.
// @Tags rates
// @Produce json
// @Param floor query string true "Floor" Enums(2nd, 3rd)
// @Param bed_type query string true "Bed type" Enums(Bed, Room, Special)
// @Success 200 {object} utils.APIResponse "Rate deleted"
// @Failure 400 {object} utils.APIResponse "Invalid request"
// @Failure 422 {object} utils.APIResponse "Domain rule violation"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/rates [delete]
func (h *RateHandler) DeleteRate(c *gin.Context) {
	floor := c.Query("floor")
	bedType := c.Query("bed_type")
	if floor == "" || bedType == "" {
		utils.BadRequestResponse(c, "floor and bed_type query parameters are required", nil)
		return
	}

	if err := h.rateService.DeleteRate(billing.Floor(floor), billing.BedType(bedType)); err != nil {
		handleServiceError(c, h.logger, err, "Failed to delete rate")
		return
	}

	utils.SuccessResponse(c, "Rate deleted successfully", nil)
}
