package handler

import (
	"fmt"
	"net/http"

	"hostel-be-svc/internal/billing"
	"hostel-be-svc/internal/service"
	"hostel-be-svc/pkg/logger"
	"hostel-be-svc/pkg/utils"

	"github.com/gin-gonic/gin"
)

// ExpenseRequest represents one ad-hoc expense line
type ExpenseRequest struct {
	Amount      int64  `json:"amount" binding:"required" example:"200"`
	Description string `json:"description" example:"bucket replacement"`
}

// GenerateBillsRequest represents the request for bulk bill generation
type GenerateBillsRequest struct {
	MemberIDs          []uint           `json:"member_ids,omitempty"` // Empty means all active members
	Month              string           `json:"month" binding:"required" example:"2026-08"`
	ForwardOutstanding bool             `json:"forward_outstanding" example:"true"`
	Expenses           []ExpenseRequest `json:"expenses,omitempty"`
}

// PaymentRequest represents the request for recording a payment
type PaymentRequest struct {
	MemberID uint   `json:"member_id" binding:"required" example:"3"`
	Month    string `json:"month" binding:"required" example:"2026-08"`
	Amount   int64  `json:"amount" binding:"required" example:"1000"`
}

// AddExpenseRequest represents the request for adding an expense to a bill
type AddExpenseRequest struct {
	MemberID    uint   `json:"member_id" binding:"required" example:"3"`
	Month       string `json:"month" binding:"required" example:"2026-08"`
	Amount      int64  `json:"amount" binding:"required" example:"200"`
	Description string `json:"description" example:"broken chair"`
}

// ElectricityBillRequest represents the request for recording a floor's
// shared electricity bill
type ElectricityBillRequest struct {
	Month       string `json:"month" binding:"required" example:"2026-08"`
	Floor       string `json:"floor" binding:"required" example:"2nd"`
	TotalAmount int64  `json:"total_amount" binding:"required" example:"1500"`
}

// BillingHandler handles billing-related HTTP requests
type BillingHandler struct {
	billingService service.BillingService
	logger         *logger.Logger
}

// NewBillingHandler creates a new BillingHandler instance
func NewBillingHandler(billingService service.BillingService, logger *logger.Logger) *BillingHandler {
	return &BillingHandler{
		billingService: billingService,
		logger:         logger,
	}
}

// GenerateBills generates monthly bills for specified members or all active members
// @Summary Generate monthly bills
// @Description Generate bills for the given member IDs, or all active members when member_ids is empty. Members who already have a bill for the month are skipped.
// @Tags billings
// @Accept json
// @Produce json
// @Param request body GenerateBillsRequest true "Bill generation request"
// @Success 200 {object} utils.APIResponse{data=service.BulkBillingResponse} "Bill generation result"
// @Failure 400 {object} utils.APIResponse "Invalid request"
// @Failure 422 {object} utils.APIResponse "Domain rule violation"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/billings/generate [post]
func (h *BillingHandler) GenerateBills(c *gin.Context) {
	var req GenerateBillsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.WithError(err).Error("Invalid request body")
		utils.BadRequestResponse(c, "Request body must be valid JSON", err)
		return
	}

	expenses := make([]billing.Expense, 0, len(req.Expenses))
	for _, e := range req.Expenses {
		expenses = append(expenses, billing.Expense{Amount: e.Amount, Description: e.Description})
	}

	result, err := h.billingService.GenerateMonthlyBills(req.MemberIDs, req.Month, req.ForwardOutstanding, expenses)
	if err != nil {
		handleServiceError(c, h.logger, err, "Failed to generate bills")
		return
	}

	h.logger.WithFields(map[string]interface{}{
		"month":         req.Month,
		"total_members": result.TotalMembers,
		"total_bills":   result.TotalBills,
		"failed_count":  result.FailedCount,
	}).Info("Bills generated successfully")

	utils.SuccessResponse(c, "Bills generated successfully", result)
}

// RecordPayment records a payment against a member's bill
// @Summary Record a payment
// @Description Record a payment against a member's bill for a month. Payments are cumulative within the month.
// @Tags billings
// @Accept json
// @Produce json
// @Param request body PaymentRequest true "Payment request"
// @Success 200 {object} utils.APIResponse{data=models.RentBill} "Updated bill"
// @Failure 400 {object} utils.APIResponse "Invalid request"
// @Failure 404 {object} utils.APIResponse "Bill not found"
// @Failure 422 {object} utils.APIResponse "Domain rule violation"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/billings/payment [post]
func (h *BillingHandler) RecordPayment(c *gin.Context) {
	var req PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.WithError(err).Error("Invalid request body")
		utils.BadRequestResponse(c, "Request body must be valid JSON", err)
		return
	}

	bill, err := h.billingService.RecordPayment(req.MemberID, req.Month, req.Amount)
	if err != nil {
		handleServiceError(c, h.logger, err, "Failed to record payment")
		return
	}

	utils.SuccessResponse(c, "Payment recorded successfully", bill)
}

// AddExpense adds an ad-hoc expense to an existing bill
// @Summary Add an expense to a bill
// @Description Attach an ad-hoc expense to a member's bill for a month. The bill's charges and status are recomputed.
// @Tags billings
// @Accept json
// @Produce json
// @Param request body AddExpenseRequest true "Expense request"
// @Success 200 {object} utils.APIResponse{data=models.RentBill} "Updated bill"
// @Failure 400 {object} utils.APIResponse "Invalid request"
// @Failure 404 {object} utils.APIResponse "Bill not found"
// @Failure 422 {object} utils.APIResponse "Domain rule violation"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/billings/expense [post]
func (h *BillingHandler) AddExpense(c *gin.Context) {
	var req AddExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.WithError(err).Error("Invalid request body")
		utils.BadRequestResponse(c, "Request body must be valid JSON", err)
		return
	}

	bill, err := h.billingService.AddExpense(req.MemberID, req.Month, billing.Expense{
		Amount:      req.Amount,
		Description: req.Description,
	})
	if err != nil {
		handleServiceError(c, h.logger, err, "Failed to add expense")
		return
	}

	utils.SuccessResponse(c, "Expense added successfully", bill)
}

// RecordElectricityBill records a floor's shared electricity bill
// @Summary Record a floor electricity bill
// @Description Record the total electricity bill for a floor in a month. The per-head share is split over the floor's active members with ceiling rounding.
// @Tags billings
// @Accept json
// @Produce json
// @Param request body ElectricityBillRequest true "Electricity bill request"
// @Success 200 {object} utils.APIResponse{data=models.ElectricityBill} "Recorded electricity bill"
// @Failure 400 {object} utils.APIResponse "Invalid request"
// @Failure 422 {object} utils.APIResponse "Domain rule violation"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/billings/electricity [post]
func (h *BillingHandler) RecordElectricityBill(c *gin.Context) {
	var req ElectricityBillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.WithError(err).Error("Invalid request body")
		utils.BadRequestResponse(c, "Request body must be valid JSON", err)
		return
	}

	bill, err := h.billingService.RecordElectricityBill(req.Month, billing.Floor(req.Floor), req.TotalAmount)
	if err != nil {
		handleServiceError(c, h.logger, err, "Failed to record electricity bill")
		return
	}

	utils.SuccessResponse(c, "Electricity bill recorded successfully", bill)
}

// GetBills retrieves bills with filters and pagination
// @Summary List bills
// @Description List bills joined with member data. Supports search by member name or phone, and month, status and floor filters.
// @Tags billings
// @Produce json
// @Param search query string false "Search by member name or phone"
// @Param month query string false "Billing month (YYYY-MM)"
// @Param status query string false "Bill status" Enums(Due, Partial, Paid, Overpaid)
// @Param floor query string false "Floor" Enums(2nd, 3rd)
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(20)
// @Success 200 {object} utils.PaginatedResponse{data=[]response.BillWithMemberResponse} "Bills retrieved"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/billings [get]
func (h *BillingHandler) GetBills(c *gin.Context) {
	search := c.Query("search")
	month := c.Query("month")
	status := c.Query("status")
	floor := c.Query("floor")
	page, limit := parsePagination(c)

	bills, total, err := h.billingService.GetBills(search, month, status, floor, page, limit)
	if err != nil {
		handleServiceError(c, h.logger, err, "Failed to get bills")
		return
	}

	utils.PaginatedSuccessResponse(c, "Bills retrieved successfully", bills, page, limit, total)
}

// GetBillingStatistics retrieves aggregated billing figures for a month
// @Summary Get billing statistics
// @Description Get aggregated charges, collections and per-status counts for a billing month.
// @Tags billings
// @Produce json
// @Param month query string true "Billing month (YYYY-MM)"
// @Success 200 {object} utils.APIResponse{data=response.BillingStatisticsResponse} "Statistics retrieved"
// @Failure 400 {object} utils.APIResponse "Invalid request"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/billings/statistics [get]
func (h *BillingHandler) GetBillingStatistics(c *gin.Context) {
	month := c.Query("month")
	if month == "" {
		utils.BadRequestResponse(c, "month query parameter is required", nil)
		return
	}

	stats, err := h.billingService.GetBillingStatistics(month)
	if err != nil {
		handleServiceError(c, h.logger, err, "Failed to get billing statistics")
		return
	}

	utils.SuccessResponse(c, "Billing statistics retrieved successfully", stats)
}

// ExportBilling exports billing data to an Excel file
// @Summary Export bills to Excel
// @Description Download billing data as an Excel file. Supports the same month, status and floor filters as the list endpoint.
// @Tags billings
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param month query string false "Billing month (YYYY-MM)"
// @Param status query string false "Bill status" Enums(Due, Partial, Paid, Overpaid)
// @Param floor query string false "Floor" Enums(2nd, 3rd)
// @Success 200 {file} binary "Excel file"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/billings/export [get]
func (h *BillingHandler) ExportBilling(c *gin.Context) {
	month := c.Query("month")
	status := c.Query("status")
	floor := c.Query("floor")

	data, filename, err := h.billingService.ExportBillingToExcel(month, status, floor)
	if err != nil {
		handleServiceError(c, h.logger, err, "Failed to export billing data")
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}
