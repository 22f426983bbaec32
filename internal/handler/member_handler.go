package handler

import (
	"strconv"
	"time"

	"hostel-be-svc/internal/billing"
	"hostel-be-svc/internal/service"
	"hostel-be-svc/pkg/logger"
	"hostel-be-svc/pkg/utils"

	"github.com/gin-gonic/gin"
)

// CreateMemberRequest represents the request for registering a member
type CreateMemberRequest struct {
	Name            string  `json:"name" binding:"required" example:"Rahim Uddin"`
	Phone           string  `json:"phone" binding:"required" example:"01712345678"`
	Floor           string  `json:"floor" binding:"required" example:"2nd"`
	BedType         string  `json:"bed_type" binding:"required" example:"Bed"`
	MoveInDate      string  `json:"move_in_date" binding:"required" example:"2026-08-01"`
	SecurityDeposit *int64  `json:"security_deposit,omitempty" example:"2000"`
	AdvanceDeposit  int64   `json:"advance_deposit" example:"0"`
	RentAtJoining   int64   `json:"rent_at_joining" binding:"required" example:"1600"`
	WiFiOptIn       bool    `json:"wifi_opt_in" example:"true"`
	Note            *string `json:"note,omitempty"`
}

// UpdateMemberRequest represents the request for updating a member.
// Omitted fields are left unchanged.
type UpdateMemberRequest struct {
	Name        *string `json:"name,omitempty"`
	Phone       *string `json:"phone,omitempty"`
	Floor       *string `json:"floor,omitempty"`
	BedType     *string `json:"bed_type,omitempty"`
	MoveInDate  *string `json:"move_in_date,omitempty"`
	CurrentRent *int64  `json:"current_rent,omitempty"`
	WiFiOptIn   *bool   `json:"wifi_opt_in,omitempty"`
	Note        *string `json:"note,omitempty"`
}

// DeactivateMemberRequest represents the request for deactivating a member
type DeactivateMemberRequest struct {
	LeaveDate string `json:"leave_date" binding:"required" example:"2026-08-31"`
}

// MemberHandler handles member-related HTTP requests
type MemberHandler struct {
	memberService service.MemberService
	logger        *logger.Logger
}

// NewMemberHandler creates a new MemberHandler instance
func NewMemberHandler(memberService service.MemberService, logger *logger.Logger) *MemberHandler {
	return &MemberHandler{
		memberService: memberService,
		logger:        logger,
	}
}

// CreateMember registers a new member
// @Summary Register a member
// @Description Register a new hostel member. The total agreed deposit is fixed at creation as security + rent at joining + advance.
// @Tags members
// @Accept json
// @Produce json
// @Param request body CreateMemberRequest true "Member registration request"
// @Success 201 {object} utils.APIResponse{data=models.Member} "Member created"
// @Failure 400 {object} utils.APIResponse "Invalid request"
// @Failure 422 {object} utils.APIResponse "Domain rule violation"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/members [post]
func (h *MemberHandler) CreateMember(c *gin.Context) {
	var req CreateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.WithError(err).Error("Invalid request body")
		utils.BadRequestResponse(c, "Request body must be valid JSON", err)
		return
	}

	moveInDate, err := time.Parse("2006-01-02", req.MoveInDate)
	if err != nil {
		utils.BadRequestResponse(c, "move_in_date must be formatted YYYY-MM-DD", err)
		return
	}

	member, err := h.memberService.CreateMember(service.CreateMemberInput{
		Name:            req.Name,
		Phone:           req.Phone,
		Floor:           billing.Floor(req.Floor),
		BedType:         billing.BedType(req.BedType),
		MoveInDate:      moveInDate,
		SecurityDeposit: req.SecurityDeposit,
		AdvanceDeposit:  req.AdvanceDeposit,
		RentAtJoining:   req.RentAtJoining,
		WiFiOptIn:       req.WiFiOptIn,
		Note:            req.Note,
	})
	if err != nil {
		handleServiceError(c, h.logger, err, "Failed to create member")
		return
	}

	utils.CreatedResponse(c, "Member created successfully", member)
}

// UpdateMember updates an existing member
// @Summary Update a member
// @Description Update a member's fields. Move-in-date edits are only accepted within one month of the stored date.
// @Tags members
// @Accept json
// @Produce json
// @Param id path int true "Member ID"
// @Param request body UpdateMemberRequest true "Member update request"
// @Success 200 {object} utils.APIResponse{data=models.Member} "Member updated"
// @Failure 400 {object} utils.APIResponse "Invalid request"
// @Failure 404 {object} utils.APIResponse "Member not found"
// @Failure 422 {object} utils.APIResponse "Domain rule violation"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/members/{id} [put]
func (h *MemberHandler) UpdateMember(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.BadRequestResponse(c, "Member ID must be a positive integer", err)
		return
	}

	var req UpdateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.WithError(err).Error("Invalid request body")
		utils.BadRequestResponse(c, "Request body must be valid JSON", err)
		return
	}

	input := service.UpdateMemberInput{
		Name:        req.Name,
		Phone:       req.Phone,
		CurrentRent: req.CurrentRent,
		WiFiOptIn:   req.WiFiOptIn,
		Note:        req.Note,
	}
	if req.Floor != nil {
		floor := billing.Floor(*req.Floor)
		input.Floor = &floor
	}
	if req.BedType != nil {
		bedType := billing.BedType(*req.BedType)
		input.BedType = &bedType
	}
	if req.MoveInDate != nil {
		moveInDate, err := time.Parse("2006-01-02", *req.MoveInDate)
		if err != nil {
			utils.BadRequestResponse(c, "move_in_date must be formatted YYYY-MM-DD", err)
			return
		}
		input.MoveInDate = &moveInDate
	}

	member, err := h.memberService.UpdateMember(uint(id), input)
	if err != nil {
		handleServiceError(c, h.logger, err, "Failed to update member")
		return
	}

	utils.SuccessResponse(c, "Member updated successfully", member)
}

// DeactivateMember settles and deactivates a member
// @Summary Deactivate a member
// @Description Deactivate a member on their leave date and compute the deposit settlement.
// @Tags members
// @Accept json
// @Produce json
// @Param id path int true "Member ID"
// @Param request body DeactivateMemberRequest true "Deactivation request"
// @Success 200 {object} utils.APIResponse{data=response.SettlementResponse} "Member deactivated with settlement"
// @Failure 400 {object} utils.APIResponse "Invalid request"
// @Failure 404 {object} utils.APIResponse "Member not found"
// @Failure 422 {object} utils.APIResponse "Domain rule violation"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/members/{id}/deactivate [post]
func (h *MemberHandler) DeactivateMember(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.BadRequestResponse(c, "Member ID must be a positive integer", err)
		return
	}

	var req DeactivateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.WithError(err).Error("Invalid request body")
		utils.BadRequestResponse(c, "Request body must be valid JSON", err)
		return
	}

	leaveDate, err := time.Parse("2006-01-02", req.LeaveDate)
	if err != nil {
		utils.BadRequestResponse(c, "leave_date must be formatted YYYY-MM-DD", err)
		return
	}

	settlement, err := h.memberService.DeactivateMember(uint(id), leaveDate)
	if err != nil {
		handleServiceError(c, h.logger, err, "Failed to deactivate member")
		return
	}

	utils.SuccessResponse(c, "Member deactivated successfully", settlement)
}

// GetMember retrieves a member by ID
// @Summary Get a member
// @Description Get a single member by ID.
// @Tags members
// @Produce json
// @Param id path int true "Member ID"
// @Success 200 {object} utils.APIResponse{data=models.Member} "Member retrieved"
// @Failure 400 {object} utils.APIResponse "Invalid request"
// @Failure 404 {object} utils.APIResponse "Member not found"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/members/{id} [get]
func (h *MemberHandler) GetMember(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.BadRequestResponse(c, "Member ID must be a positive integer", err)
		return
	}

	member, err := h.memberService.GetMember(uint(id))
	if err != nil {
		handleServiceError(c, h.logger, err, "Failed to get member")
		return
	}

	utils.SuccessResponse(c, "Member retrieved successfully", member)
}

// ListMembers retrieves members with pagination
// @Summary List members
// @Description List members with pagination. Inactive members are excluded unless include_inactive is set.
// @Tags members
// @Produce json
// @Param include_inactive query bool false "Include deactivated members" default(false)
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(20)
// @Success 200 {object} utils.PaginatedResponse{data=[]models.Member} "Members retrieved"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/members [get]
func (h *MemberHandler) ListMembers(c *gin.Context) {
	includeInactive := c.Query("include_inactive") == "true"
	page, limit := parsePagination(c)

	members, total, err := h.memberService.ListMembers(includeInactive, page, limit)
	if err != nil {
		handleServiceError(c, h.logger, err, "Failed to list members")
		return
	}

	utils.PaginatedSuccessResponse(c, "Members retrieved successfully", members, page, limit, total)
}
