package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"hostel-be-svc/internal/billing"
	"hostel-be-svc/internal/middleware"
	"hostel-be-svc/internal/service"
	"hostel-be-svc/pkg/logger"
	"hostel-be-svc/pkg/utils"
)

// SetupRoutes sets up all API routes
func SetupRoutes(
	router *gin.Engine,
	memberService service.MemberService,
	billingService service.BillingService,
	rateService service.RateService,
	settingsService service.SettingsService,
	jwtSecret string,
	logger *logger.Logger,
) {
	// Initialize handlers
	memberHandler := NewMemberHandler(memberService, logger)
	billingHandler := NewBillingHandler(billingService, logger)
	rateHandler := NewRateHandler(rateService, logger)
	settingsHandler := NewSettingsHandler(settingsService, logger)

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API v1 group
	v1 := router.Group("/api/v1")
	{
		// Health check
		v1.GET("/health", HealthCheck)

		protected := v1.Group("", middleware.AuthMiddleware(jwtSecret))

		// Member routes
		members := protected.Group("/members")
		{
			members.POST("", memberHandler.CreateMember)
			members.GET("", memberHandler.ListMembers)
			members.GET("/:id", memberHandler.GetMember)
			members.PUT("/:id", memberHandler.UpdateMember)
			members.POST("/:id/deactivate", memberHandler.DeactivateMember)
		}

		// Billing routes
		billings := protected.Group("/billings")
		{
			billings.POST("/generate", billingHandler.GenerateBills)
			billings.POST("/payment", billingHandler.RecordPayment)
			billings.POST("/expense", billingHandler.AddExpense)
			billings.POST("/electricity", billingHandler.RecordElectricityBill)
			billings.GET("", billingHandler.GetBills)
			billings.GET("/statistics", billingHandler.GetBillingStatistics)
			billings.GET("/export", billingHandler.ExportBilling)
		}

		// Rate routes
		rates := protected.Group("/rates")
		{
			rates.GET("", rateHandler.GetAllRates)
			rates.PUT("", rateHandler.SetRate)
			rates.DELETE("", rateHandler.DeleteRate)
		}

		// Settings routes
		settings := protected.Group("/settings")
		{
			settings.GET("", settingsHandler.GetSettings)
			settings.PUT("", settingsHandler.UpdateSettings)
			settings.POST("/advance-month", settingsHandler.AdvanceBillingMonth)
		}
	}
}

func HealthCheck(c *gin.Context) {
	c.JSON(200, gin.H{
		"status":  "ok",
		"message": "Server is running",
		"service": "Hostel Backend Service",
	})
}

// handleServiceError maps service errors to HTTP responses. Validation
// problems are the caller's fault, configuration gaps are unprocessable
// until an admin fixes the rate table, everything else is a 500.
func handleServiceError(c *gin.Context, log *logger.Logger, err error, message string) {
	var validationErr *billing.ValidationError
	var configErr *billing.ConfigurationError

	switch {
	case errors.As(err, &validationErr):
		utils.BadRequestResponse(c, message, err)
	case errors.As(err, &configErr):
		utils.UnprocessableEntityResponse(c, message, err)
	case errors.Is(err, gorm.ErrRecordNotFound):
		utils.NotFoundResponse(c, "Record not found")
	default:
		log.WithError(err).Error(message)
		utils.InternalServerErrorResponse(c, message, err)
	}
}

// parsePagination reads page and limit query parameters with defaults
func parsePagination(c *gin.Context) (int, int) {
	page := 1
	limit := 20

	if p := c.Query("page"); p != "" {
		if v, err := strconv.Atoi(p); err == nil && v > 0 {
			page = v
		}
	}
	if l := c.Query("limit"); l != "" {
		if v, err := strconv.Atoi(l); err == nil && v > 0 && v <= 100 {
			limit = v
		}
	}

	return page, limit
}
