package scheduler

import (
	"encoding/json"
	"fmt"
	"time"

	"hostel-be-svc/internal/models"
	"hostel-be-svc/internal/repository"
	"hostel-be-svc/internal/service"
	"hostel-be-svc/pkg/logger"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
)

// BillingScheduler handles scheduled billing operations
type BillingScheduler struct {
	billingService   service.BillingService
	settingsService  service.SettingsService
	schedulerLogRepo repository.SchedulerLogRepository
	logger           *logger.Logger
	cron             *cron.Cron
	cronExpression   string
}

// NewBillingScheduler creates a new billing scheduler
func NewBillingScheduler(
	billingService service.BillingService,
	settingsService service.SettingsService,
	schedulerLogRepo repository.SchedulerLogRepository,
	logger *logger.Logger,
	cronExpression string,
) *BillingScheduler {
	// Create cron with seconds precision
	c := cron.New(cron.WithSeconds())

	return &BillingScheduler{
		billingService:   billingService,
		settingsService:  settingsService,
		schedulerLogRepo: schedulerLogRepo,
		logger:           logger,
		cron:             c,
		cronExpression:   cronExpression,
	}
}

// Start initializes and starts all scheduled jobs
func (s *BillingScheduler) Start() error {
	s.logger.Info("Starting billing scheduler...")

	// Cron format: "seconds minutes hours day-of-month month day-of-week"
	s.logger.WithField("cron_expression", s.cronExpression).Info("Scheduling billing job")
	_, err := s.cron.AddFunc(s.cronExpression, s.generateMonthlyBills)
	if err != nil {
		return fmt.Errorf("failed to schedule monthly billing job: %w", err)
	}

	s.cron.Start()
	s.logger.Info("Billing scheduler started successfully")

	return nil
}

// Stop gracefully stops the scheduler
func (s *BillingScheduler) Stop() {
	s.logger.Info("Stopping billing scheduler...")
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("Billing scheduler stopped successfully")
}

// generateMonthlyBills is the scheduled job that generates bills for
// all active members for the current settings month, forwarding each
// member's outstanding balance into the new bill. Members who already
// have a bill for the month are skipped, so reruns are safe.
func (s *BillingScheduler) generateMonthlyBills() {
	jobCode := "MONTHLY_BILL_GENERATION"
	docID := uuid.New().String()

	s.logScheduler(jobCode, docID, "Starting scheduled monthly bill generation", "START")
	s.logger.Info("Starting scheduled monthly bill generation...")

	settings, err := s.settingsService.GetSettings()
	if err != nil {
		failedMessage := fmt.Sprintf("Failed to load settings: %v", err)
		s.logScheduler(jobCode, docID, failedMessage, "FAILED")
		s.logger.WithError(err).Error("Failed to load settings")
		return
	}

	month := settings.CurrentBillingMonth
	runningMessage := fmt.Sprintf("Generating bills for month %s", month)
	s.logScheduler(jobCode, docID, runningMessage, "RUNNING")
	s.logger.WithField("month", month).Info("Generating bills for all active members")

	result, err := s.billingService.GenerateMonthlyBillsForAllMembers(month, true, nil)
	if err != nil {
		failedMessage := fmt.Sprintf("Failed to generate monthly bills: %v", err)
		s.logScheduler(jobCode, docID, failedMessage, "FAILED")
		s.logger.WithError(err).Error("Failed to generate monthly bills")
		return
	}

	responseJSON, _ := json.Marshal(result)
	successMessage := fmt.Sprintf("Monthly bills generated: %s", string(responseJSON))
	s.logScheduler(jobCode, docID, successMessage, "SUCCESS")

	s.logger.WithFields(map[string]interface{}{
		"month":         month,
		"total_members": result.TotalMembers,
		"total_bills":   result.TotalBills,
		"failed_count":  result.FailedCount,
	}).Info("Scheduled monthly bill generation completed")
}

// logScheduler creates a new log entry in the database
func (s *BillingScheduler) logScheduler(jobCode, documentID, message, status string) {
	now := time.Now()
	logEntry := &models.SchedulerLog{
		DocumentID: &documentID,
		JobCode:    &jobCode,
		Message:    &message,
		JobStatus:  &status,
		CreatedAt:  &now,
		UpdatedAt:  &now,
	}

	if err := s.schedulerLogRepo.CreateSchedulerLog(logEntry); err != nil {
		s.logger.WithError(err).WithField("status", status).Error("Failed to create scheduler log entry")
	} else {
		s.logger.WithField("status", status).WithField("document_id", documentID).Info("Scheduler log entry created")
	}
}
