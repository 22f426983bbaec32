package service

import (
	"errors"
	"fmt"
	"time"

	"hostel-be-svc/internal/billing"
	"hostel-be-svc/internal/config"
	"hostel-be-svc/internal/models"
	"hostel-be-svc/internal/repository"
	"hostel-be-svc/pkg/logger"

	"gorm.io/gorm"
)

// UpdateSettingsInput holds the updatable global settings. Nil fields
// are left unchanged.
type UpdateSettingsInput struct {
	CurrentBillingMonth    *string
	NextBillingMonth       *string
	WiFiMonthlyCharge      *int64
	SecurityDepositDefault *int64
	AdminPhones            *string
}

// SettingsService defines the interface for global settings operations
type SettingsService interface {
	GetSettings() (*models.Settings, error)
	UpdateSettings(input UpdateSettingsInput) (*models.Settings, error)
	AdvanceBillingMonth() (*models.Settings, error)
}

// settingsService implements SettingsService
type settingsService struct {
	settingsRepo repository.SettingsRepository
	defaults     config.DefaultsConfig
	logger       *logger.Logger
}

// NewSettingsService creates a new instance of SettingsService
func NewSettingsService(settingsRepo repository.SettingsRepository, defaults config.DefaultsConfig, logger *logger.Logger) SettingsService {
	return &settingsService{
		settingsRepo: settingsRepo,
		defaults:     defaults,
		logger:       logger,
	}
}

// GetSettings returns the published settings row, seeding one from the
// configured defaults on first access
func (s *settingsService) GetSettings() (*models.Settings, error) {
	settings, err := s.settingsRepo.GetSettings()
	if err == nil {
		return settings, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}

	now := time.Now()
	current := now.Format("2006-01")
	next := now.AddDate(0, 1, 0).Format("2006-01")

	settings = &models.Settings{
		CurrentBillingMonth:    current,
		NextBillingMonth:       next,
		WiFiMonthlyCharge:      s.defaults.WiFiMonthlyCharge,
		SecurityDepositDefault: s.defaults.SecurityDepositDefault,
		PublishedAt:            &now,
	}

	if err := s.settingsRepo.SaveSettings(settings); err != nil {
		return nil, fmt.Errorf("failed to seed settings: %w", err)
	}

	s.logger.WithFields(map[string]interface{}{
		"current_billing_month": current,
		"next_billing_month":    next,
	}).Info("Settings seeded from defaults")

	return settings, nil
}

// UpdateSettings applies the given changes to the settings row
func (s *settingsService) UpdateSettings(input UpdateSettingsInput) (*models.Settings, error) {
	settings, err := s.GetSettings()
	if err != nil {
		return nil, err
	}

	if input.CurrentBillingMonth != nil {
		if _, err := time.Parse("2006-01", *input.CurrentBillingMonth); err != nil {
			return nil, &billing.ValidationError{Field: "current_billing_month", Reason: "must be formatted YYYY-MM"}
		}
		settings.CurrentBillingMonth = *input.CurrentBillingMonth
	}
	if input.NextBillingMonth != nil {
		if _, err := time.Parse("2006-01", *input.NextBillingMonth); err != nil {
			return nil, &billing.ValidationError{Field: "next_billing_month", Reason: "must be formatted YYYY-MM"}
		}
		settings.NextBillingMonth = *input.NextBillingMonth
	}
	if input.WiFiMonthlyCharge != nil {
		if *input.WiFiMonthlyCharge < 0 {
			return nil, &billing.ValidationError{Field: "wifi_monthly_charge", Reason: "must be non-negative"}
		}
		settings.WiFiMonthlyCharge = *input.WiFiMonthlyCharge
	}
	if input.SecurityDepositDefault != nil {
		if *input.SecurityDepositDefault < 0 {
			return nil, &billing.ValidationError{Field: "security_deposit_default", Reason: "must be non-negative"}
		}
		settings.SecurityDepositDefault = *input.SecurityDepositDefault
	}
	if input.AdminPhones != nil {
		settings.AdminPhones = *input.AdminPhones
	}

	if err := s.settingsRepo.SaveSettings(settings); err != nil {
		s.logger.WithError(err).Error("Failed to update settings")
		return nil, fmt.Errorf("failed to update settings: %w", err)
	}

	s.logger.Info("Settings updated successfully")

	return settings, nil
}

// AdvanceBillingMonth rolls the billing period forward: the next month
// becomes current and a fresh next month is derived from it
func (s *settingsService) AdvanceBillingMonth() (*models.Settings, error) {
	settings, err := s.GetSettings()
	if err != nil {
		return nil, err
	}

	next, err := time.Parse("2006-01", settings.NextBillingMonth)
	if err != nil {
		return nil, &billing.ValidationError{Field: "next_billing_month", Reason: "stored value is not a valid YYYY-MM month"}
	}

	settings.CurrentBillingMonth = settings.NextBillingMonth
	settings.NextBillingMonth = next.AddDate(0, 1, 0).Format("2006-01")

	if err := s.settingsRepo.SaveSettings(settings); err != nil {
		s.logger.WithError(err).Error("Failed to advance billing month")
		return nil, fmt.Errorf("failed to advance billing month: %w", err)
	}

	s.logger.WithFields(map[string]interface{}{
		"current_billing_month": settings.CurrentBillingMonth,
		"next_billing_month":    settings.NextBillingMonth,
	}).Info("Billing month advanced")

	return settings, nil
}
