package service

import (
	"fmt"

	"hostel-be-svc/internal/billing"
	"hostel-be-svc/internal/models"
	"hostel-be-svc/internal/repository"
	"hostel-be-svc/pkg/logger"
)

// RateService defines the interface for rate table operations
type RateService interface {
	GetAllRates() ([]*models.Rate, error)
	SetRate(floor billing.Floor, bedType billing.BedType, monthlyRent int64) (*models.Rate, error)
	DeleteRate(floor billing.Floor, bedType billing.BedType) error
}

// rateService implements RateService
type rateService struct {
	rateRepo   repository.RateRepository
	memberRepo repository.MemberRepository
	logger     *logger.Logger
}

// NewRateService creates a new instance of RateService
func NewRateService(rateRepo repository.RateRepository, memberRepo repository.MemberRepository, logger *logger.Logger) RateService {
	return &rateService{
		rateRepo:   rateRepo,
		memberRepo: memberRepo,
		logger:     logger,
	}
}

// GetAllRates retrieves all configured rates
func (s *rateService) GetAllRates() ([]*models.Rate, error) {
	return s.rateRepo.GetAllRates()
}

// SetRate inserts or updates the monthly rent for a floor/bed-type pair
func (s *rateService) SetRate(floor billing.Floor, bedType billing.BedType, monthlyRent int64) (*models.Rate, error) {
	if !billing.ValidFloor(floor) {
		return nil, &billing.ValidationError{Field: "floor", Reason: fmt.Sprintf("unknown floor %q", floor)}
	}
	if !billing.ValidBedType(floor, bedType) {
		return nil, &billing.ValidationError{Field: "bed_type", Reason: fmt.Sprintf("%q is not offered on floor %q", bedType, floor)}
	}
	if monthlyRent < 0 {
		return nil, &billing.ValidationError{Field: "monthly_rent", Reason: "must be non-negative"}
	}

	rate := &models.Rate{
		Floor:       floor,
		BedType:     bedType,
		MonthlyRent: monthlyRent,
	}

	if err := s.rateRepo.UpsertRate(rate); err != nil {
		s.logger.WithError(err).WithFields(map[string]interface{}{
			"floor":    floor,
			"bed_type": bedType,
		}).Error("Failed to save rate")
		return nil, fmt.Errorf("failed to save rate: %w", err)
	}

	s.logger.WithFields(map[string]interface{}{
		"floor":        floor,
		"bed_type":     bedType,
		"monthly_rent": monthlyRent,
	}).Info("Rate saved successfully")

	return rate, nil
}

// DeleteRate removes a rate entry. Deletion is refused while active
// members still occupy that placement, otherwise their next billing
// run would fail closed.
func (s *rateService) DeleteRate(floor billing.Floor, bedType billing.BedType) error {
	members, err := s.memberRepo.GetActiveMembersByFloor(floor)
	if err != nil {
		return fmt.Errorf("failed to check members on floor: %w", err)
	}
	for _, member := range members {
		if member.BedType == bedType {
			return &billing.ValidationError{Field: "rate", Reason: fmt.Sprintf("active members still occupy %s beds on floor %q", bedType, floor)}
		}
	}

	if err := s.rateRepo.DeleteRate(floor, bedType); err != nil {
		return fmt.Errorf("failed to delete rate: %w", err)
	}

	s.logger.WithFields(map[string]interface{}{
		"floor":    floor,
		"bed_type": bedType,
	}).Info("Rate deleted")

	return nil
}
