package repository

import (
	"hostel-be-svc/internal/billing"
	"hostel-be-svc/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RateRepository defines the interface for rate table data operations
type RateRepository interface {
	GetAllRates() ([]*models.Rate, error)
	GetRateTable() (billing.RateTable, error)
	UpsertRate(rate *models.Rate) error
	DeleteRate(floor billing.Floor, bedType billing.BedType) error
}

// rateRepository implements RateRepository
type rateRepository struct {
	db *gorm.DB
}

// NewRateRepository creates a new instance of RateRepository
func NewRateRepository(db *gorm.DB) RateRepository {
	return &rateRepository{
		db: db,
	}
}

// GetAllRates retrieves all configured rates
func (r *rateRepository) GetAllRates() ([]*models.Rate, error) {
	var rates []*models.Rate

	err := r.db.Order("floor, bed_type").Find(&rates).Error
	if err != nil {
		return nil, err
	}

	return rates, nil
}

// GetRateTable loads all rates into the engine's lookup form
func (r *rateRepository) GetRateTable() (billing.RateTable, error) {
	rates, err := r.GetAllRates()
	if err != nil {
		return nil, err
	}

	table := make(billing.RateTable, len(rates))
	for _, rate := range rates {
		table[billing.RateKey{Floor: rate.Floor, BedType: rate.BedType}] = rate.MonthlyRent
	}

	return table, nil
}

// UpsertRate inserts or updates the rate for a floor/bed-type pair
func (r *rateRepository) UpsertRate(rate *models.Rate) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "floor"}, {Name: "bed_type"}},
		DoUpdates: clause.AssignmentColumns([]string{"monthly_rent", "updated_at", "updated_by_id"}),
	}).Create(rate).Error
}

// DeleteRate removes the rate entry for a floor/bed-type pair
func (r *rateRepository) DeleteRate(floor billing.Floor, bedType billing.BedType) error {
	return r.db.Where("floor = ? AND bed_type = ?", floor, bedType).Delete(&models.Rate{}).Error
}
