package repository

import (
	"hostel-be-svc/internal/billing"
	"hostel-be-svc/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ElectricityRepository defines the interface for shared electricity
// bill data operations
type ElectricityRepository interface {
	GetByMonthAndFloor(month string, floor billing.Floor) (*models.ElectricityBill, error)
	UpsertElectricityBill(bill *models.ElectricityBill) error
	ListByMonth(month string) ([]*models.ElectricityBill, error)
}

// electricityRepository implements ElectricityRepository
type electricityRepository struct {
	db *gorm.DB
}

// NewElectricityRepository creates a new instance of ElectricityRepository
func NewElectricityRepository(db *gorm.DB) ElectricityRepository {
	return &electricityRepository{
		db: db,
	}
}

// GetByMonthAndFloor retrieves the shared electricity bill for a floor
// in a billing month
func (r *electricityRepository) GetByMonthAndFloor(month string, floor billing.Floor) (*models.ElectricityBill, error) {
	var bill models.ElectricityBill

	err := r.db.Where("month = ? AND floor = ?", month, floor).First(&bill).Error
	if err != nil {
		return nil, err
	}

	return &bill, nil
}

// UpsertElectricityBill inserts or updates a floor's bill for a month
func (r *electricityRepository) UpsertElectricityBill(bill *models.ElectricityBill) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "month"}, {Name: "floor"}},
		DoUpdates: clause.AssignmentColumns([]string{"total_amount", "member_count", "per_head_share", "updated_at"}),
	}).Create(bill).Error
}

// ListByMonth retrieves all floors' electricity bills for a month
func (r *electricityRepository) ListByMonth(month string) ([]*models.ElectricityBill, error) {
	var bills []*models.ElectricityBill

	err := r.db.Where("month = ?", month).Order("floor").Find(&bills).Error
	if err != nil {
		return nil, err
	}

	return bills, nil
}
