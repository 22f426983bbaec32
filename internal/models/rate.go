package models

import (
	"time"

	"hostel-be-svc/internal/billing"
)

// Rate represents the rates table: monthly rent per (floor, bed type)
type Rate struct {
	ID          uint            `json:"id" gorm:"primarykey"`
	Floor       billing.Floor   `json:"floor" gorm:"column:floor;uniqueIndex:idx_floor_bed_type"`
	BedType     billing.BedType `json:"bed_type" gorm:"column:bed_type;uniqueIndex:idx_floor_bed_type"`
	MonthlyRent int64           `json:"monthly_rent" gorm:"column:monthly_rent"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
	UpdatedByID *int            `json:"updated_by_id"`
}

// TableName sets the insert table name for Rate
func (Rate) TableName() string {
	return "rates"
}
